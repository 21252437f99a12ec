package factory

import (
	"time"

	"github.com/automoto/merge-drop/components"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// StartPulse gives a fruit the post-merge emphasis: its render scale starts at
// maxScale and eases back to 1 over d
func StartPulse(entry *donburi.Entry, now time.Time, d time.Duration, maxScale float64) {
	pulse := &components.PulseData{
		Tween: gween.New(float32(maxScale), 1, float32(d.Seconds()), ease.Linear),
		Scale: maxScale,
		Last:  now,
	}
	if !entry.HasComponent(components.Pulse) {
		entry.AddComponent(components.Pulse)
	}
	components.Pulse.Set(entry, pulse)
}
