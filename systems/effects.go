package systems

import (
	"github.com/automoto/merge-drop/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePulses advances merge pulse tweens by elapsed clock time and removes
// finished pulses
func UpdatePulses(e *ecs.ECS) {
	rt, ok := GetRuntime(e.World)
	if !ok {
		return
	}
	now := rt.Clock.Now()

	var done []*donburi.Entry
	components.Pulse.Each(e.World, func(entry *donburi.Entry) {
		pulse := components.Pulse.Get(entry)
		dt := now.Sub(pulse.Last).Seconds()
		pulse.Last = now
		if dt < 0 {
			dt = 0
		}
		scale, finished := pulse.Tween.Update(float32(dt))
		pulse.Scale = float64(scale)
		if finished {
			done = append(done, entry)
		}
	})

	for _, entry := range done {
		entry.RemoveComponent(components.Pulse)
	}
}

// PulseScale returns the render scale for a fruit, 1 when it has no pulse
func PulseScale(entry *donburi.Entry) float64 {
	if !entry.HasComponent(components.Pulse) {
		return 1
	}
	return components.Pulse.Get(entry).Scale
}
