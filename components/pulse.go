package components

import (
	"time"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// PulseData is the short visual emphasis given to a freshly merged fruit
type PulseData struct {
	Tween *gween.Tween
	Scale float64 // current render scale, 1 = normal
	Last  time.Time
}

var Pulse = donburi.NewComponentType[PulseData]()
