package components

import (
	"github.com/automoto/merge-drop/physics"
	"github.com/yohamta/donburi"
)

// ObjectData links an entity to its physics body. The body's position and
// velocity belong to the engine and are read through it every tick.
type ObjectData struct {
	*physics.Body
}

var Object = donburi.NewComponentType[ObjectData]()
