package systems

import (
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics advances the engine one step. Contact events raised during the
// step are queued on components.ContactEvents.
func UpdatePhysics(e *ecs.ECS) {
	rt, ok := GetRuntime(e.World)
	if !ok {
		return
	}
	rt.Engine.Step()
}
