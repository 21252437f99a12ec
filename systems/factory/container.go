package factory

import (
	"github.com/automoto/merge-drop/archetypes"
	"github.com/automoto/merge-drop/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateContainer builds the left and right walls and the floor around the
// play area. Walls are twice the container height so nothing escapes over them.
func CreateContainer(ecs *ecs.ECS) []*donburi.Entry {
	rt := mustRuntime(ecs)
	w := rt.Config.World.Width
	h := rt.Config.World.Height
	t := rt.Config.World.WallThickness
	ft := rt.Config.World.FloorThickness

	return []*donburi.Entry{
		CreateWall(ecs, -t, -h/2, t, h*2),
		CreateWall(ecs, w, -h/2, t, h*2),
		CreateFloor(ecs, -t, h, w+t*2, ft),
	}
}

func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)
	attachStatic(ecs, wall, x, y, w, h)
	return wall
}

func CreateFloor(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	floor := archetypes.Floor.Spawn(ecs)
	attachStatic(ecs, floor, x, y, w, h)
	return floor
}

func attachStatic(ecs *ecs.ECS, entry *donburi.Entry, x, y, w, h float64) {
	body := mustRuntime(ecs).Engine.AddStatic(x, y, w, h)
	if body != nil {
		body.Data = entry.Entity() // Link for O(1) lookup
	}
	components.Object.SetValue(entry, components.ObjectData{Body: body})
}

func mustRuntime(ecs *ecs.ECS) *components.RuntimeData {
	entry, ok := components.Runtime.First(ecs.World)
	if !ok {
		panic("factory: session runtime not created")
	}
	return components.Runtime.Get(entry)
}
