package archetypes

import (
	"github.com/automoto/merge-drop/components"
	cfg "github.com/automoto/merge-drop/config"
	"github.com/automoto/merge-drop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Fruit = newArchetype(
		tags.Fruit,
		components.Fruit,
		components.Object,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Floor = newArchetype(
		tags.Floor,
		components.Object,
	)
	Session = newArchetype(
		components.Session,
		components.Runtime,
		components.Contacts,
		components.MergeQueue,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.DefaultLayer,
		append(a.components, cs...)...,
	))
	return e
}
