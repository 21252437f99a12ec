package factory

import (
	"github.com/automoto/merge-drop/archetypes"
	"github.com/automoto/merge-drop/components"
	"github.com/automoto/merge-drop/physics"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateFruit spawns a fruit of the given tier centred at pos with a fresh
// identity. The tier must be valid; callers check it first.
func CreateFruit(ecs *ecs.ECS, tier int, pos math.Vec2, frictionAir float64) *donburi.Entry {
	rt := mustRuntime(ecs)
	def := rt.Config.Fruits[tier]

	fruit := archetypes.Fruit.Spawn(ecs)
	body := rt.Engine.AddCircle(pos, def.Radius, physics.BodyOptions{FrictionAir: frictionAir})
	if body != nil {
		body.Data = fruit.Entity()
	}

	components.Fruit.SetValue(fruit, components.FruitData{
		ID:        components.FruitID(uuid.NewString()),
		Tier:      tier,
		SpawnedAt: rt.Clock.Now(),
	})
	components.Object.SetValue(fruit, components.ObjectData{Body: body})
	return fruit
}

// DestroyFruit removes the fruit's body from the engine and the entity from the world
func DestroyFruit(ecs *ecs.ECS, entry *donburi.Entry) {
	if entry == nil || !entry.Valid() {
		return
	}
	if obj := components.Object.Get(entry); obj != nil && obj.Body != nil {
		mustRuntime(ecs).Engine.Remove(obj.Body)
	}
	ecs.World.Remove(entry.Entity())
}
