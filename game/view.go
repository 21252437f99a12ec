package game

import (
	"time"

	"github.com/automoto/merge-drop/components"
	"github.com/automoto/merge-drop/systems"
	"github.com/automoto/merge-drop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// FruitView is a read-only snapshot of a fruit for rendering
type FruitView struct {
	ID         components.FruitID
	Tier       int
	Position   math.Vec2
	Velocity   math.Vec2
	Radius     float64
	Merging    bool
	PulseScale float64
	SpawnedAt  time.Time
}

// Fruits returns the live fruit. Positions are read from the engine at call time.
func (s *Session) Fruits() []FruitView {
	var out []FruitView
	tags.Fruit.Each(s.ecs.World, func(entry *donburi.Entry) {
		fruit := components.Fruit.Get(entry)
		body := components.Object.Get(entry).Body
		out = append(out, FruitView{
			ID:         fruit.ID,
			Tier:       fruit.Tier,
			Position:   s.engine.Position(body),
			Velocity:   s.engine.Velocity(body),
			Radius:     s.cfg.Fruits[fruit.Tier].Radius,
			Merging:    fruit.Merging,
			PulseScale: systems.PulseScale(entry),
			SpawnedAt:  fruit.SpawnedAt,
		})
	})
	return out
}

// FixtureCount is the number of container fixtures (walls and floor)
func (s *Session) FixtureCount() int {
	n := 0
	tags.Wall.Each(s.ecs.World, func(*donburi.Entry) { n++ })
	tags.Floor.Each(s.ecs.World, func(*donburi.Entry) { n++ })
	return n
}
