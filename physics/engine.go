// Package physics defines the rigid-body engine contract the game core consumes
// and a resolv-backed circle world that implements it.
package physics

//go:generate mockgen -source=engine.go -destination=mock_engine.go -package=physics

import (
	"github.com/yohamta/donburi/features/math"
)

// ContactPhase is the lifecycle stage reported for a touching pair
type ContactPhase int

const (
	ContactBegin ContactPhase = iota
	ContactActive
	ContactEnd
)

func (p ContactPhase) String() string {
	switch p {
	case ContactBegin:
		return "begin"
	case ContactActive:
		return "active"
	case ContactEnd:
		return "end"
	}
	return "unknown"
}

// Contact is one collision event for a pair of bodies
type Contact struct {
	Phase ContactPhase
	A, B  *Body
}

// ContactHandler receives contact events synchronously from Step
type ContactHandler func(c Contact)

// SubscriptionID identifies a registered ContactHandler
type SubscriptionID int

// BodyOptions tunes a dynamic body at creation
type BodyOptions struct {
	FrictionAir float64 // per-step velocity damping (0-1)
}

// Engine is the physics collaborator. Positions and velocities are owned by the
// engine; callers read them fresh every tick through Position and Velocity.
type Engine interface {
	// AddCircle creates a dynamic circle centred at pos.
	AddCircle(pos math.Vec2, radius float64, opts BodyOptions) *Body
	// AddStatic creates an immovable box with its top-left corner at (x, y).
	AddStatic(x, y, w, h float64) *Body
	// Remove detaches a body. Pairs involving it are dropped without an End event.
	Remove(b *Body)
	// Step advances the simulation one fixed step and dispatches contact events.
	Step()
	Position(b *Body) math.Vec2
	Velocity(b *Body) math.Vec2
	SetVelocity(b *Body, v math.Vec2)
	// ApplyImpulse changes velocity by impulse / mass.
	ApplyImpulse(b *Body, impulse math.Vec2)
	Subscribe(h ContactHandler) SubscriptionID
	// Unsubscribe detaches a handler; it receives no further events, even mid-dispatch.
	Unsubscribe(id SubscriptionID)
}
