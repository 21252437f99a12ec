package physics

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/features/math"
)

// Body is an engine-owned handle. Data links the body back to its owner
// (the game stores the donburi entity here).
type Body struct {
	Data any

	id          uint64
	obj         *resolv.Object
	pos         math.Vec2 // centre
	vel         math.Vec2 // px per step
	radius      float64
	w, h        float64 // static boxes only
	static      bool
	invMass     float64
	frictionAir float64
	removed     bool
}

// ID is unique per body within one World
func (b *Body) ID() uint64 {
	return b.id
}

func (b *Body) Radius() float64 {
	return b.radius
}

func (b *Body) Static() bool {
	return b.static
}

// Removed reports whether the body has been taken out of its world
func (b *Body) Removed() bool {
	return b.removed
}
