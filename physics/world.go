package physics

import (
	gomath "math"
	"slices"

	"github.com/automoto/merge-drop/config"
	"github.com/automoto/merge-drop/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/features/math"
)

// spaceMargin offsets world coordinates into the resolv grid so the walls
// (which sit just outside the container) and fruit above the top edge still
// land in valid cells.
const spaceMargin = 256

// positional correction share applied per solver pass
const correctionPercent = 0.8

type pairKey struct {
	lo, hi uint64
}

type pair struct {
	a, b *Body
}

// World is a fixed-step circle physics world. Broad phase uses a resolv.Space;
// narrow phase and response are circle/circle and circle/box.
type World struct {
	cfg    config.PhysicsConfig
	pad    float64 // broad phase padding around each circle
	space  *resolv.Space
	bodies []*Body
	nextID uint64

	touching map[pairKey]pair

	handlers map[SubscriptionID]ContactHandler
	subOrder []SubscriptionID
	nextSub  SubscriptionID
}

var _ Engine = (*World)(nil)

// NewWorld creates a world able to hold a width x height container
func NewWorld(cfg config.PhysicsConfig, width, height float64) *World {
	cell := cfg.CellSize
	if cell <= 0 {
		cell = 32
	}
	if cfg.Iterations <= 0 {
		cfg.Iterations = 1
	}
	// resolv fills cells from X to X+W-1, so exact boxes meeting on a cell
	// line share no cell. Pad past the contact slop.
	pad := gomath.Ceil(gomath.Max(cfg.ContactSlop, 0)) + 1
	return &World{
		cfg:      cfg,
		pad:      pad,
		space:    resolv.NewSpace(int(width)+2*spaceMargin, int(height)+2*spaceMargin, cell, cell),
		touching: make(map[pairKey]pair),
		handlers: make(map[SubscriptionID]ContactHandler),
	}
}

func (w *World) AddCircle(pos math.Vec2, radius float64, opts BodyOptions) *Body {
	w.nextID++
	b := &Body{
		id:          w.nextID,
		pos:         pos,
		radius:      radius,
		frictionAir: opts.FrictionAir,
	}
	mass := w.cfg.Density * gomath.Pi * radius * radius
	if mass <= 0 {
		mass = 1
	}
	b.invMass = 1 / mass

	half := radius + w.pad
	b.obj = resolv.NewObject(pos.X-half+spaceMargin, pos.Y-half+spaceMargin, half*2, half*2, tags.ResolvBody)
	b.obj.Data = b
	w.space.Add(b.obj)
	w.bodies = append(w.bodies, b)
	return b
}

func (w *World) AddStatic(x, y, width, height float64) *Body {
	w.nextID++
	b := &Body{
		id:     w.nextID,
		pos:    math.Vec2{X: x + width/2, Y: y + height/2},
		w:      width,
		h:      height,
		static: true,
	}
	b.obj = resolv.NewObject(x+spaceMargin, y+spaceMargin, width, height, tags.ResolvSolid)
	b.obj.SetShape(resolv.NewRectangle(0, 0, width, height))
	b.obj.Data = b
	w.space.Add(b.obj)
	w.bodies = append(w.bodies, b)
	return b
}

func (w *World) Remove(b *Body) {
	if b == nil || b.removed {
		return
	}
	b.removed = true
	if b.obj != nil && b.obj.Space != nil {
		w.space.Remove(b.obj)
	}
	w.bodies = slices.DeleteFunc(w.bodies, func(o *Body) bool { return o == b })
	for k := range w.touching {
		if k.lo == b.id || k.hi == b.id {
			delete(w.touching, k)
		}
	}
}

func (w *World) Position(b *Body) math.Vec2 {
	return b.pos
}

func (w *World) Velocity(b *Body) math.Vec2 {
	return b.vel
}

func (w *World) SetVelocity(b *Body, v math.Vec2) {
	if b.static {
		return
	}
	b.vel = v
}

func (w *World) ApplyImpulse(b *Body, impulse math.Vec2) {
	if b.static {
		return
	}
	b.vel.X += impulse.X * b.invMass
	b.vel.Y += impulse.Y * b.invMass
}

func (w *World) Subscribe(h ContactHandler) SubscriptionID {
	w.nextSub++
	w.handlers[w.nextSub] = h
	w.subOrder = append(w.subOrder, w.nextSub)
	return w.nextSub
}

func (w *World) Unsubscribe(id SubscriptionID) {
	delete(w.handlers, id)
	w.subOrder = slices.DeleteFunc(w.subOrder, func(s SubscriptionID) bool { return s == id })
}

// Step integrates, solves overlaps and dispatches Begin, Active and End events
func (w *World) Step() {
	for _, b := range w.bodies {
		if b.static {
			continue
		}
		b.vel.Y += w.cfg.Gravity
		damp := 1 - b.frictionAir
		b.vel.X *= damp
		b.vel.Y *= damp
		b.pos.X += b.vel.X
		b.pos.Y += b.vel.Y
		w.sync(b)
	}

	for i := 0; i < w.cfg.Iterations; i++ {
		for _, a := range w.bodies {
			if a.static {
				continue
			}
			for _, b := range w.neighbours(a) {
				switch {
				case b.static:
					w.resolveStatic(a, b)
				case a.id < b.id:
					w.resolvePair(a, b)
					w.sync(b)
				}
			}
			w.sync(a)
		}
	}

	w.dispatch(w.detectContacts())
}

func (w *World) sync(b *Body) {
	if b.static || b.obj == nil {
		return
	}
	b.obj.X = b.pos.X - b.radius - w.pad + spaceMargin
	b.obj.Y = b.pos.Y - b.radius - w.pad + spaceMargin
	b.obj.Update()
}

// neighbours returns the bodies sharing broad phase cells with a
func (w *World) neighbours(a *Body) []*Body {
	check := a.obj.Check(0, 0, tags.ResolvBody, tags.ResolvSolid)
	if check == nil {
		return nil
	}
	out := make([]*Body, 0, len(check.Objects))
	for _, o := range check.Objects {
		b, ok := o.Data.(*Body)
		if !ok || b == a || b.removed || slices.Contains(out, b) {
			continue
		}
		out = append(out, b)
	}
	return out
}

func (w *World) resolvePair(a, b *Body) {
	dx := b.pos.X - a.pos.X
	dy := b.pos.Y - a.pos.Y
	dist := gomath.Hypot(dx, dy)
	overlap := a.radius + b.radius - dist
	if overlap <= 0 {
		return
	}

	nx, ny := 1.0, 0.0
	if dist > 0 {
		nx, ny = dx/dist, dy/dist
	}
	total := a.invMass + b.invMass
	corr := overlap * correctionPercent / total
	a.pos.X -= nx * corr * a.invMass
	a.pos.Y -= ny * corr * a.invMass
	b.pos.X += nx * corr * b.invMass
	b.pos.Y += ny * corr * b.invMass

	rvx := b.vel.X - a.vel.X
	rvy := b.vel.Y - a.vel.Y
	vn := rvx*nx + rvy*ny
	if vn >= 0 {
		return
	}
	j := -(1 + w.cfg.Restitution) * vn / total
	a.vel.X -= nx * j * a.invMass
	a.vel.Y -= ny * j * a.invMass
	b.vel.X += nx * j * b.invMass
	b.vel.Y += ny * j * b.invMass

	// tangential friction
	tx := rvx - vn*nx
	ty := rvy - vn*ny
	f := w.cfg.Friction / total
	a.vel.X += tx * f * a.invMass
	a.vel.Y += ty * f * a.invMass
	b.vel.X -= tx * f * b.invMass
	b.vel.Y -= ty * f * b.invMass
}

func (w *World) resolveStatic(a, s *Body) {
	minX, maxX := s.pos.X-s.w/2, s.pos.X+s.w/2
	minY, maxY := s.pos.Y-s.h/2, s.pos.Y+s.h/2
	cx := gomath.Max(minX, gomath.Min(a.pos.X, maxX))
	cy := gomath.Max(minY, gomath.Min(a.pos.Y, maxY))
	dx := a.pos.X - cx
	dy := a.pos.Y - cy
	dist2 := dx*dx + dy*dy
	if dist2 >= a.radius*a.radius {
		return
	}

	var nx, ny, pen float64
	if dist2 == 0 {
		// centre inside the box: leave through the nearest face
		left, right := a.pos.X-minX, maxX-a.pos.X
		top, bottom := a.pos.Y-minY, maxY-a.pos.Y
		m := gomath.Min(gomath.Min(left, right), gomath.Min(top, bottom))
		switch m {
		case left:
			nx, pen = -1, left+a.radius
		case right:
			nx, pen = 1, right+a.radius
		case top:
			ny, pen = -1, top+a.radius
		default:
			ny, pen = 1, bottom+a.radius
		}
	} else {
		dist := gomath.Sqrt(dist2)
		nx, ny = dx/dist, dy/dist
		pen = a.radius - dist
	}

	a.pos.X += nx * pen
	a.pos.Y += ny * pen

	vn := a.vel.X*nx + a.vel.Y*ny
	if vn >= 0 {
		return
	}
	a.vel.X -= nx * vn * (1 + w.cfg.Restitution)
	a.vel.Y -= ny * vn * (1 + w.cfg.Restitution)
	tvx := a.vel.X - (a.vel.X*nx+a.vel.Y*ny)*nx
	tvy := a.vel.Y - (a.vel.X*nx+a.vel.Y*ny)*ny
	a.vel.X -= tvx * w.cfg.Friction
	a.vel.Y -= tvy * w.cfg.Friction
}

func (w *World) detectContacts() []Contact {
	current := make(map[pairKey]pair, len(w.touching))
	reach := w.cfg.ContactSlop
	for _, a := range w.bodies {
		if a.static {
			continue
		}
		for _, b := range w.neighbours(a) {
			if b.static || a.id >= b.id {
				continue
			}
			d := gomath.Hypot(b.pos.X-a.pos.X, b.pos.Y-a.pos.Y)
			if d <= a.radius+b.radius+reach {
				current[pairKey{a.id, b.id}] = pair{a, b}
			}
		}
	}

	var events []Contact
	for _, k := range sortedKeys(current) {
		p := current[k]
		phase := ContactActive
		if _, was := w.touching[k]; !was {
			phase = ContactBegin
		}
		events = append(events, Contact{Phase: phase, A: p.a, B: p.b})
	}
	// Begin before Active, stable by pair id
	slices.SortStableFunc(events, func(x, y Contact) int { return int(x.Phase) - int(y.Phase) })

	for _, k := range sortedKeys(w.touching) {
		if _, still := current[k]; still {
			continue
		}
		p := w.touching[k]
		if p.a.removed || p.b.removed {
			continue
		}
		events = append(events, Contact{Phase: ContactEnd, A: p.a, B: p.b})
	}

	w.touching = current
	return events
}

func (w *World) dispatch(events []Contact) {
	if len(events) == 0 || len(w.subOrder) == 0 {
		return
	}
	subs := slices.Clone(w.subOrder)
	for _, ev := range events {
		if ev.A.removed || ev.B.removed {
			continue
		}
		for _, id := range subs {
			if h, ok := w.handlers[id]; ok {
				h(ev)
			}
		}
	}
}

func sortedKeys(m map[pairKey]pair) []pairKey {
	keys := make([]pairKey, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(x, y pairKey) int {
		if x.lo != y.lo {
			if x.lo < y.lo {
				return -1
			}
			return 1
		}
		if x.hi < y.hi {
			return -1
		}
		if x.hi > y.hi {
			return 1
		}
		return 0
	})
	return keys
}
