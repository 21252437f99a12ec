package systems

import (
	"math/rand"
	"testing"
	"time"

	"github.com/automoto/merge-drop/clock"
	"github.com/automoto/merge-drop/components"
	"github.com/automoto/merge-drop/config"
	"github.com/automoto/merge-drop/physics"
	"github.com/automoto/merge-drop/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

const tick = time.Second / 60

// fakeEngine reports the pairs a test marks as touching: Begin on the first
// step, Active after, End once untouched. Bodies never move on their own.
type fakeEngine struct {
	pos      map[*physics.Body]math.Vec2
	vel      map[*physics.Body]math.Vec2
	impulses map[*physics.Body]math.Vec2
	removed  map[*physics.Body]bool
	steps    int

	touching []*fakePair
	ended    []*fakePair

	handlers map[physics.SubscriptionID]physics.ContactHandler
	nextSub  physics.SubscriptionID
}

type fakePair struct {
	a, b  *physics.Body
	begun bool
}

var _ physics.Engine = (*fakeEngine)(nil)

func newFakeEngine() *fakeEngine {
	return &fakeEngine{
		pos:      make(map[*physics.Body]math.Vec2),
		vel:      make(map[*physics.Body]math.Vec2),
		impulses: make(map[*physics.Body]math.Vec2),
		removed:  make(map[*physics.Body]bool),
		handlers: make(map[physics.SubscriptionID]physics.ContactHandler),
	}
}

func (f *fakeEngine) AddCircle(pos math.Vec2, _ float64, _ physics.BodyOptions) *physics.Body {
	b := &physics.Body{}
	f.pos[b] = pos
	return b
}

func (f *fakeEngine) AddStatic(x, y, w, h float64) *physics.Body {
	b := &physics.Body{}
	f.pos[b] = math.Vec2{X: x + w/2, Y: y + h/2}
	return b
}

func (f *fakeEngine) Remove(b *physics.Body) {
	f.removed[b] = true
	delete(f.pos, b)
	delete(f.vel, b)
}

func (f *fakeEngine) Step() {
	f.steps++
	var events []physics.Contact
	var kept []*fakePair
	for _, p := range f.touching {
		if f.removed[p.a] || f.removed[p.b] {
			continue
		}
		phase := physics.ContactActive
		if !p.begun {
			phase = physics.ContactBegin
			p.begun = true
		}
		events = append(events, physics.Contact{Phase: phase, A: p.a, B: p.b})
		kept = append(kept, p)
	}
	f.touching = kept
	for _, p := range f.ended {
		if f.removed[p.a] || f.removed[p.b] {
			continue
		}
		events = append(events, physics.Contact{Phase: physics.ContactEnd, A: p.a, B: p.b})
	}
	f.ended = nil

	for _, ev := range events {
		for _, h := range f.handlers {
			h(ev)
		}
	}
}

func (f *fakeEngine) Position(b *physics.Body) math.Vec2 { return f.pos[b] }
func (f *fakeEngine) Velocity(b *physics.Body) math.Vec2 { return f.vel[b] }

func (f *fakeEngine) SetVelocity(b *physics.Body, v math.Vec2) { f.vel[b] = v }

func (f *fakeEngine) ApplyImpulse(b *physics.Body, impulse math.Vec2) {
	f.impulses[b] = impulse
}

func (f *fakeEngine) Subscribe(h physics.ContactHandler) physics.SubscriptionID {
	f.nextSub++
	f.handlers[f.nextSub] = h
	return f.nextSub
}

func (f *fakeEngine) Unsubscribe(id physics.SubscriptionID) {
	delete(f.handlers, id)
}

func (f *fakeEngine) touch(a, b *physics.Body) {
	f.touching = append(f.touching, &fakePair{a: a, b: b})
}

func (f *fakeEngine) untouch(a, b *physics.Body) {
	for i, p := range f.touching {
		if (p.a == a && p.b == b) || (p.a == b && p.b == a) {
			f.touching = append(f.touching[:i], f.touching[i+1:]...)
			f.ended = append(f.ended, p)
			return
		}
	}
}

type harness struct {
	t         *testing.T
	ecs       *ecs.ECS
	engine    *fakeEngine
	clock     *clock.Mock
	cfg       *config.Game
	gameOvers []int
}

func newHarness(t *testing.T, tune func(cfg *config.Game)) *harness {
	t.Helper()
	cfg := config.Default()
	if tune != nil {
		tune(cfg)
	}
	h := &harness{
		t:      t,
		engine: newFakeEngine(),
		clock:  clock.NewMock(time.Unix(1000, 0)),
		cfg:    cfg,
	}

	e := ecs.NewECS(donburi.NewWorld())
	e.AddSystem(WithRunningCheck(UpdatePhysics))
	e.AddSystem(WithRunningCheck(DispatchContacts))
	e.AddSystem(WithRunningCheck(UpdateMerges))
	e.AddSystem(WithRunningCheck(UpdateDanger))
	e.AddSystem(WithRunningCheck(UpdatePulses))
	h.ecs = e

	factory.CreateSession(e, components.RuntimeData{
		Engine: h.engine,
		Clock:  h.clock,
		Config: cfg,
		Rand:   rand.New(rand.NewSource(1)),
		OnGameOver: func(score int) {
			h.gameOvers = append(h.gameOvers, score)
		},
	})
	components.ContactEvents.Subscribe(e.World, OnContact)
	h.engine.Subscribe(func(c physics.Contact) {
		components.ContactEvents.Publish(e.World, c)
	})
	return h
}

func (h *harness) spawn(tier int, x, y float64) *donburi.Entry {
	return factory.CreateFruit(h.ecs, tier, math.Vec2{X: x, Y: y}, 0)
}

func (h *harness) body(entry *donburi.Entry) *physics.Body {
	return components.Object.Get(entry).Body
}

func (h *harness) touch(a, b *donburi.Entry) {
	h.engine.touch(h.body(a), h.body(b))
}

func (h *harness) untouch(a, b *donburi.Entry) {
	h.engine.untouch(h.body(a), h.body(b))
}

func (h *harness) run(ticks int) {
	for i := 0; i < ticks; i++ {
		h.clock.Advance(tick)
		h.ecs.Update()
	}
}

func (h *harness) session() *components.SessionData {
	s, _ := GetSession(h.ecs.World)
	return s
}

func (h *harness) queue() *components.MergeQueueData {
	q, _ := GetMergeQueue(h.ecs.World)
	return q
}

func (h *harness) contacts() *components.ContactsData {
	c, _ := GetContacts(h.ecs.World)
	return c
}

// fruits returns the live fruit data keyed by identity
func (h *harness) fruits() map[components.FruitID]components.FruitData {
	out := make(map[components.FruitID]components.FruitData)
	components.Fruit.Each(h.ecs.World, func(entry *donburi.Entry) {
		f := components.Fruit.Get(entry)
		out[f.ID] = *f
	})
	return out
}

func (h *harness) fruitEntry(id components.FruitID) *donburi.Entry {
	var found *donburi.Entry
	components.Fruit.Each(h.ecs.World, func(entry *donburi.Entry) {
		if components.Fruit.Get(entry).ID == id {
			found = entry
		}
	})
	return found
}

func idOf(entry *donburi.Entry) components.FruitID {
	return components.Fruit.Get(entry).ID
}

// place moves a fruit's body as if the engine had settled it there
func (h *harness) place(entry *donburi.Entry, x, y float64) {
	h.engine.pos[h.body(entry)] = math.Vec2{X: x, Y: y}
}
