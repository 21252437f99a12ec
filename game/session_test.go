package game

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/automoto/merge-drop/clock"
	"github.com/automoto/merge-drop/components"
	"github.com/automoto/merge-drop/config"
	"github.com/automoto/merge-drop/physics"
	"github.com/automoto/merge-drop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
	"go.uber.org/mock/gomock"
)

const tick = time.Second / 60

func newTestSession(t *testing.T, opts ...Option) (*Session, *clock.Mock) {
	t.Helper()
	clk := clock.NewMock(time.Unix(1000, 0))
	base := []Option{WithClock(clk), WithRand(rand.New(rand.NewSource(7)))}
	s, err := NewSession(append(base, opts...)...)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	t.Cleanup(s.Close)
	return s, clk
}

func runTicks(s *Session, clk *clock.Mock, n int) {
	for i := 0; i < n; i++ {
		clk.Advance(tick)
		s.Update()
	}
}

func TestRestingPairMerges(t *testing.T) {
	// The second pair meets at x=64, on a broad phase cell line.
	for _, x := range []float64{170, 50} {
		testRestingPairMerges(t, x)
	}
}

func testRestingPairMerges(t *testing.T, x float64) {
	s, clk := newTestSession(t)
	if _, err := s.SpawnFruit(0, math.Vec2{X: x, Y: 626}); err != nil {
		t.Fatalf("SpawnFruit: %v", err)
	}
	if _, err := s.SpawnFruit(0, math.Vec2{X: x + 28, Y: 626}); err != nil {
		t.Fatalf("SpawnFruit: %v", err)
	}

	runTicks(s, clk, 60)

	fruits := s.Fruits()
	if len(fruits) != 1 || fruits[0].Tier != 1 {
		t.Fatalf("pair at x=%.0f: fruit = %+v, want a single tier 1", x, fruits)
	}
	if got, mid := fruits[0].Position.X, x+14; got < mid-4 || got > mid+4 {
		t.Fatalf("successor x = %.2f, want near the midpoint %.0f", got, mid)
	}
	if s.Score() != s.Config().Fruits[1].Score {
		t.Fatalf("score = %d, want %d", s.Score(), s.Config().Fruits[1].Score)
	}
	if s.ContactCount() != 0 || s.QueueLen() != 0 || s.MergingCount() != 0 {
		t.Fatalf("bookkeeping left: contacts=%d queue=%d merging=%d", s.ContactCount(), s.QueueLen(), s.MergingCount())
	}
}

func TestDangerEndsSession(t *testing.T) {
	cfg := config.Default()
	cfg.Physics.Gravity = 0

	var scores []int
	s, clk := newTestSession(t, WithConfig(cfg), WithGameOverHandler(func(score int) {
		scores = append(scores, score)
	}))
	if _, err := s.SpawnFruit(0, math.Vec2{X: 180, Y: 50}); err != nil {
		t.Fatalf("SpawnFruit: %v", err)
	}

	for i := 0; i < 120 && s.Running(); i++ {
		clk.Advance(tick)
		s.Update()
	}

	if s.State() != components.SessionOver {
		t.Fatalf("state = %v, want over", s.State())
	}
	if len(scores) != 1 {
		t.Fatalf("game over handler called %d times, want 1", len(scores))
	}
	if _, err := s.Drop(180); !errors.Is(err, ErrNotRunning) {
		t.Fatalf("Drop after game over: err = %v, want ErrNotRunning", err)
	}
	if _, err := s.SpawnFruit(0, math.Vec2{X: 180, Y: 500}); !errors.Is(err, ErrNotRunning) {
		t.Fatalf("SpawnFruit after game over: err = %v, want ErrNotRunning", err)
	}

	runTicks(s, clk, 10)
	if len(scores) != 1 {
		t.Fatalf("game over handler called again after the session ended")
	}
}

func TestResetStartsCleanGame(t *testing.T) {
	s, clk := newTestSession(t)
	s.SpawnFruit(0, math.Vec2{X: 170, Y: 626})
	s.SpawnFruit(0, math.Vec2{X: 198, Y: 626})
	s.SpawnFruit(3, math.Vec2{X: 80, Y: 40})
	runTicks(s, clk, 20)
	if s.Score() == 0 {
		t.Fatalf("setup did not merge")
	}

	s.Reset()

	if n := len(s.Fruits()); n != 0 {
		t.Fatalf("fruit after reset = %d, want 0", n)
	}
	if n := s.FixtureCount(); n != 3 {
		t.Fatalf("fixtures after reset = %d, want 3", n)
	}
	if s.Score() != 0 || s.State() != components.SessionActive || !s.Running() {
		t.Fatalf("reset session: score=%d state=%v", s.Score(), s.State())
	}
	if s.ContactCount() != 0 || s.QueueLen() != 0 || s.MergingCount() != 0 {
		t.Fatalf("bookkeeping survived reset")
	}
	if _, holding := s.HoldStart(); holding {
		t.Fatalf("danger hold survived reset")
	}
	if !s.Config().ValidTier(s.NextTier()) {
		t.Fatalf("next tier %d is invalid", s.NextTier())
	}
}

func TestResetDetachesOldEngine(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := physics.NewMockEngine(ctrl)

	var oldHandler physics.ContactHandler
	first.EXPECT().AddStatic(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(x, y, w, h float64) *physics.Body { return &physics.Body{} },
	).Times(3)
	first.EXPECT().Subscribe(gomock.Any()).DoAndReturn(func(h physics.ContactHandler) physics.SubscriptionID {
		oldHandler = h
		return 7
	})
	// Reset must detach the old engine's subscription.
	first.EXPECT().Unsubscribe(physics.SubscriptionID(7))

	engines := []physics.Engine{first}
	s, clk := newTestSession(t, WithEngineFactory(func(cfg *config.Game) physics.Engine {
		if len(engines) == 0 {
			return NewPhysicsWorld(cfg)
		}
		e := engines[0]
		engines = engines[1:]
		return e
	}))

	s.Reset()

	s.SpawnFruit(0, math.Vec2{X: 100, Y: 300})
	s.SpawnFruit(0, math.Vec2{X: 260, Y: 300})
	var bodies []*physics.Body
	tags.Fruit.Each(s.World(), func(entry *donburi.Entry) {
		bodies = append(bodies, components.Object.Get(entry).Body)
	})
	if len(bodies) != 2 {
		t.Fatalf("fruit = %d, want 2", len(bodies))
	}
	touch := physics.Contact{Phase: physics.ContactBegin, A: bodies[0], B: bodies[1]}

	// A late event from the discarded engine names live fruit of the new game
	// but must stay in the discarded world.
	oldHandler(touch)
	runTicks(s, clk, 1)
	if n := s.ContactCount(); n != 0 {
		t.Fatalf("old engine's event tracked %d contacts in the new session", n)
	}

	// The same event raised in the new world is tracked.
	components.ContactEvents.Publish(s.World(), touch)
	runTicks(s, clk, 1)
	if n := s.ContactCount(); n != 1 {
		t.Fatalf("new session tracked %d contacts, want 1", n)
	}
}

func TestSpawnFruitRejectsInvalidTier(t *testing.T) {
	s, _ := newTestSession(t)
	for _, tier := range []int{-1, s.Config().MaxTier() + 1} {
		if _, err := s.SpawnFruit(tier, math.Vec2{X: 180, Y: 400}); !errors.Is(err, ErrInvalidTier) {
			t.Fatalf("tier %d: err = %v, want ErrInvalidTier", tier, err)
		}
	}
	if n := len(s.Fruits()); n != 0 {
		t.Fatalf("invalid spawns created %d fruit", n)
	}
}

func TestNewSessionRejectsBadConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Merge.BatchSize = 0
	if _, err := NewSession(WithConfig(cfg)); err == nil {
		t.Fatalf("NewSession accepted a zero merge batch")
	}

	cfg = config.Default()
	cfg.Fruits[3].Radius = cfg.Fruits[2].Radius
	if _, err := NewSession(WithConfig(cfg)); err == nil {
		t.Fatalf("NewSession accepted a non-increasing tier table")
	}
}
