// Package game exposes a merge-drop session to the surrounding shell: spawning
// and dropping fruit, reading score and state, and resetting.
package game

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/automoto/merge-drop/clock"
	"github.com/automoto/merge-drop/components"
	"github.com/automoto/merge-drop/config"
	"github.com/automoto/merge-drop/physics"
	"github.com/automoto/merge-drop/systems"
	"github.com/automoto/merge-drop/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

var (
	ErrInvalidTier  = errors.New("invalid fruit tier")
	ErrNotRunning   = errors.New("session is over")
	ErrDropCooldown = errors.New("drop on cooldown")
)

// EngineFactory builds a fresh physics engine for each session start
type EngineFactory func(cfg *config.Game) physics.Engine

// NewPhysicsWorld is the default EngineFactory
func NewPhysicsWorld(cfg *config.Game) physics.Engine {
	return physics.NewWorld(cfg.Physics, cfg.World.Width, cfg.World.Height)
}

type Option func(*Session)

// WithConfig replaces the default configuration
func WithConfig(cfg *config.Game) Option {
	return func(s *Session) { s.cfg = cfg }
}

func WithClock(c clock.Clock) Option {
	return func(s *Session) { s.clock = c }
}

// WithRand sets the source used for drop tiers and merge nudges
func WithRand(r *rand.Rand) Option {
	return func(s *Session) { s.rng = r }
}

func WithEngineFactory(f EngineFactory) Option {
	return func(s *Session) { s.newEngine = f }
}

// WithGameOverHandler is called once when the session transitions to over
func WithGameOverHandler(h func(score int)) Option {
	return func(s *Session) { s.onGameOver = h }
}

// Session owns one game: its world, its engine and the engine subscription.
// It is single-threaded; call every method from the tick goroutine.
type Session struct {
	cfg        *config.Game
	clock      clock.Clock
	rng        *rand.Rand
	newEngine  EngineFactory
	onGameOver func(score int)

	ecs    *ecs.ECS
	engine physics.Engine
	sub    physics.SubscriptionID
	live   bool
	resets int
}

// NewSession validates the configuration and starts the first game
func NewSession(opts ...Option) (*Session, error) {
	s := &Session{
		cfg:       config.Default(),
		clock:     clock.NewReal(),
		newEngine: NewPhysicsWorld,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if err := s.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}

	s.start()
	return s, nil
}

func (s *Session) start() {
	world := donburi.NewWorld()
	e := ecs.NewECS(world)

	// One tick: physics step, contact dispatch, merge drain, danger check.
	e.AddSystem(systems.WithRunningCheck(systems.UpdatePhysics))
	e.AddSystem(systems.WithRunningCheck(systems.DispatchContacts))
	e.AddSystem(systems.WithRunningCheck(systems.UpdateMerges))
	e.AddSystem(systems.WithRunningCheck(systems.UpdateDanger))
	e.AddSystem(systems.WithRunningCheck(systems.UpdatePulses))

	s.ecs = e
	s.engine = s.newEngine(s.cfg)

	factory.CreateSession(e, components.RuntimeData{
		Engine:     s.engine,
		Clock:      s.clock,
		Config:     s.cfg,
		Rand:       s.rng,
		OnGameOver: s.onGameOver,
	})
	factory.CreateContainer(e)

	components.ContactEvents.Subscribe(world, systems.OnContact)
	s.sub = s.engine.Subscribe(func(c physics.Contact) {
		components.ContactEvents.Publish(world, c)
	})
	s.live = true

	session := s.session()
	session.NextTier = systems.PickWeightedTier(s.rng, s.cfg.SpawnWeights)
	log.Printf("Session started (reset %d): %d tiers, next tier %d", s.resets, len(s.cfg.Fruits), session.NextTier)
}

// stop detaches the engine subscription and the world subscriber so nothing
// from the old session can run against the new one
func (s *Session) stop() {
	if !s.live {
		return
	}
	s.engine.Unsubscribe(s.sub)
	components.ContactEvents.Unsubscribe(s.ecs.World, systems.OnContact)
	s.live = false
}

// Reset discards every entity, contact record, queued merge, claim, score and
// hold timer and starts a new game on a new engine
func (s *Session) Reset() {
	s.stop()
	s.resets++
	s.start()
}

// Close detaches the session from its engine. The session must not be used after.
func (s *Session) Close() {
	s.stop()
}

// Update runs one simulation tick. It does nothing once the session is over.
func (s *Session) Update() {
	if !s.live {
		return
	}
	s.ecs.Update()
}

func (s *Session) session() *components.SessionData {
	session, _ := systems.GetSession(s.ecs.World)
	return session
}

func (s *Session) Score() int {
	return s.session().Score
}

func (s *Session) State() components.SessionState {
	return s.session().State
}

func (s *Session) Running() bool {
	return s.live && s.State() == components.SessionActive
}

// NextTier is the tier the next Drop will spawn
func (s *Session) NextTier() int {
	return s.session().NextTier
}

// HoldStart returns when the danger hold began, if it is running
func (s *Session) HoldStart() (time.Time, bool) {
	session := s.session()
	return session.HoldStart, session.Holding
}

// Config returns the session's configuration. Treat it as read-only.
func (s *Session) Config() *config.Game {
	return s.cfg
}

// World exposes the entity registry for renderers and tests
func (s *Session) World() donburi.World {
	return s.ecs.World
}

// ContactCount is the number of tracked contact records
func (s *Session) ContactCount() int {
	contacts, _ := systems.GetContacts(s.ecs.World)
	return contacts.Len()
}

// QueueLen is the number of merges waiting to be processed
func (s *Session) QueueLen() int {
	queue, _ := systems.GetMergeQueue(s.ecs.World)
	return queue.Len()
}

// MergingCount is the number of fruit claimed by pending merges
func (s *Session) MergingCount() int {
	queue, _ := systems.GetMergeQueue(s.ecs.World)
	return len(queue.Merging)
}

// SpawnFruit places a fruit of tier at pos. It is the raw entry point used by
// Drop; it ignores cooldown and clamping.
func (s *Session) SpawnFruit(tier int, pos math.Vec2) (components.FruitID, error) {
	return s.spawn(tier, pos, s.cfg.Physics.FrictionAir)
}

func (s *Session) spawn(tier int, pos math.Vec2, frictionAir float64) (components.FruitID, error) {
	if !s.Running() {
		return "", ErrNotRunning
	}
	if !s.cfg.ValidTier(tier) {
		return "", fmt.Errorf("spawn tier %d: %w", tier, ErrInvalidTier)
	}
	entry := factory.CreateFruit(s.ecs, tier, pos, frictionAir)
	return components.Fruit.Get(entry).ID, nil
}
