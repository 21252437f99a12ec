package components

import (
	"math/rand"
	"time"

	"github.com/automoto/merge-drop/clock"
	"github.com/automoto/merge-drop/config"
	"github.com/automoto/merge-drop/physics"
	"github.com/yohamta/donburi"
)

// SessionState is the game-over state machine
type SessionState int

const (
	SessionActive SessionState = iota
	SessionOver
)

func (s SessionState) String() string {
	if s == SessionOver {
		return "over"
	}
	return "active"
}

// SessionData stores score and danger bookkeeping.
// This is a singleton component - it is discarded with the world on reset.
type SessionData struct {
	State     SessionState
	Score     int
	Merges    int
	Holding   bool      // something is above the danger line
	HoldStart time.Time // valid while Holding
	NextTier  int
	CanDropAt time.Time
}

// ClearHold stops the danger hold timer
func (s *SessionData) ClearHold() {
	s.Holding = false
	s.HoldStart = time.Time{}
}

var Session = donburi.NewComponentType[SessionData]()

// RuntimeData holds the collaborators systems need.
// This is a singleton component.
type RuntimeData struct {
	Engine     physics.Engine
	Clock      clock.Clock
	Config     *config.Game
	Rand       *rand.Rand
	OnGameOver func(score int)
}

var Runtime = donburi.NewComponentType[RuntimeData]()
