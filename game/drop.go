package game

import (
	gomath "math"

	"github.com/automoto/merge-drop/components"
	"github.com/automoto/merge-drop/systems"
	"github.com/yohamta/donburi/features/math"
)

// ClampDropX limits a pointer position to the drop margin inside the container
func (s *Session) ClampDropX(x float64) float64 {
	return clamp(x, s.cfg.Drop.XMargin, s.cfg.World.Width-s.cfg.Drop.XMargin)
}

// Drop releases the queued next fruit at x, keeping it clear of the walls,
// then rolls a new next tier. Drops closer together than Drop.Cooldown fail.
func (s *Session) Drop(x float64) (components.FruitID, error) {
	if !s.Running() {
		return "", ErrNotRunning
	}
	session := s.session()
	now := s.clock.Now()
	if now.Before(session.CanDropAt) {
		return "", ErrDropCooldown
	}

	tier := session.NextTier
	r := s.cfg.Fruits[tier].Radius
	gap := s.cfg.Drop.WallClearance
	x = clamp(x, r+gap, s.cfg.World.Width-r-gap)

	id, err := s.spawn(tier, math.Vec2{X: x, Y: s.cfg.Drop.SpawnY}, s.cfg.Physics.DropFrictionAir)
	if err != nil {
		return "", err
	}

	session.NextTier = systems.PickWeightedTier(s.rng, s.cfg.SpawnWeights)
	session.CanDropAt = now.Add(s.cfg.Drop.Cooldown)
	return id, nil
}

func clamp(v, lo, hi float64) float64 {
	return gomath.Max(lo, gomath.Min(hi, v))
}
