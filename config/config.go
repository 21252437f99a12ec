package config

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// DefaultLayer is the only render layer; archetypes spawn through ecs.Create with it.
const DefaultLayer ecs.LayerID = iota

// TierDef describes one fruit tier. Index 0 is the smallest fruit.
type TierDef struct {
	Name   string
	Radius float64
	Score  int
	Color  color.RGBA
}

// SpawnWeight is the relative chance of a tier being picked as the next drop
type SpawnWeight struct {
	Tier   int
	Weight int
}

// WorldConfig contains container dimensions
type WorldConfig struct {
	Width          float64
	Height         float64
	WallThickness  float64
	FloorThickness float64
	TickRate       int // simulation steps per second
}

// PhysicsConfig contains tuning for the circle physics world
type PhysicsConfig struct {
	Gravity         float64 // px per step^2
	Restitution     float64
	Friction        float64 // tangential damping applied on contact (0-1)
	FrictionAir     float64 // per-step velocity damping for spawned successors
	DropFrictionAir float64 // per-step velocity damping for dropped fruit
	Density         float64 // mass per px^2
	ContactSlop     float64 // distance at which two circles still count as touching
	Iterations      int     // solver passes per step
	CellSize        int     // resolv broad phase cell size
}

// MergeConfig contains merge gating and successor tuning
type MergeConfig struct {
	MinContact     time.Duration // contact must last this long before a merge
	MaxRelSpeed    float64       // px per step
	BatchSize      int           // merges drained per tick
	VelocityDamp   float64       // successor velocity = mean velocity * damp
	NudgeImpulse   float64       // max horizontal impulse applied to a successor
	PulseDuration  time.Duration // visual emphasis window for successors
	PulseMaxScale  float64       // render scale at the start of the pulse
	ContactMapSize int           // initial capacity of the contact record map
}

// DangerConfig contains the game-over rule
type DangerConfig struct {
	LineY    float64       // fruit whose top edge is above this line is in danger
	HoldTime time.Duration // continuous time in danger before game over
}

// DropConfig contains player drop rules
type DropConfig struct {
	SpawnY        float64
	Cooldown      time.Duration
	XMargin       float64 // pointer clamp margin
	WallClearance float64 // extra gap between a dropped fruit and the walls
}

// Game bundles every tuning section used by a session.
// Sessions keep their own copy so tests can change values without touching globals.
type Game struct {
	World        WorldConfig
	Physics      PhysicsConfig
	Merge        MergeConfig
	Danger       DangerConfig
	Drop         DropConfig
	Fruits       []TierDef
	SpawnWeights []SpawnWeight
}

// Global configuration instances
var World WorldConfig
var Physics PhysicsConfig
var Merge MergeConfig
var Danger DangerConfig
var Drop DropConfig
var Fruits []TierDef
var SpawnWeights []SpawnWeight

func init() {
	World = WorldConfig{
		Width:          360,
		Height:         640,
		WallThickness:  24,
		FloorThickness: 26,
		TickRate:       60,
	}

	Physics = PhysicsConfig{
		Gravity:         0.28,
		Restitution:     0.02,
		Friction:        0.12,
		FrictionAir:     0.015,
		DropFrictionAir: 0.012,
		Density:         0.0012,
		ContactSlop:     0.5,
		Iterations:      4,
		CellSize:        32,
	}

	Merge = MergeConfig{
		MinContact:     120 * time.Millisecond,
		MaxRelSpeed:    2.8,
		BatchSize:      4,
		VelocityDamp:   0.6,
		NudgeImpulse:   0.06,
		PulseDuration:  140 * time.Millisecond,
		PulseMaxScale:  1.18,
		ContactMapSize: 64,
	}

	Danger = DangerConfig{
		LineY:    110,
		HoldTime: time.Second,
	}

	Drop = DropConfig{
		SpawnY:        90,
		Cooldown:      300 * time.Millisecond,
		XMargin:       18,
		WallClearance: 6,
	}

	Fruits = []TierDef{
		{Name: "Cherry", Radius: 14, Score: 2, Color: color.RGBA{R: 0xff, G: 0x5a, B: 0x7a, A: 0xff}},
		{Name: "Strawberry", Radius: 18, Score: 5, Color: color.RGBA{R: 0xff, G: 0x3b, B: 0x3b, A: 0xff}},
		{Name: "Grape", Radius: 22, Score: 10, Color: color.RGBA{R: 0xa8, G: 0x55, B: 0xf7, A: 0xff}},
		{Name: "Orange", Radius: 26, Score: 18, Color: color.RGBA{R: 0xfb, G: 0x92, B: 0x3c, A: 0xff}},
		{Name: "Apple", Radius: 30, Score: 28, Color: color.RGBA{R: 0x34, G: 0xd3, B: 0x99, A: 0xff}},
		{Name: "Pear", Radius: 34, Score: 40, Color: color.RGBA{R: 0xa3, G: 0xe6, B: 0x35, A: 0xff}},
		{Name: "Peach", Radius: 38, Score: 55, Color: color.RGBA{R: 0xfd, G: 0xa4, B: 0xaf, A: 0xff}},
		{Name: "Pineapple", Radius: 42, Score: 75, Color: color.RGBA{R: 0xfa, G: 0xcc, B: 0x15, A: 0xff}},
		{Name: "Melon", Radius: 48, Score: 110, Color: color.RGBA{R: 0x22, G: 0xc5, B: 0x5e, A: 0xff}},
		{Name: "Watermelon", Radius: 56, Score: 160, Color: color.RGBA{R: 0x16, G: 0xa3, B: 0x4a, A: 0xff}},
		{Name: "Mega", Radius: 66, Score: 240, Color: color.RGBA{R: 0x60, G: 0xa5, B: 0xfa, A: 0xff}},
	}

	SpawnWeights = []SpawnWeight{
		{Tier: 0, Weight: 38},
		{Tier: 1, Weight: 26},
		{Tier: 2, Weight: 18},
		{Tier: 3, Weight: 10},
		{Tier: 4, Weight: 6},
		{Tier: 5, Weight: 2},
	}
}

// Default returns a copy of the global configuration
func Default() *Game {
	g := &Game{
		World:        World,
		Physics:      Physics,
		Merge:        Merge,
		Danger:       Danger,
		Drop:         Drop,
		Fruits:       append([]TierDef(nil), Fruits...),
		SpawnWeights: append([]SpawnWeight(nil), SpawnWeights...),
	}
	return g
}

// MaxTier returns the index of the terminal tier
func (g *Game) MaxTier() int {
	return len(g.Fruits) - 1
}

// ValidTier reports whether tier indexes the tier table
func (g *Game) ValidTier(tier int) bool {
	return tier >= 0 && tier < len(g.Fruits)
}

// Validate checks the tier table ordering and that thresholds are usable
func (g *Game) Validate() error {
	if len(g.Fruits) == 0 {
		return errors.New("config: empty tier table")
	}
	for i := 1; i < len(g.Fruits); i++ {
		prev, cur := g.Fruits[i-1], g.Fruits[i]
		if cur.Radius <= prev.Radius {
			return fmt.Errorf("config: tier %d radius %.1f not greater than tier %d", i, cur.Radius, i-1)
		}
		if cur.Score <= prev.Score {
			return fmt.Errorf("config: tier %d score %d not greater than tier %d", i, cur.Score, i-1)
		}
	}
	if g.Fruits[0].Radius <= 0 {
		return errors.New("config: tier 0 radius must be positive")
	}
	if g.Merge.BatchSize <= 0 {
		return errors.New("config: merge batch size must be positive")
	}
	if g.Merge.VelocityDamp < 0 || g.Merge.VelocityDamp >= 1 {
		return errors.New("config: merge velocity damping must be in [0, 1)")
	}
	if g.Danger.HoldTime <= 0 {
		return errors.New("config: danger hold time must be positive")
	}
	if g.World.TickRate <= 0 {
		return errors.New("config: tick rate must be positive")
	}
	for _, w := range g.SpawnWeights {
		if !g.ValidTier(w.Tier) {
			return fmt.Errorf("config: spawn weight references unknown tier %d", w.Tier)
		}
		if w.Weight < 0 {
			return fmt.Errorf("config: negative spawn weight for tier %d", w.Tier)
		}
	}
	return nil
}
