package main

import (
	"math/rand"
	"testing"
	"time"

	"github.com/automoto/merge-drop/clock"
	"github.com/automoto/merge-drop/game"
)

func TestAutoplayerDropsAndResets(t *testing.T) {
	clk := clock.NewMock(time.Unix(0, 0))
	player := &autoplayer{rng: rand.New(rand.NewSource(3)), dropEvery: 30, games: 2}
	s, err := game.NewSession(
		game.WithClock(clk),
		game.WithRand(rand.New(rand.NewSource(4))),
		game.WithGameOverHandler(player.onGameOver),
	)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	defer s.Close()

	for i := 0; i < 90; i++ {
		clk.Advance(time.Second / 60)
		s.Update()
		player.step(s)
	}
	if n := len(s.Fruits()); n != 3 {
		t.Fatalf("fruit after 90 ticks = %d, want 3 drops", n)
	}

	player.onGameOver(s.Score())
	if !player.step(s) {
		t.Fatalf("autoplayer stopped after the first of two games")
	}
	if n := len(s.Fruits()); n != 0 || player.ticks != 0 {
		t.Fatalf("session not reset: fruit=%d ticks=%d", n, player.ticks)
	}

	player.onGameOver(0)
	if player.step(s) {
		t.Fatalf("autoplayer kept going after its last game")
	}
}
