package main

import (
	"errors"
	"flag"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/automoto/merge-drop/clock"
	"github.com/automoto/merge-drop/config"
	"github.com/automoto/merge-drop/game"
	"github.com/automoto/merge-drop/persistence"
)

// autoplayer drops the next fruit at a random x every dropEvery ticks and
// resets the session after game over until it has played games rounds
type autoplayer struct {
	rng       *rand.Rand
	dropEvery int
	games     int

	ticks  int
	played int
	over   bool
	store  *persistence.Store
}

func (a *autoplayer) onGameOver(score int) {
	a.over = true
	a.played++
	log.Printf("Game %d finished: score %d after %d ticks", a.played, score, a.ticks)
	if a.store == nil {
		return
	}
	best, err := a.store.RecordScore(score)
	if err != nil {
		log.Printf("Warning: Could not record score: %v", err)
		return
	}
	if best {
		log.Printf("New best score: %d", score)
	}
}

// step runs after every session update. It returns false once all games are done.
func (a *autoplayer) step(s *game.Session) bool {
	if a.over {
		if a.played >= a.games {
			return false
		}
		a.over = false
		a.ticks = 0
		s.Reset()
		return true
	}

	a.ticks++
	if a.ticks%a.dropEvery == 0 {
		x := s.ClampDropX(a.rng.Float64() * s.Config().World.Width)
		if _, err := s.Drop(x); err != nil && !errors.Is(err, game.ErrDropCooldown) {
			log.Printf("Drop failed: %v", err)
		}
	}
	return true
}

func main() {
	games := flag.Int("games", 1, "Number of games to play")
	seed := flag.Int64("seed", 0, "Random seed (0 = time based)")
	dropEvery := flag.Int("drop-every", 30, "Ticks between drops")
	tickRate := flag.Int("tickrate", config.World.TickRate, "Simulation tick rate (updates per second)")
	maxTicks := flag.Int("max-ticks", 60*60*30, "Abandon a game after this many ticks (fast mode)")
	realtime := flag.Bool("realtime", false, "Run at wall-clock speed instead of as fast as possible")
	save := flag.Bool("save", true, "Record best score on disk")
	flag.Parse()

	if *dropEvery <= 0 || *games <= 0 || *tickRate <= 0 {
		log.Fatalf("games, drop-every and tickrate must be positive")
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	player := &autoplayer{
		rng:       rand.New(rand.NewSource(*seed)),
		dropEvery: *dropEvery,
		games:     *games,
	}
	if *save {
		store, err := persistence.Open("merge-drop")
		if err != nil {
			log.Printf("Warning: Could not initialize persistence: %v", err)
		} else {
			player.store = store
			if best, err := store.BestScore(); err == nil {
				log.Printf("Best score so far: %d", best)
			}
		}
	}

	cfg := config.Default()
	cfg.World.TickRate = *tickRate

	log.Printf("Starting merge-drop simulator (games: %d, seed: %d, drop every %d ticks, realtime: %v)",
		*games, *seed, *dropEvery, *realtime)

	if *realtime {
		runRealtime(cfg, player, *seed)
		return
	}
	runFast(cfg, player, *seed, *maxTicks)
}

// runFast advances a mock clock by one tick per update
func runFast(cfg *config.Game, player *autoplayer, seed int64, maxTicks int) {
	clk := clock.NewMock(time.Unix(0, 0))
	session, err := game.NewSession(
		game.WithConfig(cfg),
		game.WithClock(clk),
		game.WithRand(rand.New(rand.NewSource(seed+1))),
		game.WithGameOverHandler(player.onGameOver),
	)
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}
	defer session.Close()

	tick := time.Second / time.Duration(cfg.World.TickRate)
	for {
		clk.Advance(tick)
		session.Update()
		if !player.step(session) {
			return
		}
		if player.ticks >= maxTicks {
			log.Printf("Game %d abandoned after %d ticks: score %d", player.played+1, player.ticks, session.Score())
			player.played++
			if player.played >= player.games {
				return
			}
			player.ticks = 0
			session.Reset()
		}
	}
}

func runRealtime(cfg *config.Game, player *autoplayer, seed int64) {
	session, err := game.NewSession(
		game.WithConfig(cfg),
		game.WithRand(rand.New(rand.NewSource(seed+1))),
		game.WithGameOverHandler(player.onGameOver),
	)
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}
	defer session.Close()

	done := make(chan struct{})
	finished := false
	loop := game.NewLoop(session, cfg.World.TickRate, func(s *game.Session) {
		if finished {
			return
		}
		if !player.step(s) {
			finished = true
			close(done)
		}
	})
	go loop.Run()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigChan:
		log.Println("Shutting down simulator...")
	case <-done:
	}
	loop.Stop()
	log.Printf("Played %d games, last score %d", player.played, session.Score())
}
