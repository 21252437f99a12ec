package game

import (
	"log"
	"time"
)

// Loop drives a session at a fixed tick rate on its own goroutine. The session
// must only be touched from OnTick while the loop runs.
type Loop struct {
	session  *Session
	tickRate int
	onTick   func(s *Session)
	stopChan chan struct{}
	doneChan chan struct{}
}

// NewLoop creates a loop; onTick runs after every session update and may be nil
func NewLoop(session *Session, tickRate int, onTick func(s *Session)) *Loop {
	return &Loop{
		session:  session,
		tickRate: tickRate,
		onTick:   onTick,
		stopChan: make(chan struct{}),
		doneChan: make(chan struct{}),
	}
}

// Run blocks until Stop is called
func (l *Loop) Run() {
	defer close(l.doneChan)
	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", l.tickRate)

	for {
		select {
		case <-l.stopChan:
			log.Println("Game loop stopped")
			return
		case <-ticker.C:
			l.tick()
		}
	}
}

// Stop ends Run and waits for the current tick to finish
func (l *Loop) Stop() {
	close(l.stopChan)
	<-l.doneChan
}

func (l *Loop) tick() {
	l.session.Update()
	if l.onTick != nil {
		l.onTick(l.session)
	}
}
