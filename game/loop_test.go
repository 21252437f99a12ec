package game

import (
	"testing"
	"time"
)

func TestLoopTicksUntilStopped(t *testing.T) {
	s, _ := newTestSession(t)
	ticks := make(chan struct{}, 16)
	loop := NewLoop(s, 240, func(*Session) {
		select {
		case ticks <- struct{}{}:
		default:
		}
	})

	go loop.Run()

	deadline := time.After(2 * time.Second)
	for i := 0; i < 3; i++ {
		select {
		case <-ticks:
		case <-deadline:
			loop.Stop()
			t.Fatalf("loop ticked %d times before timeout, want 3", i)
		}
	}
	loop.Stop()

	for len(ticks) > 0 {
		<-ticks
	}
	time.Sleep(20 * time.Millisecond)
	if len(ticks) != 0 {
		t.Fatalf("loop ticked after Stop")
	}
}
