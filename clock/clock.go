// Package clock provides the time source used for contact and danger timers.
package clock

import (
	"sync"
	"time"
)

// Clock returns the current time. Implementations must carry a monotonic reading
// so durations measured with Sub are immune to wall-clock adjustment.
type Clock interface {
	Now() time.Time
}

// Real reads the system monotonic clock
type Real struct{}

// NewReal creates a system clock
func NewReal() *Real {
	return &Real{}
}

// Now returns the current time with monotonic clock reading
func (Real) Now() time.Time {
	return time.Now()
}

// Mock provides a controllable time source for tests and replays
type Mock struct {
	mu          sync.RWMutex
	currentTime time.Time
}

// NewMock creates a mock clock starting at start
func NewMock(start time.Time) *Mock {
	return &Mock{currentTime: start}
}

// Now returns the current mocked time
func (m *Mock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// Set moves the mock to t
func (m *Mock) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

// Advance moves the mock forward by d
func (m *Mock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}
