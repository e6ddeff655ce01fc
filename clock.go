package scrollview

import (
	"sync"
	"time"
)

// ManualClock is a controllable time source for tests and for hosts that
// drive the loop from their own frame clock.
//
//	clock := scrollview.NewManualClock(time.Unix(0, 0))
//	loop := scrollview.NewLoop(scrollview.WithNow(clock.Now))
//	...
//	clock.Advance(16 * time.Millisecond)
//	loop.RunPending()
type ManualClock struct {
	mu  sync.RWMutex
	now time.Time
}

// NewManualClock creates a clock that starts at start and only moves when
// told to.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current mocked time.
func (c *ManualClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

// Set sets the current time.
func (c *ManualClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}
