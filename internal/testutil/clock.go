package testutil

import (
	"sync"
	"time"
)

// StepClock is a deterministic wall clock for timing tests.
//
// Every call to Now advances the clock by a fixed step, so a measurement
// taken as two consecutive Now calls always spans exactly one step.
//
// Thread-safety: all methods are safe for concurrent use.
type StepClock struct {
	mu    sync.Mutex
	start time.Time
	step  time.Duration
	ticks int64
}

// NewStepClock creates a clock starting at a fixed instant that advances by
// step on every Now call.
func NewStepClock(step time.Duration) *StepClock {
	return &StepClock{
		start: time.Date(2015, time.December, 1, 5, 0, 0, 0, time.UTC),
		step:  step,
	}
}

// Now returns the current instant and advances the clock.
func (c *StepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.start.Add(time.Duration(c.ticks) * c.step)
	c.ticks++
	return t
}

// Ticks returns how many times Now has been called.
func (c *StepClock) Ticks() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ticks
}

// Reset rewinds the clock to its starting instant.
func (c *StepClock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ticks = 0
}
