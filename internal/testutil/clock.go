package testutil

import (
	"sync"
	"time"
)

// Epoch is the default start of a DeterministicClock.
var Epoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// DeterministicClock provides a thread-safe, strictly increasing wall clock
// for tests.
//
// Each call to Now advances the clock by a fixed step, so records stamped in
// sequence get distinct, ordered timestamps and golden output is stable.
// The clock can be reset for test reuse.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type DeterministicClock struct {
	mu    sync.Mutex
	start time.Time
	step  time.Duration
	ticks int64
}

// NewDeterministicClock creates a clock starting at Epoch with a one second step.
//
// The first call to Now() returns Epoch + 1s.
func NewDeterministicClock() *DeterministicClock {
	return NewDeterministicClockAt(Epoch, time.Second)
}

// NewDeterministicClockAt creates a clock starting at start that advances by
// step on every call to Now. A non-positive step is replaced by one second.
func NewDeterministicClockAt(start time.Time, step time.Duration) *DeterministicClock {
	if step <= 0 {
		step = time.Second
	}
	return &DeterministicClock{start: start.UTC(), step: step}
}

// Now advances the clock by one step and returns the new time.
//
// Monotonic: always returns a later time than the previous call.
func (c *DeterministicClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ticks++
	return c.at(c.ticks)
}

// Current returns the current time without advancing.
func (c *DeterministicClock) Current() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.at(c.ticks)
}

// Freeze returns a clock function that always reports the current time.
// Used to force identical timestamps.
func (c *DeterministicClock) Freeze() func() time.Time {
	t := c.Current()
	return func() time.Time { return t }
}

// Reset rewinds the clock to its start.
//
// After Reset(), the next call to Now() returns start + step.
func (c *DeterministicClock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ticks = 0
}

func (c *DeterministicClock) at(ticks int64) time.Time {
	return c.start.Add(time.Duration(ticks) * c.step)
}
