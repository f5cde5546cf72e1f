package sim

import (
	"sync/atomic"
	"time"
)

// Clock is the single time source of a game, in milliseconds since it started.
// Timers compare against it by subtraction only.
type Clock interface {
	Now() int64
}

// SystemClock reads the monotonic wall clock.
type SystemClock struct {
	start time.Time
}

// NewSystemClock starts a clock at zero.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Now implements Clock.
func (c *SystemClock) Now() int64 {
	return time.Since(c.start).Milliseconds()
}

// ManualClock only moves when told to. Used for deterministic ticks.
type ManualClock struct {
	ms atomic.Int64
}

// Now implements Clock.
func (c *ManualClock) Now() int64 {
	return c.ms.Load()
}

// Advance moves the clock forward by ms milliseconds.
func (c *ManualClock) Advance(ms int64) {
	c.ms.Add(ms)
}

// Set jumps the clock to ms.
func (c *ManualClock) Set(ms int64) {
	c.ms.Store(ms)
}
