package core

import "time"

// Clock supplies monotonic elapsed time in milliseconds.
type Clock interface {
	Millis() int64
}

// SystemClock measures wall time elapsed since it was created.
type SystemClock struct {
	start time.Time
}

// NewSystemClock starts a clock at zero.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Millis returns milliseconds since the clock was created.
func (c *SystemClock) Millis() int64 {
	return time.Since(c.start).Milliseconds()
}

// ManualClock only moves when told to. Used for replays and tests.
type ManualClock struct {
	now int64
}

// NewManualClock creates a clock reading now.
func NewManualClock(now int64) *ManualClock {
	return &ManualClock{now: now}
}

// Millis returns the current reading.
func (c *ManualClock) Millis() int64 {
	return c.now
}

// Advance moves the clock forward by ms milliseconds.
func (c *ManualClock) Advance(ms int64) {
	c.now += ms
}

// Set moves the clock to ms. Going backwards is ignored to stay monotonic.
func (c *ManualClock) Set(ms int64) {
	if ms > c.now {
		c.now = ms
	}
}
