package arbor

import "time"

// Clock measures time between ticks and optionally caps the tick rate. It is
// the frame clock used by hosts that drive their own loop.
type Clock struct {
	now   func() time.Time
	sleep func(time.Duration)
	last  time.Time
}

// NewClock creates a Clock backed by the system monotonic clock.
func NewClock() *Clock {
	return NewClockWithSource(time.Now, time.Sleep)
}

// NewClockWithSource creates a Clock with an injected time source and sleep
// function.
func NewClockWithSource(now func() time.Time, sleep func(time.Duration)) *Clock {
	return &Clock{now: now, sleep: sleep, last: now()}
}

// Reset restarts measurement from the current time.
func (c *Clock) Reset() {
	c.last = c.now()
}

// Tick returns the time elapsed since the previous Tick (or since construction
// or Reset). When targetFPS > 0 it sleeps first so that ticks never occur more
// often than targetFPS per second.
func (c *Clock) Tick(targetFPS int) time.Duration {
	elapsed := c.now().Sub(c.last)
	if targetFPS > 0 {
		budget := time.Second / time.Duration(targetFPS)
		if elapsed < budget {
			c.sleep(budget - elapsed)
		}
	}
	now := c.now()
	elapsed = now.Sub(c.last)
	c.last = now
	return elapsed
}
