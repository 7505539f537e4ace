package arena

import "time"

// Clock converts variable frame times into a whole number of fixed ticks.
type Clock struct {
	Interval time.Duration
	acc      time.Duration
}

func NewClock(interval time.Duration) *Clock {
	return &Clock{Interval: interval}
}

// Advance adds a frame's elapsed time and returns how many ticks are due.
// Long frames are clamped to MaxFrameDelta.
func (c *Clock) Advance(dt time.Duration) int {
	if dt < 0 {
		dt = 0
	}
	if dt > MaxFrameDelta {
		dt = MaxFrameDelta
	}
	c.acc += dt
	n := int(c.acc / c.Interval)
	c.acc -= time.Duration(n) * c.Interval
	return n
}

// Reset drops any partially accumulated tick.
func (c *Clock) Reset() { c.acc = 0 }
