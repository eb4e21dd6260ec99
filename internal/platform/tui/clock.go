package tui

import "time"

// Clock turns tick timestamps into simulation delta times. Deltas are
// clamped to [0, max] so a stalled terminal does not produce one huge step.
type Clock struct {
	last    time.Time
	nominal float64
	max     float64
}

// NewClock creates a clock for a nominal tick length and maximum step, both
// in seconds. The maximum is never shorter than one tick.
func NewClock(nominal, maxDelta float64) *Clock {
	if maxDelta < nominal {
		maxDelta = nominal
	}
	return &Clock{nominal: nominal, max: maxDelta}
}

// Delta returns the seconds since the previous call.
// The first call returns one nominal tick.
func (c *Clock) Delta(now time.Time) float64 {
	if c.last.IsZero() {
		c.last = now
		return c.nominal
	}

	dt := now.Sub(c.last).Seconds()
	c.last = now

	switch {
	case dt < 0:
		return 0
	case dt > c.max:
		return c.max
	default:
		return dt
	}
}
