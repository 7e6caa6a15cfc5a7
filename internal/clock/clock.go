package clock

import "time"

// Clock reports frame deltas from a monotonic time source.
type Clock struct {
	now     func() time.Time
	start   time.Time
	last    time.Time
	started bool
}

// New returns a clock reading the wall clock's monotonic reading.
func New() *Clock {
	return NewWithSource(time.Now)
}

// NewWithSource returns a clock reading now; tests drive it with a fake source.
func NewWithSource(now func() time.Time) *Clock {
	return &Clock{now: now}
}

// GetDelta returns the seconds since the previous call. The first call returns 0.
func (c *Clock) GetDelta() float64 {
	t := c.now()
	if !c.started {
		c.start = t
		c.last = t
		c.started = true
		return 0
	}
	dt := t.Sub(c.last)
	c.last = t
	if dt < 0 {
		return 0
	}
	return dt.Seconds()
}

// Elapsed returns the time since the first GetDelta call.
func (c *Clock) Elapsed() time.Duration {
	if !c.started {
		return 0
	}
	return c.last.Sub(c.start)
}
