package solver

import "time"

// Clock bounds a search by wall-clock time. The zero budget means no limit.
//
// Search loops poll Expired at every cell visit rather than racing a timer
// goroutine, so a Clock is safe to reuse across attempts with Reset and its
// TimedOut flag tells an inconclusive result apart from a definitive one.
type Clock struct {
	budget   time.Duration
	start    time.Time
	timedOut bool
}

// NewClock creates a clock with the given budget and starts it.
func NewClock(budget time.Duration) *Clock {
	return &Clock{budget: budget, start: time.Now()}
}

// Reset restarts the clock for a fresh attempt and clears the timeout flag.
func (c *Clock) Reset() {
	c.start = time.Now()
	c.timedOut = false
}

// Expired reports whether the budget is spent. Once expired, the clock
// stays expired until Reset.
func (c *Clock) Expired() bool {
	if c.timedOut {
		return true
	}
	if c.budget <= 0 {
		return false
	}
	if time.Since(c.start) >= c.budget {
		c.timedOut = true
	}
	return c.timedOut
}

// TimedOut reports whether a previous Expired call hit the budget.
func (c *Clock) TimedOut() bool { return c.timedOut }

// Remaining returns the unspent portion of the budget, or zero when expired.
func (c *Clock) Remaining() time.Duration {
	if c.budget <= 0 {
		return 0
	}
	r := c.budget - time.Since(c.start)
	if r < 0 {
		return 0
	}
	return r
}
