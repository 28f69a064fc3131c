package fake

import (
	"context"
	"time"
)

// Clock is an automation clock whose Sleep returns immediately after
// advancing the current time. It records every requested sleep.
type Clock struct {
	now   time.Time
	Slept []time.Duration
	// OnSleep, when set, runs after each sleep. Tests use it to change the
	// scripted environment or cancel a context between polls.
	OnSleep func(d time.Duration)
}

// NewClock returns a Clock starting at a fixed instant.
func NewClock() *Clock {
	return &Clock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *Clock) Now() time.Time { return c.now }

func (c *Clock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.Slept = append(c.Slept, d)
	c.now = c.now.Add(d)
	if c.OnSleep != nil {
		c.OnSleep(d)
	}
	return ctx.Err()
}

// Total returns the sum of all recorded sleeps.
func (c *Clock) Total() time.Duration {
	var total time.Duration
	for _, d := range c.Slept {
		total += d
	}
	return total
}
