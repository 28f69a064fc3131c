package fake

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestClock_Advances(t *testing.T) {
	c := NewClock()
	start := c.Now()
	var seen []time.Duration
	c.OnSleep = func(d time.Duration) { seen = append(seen, d) }

	for _, d := range []time.Duration{time.Second, 300 * time.Millisecond} {
		if err := c.Sleep(context.Background(), d); err != nil {
			t.Fatal(err)
		}
	}
	if got := c.Now().Sub(start); got != 1300*time.Millisecond {
		t.Errorf("advanced %s, want 1.3s", got)
	}
	if c.Total() != 1300*time.Millisecond || len(seen) != 2 {
		t.Errorf("Total = %s, OnSleep calls = %d", c.Total(), len(seen))
	}
}

func TestClock_CancelledContext(t *testing.T) {
	c := NewClock()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := c.Sleep(ctx, time.Second); !errors.Is(err, context.Canceled) {
		t.Errorf("Sleep on cancelled ctx = %v", err)
	}
	if len(c.Slept) != 0 {
		t.Error("cancelled sleep must not advance the clock")
	}
}
