package reminder

import (
	"sync"
	"time"
)

// FakeClock is a manually advanced Clock. It is exported so the tray and
// console tests can drive reminder loops without waiting. Every After call
// is announced on Waits so callers can synchronize with a goroutine that
// has just gone to sleep.
type FakeClock struct {
	mu      sync.Mutex
	now     time.Time
	waiters []fakeWaiter

	Waits chan time.Duration
}

type fakeWaiter struct {
	deadline time.Time
	ch       chan time.Time
}

// NewFakeClock creates a clock frozen at start
func NewFakeClock(start time.Time) *FakeClock {
	return &FakeClock{
		now:   start,
		Waits: make(chan time.Duration, 64),
	}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *FakeClock) After(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	ch := make(chan time.Time, 1)
	deadline := c.now.Add(d)
	if d <= 0 {
		ch <- c.now
	} else {
		c.waiters = append(c.waiters, fakeWaiter{deadline: deadline, ch: ch})
	}
	c.mu.Unlock()

	select {
	case c.Waits <- d:
	default:
	}
	return ch
}

// Advance moves time forward and fires every wait whose deadline has passed.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
	pending := c.waiters[:0]
	for _, w := range c.waiters {
		if !w.deadline.After(c.now) {
			w.ch <- c.now
			continue
		}
		pending = append(pending, w)
	}
	c.waiters = pending
}

// Pending returns the number of waits that have not fired yet
func (c *FakeClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.waiters)
}
