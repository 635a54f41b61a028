package clock

import (
	"sync"
	"time"
)

type FakeClock struct {
	mu  sync.Mutex
	now time.Time
	loc *time.Location
}

func NewFakeClock(t time.Time) *FakeClock {
	return &FakeClock{now: t.UTC(), loc: time.UTC}
}

// In makes Now report times in loc, like a clock built by Provide.
func (c *FakeClock) In(loc *time.Location) *FakeClock {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loc = loc
	return c
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now.In(c.loc)
}

func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t.UTC()
}
