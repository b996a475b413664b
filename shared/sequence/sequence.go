// Package sequence mints int64 identifiers.
package sequence

import (
	"sync"
	"time"
)

type Sequence interface {
	Next() int64
}

type clock struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

// NewClock returns a Sequence of Unix milliseconds that never repeats or goes backwards,
// even when called twice in the same millisecond or when the wall clock steps back.
func NewClock() Sequence {
	return NewClockFrom(time.Now)
}

// NewClockFrom is NewClock with an injectable time source.
func NewClockFrom(now func() time.Time) Sequence {
	return &clock{now: now}
}

func (c *clock) Next() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.last = max(c.now().UnixMilli(), c.last+1)

	return c.last
}
