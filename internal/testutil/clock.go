package testutil

import (
	"fmt"
	"sync"
	"time"
)

// StubClock is a settable pastebin.Clock for operation records.
type StubClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewStubClock creates a StubClock reading t until advanced.
func NewStubClock(t time.Time) *StubClock {
	return &StubClock{now: t}
}

// FixedClock returns a StubClock at the creation time of the provider's
// sample paste, 2011-02-17 14:34:20 UTC (Unix 1297953260).
func FixedClock() *StubClock {
	return NewStubClock(time.Unix(1297953260, 0).UTC())
}

func (c *StubClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d, e.g. to give an operation a duration.
func (c *StubClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// StubIDGenerator is a pastebin.IDGenerator producing operation IDs
// "op-1", "op-2", ... in place of UUIDs.
type StubIDGenerator struct {
	mu   sync.Mutex
	next int
}

func NewStubIDGenerator() *StubIDGenerator {
	return &StubIDGenerator{}
}

func (g *StubIDGenerator) New() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return fmt.Sprintf("op-%d", g.next)
}
