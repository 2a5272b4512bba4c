// Package clockpkg provides the time source used by services.
//
// Every time sensitive check reads the current instant through a Clock so
// tests can supply deterministic instants.
package clockpkg

import (
	"sync"
	"time"
)

// Clock returns the current instant.
type Clock interface {
	Now() time.Time
}

// Real reads the wall clock.
type Real struct{}

// Now returns the current wall clock time.
func (Real) Now() time.Time { return time.Now() }

// Frozen is a clock stopped at a fixed instant until advanced. Safe for
// concurrent use.
type Frozen struct {
	mu  sync.Mutex
	now time.Time
}

// NewFrozen returns a clock stopped at the given instant.
func NewFrozen(now time.Time) *Frozen {
	return &Frozen{now: now}
}

// Now returns the frozen instant.
func (f *Frozen) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.now
}

// Advance moves the frozen instant forward by d.
func (f *Frozen) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.now = f.now.Add(d)
}
