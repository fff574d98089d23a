// Package clock abstracts wall-clock reads so time-dependent state
// (session expiry, cooldown expiry, challenge deadlines, daily resets)
// stays deterministic under test. Services take a Clock instead of calling
// time.Now directly; there are no background timers anywhere in the gate.
package clock

import "time"

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

// System reads the real wall clock.
type System struct{}

// Now returns time.Now().
func (System) Now() time.Time { return time.Now() }

// Fake is a manually advanced clock for tests. Not goroutine-safe; the gate
// is single-threaded per client, and so are its tests.
type Fake struct {
	Current time.Time
}

// NewFake returns a Fake pinned to t.
func NewFake(t time.Time) *Fake { return &Fake{Current: t} }

// Now returns the pinned instant.
func (f *Fake) Now() time.Time { return f.Current }

// Advance moves the fake clock forward by d.
func (f *Fake) Advance(d time.Duration) { f.Current = f.Current.Add(d) }

// Set pins the fake clock to t.
func (f *Fake) Set(t time.Time) { f.Current = t }
