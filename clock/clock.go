// Package clock provides a swappable time source so time-dependent code
// (request signing, expiry checks) can be tested deterministically.
package clock

import (
	"sync"
	"time"
)

// Clock supplies the current time. Pass it explicitly to anything that
// needs time; don't reach for time.Now in library code.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// System returns a Clock backed by the real system time, in UTC.
func System() Clock { return systemClock{} }

// Fake is a manually controlled Clock for tests. The zero value starts at
// the zero time; use Set to pin it somewhere meaningful.
type Fake struct {
	mu sync.Mutex
	t  time.Time
}

// NewFake returns a Fake pinned to t.
func NewFake(t time.Time) *Fake {
	return &Fake{t: t.UTC()}
}

func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.t
}

// Set pins the fake to t.
func (f *Fake) Set(t time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.t = t.UTC()
}

// Advance moves the fake forward by d and returns the new reading.
func (f *Fake) Advance(d time.Duration) time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.t = f.t.Add(d)
	return f.t
}
