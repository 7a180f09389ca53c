// Package clock abstracts wall-clock reads so idle-gap and proration logic
// stays deterministic under test.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

func System() Clock { return systemClock{} }

// Fixed is a manually advanced clock for tests.
type Fixed struct {
	Current time.Time
}

func NewFixed(t time.Time) *Fixed { return &Fixed{Current: t} }

func (f *Fixed) Now() time.Time { return f.Current }

func (f *Fixed) Advance(d time.Duration) { f.Current = f.Current.Add(d) }

func (f *Fixed) Set(t time.Time) { f.Current = t }
