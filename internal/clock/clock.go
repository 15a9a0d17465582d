package clock

import "time"

// Clock abstracts time.Now so round durations are testable.
type Clock interface {
	Now() time.Time
}

// Default implements Clock using the system clock.
type Default struct{}

// Now returns the current time.
func (Default) Now() time.Time {
	return time.Now()
}

// Fixed is a Clock pinned to a settable instant, for tests.
type Fixed struct {
	T time.Time
}

func (f *Fixed) Now() time.Time { return f.T }

// Advance moves the fixed clock forward by d.
func (f *Fixed) Advance(d time.Duration) { f.T = f.T.Add(d) }
