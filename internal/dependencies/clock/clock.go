package clock

import "time"

// Clock abstracts the current time so tests can pin timestamps
type Clock interface {
	Now() time.Time
}

// RealClock is the system clock
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current system time
func (c *RealClock) Now() time.Time {
	return time.Now()
}
