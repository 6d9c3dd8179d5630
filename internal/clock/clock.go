// Package clock abstracts time so run durations are deterministic in tests.
package clock

import "time"

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system time.
type RealClock struct{}

// Now returns the current system time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// FakeClock is a manually driven Clock. Each call to Now advances it by Step.
type FakeClock struct {
	current time.Time

	// Step is added after every Now call; zero keeps the time fixed
	Step time.Duration
}

// NewFakeClock creates a FakeClock starting at t.
func NewFakeClock(t time.Time) *FakeClock {
	return &FakeClock{current: t}
}

// Now returns the current fake time and then advances it by Step.
func (c *FakeClock) Now() time.Time {
	now := c.current
	c.current = c.current.Add(c.Step)
	return now
}

// Advance moves the fake time forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}

// Elapsed returns the time between start and c.Now().
func Elapsed(c Clock, start time.Time) time.Duration {
	return c.Now().Sub(start)
}
