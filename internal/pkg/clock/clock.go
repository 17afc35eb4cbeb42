// Package clock stamps recorded rolls with a time
package clock

import "time"

//go:generate mockgen -destination=mock/mock.go -package=mockclock github.com/KirkDiggler/rpg-stats/internal/pkg/clock Clock

// Clock tells a roller when a roll happened
type Clock interface {
	Now() time.Time
}

// Real reads the system clock
type Real struct{}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now()
}

// New returns the system clock
func New() Clock {
	return &Real{}
}

// Fixed always reports the same instant
type Fixed struct {
	at time.Time
}

// NewFixed returns a clock stopped at t
func NewFixed(t time.Time) *Fixed {
	return &Fixed{at: t}
}

// Now returns the fixed instant
func (c *Fixed) Now() time.Time {
	return c.at
}

// Advance moves the fixed instant forward by d
func (c *Fixed) Advance(d time.Duration) {
	c.at = c.at.Add(d)
}
