package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/homebot/internal/common/clock Clock

// Clock supplies the current time to services, so game expiry and checklist
// days can be tested at fixed instants
type Clock interface {
	Now() time.Time
}

// DefaultClock implements the Clock interface using the system clock
type DefaultClock struct{}

// New returns the system clock
func New() *DefaultClock {
	return &DefaultClock{}
}

// Now returns the current time in UTC without its monotonic reading, so it
// compares equal to the same instant read back from storage
func (c *DefaultClock) Now() time.Time {
	return time.Now().UTC().Round(0)
}
