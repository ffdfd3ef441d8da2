package engine

import "time"

// Timer is a pending one-shot callback
type Timer interface {
	// Stop cancels the callback, false if it already fired or was stopped
	Stop() bool
}

// TimerProvider supplies wall time and one-shot timers to the game clock
type TimerProvider interface {
	Now() time.Time
	AfterFunc(d time.Duration, fn func()) Timer
}

// TimeProvider provides the real system time with monotonic clock readings
type TimeProvider struct{}

// NewTimeProvider creates a new monotonic time provider
func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *TimeProvider) Now() time.Time {
	return time.Now()
}

// AfterFunc schedules fn on its own goroutine after d
func (p *TimeProvider) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}
