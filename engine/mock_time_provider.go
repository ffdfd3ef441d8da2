package engine

import (
	"sync"
	"time"
)

// MockTimeProvider provides a controllable time source for testing
// Timers fire synchronously from Advance, in deadline order
type MockTimeProvider struct {
	mu          sync.Mutex
	currentTime time.Time
	timers      []*mockTimer
	seq         uint64
}

type mockTimer struct {
	provider *MockTimeProvider
	deadline time.Time
	seq      uint64
	fn       func()
	done     bool
}

// NewMockTimeProvider creates a new mock time provider with the given start time
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{
		currentTime: startTime,
	}
}

// Now returns the current mocked time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.currentTime
}

// AfterFunc registers fn to run once mocked time reaches now+d
func (m *MockTimeProvider) AfterFunc(d time.Duration, fn func()) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	t := &mockTimer{
		provider: m,
		deadline: m.currentTime.Add(d),
		seq:      m.seq,
		fn:       fn,
	}
	m.timers = append(m.timers, t)
	return t
}

// Stop removes the timer if it has not fired yet
func (t *mockTimer) Stop() bool {
	m := t.provider
	m.mu.Lock()
	defer m.mu.Unlock()

	if t.done {
		return false
	}
	t.done = true
	m.removeLocked(t)
	return true
}

// Advance moves time forward by d, firing every timer that comes due
// Callbacks run without the provider lock held so they may schedule new timers
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.currentTime.Add(d)
	m.mu.Unlock()

	for {
		m.mu.Lock()
		next := m.nextDueLocked(target)
		if next == nil {
			m.currentTime = target
			m.mu.Unlock()
			return
		}
		next.done = true
		m.removeLocked(next)
		if next.deadline.After(m.currentTime) {
			m.currentTime = next.deadline
		}
		m.mu.Unlock()

		next.fn()
	}
}

// SetTime sets the current time without firing timers
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

// Pending returns the number of scheduled timers
func (m *MockTimeProvider) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.timers)
}

// NextDelay returns the time until the earliest pending timer
func (m *MockTimeProvider) NextDelay() (time.Duration, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := m.nextDueLocked(time.Time{})
	if next == nil {
		return 0, false
	}
	return next.deadline.Sub(m.currentTime), true
}

// nextDueLocked returns the earliest timer due at or before limit, zero limit means any
func (m *MockTimeProvider) nextDueLocked(limit time.Time) *mockTimer {
	var best *mockTimer
	for _, t := range m.timers {
		if !limit.IsZero() && t.deadline.After(limit) {
			continue
		}
		if best == nil || t.deadline.Before(best.deadline) ||
			(t.deadline.Equal(best.deadline) && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (m *MockTimeProvider) removeLocked(t *mockTimer) {
	for i, cur := range m.timers {
		if cur == t {
			m.timers = append(m.timers[:i], m.timers[i+1:]...)
			return
		}
	}
}
