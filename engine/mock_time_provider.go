package engine

import "time"

// MockTimeProvider is a TimeProvider advanced explicitly, for tests and replays
type MockTimeProvider struct {
	now time.Time
}

func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{now: start}
}

func (m *MockTimeProvider) Now() time.Time {
	return m.now
}

// SetTime jumps the clock to t, backwards jumps are allowed
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.now = t
}

// Advance moves the clock forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.now = m.now.Add(d)
}
