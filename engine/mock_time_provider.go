package engine

import (
	"sync"
	"time"
)

// MockTimeProvider is a controllable TimeSource for tests
// Safe to advance from the test goroutine while the clock reads it
type MockTimeProvider struct {
	mu          sync.Mutex
	currentTime time.Time
	step        time.Duration
}

// NewMockTimeProvider creates a mock starting at startTime
// A non-zero step is added on every Now call so each tick observes progress
func NewMockTimeProvider(startTime time.Time, step time.Duration) *MockTimeProvider {
	return &MockTimeProvider{currentTime: startTime, step: step}
}

func (m *MockTimeProvider) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(m.step)
	return m.currentTime
}

func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}
