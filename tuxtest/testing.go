package tuxtest

import (
	"sync"
	"time"
)

// MockLatencyProvider is a mock bot connection for testing purposes
// that returns predefined latency readings and tracks how many were
// taken. It is safe for concurrent use.
type MockLatencyProvider struct {
	mu              sync.Mutex
	mockedLatencies []time.Duration
	last            time.Duration
	calls           int
}

// NewMockLatencyProvider constructs a mock provider whose first
// reading is latency.
func NewMockLatencyProvider(latency time.Duration) *MockLatencyProvider {
	return &MockLatencyProvider{
		mockedLatencies: []time.Duration{latency},
	}
}

// Latency returns the next enqueued reading. Once the queue drains,
// the last reading repeats.
func (m *MockLatencyProvider) Latency() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls++
	if len(m.mockedLatencies) > 0 {
		m.last = m.mockedLatencies[0]
		m.mockedLatencies = m.mockedLatencies[1:]
	}
	return m.last
}

// EnqueueLatency enqueues readings to be returned sequentially.
func (m *MockLatencyProvider) EnqueueLatency(latencies ...time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.mockedLatencies = append(m.mockedLatencies, latencies...)
}

// Calls returns how many readings were taken.
func (m *MockLatencyProvider) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.calls
}

// Reset clears the call count without touching enqueued readings.
func (m *MockLatencyProvider) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = 0
}
