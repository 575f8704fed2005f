package tui

import (
	"context"
	"io"
	"sync"
)

// MockSource is an EventSource for testing.
// Events are returned in order; once exhausted, Next returns the configured
// error, or io.EOF when none was set.
type MockSource struct {
	mu     sync.Mutex
	events []Event
	index  int
	err    error
}

// Ensure MockSource implements EventSource.
var _ EventSource = (*MockSource)(nil)

// NewMockSource creates a MockSource with the given events.
func NewMockSource(events ...Event) *MockSource {
	return &MockSource{events: events}
}

// FailWith makes Next return err after the scripted events are consumed.
func (m *MockSource) FailWith(err error) *MockSource {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
	return m
}

// Next returns the next scripted event without blocking.
func (m *MockSource) Next(ctx context.Context) (Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.index >= len(m.events) {
		if m.err != nil {
			return nil, m.err
		}
		return nil, io.EOF
	}
	ev := m.events[m.index]
	m.index++
	return ev, nil
}

// AddEvents appends more events to the script.
func (m *MockSource) AddEvents(events ...Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, events...)
}

// Remaining returns the number of events yet to be returned.
func (m *MockSource) Remaining() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.events) - m.index
}
