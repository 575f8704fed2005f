package tui

import (
	"context"
	"sync"
)

// Subscription is one subscriber's private event queue.
//
// The Distributor is the only writer and the owning hook the only reader.
// The Distributor holds it weakly, so dropping or closing the handle is
// enough to unsubscribe.
type Subscription struct {
	mu     sync.Mutex
	queue  []Event
	waker  func()
	closed bool

	ready chan struct{} // signalled on push, buffered 1
	done  chan struct{} // closed by Close
}

func newSubscription() *Subscription {
	return &Subscription{
		ready: make(chan struct{}, 1),
		done:  make(chan struct{}),
	}
}

// push appends ev and fires the armed waker, if any.
// Returns false if the subscription is closed.
func (s *Subscription) push(ev Event) bool {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return false
	}
	s.queue = append(s.queue, ev)
	waker := s.waker
	s.waker = nil
	s.mu.Unlock()

	select {
	case s.ready <- struct{}{}:
	default:
	}
	if waker != nil {
		waker()
	}
	return true
}

// Poll blocks until an event is queued and returns the oldest one.
// It returns ErrSubscriptionClosed once the subscription is closed.
func (s *Subscription) Poll(ctx context.Context) (Event, error) {
	for {
		if ev, ok, err := s.pop(); ok || err != nil {
			return ev, err
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-s.done:
		case <-s.ready:
		}
	}
}

func (s *Subscription) pop() (Event, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, false, ErrSubscriptionClosed
	}
	if len(s.queue) == 0 {
		return nil, false, nil
	}
	ev := s.queue[0]
	s.queue[0] = nil
	s.queue = s.queue[1:]
	return ev, true, nil
}

// TryPoll returns the oldest queued event without blocking.
func (s *Subscription) TryPoll() (Event, bool) {
	ev, ok, _ := s.pop()
	return ev, ok
}

// Drain removes and returns every queued event in arrival order, then arms
// waker to be called once on the next push. A nil waker disarms.
func (s *Subscription) Drain(waker func()) []Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	events := s.queue
	s.queue = nil
	s.waker = waker
	return events
}

// Len returns the number of queued events.
func (s *Subscription) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

// Close ends the subscription. Queued events are discarded and the
// Distributor drops its reference on its next pump.
func (s *Subscription) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	s.queue = nil
	s.waker = nil
	close(s.done)
}

// Closed reports whether Close has been called.
func (s *Subscription) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
