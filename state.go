package tui

import (
	"sync"
	"sync/atomic"

	"github.com/grindlemire/go-tuikit/internal/debug"
)

// State is a retained value that wakes the Scheduler when it changes.
//
// Thread Safety Rules:
//   - Get, Set and Update are safe from any goroutine
//   - Bindings run on the goroutine that called Set
//
// Example usage:
//
//	func (c Counter) Update(h *tui.Hooks, u *tui.Updater) {
//	    count := tui.UseState(h, func() int { return 0 })
//	    h.UseKeyMap(tui.KeyMap{
//	        tui.OnRune('+', func(tui.KeyEvent) { count.Update(func(v int) int { return v + 1 }) }),
//	    })
//	}
type State[T any] struct {
	mu       sync.RWMutex
	value    T
	bindings []*binding[T]
	changed  bool
	wake     func()
}

// binding represents a registered callback that fires when state changes.
type binding[T any] struct {
	id     uint64
	fn     func(T)
	active bool
}

// Unbind is a handle to remove a binding. Call it to prevent
// future callback invocations for the associated binding.
type Unbind func()

// globalBindingID is a global counter for generating unique binding IDs.
var globalBindingID atomic.Uint64

// NewState creates a State that is not owned by any component. Changes to
// it fire bindings but wake no Scheduler.
func NewState[T any](initial T) *State[T] {
	return &State[T]{value: initial}
}

// UseState returns the component's retained State, created with init on
// the first render.
func UseState[T any](h *Hooks, init func() T) *State[T] {
	return useHook(h, func() *State[T] {
		return &State[T]{value: init(), wake: h.tree.wake.Notify}
	})
}

// Get returns the current value.
func (s *State[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set updates the value, notifies all bindings and wakes the Scheduler.
func (s *State[T]) Set(v T) {
	debug.Log("State.Set: setting value to %v", v)
	s.mu.Lock()
	s.value = v
	active, wake := s.markLocked()
	s.mu.Unlock()

	s.notify(v, active, wake)
}

// markLocked flags the change and returns the bindings and waker to run
// once the lock is released. Unbound bindings are dropped here.
func (s *State[T]) markLocked() ([]*binding[T], func()) {
	s.changed = true
	active := make([]*binding[T], 0, len(s.bindings))
	for _, b := range s.bindings {
		if b.active {
			active = append(active, b)
		}
	}
	s.bindings = active
	return active, s.wake
}

func (s *State[T]) notify(v T, active []*binding[T], wake func()) {
	for _, b := range active {
		b.fn(v)
	}
	if wake != nil {
		wake()
	}
}

// Update applies a function to the current value and sets the result.
// fn runs under the state's lock, so concurrent Updates never lose a write;
// it must not call back into s.
//
// Example:
//
//	count.Update(func(v int) int { return v + 1 })
func (s *State[T]) Update(fn func(T) T) {
	s.mu.Lock()
	v := fn(s.value)
	s.value = v
	active, wake := s.markLocked()
	s.mu.Unlock()

	s.notify(v, active, wake)
}

// Bind registers a function to be called when the value changes.
// Returns an Unbind handle to remove the binding.
// Bindings are executed in registration order.
func (s *State[T]) Bind(fn func(T)) Unbind {
	id := globalBindingID.Add(1)

	s.mu.Lock()
	b := &binding[T]{id: id, fn: fn, active: true}
	s.bindings = append(s.bindings, b)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		b.active = false
		s.mu.Unlock()
	}
}

// Changed reports whether Set was called since the last change pass.
func (s *State[T]) Changed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.changed
}

func (s *State[T]) afterUpdate(*Tree) {}

func (s *State[T]) beforeDraw(Rect) {}

// change reports and clears the changed mark.
func (s *State[T]) change() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	changed := s.changed
	s.changed = false
	return changed
}

func (s *State[T]) destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bindings = nil
	s.wake = nil
}
