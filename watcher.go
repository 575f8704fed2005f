package tui

import (
	"sync"
	"time"

	"github.com/grindlemire/go-tuikit/internal/debug"
)

// watchHook reads a channel on its own goroutine and hands the values to
// the component during the change pass, on the Scheduler goroutine.
type watchHook[T any] struct {
	noopHook
	ch      <-chan T
	handler func(T)

	mu      sync.Mutex
	pending []T
	started bool
	stopCh  chan struct{}
}

func (w *watchHook[T]) afterUpdate(t *Tree) {
	if w.started {
		return
	}
	w.started = true
	w.stopCh = make(chan struct{})
	go w.run(t.wake.Notify)
}

func (w *watchHook[T]) run(notify func()) {
	for {
		select {
		case <-w.stopCh:
			return
		case val, ok := <-w.ch:
			if !ok {
				return // Channel closed
			}
			w.mu.Lock()
			w.pending = append(w.pending, val)
			w.mu.Unlock()
			notify()
		}
	}
}

func (w *watchHook[T]) change() bool {
	w.mu.Lock()
	values := w.pending
	w.pending = nil
	w.mu.Unlock()

	for _, v := range values {
		w.handler(v)
	}
	return len(values) > 0
}

func (w *watchHook[T]) destroy() {
	if w.stopCh != nil {
		close(w.stopCh)
	}
}

// UseWatch calls fn on the Scheduler goroutine for every value received on
// ch. The channel is read from the component's first render until it is
// closed or the component unmounts; ch is fixed by the first render while
// fn is replaced on every render.
//
// Example:
//
//	tui.UseWatch(h, dataCh, func(s string) {
//	    lines.Update(func(v []string) []string { return append(v, s) })
//	})
func UseWatch[T any](h *Hooks, ch <-chan T, fn func(T)) {
	w := useHook(h, func() *watchHook[T] { return &watchHook[T]{ch: ch} })
	w.handler = fn
}

// timerHook fires at a regular interval.
type timerHook struct {
	noopHook
	interval time.Duration
	handler  func()

	mu      sync.Mutex
	ticks   int
	started bool
	stopCh  chan struct{}
}

func (w *timerHook) afterUpdate(t *Tree) {
	if w.started {
		return
	}
	w.started = true
	w.stopCh = make(chan struct{})
	go w.run(t.wake.Notify)
}

func (w *timerHook) run(notify func()) {
	debug.Log("timerHook started")
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.mu.Lock()
			w.ticks++
			w.mu.Unlock()
			notify()
		}
	}
}

// change fires the handler once however many ticks were missed.
func (w *timerHook) change() bool {
	w.mu.Lock()
	fired := w.ticks > 0
	w.ticks = 0
	w.mu.Unlock()

	if fired {
		w.handler()
	}
	return fired
}

func (w *timerHook) destroy() {
	if w.stopCh != nil {
		close(w.stopCh)
	}
}

// UseInterval calls fn on the Scheduler goroutine every interval while the
// component is mounted. Ticks that pile up while the Scheduler is busy are
// coalesced into one call. A non-positive interval panics.
func (h *Hooks) UseInterval(interval time.Duration, fn func()) {
	if interval <= 0 {
		panic("tui: UseInterval requires a positive interval")
	}
	w := useHook(h, func() *timerHook { return &timerHook{interval: interval} })
	w.handler = fn
}
