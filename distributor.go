package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"weak"

	"github.com/grindlemire/go-tuikit/internal/debug"
)

// Distributor fans events from one EventSource out to every live
// Subscription.
//
// The registry holds weak references only: a subscription that has been
// closed or garbage collected is dropped on the next Pump. Pump must be
// called from one goroutine at a time; Subscribe, Cancel and Len are safe
// from any goroutine.
type Distributor struct {
	source EventSource

	mu   sync.Mutex
	subs []weak.Pointer[Subscription]
	quit KeyPattern

	pumpMu    sync.Mutex
	cancelled atomic.Bool
	exhausted atomic.Bool
}

// NewDistributor creates a Distributor reading from source.
// The termination pattern defaults to Ctrl+C.
func NewDistributor(source EventSource) *Distributor {
	return &Distributor{source: source, quit: CtrlC}
}

// SetQuitPattern replaces the termination pattern. A zero pattern disables
// termination by key.
func (d *Distributor) SetQuitPattern(p KeyPattern) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.quit = p
}

// Subscribe registers a new, empty subscription and returns its owning handle.
func (d *Distributor) Subscribe() *Subscription {
	s := newSubscription()
	d.mu.Lock()
	d.subs = append(d.subs, weak.Make(s))
	n := len(d.subs)
	d.mu.Unlock()

	debug.Log("Distributor.Subscribe: %d registered", n)
	return s
}

// Pump reads exactly one event and delivers it to every live subscription.
//
// An event matching the termination pattern sets the cancellation flag and
// is delivered to nobody. Once the source reports io.EOF every later call
// returns io.EOF without reading. Source failures are wrapped in ErrSource;
// context errors are returned as is.
func (d *Distributor) Pump(ctx context.Context) error {
	d.pumpMu.Lock()
	defer d.pumpMu.Unlock()

	if d.exhausted.Load() {
		return io.EOF
	}

	ev, err := d.source.Next(ctx)
	if err != nil {
		switch {
		case errors.Is(err, io.EOF):
			d.exhausted.Store(true)
			debug.Log("Distributor.Pump: end of stream")
			return io.EOF
		case ctx.Err() != nil && errors.Is(err, ctx.Err()):
			return err
		default:
			debug.Error("Distributor.Pump: source error: %v", err)
			return fmt.Errorf("%w: %w", ErrSource, err)
		}
	}

	if d.isQuit(ev) {
		debug.Log("Distributor.Pump: termination pattern received")
		d.Cancel()
		return nil
	}

	for _, s := range d.live() {
		s.push(ev)
	}
	return nil
}

// live resolves the registry, rebuilding it from the survivors.
func (d *Distributor) live() []*Subscription {
	d.mu.Lock()
	defer d.mu.Unlock()

	kept := make([]weak.Pointer[Subscription], 0, len(d.subs))
	targets := make([]*Subscription, 0, len(d.subs))
	for _, wp := range d.subs {
		s := wp.Value()
		if s == nil || s.Closed() {
			continue
		}
		kept = append(kept, wp)
		targets = append(targets, s)
	}
	if pruned := len(d.subs) - len(kept); pruned > 0 {
		debug.Log("Distributor.Pump: pruned %d subscriptions", pruned)
	}
	d.subs = kept
	return targets
}

func (d *Distributor) isQuit(ev Event) bool {
	ke, ok := ev.(KeyEvent)
	if !ok {
		return false
	}
	d.mu.Lock()
	p := d.quit
	d.mu.Unlock()
	return !p.IsZero() && p.Matches(ke)
}

// Cancel sets the cancellation flag.
func (d *Distributor) Cancel() {
	d.cancelled.Store(true)
}

// Cancelled reports whether the cancellation flag is set.
func (d *Distributor) Cancelled() bool {
	return d.cancelled.Load()
}

// Exhausted reports whether the source has reached end of stream.
func (d *Distributor) Exhausted() bool {
	return d.exhausted.Load()
}

// Len returns the number of registered references, including any not yet
// found dead.
func (d *Distributor) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.subs)
}
