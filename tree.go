package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"reflect"
	rtdebug "runtime/debug"
	"sync"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-tuikit/internal/debug"
)

// ComponentArea is one component's rectangle from the last paint.
type ComponentArea struct {
	Path string
	Rect Rect
}

// Tree owns the root component, the screen and the Distributor, and runs
// the update, paint, wait loop.
//
// All component code (Update, Draw and hook callbacks) runs on the
// goroutine that called Run or Render. Input is pumped on a second
// goroutine that only touches subscription queues.
type Tree struct {
	rootEl Element
	root   *instance

	screen tcell.Screen
	source EventSource
	dist   *Distributor
	system *System
	quit   KeyPattern
	mouse  bool
	paste  bool

	// wake is notified by state cells, watchers and subscriptions;
	// pumped after every Pump.
	wake   *wakeSource
	pumped *wakeSource
	// resize is the Tree's own subscription, used to resync the screen.
	resize *Subscription

	// ctx outlives a single Run and is cancelled by Close.
	ctx    context.Context
	cancel context.CancelFunc

	// current is the path of the component running, for PassError.
	current string
	frame   []ComponentArea

	mu    sync.Mutex
	areas []ComponentArea

	opened bool

	// life guards the running and closed transitions.
	life    sync.Mutex
	running bool
	closed  bool
}

// NewTree creates a Tree for root. The screen is not initialized until the
// first Run or Render.
func NewTree(root Element, opts ...Option) (*Tree, error) {
	if root.Component == nil {
		return nil, ErrNilRoot
	}

	t := &Tree{
		rootEl: root,
		quit:   CtrlC,
		mouse:  true,
		paste:  true,
		wake:   newWakeSource(),
		pumped: newWakeSource(),
	}
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, fmt.Errorf("tui: invalid option: %w", err)
		}
	}

	if t.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("tui: create screen: %w", err)
		}
		t.screen = screen
	}
	if t.source == nil {
		t.source = NewScreenSource(t.screen)
	}

	t.dist = NewDistributor(t.source)
	t.dist.SetQuitPattern(t.quit)
	t.system = &System{tree: t}
	t.ctx, t.cancel = context.WithCancel(context.Background())

	typ := reflect.TypeOf(root.Component)
	t.root = newInstance(root.Key, typ)
	t.root.path = typeName(typ)
	t.resize = t.dist.Subscribe()
	return t, nil
}

// Distributor returns the Tree's event distributor. Hosts that drive the
// Tree with Render instead of Run pump it themselves.
func (t *Tree) Distributor() *Distributor {
	return t.dist
}

// System returns the handle components get from UseSystem.
func (t *Tree) System() *System {
	return t.system
}

// Screen returns the screen the Tree paints to.
func (t *Tree) Screen() tcell.Screen {
	return t.screen
}

// Areas returns every component's rectangle from the last paint, in
// depth-first pre-order.
func (t *Tree) Areas() []ComponentArea {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]ComponentArea, len(t.areas))
	copy(out, t.areas)
	return out
}

// Run renders the tree and then waits for input or state changes,
// re-rendering after each, until the quit key is pressed, System.Exit is
// called, the event stream ends, or ctx is done.
//
// The screen is initialized on entry and restored on return. A panic in
// component code, a failing event source, or ctx cancellation ends the run
// with an error; a quit key, Exit, Close or end of stream return nil. A
// Tree can only be run once.
func (t *Tree) Run(ctx context.Context) error {
	t.life.Lock()
	switch {
	case t.closed:
		t.life.Unlock()
		return ErrClosed
	case t.running:
		t.life.Unlock()
		return ErrAlreadyRunning
	}
	t.running = true
	t.life.Unlock()

	defer func() {
		t.life.Lock()
		t.running = false
		t.closed = true
		t.life.Unlock()
		t.teardown()
	}()

	if err := t.open(); err != nil {
		return err
	}

	// Subscriptions are created by the first render, so it has to finish
	// before the first event is pumped.
	if err := t.render(); err != nil {
		return err
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(runCtx)
	eof := make(chan struct{})
	g.Go(func() error {
		return t.pump(gctx, eof)
	})
	g.Go(func() error {
		defer cancel()
		return t.loop(gctx, ctx, eof)
	})
	err := g.Wait()
	if err != nil {
		debug.Error("Tree.Run: %v", err)
	}
	return err
}

// loop is the Scheduler: check, wait, check, change, render.
func (t *Tree) loop(ctx, parent context.Context, eof <-chan struct{}) error {
	for {
		if t.dist.Cancelled() {
			debug.Log("Tree.loop: cancelled")
			return nil
		}

		ended := false
		select {
		case <-ctx.Done():
			return parent.Err()
		case <-t.wake.C():
		case <-t.pumped.C():
		case <-eof:
			ended = true
		}

		if t.dist.Cancelled() {
			debug.Log("Tree.loop: cancelled")
			return nil
		}
		if !ended {
			select {
			case <-eof:
				ended = true
			default:
			}
		}

		if err := t.change(); err != nil {
			return err
		}
		// a callback may have called Exit during the drain
		if t.dist.Cancelled() {
			debug.Log("Tree.loop: cancelled during change")
			return nil
		}
		if err := t.render(); err != nil {
			return err
		}
		if ended {
			debug.Log("Tree.loop: end of input")
			return nil
		}
	}
}

// pump feeds the Distributor until the stream ends, the quit key arrives
// or ctx is done.
func (t *Tree) pump(ctx context.Context, eof chan<- struct{}) error {
	for {
		err := t.dist.Pump(ctx)
		switch {
		case err == nil:
			t.pumped.Notify()
			if t.dist.Cancelled() {
				return nil
			}
		case errors.Is(err, io.EOF):
			close(eof)
			return nil
		case ctx.Err() != nil:
			return nil
		default:
			return err
		}
	}
}

// Render runs one change, update and paint pass synchronously. It is meant
// for hosts that pump the Distributor themselves and for tests; it cannot
// be used while Run is active.
func (t *Tree) Render() error {
	t.life.Lock()
	closed, running := t.closed, t.running
	t.life.Unlock()
	if closed {
		return ErrClosed
	}
	if running {
		return ErrAlreadyRunning
	}
	if err := t.open(); err != nil {
		return err
	}
	if err := t.change(); err != nil {
		return err
	}
	return t.render()
}

// Close destroys the component tree, stops any hook goroutines and
// restores the terminal. It is safe to call more than once.
//
// While Run is active on another goroutine, Close only asks it to stop,
// like System.Exit, and returns; Run does the teardown before it returns.
// Close must not be called concurrently with Render.
func (t *Tree) Close() error {
	t.life.Lock()
	if t.running {
		t.life.Unlock()
		debug.Log("Tree.Close: stopping the running loop")
		t.system.Exit()
		return nil
	}
	if t.closed {
		t.life.Unlock()
		return nil
	}
	t.closed = true
	t.life.Unlock()

	t.teardown()
	return nil
}

func (t *Tree) teardown() {
	t.cancel()
	t.root.destroy()
	t.resize.Close()
	if s, ok := t.source.(*ScreenSource); ok {
		s.Close()
	}
	if t.opened {
		t.screen.Fini()
	}
	debug.Log("Tree.Close: closed")
}

func (t *Tree) open() error {
	if t.opened {
		return nil
	}
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("tui: init screen: %w", err)
	}
	if t.mouse {
		t.screen.EnableMouse()
	}
	if t.paste {
		t.screen.EnablePaste()
	}
	t.screen.HideCursor()
	t.opened = true
	debug.Log("Tree.open: screen initialized")
	return nil
}

// change drains every hook. Resize events resync the whole screen first.
func (t *Tree) change() error {
	for _, ev := range t.resize.Drain(nil) {
		if _, ok := ev.(ResizeEvent); ok {
			t.screen.Sync()
		}
	}
	return t.guard(PhaseChange, func() {
		if t.root.change(t) {
			debug.Log("Tree.change: state changed")
		}
	})
}

// render runs one update pass and one paint pass.
func (t *Tree) render() error {
	err := t.guard(PhaseUpdate, func() {
		stack := newContextStack(t.system)
		t.root.update(t, t.rootEl.Component, stack)
	})
	if err != nil {
		return err
	}

	return t.guard(PhaseDraw, func() {
		w, h := t.screen.Size()
		t.screen.Clear()
		t.frame = t.frame[:0]
		t.root.draw(t, newDrawer(t.screen, NewRect(0, 0, w, h)), NewRect(0, 0, w, h))
		t.screen.Show()

		t.mu.Lock()
		t.areas = append(t.areas[:0], t.frame...)
		t.mu.Unlock()
	})
}

// guard turns a panic in fn into a PassError naming the component that
// was running.
func (t *Tree) guard(phase Phase, fn func()) (err error) {
	t.current = ""
	defer func() {
		if r := recover(); r != nil {
			err = &PassError{Phase: phase, Path: t.current, Value: r, Stack: rtdebug.Stack()}
			debug.Error("Tree: %v", err)
		}
	}()
	fn()
	return nil
}
