package tui

import (
	"context"
	"fmt"
	"reflect"
)

// hook is one retained slot in a component instance.
//
// Slots are created on a component's first render and looked up by position
// afterwards, so a component must call its hooks in the same order on every
// render.
type hook interface {
	// afterUpdate runs after every Update of the owning component.
	afterUpdate(t *Tree)
	// beforeDraw receives the component's area immediately before its Draw.
	beforeDraw(area Rect)
	// change delivers pending work to the component's callbacks and
	// reports whether any retained state changed.
	change() bool
	// destroy runs once when the component unmounts.
	destroy()
}

// noopHook provides empty lifecycle methods for embedding.
type noopHook struct{}

func (noopHook) afterUpdate(*Tree) {}
func (noopHook) beforeDraw(Rect)   {}
func (noopHook) change() bool      { return false }
func (noopHook) destroy()          {}

// Hooks is passed to Component.Update and gives access to the component's
// retained slots. It is only valid for the duration of that call.
type Hooks struct {
	inst  *instance
	tree  *Tree
	stack *contextStack
	index int
}

// useHook returns the slot at the current position, creating it with
// create on the component's first render.
func useHook[H hook](h *Hooks, create func() H) H {
	i := h.index
	h.index++

	if i == len(h.inst.hooks) {
		if !h.inst.first {
			panic(fmt.Errorf("%w: %s added hook %d after its first render", ErrHookOrder, h.inst.path, i))
		}
		hk := create()
		h.inst.hooks = append(h.inst.hooks, hk)
		return hk
	}

	hk, ok := h.inst.hooks[i].(H)
	if !ok {
		var want H
		panic(fmt.Errorf("%w: %s hook %d is %T, want %T", ErrHookOrder, h.inst.path, i, h.inst.hooks[i], want))
	}
	return hk
}

// eventsHook owns one Subscription for its component.
type eventsHook struct {
	fn    func(Event)
	local bool
	sub   *Subscription
	area  Rect
	wake  func()
}

// afterUpdate subscribes on the first call so the channel only exists once
// the component has actually rendered.
func (e *eventsHook) afterUpdate(t *Tree) {
	if e.sub != nil {
		return
	}
	e.sub = t.dist.Subscribe()
	e.wake = t.wake.Notify
}

func (e *eventsHook) beforeDraw(area Rect) {
	e.area = area
}

// change drains the whole queue into the callback in arrival order.
// It never reports a change; the subscription stays open until unmount.
func (e *eventsHook) change() bool {
	if e.sub == nil {
		return false
	}
	for _, ev := range e.sub.Drain(e.wake) {
		if e.accepts(ev) {
			e.fn(ev)
		}
	}
	return false
}

// accepts filters pointer events to the half-open area recorded at the last
// paint. Everything else passes.
func (e *eventsHook) accepts(ev Event) bool {
	if !e.local {
		return true
	}
	me, ok := ev.(MouseEvent)
	if !ok {
		return true
	}
	return e.area.Contains(me.Column, me.Row)
}

func (e *eventsHook) destroy() {
	if e.sub != nil {
		e.sub.Close()
	}
}

func (h *Hooks) useEvents(fn func(Event), local bool) {
	e := useHook(h, func() *eventsHook { return &eventsHook{local: local} })
	e.fn = fn
	e.local = local
}

// UseEvents calls fn for every event delivered to this component.
//
// The subscription is created after the component's first Update, so events
// that arrive before the component has rendered are never seen. fn is
// replaced on every render and always runs on the Scheduler goroutine.
func (h *Hooks) UseEvents(fn func(Event)) {
	h.useEvents(fn, false)
}

// UseLocalEvents is like UseEvents but mouse events are only delivered
// when they fall inside the area this component was painted in last.
// Keyboard and other events are delivered unconditionally.
func (h *Hooks) UseLocalEvents(fn func(Event)) {
	h.useEvents(fn, true)
}

// UseKeyMap dispatches key events to the matching bindings of km.
func (h *Hooks) UseKeyMap(km KeyMap) {
	h.UseEvents(func(ev Event) {
		if ke, ok := ev.(KeyEvent); ok {
			km.dispatch(ke)
		}
	})
}

// UseClick calls fn when the primary mouse button is pressed inside the
// component's area.
func (h *Hooks) UseClick(fn func(MouseEvent)) {
	h.UseLocalEvents(func(ev Event) {
		if me, ok := ev.(MouseEvent); ok && me.Kind == MouseDown && me.Button == MouseLeft {
			fn(me)
		}
	})
}

// asyncHook runs a function on its own goroutine for the life of the
// component.
type asyncHook struct {
	noopHook
	fn      func(ctx context.Context)
	started bool
	cancel  context.CancelFunc
}

func (a *asyncHook) afterUpdate(t *Tree) {
	if a.started {
		return
	}
	a.started = true
	ctx, cancel := context.WithCancel(t.ctx)
	a.cancel = cancel
	go a.fn(ctx)
}

func (a *asyncHook) destroy() {
	if a.cancel != nil {
		a.cancel()
	}
}

// UseAsync starts fn on a new goroutine after the component's first render.
// ctx is cancelled when the component unmounts or the Tree closes. Only the
// first render's fn is used.
//
// fn must not touch other component code directly; it communicates through
// State (Set is safe from any goroutine) or channels read with UseWatch.
func (h *Hooks) UseAsync(fn func(ctx context.Context)) {
	useHook(h, func() *asyncHook { return &asyncHook{fn: fn} })
}

// System returns the Tree-wide system handle.
func (h *Hooks) System() *System {
	return h.tree.system
}

// UseSystem returns the Tree-wide system handle, found on the context stack.
func UseSystem(h *Hooks) *System {
	return MustUseContext[*System](h)
}

// UseContext returns the nearest value of type T provided by an ancestor
// through Updater.UpdateChildrenWithContext.
func UseContext[T any](h *Hooks) (T, bool) {
	return lookupContext[T](h.stack)
}

// MustUseContext is UseContext that panics when no ancestor provides T.
func MustUseContext[T any](h *Hooks) T {
	v, ok := UseContext[T](h)
	if !ok {
		panic(fmt.Sprintf("tui: %s: no context of type %v", h.inst.path, reflect.TypeFor[T]()))
	}
	return v
}
