// Package tui is a hook-driven reactive runtime for terminal interfaces.
//
// Users import this single package for the core API: the component model,
// hooks, layout types, events, and the Tree that runs them.
//
// A Component is a plain value with an Update and a Draw method. Update
// declares hooks and children; Draw paints into the area the layout engine
// assigned. Per-component state lives in hooks, which survive re-renders of
// the same component identity:
//
//	type Counter struct{}
//
//	func (Counter) Update(h *tui.Hooks, u *tui.Updater) {
//	    count := tui.UseState(h, func() int { return 0 })
//	    h.UseKeyMap(tui.KeyMap{
//	        tui.OnRune('+', func(tui.KeyEvent) { count.Update(func(v int) int { return v + 1 }) }),
//	    })
//	}
//
// Input flows from an EventSource through a Distributor, which fans every
// event out to one Subscription per UseEvents hook. The Distributor only
// holds subscriptions weakly, so an unmounted component is dropped on the
// next event without any unsubscribe call.
//
// Tree.Run drives the loop: update every component, paint every component,
// then wait until either some State changed or a new event was pumped.
// Ctrl+C (configurable with WithQuitPattern) stops the loop and is never
// delivered to components.
package tui
