package tui

import (
	"errors"

	"github.com/gdamore/tcell/v2"
)

// Option is a functional option for configuring a Tree.
type Option func(*Tree) error

// WithScreen sets the screen the Tree paints to and, unless WithSource is
// also given, reads input from. Defaults to tcell.NewScreen().
// Use tcell.NewSimulationScreen in tests.
func WithScreen(screen tcell.Screen) Option {
	return func(t *Tree) error {
		if screen == nil {
			return errors.New("screen must not be nil")
		}
		t.screen = screen
		return nil
	}
}

// WithSource sets the event source. Defaults to the screen's own events.
func WithSource(source EventSource) Option {
	return func(t *Tree) error {
		if source == nil {
			return errors.New("event source must not be nil")
		}
		t.source = source
		return nil
	}
}

// WithQuitPattern sets the key that stops the Tree. Default is Ctrl+C.
// The matching event is never delivered to any component.
func WithQuitPattern(p KeyPattern) Option {
	return func(t *Tree) error {
		if p.IsZero() {
			return errors.New("quit pattern matches no key; use WithoutQuitPattern to disable it")
		}
		t.quit = p
		return nil
	}
}

// WithoutQuitPattern disables stopping by key. The Tree then stops only
// through System.Exit, context cancellation, or the end of the event stream.
func WithoutQuitPattern() Option {
	return func(t *Tree) error {
		t.quit = KeyPattern{}
		return nil
	}
}

// WithoutMouse disables mouse event reporting.
// By default, mouse events are enabled.
func WithoutMouse() Option {
	return func(t *Tree) error {
		t.mouse = false
		return nil
	}
}

// WithoutPaste disables bracketed paste reporting.
// By default, paste events are enabled.
func WithoutPaste() Option {
	return func(t *Tree) error {
		t.paste = false
		return nil
	}
}
