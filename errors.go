package tui

import (
	"errors"
	"fmt"
)

var (
	// ErrSource wraps failures reported by an EventSource.
	ErrSource = errors.New("tui: event source failed")

	// ErrSubscriptionClosed is returned by Poll once a subscription is closed.
	ErrSubscriptionClosed = errors.New("tui: subscription closed")

	// ErrHookOrder is the panic value (wrapped) when hooks are called in a
	// different order or with different types than on the previous render.
	ErrHookOrder = errors.New("tui: hook order changed between renders")

	// ErrNilRoot is returned by NewTree when the root element is empty.
	ErrNilRoot = errors.New("tui: root element is nil")

	// ErrAlreadyRunning is returned by Run when the tree is already running.
	ErrAlreadyRunning = errors.New("tui: tree is already running")

	// ErrClosed is returned by Run and Render after the tree has stopped.
	ErrClosed = errors.New("tui: tree is closed")
)

// Phase names the pass a PassError happened in.
type Phase string

const (
	PhaseUpdate Phase = "update"
	PhaseDraw   Phase = "draw"
	PhaseChange Phase = "change"
)

// PassError reports a panic recovered from component or hook code.
// It is fatal to the session; the Tree stops and returns it.
type PassError struct {
	Phase Phase
	// Path is the slash-separated component path that was running,
	// e.g. "App/Box[1]/Counter[0]".
	Path  string
	Value any
	Stack []byte
}

// Error implements the error interface.
func (e *PassError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("tui: %s pass panicked: %v", e.Phase, e.Value)
	}
	return fmt.Sprintf("tui: %s pass panicked in %s: %v", e.Phase, e.Path, e.Value)
}

// Unwrap returns the panic value when it is an error.
func (e *PassError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
