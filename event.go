package tui

import "fmt"

// Event is the base interface for all terminal input events.
// Use a type switch to handle specific event types.
type Event interface {
	// isEvent is a marker method to prevent external implementations.
	isEvent()
}

// KeyKind distinguishes presses from repeats and releases.
// Terminals that cannot report releases only ever produce KeyPress.
type KeyKind uint8

const (
	KeyPress KeyKind = iota
	KeyRepeat
	KeyRelease
)

// KeyEvent represents a keyboard input event.
type KeyEvent struct {
	// Code is the key pressed. For printable characters and control chords
	// on letters this is KeyRune.
	Code Key

	// Rune is the character for KeyRune events. Zero for special keys.
	Rune rune

	// Mod contains modifier flags (Ctrl, Alt, Shift).
	Mod Modifier

	Kind KeyKind
}

func (KeyEvent) isEvent() {}

// IsRune returns true if this is a printable character event.
func (e KeyEvent) IsRune() bool {
	return e.Code == KeyRune
}

// Is checks if the event matches a specific key with optional modifiers.
// Example: event.Is(KeyEnter) or event.Is(KeyRune, ModCtrl)
func (e KeyEvent) Is(key Key, mods ...Modifier) bool {
	if e.Code != key {
		return false
	}
	if len(mods) == 0 {
		return true
	}
	var combined Modifier
	for _, m := range mods {
		combined |= m
	}
	return e.Mod == combined
}

// Char returns the rune if this is a KeyRune event, or 0 otherwise.
func (e KeyEvent) Char() rune {
	if e.Code == KeyRune {
		return e.Rune
	}
	return 0
}

func (e KeyEvent) String() string {
	name := e.Code.String()
	if e.Code == KeyRune {
		name = fmt.Sprintf("%q", e.Rune)
	}
	if e.Mod != ModNone {
		return e.Mod.String() + "+" + name
	}
	return name
}

// MouseButton represents which mouse button was involved in an event.
type MouseButton uint8

const (
	// MouseNone indicates no button (motion and wheel events).
	MouseNone MouseButton = iota
	// MouseLeft is the left (primary) mouse button.
	MouseLeft
	// MouseMiddle is the middle mouse button (scroll wheel click).
	MouseMiddle
	// MouseRight is the right (secondary) mouse button.
	MouseRight
)

// MouseKind is the kind of pointer activity.
type MouseKind uint8

const (
	MouseDown MouseKind = iota
	MouseUp
	MouseDrag
	MouseMoved
	MouseScrollUp
	MouseScrollDown
	MouseScrollLeft
	MouseScrollRight
)

// MouseEvent represents a mouse input event.
// Row and Column are zero-based cell coordinates.
type MouseEvent struct {
	Row    int
	Column int
	Kind   MouseKind
	Button MouseButton
	Mod    Modifier
}

func (MouseEvent) isEvent() {}

// ResizeEvent is emitted when the terminal is resized.
type ResizeEvent struct {
	Width  int
	Height int
}

func (ResizeEvent) isEvent() {}

// PasteEvent marks the start (Start true) or end of a bracketed paste.
// The pasted text arrives as key events in between.
type PasteEvent struct {
	Start bool
}

func (PasteEvent) isEvent() {}

// FocusEvent reports the terminal window gaining or losing focus.
type FocusEvent struct {
	Focused bool
}

func (FocusEvent) isEvent() {}

// UnknownEvent carries a driver event this package does not model.
type UnknownEvent struct {
	Raw any
}

func (UnknownEvent) isEvent() {}
