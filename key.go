package tui

import "strings"

// Key represents a keyboard key.
//
// Control chords on letters are not separate keys: Ctrl+C arrives as KeyRune
// with Rune 'c' and ModCtrl set.
type Key uint16

const (
	// KeyNone represents no key (zero value).
	KeyNone Key = iota

	// KeyRune represents a printable character. Check KeyEvent.Rune for the character.
	KeyRune

	// Special keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab
	KeyBackspace
	KeyDelete
	KeyInsert

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Navigation keys
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

var keyNames = map[Key]string{
	KeyNone:      "None",
	KeyRune:      "Rune",
	KeyEscape:    "Escape",
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBacktab:   "Backtab",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyInsert:    "Insert",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyF1:        "F1",
	KeyF2:        "F2",
	KeyF3:        "F3",
	KeyF4:        "F4",
	KeyF5:        "F5",
	KeyF6:        "F6",
	KeyF7:        "F7",
	KeyF8:        "F8",
	KeyF9:        "F9",
	KeyF10:       "F10",
	KeyF11:       "F11",
	KeyF12:       "F12",
}

// String returns a human-readable representation of the key.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Modifier represents keyboard modifier flags.
type Modifier uint8

const (
	// ModNone represents no modifiers.
	ModNone Modifier = 0
	// ModCtrl represents the Ctrl modifier.
	ModCtrl Modifier = 1 << iota
	// ModAlt represents the Alt modifier.
	ModAlt
	// ModShift represents the Shift modifier.
	ModShift
)

// Has checks if the modifier set includes the given modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// String returns a human-readable representation of the modifiers.
func (m Modifier) String() string {
	if m == ModNone {
		return "None"
	}

	var parts []string
	if m.Has(ModCtrl) {
		parts = append(parts, "Ctrl")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "Alt")
	}
	if m.Has(ModShift) {
		parts = append(parts, "Shift")
	}
	return strings.Join(parts, "+")
}
