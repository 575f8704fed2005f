package tui

// KeyMap is an ordered list of key bindings, dispatched by UseKeyMap.
type KeyMap []KeyBinding

// KeyBinding associates a key pattern with a handler.
type KeyBinding struct {
	Pattern KeyPattern
	Handler func(KeyEvent)
	Stop    bool // If true, later bindings in the same KeyMap do not fire for this key
}

// KeyPattern identifies which key events match a binding.
// It is also used as the Distributor's termination pattern.
type KeyPattern struct {
	Key           Key      // Specific key (KeyEscape, KeyF1, etc.), or 0
	Rune          rune     // Specific rune, or 0
	AnyRune       bool     // Match any printable character
	Mod           Modifier // Required modifiers (when non-zero, exactly these unless ModAtLeast)
	ModAtLeast    bool     // When true, Mod only has to be among the event's modifiers
	RequireNoMods bool     // When true, event must have no modifiers (Mod field is ignored)
}

// CtrlC is the default termination pattern: 'c' with Control held, whatever
// other modifiers are down.
var CtrlC = KeyPattern{Rune: 'c', Mod: ModCtrl, ModAtLeast: true}

// IsZero reports whether the pattern matches nothing.
func (p KeyPattern) IsZero() bool {
	return p.Key == KeyNone && p.Rune == 0 && !p.AnyRune
}

// Matches reports whether ke satisfies the pattern. Key releases never match.
func (p KeyPattern) Matches(ke KeyEvent) bool {
	if ke.Kind == KeyRelease {
		return false
	}
	if p.RequireNoMods && ke.Mod != 0 {
		return false
	}
	switch {
	case p.Mod == 0:
	case p.ModAtLeast:
		if ke.Mod&p.Mod != p.Mod {
			return false
		}
	case ke.Mod != p.Mod:
		return false
	}

	if p.AnyRune && ke.Code == KeyRune {
		return true
	}
	if p.Rune != 0 && ke.Rune == p.Rune && ke.Code == KeyRune {
		return true
	}
	if p.Key != 0 && ke.Code == p.Key {
		return true
	}
	return false
}

// dispatch sends ke to every matching binding in order, stopping after the
// first matching binding with Stop set. Reports whether any binding matched.
func (km KeyMap) dispatch(ke KeyEvent) bool {
	matched := false
	for i := range km {
		if !km[i].Pattern.Matches(ke) {
			continue
		}
		matched = true
		if km[i].Handler != nil {
			km[i].Handler(ke)
		}
		if km[i].Stop {
			break
		}
	}
	return matched
}

// OnKey creates a broadcast binding for a specific key.
// Other bindings for the same key will also fire.
func OnKey(key Key, handler func(KeyEvent)) KeyBinding {
	return KeyBinding{Pattern: KeyPattern{Key: key}, Handler: handler}
}

// OnKeyStop creates a stop-propagation binding for a specific key.
func OnKeyStop(key Key, handler func(KeyEvent)) KeyBinding {
	return KeyBinding{Pattern: KeyPattern{Key: key}, Handler: handler, Stop: true}
}

// OnRune creates a broadcast binding for a specific printable character.
// The character must be typed without Ctrl or Alt.
func OnRune(r rune, handler func(KeyEvent)) KeyBinding {
	return KeyBinding{Pattern: KeyPattern{Rune: r, RequireNoMods: true}, Handler: handler}
}

// OnRuneStop creates a stop-propagation binding for a specific printable character.
func OnRuneStop(r rune, handler func(KeyEvent)) KeyBinding {
	return KeyBinding{Pattern: KeyPattern{Rune: r, RequireNoMods: true}, Handler: handler, Stop: true}
}

// OnCtrl creates a broadcast binding for Ctrl plus a letter, e.g. OnCtrl('s', save).
func OnCtrl(r rune, handler func(KeyEvent)) KeyBinding {
	return KeyBinding{Pattern: KeyPattern{Rune: r, Mod: ModCtrl}, Handler: handler}
}

// OnRunes creates a broadcast binding for all printable characters.
func OnRunes(handler func(KeyEvent)) KeyBinding {
	return KeyBinding{Pattern: KeyPattern{AnyRune: true}, Handler: handler}
}

// OnRunesStop creates a stop-propagation binding for all printable characters.
// Use this for text inputs that need exclusive access to character keys.
func OnRunesStop(handler func(KeyEvent)) KeyBinding {
	return KeyBinding{Pattern: KeyPattern{AnyRune: true}, Handler: handler, Stop: true}
}
