package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	tui "github.com/grindlemire/go-tuikit"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "ui.quit_key")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errs []ValidationError

	if !slices.Contains(ValidLogLevels(), strings.ToLower(c.Log.Level)) {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Value:   c.Log.Level,
			Message: fmt.Sprintf("must be one of %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}
	if _, err := ParseQuitKey(c.UI.QuitKey); err != nil {
		errs = append(errs, ValidationError{Field: "ui.quit_key", Value: c.UI.QuitKey, Message: err.Error()})
	}
	if _, err := ParseColor(c.UI.Accent); err != nil {
		errs = append(errs, ValidationError{Field: "ui.accent", Value: c.UI.Accent, Message: err.Error()})
	}
	return errs
}

var namedKeys = map[string]tui.Key{
	"esc":    tui.KeyEscape,
	"escape": tui.KeyEscape,
	"enter":  tui.KeyEnter,
	"tab":    tui.KeyTab,
	"f1":     tui.KeyF1,
	"f2":     tui.KeyF2,
	"f3":     tui.KeyF3,
	"f4":     tui.KeyF4,
	"f5":     tui.KeyF5,
	"f6":     tui.KeyF6,
	"f7":     tui.KeyF7,
	"f8":     tui.KeyF8,
	"f9":     tui.KeyF9,
	"f10":    tui.KeyF10,
	"f11":    tui.KeyF11,
	"f12":    tui.KeyF12,
}

// ParseQuitKey converts a chord such as "ctrl+c", "esc" or "q" into a key
// pattern. Modifiers in the chord must be held; others may be too. "none" returns the zero pattern, which disables quitting by key.
func ParseQuitKey(s string) (tui.KeyPattern, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "none" {
		return tui.KeyPattern{}, nil
	}

	parts := strings.Split(s, "+")
	var p tui.KeyPattern
	for _, mod := range parts[:len(parts)-1] {
		switch mod {
		case "ctrl":
			p.Mod |= tui.ModCtrl
		case "alt":
			p.Mod |= tui.ModAlt
		case "shift":
			p.Mod |= tui.ModShift
		default:
			return tui.KeyPattern{}, fmt.Errorf("unknown modifier %q", mod)
		}
	}

	// like Ctrl+C, a chord still fires with extra modifiers held
	p.ModAtLeast = p.Mod != 0

	key := parts[len(parts)-1]
	if k, ok := namedKeys[key]; ok {
		p.Key = k
		return p, nil
	}
	switch {
	case len([]rune(key)) == 1:
		p.Rune = []rune(key)[0]
		if p.Mod == 0 {
			p.RequireNoMods = true
		}
	default:
		return tui.KeyPattern{}, fmt.Errorf("unknown key %q", key)
	}
	return p, nil
}

// ParseColor converts a hex colour ("#rrggbb" or "#rgb") to a tcell colour.
func ParseColor(s string) (tcell.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex colour: %w", err)
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b)), nil
}
