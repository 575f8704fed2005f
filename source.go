package tui

import (
	"context"
	"io"
	"sync"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// EventSource produces one ordered sequence of input events.
//
// Next blocks until an event is ready, the stream ends (io.EOF), or ctx is
// done (ctx.Err()). It is consumed by a single goroutine, the Distributor's
// pump, so implementations need not be safe for concurrent Next calls.
type EventSource interface {
	Next(ctx context.Context) (Event, error)
}

// ScreenSource adapts a tcell.Screen into an EventSource.
// The screen must be initialized before the first call to Next.
type ScreenSource struct {
	screen tcell.Screen

	start  sync.Once
	stop   sync.Once
	events chan tcell.Event
	quit   chan struct{}

	// buttons held by the previous mouse event, to derive up/down/drag
	buttons tcell.ButtonMask
}

// Ensure ScreenSource implements EventSource.
var _ EventSource = (*ScreenSource)(nil)

// NewScreenSource creates a source reading from screen.
func NewScreenSource(screen tcell.Screen) *ScreenSource {
	return &ScreenSource{
		screen: screen,
		events: make(chan tcell.Event),
		quit:   make(chan struct{}),
	}
}

// Next returns the next converted screen event. The stream ends once the
// screen is finalized or Close is called.
func (s *ScreenSource) Next(ctx context.Context) (Event, error) {
	s.start.Do(func() { go s.poll() })

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case ev, ok := <-s.events:
		if !ok {
			return nil, io.EOF
		}
		return s.convert(ev), nil
	}
}

// Close stops the polling goroutine at its next event.
func (s *ScreenSource) Close() {
	s.stop.Do(func() { close(s.quit) })
}

func (s *ScreenSource) poll() {
	defer close(s.events)
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			// Fini was called
			return
		}
		select {
		case s.events <- ev:
		case <-s.quit:
			return
		}
	}
}

// convert maps a tcell event to this package's Event types.
func (s *ScreenSource) convert(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return convertKey(e)

	case *tcell.EventMouse:
		return s.convertMouse(e)

	case *tcell.EventResize:
		w, h := e.Size()
		return ResizeEvent{Width: w, Height: h}

	case *tcell.EventPaste:
		return PasteEvent{Start: e.Start()}

	case *tcell.EventFocus:
		return FocusEvent{Focused: e.Focused}

	default:
		return UnknownEvent{Raw: ev}
	}
}

var specialKeys = map[tcell.Key]Key{
	tcell.KeyEscape:     KeyEscape,
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyTab:        KeyTab,
	tcell.KeyBacktab:    KeyBacktab,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyDelete:     KeyDelete,
	tcell.KeyInsert:     KeyInsert,
	tcell.KeyUp:         KeyUp,
	tcell.KeyDown:       KeyDown,
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyRight:      KeyRight,
	tcell.KeyHome:       KeyHome,
	tcell.KeyEnd:        KeyEnd,
	tcell.KeyPgUp:       KeyPageUp,
	tcell.KeyPgDn:       KeyPageDown,
	tcell.KeyF1:         KeyF1,
	tcell.KeyF2:         KeyF2,
	tcell.KeyF3:         KeyF3,
	tcell.KeyF4:         KeyF4,
	tcell.KeyF5:         KeyF5,
	tcell.KeyF6:         KeyF6,
	tcell.KeyF7:         KeyF7,
	tcell.KeyF8:         KeyF8,
	tcell.KeyF9:         KeyF9,
	tcell.KeyF10:        KeyF10,
	tcell.KeyF11:        KeyF11,
	tcell.KeyF12:        KeyF12,
}

// convertKey normalizes control chords on letters to KeyRune plus ModCtrl.
// Enter, Tab, Backspace and Escape share codes with Ctrl+M, Ctrl+I, Ctrl+H
// and Ctrl+[, so they are matched first.
func convertKey(e *tcell.EventKey) KeyEvent {
	mod := convertMod(e.Modifiers())
	k := e.Key()

	if code, ok := specialKeys[k]; ok {
		return KeyEvent{Code: code, Mod: mod}
	}

	switch {
	case k == tcell.KeyRune:
		r := e.Rune()
		if mod.Has(ModCtrl) && r < unicode.MaxASCII {
			r = unicode.ToLower(r)
		}
		return KeyEvent{Code: KeyRune, Rune: r, Mod: mod}
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		return KeyEvent{Code: KeyRune, Rune: 'a' + rune(k-tcell.KeyCtrlA), Mod: mod | ModCtrl}
	case k == tcell.KeyCtrlSpace:
		return KeyEvent{Code: KeyRune, Rune: ' ', Mod: mod | ModCtrl}
	default:
		return KeyEvent{Code: KeyNone, Mod: mod}
	}
}

func convertMod(m tcell.ModMask) Modifier {
	var result Modifier
	if m&tcell.ModShift != 0 {
		result |= ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= ModCtrl
	}
	if m&(tcell.ModAlt|tcell.ModMeta) != 0 {
		result |= ModAlt
	}
	return result
}

const primaryButtons = tcell.Button1 | tcell.Button2 | tcell.Button3

// convertMouse derives the transition kind by comparing the held buttons
// with those of the previous mouse event.
func (s *ScreenSource) convertMouse(e *tcell.EventMouse) MouseEvent {
	x, y := e.Position()
	out := MouseEvent{Row: y, Column: x, Mod: convertMod(e.Modifiers())}

	mask := e.Buttons()
	held := mask & primaryButtons
	prev := s.buttons
	s.buttons = held

	switch {
	case mask&tcell.WheelUp != 0:
		out.Kind = MouseScrollUp
	case mask&tcell.WheelDown != 0:
		out.Kind = MouseScrollDown
	case mask&tcell.WheelLeft != 0:
		out.Kind = MouseScrollLeft
	case mask&tcell.WheelRight != 0:
		out.Kind = MouseScrollRight
	case held&^prev != 0:
		out.Kind = MouseDown
		out.Button = buttonOf(held &^ prev)
	case held != 0:
		out.Kind = MouseDrag
		out.Button = buttonOf(held)
	case prev != 0:
		out.Kind = MouseUp
		out.Button = buttonOf(prev)
	default:
		out.Kind = MouseMoved
	}
	return out
}

func buttonOf(b tcell.ButtonMask) MouseButton {
	switch {
	case b&tcell.Button1 != 0:
		return MouseLeft
	case b&tcell.Button3 != 0:
		return MouseMiddle
	case b&tcell.Button2 != 0:
		return MouseRight
	default:
		return MouseNone
	}
}

// ChanSource wraps a caller-owned channel. Closing the channel ends the stream.
type ChanSource struct {
	ch <-chan Event
}

// Ensure ChanSource implements EventSource.
var _ EventSource = (*ChanSource)(nil)

// NewChanSource creates a source that reads events from ch.
func NewChanSource(ch <-chan Event) *ChanSource {
	return &ChanSource{ch: ch}
}

// Next returns the next event sent on the channel.
func (c *ChanSource) Next(ctx context.Context) (Event, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case ev, ok := <-c.ch:
		if !ok {
			return nil, io.EOF
		}
		return ev, nil
	}
}
