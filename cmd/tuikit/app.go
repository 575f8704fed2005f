package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	tui "github.com/grindlemire/go-tuikit"
	"github.com/grindlemire/go-tuikit/widget"
)

// App is the demo's root: a bordered panel with a counter, two buttons, a
// mouse tracker and an uptime line.
type App struct {
	Accent tcell.Color
}

func (a App) Update(h *tui.Hooks, u *tui.Updater) {
	count := tui.UseState(h, func() int { return 0 })
	sys := tui.UseSystem(h)

	inc := func() { count.Update(func(v int) int { return v + 1 }) }
	dec := func() { count.Update(func(v int) int { return v - 1 }) }

	h.UseKeyMap(tui.KeyMap{
		tui.OnRune('+', func(tui.KeyEvent) { inc() }),
		tui.OnRune('-', func(tui.KeyEvent) { dec() }),
		tui.OnKey(tui.KeyUp, func(tui.KeyEvent) { inc() }),
		tui.OnKey(tui.KeyDown, func(tui.KeyEvent) { dec() }),
		tui.OnRune('q', func(tui.KeyEvent) { sys.Exit() }),
	})

	accent := tcell.StyleDefault.Foreground(a.Accent)
	button := tcell.StyleDefault.Background(a.Accent).Foreground(tcell.ColorBlack)

	u.SetLayoutStyle(tui.LayoutStyle{Margin: tui.EdgeSymmetric(1, 2)})
	u.UpdateChildren(tui.E(widget.Border{
		Kind:  widget.BorderRounded,
		Title: "tuikit",
		Style: accent,
		Layout: tui.LayoutStyle{
			Direction: tui.Vertical,
			Gap:       1,
			Margin:    tui.EdgeSymmetric(0, 1),
		},
		Children: []tui.Element{
			tui.E(widget.Text{
				Content: fmt.Sprintf("Count: %d", count.Get()),
				Align:   widget.AlignCenter,
				Layout:  tui.LayoutStyle{Height: tui.Fixed(1)},
			}),
			tui.E(widget.Box{
				Layout: tui.LayoutStyle{
					Direction: tui.Horizontal,
					Justify:   tui.JustifyCenter,
					Gap:       4,
					Height:    tui.Fixed(3),
				},
				Children: []tui.Element{
					tui.Keyed("dec", widget.Button{Label: "-", Style: button, OnClick: dec, Layout: tui.LayoutStyle{Width: tui.Fixed(9)}}),
					tui.Keyed("inc", widget.Button{Label: "+", Style: button, OnClick: inc, Layout: tui.LayoutStyle{Width: tui.Fixed(9)}}),
				},
			}),
			tui.E(MouseTracker{}),
			tui.E(Uptime{}),
			tui.E(widget.Text{
				Content: "+/- or click to count, q to quit",
				Align:   widget.AlignCenter,
				Layout:  tui.LayoutStyle{Height: tui.Fixed(1)},
			}),
		},
	}))
}

func (App) Draw(*tui.Drawer) {}

// MouseTracker shows the last pointer position seen inside its own area.
type MouseTracker struct{}

func (MouseTracker) Update(h *tui.Hooks, u *tui.Updater) {
	pos := tui.UseState(h, func() string { return "move the mouse here" })
	h.UseLocalEvents(func(ev tui.Event) {
		if me, ok := ev.(tui.MouseEvent); ok {
			pos.Set(fmt.Sprintf("mouse at row %d, column %d", me.Row, me.Column))
		}
	})

	u.SetLayoutStyle(tui.LayoutStyle{Height: tui.Fill(1)})
	u.UpdateChildren(tui.E(widget.Border{
		Kind:     widget.BorderSingle,
		Children: []tui.Element{tui.E(widget.Text{Content: pos.Get(), Align: widget.AlignCenter})},
	}))
}

func (MouseTracker) Draw(*tui.Drawer) {}

// Uptime counts seconds since mount.
type Uptime struct{}

func (Uptime) Update(h *tui.Hooks, u *tui.Updater) {
	started := tui.UseState(h, time.Now)
	now := tui.UseState(h, time.Now)
	h.UseInterval(time.Second, func() { now.Set(time.Now()) })

	elapsed := now.Get().Sub(started.Get()).Truncate(time.Second)
	u.SetLayoutStyle(tui.LayoutStyle{Height: tui.Fixed(1)})
	u.UpdateChildren(tui.E(widget.Text{Content: "up " + elapsed.String(), Align: widget.AlignCenter}))
}

func (Uptime) Draw(*tui.Drawer) {}
