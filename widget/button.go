package widget

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	tui "github.com/grindlemire/go-tuikit"
)

// Button is a centered label that calls OnClick when pressed with the
// primary mouse button inside its area.
type Button struct {
	Label   string
	Style   tcell.Style
	OnClick func()
	Layout  tui.LayoutStyle
}

// Update implements tui.Component.
func (b Button) Update(h *tui.Hooks, u *tui.Updater) {
	u.SetLayoutStyle(b.Layout)
	h.UseClick(func(tui.MouseEvent) {
		if b.OnClick != nil {
			b.OnClick()
		}
	})
}

// Draw implements tui.Component.
func (b Button) Draw(d *tui.Drawer) {
	area := d.Area
	if area.IsEmpty() {
		return
	}
	d.Fill(area, ' ', b.Style)
	x := area.X + (area.Width-runewidth.StringWidth(b.Label))/2
	d.Text(max(x, area.X), area.Y+area.Height/2, b.Label, b.Style)
}
