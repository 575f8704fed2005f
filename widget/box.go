package widget

import (
	"github.com/gdamore/tcell/v2"

	tui "github.com/grindlemire/go-tuikit"
)

// Box is a plain container. With Background set it fills its area before
// its children paint.
type Box struct {
	Layout     tui.LayoutStyle
	Background *tcell.Style
	Children   []tui.Element
}

// Update implements tui.Component.
func (b Box) Update(_ *tui.Hooks, u *tui.Updater) {
	u.SetLayoutStyle(b.Layout)
	u.UpdateChildren(b.Children...)
}

// Draw implements tui.Component.
func (b Box) Draw(d *tui.Drawer) {
	if b.Background != nil {
		d.Fill(d.Area, ' ', *b.Background)
	}
}
