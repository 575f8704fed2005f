package widget

import tui "github.com/grindlemire/go-tuikit"

// Grid arranges its children left to right, top to bottom, in Columns
// equal-width columns. Rows share the height equally. Each child's own
// Width and Height constraints are ignored; Gap separates both rows and
// columns.
type Grid struct {
	Columns  int
	Gap      int
	Layout   tui.LayoutStyle
	Children []tui.Element
}

// Update implements tui.Component.
func (g Grid) Update(_ *tui.Hooks, u *tui.Updater) {
	style := g.Layout
	style.Gap = g.Gap
	u.SetLayoutStyle(style)
	u.UpdateChildren(g.Children...)
}

// Draw implements tui.Component.
func (Grid) Draw(*tui.Drawer) {}

// LayoutChildren implements tui.ChildLayouter.
func (g Grid) LayoutChildren(children []tui.LayoutStyle, style tui.LayoutStyle, area tui.Rect) []tui.Rect {
	n := len(children)
	if n == 0 {
		return nil
	}
	cols := max(g.Columns, 1)
	rows := (n + cols - 1) / cols

	cells := func(count int) []tui.LayoutStyle {
		out := make([]tui.LayoutStyle, count)
		for i := range out {
			out[i] = tui.LayoutStyle{Width: tui.Fill(1), Height: tui.Fill(1)}
		}
		return out
	}
	rowRects := tui.SplitArea(area, tui.LayoutStyle{Direction: tui.Vertical, Gap: style.Gap}, cells(rows))

	out := make([]tui.Rect, 0, n)
	for _, row := range rowRects {
		colRects := tui.SplitArea(row, tui.LayoutStyle{Direction: tui.Horizontal, Gap: style.Gap}, cells(cols))
		for _, r := range colRects {
			if len(out) == n {
				break
			}
			out = append(out, r)
		}
	}
	return out
}
