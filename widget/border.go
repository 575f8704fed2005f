package widget

import (
	"github.com/gdamore/tcell/v2"

	tui "github.com/grindlemire/go-tuikit"
)

// BorderStyle represents different styles of box borders.
type BorderStyle int

const (
	// BorderSingle uses single-line box-drawing characters (─, │, ┌, etc.)
	BorderSingle BorderStyle = iota
	// BorderDouble uses double-line box-drawing characters (═, ║, ╔, etc.)
	BorderDouble
	// BorderRounded uses rounded corner characters (─, │, ╭, ╮, ╰, ╯)
	BorderRounded
	// BorderThick uses thick/heavy box-drawing characters (━, ┃, ┏, etc.)
	BorderThick
)

// BorderChars holds the characters used to draw a box border.
type BorderChars struct {
	TopLeft     rune
	Top         rune
	TopRight    rune
	Left        rune
	Right       rune
	BottomLeft  rune
	Bottom      rune
	BottomRight rune
}

// Chars returns the box-drawing characters for this border style.
func (b BorderStyle) Chars() BorderChars {
	switch b {
	case BorderDouble:
		return BorderChars{'╔', '═', '╗', '║', '║', '╚', '═', '╝'}
	case BorderRounded:
		return BorderChars{'╭', '─', '╮', '│', '│', '╰', '─', '╯'}
	case BorderThick:
		return BorderChars{'┏', '━', '┓', '┃', '┃', '┗', '━', '┛'}
	default:
		return BorderChars{'┌', '─', '┐', '│', '│', '└', '─', '┘'}
	}
}

// Border draws a frame with an optional title and lays its children out
// inside it.
//
// The frame is removed from the drawer's area before children are
// partitioned, so children are both painted and hit-tested inside the
// frame.
type Border struct {
	Kind     BorderStyle
	Title    string
	Style    tcell.Style
	Layout   tui.LayoutStyle
	Children []tui.Element
}

// Update implements tui.Component.
func (b Border) Update(_ *tui.Hooks, u *tui.Updater) {
	u.SetLayoutStyle(b.Layout)
	u.UpdateChildren(b.Children...)
}

// Draw implements tui.Component.
func (b Border) Draw(d *tui.Drawer) {
	DrawBox(d, d.Area, b.Kind, b.Style)
	if b.Title != "" && d.Area.Width > 4 {
		d.Text(d.Area.X+2, d.Area.Y, " "+b.Title+" ", b.Style)
	}
	d.Shrink(tui.EdgeAll(1))
}

// DrawBox draws a box border at rect.
// If the rectangle is smaller than 2x2, the function does nothing.
func DrawBox(d *tui.Drawer, rect tui.Rect, kind BorderStyle, style tcell.Style) {
	if rect.Width < 2 || rect.Height < 2 {
		return
	}
	chars := kind.Chars()

	left := rect.X
	right := rect.Right() - 1
	top := rect.Y
	bottom := rect.Bottom() - 1

	// Draw corners
	d.SetCell(left, top, chars.TopLeft, style)
	d.SetCell(right, top, chars.TopRight, style)
	d.SetCell(left, bottom, chars.BottomLeft, style)
	d.SetCell(right, bottom, chars.BottomRight, style)

	// Draw top and bottom edges
	for x := left + 1; x < right; x++ {
		d.SetCell(x, top, chars.Top, style)
		d.SetCell(x, bottom, chars.Bottom, style)
	}

	// Draw left and right edges
	for y := top + 1; y < bottom; y++ {
		d.SetCell(left, y, chars.Left, style)
		d.SetCell(right, y, chars.Right, style)
	}
}
