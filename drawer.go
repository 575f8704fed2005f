package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Drawer is handed to each component's Draw.
//
// Area starts as the component's assigned rectangle after its own margin and
// offset. A component may shrink it; the shrunk Area is what its children
// are partitioned from. All painting is clipped to the rectangle the
// component was given, never to the parent or the whole screen.
type Drawer struct {
	Area Rect

	screen tcell.Screen
	clip   Rect
}

func newDrawer(screen tcell.Screen, area Rect) *Drawer {
	return &Drawer{Area: area, screen: screen, clip: area}
}

// reset points the drawer at a new component's area.
func (d *Drawer) reset(area Rect) {
	d.Area = area
	d.clip = area
}

// Screen returns the underlying screen for painting not covered by the
// helpers. Callers are responsible for staying inside Area.
func (d *Drawer) Screen() tcell.Screen {
	return d.screen
}

// SetCell paints one cell. Cells outside the component's rectangle are
// dropped.
func (d *Drawer) SetCell(x, y int, r rune, style tcell.Style) {
	if !d.clip.Contains(x, y) {
		return
	}
	d.screen.SetContent(x, y, r, nil, style)
}

// Text paints s starting at (x, y) on a single row and returns the number
// of columns used. Wide runes that do not fit are not split.
func (d *Drawer) Text(x, y int, s string, style tcell.Style) int {
	if y < d.clip.Y || y >= d.clip.Bottom() {
		return 0
	}
	col := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > d.clip.Right() {
			break
		}
		if col >= d.clip.X {
			d.screen.SetContent(col, y, r, nil, style)
		}
		col += w
	}
	return col - x
}

// Fill paints every cell of rect, clipped to the component's rectangle.
func (d *Drawer) Fill(rect Rect, r rune, style tcell.Style) {
	rect = rect.Intersect(d.clip)
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x++ {
			d.screen.SetContent(x, y, r, nil, style)
		}
	}
}

// Shrink reduces Area by edges and returns the new Area.
func (d *Drawer) Shrink(edges Edges) Rect {
	d.Area = d.Area.Inset(edges)
	return d.Area
}
