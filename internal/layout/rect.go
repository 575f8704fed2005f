package layout

// Rect is a cell rectangle. The right and bottom edges are exclusive, so
// a rectangle covers [X, X+Width) by [Y, Y+Height).
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect returns the rectangle at (x, y) of the given size.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right is the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom is the first row past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.Height }

// IsEmpty reports whether r covers no cell.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains is the hit test for pointer events: the top and left edges are
// inside, the right and bottom edges are not.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset removes edges from r. Sizes are clamped at zero, and an origin
// pushed past the far edge stops there.
func (r Rect) Inset(e Edges) Rect {
	out := Rect{
		X:      r.X + e.Left,
		Y:      r.Y + e.Top,
		Width:  r.Width - e.Left - e.Right,
		Height: r.Height - e.Top - e.Bottom,
	}
	if out.Width < 0 {
		out.X, out.Width = min(out.X, r.Right()), 0
	}
	if out.Height < 0 {
		out.Y, out.Height = min(out.Y, r.Bottom()), 0
	}
	return out
}

// Translate moves r by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Intersect returns the overlap of r and o, or the zero Rect when they
// share no cell.
func (r Rect) Intersect(o Rect) Rect {
	out := Rect{X: max(r.X, o.X), Y: max(r.Y, o.Y)}
	out.Width = min(r.Right(), o.Right()) - out.X
	out.Height = min(r.Bottom(), o.Bottom()) - out.Y
	if out.IsEmpty() {
		return Rect{}
	}
	return out
}
