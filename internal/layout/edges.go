package layout

// Edges holds one amount per side, used for margins and decorations.
type Edges struct {
	Top, Right, Bottom, Left int
}

// EdgeAll uses n on every side.
func EdgeAll(n int) Edges {
	return Edges{n, n, n, n}
}

// EdgeSymmetric uses v for top and bottom and h for left and right.
func EdgeSymmetric(v, h int) Edges {
	return Edges{Top: v, Right: h, Bottom: v, Left: h}
}

// EdgeTRBL takes the sides in CSS order.
func EdgeTRBL(t, r, b, l int) Edges {
	return Edges{Top: t, Right: r, Bottom: b, Left: l}
}

// Offset moves a component's area before its margin is applied.
type Offset struct {
	DX, DY int
}
