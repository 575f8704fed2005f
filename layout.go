// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package tui

import "github.com/grindlemire/go-tuikit/internal/layout"

// Rect is a rectangle in character cells.
type Rect = layout.Rect

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}

// Direction specifies the main axis for laying out children.
type Direction = layout.Direction

const (
	Vertical   = layout.Vertical
	Horizontal = layout.Horizontal
)

// Justify specifies how children are distributed along the main axis.
type Justify = layout.Justify

const (
	JustifyStart        = layout.JustifyStart
	JustifyEnd          = layout.JustifyEnd
	JustifyCenter       = layout.JustifyCenter
	JustifySpaceBetween = layout.JustifySpaceBetween
	JustifySpaceAround  = layout.JustifySpaceAround
	JustifySpaceEvenly  = layout.JustifySpaceEvenly
)

// Constraint describes how much space a child asks for along one axis.
type Constraint = layout.Constraint

// Unit specifies how a Constraint is interpreted.
type Unit = layout.Unit

const (
	UnitFill    = layout.UnitFill
	UnitFixed   = layout.UnitFixed
	UnitPercent = layout.UnitPercent
	UnitMin     = layout.UnitMin
	UnitMax     = layout.UnitMax
)

// Fixed returns a Constraint for exactly n cells.
func Fixed(n int) Constraint { return layout.Fixed(n) }

// Percent returns a Constraint for a percentage (0-100) of available space.
func Percent(p float64) Constraint { return layout.Percent(p) }

// Fill returns a Constraint that takes a weighted share of leftover space.
func Fill(weight int) Constraint { return layout.Fill(weight) }

// Min returns a Constraint for at least n cells.
func Min(n int) Constraint { return layout.Min(n) }

// Max returns a Constraint for at most n cells.
func Max(n int) Constraint { return layout.Max(n) }

// Edges represents values for four sides of a box.
type Edges = layout.Edges

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges { return layout.EdgeAll(n) }

// EdgeSymmetric creates Edges with vertical and horizontal values.
func EdgeSymmetric(v, h int) Edges { return layout.EdgeSymmetric(v, h) }

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l int) Edges { return layout.EdgeTRBL(t, r, b, l) }

// Offset shifts a component's area before its margin is applied.
type Offset = layout.Offset

// LayoutStyle holds the declarative layout attributes of one component.
type LayoutStyle = layout.Style

// DefaultLayoutStyle stacks children vertically and fills the parent.
func DefaultLayoutStyle() LayoutStyle {
	return layout.DefaultStyle()
}

// SplitArea partitions area among children the way the runtime does by
// default. Components implementing ChildLayouter can call it to reuse the
// default partitioning for part of their layout.
func SplitArea(area Rect, style LayoutStyle, children []LayoutStyle) []Rect {
	return layout.Split(area, style, children)
}
