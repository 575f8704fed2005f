package layout

// Direction specifies the main axis for laying out children.
type Direction uint8

const (
	Vertical   Direction = iota // Children laid out top-to-bottom
	Horizontal                  // Children laid out left-to-right
)

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyStart        Justify = iota // Pack at start
	JustifyEnd                         // Pack at end
	JustifyCenter                      // Center children
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Even space around each child
	JustifySpaceEvenly                 // Equal space between and at edges
)

// Style contains the declarative layout attributes of one component.
type Style struct {
	// Container properties, applied to this component's children.
	Direction Direction
	Justify   Justify
	Gap       int

	// Spacing applied to this component's own area.
	Margin Edges
	Offset Offset

	// Item properties, read by the parent when partitioning.
	Width  Constraint
	Height Constraint
}

// DefaultStyle returns a Style that stacks children vertically and fills the parent.
func DefaultStyle() Style {
	return Style{
		Direction: Vertical,
		Width:     DefaultConstraint(),
		Height:    DefaultConstraint(),
	}
}

// Inner shrinks area by the style's offset and margin.
// The offset moves the rectangle and the result is clipped to the original
// area, so a component never paints outside the slot its parent assigned.
func (s Style) Inner(area Rect) Rect {
	shifted := area
	if s.Offset != (Offset{}) {
		shifted = area.Translate(s.Offset.DX, s.Offset.DY).Intersect(area)
		if shifted.IsEmpty() {
			return Rect{X: area.X, Y: area.Y}
		}
	}
	return shifted.Inset(s.Margin)
}

// main returns the constraint on the given main axis.
func (s Style) main(d Direction) Constraint {
	if d == Horizontal {
		return s.Width
	}
	return s.Height
}

// cross returns the constraint on the axis perpendicular to d.
func (s Style) cross(d Direction) Constraint {
	if d == Horizontal {
		return s.Height
	}
	return s.Width
}
