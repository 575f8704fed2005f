package layout

import "fmt"

// Unit specifies how a Constraint is interpreted.
type Unit uint8

const (
	UnitFill    Unit = iota // Share of space left after every other constraint
	UnitFixed               // Absolute terminal cells
	UnitPercent             // Percentage of the available main-axis space
	UnitMin                 // At least N cells; grows when nothing else fills
	UnitMax                 // At most N cells
)

// Constraint describes how much space a child asks for along one axis.
// The zero value is Fill(0), which Split weighs the same as Fill(1).
type Constraint struct {
	Amount float64
	Unit   Unit
}

// Fixed returns a Constraint for exactly n cells.
func Fixed(n int) Constraint {
	return Constraint{Amount: float64(max(n, 0)), Unit: UnitFixed}
}

// Percent returns a Constraint for a percentage of available space.
// The value is on a 0-100 scale (50.0 = 50%).
func Percent(p float64) Constraint {
	return Constraint{Amount: p, Unit: UnitPercent}
}

// Fill returns a Constraint that takes a weighted share of leftover space.
func Fill(weight int) Constraint {
	return Constraint{Amount: float64(max(weight, 0)), Unit: UnitFill}
}

// Min returns a Constraint for at least n cells.
func Min(n int) Constraint {
	return Constraint{Amount: float64(max(n, 0)), Unit: UnitMin}
}

// Max returns a Constraint for at most n cells.
func Max(n int) Constraint {
	return Constraint{Amount: float64(max(n, 0)), Unit: UnitMax}
}

// DefaultConstraint is used when a component does not declare a size.
func DefaultConstraint() Constraint {
	return Fill(1)
}

// request is the size this constraint asks for before leftover space is shared.
// Fill asks for nothing up front.
func (c Constraint) request(available int) int {
	switch c.Unit {
	case UnitFixed, UnitMin, UnitMax:
		return int(c.Amount)
	case UnitPercent:
		return percentOf(available, c.Amount)
	default:
		return 0
	}
}

// Cross resolves the constraint as the only one on its axis.
func (c Constraint) Cross(available int) int {
	if available <= 0 {
		return 0
	}
	switch c.Unit {
	case UnitFixed, UnitMax:
		return min(int(c.Amount), available)
	case UnitPercent:
		return percentOf(available, c.Amount)
	default: // UnitFill, UnitMin
		return available
	}
}

// String returns a human-readable form such as "Fixed(30)".
func (c Constraint) String() string {
	switch c.Unit {
	case UnitFixed:
		return fmt.Sprintf("Fixed(%d)", int(c.Amount))
	case UnitPercent:
		return fmt.Sprintf("Percent(%g)", c.Amount)
	case UnitMin:
		return fmt.Sprintf("Min(%d)", int(c.Amount))
	case UnitMax:
		return fmt.Sprintf("Max(%d)", int(c.Amount))
	default:
		return fmt.Sprintf("Fill(%d)", int(c.Amount))
	}
}

func percentOf(available int, p float64) int {
	if p <= 0 || available <= 0 {
		return 0
	}
	if p >= 100 {
		return available
	}
	return int(float64(available) * p / 100.0)
}
