package layout

import "testing"

func TestConstraint_Constructors(t *testing.T) {
	type tc struct {
		c    Constraint
		unit Unit
		amt  float64
		str  string
	}

	tests := map[string]tc{
		"fixed":          {c: Fixed(30), unit: UnitFixed, amt: 30, str: "Fixed(30)"},
		"negative fixed": {c: Fixed(-3), unit: UnitFixed, amt: 0, str: "Fixed(0)"},
		"percent":        {c: Percent(12.5), unit: UnitPercent, amt: 12.5, str: "Percent(12.5)"},
		"fill":           {c: Fill(2), unit: UnitFill, amt: 2, str: "Fill(2)"},
		"min":            {c: Min(4), unit: UnitMin, amt: 4, str: "Min(4)"},
		"max":            {c: Max(7), unit: UnitMax, amt: 7, str: "Max(7)"},
		"default":        {c: DefaultConstraint(), unit: UnitFill, amt: 1, str: "Fill(1)"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if tt.c.Unit != tt.unit {
				t.Errorf("Unit = %d, want %d", tt.c.Unit, tt.unit)
			}
			if tt.c.Amount != tt.amt {
				t.Errorf("Amount = %g, want %g", tt.c.Amount, tt.amt)
			}
			if got := tt.c.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
		})
	}
}

func TestConstraint_Cross(t *testing.T) {
	type tc struct {
		c         Constraint
		available int
		want      int
	}

	tests := map[string]tc{
		"fixed fits":          {c: Fixed(5), available: 10, want: 5},
		"fixed truncated":     {c: Fixed(15), available: 10, want: 10},
		"percent":             {c: Percent(50), available: 11, want: 5},
		"percent over 100":    {c: Percent(150), available: 11, want: 11},
		"fill takes all":      {c: Fill(1), available: 9, want: 9},
		"min takes all":       {c: Min(2), available: 9, want: 9},
		"max caps":            {c: Max(3), available: 9, want: 3},
		"nothing available":   {c: Fixed(3), available: 0, want: 0},
		"negative available":  {c: Fill(1), available: -4, want: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.c.Cross(tt.available); got != tt.want {
				t.Errorf("%s.Cross(%d) = %d, want %d", tt.c, tt.available, got, tt.want)
			}
		})
	}
}

func TestDistribute(t *testing.T) {
	type tc struct {
		total   int
		weights []float64
		want    []int
	}

	tests := map[string]tc{
		"even":         {total: 9, weights: []float64{1, 1, 1}, want: []int{3, 3, 3}},
		"remainder":    {total: 10, weights: []float64{1, 1, 1}, want: []int{3, 3, 4}},
		"weighted":     {total: 12, weights: []float64{1, 2, 3}, want: []int{2, 4, 6}},
		"zero total":   {total: 0, weights: []float64{1, 2}, want: []int{0, 0}},
		"zero weights": {total: 5, weights: []float64{0, 0}, want: []int{0, 0}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := distribute(tt.total, tt.weights)
			if len(got) != len(tt.want) {
				t.Fatalf("len(distribute()) = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("distribute()[%d] = %d, want %d", i, got[i], tt.want[i])
				}
			}
		})
	}
}
