package widget

import (
	"context"
	"slices"
	"testing"

	"github.com/gdamore/tcell/v2"

	tui "github.com/grindlemire/go-tuikit"
)

// newTree renders root once on an 80x25 simulation screen.
func newTree(t *testing.T, root tui.Component, events ...tui.Event) *tui.Tree {
	t.Helper()
	tree, err := tui.NewTree(tui.E(root),
		tui.WithScreen(tcell.NewSimulationScreen("UTF-8")),
		tui.WithSource(tui.NewMockSource(events...)),
	)
	if err != nil {
		t.Fatalf("NewTree() error = %v", err)
	}
	t.Cleanup(func() { tree.Close() })
	if err := tree.Render(); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return tree
}

func cell(tree *tui.Tree, x, y int) rune {
	r, _, _, _ := tree.Screen().GetContent(x, y)
	return r
}

func TestGrid_LayoutChildren(t *testing.T) {
	type tc struct {
		grid Grid
		gap  int
		n    int
		area tui.Rect
		want []tui.Rect
	}

	tests := map[string]tc{
		"two columns with gap": {
			grid: Grid{Columns: 2},
			gap:  1,
			n:    5,
			area: tui.NewRect(0, 0, 20, 10),
			want: []tui.Rect{
				tui.NewRect(0, 0, 9, 2), tui.NewRect(10, 0, 10, 2),
				tui.NewRect(0, 3, 9, 3), tui.NewRect(10, 3, 10, 3),
				tui.NewRect(0, 7, 9, 3),
			},
		},
		"single column": {
			grid: Grid{Columns: 1},
			n:    2,
			area: tui.NewRect(5, 5, 10, 4),
			want: []tui.Rect{tui.NewRect(5, 5, 10, 2), tui.NewRect(5, 7, 10, 2)},
		},
		"zero columns means one": {
			grid: Grid{},
			n:    1,
			area: tui.NewRect(0, 0, 4, 4),
			want: []tui.Rect{tui.NewRect(0, 0, 4, 4)},
		},
		"no children": {
			grid: Grid{Columns: 3},
			area: tui.NewRect(0, 0, 4, 4),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			style := tui.LayoutStyle{Gap: tt.gap}
			got := tt.grid.LayoutChildren(make([]tui.LayoutStyle, tt.n), style, tt.area)
			if !slices.Equal(got, tt.want) {
				t.Errorf("LayoutChildren() = %+v\nwant %+v", got, tt.want)
			}
		})
	}
}

func TestBorder_ChildrenInsideFrame(t *testing.T) {
	root := Border{
		Title:    "T",
		Children: []tui.Element{tui.E(Text{Content: "hi"})},
	}
	tree := newTree(t, root)

	want := []tui.ComponentArea{
		{Path: "Border", Rect: tui.NewRect(0, 0, 80, 25)},
		{Path: "Border/Text[0]", Rect: tui.NewRect(1, 1, 78, 23)},
	}
	if got := tree.Areas(); !slices.Equal(got, want) {
		t.Errorf("Areas() = %+v\nwant %+v", got, want)
	}

	cells := map[[2]int]rune{
		{0, 0}:   '┌',
		{79, 0}:  '┐',
		{0, 24}:  '└',
		{79, 24}: '┘',
		{3, 0}:   'T',
		{1, 1}:   'h',
		{2, 1}:   'i',
	}
	for pos, want := range cells {
		if got := cell(tree, pos[0], pos[1]); got != want {
			t.Errorf("cell(%d, %d) = %q, want %q", pos[0], pos[1], got, want)
		}
	}
}

func TestDrawBox_TooSmall(t *testing.T) {
	root := tui.Func{DrawFn: func(d *tui.Drawer) {
		DrawBox(d, tui.NewRect(0, 0, 1, 5), BorderDouble, tcell.StyleDefault)
	}}
	tree := newTree(t, root)
	for y := range 5 {
		if got := cell(tree, 0, y); got == '╔' || got == '║' || got == '╚' {
			t.Errorf("cell(0, %d) = %q, want no frame", y, got)
		}
	}
}

func TestText_Align(t *testing.T) {
	type tc struct {
		align Align
		wantX int
	}

	tests := map[string]tc{
		"left":   {align: AlignLeft, wantX: 0},
		"center": {align: AlignCenter, wantX: 39},
		"right":  {align: AlignRight, wantX: 78},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tree := newTree(t, Text{Content: "ok", Align: tt.align})
			if got := cell(tree, tt.wantX, 0); got != 'o' {
				t.Errorf("cell(%d, 0) = %q, want 'o'", tt.wantX, got)
			}
		})
	}
}

func TestButton_Click(t *testing.T) {
	var left, right int
	root := Grid{
		Columns: 2,
		Children: []tui.Element{
			tui.E(Button{Label: "L", OnClick: func() { left++ }}),
			tui.E(Button{Label: "R", OnClick: func() { right++ }}),
		},
	}
	tree := newTree(t, root,
		tui.MouseEvent{Row: 10, Column: 50, Kind: tui.MouseDown, Button: tui.MouseLeft},
		tui.MouseEvent{Row: 10, Column: 50, Kind: tui.MouseUp, Button: tui.MouseLeft},
		tui.MouseEvent{Row: 0, Column: 0, Kind: tui.MouseDown, Button: tui.MouseLeft},
		tui.MouseEvent{Row: 0, Column: 0, Kind: tui.MouseDown, Button: tui.MouseRight},
	)

	for range 4 {
		if err := tree.Distributor().Pump(context.Background()); err != nil {
			t.Fatalf("Pump() error = %v", err)
		}
	}
	if err := tree.Render(); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if left != 1 || right != 1 {
		t.Errorf("clicks = (%d, %d), want (1, 1)", left, right)
	}
	if got := cell(tree, 19, 12); got != 'L' {
		t.Errorf("left label at (19, 12) = %q, want 'L'", got)
	}
}
