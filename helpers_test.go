package tui

import (
	"context"
	"testing"

	"github.com/gdamore/tcell/v2"
)

// recorder appends every event its hook receives.
type recorder struct {
	local  bool
	got    *[]Event
	layout LayoutStyle
}

func (r recorder) Update(h *Hooks, u *Updater) {
	u.SetLayoutStyle(r.layout)
	record := func(ev Event) { *r.got = append(*r.got, ev) }
	if r.local {
		h.UseLocalEvents(record)
	} else {
		h.UseEvents(record)
	}
}

func (recorder) Draw(*Drawer) {}

// newTestTree builds a Tree on an 80x25 simulation screen fed by a
// MockSource. The tree is closed when the test ends.
func newTestTree(t *testing.T, root Component, events ...Event) (*Tree, *MockSource) {
	t.Helper()
	src := NewMockSource(events...)
	tree, err := NewTree(E(root), WithScreen(tcell.NewSimulationScreen("UTF-8")), WithSource(src))
	if err != nil {
		t.Fatalf("NewTree() error = %v", err)
	}
	t.Cleanup(func() { tree.Close() })
	return tree, src
}

func mustRender(t *testing.T, tree *Tree) {
	t.Helper()
	if err := tree.Render(); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
}

func pumpN(t *testing.T, tree *Tree, n int) {
	t.Helper()
	for range n {
		if err := tree.Distributor().Pump(context.Background()); err != nil {
			t.Fatalf("Pump() error = %v", err)
		}
	}
}

func mouseAt(row, col int) MouseEvent {
	return MouseEvent{Row: row, Column: col, Kind: MouseDown, Button: MouseLeft}
}
