package tui

import (
	"errors"
	"testing"
)

func TestUseLocalEvents_HitTest(t *testing.T) {
	var got []Event
	// 80x25 screen shrunk by margin to {x:10, y:5, width:20, height:4}
	root := recorder{local: true, got: &got, layout: LayoutStyle{Margin: EdgeTRBL(5, 50, 16, 10)}}
	tree, _ := newTestTree(t, root,
		mouseAt(5, 10),
		mouseAt(4, 10),
		mouseAt(8, 29),
		mouseAt(8, 30),
		mouseAt(9, 15),
		KeyEvent{Code: KeyEnter},
	)

	mustRender(t, tree)
	if areas := tree.Areas(); areas[0].Rect != NewRect(10, 5, 20, 4) {
		t.Fatalf("root area = %+v, want {10 5 20 4}", areas[0].Rect)
	}

	pumpN(t, tree, 6)
	mustRender(t, tree)

	want := []Event{mouseAt(5, 10), mouseAt(8, 29), KeyEvent{Code: KeyEnter}}
	if len(got) != len(want) {
		t.Fatalf("delivered %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestUseEvents_DrainsAllQueuedInOnePass(t *testing.T) {
	var got []Event
	tree, _ := newTestTree(t, recorder{got: &got}, runeEvents("12345")...)

	mustRender(t, tree)
	pumpN(t, tree, 5)
	if len(got) != 0 {
		t.Fatalf("events delivered before the change pass: %v", got)
	}

	mustRender(t, tree)
	if len(got) != 5 {
		t.Fatalf("one pass delivered %d events, want 5", len(got))
	}
	for i, ev := range got {
		if want := rune('1' + i); ev.(KeyEvent).Rune != want {
			t.Errorf("got[%d] = %v, want %q", i, ev, want)
		}
	}
}

func TestUseEvents_SubscribesAfterFirstUpdate(t *testing.T) {
	var got []Event
	tree, _ := newTestTree(t, recorder{got: &got}, runeEvents("ab")...)

	// only the Tree's own resize subscription exists before rendering
	if n := tree.Distributor().Len(); n != 1 {
		t.Errorf("Len() before first render = %d, want 1", n)
	}
	pumpN(t, tree, 1)

	mustRender(t, tree)
	if n := tree.Distributor().Len(); n != 2 {
		t.Errorf("Len() after first render = %d, want 2", n)
	}

	pumpN(t, tree, 1)
	mustRender(t, tree)
	if len(got) != 1 || got[0].(KeyEvent).Rune != 'b' {
		t.Errorf("got %v, want only the event pumped after mount", got)
	}
}

// toggle shows its child while *show is true.
type toggle struct {
	show *bool
	got  *[]Event
}

func (p toggle) Update(_ *Hooks, u *Updater) {
	if *p.show {
		u.UpdateChildren(E(recorder{got: p.got}))
		return
	}
	u.UpdateChildren()
}

func (toggle) Draw(*Drawer) {}

func TestUnmount_PrunesWithinOnePump(t *testing.T) {
	show := true
	var got []Event
	tree, _ := newTestTree(t, toggle{show: &show, got: &got}, runeEvents("abc")...)

	mustRender(t, tree)
	pumpN(t, tree, 1)
	mustRender(t, tree)
	if len(got) != 1 {
		t.Fatalf("mounted child received %d events, want 1", len(got))
	}

	show = false
	mustRender(t, tree)
	if n := tree.Distributor().Len(); n != 2 {
		t.Errorf("Len() right after unmount = %d, want 2 (pruning is lazy)", n)
	}

	pumpN(t, tree, 1)
	if n := tree.Distributor().Len(); n != 1 {
		t.Errorf("Len() after one pump = %d, want 1", n)
	}

	pumpN(t, tree, 1)
	mustRender(t, tree)
	if len(got) != 1 {
		t.Errorf("unmounted child received %d events, want 1", len(got))
	}
}

func TestTermination_NotDelivered(t *testing.T) {
	var a, b []Event
	root := Fragment{Children: []Element{
		E(recorder{got: &a}),
		E(recorder{got: &b}),
	}}
	tree, _ := newTestTree(t, root, KeyEvent{Code: KeyRune, Rune: 'c', Mod: ModCtrl})

	mustRender(t, tree)
	pumpN(t, tree, 1)
	mustRender(t, tree)

	if !tree.Distributor().Cancelled() {
		t.Error("Cancelled() = false, want true")
	}
	if len(a) != 0 || len(b) != 0 {
		t.Errorf("subscribers received %v and %v, want nothing", a, b)
	}
}

func TestUseKeyMap(t *testing.T) {
	var count *State[int]
	root := Func{UpdateFn: func(h *Hooks, _ *Updater) {
		count = UseState(h, func() int { return 0 })
		h.UseKeyMap(KeyMap{
			OnRune('+', func(KeyEvent) { count.Update(func(v int) int { return v + 1 }) }),
			OnRune('-', func(KeyEvent) { count.Update(func(v int) int { return v - 1 }) }),
		})
	}}
	tree, _ := newTestTree(t, root, runeEvents("++-+x")...)

	mustRender(t, tree)
	pumpN(t, tree, 5)
	mustRender(t, tree)

	if count.Get() != 2 {
		t.Errorf("count = %d, want 2", count.Get())
	}
}

func TestUseClick(t *testing.T) {
	clicks := 0
	root := Func{UpdateFn: func(h *Hooks, u *Updater) {
		u.SetLayoutStyle(LayoutStyle{Margin: EdgeTRBL(1, 70, 22, 2)}) // {2,1,8,2}
		h.UseClick(func(MouseEvent) { clicks++ })
	}}
	tree, _ := newTestTree(t, root,
		mouseAt(1, 2),
		MouseEvent{Row: 1, Column: 2, Kind: MouseUp, Button: MouseLeft},
		MouseEvent{Row: 1, Column: 2, Kind: MouseDown, Button: MouseRight},
		mouseAt(0, 2),
		mouseAt(2, 9),
	)

	mustRender(t, tree)
	pumpN(t, tree, 5)
	mustRender(t, tree)

	if clicks != 2 {
		t.Errorf("clicks = %d, want 2", clicks)
	}
}

type themeReader struct {
	got *[]string
}

func (r themeReader) Update(h *Hooks, _ *Updater) {
	theme, ok := UseContext[string](h)
	if !ok {
		theme = "<none>"
	}
	*r.got = append(*r.got, theme)
}

func (themeReader) Draw(*Drawer) {}

func TestUseContext(t *testing.T) {
	var got []string
	var sys *System
	root := Func{UpdateFn: func(h *Hooks, u *Updater) {
		sys = UseSystem(h)
		u.UpdateChildren(
			E(themeReader{got: &got}),
			E(Func{UpdateFn: func(_ *Hooks, u *Updater) {
				u.UpdateChildrenWithContext("dark",
					E(themeReader{got: &got}),
					E(Func{UpdateFn: func(_ *Hooks, u *Updater) {
						u.UpdateChildrenWithContext("light", E(themeReader{got: &got}))
					}}),
				)
			}}),
			E(themeReader{got: &got}),
		)
	}}
	tree, _ := newTestTree(t, root)
	mustRender(t, tree)

	want := []string{"<none>", "dark", "light", "<none>"}
	if len(got) != len(want) {
		t.Fatalf("themes = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("themes[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if sys != tree.System() {
		t.Error("UseSystem() did not return the tree's System")
	}
}

// flipper swaps the order of its hooks when *flip is true.
type flipper struct {
	flip *bool
}

func (f flipper) Update(h *Hooks, _ *Updater) {
	if *f.flip {
		h.UseEvents(func(Event) {})
		UseState(h, func() int { return 0 })
		return
	}
	UseState(h, func() int { return 0 })
	h.UseEvents(func(Event) {})
}

func (flipper) Draw(*Drawer) {}

func TestHookOrderChange(t *testing.T) {
	flip := false
	tree, _ := newTestTree(t, flipper{flip: &flip})
	mustRender(t, tree)

	flip = true
	err := tree.Render()

	var pe *PassError
	if !errors.As(err, &pe) {
		t.Fatalf("Render() error = %v, want *PassError", err)
	}
	if pe.Phase != PhaseUpdate {
		t.Errorf("Phase = %q, want %q", pe.Phase, PhaseUpdate)
	}
	if pe.Path != "flipper" {
		t.Errorf("Path = %q, want %q", pe.Path, "flipper")
	}
	if !errors.Is(err, ErrHookOrder) {
		t.Errorf("errors.Is(err, ErrHookOrder) = false for %v", err)
	}
}

func TestHookCountChange(t *testing.T) {
	extra := false
	root := Func{UpdateFn: func(h *Hooks, _ *Updater) {
		UseState(h, func() int { return 0 })
		if extra {
			UseState(h, func() int { return 0 })
		}
	}}
	tree, _ := newTestTree(t, root)
	mustRender(t, tree)

	extra = true
	if err := tree.Render(); !errors.Is(err, ErrHookOrder) {
		t.Errorf("Render() with an extra hook error = %v, want ErrHookOrder", err)
	}
}
