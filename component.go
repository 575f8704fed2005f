package tui

// Component is the interface implemented by every node in the tree.
//
// A component value carries only its properties. It is rebuilt by the
// parent on every render and handed to the retained instance, which keeps
// the hooks, children and layout style across renders. Anything that must
// survive a re-render belongs in a hook (UseState, UseEvents, ...).
type Component interface {
	// Update runs once per render on the Scheduler goroutine. Hooks must be
	// called in the same order on every render.
	Update(h *Hooks, u *Updater)

	// Draw paints the component into d.Area. Shrinking d.Area (for a border,
	// padding, a title row) also shrinks the area children are laid out in.
	Draw(d *Drawer)
}

// ChildLayouter is implemented by components that partition their area
// themselves instead of using the LayoutStyle-driven default, e.g. a grid.
//
// children holds each child's LayoutStyle in child order, style is the
// component's own LayoutStyle and area its post-draw area. The result must
// have one Rect per child in the same order; missing entries are treated as
// zero-size rectangles and extra entries are ignored.
type ChildLayouter interface {
	LayoutChildren(children []LayoutStyle, style LayoutStyle, area Rect) []Rect
}

// Element pairs a component value with the key used to match it against the
// previous render's children. Children with equal keys are matched in order,
// so unkeyed children are matched by position among their siblings.
type Element struct {
	Key       string
	Component Component
}

// E creates an unkeyed Element.
func E(c Component) Element {
	return Element{Component: c}
}

// Keyed creates an Element with an explicit identity key.
func Keyed(key string, c Component) Element {
	return Element{Key: key, Component: c}
}

// Fragment is a component with no visual of its own. It lays out its
// children with Layout.
type Fragment struct {
	Layout   LayoutStyle
	Children []Element
}

// Update implements Component.
func (f Fragment) Update(_ *Hooks, u *Updater) {
	u.SetLayoutStyle(f.Layout)
	u.UpdateChildren(f.Children...)
}

// Draw implements Component.
func (Fragment) Draw(*Drawer) {}

// Func adapts a pair of functions to Component. DrawFn may be nil.
type Func struct {
	UpdateFn func(h *Hooks, u *Updater)
	DrawFn   func(d *Drawer)
}

// Update implements Component.
func (f Func) Update(h *Hooks, u *Updater) {
	if f.UpdateFn != nil {
		f.UpdateFn(h, u)
	}
}

// Draw implements Component.
func (f Func) Draw(d *Drawer) {
	if f.DrawFn != nil {
		f.DrawFn(d)
	}
}
