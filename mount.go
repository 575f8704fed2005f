package tui

import (
	"fmt"
	"reflect"

	"github.com/grindlemire/go-tuikit/internal/debug"
	"github.com/grindlemire/go-tuikit/internal/layout"
)

// instance is the retained side of a component: the part that survives
// re-renders of the same identity. The Component value itself is replaced
// on every render.
type instance struct {
	key  string
	typ  reflect.Type
	path string

	comp     Component
	style    LayoutStyle
	hooks    []hook
	children []*instance
	first    bool

	// area is the rectangle assigned at the last paint, after margin and
	// offset. Written by draw, read by this instance's hooks.
	area Rect
}

func newInstance(key string, typ reflect.Type) *instance {
	return &instance{
		key:   key,
		typ:   typ,
		style: DefaultLayoutStyle(),
		first: true,
	}
}

// typeName is the component's type name without package or pointer.
func typeName(typ reflect.Type) string {
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if name := typ.Name(); name != "" {
		return name
	}
	return typ.String()
}

// childPath names a child for errors and Areas, e.g. "App/Counter[0]" or
// "App/Row[header]".
func childPath(parent string, key string, typ reflect.Type, index int) string {
	if key != "" {
		return fmt.Sprintf("%s/%s[%s]", parent, typeName(typ), key)
	}
	return fmt.Sprintf("%s/%s[%d]", parent, typeName(typ), index)
}

// update runs the component's Update and the hooks' post-update step.
func (i *instance) update(t *Tree, comp Component, stack *contextStack) {
	i.comp = comp
	t.current = i.path

	h := &Hooks{inst: i, tree: t, stack: stack}
	u := &Updater{inst: i, tree: t, stack: stack}
	comp.Update(h, u)

	t.current = i.path
	if !i.first && h.index != len(i.hooks) {
		panic(fmt.Errorf("%w: %s called %d hooks, want %d", ErrHookOrder, i.path, h.index, len(i.hooks)))
	}
	for _, hk := range i.hooks {
		hk.afterUpdate(t)
	}
	i.first = false
}

// updateChildren reconciles the children against elems. An existing child
// is reused when both its key and component type match, taking same-key
// children in order; everything not reused is destroyed.
func (i *instance) updateChildren(t *Tree, stack *contextStack, elems []Element) {
	old := make(map[string][]*instance, len(i.children))
	for _, c := range i.children {
		old[c.key] = append(old[c.key], c)
	}

	next := make([]*instance, 0, len(elems))
	for _, el := range elems {
		if el.Component == nil {
			continue
		}
		typ := reflect.TypeOf(el.Component)

		var child *instance
		if q := old[el.Key]; len(q) > 0 {
			old[el.Key] = q[1:]
			if q[0].typ == typ {
				child = q[0]
			} else {
				q[0].destroy()
			}
		}
		if child == nil {
			child = newInstance(el.Key, typ)
			debug.Log("mount: %s", childPath(i.path, el.Key, typ, len(next)))
		}
		child.path = childPath(i.path, el.Key, typ, len(next))
		next = append(next, child)
		child.update(t, el.Component, stack)
	}

	for _, q := range old {
		for _, c := range q {
			c.destroy()
		}
	}
	i.children = next
}

// destroy unmounts the instance and its subtree, children first.
func (i *instance) destroy() {
	debug.Log("unmount: %s", i.path)
	for _, c := range i.children {
		c.destroy()
	}
	i.children = nil
	for _, hk := range i.hooks {
		hk.destroy()
	}
	i.hooks = nil
}

// change runs the change step of every hook in the subtree, depth-first.
func (i *instance) change(t *Tree) bool {
	t.current = i.path
	changed := false
	for _, hk := range i.hooks {
		if hk.change() {
			changed = true
		}
	}
	for _, c := range i.children {
		if c.change(t) {
			changed = true
		}
	}
	return changed
}

// draw paints the subtree into area, depth-first pre-order.
func (i *instance) draw(t *Tree, d *Drawer, area Rect) {
	t.current = i.path

	inner := i.style.Inner(area)
	i.area = inner
	d.reset(inner)
	for _, hk := range i.hooks {
		hk.beforeDraw(inner)
	}
	i.comp.Draw(d)
	t.frame = append(t.frame, ComponentArea{Path: i.path, Rect: inner})

	if len(i.children) == 0 {
		return
	}
	content := clampRect(d.Area, inner)
	for idx, r := range i.layoutChildren(content) {
		i.children[idx].draw(t, d, r)
	}
}

// layoutChildren returns one rectangle per child, each inside area.
func (i *instance) layoutChildren(area Rect) []Rect {
	styles := make([]LayoutStyle, len(i.children))
	for idx, c := range i.children {
		styles[idx] = c.style
	}

	var rects []Rect
	if l, ok := i.comp.(ChildLayouter); ok {
		rects = l.LayoutChildren(styles, i.style, area)
	} else {
		rects = layout.Split(area, i.style, styles)
	}

	out := make([]Rect, len(i.children))
	for idx := range out {
		if idx < len(rects) {
			out[idx] = clampRect(rects[idx], area)
		} else {
			out[idx] = Rect{X: area.X, Y: area.Y}
		}
	}
	return out
}

// clampRect returns the part of r inside bounds. A rectangle entirely
// outside collapses to a zero-size one at the origin of bounds.
func clampRect(r, bounds Rect) Rect {
	if out := r.Intersect(bounds); !out.IsEmpty() {
		return out
	}
	return Rect{X: bounds.X, Y: bounds.Y}
}

// Updater is passed to Component.Update. It changes the component's
// retained layout style and children.
type Updater struct {
	inst  *instance
	tree  *Tree
	stack *contextStack
}

// Key returns the identity key the component was rendered with.
func (u *Updater) Key() string {
	return u.inst.key
}

// LayoutStyle returns the component's current layout style.
func (u *Updater) LayoutStyle() LayoutStyle {
	return u.inst.style
}

// SetLayoutStyle replaces the component's layout style. It takes effect at
// the next paint, which follows this update pass.
func (u *Updater) SetLayoutStyle(style LayoutStyle) {
	u.inst.style = style
}

// UpdateChildren replaces the component's children with elems, reusing
// retained instances whose key and type match. Nil components are skipped.
// A component that never calls UpdateChildren keeps its previous children
// without updating them.
func (u *Updater) UpdateChildren(elems ...Element) {
	u.inst.updateChildren(u.tree, u.stack, elems)
}

// UpdateChildrenWithContext is UpdateChildren with value made available to
// every descendant through UseContext.
func (u *Updater) UpdateChildrenWithContext(value any, elems ...Element) {
	u.stack.with(value, func() {
		u.inst.updateChildren(u.tree, u.stack, elems)
	})
}
