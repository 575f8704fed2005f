package tui

// contextStack holds the values provided by ancestors of the component
// currently updating, outermost first.
type contextStack struct {
	values []any
}

func newContextStack(root ...any) *contextStack {
	return &contextStack{values: root}
}

// with pushes value for the duration of fn. A nil value pushes nothing.
func (s *contextStack) with(value any, fn func()) {
	if value == nil {
		fn()
		return
	}
	s.values = append(s.values, value)
	defer func() {
		s.values[len(s.values)-1] = nil
		s.values = s.values[:len(s.values)-1]
	}()
	fn()
}

func lookupContext[T any](s *contextStack) (T, bool) {
	if s != nil {
		for i := len(s.values) - 1; i >= 0; i-- {
			if v, ok := s.values[i].(T); ok {
				return v, true
			}
		}
	}
	var zero T
	return zero, false
}

// System is available to every component through Hooks.System or
// UseSystem. It controls the Tree as a whole.
type System struct {
	tree *Tree
}

// Exit stops the Tree after the current pass, as if the quit key had been
// pressed. Safe to call from any goroutine.
func (s *System) Exit() {
	s.tree.dist.Cancel()
	s.tree.wake.Notify()
}

// Size returns the current screen size in cells.
func (s *System) Size() (width, height int) {
	return s.tree.screen.Size()
}
