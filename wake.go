package tui

// wakeSource is the Scheduler's shared "something changed" signal.
// Notify never blocks and repeated notifications before the Scheduler
// wakes collapse into one.
type wakeSource struct {
	ch chan struct{}
}

func newWakeSource() *wakeSource {
	return &wakeSource{ch: make(chan struct{}, 1)}
}

// Notify marks the Scheduler as needing another look.
func (w *wakeSource) Notify() {
	if w == nil {
		return
	}
	select {
	case w.ch <- struct{}{}:
	default:
	}
}

// C is ready once after any number of Notify calls.
func (w *wakeSource) C() <-chan struct{} {
	return w.ch
}
