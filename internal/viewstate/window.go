package viewstate

import "sync"

// ScrollSource delivers vertical scroll offsets to registered listeners.
// AddScrollListener returns the func that removes the listener again.
type ScrollSource interface {
	AddScrollListener(fn func(offset float64)) (remove func())
}

// Window is an in-process ScrollSource. Offsets are delivered to listeners
// serially, each to completion, in registration order.
type Window struct {
	mu        sync.Mutex
	offset    float64
	listeners []listener
	nextID    int
}

type listener struct {
	id int
	fn func(float64)
}

func NewWindow() *Window {
	return &Window{}
}

func (w *Window) AddScrollListener(fn func(offset float64)) (remove func()) {
	w.mu.Lock()
	id := w.nextID
	w.nextID++
	w.listeners = append(w.listeners, listener{id: id, fn: fn})
	w.mu.Unlock()

	return func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		for i, l := range w.listeners {
			if l.id == id {
				w.listeners = append(w.listeners[:i], w.listeners[i+1:]...)
				return
			}
		}
	}
}

// ScrollTo records the new offset and dispatches it.
func (w *Window) ScrollTo(offset float64) {
	w.mu.Lock()
	w.offset = offset
	fns := make([]func(float64), len(w.listeners))
	for i, l := range w.listeners {
		fns[i] = l.fn
	}
	w.mu.Unlock()

	for _, fn := range fns {
		fn(offset)
	}
}

// Offset returns the last offset passed to ScrollTo.
func (w *Window) Offset() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.offset
}

// Listeners returns the number of attached listeners.
func (w *Window) Listeners() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.listeners)
}
