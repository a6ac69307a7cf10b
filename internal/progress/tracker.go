package progress

import "sync"

// Event is one scroll position report.
type Event struct {
	Offset         float64
	DocumentHeight float64
	ViewportHeight float64
}

// Source delivers scroll events to subscribers until they cancel.
type Source interface {
	Subscribe(fn func(Event)) (cancel func())
}

// Feed is a synchronous Source. Publish calls every listener in
// subscription order on the caller's goroutine.
type Feed struct {
	mu        sync.Mutex
	next      int
	listeners map[int]func(Event)
	order     []int
}

// Subscribe registers fn. The returned cancel may be called more than once.
func (f *Feed) Subscribe(fn func(Event)) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listeners == nil {
		f.listeners = make(map[int]func(Event))
	}
	id := f.next
	f.next++
	f.listeners[id] = fn
	f.order = append(f.order, id)

	var once sync.Once
	return func() {
		once.Do(func() { f.remove(id) })
	}
}

func (f *Feed) remove(id int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.listeners, id)
	for i, o := range f.order {
		if o == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
}

// Listeners is the number of active subscriptions.
func (f *Feed) Listeners() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.listeners)
}

// Publish delivers ev to every current listener.
func (f *Feed) Publish(ev Event) {
	f.mu.Lock()
	fns := make([]func(Event), 0, len(f.order))
	for _, id := range f.order {
		fns = append(fns, f.listeners[id])
	}
	f.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}

// Tracker holds the current reading percentage for one view.
type Tracker struct {
	mu      sync.Mutex
	percent float64
}

// Attach starts following src. Detach stops it; calling it again is a
// no-op.
func (t *Tracker) Attach(src Source) (detach func()) {
	return src.Subscribe(func(ev Event) {
		p := Percent(ev.Offset, ev.DocumentHeight, ev.ViewportHeight)
		t.mu.Lock()
		t.percent = p
		t.mu.Unlock()
	})
}

// Percent is the value computed from the last event, 0 before any.
func (t *Tracker) Percent() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.percent
}
