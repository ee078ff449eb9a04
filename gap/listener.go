package gap

// Listener observes successful mutations of a Vector.
//
// delta is positive for insertions of delta items at offset and negative for
// removal of -delta items starting at offset.
type Listener interface {
	Changed(offset, delta int)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(offset, delta int)

func (f ListenerFunc) Changed(offset, delta int) { f(offset, delta) }

type listenerEntry struct {
	id int
	l  Listener
}

// AddListener registers l and returns a function that unregisters it.
// Listeners run in registration order, after the vector is consistent.
func (v *Vector[T]) AddListener(l Listener) (remove func()) {
	v.nextListener++
	id := v.nextListener
	v.listeners = append(v.listeners, listenerEntry{id: id, l: l})
	return func() {
		for i, e := range v.listeners {
			if e.id == id {
				v.listeners = append(v.listeners[:i:i], v.listeners[i+1:]...)
				return
			}
		}
	}
}

func (v *Vector[T]) notify(offset, delta int) {
	if delta == 0 {
		return
	}
	for _, e := range v.listeners {
		e.l.Changed(offset, delta)
	}
}
