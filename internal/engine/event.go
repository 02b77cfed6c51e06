package engine

// ListenerID identifies a subscription so it can be removed later.
type ListenerID uint64

// Event is a multi-cast event: every listener runs on Invoke, in
// subscription order.
type Event struct {
	listeners []listener[struct{}]
	nextID    ListenerID
}

type listener[T any] struct {
	id ListenerID
	fn func(T)
}

// AddListener adds a callback to be invoked when the event fires
func (e *Event) AddListener(callback func()) ListenerID {
	if callback == nil {
		return 0
	}
	e.nextID++
	e.listeners = append(e.listeners, listener[struct{}]{id: e.nextID, fn: func(struct{}) { callback() }})
	return e.nextID
}

// RemoveListener drops the subscription returned by AddListener.
func (e *Event) RemoveListener(id ListenerID) bool {
	var ok bool
	e.listeners, ok = removeListener(e.listeners, id)
	return ok
}

// RemoveAllListeners clears all listeners
func (e *Event) RemoveAllListeners() {
	e.listeners = nil
}

// Invoke calls all registered listeners
func (e *Event) Invoke() {
	for _, l := range snapshot(e.listeners) {
		l.fn(struct{}{})
	}
}

func (e *Event) GetListenerCount() int {
	return len(e.listeners)
}

// EventWithArg is a generic event with one argument
type EventWithArg[T any] struct {
	listeners []listener[T]
	nextID    ListenerID
}

func (e *EventWithArg[T]) AddListener(callback func(T)) ListenerID {
	if callback == nil {
		return 0
	}
	e.nextID++
	e.listeners = append(e.listeners, listener[T]{id: e.nextID, fn: callback})
	return e.nextID
}

func (e *EventWithArg[T]) RemoveListener(id ListenerID) bool {
	var ok bool
	e.listeners, ok = removeListener(e.listeners, id)
	return ok
}

func (e *EventWithArg[T]) RemoveAllListeners() {
	e.listeners = nil
}

func (e *EventWithArg[T]) Invoke(arg T) {
	for _, l := range snapshot(e.listeners) {
		l.fn(arg)
	}
}

func (e *EventWithArg[T]) GetListenerCount() int {
	return len(e.listeners)
}

// snapshot lets listeners unsubscribe while the event is firing.
func snapshot[T any](ls []listener[T]) []listener[T] {
	out := make([]listener[T], len(ls))
	copy(out, ls)
	return out
}

func removeListener[T any](ls []listener[T], id ListenerID) ([]listener[T], bool) {
	for i, l := range ls {
		if l.id == id {
			return append(ls[:i], ls[i+1:]...), true
		}
	}
	return ls, false
}
