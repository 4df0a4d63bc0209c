package inkpad

// EventType discriminates the pad lifecycle notifications.
type EventType int

const (
	// EventBegin fires when a new gesture starts.
	EventBegin EventType = iota
	// EventEnd fires when a gesture is finalized into a stroke.
	EventEnd
	// EventUndo fires after the most recent stroke has been removed.
	EventUndo
	// EventClear fires after the whole collection has been dropped.
	EventClear
	// EventLoad fires after a successful FromData or Load call.
	EventLoad
)

// Event is delivered to the registered listeners. Stroke is set for
// EventEnd and EventUndo and nil otherwise.
type Event struct {
	Type   EventType
	Stroke *Stroke
}

// Listener receives pad lifecycle events.
type Listener func(Event)

// notifier is a minimal observer registry. Listeners registered for
// the same event type are invoked synchronously in registration order.
type notifier struct {
	listeners map[EventType][]Listener
}

func (n *notifier) on(t EventType, fn Listener) {
	if n.listeners == nil {
		n.listeners = make(map[EventType][]Listener)
	}
	n.listeners[t] = append(n.listeners[t], fn)
}

func (n *notifier) emit(e Event) {
	for _, fn := range n.listeners[e.Type] {
		fn(e)
	}
}
