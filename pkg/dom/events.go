package dom

// EventKind identifies the interaction an element can be observed for.
type EventKind string

const (
	EventClick     EventKind = "click"
	EventSubmit    EventKind = "submit"
	EventBlur      EventKind = "blur"
	EventInput     EventKind = "input"
	EventScroll    EventKind = "scroll"
	EventIntersect EventKind = "intersect"
)

// Event carries one interaction. Handlers run synchronously on the
// dispatching goroutine; there is no bubbling, a handler sees only events
// dispatched against the element it subscribed on.
type Event struct {
	Kind   EventKind
	Target *Element

	// Intersecting reports viewport intersection for EventIntersect.
	Intersecting bool

	defaultPrevented bool
}

// PreventDefault suppresses the default action associated with the event,
// e.g. a native form submission or an anchor jump.
func (ev *Event) PreventDefault() {
	ev.defaultPrevented = true
}

// DefaultPrevented reports whether any handler called PreventDefault.
func (ev *Event) DefaultPrevented() bool {
	return ev.defaultPrevented
}

// Handler reacts to a dispatched event.
type Handler func(*Event)

// On subscribes a handler for the given event kind. Handlers run in
// subscription order.
func (e *Element) On(kind EventKind, handler Handler) {
	if handler == nil {
		return
	}
	if e.listeners == nil {
		e.listeners = make(map[EventKind][]Handler)
	}
	e.listeners[kind] = append(e.listeners[kind], handler)
}

// Dispatch delivers the event to this element's handlers and reports whether
// the default action should still proceed.
func (e *Element) Dispatch(ev *Event) bool {
	if ev == nil {
		return true
	}
	if ev.Target == nil {
		ev.Target = e
	}
	for _, handler := range e.listeners[ev.Kind] {
		handler(ev)
	}
	return !ev.defaultPrevented
}

// Click dispatches a click event and reports whether the default action
// proceeds.
func (e *Element) Click() bool {
	return e.Dispatch(&Event{Kind: EventClick, Target: e})
}

// Submit dispatches a submit event against a form element and reports
// whether the native submission proceeds.
func (e *Element) Submit() bool {
	return e.Dispatch(&Event{Kind: EventSubmit, Target: e})
}

// Blur dispatches a blur event, as when the control loses focus.
func (e *Element) Blur() {
	e.Dispatch(&Event{Kind: EventBlur, Target: e})
}

// Input dispatches an input event, as when the control value changes.
func (e *Element) Input() {
	e.Dispatch(&Event{Kind: EventInput, Target: e})
}

// Intersect dispatches an intersection event with the given visibility.
func (e *Element) Intersect(visible bool) {
	e.Dispatch(&Event{Kind: EventIntersect, Target: e, Intersecting: visible})
}
