package dom

import (
	"syscall/js"
)

type Event struct {
	event js.Value
}

func (e Event) PreventDefault() {
	e.event.Call("preventDefault")
}

func (e Event) StopPropagation() {
	e.event.Call("stopPropagation")
}

func (e Event) Type() string {
	return e.event.Get("type").String()
}

func parseEvent(event js.Value) Event {
	return Event{event: event}
}

// Target returns the element the event was dispatched to.
func (e Event) Target() js.Value {
	return e.event.Get("target")
}
