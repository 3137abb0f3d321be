package dom

import (
	"syscall/js"
)

type MouseButton int

const (
	MouseButtonNull MouseButton = -1
)

type PointerEvent struct {
	Event
	ClientX, ClientY float64
	Button           MouseButton
	PointerId        int
	PointerType      string
	IsPrimary        bool
}

func parsePointerEvent(event js.Value) PointerEvent {
	b := MouseButtonNull
	button := event.Get("button")
	if !button.IsNull() && !button.IsUndefined() {
		b = MouseButton(button.Int())
	}
	return PointerEvent{
		Event:       parseEvent(event),
		ClientX:     event.Get("clientX").Float(),
		ClientY:     event.Get("clientY").Float(),
		Button:      b,
		PointerId:   event.Get("pointerId").Int(),
		PointerType: event.Get("pointerType").String(),
		IsPrimary:   event.Get("isPrimary").Bool(),
	}
}
