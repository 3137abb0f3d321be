package main

import (
	"github.com/crystalbridge/builderweb/dom"
)

type pointerChannels struct {
	down   chan dom.PointerEvent
	move   chan dom.PointerEvent
	up     chan dom.PointerEvent
	cancel chan dom.PointerEvent
}

// bindPointer starts drags on the canvas and follows them on the window so
// that releasing outside the canvas still ends the drag.
func bindPointer(canvas dom.Canvas) (*pointerChannels, dom.Listeners) {
	ch := &pointerChannels{
		down:   make(chan dom.PointerEvent),
		move:   make(chan dom.PointerEvent),
		up:     make(chan dom.PointerEvent),
		cancel: make(chan dom.PointerEvent),
	}
	var ls dom.Listeners
	ls.Add(canvas.OnPointerDown(func(e dom.PointerEvent) {
		e.PreventDefault()
		e.StopPropagation()
		ch.down <- e
	}))
	win := dom.Window()
	ls.Add(win.OnPointerMove(func(e dom.PointerEvent) {
		ch.move <- e
	}))
	ls.Add(win.OnPointerUp(func(e dom.PointerEvent) {
		ch.up <- e
	}))
	ls.Add(win.OnPointerCancel(func(e dom.PointerEvent) {
		ch.cancel <- e
	}))
	prepareDragSurface(canvas)
	return ch, ls
}

func prepareDragSurface(canvas dom.Canvas) {
	canvas.SetTouchAction("none")
	setCursor(canvas, cursorGrab)
}
