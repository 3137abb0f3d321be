package dom

import (
	"syscall/js"
)

type Canvas struct {
	Target
}

func NewCanvas(v js.Value) Canvas {
	return Canvas{Target: Target(v)}
}

func (c Canvas) ClientWidth() int {
	return c.JS().Get("clientWidth").Int()
}

func (c Canvas) ClientHeight() int {
	return c.JS().Get("clientHeight").Int()
}

func (c Canvas) SetWidth(width int) {
	c.JS().Set("width", width)
}

func (c Canvas) SetHeight(height int) {
	c.JS().Set("height", height)
}

func (c Canvas) SetCursor(cursor string) {
	c.JS().Get("style").Set("cursor", cursor)
}

// SetTouchAction controls which browser touch gestures (panning, zooming)
// run on the canvas. "none" keeps touch drags from being canceled by panning.
func (c Canvas) SetTouchAction(action string) {
	c.JS().Get("style").Set("touchAction", action)
}

// DevicePixelRatio is the ratio of physical to CSS pixels, at least 1.
func DevicePixelRatio() float64 {
	r := js.Global().Get("devicePixelRatio")
	if r.IsUndefined() || r.Float() < 1 {
		return 1
	}
	return r.Float()
}
