package dom

import (
	"syscall/js"
)

// Target is an EventTarget such as the window or an element.
type Target js.Value

func Window() Target {
	return Target(js.Global())
}

func (t Target) JS() js.Value {
	return js.Value(t)
}

func (t Target) OnPointerDown(cb func(PointerEvent)) *Listener {
	return t.onPointer("pointerdown", cb)
}

func (t Target) OnPointerMove(cb func(PointerEvent)) *Listener {
	return t.onPointer("pointermove", cb)
}

func (t Target) OnPointerUp(cb func(PointerEvent)) *Listener {
	return t.onPointer("pointerup", cb)
}

func (t Target) OnPointerCancel(cb func(PointerEvent)) *Listener {
	return t.onPointer("pointercancel", cb)
}

func (t Target) onPointer(name string, cb func(PointerEvent)) *Listener {
	return listen(js.Value(t), name, func(event js.Value) {
		cb(parsePointerEvent(event))
	})
}

func (t Target) OnPageHide(cb func(Event)) *Listener {
	return t.on("pagehide", cb)
}

func (t Target) OnInput(cb func(Event)) *Listener {
	return t.on("input", cb)
}

func (t Target) OnSubmit(cb func(Event)) *Listener {
	return t.on("submit", cb)
}

func (t Target) OnWebGLContextLost(cb func(Event)) *Listener {
	return t.on("webglcontextlost", cb)
}

func (t Target) on(name string, cb func(Event)) *Listener {
	return listen(js.Value(t), name, func(event js.Value) {
		cb(parseEvent(event))
	})
}
