package dom

import (
	"syscall/js"
)

// Listener is a registered callback, either an event handler or a function
// exported on the global object.
type Listener struct {
	detach  func()
	fn      js.Func
	removed bool
}

// Remove detaches the callback and releases it. It is safe to call more
// than once.
func (l *Listener) Remove() {
	if l.removed {
		return
	}
	l.removed = true
	l.detach()
	l.fn.Release()
}

// Listeners is a group of callbacks removed together.
type Listeners []*Listener

func (ls *Listeners) Add(l ...*Listener) {
	*ls = append(*ls, l...)
}

func (ls *Listeners) RemoveAll() {
	for _, l := range *ls {
		l.Remove()
	}
	*ls = nil
}

func listen(target js.Value, name string, cb func(js.Value)) *Listener {
	fn := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		cb(args[0])
		return nil
	})
	target.Call("addEventListener", name, fn)
	return &Listener{
		detach: func() { target.Call("removeEventListener", name, fn) },
		fn:     fn,
	}
}

// Export sets a global function callable from page scripts.
func Export(name string, cb func(args []js.Value) interface{}) *Listener {
	fn := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		return cb(args)
	})
	js.Global().Set(name, fn)
	return &Listener{
		detach: func() { js.Global().Delete(name) },
		fn:     fn,
	}
}
