package main

import (
	"syscall/js"

	"github.com/crystalbridge/builderweb/dom"
)

type consoleRequest struct {
	line            string
	resolve, reject js.Value
}

// exportConsole exposes the debug console as a global returning a Promise.
func exportConsole(name string) (chan consoleRequest, *dom.Listener) {
	ch := make(chan consoleRequest)
	l := dom.Export(name, func(args []js.Value) interface{} {
		var line string
		if len(args) > 0 {
			line = args[0].String()
		}
		exec := js.FuncOf(func(this js.Value, pargs []js.Value) interface{} {
			req := consoleRequest{line: line, resolve: pargs[0], reject: pargs[1]}
			go func() { ch <- req }()
			return nil
		})
		defer exec.Release()
		return js.Global().Get("Promise").New(exec)
	})
	return ch, l
}

func (r consoleRequest) respond(res string, err error) {
	if err != nil {
		r.reject.Invoke(errorToJS(err))
		return
	}
	r.resolve.Invoke(res)
}

func errorToJS(err error) js.Value {
	return js.Global().Get("Error").New(err.Error())
}
