package main

import (
	"errors"
	"fmt"
	"syscall/js"
)

var errNotFound = errors.New("not found")

func fetchGet(path string) ([]byte, error) {
	var b []byte
	var errored bool
	chErr := make(chan error)
	js.Global().Call("fetch", path, map[string]interface{}{
		"credentials": "same-origin",
		"cache":       "no-cache",
	}).Call("then",
		js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			res := args[0]
			if !res.Get("ok").Bool() {
				errored = true
				if res.Get("status").Int() == 404 {
					chErr <- fmt.Errorf("%w: %s", errNotFound, path)
					return nil
				}
				chErr <- fmt.Errorf("failed to fetch %s: %s", path, res.Get("statusText").String())
				return nil
			}
			return res.Call("arrayBuffer")
		}),
		js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			errored = true
			chErr <- fmt.Errorf("failed to fetch %s", path)
			return nil
		}),
	).Call("then",
		js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			if errored {
				return nil
			}
			array := js.Global().Get("Uint8Array").New(args[0])
			n := array.Get("byteLength").Int()
			b = make([]byte, n)
			js.CopyBytesToGo(b, array)
			chErr <- nil
			return nil
		}),
		js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			chErr <- errors.New("failed to handle received data")
			return nil
		}),
	)

	if err := <-chErr; err != nil {
		return nil, err
	}
	return b, nil
}

// loadConfig reads the site config next to the page. A missing file means
// defaults.
func loadConfig(path string) (siteConfig, error) {
	b, err := fetchGet(path)
	if err != nil {
		if errors.Is(err, errNotFound) {
			return defaultConfig(), nil
		}
		return defaultConfig(), err
	}
	return parseConfig(b)
}
