//go:build !js

package main

import (
	"flag"
	"fmt"
	"os"
)

// The site runs as js/wasm in the browser. Built for the host, it dumps the
// default config or the scene geometry for inspection.
func main() {
	scenePath := flag.String("scene", "", "write the scene vertices to this PCD file instead of printing the default config")
	flag.Parse()

	if *scenePath == "" {
		if err := dumpConfig(os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	f, err := os.Create(*scenePath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	n, err := dumpScene(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "%d points written to %s\n", n, *scenePath)
}
