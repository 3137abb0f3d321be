package main

import (
	webgl "github.com/seqsense/webgl-go"
)

func showDebugInfo(gl *webgl.WebGL, logPrint func(interface{})) {
	defer func() {
		if r := recover(); r != nil {
			println("Failed to get debug info")
		}
	}()

	if ri, ok := gl.GetExtension("WEBGL_debug_renderer_info"); ok {
		println("GPU:",
			gl.GetParameter(ri.Get("UNMASKED_VENDOR_WEBGL").Int()).String(),
			gl.GetParameter(ri.Get("UNMASKED_RENDERER_WEBGL").Int()).String(),
		)
	} else {
		println("GPU info: hidden by the browser privacy setting")
	}
	n := gl.GetParameter(gl.JS().Get("MAX_FRAGMENT_UNIFORM_VECTORS").Int()).Int()
	println("Max fragment uniform vectors:", n)
	if n < 224 {
		logPrint("GPU has few fragment uniforms, lighting may fail")
	}
}
