package main

import (
	"fmt"
	"syscall/js"

	"github.com/crystalbridge/builderweb/dom"
	"github.com/crystalbridge/builderweb/scene"
	webgl "github.com/seqsense/webgl-go"
)

const configPath = "builderweb.yaml"

func main() {
	doc := js.Global().Get("document")
	canvas := doc.Call("getElementById", "houseCanvas")

	logDiv := doc.Call("getElementById", "log")
	logPrint := func(msg interface{}) {
		println("builderweb:", fmt.Sprint(msg))
		if logDiv.IsNull() {
			return
		}
		html := logDiv.Get("innerHTML").String()
		logDiv.Set("innerHTML", fmt.Sprintf("%s%v<br/>", html, msg))
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		logPrint(err)
	}

	gl, err := webgl.New(canvas)
	if err != nil {
		logPrint(err)
		return
	}
	showDebugInfo(gl, logPrint)

	house := scene.NewHouse()
	pp, err := scene.Tessellate(house)
	if err != nil {
		logPrint(err)
		return
	}
	r, err := newRenderer(gl, pp, cfg.Scene.Scale)
	if err != nil {
		logPrint(err)
		return
	}
	println("Scene vertices:", pp.Points)

	root := doc.Get("documentElement")
	theme := scene.NewTheme(house, cfg.Theme.Dark || root.Get("classList").Call("contains", "dark").Bool())
	vi := newView(cfg.Controller, cfg.Scene.Scale)
	setDark := func(dark bool) {
		theme.Set(dark)
		root.Get("classList").Call("toggle", "dark", dark)
	}
	con := &console{view: vi, theme: theme, setDark: setDark}
	panels := &panelState{}
	form := newContactForm()
	drag := &dragInput{view: vi}

	cv := dom.NewCanvas(canvas)
	chPointer, listeners := bindPointer(cv)

	chForm, formListeners := bindContactForm(doc)
	listeners.Add(formListeners...)

	chConsole, conListener := exportConsole("builderConsole")
	listeners.Add(conListener)

	chDark := make(chan bool)
	listeners.Add(dom.Export("setDarkMode", func(args []js.Value) interface{} {
		if len(args) < 1 {
			return errorToJS(errArgumentNumber)
		}
		chDark <- args[0].Truthy()
		return nil
	}))
	chPanel := make(chan string)
	listeners.Add(dom.Export("togglePanel", func(args []js.Value) interface{} {
		if len(args) < 1 {
			return errorToJS(errArgumentNumber)
		}
		chPanel <- args[0].String()
		return nil
	}))
	listeners.Add(dom.Export("closePanel", func(args []js.Value) interface{} {
		chPanel <- panelNone
		return nil
	}))

	chContextLost := make(chan struct{})
	listeners.Add(cv.OnWebGLContextLost(func(e dom.Event) {
		e.PreventDefault()
		chContextLost <- struct{}{}
	}))
	chPageHide := make(chan struct{})
	listeners.Add(dom.Window().OnPageHide(func(e dom.Event) {
		chPageHide <- struct{}{}
	}))

	chFrame := make(chan float64)
	frame := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		chFrame <- args[0].Float()
		return nil
	})
	defer frame.Release()
	raf := js.Global().Call("requestAnimationFrame", frame)

	var width, height int
	var lost bool
	showPanel(doc, panels)

	for {
		select {
		case ts := <-chFrame:
			if lost {
				continue
			}
			dpr := dom.DevicePixelRatio()
			newWidth := int(float64(cv.ClientWidth()) * dpr)
			newHeight := int(float64(cv.ClientHeight()) * dpr)
			if newWidth != width || newHeight != height {
				width, height = newWidth, newHeight
				if width > 0 && height > 0 {
					cv.SetWidth(width)
					cv.SetHeight(height)
					r.setCamera(width, height, cfg.Camera)
				}
			}

			vi.update(ts / 1000)
			r.applyTheme(theme)
			if width > 0 && height > 0 {
				r.draw(vi.rootMatrix())
			}
			raf = js.Global().Call("requestAnimationFrame", frame)
		case e := <-chPointer.down:
			if drag.down(e.PointerId, e.IsPrimary, e.ClientX, e.ClientY) {
				setCursor(cv, cursorGrabbing)
			}
		case e := <-chPointer.move:
			drag.move(e.PointerId, e.ClientX, e.ClientY)
		case e := <-chPointer.up:
			if drag.up(e.PointerId) {
				setCursor(cv, cursorGrab)
			}
		case <-chPointer.cancel:
			drag.cancel()
			setCursor(cv, cursorGrab)
		case dark := <-chDark:
			setDark(dark)
		case id := <-chPanel:
			if id == panelNone {
				panels.close()
			} else {
				panels.toggle(id)
			}
			showPanel(doc, panels)
		case in := <-chForm.input:
			form.set(in.name, in.value)
		case <-chForm.submit:
			println("Contact form:", fmt.Sprint(form.submit()))
			notifySubmitted()
		case req := <-chConsole:
			req.respond(con.Run(req.line))
		case <-chContextLost:
			logPrint(errContextLostEvent)
			lost = true
			js.Global().Call("cancelAnimationFrame", raf)
		case <-chPageHide:
			js.Global().Call("cancelAnimationFrame", raf)
			listeners.RemoveAll()
			println("Page hidden, listeners released")
			return
		}
	}
}
