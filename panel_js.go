package main

import (
	"syscall/js"
)

// showPanel reflects p on the info panels and their menu buttons.
func showPanel(doc js.Value, p *panelState) {
	for _, id := range panelIDs {
		open := p.isOpen(id)
		if el := doc.Call("getElementById", "panel-"+id); !el.IsNull() {
			el.Set("hidden", !open)
		}
		if btn := doc.Call("getElementById", "menu-"+id); !btn.IsNull() {
			btn.Get("classList").Call("toggle", "active", open)
		}
	}
}
