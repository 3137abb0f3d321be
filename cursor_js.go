package main

import (
	"github.com/crystalbridge/builderweb/dom"
)

type cursor string

const (
	cursorGrab     cursor = "grab"
	cursorGrabbing cursor = "grabbing"
)

func setCursor(c dom.Canvas, cur cursor) {
	c.SetCursor(string(cur))
}
