package main

import (
	"math"
	"testing"
)

func TestPrimaryPointer(t *testing.T) {
	type op struct {
		kind     string
		id       int
		expected bool
	}
	testCases := map[string]struct {
		ops    []op
		active bool
		id     int
	}{
		"SinglePointer": {
			ops:    []op{{"down", 1, true}, {"move", 1, true}, {"up", 1, true}},
			active: false,
			id:     1,
		},
		"SecondTouchIgnored": {
			ops: []op{
				{"down", 1, true}, {"downSecondary", 2, false},
				{"move", 2, false}, {"up", 2, false}, {"move", 1, true},
			},
			active: true,
			id:     1,
		},
		"MoveWithoutDown": {
			ops:    []op{{"move", 1, false}},
			active: false,
		},
		"UpWithoutDown": {
			ops:    []op{{"up", 3, true}, {"up", 3, true}},
			active: false,
			id:     0,
		},
		"Restart": {
			ops:    []op{{"down", 1, true}, {"up", 1, true}, {"down", 2, true}, {"move", 2, true}},
			active: true,
			id:     2,
		},
		"RepeatedDown": {
			ops:    []op{{"down", 1, true}, {"down", 1, true}, {"move", 1, true}},
			active: true,
			id:     1,
		},
		"RepeatedDownSecondary": {
			ops:    []op{{"down", 1, true}, {"downSecondary", 1, true}},
			active: true,
			id:     1,
		},
		"NewPrimaryTakesOver": {
			ops:    []op{{"down", 1, true}, {"down", 7, true}, {"move", 1, false}, {"move", 7, true}},
			active: true,
			id:     7,
		},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			var p primaryPointer
			for i, o := range tt.ops {
				var ret bool
				switch o.kind {
				case "down":
					ret = p.down(o.id, true)
				case "downSecondary":
					ret = p.down(o.id, false)
				case "move":
					ret = p.move(o.id)
				case "up":
					ret = p.up(o.id)
				}
				if ret != o.expected {
					t.Errorf("#%d %s(%d): expected: %v, got: %v", i, o.kind, o.id, o.expected, ret)
				}
			}
			if p.active != tt.active {
				t.Errorf("Expected active: %v, got: %v", tt.active, p.active)
			}
			if p.active && p.id != tt.id {
				t.Errorf("Expected owner: %d, got: %d", tt.id, p.id)
			}
		})
	}
}

func TestPrimaryPointer_Cancel(t *testing.T) {
	var p primaryPointer
	p.down(5, true)
	p.cancel()
	if p.move(5) {
		t.Error("Canceled pointer must not steer")
	}
	if !p.down(6, false) {
		t.Error("New drag must be accepted after cancel")
	}
}

func TestDragInput_LostUp(t *testing.T) {
	testCases := map[string]struct {
		secondID int
	}{
		"SamePointer":     {secondID: 1},
		"NewMousePointer": {secondID: 2},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			vi := newTestView()
			d := &dragInput{view: vi}
			yaw0 := vi.target.yaw

			d.down(1, true, 100, 100)
			d.move(1, 110, 100)
			// The up of the first drag never arrives.
			if !d.down(tt.secondID, true, 900, 100) {
				t.Fatal("Down after a lost up must restart the drag")
			}
			d.move(tt.secondID, 901, 100)

			expected := yaw0 + 11*vi.cfg.YawSensitivity
			if math.Abs(vi.target.yaw-expected) > 1e-9 {
				t.Errorf("Expected: %f, got: %f", expected, vi.target.yaw)
			}
		})
	}
}

func TestDragInput(t *testing.T) {
	vi := newTestView()
	d := &dragInput{view: vi}
	yaw0 := vi.target.yaw

	d.move(1, 50, 50)
	if vi.target.yaw != yaw0 {
		t.Errorf("Move without down must not steer, got yaw: %f", vi.target.yaw)
	}
	if !d.down(1, true, 0, 0) {
		t.Fatal("Expected drag to start")
	}
	if d.down(2, false, 0, 0) {
		t.Error("Second touch must not restart the drag")
	}
	d.move(2, 300, 0)
	if vi.target.yaw != yaw0 {
		t.Errorf("Second touch must not steer, got yaw: %f", vi.target.yaw)
	}
	if d.up(2) {
		t.Error("Up of the second touch must not end the drag")
	}
	if !vi.dragging() {
		t.Error("Drag must still be active")
	}
	d.cancel()
	if vi.dragging() {
		t.Error("Cancel must end the drag")
	}
}
