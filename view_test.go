package main

import (
	"math"
	"testing"
)

func newTestView() *view {
	return newView(defaultConfig().Controller, 1)
}

func TestView_DragScenario(t *testing.T) {
	v := newTestView()
	cfg := v.cfg
	pitch0, yaw0 := v.target.pitch, v.target.yaw

	v.pointerDown(100, 100)
	if !v.dragging() {
		t.Fatal("Drag must be active after pointer down")
	}
	v.pointerMove(150, 130)

	expectedYaw := yaw0 + 50*cfg.YawSensitivity
	if math.Abs(v.target.yaw-expectedYaw) > 1e-12 {
		t.Errorf("Expected yaw: %f, got: %f", expectedYaw, v.target.yaw)
	}
	expectedPitch := math.Min(cfg.MaxPitch, pitch0+30*cfg.PitchSensitivity)
	if math.Abs(v.target.pitch-expectedPitch) > 1e-12 {
		t.Errorf("Expected pitch: %f, got: %f", expectedPitch, v.target.pitch)
	}

	v.pointerUp()
	if v.dragging() {
		t.Error("Drag must be inactive after pointer up")
	}
}

func TestView_MoveWithoutDrag(t *testing.T) {
	v := newTestView()
	target0 := v.target

	v.pointerMove(10, 10)
	v.pointerMove(500, -300)
	if v.target != target0 {
		t.Errorf("Target must not change without drag, expected: %v, got: %v", target0, v.target)
	}

	v.pointerDown(0, 0)
	v.pointerUp()
	v.pointerMove(200, 200)
	if v.target != target0 {
		t.Errorf("Target must not change after pointer up, expected: %v, got: %v", target0, v.target)
	}
}

func TestView_PointerUpIdempotent(t *testing.T) {
	v := newTestView()
	v.pointerUp()
	v.pointerUp()
	if v.dragging() {
		t.Error("Drag must stay inactive")
	}
	v.pointerDown(1, 2)
	v.pointerUp()
	v.pointerUp()
	if v.dragging() {
		t.Error("Drag must stay inactive")
	}
}

func TestView_YawDirection(t *testing.T) {
	testCases := map[string]struct {
		dx       float64
		increase bool
	}{
		"Right":     {dx: 1, increase: true},
		"FarRight":  {dx: 800, increase: true},
		"Left":      {dx: -1, increase: false},
		"FarLeft":   {dx: -800, increase: false},
		"Subpixel":  {dx: 0.25, increase: true},
		"SubpixelL": {dx: -0.25, increase: false},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			v := newTestView()
			v.pointerDown(300, 300)
			yaw0 := v.target.yaw
			v.pointerMove(300+tt.dx, 300)
			if tt.increase && !(v.target.yaw > yaw0) {
				t.Errorf("Yaw must increase, before: %f, after: %f", yaw0, v.target.yaw)
			}
			if !tt.increase && !(v.target.yaw < yaw0) {
				t.Errorf("Yaw must decrease, before: %f, after: %f", yaw0, v.target.yaw)
			}
		})
	}
}

func TestView_PitchClamped(t *testing.T) {
	v := newTestView()
	cfg := v.cfg

	moves := []float64{5000, -12000, 3, 40000, -7, -90000, 250, 1e6, -1e6}
	x, y := 0.0, 0.0
	v.pointerDown(x, y)
	for i, dy := range moves {
		y += dy
		x += float64(i)
		v.pointerMove(x, y)
		for j := 0; j < 5; j++ {
			v.update(float64(i*5 + j))
			if v.cur.pitch < cfg.MinPitch || cfg.MaxPitch < v.cur.pitch {
				t.Fatalf("Current pitch out of range: %f", v.cur.pitch)
			}
		}
		if v.target.pitch < cfg.MinPitch || cfg.MaxPitch < v.target.pitch {
			t.Fatalf("Target pitch out of range: %f", v.target.pitch)
		}
	}
	v.pointerUp()

	v.setTarget(10, 0)
	if v.target.pitch != cfg.MaxPitch {
		t.Errorf("Expected: %f, got: %f", cfg.MaxPitch, v.target.pitch)
	}
	v.setTarget(-10, 0)
	if v.target.pitch != cfg.MinPitch {
		t.Errorf("Expected: %f, got: %f", cfg.MinPitch, v.target.pitch)
	}
}

func TestView_SmoothingConverges(t *testing.T) {
	v := newTestView()
	v.setTarget(0.4, 2.0)
	d0Yaw := v.target.yaw - v.cur.yaw
	d0Pitch := v.target.pitch - v.cur.pitch

	prevYaw, prevPitch := math.Abs(d0Yaw), math.Abs(d0Pitch)
	for n := 1; n <= 60; n++ {
		v.update(0)
		dYaw := v.target.yaw - v.cur.yaw
		dPitch := v.target.pitch - v.cur.pitch

		k := math.Pow(1-v.cfg.Damping, float64(n))
		if math.Abs(dYaw-d0Yaw*k) > 1e-9 {
			t.Fatalf("Step %d: expected yaw distance: %g, got: %g", n, d0Yaw*k, dYaw)
		}
		if math.Abs(dPitch-d0Pitch*k) > 1e-9 {
			t.Fatalf("Step %d: expected pitch distance: %g, got: %g", n, d0Pitch*k, dPitch)
		}
		if math.Abs(dYaw) > prevYaw || math.Abs(dPitch) > prevPitch {
			t.Fatalf("Step %d: distance must not grow", n)
		}
		prevYaw, prevPitch = math.Abs(dYaw), math.Abs(dPitch)
	}
}

func TestView_BobPeriodic(t *testing.T) {
	testCases := map[string]struct {
		frequency float64
	}{
		"Default": {frequency: 1},
		"Fast":    {frequency: 3.7},
		"Slow":    {frequency: 0.2},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			cfg := defaultConfig().Controller
			cfg.BobFrequency = tt.frequency
			v := newView(cfg, 1)
			period := 2 * math.Pi / tt.frequency
			for _, ts := range []float64{0, 0.3, 1.7, 12.5, 1000.25} {
				a, b := v.bob(ts), v.bob(ts+period)
				if math.Abs(a-b) > 1e-9 {
					t.Errorf("t=%f: expected: %f, got: %f", ts, a, b)
				}
				if math.Abs(a-cfg.BaseY) > cfg.BobAmplitude+1e-12 {
					t.Errorf("t=%f: offset %f exceeds amplitude", ts, a-cfg.BaseY)
				}
			}
		})
	}
}

func TestView_BobIndependentOfDrag(t *testing.T) {
	v := newTestView()
	v.update(1.2)
	idle := v.rootY

	v.pointerDown(0, 0)
	v.pointerMove(40, 40)
	v.update(1.2)
	if v.rootY != idle {
		t.Errorf("Expected: %f, got: %f", idle, v.rootY)
	}
}

func TestView_RootMatrix(t *testing.T) {
	cfg := defaultConfig().Controller
	cfg.InitialPitch = 0
	cfg.InitialYaw = 0
	cfg.BobAmplitude = 0
	v := newView(cfg, 2)
	v.update(0)

	m := v.rootMatrix()
	expected := [16]float32{
		2, 0, 0, 0,
		0, 2, 0, 0,
		0, 0, 2, 0,
		0, float32(cfg.BaseY), 0, 1,
	}
	for i := range expected {
		if math.Abs(float64(m[i]-expected[i])) > 1e-6 {
			t.Fatalf("Expected: %v, got: %v", expected, m)
		}
	}
}

func TestView_Reset(t *testing.T) {
	v := newTestView()
	v.pointerDown(0, 0)
	v.pointerMove(100, 100)
	v.update(3)
	v.reset()

	if v.dragging() {
		t.Error("Drag must be inactive after reset")
	}
	if v.cur != v.target {
		t.Errorf("Current must equal target after reset, expected: %v, got: %v", v.target, v.cur)
	}
	if v.target.yaw != v.cfg.InitialYaw {
		t.Errorf("Expected: %f, got: %f", v.cfg.InitialYaw, v.target.yaw)
	}
}
