package main

import (
	"math"

	"github.com/crystalbridge/builderweb/scene"
	"github.com/seqsense/pcgol/mat"
)

type orientation struct {
	pitch, yaw float64
}

type dragSession struct {
	active       bool
	lastX, lastY float64
}

// view owns the orientation of the scene root and the drag session which
// steers it.
type view struct {
	cfg controllerConfig

	cur    orientation
	target orientation
	drag   dragSession

	rootY float64
	scale float32
}

func newView(cfg controllerConfig, scale float32) *view {
	v := &view{
		cfg:   cfg,
		scale: scale,
	}
	v.reset()
	return v
}

func (v *view) reset() {
	v.target = orientation{
		pitch: v.clampPitch(v.cfg.InitialPitch),
		yaw:   v.cfg.InitialYaw,
	}
	v.cur = v.target
	v.drag = dragSession{}
	v.rootY = v.cfg.BaseY
}

func (v *view) clampPitch(p float64) float64 {
	if p < v.cfg.MinPitch {
		return v.cfg.MinPitch
	} else if p > v.cfg.MaxPitch {
		return v.cfg.MaxPitch
	}
	return p
}

func (v *view) dragging() bool {
	return v.drag.active
}

func (v *view) pointerDown(x, y float64) {
	v.drag = dragSession{
		active: true,
		lastX:  x,
		lastY:  y,
	}
}

func (v *view) pointerMove(x, y float64) {
	if !v.drag.active {
		return
	}
	dx := x - v.drag.lastX
	dy := y - v.drag.lastY
	v.target.yaw += dx * v.cfg.YawSensitivity
	v.target.pitch = v.clampPitch(v.target.pitch + dy*v.cfg.PitchSensitivity)
	v.drag.lastX = x
	v.drag.lastY = y
}

func (v *view) pointerUp() {
	v.drag.active = false
}

func (v *view) setTarget(pitch, yaw float64) {
	v.target.pitch = v.clampPitch(pitch)
	v.target.yaw = yaw
}

func (v *view) setDamping(d float64) bool {
	if d <= 0 || d >= 1 {
		return false
	}
	v.cfg.Damping = d
	return true
}

// update advances one frame. t is the frame time in seconds.
func (v *view) update(t float64) {
	v.cur.yaw += (v.target.yaw - v.cur.yaw) * v.cfg.Damping
	v.cur.pitch += (v.target.pitch - v.cur.pitch) * v.cfg.Damping
	// Both ends are inside the range, but rounding must not leak out of it.
	v.cur.pitch = v.clampPitch(v.cur.pitch)

	v.rootY = v.bob(t)
}

func (v *view) bob(t float64) float64 {
	return v.cfg.BaseY + math.Sin(t*v.cfg.BobFrequency)*v.cfg.BobAmplitude
}

// rootMatrix returns the scene root transform for the current frame.
func (v *view) rootMatrix() mat.Mat4 {
	return mat.Translate(0, float32(v.rootY), 0).
		MulAffine(scene.RotateX(float32(v.cur.pitch))).
		MulAffine(scene.RotateY(float32(v.cur.yaw))).
		MulAffine(scene.Scale(v.scale, v.scale, v.scale))
}
