package scene

import (
	"github.com/seqsense/pcgol/mat"
)

type LightKind int

const (
	LightPoint LightKind = iota
	LightSpot
)

// Light is a fixture light. Position and Direction are relative to the
// owning node when attached to a Node, and relative to the scene root once
// returned from Lights.
type Light struct {
	Kind      LightKind
	Position  mat.Vec3
	Direction mat.Vec3
	Color     Color
	Intensity float32
	Distance  float32
	// Angle is the spot cone half angle in radians.
	Angle    float32
	Penumbra float32
}

// Lights collects the fixture lights under root. Fixtures are switched on
// only in the dark theme.
func Lights(root *Node, isDark bool) []Light {
	if !isDark {
		return nil
	}
	var lights []Light
	root.Walk(func(n *Node, m mat.Mat4) {
		if n.Light == nil {
			return
		}
		l := *n.Light
		l.Position = m.Transform(n.Light.Position)
		if l.Kind == LightSpot {
			o := m.Transform(mat.Vec3{})
			l.Direction = m.Transform(n.Light.Direction).Sub(o).Normalized()
		}
		lights = append(lights, l)
	})
	return lights
}

// Lighting is the global (non-fixture) lighting rig.
type Lighting struct {
	Ambient       float32
	Key           float32
	KeyDirection  mat.Vec3
	Fill          float32
	FillDirection mat.Vec3
	Hemisphere    float32
	Sky, Ground   Color
}

func GlobalLighting(isDark bool) Lighting {
	l := Lighting{
		KeyDirection:  mat.Vec3{8, 12, 8}.Normalized(),
		FillDirection: mat.Vec3{-5, 5, -5}.Normalized(),
		Sky:           rgb(0xFFFFFF),
		Ground:        rgb(0x8D7C5C),
	}
	if isDark {
		l.Ambient, l.Key, l.Fill, l.Hemisphere = 0.3, 0.5, 0.2, 0.3
	} else {
		l.Ambient, l.Key, l.Fill, l.Hemisphere = 0.6, 1.5, 0.3, 0.4
	}
	return l
}
