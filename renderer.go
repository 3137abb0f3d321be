package main

import (
	"math"

	"github.com/crystalbridge/builderweb/scene"
	"github.com/seqsense/pcgol/mat"
)

const maxLights = 16

type lightUniform struct {
	position  mat.Vec3
	direction mat.Vec3
	color     mat.Vec3
	// distance, cos(outer), cos(inner)
	cone mat.Vec3
}

// themeUniforms is the shader input derived from a theme. Colors other than
// the per material base colors are linear.
type themeUniforms struct {
	color    [scene.NumMaterials]mat.Vec3
	emissive [scene.NumMaterials]mat.Vec3
	surface  [scene.NumMaterials]mat.Vec3

	ambient       mat.Vec3
	keyDirection  mat.Vec3
	keyColor      mat.Vec3
	fillDirection mat.Vec3
	fillColor     mat.Vec3
	sky, ground   mat.Vec3

	lights []lightUniform
}

func toLinear(c scene.Color) mat.Vec3 {
	var v mat.Vec3
	for i := range c {
		v[i] = float32(math.Pow(float64(c[i]), 2.2))
	}
	return v
}

// newThemeUniforms packs th. scale is the scene root scale, which applies
// to fixture light ranges.
func newThemeUniforms(th *scene.Theme, scale float32) themeUniforms {
	var u themeUniforms
	for i, m := range th.Materials() {
		u.color[i] = mat.Vec3(m.Color)
		u.emissive[i] = toLinear(m.Emissive).Mul(m.EmissiveIntensity)
		u.surface[i] = mat.Vec3{m.Metalness, m.Roughness, m.Opacity}
	}

	l := th.Lighting()
	white := mat.Vec3{1, 1, 1}
	u.ambient = white.Mul(l.Ambient)
	u.keyDirection = l.KeyDirection
	u.keyColor = white.Mul(l.Key)
	u.fillDirection = l.FillDirection
	u.fillColor = white.Mul(l.Fill)
	u.sky = toLinear(l.Sky).Mul(l.Hemisphere)
	u.ground = toLinear(l.Ground).Mul(l.Hemisphere)

	for _, fl := range th.Lights() {
		if len(u.lights) >= maxLights {
			break
		}
		lu := lightUniform{
			position: fl.Position,
			color:    toLinear(fl.Color).Mul(fl.Intensity),
		}
		switch fl.Kind {
		case scene.LightSpot:
			lu.direction = fl.Direction
			lu.cone = mat.Vec3{
				fl.Distance * scale,
				float32(math.Cos(float64(fl.Angle))),
				float32(math.Cos(float64(fl.Angle * (1 - fl.Penumbra)))),
			}
		default:
			lu.direction = mat.Vec3{0, -1, 0}
			lu.cone = mat.Vec3{fl.Distance * scale, -2, -1}
		}
		u.lights = append(u.lights, lu)
	}
	return u
}
