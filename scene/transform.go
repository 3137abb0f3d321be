package scene

import (
	"math"

	"github.com/seqsense/pcgol/mat"
)

// RotateX returns a right-handed rotation about the X axis.
func RotateX(ang float32) mat.Mat4 {
	s, c := sincos(ang)
	return mat.Mat4{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

// RotateY returns a right-handed rotation about the Y axis.
func RotateY(ang float32) mat.Mat4 {
	s, c := sincos(ang)
	return mat.Mat4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotateZ returns a right-handed rotation about the Z axis.
func RotateZ(ang float32) mat.Mat4 {
	s, c := sincos(ang)
	return mat.Mat4{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func Scale(x, y, z float32) mat.Mat4 {
	return mat.Mat4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// Euler composes X, Y then Z rotations in intrinsic XYZ order.
func Euler(r mat.Vec3) mat.Mat4 {
	return RotateX(r[0]).MulAffine(RotateY(r[1])).MulAffine(RotateZ(r[2]))
}

// Compose builds translate * rotate * scale.
func Compose(pos, rot, scale mat.Vec3) mat.Mat4 {
	return mat.Translate(pos[0], pos[1], pos[2]).
		MulAffine(Euler(rot)).
		MulAffine(Scale(scale[0], scale[1], scale[2]))
}

func sincos(ang float32) (float32, float32) {
	s, c := math.Sincos(float64(ang))
	return float32(s), float32(c)
}
