package scene

import (
	"errors"
	"math"

	"github.com/seqsense/pcgol/mat"
	"github.com/seqsense/pcgol/pc"
)

const (
	defaultCylinderSegments = 16
	defaultSphereSegments   = 12
)

var errEmptyScene = errors.New("scene has no meshes")

// VertexHeader is the layout of the tessellated vertex buffer: one point per
// triangle corner with the position and the material index.
func VertexHeader(n int) pc.PointCloudHeader {
	return pc.PointCloudHeader{
		Version: 0.7,
		Fields:  []string{"x", "y", "z", "material"},
		Size:    []int{4, 4, 4, 4},
		Type:    []string{"F", "F", "F", "U"},
		Count:   []int{1, 1, 1, 1},
		Width:   n,
		Height:  1,
	}
}

type triangle struct {
	v   [3]mat.Vec3
	mat MaterialID
}

// Tessellate flattens the tree under root into triangles in root space.
func Tessellate(root *Node) (*pc.PointCloud, error) {
	var tris []triangle
	root.Walk(func(n *Node, m mat.Mat4) {
		if n.Mesh == nil {
			return
		}
		for _, t := range meshTriangles(n.Mesh) {
			tris = append(tris, triangle{
				v:   [3]mat.Vec3{m.Transform(t[0]), m.Transform(t[1]), m.Transform(t[2])},
				mat: n.Mesh.Material,
			})
		}
	})
	if len(tris) == 0 {
		return nil, errEmptyScene
	}

	n := len(tris) * 3
	pp := &pc.PointCloud{
		PointCloudHeader: VertexHeader(n),
		Points:           n,
	}
	pp.Data = make([]byte, n*pp.Stride())

	it, err := pp.Vec3Iterator()
	if err != nil {
		return nil, err
	}
	itM, err := pp.Uint32Iterator("material")
	if err != nil {
		return nil, err
	}
	for _, t := range tris {
		for _, v := range t.v {
			it.SetVec3(v)
			itM.SetUint32(uint32(t.mat))
			it.Incr()
			itM.Incr()
		}
	}
	return pp, nil
}

// Bounds returns the axis aligned bounding box of a tessellated scene.
func Bounds(pp *pc.PointCloud) (mat.Vec3, mat.Vec3, error) {
	it, err := pp.Vec3Iterator()
	if err != nil {
		return mat.Vec3{}, mat.Vec3{}, err
	}
	return pc.MinMaxVec3(it)
}

func meshTriangles(m *Mesh) [][3]mat.Vec3 {
	switch m.Shape {
	case ShapeBox:
		return boxTriangles(m.Args[0], m.Args[1], m.Args[2])
	case ShapeCylinder:
		seg := m.Segments
		if seg < 3 {
			seg = defaultCylinderSegments
		}
		return cylinderTriangles(m.Args[0], m.Args[1], m.Args[2], seg)
	case ShapeSphere:
		seg := m.Segments
		if seg < 3 {
			seg = defaultSphereSegments
		}
		return sphereTriangles(m.Args[0], seg)
	}
	return nil
}

func quad(a, b, c, d mat.Vec3) [][3]mat.Vec3 {
	return [][3]mat.Vec3{{a, b, c}, {a, c, d}}
}

func boxTriangles(w, h, d float32) [][3]mat.Vec3 {
	x, y, z := w/2, h/2, d/2
	p := [8]mat.Vec3{
		{-x, -y, -z}, {x, -y, -z}, {x, y, -z}, {-x, y, -z},
		{-x, -y, z}, {x, -y, z}, {x, y, z}, {-x, y, z},
	}
	tris := make([][3]mat.Vec3, 0, 12)
	// Counter-clockwise seen from outside.
	tris = append(tris, quad(p[4], p[5], p[6], p[7])...) // +z
	tris = append(tris, quad(p[1], p[0], p[3], p[2])...) // -z
	tris = append(tris, quad(p[5], p[1], p[2], p[6])...) // +x
	tris = append(tris, quad(p[0], p[4], p[7], p[3])...) // -x
	tris = append(tris, quad(p[7], p[6], p[2], p[3])...) // +y
	tris = append(tris, quad(p[0], p[1], p[5], p[4])...) // -y
	return tris
}

func ring(r, y float32, seg int) []mat.Vec3 {
	pts := make([]mat.Vec3, seg)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(seg)
		s, c := math.Sincos(a)
		pts[i] = mat.Vec3{r * float32(s), y, r * float32(c)}
	}
	return pts
}

func cylinderTriangles(rTop, rBottom, h float32, seg int) [][3]mat.Vec3 {
	top := ring(rTop, h/2, seg)
	bottom := ring(rBottom, -h/2, seg)
	ct := mat.Vec3{0, h / 2, 0}
	cb := mat.Vec3{0, -h / 2, 0}

	tris := make([][3]mat.Vec3, 0, seg*4)
	for i := 0; i < seg; i++ {
		j := (i + 1) % seg
		tris = append(tris, quad(bottom[i], bottom[j], top[j], top[i])...)
		tris = append(tris,
			[3]mat.Vec3{ct, top[i], top[j]},
			[3]mat.Vec3{cb, bottom[j], bottom[i]},
		)
	}
	return tris
}

// sphereTriangles builds a UV sphere with seg slices and seg/2 stacks.
func sphereTriangles(r float32, seg int) [][3]mat.Vec3 {
	stacks := seg / 2
	if stacks < 2 {
		stacks = 2
	}
	rings := make([][]mat.Vec3, stacks+1)
	for k := range rings {
		phi := math.Pi * float64(k) / float64(stacks)
		s, c := math.Sincos(phi)
		rings[k] = ring(r*float32(s), r*float32(c), seg)
	}

	tris := make([][3]mat.Vec3, 0, seg*stacks*2)
	for k := 0; k < stacks; k++ {
		for i := 0; i < seg; i++ {
			j := (i + 1) % seg
			a, b := rings[k][i], rings[k][j]
			c, d := rings[k+1][j], rings[k+1][i]
			switch k {
			case 0:
				tris = append(tris, [3]mat.Vec3{a, d, c})
			case stacks - 1:
				tris = append(tris, [3]mat.Vec3{a, d, b})
			default:
				tris = append(tris, [3]mat.Vec3{a, d, c}, [3]mat.Vec3{a, c, b})
			}
		}
	}
	return tris
}
