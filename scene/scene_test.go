package scene

import (
	"math"
	"testing"

	"github.com/seqsense/pcgol/mat"
)

func vecNear(a, b mat.Vec3, tol float32) bool {
	for i := range a {
		if d := a[i] - b[i]; d > tol || d < -tol {
			return false
		}
	}
	return true
}

func TestRotate(t *testing.T) {
	testCases := map[string]struct {
		m        mat.Mat4
		in       mat.Vec3
		expected mat.Vec3
	}{
		"X": {m: RotateX(math.Pi / 2), in: mat.Vec3{0, 1, 0}, expected: mat.Vec3{0, 0, 1}},
		"Y": {m: RotateY(math.Pi / 2), in: mat.Vec3{0, 0, 1}, expected: mat.Vec3{1, 0, 0}},
		"Z": {m: RotateZ(math.Pi / 2), in: mat.Vec3{1, 0, 0}, expected: mat.Vec3{0, 1, 0}},
		"Compose": {
			m:        Compose(mat.Vec3{1, 2, 3}, mat.Vec3{0, math.Pi, 0}, mat.Vec3{2, 2, 2}),
			in:       mat.Vec3{1, 0, 0},
			expected: mat.Vec3{-1, 2, 3},
		},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			if out := tt.m.Transform(tt.in); !vecNear(out, tt.expected, 1e-5) {
				t.Errorf("Expected: %v, got: %v", tt.expected, out)
			}
		})
	}
}

func TestMeshTriangles(t *testing.T) {
	testCases := map[string]struct {
		mesh     Mesh
		expected int
	}{
		"Box":             {mesh: Mesh{Shape: ShapeBox, Args: [3]float32{1, 1, 1}}, expected: 12},
		"Cylinder8":       {mesh: Mesh{Shape: ShapeCylinder, Args: [3]float32{1, 1, 1}, Segments: 8}, expected: 32},
		"CylinderDefault": {mesh: Mesh{Shape: ShapeCylinder, Args: [3]float32{1, 1, 1}}, expected: 4 * defaultCylinderSegments},
		"Sphere12":        {mesh: Mesh{Shape: ShapeSphere, Args: [3]float32{1}, Segments: 12}, expected: 12 * 2 * 5},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			if n := len(meshTriangles(&tt.mesh)); n != tt.expected {
				t.Errorf("Expected: %d, got: %d", tt.expected, n)
			}
		})
	}
}

func TestSphereOnSurface(t *testing.T) {
	for _, tri := range sphereTriangles(2, 12) {
		for _, v := range tri {
			if d := v.Norm() - 2; d > 1e-5 || d < -1e-5 {
				t.Fatalf("Vertex %v is not on the sphere", v)
			}
		}
	}
}

func TestTessellate(t *testing.T) {
	root := group("root", mat.Vec3{0, 1, 0},
		box(mat.Vec3{1, 0, 0}, 2, 2, 2, MatGrass),
		group("g", mat.Vec3{0, 0, 5},
			box(mat.Vec3{}, 1, 1, 1, MatWindow),
		).scaled(2),
	)
	pp, err := Tessellate(root)
	if err != nil {
		t.Fatal(err)
	}
	if pp.Points != 2*12*3 {
		t.Fatalf("Expected %d points, got %d", 2*12*3, pp.Points)
	}

	itM, err := pp.Uint32Iterator("material")
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < pp.Points; i++ {
		expected := uint32(MatGrass)
		if i >= 12*3 {
			expected = uint32(MatWindow)
		}
		if m := itM.Uint32(); m != expected {
			t.Fatalf("Point %d: expected material %d, got %d", i, expected, m)
		}
		itM.Incr()
	}

	min, max, err := Bounds(pp)
	if err != nil {
		t.Fatal(err)
	}
	if expected := (mat.Vec3{-1, 0, -1}); !vecNear(min, expected, 1e-5) {
		t.Errorf("Expected min: %v, got: %v", expected, min)
	}
	if expected := (mat.Vec3{2, 2, 6}); !vecNear(max, expected, 1e-5) {
		t.Errorf("Expected max: %v, got: %v", expected, max)
	}
}

func TestTessellate_Empty(t *testing.T) {
	if _, err := Tessellate(group("empty", mat.Vec3{})); err != errEmptyScene {
		t.Errorf("Expected: %v, got: %v", errEmptyScene, err)
	}
}

func TestNewHouse(t *testing.T) {
	h := NewHouse()
	for _, name := range []string{
		"ground", "streetLamp", "gardenLight", "swimmingPool", "garage",
		"car", "mainBuilding", "roof", "tree", "bush", "water", "door",
	} {
		if h.Find(name) == nil {
			t.Errorf("Node %s not found", name)
		}
	}

	var meshes int
	h.Walk(func(n *Node, _ mat.Mat4) {
		if n.Mesh == nil {
			return
		}
		meshes++
		if n.Mesh.Material >= NumMaterials {
			t.Errorf("Invalid material %d", n.Mesh.Material)
		}
	})
	if meshes < 100 {
		t.Errorf("Too few meshes: %d", meshes)
	}

	pp, err := Tessellate(h)
	if err != nil {
		t.Fatal(err)
	}
	min, max, err := Bounds(pp)
	if err != nil {
		t.Fatal(err)
	}
	if min[0] > -6 || max[0] < 6 || min[2] > -5.5 || max[2] < 5.5 {
		t.Errorf("Ground must be covered, got: %v - %v", min, max)
	}
}
