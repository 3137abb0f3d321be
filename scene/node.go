// Package scene describes the static house diorama as a tree of primitive
// meshes, and derives everything the renderer needs from it: a flattened
// vertex buffer, the material set and the fixture lights for a theme.
package scene

import (
	"github.com/seqsense/pcgol/mat"
)

type Shape int

const (
	ShapeBox Shape = iota
	ShapeCylinder
	ShapeSphere
)

// Mesh is a primitive solid centered at the node origin.
//
// Box: Args = width, height, depth.
// Cylinder: Args = top radius, bottom radius, height; axis is Y.
// Sphere: Args[0] = radius.
type Mesh struct {
	Shape    Shape
	Args     [3]float32
	Segments int
	Material MaterialID
}

// Node is a group with an optional mesh and an optional fixture light.
// Scale of zero is treated as one.
type Node struct {
	Name     string
	Position mat.Vec3
	Rotation mat.Vec3
	Scale    mat.Vec3

	Mesh  *Mesh
	Light *Light

	Children []*Node
}

func (n *Node) Local() mat.Mat4 {
	s := n.Scale
	if s == (mat.Vec3{}) {
		s = mat.Vec3{1, 1, 1}
	}
	return Compose(n.Position, n.Rotation, s)
}

// Walk visits every node depth first with its transform relative to the
// node Walk was called on.
func (n *Node) Walk(fn func(n *Node, m mat.Mat4)) {
	n.walk(identity(), fn)
}

func (n *Node) walk(parent mat.Mat4, fn func(*Node, mat.Mat4)) {
	m := parent.MulAffine(n.Local())
	fn(n, m)
	for _, c := range n.Children {
		c.walk(m, fn)
	}
}

// Find returns the first node with the given name.
func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, c := range n.Children {
		if f := c.Find(name); f != nil {
			return f
		}
	}
	return nil
}

func identity() mat.Mat4 {
	return Scale(1, 1, 1)
}

func group(name string, pos mat.Vec3, children ...*Node) *Node {
	return &Node{Name: name, Position: pos, Children: children}
}

func box(pos mat.Vec3, w, h, d float32, m MaterialID) *Node {
	return &Node{
		Position: pos,
		Mesh:     &Mesh{Shape: ShapeBox, Args: [3]float32{w, h, d}, Material: m},
	}
}

func cylinder(pos mat.Vec3, rTop, rBottom, h float32, seg int, m MaterialID) *Node {
	return &Node{
		Position: pos,
		Mesh:     &Mesh{Shape: ShapeCylinder, Args: [3]float32{rTop, rBottom, h}, Segments: seg, Material: m},
	}
}

func sphere(pos mat.Vec3, r float32, seg int, m MaterialID) *Node {
	return &Node{
		Position: pos,
		Mesh:     &Mesh{Shape: ShapeSphere, Args: [3]float32{r}, Segments: seg, Material: m},
	}
}

func (n *Node) rotated(r mat.Vec3) *Node {
	n.Rotation = r
	return n
}

func (n *Node) scaled(s float32) *Node {
	n.Scale = mat.Vec3{s, s, s}
	return n
}

func (n *Node) named(name string) *Node {
	n.Name = name
	return n
}
