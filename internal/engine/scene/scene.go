// Package scene holds what the renderer draws: transformable nodes and
// line-segment buffers.
package scene

import (
	"github.com/Faultbox/villagewalk/pkg/math"
)

// Object is anything that can be added to a Scene.
type Object interface {
	Name() string
}

// Bounds is an axis-aligned box in a node's local space.
type Bounds struct {
	Min, Max math.Vec3
}

// Size returns the box extents.
func (b Bounds) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// Node is a placed model proxy. The renderer draws it as its bounding box.
type Node struct {
	name     string
	Position math.Vec3
	Yaw      float32 // radians about +Y
	Scale    float32
	Visible  bool
	Color    [4]float32
	Bounds   Bounds
}

// NewNode creates a visible node with unit scale.
func NewNode(name string, bounds Bounds) *Node {
	return &Node{
		name:    name,
		Scale:   1,
		Visible: true,
		Color:   [4]float32{1, 1, 1, 1},
		Bounds:  bounds,
	}
}

// NewBox creates a node for a box of the given size centered on its origin.
func NewBox(name string, size math.Vec3, color [4]float32) *Node {
	half := size.Scale(0.5)
	n := NewNode(name, Bounds{Min: half.Scale(-1), Max: half})
	n.Color = color
	return n
}

// Name returns the node name.
func (n *Node) Name() string { return n.name }

// Model returns the local-to-world transform.
func (n *Node) Model() math.Mat4 {
	return math.Translate(n.Position.X, n.Position.Y, n.Position.Z).
		Mul(math.RotateY(n.Yaw)).
		Mul(math.Scale(n.Scale, n.Scale, n.Scale))
}

// WorldCorners returns the bounding box corners in world space.
func (n *Node) WorldCorners() [8]math.Vec3 {
	corners := BoxCorners(n.Bounds.Min, n.Bounds.Max)
	model := n.Model()
	for i, c := range corners {
		corners[i] = model.TransformVec3(c)
	}
	return corners
}

// LineSegments is a vertex-colored line list. Every two vertices form one
// segment.
type LineSegments struct {
	name          string
	Visible       bool
	FrustumCulled bool

	vertices []float32
	colors   []float32
	version  uint64
}

// NewLineSegments creates an empty, visible line list.
func NewLineSegments(name string) *LineSegments {
	return &LineSegments{name: name, Visible: true, FrustumCulled: true}
}

// Name returns the line list name.
func (l *LineSegments) Name() string { return l.name }

// SetGeometry replaces the buffers: xyz per vertex and rgba per vertex.
func (l *LineSegments) SetGeometry(vertices, colors []float32) {
	l.vertices = vertices
	l.colors = colors
	l.version++
}

// Geometry returns the buffers and a version that changes on every SetGeometry.
func (l *LineSegments) Geometry() (vertices, colors []float32, version uint64) {
	return l.vertices, l.colors, l.version
}

// VertexCount returns the number of vertices.
func (l *LineSegments) VertexCount() int {
	return len(l.vertices) / 3
}

// Scene is an ordered set of objects plus a background color.
type Scene struct {
	Background [3]float32
	objects    []Object
}

// New creates an empty scene with a sky-blue background.
func New() *Scene {
	return &Scene{Background: [3]float32{0.53, 0.81, 0.92}}
}

// Add appends obj. Adding the same object twice is a no-op.
func (s *Scene) Add(obj Object) {
	for _, o := range s.objects {
		if o == obj {
			return
		}
	}
	s.objects = append(s.objects, obj)
}

// Remove deletes obj and reports whether it was present.
func (s *Scene) Remove(obj Object) bool {
	for i, o := range s.objects {
		if o == obj {
			s.objects = append(s.objects[:i], s.objects[i+1:]...)
			return true
		}
	}
	return false
}

// Objects returns the objects in insertion order.
func (s *Scene) Objects() []Object {
	out := make([]Object, len(s.objects))
	copy(out, s.objects)
	return out
}

// Find returns the first object called name, or nil.
func (s *Scene) Find(name string) Object {
	for _, o := range s.objects {
		if o.Name() == name {
			return o
		}
	}
	return nil
}
