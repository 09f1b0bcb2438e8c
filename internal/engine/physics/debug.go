package physics

import (
	"math"

	"github.com/Faultbox/villagewalk/internal/engine/scene"
	vmath "github.com/Faultbox/villagewalk/pkg/math"
)

// DebugBuffers holds line segments for a collider wireframe.
// Vertices is xyz per vertex, Colors is rgba per vertex; every two
// vertices form one segment.
type DebugBuffers struct {
	Vertices []float32
	Colors   []float32
}

// VertexCount returns the number of vertices.
func (d DebugBuffers) VertexCount() int {
	return len(d.Vertices) / 3
}

// Wireframe colors by body type.
var (
	FixedColor   = [4]float32{0.55, 0.55, 0.6, 1}
	DynamicColor = [4]float32{1, 0.42, 0.42, 1}
)

const capsuleSegments = 16

// DebugRender builds a wireframe of every collider at its current pose.
func (w *World) DebugRender() DebugBuffers {
	var buf DebugBuffers
	for _, c := range w.colliders {
		color := DynamicColor
		if c.parent.IsFixed() {
			color = FixedColor
		}
		start := len(buf.Vertices)
		if c.desc.Shape == ShapeCapsule {
			buf.Vertices = appendCapsule(buf.Vertices, c.Center(), c.desc.HalfHeight, c.desc.Radius)
		} else {
			lo, hi := c.AABB()
			buf.Vertices = scene.AppendBoxWireframe(buf.Vertices, scene.BoxCorners(vec3(lo), vec3(hi)))
		}
		buf.Colors = scene.AppendColor(buf.Colors, color, len(buf.Vertices)-start)
	}
	return buf
}

func vec3(v Vector) vmath.Vec3 {
	return vmath.Vec3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

// appendCapsule draws the two cap rings, four side lines and two
// half-circle arcs over each cap.
func appendCapsule(dst []float32, c Vector, halfHeight, r float64) []float32 {
	seg := func(a, b Vector) {
		dst = append(dst,
			float32(a.X), float32(a.Y), float32(a.Z),
			float32(b.X), float32(b.Y), float32(b.Z))
	}

	top, bottom := c.Y+halfHeight, c.Y-halfHeight
	step := 2 * math.Pi / capsuleSegments
	for i := 0; i < capsuleSegments; i++ {
		a0, a1 := float64(i)*step, float64(i+1)*step
		s0, c0 := math.Sincos(a0)
		s1, c1 := math.Sincos(a1)
		for _, y := range []float64{top, bottom} {
			seg(Vector{c.X + c0*r, y, c.Z + s0*r}, Vector{c.X + c1*r, y, c.Z + s1*r})
		}
	}

	for i := 0; i < 4; i++ {
		s, co := math.Sincos(float64(i) * math.Pi / 2)
		seg(Vector{c.X + co*r, bottom, c.Z + s*r}, Vector{c.X + co*r, top, c.Z + s*r})
	}

	half := capsuleSegments / 2
	for i := 0; i < half; i++ {
		a0, a1 := float64(i)*step, float64(i+1)*step
		s0, c0 := math.Sincos(a0)
		s1, c1 := math.Sincos(a1)
		// XY and ZY arcs, above the top ring and mirrored below the bottom one.
		seg(Vector{c.X + c0*r, top + s0*r, c.Z}, Vector{c.X + c1*r, top + s1*r, c.Z})
		seg(Vector{c.X, top + s0*r, c.Z + c0*r}, Vector{c.X, top + s1*r, c.Z + c1*r})
		seg(Vector{c.X + c0*r, bottom - s0*r, c.Z}, Vector{c.X + c1*r, bottom - s1*r, c.Z})
		seg(Vector{c.X, bottom - s0*r, c.Z + c0*r}, Vector{c.X, bottom - s1*r, c.Z + c1*r})
	}
	return dst
}
