package scene

import "github.com/Faultbox/villagewalk/pkg/math"

// BoxWireframeVertexCount is the number of vertices for a box wireframe (12 edges × 2).
const BoxWireframeVertexCount = 24

// BoxCorners returns the corners of an axis-aligned box: the four bottom
// corners counter-clockwise from min, then the four top corners.
func BoxCorners(min, max math.Vec3) [8]math.Vec3 {
	return [8]math.Vec3{
		{X: min.X, Y: min.Y, Z: min.Z},
		{X: max.X, Y: min.Y, Z: min.Z},
		{X: max.X, Y: min.Y, Z: max.Z},
		{X: min.X, Y: min.Y, Z: max.Z},
		{X: min.X, Y: max.Y, Z: min.Z},
		{X: max.X, Y: max.Y, Z: min.Z},
		{X: max.X, Y: max.Y, Z: max.Z},
		{X: min.X, Y: max.Y, Z: max.Z},
	}
}

// boxEdges indexes BoxCorners: bottom face, top face, vertical edges.
var boxEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// AppendBoxWireframe appends the 12 edges of a box given by its corners,
// format [x, y, z] per vertex.
func AppendBoxWireframe(dst []float32, corners [8]math.Vec3) []float32 {
	for _, e := range boxEdges {
		a, b := corners[e[0]], corners[e[1]]
		dst = append(dst, a.X, a.Y, a.Z, b.X, b.Y, b.Z)
	}
	return dst
}

// AppendColor appends color once per vertex added since start.
func AppendColor(colors []float32, color [4]float32, vertexFloats int) []float32 {
	for i := 0; i < vertexFloats; i += 3 {
		colors = append(colors, color[:]...)
	}
	return colors
}
