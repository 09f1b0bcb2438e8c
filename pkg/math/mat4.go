package math

import "math"

// Mat4 is a column-major 4x4 matrix, the layout glUniformMatrix4fv takes
// with transpose off. Row r, column c lives at index c*4+r.
type Mat4 [16]float32

func (m Mat4) at(r, c int) float32 { return m[c*4+r] }

// Scale scales each axis independently.
func Scale(x, y, z float32) Mat4 {
	var m Mat4
	m[0], m[5], m[10], m[15] = x, y, z, 1
	return m
}

// Translate moves points by (x, y, z).
func Translate(x, y, z float32) Mat4 {
	m := Scale(1, 1, 1)
	m[12], m[13], m[14] = x, y, z
	return m
}

// RotateY turns about +Y so that +Z ends up along (sin a, 0, cos a), the
// heading convention used for yaw.
func RotateY(a float32) Mat4 {
	s, c := Sin(a), Cos(a)
	m := Scale(1, 1, 1)
	m[0], m[2] = c, -s
	m[8], m[10] = s, c
	return m
}

// Perspective projects a right-handed view space into OpenGL clip space.
// fovY is the vertical field of view in radians.
func Perspective(fovY, aspect, near, far float32) Mat4 {
	cot := 1 / float32(math.Tan(float64(fovY)/2))
	depth := near - far

	var m Mat4
	m[0] = cot / aspect
	m[5] = cot
	m[10] = (near + far) / depth
	m[11] = -1
	m[14] = 2 * near * far / depth
	return m
}

// LookAt is the view matrix of an eye at eye facing center.
func LookAt(eye, center, up Vec3) Mat4 {
	fwd := center.Sub(eye).Normalize()
	right := fwd.Cross(up).Normalize()
	camUp := right.Cross(fwd)

	var m Mat4
	for r, axis := range [3]Vec3{right, camUp, fwd.Scale(-1)} {
		m[r], m[4+r], m[8+r] = axis.X, axis.Y, axis.Z
		m[12+r] = -axis.Dot(eye)
	}
	m[15] = 1
	return m
}

// Mul returns m·o; o is applied first.
func (m Mat4) Mul(o Mat4) Mat4 {
	var out Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m.at(r, k) * o.at(k, c)
			}
			out[c*4+r] = sum
		}
	}
	return out
}

// TransformVec3 applies m to the point v with w = 1. There is no
// perspective divide.
func (m Mat4) TransformVec3(v Vec3) Vec3 {
	row := func(r int) float32 {
		return m.at(r, 0)*v.X + m.at(r, 1)*v.Y + m.at(r, 2)*v.Z + m.at(r, 3)
	}
	return Vec3{X: row(0), Y: row(1), Z: row(2)}
}

// Ptr points at the first element, for gl uniform uploads.
func (m *Mat4) Ptr() *float32 {
	return &m[0]
}
