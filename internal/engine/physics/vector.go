// Package physics simulates rigid bodies for the walking demo.
//
// Horizontal motion and contacts (the XZ plane) run in a Chipmunk2D space
// where world X maps to space X and world Z maps to space Y. The vertical
// axis is integrated by the World itself: gravity, and support on the tops
// of fixed cuboids under a body's footprint. Horizontal contacts only apply
// between colliders whose vertical extents overlap.
package physics

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Vector is a 3D vector in world space (Y up).
type Vector struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vector) Add(o Vector) Vector { return Vector{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v - o.
func (v Vector) Sub(o Vector) Vector { return Vector{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale returns v * s.
func (v Vector) Scale(s float64) Vector { return Vector{v.X * s, v.Y * s, v.Z * s} }

// Dot returns the dot product.
func (v Vector) Dot(o Vector) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Length returns the magnitude.
func (v Vector) Length() float64 { return math.Sqrt(v.Dot(v)) }

// planar drops Y and maps Z onto the space's Y axis.
func planar(v Vector) cp.Vector { return cp.Vector{X: v.X, Y: v.Z} }
