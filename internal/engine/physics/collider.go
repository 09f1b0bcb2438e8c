package physics

import (
	"math"

	"github.com/jakecoffman/cp"
)

// ShapeType is the geometry of a collider.
type ShapeType int

const (
	// ShapeCuboid is an axis-aligned box given by half extents.
	ShapeCuboid ShapeType = iota
	// ShapeCapsule is a Y-aligned capsule: a segment of half length
	// HalfHeight swept by Radius.
	ShapeCapsule
)

func (s ShapeType) String() string {
	if s == ShapeCapsule {
		return "capsule"
	}
	return "cuboid"
}

// ColliderDesc describes a collider before it is attached.
type ColliderDesc struct {
	Shape       ShapeType
	HalfExtents Vector // cuboid
	HalfHeight  float64
	Radius      float64
	Translation Vector // offset from the parent body
	Friction    float64
}

// Cuboid returns a box collider descriptor.
func Cuboid(hx, hy, hz float64) *ColliderDesc {
	return &ColliderDesc{Shape: ShapeCuboid, HalfExtents: Vector{hx, hy, hz}}
}

// Capsule returns a Y-aligned capsule collider descriptor.
func Capsule(halfHeight, radius float64) *ColliderDesc {
	return &ColliderDesc{Shape: ShapeCapsule, HalfHeight: halfHeight, Radius: radius}
}

// SetTranslation offsets the collider from its parent body.
func (d *ColliderDesc) SetTranslation(x, y, z float64) *ColliderDesc {
	d.Translation = Vector{x, y, z}
	return d
}

// SetFriction sets the horizontal contact friction.
func (d *ColliderDesc) SetFriction(f float64) *ColliderDesc {
	d.Friction = f
	return d
}

// halfHeightY is the vertical half size of the collider.
func (d *ColliderDesc) halfHeightY() float64 {
	if d.Shape == ShapeCapsule {
		return d.HalfHeight + d.Radius
	}
	return d.HalfExtents.Y
}

// Collider is a shape attached to a rigid body.
type Collider struct {
	handle int
	desc   ColliderDesc
	parent *RigidBody
	shape  *cp.Shape
}

func newShape(body *cp.Body, d *ColliderDesc) *cp.Shape {
	off := planar(d.Translation)
	if d.Shape == ShapeCapsule {
		return cp.NewCircle(body, d.Radius, off)
	}
	e := d.HalfExtents
	return cp.NewBox2(body, cp.BB{L: off.X - e.X, B: off.Y - e.Z, R: off.X + e.X, T: off.Y + e.Z}, 0)
}

// Handle returns the collider's identifier, unique within its world.
func (c *Collider) Handle() int { return c.handle }

// Parent returns the body the collider is attached to.
func (c *Collider) Parent() *RigidBody { return c.parent }

// Shape returns the collider geometry type.
func (c *Collider) Shape() ShapeType { return c.desc.Shape }

// HalfExtents returns the half extents of a cuboid.
func (c *Collider) HalfExtents() Vector { return c.desc.HalfExtents }

// HalfHeight returns the half length of a capsule's inner segment.
func (c *Collider) HalfHeight() float64 { return c.desc.HalfHeight }

// Radius returns the radius of a capsule.
func (c *Collider) Radius() float64 { return c.desc.Radius }

// Center returns the collider center in world space.
func (c *Collider) Center() Vector {
	return c.parent.Translation().Add(c.desc.Translation)
}

// AABB returns the world-space bounding box.
func (c *Collider) AABB() (min, max Vector) {
	center := c.Center()
	var half Vector
	if c.desc.Shape == ShapeCapsule {
		half = Vector{c.desc.Radius, c.desc.HalfHeight + c.desc.Radius, c.desc.Radius}
	} else {
		half = c.desc.HalfExtents
	}
	return center.Sub(half), center.Add(half)
}

func (c *Collider) verticalRange() (lo, hi float64) {
	y := c.Center().Y
	h := c.desc.halfHeightY()
	return y - h, y + h
}

// footprintOverlaps reports whether the XZ projections intersect.
func (c *Collider) footprintOverlaps(o *Collider) bool {
	a, b := c, o
	if a.desc.Shape == ShapeCapsule && b.desc.Shape == ShapeCuboid {
		a, b = b, a
	}
	ac, bc := a.Center(), b.Center()

	switch {
	case a.desc.Shape == ShapeCuboid && b.desc.Shape == ShapeCuboid:
		ae, be := a.desc.HalfExtents, b.desc.HalfExtents
		return math.Abs(ac.X-bc.X) < ae.X+be.X && math.Abs(ac.Z-bc.Z) < ae.Z+be.Z
	case a.desc.Shape == ShapeCuboid:
		// Box against circle: closest point on the box footprint.
		e := a.desc.HalfExtents
		dx := bc.X - clamp(bc.X, ac.X-e.X, ac.X+e.X)
		dz := bc.Z - clamp(bc.Z, ac.Z-e.Z, ac.Z+e.Z)
		return dx*dx+dz*dz < b.desc.Radius*b.desc.Radius
	default:
		dx, dz := ac.X-bc.X, ac.Z-bc.Z
		r := a.desc.Radius + b.desc.Radius
		return dx*dx+dz*dz < r*r
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
