package physics

import (
	"math"

	"github.com/jakecoffman/cp"
)

// BodyType selects how a body takes part in the simulation.
type BodyType int

const (
	// BodyDynamic bodies are moved by gravity, velocity and contacts.
	BodyDynamic BodyType = iota
	// BodyFixed bodies never move on their own.
	BodyFixed
)

func (t BodyType) String() string {
	if t == BodyFixed {
		return "fixed"
	}
	return "dynamic"
}

// RigidBodyDesc describes a body before it is created.
type RigidBodyDesc struct {
	Type            BodyType
	Translation     Vector
	Linvel          Vector
	Mass            float64
	RotationsLocked bool
}

// DynamicBody returns a descriptor for a dynamic body of unit mass.
func DynamicBody() *RigidBodyDesc {
	return &RigidBodyDesc{Type: BodyDynamic, Mass: 1}
}

// FixedBody returns a descriptor for an immovable body.
func FixedBody() *RigidBodyDesc {
	return &RigidBodyDesc{Type: BodyFixed}
}

// SetTranslation sets the initial position.
func (d *RigidBodyDesc) SetTranslation(x, y, z float64) *RigidBodyDesc {
	d.Translation = Vector{x, y, z}
	return d
}

// SetLinvel sets the initial linear velocity.
func (d *RigidBodyDesc) SetLinvel(x, y, z float64) *RigidBodyDesc {
	d.Linvel = Vector{x, y, z}
	return d
}

// SetMass sets the mass of a dynamic body. Non-positive values are ignored.
func (d *RigidBodyDesc) SetMass(m float64) *RigidBodyDesc {
	if m > 0 {
		d.Mass = m
	}
	return d
}

// LockRotations keeps contacts from ever rotating the body.
func (d *RigidBodyDesc) LockRotations() *RigidBodyDesc {
	d.RotationsLocked = true
	return d
}

// RigidBody is a body living in a World.
type RigidBody struct {
	world  *World
	handle int
	kind   BodyType
	locked bool

	body *cp.Body

	// Vertical state, integrated by the world.
	y, vy     float64
	supported bool

	colliders []*Collider
}

// Handle returns the body's identifier, unique within its world.
func (b *RigidBody) Handle() int { return b.handle }

// Type returns the body type.
func (b *RigidBody) Type() BodyType { return b.kind }

// IsDynamic reports whether the body is simulated.
func (b *RigidBody) IsDynamic() bool { return b.kind == BodyDynamic }

// IsFixed reports whether the body is immovable.
func (b *RigidBody) IsFixed() bool { return b.kind == BodyFixed }

// RotationsLocked reports whether contacts may rotate the body.
func (b *RigidBody) RotationsLocked() bool { return b.locked }

// Translation returns the body position.
func (b *RigidBody) Translation() Vector {
	p := b.body.Position()
	return Vector{X: p.X, Y: b.y, Z: p.Y}
}

// SetTranslation teleports the body. wake is accepted for symmetry with
// SetLinvel; bodies never sleep.
func (b *RigidBody) SetTranslation(v Vector, wake bool) {
	b.y = v.Y
	if b.kind == BodyFixed && len(b.colliders) > 0 {
		// Static shapes are indexed by position, re-add them around the move.
		shapes := b.shapes()
		for _, s := range shapes {
			b.world.space.RemoveShape(s)
		}
		b.body.SetPosition(planar(v))
		for _, s := range shapes {
			b.world.space.AddShape(s)
		}
		return
	}
	b.body.SetPosition(planar(v))
	if wake {
		b.body.Activate()
	}
}

// Linvel returns the linear velocity. Fixed bodies report zero.
func (b *RigidBody) Linvel() Vector {
	if b.kind == BodyFixed {
		return Vector{}
	}
	v := b.body.Velocity()
	return Vector{X: v.X, Y: b.vy, Z: v.Y}
}

// SetLinvel sets the linear velocity. It has no effect on fixed bodies.
func (b *RigidBody) SetLinvel(v Vector, wake bool) {
	if b.kind == BodyFixed {
		return
	}
	b.vy = v.Y
	b.body.SetVelocityVector(planar(v))
	if wake {
		b.body.Activate()
	}
}

// Supported reports whether the last step rested the body on a fixed collider.
func (b *RigidBody) Supported() bool { return b.supported }

// Colliders returns the colliders attached to the body.
func (b *RigidBody) Colliders() []*Collider {
	out := make([]*Collider, len(b.colliders))
	copy(out, b.colliders)
	return out
}

func (b *RigidBody) shapes() []*cp.Shape {
	shapes := make([]*cp.Shape, 0, len(b.colliders))
	for _, c := range b.colliders {
		shapes = append(shapes, c.shape)
	}
	return shapes
}

// blockContacts drops the part of the planar velocity that points into the
// contacts of the last step.
func (b *RigidBody) blockContacts() {
	v := b.body.Velocity()
	b.body.EachArbiter(func(arb *cp.Arbiter) {
		n := arb.Normal()
		if first, _ := arb.Bodies(); first != b.body {
			n = n.Neg()
		}
		if into := v.Dot(n); into > 0 {
			v = v.Sub(n.Mult(into))
		}
	})
	b.body.SetVelocityVector(v)
}

// bottom returns the lowest point of any attached collider.
func (b *RigidBody) bottom() float64 {
	lo := math.Inf(1)
	for _, c := range b.colliders {
		if l, _ := c.verticalRange(); l < lo {
			lo = l
		}
	}
	return lo
}
