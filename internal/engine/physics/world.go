package physics

import (
	"math"

	"github.com/jakecoffman/cp"
)

// DefaultTimestep is the fixed simulation step in seconds.
const DefaultTimestep = 1.0 / 60.0

const (
	collisionDynamic cp.CollisionType = iota + 1
	collisionFixed
)

const (
	// supportTolerance is how far below a surface a body's bottom may
	// already be and still land on it.
	supportTolerance = 0.05
	// overlapEpsilon keeps bodies resting on a surface out of horizontal
	// contact with it.
	overlapEpsilon = 1e-4
	solverIterations = 10
)

// World owns bodies and colliders and advances them with a fixed step.
type World struct {
	gravity  Vector
	timestep float64
	space    *cp.Space

	bodies    []*RigidBody
	colliders []*Collider
	fixed     []*Collider
	nextID    int
}

// NewWorld creates an empty world with the given gravity.
func NewWorld(gravity Vector) *World {
	space := cp.NewSpace()
	space.Iterations = solverIterations
	space.SetGravity(planar(gravity))

	w := &World{
		gravity:  gravity,
		timestep: DefaultTimestep,
		space:    space,
	}

	for _, pair := range [][2]cp.CollisionType{
		{collisionDynamic, collisionFixed},
		{collisionDynamic, collisionDynamic},
	} {
		handler := space.NewCollisionHandler(pair[0], pair[1])
		handler.PreSolveFunc = func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
			a, b := arb.Shapes()
			return verticallyOverlapping(a, b)
		}
	}
	return w
}

// Gravity returns the world gravity.
func (w *World) Gravity() Vector { return w.gravity }

// Timestep returns the fixed step length in seconds.
func (w *World) Timestep() float64 { return w.timestep }

// SetTimestep changes the fixed step length. Non-positive values are ignored.
func (w *World) SetTimestep(dt float64) {
	if dt > 0 {
		w.timestep = dt
	}
}

// Bodies returns every body in creation order.
func (w *World) Bodies() []*RigidBody {
	out := make([]*RigidBody, len(w.bodies))
	copy(out, w.bodies)
	return out
}

// Colliders returns every collider in creation order.
func (w *World) Colliders() []*Collider {
	out := make([]*Collider, len(w.colliders))
	copy(out, w.colliders)
	return out
}

// CreateRigidBody adds a body described by desc.
func (w *World) CreateRigidBody(desc *RigidBodyDesc) *RigidBody {
	rb := &RigidBody{
		world:  w,
		handle: w.id(),
		kind:   desc.Type,
		locked: desc.RotationsLocked,
		y:      desc.Translation.Y,
	}

	if desc.Type == BodyFixed {
		rb.body = cp.NewStaticBody()
	} else {
		mass := desc.Mass
		if mass <= 0 {
			mass = 1
		}
		moment := math.Inf(1)
		if !desc.RotationsLocked {
			moment = cp.MomentForCircle(mass, 0, 0.5, cp.Vector{})
		}
		rb.body = cp.NewBody(mass, moment)
		rb.vy = desc.Linvel.Y
		rb.body.SetVelocityVector(planar(desc.Linvel))
	}
	rb.body.SetPosition(planar(desc.Translation))
	rb.body.UserData = rb

	w.space.AddBody(rb.body)
	w.bodies = append(w.bodies, rb)
	return rb
}

// CreateCollider attaches a collider to parent. A nil parent attaches it
// to a new fixed body at the origin.
func (w *World) CreateCollider(desc *ColliderDesc, parent *RigidBody) *Collider {
	if parent == nil {
		parent = w.CreateRigidBody(FixedBody())
	}

	c := &Collider{
		handle: w.id(),
		desc:   *desc,
		parent: parent,
	}
	c.shape = newShape(parent.body, &c.desc)
	c.shape.UserData = c
	c.shape.SetFriction(desc.Friction)
	if parent.IsFixed() {
		c.shape.SetCollisionType(collisionFixed)
	} else {
		c.shape.SetCollisionType(collisionDynamic)
	}

	w.space.AddShape(c.shape)
	parent.colliders = append(parent.colliders, c)
	w.colliders = append(w.colliders, c)
	if parent.IsFixed() {
		w.fixed = append(w.fixed, c)
	}
	return c
}

// Step advances the simulation by one fixed timestep.
func (w *World) Step() {
	dt := w.timestep
	for _, b := range w.bodies {
		if b.IsDynamic() {
			w.integrateVertical(b, dt)
			b.blockContacts()
		}
	}
	w.space.Step(dt)
}

// integrateVertical applies gravity on Y and lands the body on the highest
// fixed surface below it whose footprint it overlaps.
func (w *World) integrateVertical(b *RigidBody, dt float64) {
	before := b.bottom()

	b.vy += w.gravity.Y * dt
	b.y += b.vy * dt
	b.supported = false

	if len(b.colliders) == 0 || b.vy > 0 {
		return
	}

	top, ok := w.surfaceBelow(b, before)
	if !ok {
		return
	}
	if after := b.bottom(); after <= top {
		b.y += top - after
		b.vy = 0
		b.supported = true
	}
}

func (w *World) surfaceBelow(b *RigidBody, bottom float64) (float64, bool) {
	best := math.Inf(-1)
	found := false
	for _, f := range w.fixed {
		_, top := f.verticalRange()
		if bottom < top-supportTolerance || top <= best {
			continue
		}
		for _, c := range b.colliders {
			if c.footprintOverlaps(f) {
				best, found = top, true
				break
			}
		}
	}
	return best, found
}

func (w *World) id() int {
	w.nextID++
	return w.nextID
}

func verticallyOverlapping(a, b *cp.Shape) bool {
	ca, okA := a.UserData.(*Collider)
	cb, okB := b.UserData.(*Collider)
	if !okA || !okB {
		return true
	}
	loA, hiA := ca.verticalRange()
	loB, hiB := cb.verticalRange()
	return loA < hiB-overlapEpsilon && loB < hiA-overlapEpsilon
}
