package physics

import (
	"math"
	"testing"
)

const groundTop = 0.1

func approxEqual(t *testing.T, got, want, tol float64, field string) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("%s = %.8f, want %.8f (tol=%.8f)", field, got, want, tol)
	}
}

// newGroundWorld builds the demo ground: a fixed 118 x 0.2 x 92 slab.
func newGroundWorld() *World {
	w := NewWorld(Vector{Y: -9.81})
	w.CreateCollider(Cuboid(59, 0.1, 46), w.CreateRigidBody(FixedBody()))
	return w
}

func addCapsule(w *World, x, y, z float64) *RigidBody {
	body := w.CreateRigidBody(DynamicBody().SetTranslation(x, y, z).LockRotations())
	w.CreateCollider(Capsule(0.5, 0.5), body)
	return body
}

func steps(w *World, n int, each func()) {
	for i := 0; i < n; i++ {
		if each != nil {
			each()
		}
		w.Step()
	}
}

func TestStepFreeFallOneStep(t *testing.T) {
	w := NewWorld(Vector{Y: -9.81})
	body := w.CreateRigidBody(DynamicBody().SetTranslation(0, 10, 0))

	w.Step()

	vy := -9.81 * DefaultTimestep
	approxEqual(t, body.Linvel().Y, vy, 1e-12, "velocity.y")
	approxEqual(t, body.Translation().Y, 10+vy*DefaultTimestep, 1e-12, "position.y")
	if body.Supported() {
		t.Fatal("supported = true in free fall")
	}
}

func TestCapsuleLandsOnGround(t *testing.T) {
	w := newGroundWorld()
	body := addCapsule(w, 0, 6, 0)

	steps(w, 240, nil)

	// Capsule bottom is 1.0 below its center.
	approxEqual(t, body.Translation().Y, groundTop+1.0, 1e-9, "position.y")
	approxEqual(t, body.Linvel().Y, 0, 1e-12, "velocity.y")
	if !body.Supported() {
		t.Fatal("supported = false after landing")
	}
}

func TestFallsOffGroundEdge(t *testing.T) {
	w := newGroundWorld()
	body := addCapsule(w, 70, 2, 0)

	steps(w, 60, nil)

	if y := body.Translation().Y; y >= 1.1 {
		t.Fatalf("body outside the ground footprint should keep falling, y = %v", y)
	}
}

func TestGroundDoesNotResistHorizontalMotion(t *testing.T) {
	w := newGroundWorld()
	body := addCapsule(w, 0, groundTop+1, 0)

	steps(w, 60, func() {
		v := body.Linvel()
		body.SetLinvel(Vector{X: 6, Y: v.Y, Z: 0}, true)
	})

	approxEqual(t, body.Translation().X, 6, 1e-6, "position.x")
	approxEqual(t, body.Translation().Y, groundTop+1, 1e-9, "position.y")
}

func TestWallBlocksHorizontalMotion(t *testing.T) {
	w := newGroundWorld()
	wall := w.CreateRigidBody(FixedBody().SetTranslation(3, 2.1, 0))
	w.CreateCollider(Cuboid(0.5, 2, 5), wall)
	body := addCapsule(w, 0, groundTop+1, 0)

	steps(w, 120, func() {
		v := body.Linvel()
		body.SetLinvel(Vector{X: 6, Y: v.Y}, true)
	})

	// Wall face at x=2.5, capsule radius 0.5.
	if x := body.Translation().X; x > 2.25 {
		t.Fatalf("capsule went through the wall, x = %v", x)
	}
	if !body.Supported() {
		t.Fatal("capsule lost ground support against the wall")
	}
}

func TestSlidesAlongWall(t *testing.T) {
	w := newGroundWorld()
	wall := w.CreateRigidBody(FixedBody().SetTranslation(3, 2.1, 0))
	w.CreateCollider(Cuboid(0.5, 2, 10), wall)
	body := addCapsule(w, 0, groundTop+1, 0)

	steps(w, 60, func() {
		v := body.Linvel()
		body.SetLinvel(Vector{X: 6, Y: v.Y, Z: 3}, true)
	})

	p := body.Translation()
	if p.X > 2.25 {
		t.Fatalf("capsule went through the wall, x = %v", p.X)
	}
	if p.Z < 1.5 {
		t.Fatalf("capsule should slide along the wall, z = %v", p.Z)
	}
}

func TestOverheadBeamDoesNotBlock(t *testing.T) {
	w := newGroundWorld()
	beam := w.CreateRigidBody(FixedBody().SetTranslation(3, 5, 0))
	w.CreateCollider(Cuboid(0.5, 0.2, 5), beam)
	body := addCapsule(w, 0, groundTop+1, 0)

	steps(w, 120, func() {
		v := body.Linvel()
		body.SetLinvel(Vector{X: 6, Y: v.Y}, true)
	})

	if x := body.Translation().X; x < 11 {
		t.Fatalf("capsule should pass under the beam, x = %v", x)
	}
}

func TestLandsOnHighestSurface(t *testing.T) {
	w := newGroundWorld()
	step := w.CreateRigidBody(FixedBody().SetTranslation(0, 0.6, 0))
	w.CreateCollider(Cuboid(2, 0.5, 2), step)
	body := addCapsule(w, 0.5, 5, 0.5)

	steps(w, 240, nil)

	approxEqual(t, body.Translation().Y, 1.1+1.0, 1e-9, "position.y")
}

func TestDynamicBodiesCollide(t *testing.T) {
	w := newGroundWorld()
	a := addCapsule(w, -2, groundTop+1, 0)
	b := addCapsule(w, 2, groundTop+1, 0)

	steps(w, 120, func() {
		a.SetLinvel(Vector{X: 3, Y: a.Linvel().Y}, true)
		b.SetLinvel(Vector{X: -3, Y: b.Linvel().Y}, true)
	})

	if d := b.Translation().X - a.Translation().X; d < 0.8 {
		t.Fatalf("capsules overlap, center distance %v", d)
	}
}

func TestRotationsLockedUsesInfiniteMoment(t *testing.T) {
	w := NewWorld(Vector{})
	locked := w.CreateRigidBody(DynamicBody().LockRotations())
	free := w.CreateRigidBody(DynamicBody())

	if !math.IsInf(locked.body.Moment(), 1) {
		t.Errorf("locked moment = %v, want +Inf", locked.body.Moment())
	}
	if math.IsInf(free.body.Moment(), 1) {
		t.Error("unlocked body should have a finite moment")
	}
}

func TestFixedBodyIgnoresVelocity(t *testing.T) {
	w := newGroundWorld()
	ground := w.Bodies()[0]

	ground.SetLinvel(Vector{X: 5, Y: 5}, true)
	w.Step()

	if v := ground.Linvel(); v != (Vector{}) {
		t.Errorf("fixed body velocity = %v, want zero", v)
	}
	if p := ground.Translation(); p != (Vector{}) {
		t.Errorf("fixed body moved to %v", p)
	}
}

func TestCreateColliderWithoutParent(t *testing.T) {
	w := NewWorld(Vector{Y: -9.81})
	c := w.CreateCollider(Cuboid(1, 1, 1), nil)

	if c.Parent() == nil || !c.Parent().IsFixed() {
		t.Fatal("parentless collider should get a fixed body")
	}
	if len(w.Bodies()) != 1 || len(w.Colliders()) != 1 {
		t.Errorf("bodies=%d colliders=%d, want 1 and 1", len(w.Bodies()), len(w.Colliders()))
	}
}

func TestHandlesAreUnique(t *testing.T) {
	w := newGroundWorld()
	body := addCapsule(w, 0, 3, 0)

	seen := map[int]bool{}
	for _, b := range w.Bodies() {
		seen[b.Handle()] = true
	}
	for _, c := range w.Colliders() {
		if seen[c.Handle()] {
			t.Fatalf("duplicate handle %d", c.Handle())
		}
		seen[c.Handle()] = true
	}
	if len(body.Colliders()) != 1 {
		t.Errorf("expected one collider on the capsule body")
	}
}
