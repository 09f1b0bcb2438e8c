package physics

import (
	"math"
	"testing"
)

var down = Vector{Y: -1}

func TestCastRayDownHitsGround(t *testing.T) {
	w := newGroundWorld()
	body := addCapsule(w, 0, groundTop+1, 0)

	hit, ok := w.CastRay(Ray{Origin: body.Translation(), Dir: down}, 1.1, true, body)
	if !ok {
		t.Fatal("expected ground hit")
	}
	if !hit.Collider.Parent().IsFixed() {
		t.Error("hit collider should belong to the ground")
	}
	approxEqual(t, hit.TimeOfImpact, 1.0, 1e-9, "toi")
}

func TestCastRaySolidInsideCollider(t *testing.T) {
	w := newGroundWorld()
	body := addCapsule(w, 0, groundTop+1, 0)
	ray := Ray{Origin: body.Translation(), Dir: down}

	hit, ok := w.CastRay(ray, 5, true, nil)
	if !ok || hit.Collider.Parent() != body {
		t.Fatalf("solid cast from inside should hit the capsule, got %+v ok=%v", hit, ok)
	}
	approxEqual(t, hit.TimeOfImpact, 0, 1e-12, "toi")

	// Hollow: the capsule is left at its bottom, the ground top lies at the same depth.
	hit, ok = w.CastRay(ray, 5, false, nil)
	if !ok {
		t.Fatal("hollow cast should hit")
	}
	approxEqual(t, hit.TimeOfImpact, 1.0, 1e-9, "toi")
}

func TestCastRayRespectsMaxToi(t *testing.T) {
	w := newGroundWorld()
	if _, ok := w.CastRay(Ray{Origin: Vector{Y: 3}, Dir: down}, 2.5, true, nil); ok {
		t.Fatal("ground is 2.9 away, beyond maxToi")
	}
	if _, ok := w.CastRay(Ray{Origin: Vector{Y: 3}, Dir: down}, 3, true, nil); !ok {
		t.Fatal("ground should be within maxToi")
	}
}

func TestCastRayScaledDirection(t *testing.T) {
	w := newGroundWorld()
	hit, ok := w.CastRay(Ray{Origin: Vector{Y: 4.1}, Dir: Vector{Y: -2}}, 10, true, nil)
	if !ok {
		t.Fatal("expected hit")
	}
	approxEqual(t, hit.TimeOfImpact, 2, 1e-9, "toi")
}

func TestCastRayMissesUpward(t *testing.T) {
	w := newGroundWorld()
	if _, ok := w.CastRay(Ray{Origin: Vector{Y: 3}, Dir: Vector{Y: 1}}, 100, true, nil); ok {
		t.Fatal("ray pointing away should miss")
	}
}

func TestCastRayCapsule(t *testing.T) {
	w := NewWorld(Vector{})
	body := addCapsule(w, 0, 1, 0)

	tests := []struct {
		name string
		ray  Ray
		want float64
	}{
		{"side", Ray{Origin: Vector{X: -5, Y: 1}, Dir: Vector{X: 1}}, 4.5},
		{"top cap", Ray{Origin: Vector{Y: 10}, Dir: down}, 8},
		{"bottom cap", Ray{Origin: Vector{Y: -4}, Dir: Vector{Y: 1}}, 4},
		{"upper sphere", Ray{Origin: Vector{X: -5, Y: 1.7}, Dir: Vector{X: 1}}, 5 - math.Sqrt(0.25-0.04)},
		{"scaled", Ray{Origin: Vector{Z: 5, Y: 1}, Dir: Vector{Z: -3}}, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := w.CastRay(tt.ray, 100, true, nil)
			if !ok {
				t.Fatal("expected hit")
			}
			if hit.Collider.Parent() != body {
				t.Fatal("hit the wrong collider")
			}
			approxEqual(t, hit.TimeOfImpact, tt.want, 1e-9, "toi")
		})
	}

	if _, ok := w.CastRay(Ray{Origin: Vector{X: -5, Y: 2.2}, Dir: Vector{X: 1}}, 100, true, nil); ok {
		t.Error("ray above the capsule should miss")
	}
}

func TestCastRayFindsClosest(t *testing.T) {
	w := newGroundWorld()
	near := addCapsule(w, 0, 5, 0)
	addCapsule(w, 0, 9, 0)

	hit, ok := w.CastRay(Ray{Origin: Vector{Y: 20}, Dir: down}, 100, true, nil)
	if !ok {
		t.Fatal("expected hit")
	}
	if hit.Collider.Parent() == near {
		t.Fatal("upper capsule is closer")
	}
	approxEqual(t, hit.TimeOfImpact, 10, 1e-9, "toi")
}
