package physics

import "math"

// Ray is a half line. TimeOfImpact values are in multiples of Dir.
type Ray struct {
	Origin Vector
	Dir    Vector
}

// PointAt returns Origin + Dir*t.
func (r Ray) PointAt(t float64) Vector {
	return r.Origin.Add(r.Dir.Scale(t))
}

// RayHit is the closest collider hit by a ray cast.
type RayHit struct {
	Collider     *Collider
	TimeOfImpact float64
}

// CastRay returns the closest collider hit within maxToi. With solid set,
// a ray starting inside a collider hits it at 0; otherwise it hits where
// it leaves. Colliders attached to exclude are skipped.
func (w *World) CastRay(ray Ray, maxToi float64, solid bool, exclude *RigidBody) (RayHit, bool) {
	best := RayHit{TimeOfImpact: math.Inf(1)}
	found := false

	for _, c := range w.colliders {
		if exclude != nil && c.parent == exclude {
			continue
		}
		var (
			toi float64
			ok  bool
		)
		if c.desc.Shape == ShapeCapsule {
			toi, ok = rayCapsule(ray, c, solid)
		} else {
			toi, ok = rayCuboid(ray, c, solid)
		}
		if ok && toi <= maxToi && toi < best.TimeOfImpact {
			best = RayHit{Collider: c, TimeOfImpact: toi}
			found = true
		}
	}
	return best, found
}

// rayCuboid is a slab test against the collider's box.
func rayCuboid(ray Ray, c *Collider, solid bool) (float64, bool) {
	lo, hi := c.AABB()
	tmin, tmax := math.Inf(-1), math.Inf(1)

	axes := [3][4]float64{
		{ray.Origin.X, ray.Dir.X, lo.X, hi.X},
		{ray.Origin.Y, ray.Dir.Y, lo.Y, hi.Y},
		{ray.Origin.Z, ray.Dir.Z, lo.Z, hi.Z},
	}
	for _, a := range axes {
		o, d, l, h := a[0], a[1], a[2], a[3]
		if d == 0 {
			if o < l || o > h {
				return 0, false
			}
			continue
		}
		t1, t2 := (l-o)/d, (h-o)/d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
	}

	return resolveInterval(tmin, tmax, solid)
}

// rayCapsule intersects the capsule as the union of its two end spheres
// and its cylindrical body, which covers it exactly.
func rayCapsule(ray Ray, c *Collider, solid bool) (float64, bool) {
	length := ray.Dir.Length()
	if length == 0 {
		return 0, false
	}
	dir := ray.Dir.Scale(1 / length)

	center := c.Center()
	up := Vector{Y: c.desc.HalfHeight}
	pa, pb := center.Sub(up), center.Add(up)
	r := c.desc.Radius

	enter, exit := math.Inf(1), math.Inf(-1)
	add := func(near, far float64) {
		enter = math.Min(enter, near)
		exit = math.Max(exit, far)
	}

	for _, p := range []Vector{pa, pb} {
		if near, far, ok := raySphere(ray.Origin, dir, p, r); ok {
			add(near, far)
		}
	}

	// Cylinder, keeping only roots that land between the caps.
	ba := pb.Sub(pa)
	oa := ray.Origin.Sub(pa)
	baba := ba.Dot(ba)
	bard := ba.Dot(dir)
	baoa := ba.Dot(oa)
	qa := baba - bard*bard
	if qa > 1e-12 {
		qb := baba*dir.Dot(oa) - baoa*bard
		qc := baba*oa.Dot(oa) - baoa*baoa - r*r*baba
		if h := qb*qb - qa*qc; h >= 0 {
			sq := math.Sqrt(h)
			for _, t := range []float64{(-qb - sq) / qa, (-qb + sq) / qa} {
				if y := baoa + t*bard; y >= 0 && y <= baba {
					add(t, t)
				}
			}
		}
	}

	if exit < enter {
		return 0, false
	}
	if pointSegmentDistance(ray.Origin, pa, pb) <= r {
		enter = math.Min(enter, 0)
	}
	toi, ok := resolveInterval(enter, exit, solid)
	return toi / length, ok
}

func raySphere(origin, dir, center Vector, r float64) (near, far float64, ok bool) {
	oc := origin.Sub(center)
	b := oc.Dot(dir)
	c := oc.Dot(oc) - r*r
	h := b*b - c
	if h < 0 {
		return 0, 0, false
	}
	sq := math.Sqrt(h)
	return -b - sq, -b + sq, true
}

func pointSegmentDistance(p, a, b Vector) float64 {
	ab := b.Sub(a)
	t := 0.0
	if l := ab.Dot(ab); l > 0 {
		t = clamp(p.Sub(a).Dot(ab)/l, 0, 1)
	}
	return p.Sub(a.Add(ab.Scale(t))).Length()
}

// resolveInterval turns an entry/exit interval into a time of impact.
func resolveInterval(enter, exit float64, solid bool) (float64, bool) {
	if exit < 0 || enter > exit {
		return 0, false
	}
	if enter >= 0 {
		return enter, true
	}
	if solid {
		return 0, true
	}
	return exit, true
}
