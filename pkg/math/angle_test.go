package math

import (
	"math"
	"testing"
)

const angleEpsilon = 1e-4

// sampleAngles covers each quadrant, the wrap points and a few multi-turn values.
var sampleAngles = []float32{
	0, 0.3, -0.3, 1.5, -1.5, 3, -3, Pi, -Pi, Pi - 0.01, -Pi + 0.01,
	4, -4, 7.5, -7.5, 13, -13, 100, -100, 1e6, -3e8,
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{0, 0},
		{Pi / 2, Pi / 2},
		{Pi, Pi},
		{-Pi, Pi},
		{3 * Pi / 2, -Pi / 2},
		{-3 * Pi / 2, Pi / 2},
		{5 * Pi, Pi},
		{TwoPi + 0.25, 0.25},
		{1e6, -0.35756417},
		{-1e6, 0.35756417},
		{3e8, -0.45509989},
		{-3e8, 0.45509989},
		{1e9, 0.57739546},
	}

	for _, tt := range tests {
		got := NormalizeAngle(tt.in)
		if got <= -Pi || got > Pi || AngleDistance(got, tt.want) > angleEpsilon {
			t.Errorf("NormalizeAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeAngleNonFinite(t *testing.T) {
	inf := float32(math.Inf(1))
	if got := NormalizeAngle(inf); got != inf {
		t.Errorf("NormalizeAngle(+Inf) = %v", got)
	}
	if got := NormalizeAngle(-inf); got != -inf {
		t.Errorf("NormalizeAngle(-Inf) = %v", got)
	}
	nan := float32(math.NaN())
	if got := NormalizeAngle(nan); !math.IsNaN(float64(got)) {
		t.Errorf("NormalizeAngle(NaN) = %v, want NaN", got)
	}
}

func TestNormalizeAngleRangeAndIdempotence(t *testing.T) {
	for _, a := range sampleAngles {
		n := NormalizeAngle(a)
		if n <= -Pi || n > Pi {
			t.Errorf("NormalizeAngle(%v) = %v, outside (-Pi, Pi]", a, n)
		}
		if again := NormalizeAngle(n); again != n {
			t.Errorf("NormalizeAngle not idempotent for %v: %v then %v", a, n, again)
		}
	}
}

func TestLerpAngleEndpoints(t *testing.T) {
	for _, a := range sampleAngles {
		for _, b := range sampleAngles {
			if got, want := LerpAngle(a, b, 0), NormalizeAngle(a); AngleDistance(got, want) > angleEpsilon {
				t.Errorf("LerpAngle(%v, %v, 0) = %v, want %v", a, b, got, want)
			}
			if got, want := LerpAngle(a, b, 1), NormalizeAngle(b); AngleDistance(got, want) > angleEpsilon {
				t.Errorf("LerpAngle(%v, %v, 1) = %v, want %v", a, b, got, want)
			}
		}
	}
}

func TestLerpAngleTakesShortArc(t *testing.T) {
	for _, a := range sampleAngles {
		for _, b := range sampleAngles {
			na, nb := NormalizeAngle(a), NormalizeAngle(b)
			minimal := AngleDistance(na, nb)

			for _, frac := range []float32{0.1, 0.25, 0.5, 0.9} {
				mid := LerpAngle(a, b, frac)
				travelled := AngleDistance(na, mid) + AngleDistance(mid, nb)
				if Abs(travelled-minimal) > 1e-3 {
					t.Errorf("LerpAngle(%v, %v, %v) = %v: path %v, minimal %v",
						a, b, frac, mid, travelled, minimal)
				}
				if travelled > Pi+angleEpsilon {
					t.Errorf("LerpAngle(%v, %v, %v) travelled %v > Pi", a, b, frac, travelled)
				}
			}
		}
	}
}

func TestLerpAngleAcrossSeam(t *testing.T) {
	// 170deg -> -170deg should pass through 180deg, not through 0.
	start := float32(170 * math.Pi / 180)
	end := float32(-170 * math.Pi / 180)

	mid := LerpAngle(start, end, 0.5)
	if AngleDistance(mid, Pi) > angleEpsilon {
		t.Errorf("LerpAngle across seam = %v, want ~Pi", mid)
	}
}

func TestLerpAngleConvergesExponentially(t *testing.T) {
	yaw := float32(0)
	target := float32(2.5)
	prev := AngleDistance(yaw, target)

	for i := 0; i < 200; i++ {
		yaw = LerpAngle(yaw, target, 0.1)
		d := AngleDistance(yaw, target)
		if d > prev+angleEpsilon {
			t.Fatalf("step %d: distance grew from %v to %v", i, prev, d)
		}
		prev = d
	}
	if prev > 1e-3 {
		t.Errorf("yaw did not converge, remaining %v", prev)
	}
}
