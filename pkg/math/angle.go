package math

import "math"

const (
	// Pi as float32.
	Pi = float32(math.Pi)
	// TwoPi is a full turn in radians.
	TwoPi = 2 * Pi
)

// NormalizeAngle wraps an angle in radians into (-Pi, Pi]. NaN and
// infinities are returned as given.
func NormalizeAngle(angle float32) float32 {
	if angle > -Pi && angle <= Pi {
		return angle
	}
	a := float64(angle)
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return angle
	}
	n := float32(math.Remainder(a, 2*math.Pi))
	if n <= -Pi {
		n += TwoPi
	}
	return n
}

// LerpAngle interpolates from start to end by t along the shorter arc.
// The result is normalized; t=0 yields start and t=1 yields end.
func LerpAngle(start, end, t float32) float32 {
	start = NormalizeAngle(start)
	end = NormalizeAngle(end)

	if Abs(end-start) > Pi {
		if end > start {
			start += TwoPi
		} else {
			end += TwoPi
		}
	}

	return NormalizeAngle(start + (end-start)*t)
}

// AngleDistance returns the unsigned shortest arc between two angles.
func AngleDistance(a, b float32) float32 {
	d := Abs(NormalizeAngle(b - a))
	return d
}

// Abs returns |v|.
func Abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// Sin is math.Sin over float32.
func Sin(a float32) float32 {
	return float32(math.Sin(float64(a)))
}

// Cos is math.Cos over float32.
func Cos(a float32) float32 {
	return float32(math.Cos(float64(a)))
}

// Atan2 is math.Atan2 over float32.
func Atan2(y, x float32) float32 {
	return float32(math.Atan2(float64(y), float64(x)))
}
