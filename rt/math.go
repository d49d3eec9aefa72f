package rt

import "math"

// Point2 is a 2D point/sample, used for pixel coordinates and the unit
// square samples Sampler.Next2D draws for warping functions.
type Point2 struct {
	X, Y float64
}

func NewPoint2(x, y float64) Point2 { return Point2{X: x, Y: y} }

// Numerical tolerances, grounded in vislab/graphics/src/math.cpp. Kept as
// named constants rather than magic numbers scattered through shape and
// scene code.
const (
	Epsilon       = 1e-4
	RayEpsilon    = 1e-4
	ShadowEpsilon = 1e-3
)

// SafeSqrt clamps negative input to zero before taking the square root,
// guarding against the small negative values that floating point round-off
// produces at the edge of a valid domain (math.cpp's safe_sqrt).
func SafeSqrt(x float64) float64 {
	if x < 0 {
		return 0
	}
	return math.Sqrt(x)
}

// SolveQuadratic solves a*t^2 + b*t + c = 0 for real roots, returning them
// ordered t0 <= t1. ok is false when the discriminant is negative or when
// a and b are both zero; with a == 0 and b != 0 the single linear root is
// returned as both t0 and t1. Ported from math.cpp's solveQuadratic, which uses the
// numerically stable form (avoiding catastrophic cancellation) rather than
// the textbook formula.
func SolveQuadratic(a, b, c float64) (t0, t1 float64, ok bool) {
	if a == 0 {
		if b == 0 {
			return 0, 0, false
		}
		t0 = -c / b
		return t0, t0, true
	}
	discrim := b*b - 4*a*c
	if discrim < 0 {
		return 0, 0, false
	}
	rootDiscrim := math.Sqrt(discrim)
	var q float64
	if b < 0 {
		q = -0.5 * (b - rootDiscrim)
	} else {
		q = -0.5 * (b + rootDiscrim)
	}
	t0 = q / a
	t1 = c / q
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	return t0, t1, true
}

func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func Lerp(t, a, b float64) float64 {
	return (1-t)*a + t*b
}
