package rt

import "math"

// Frame is an orthonormal tangent frame (S, T, N) used to transform
// directions between world space and a local shading space where the
// normal is the z axis. Ported from vislab/graphics/src/frame.cpp.
type Frame struct {
	S, T, N Vec3
}

// NewFrame builds a frame from an arbitrary unit normal, completing the
// tangent and bitangent with CoordinateSystem.
func NewFrame(n Vec3) Frame {
	s, t := CoordinateSystem(n)
	return Frame{S: s, T: t, N: n}
}

// NewFrameFull builds a frame from three already-orthonormal axes.
func NewFrameFull(s, t, n Vec3) Frame {
	return Frame{S: s, T: t, N: n}
}

// CoordinateSystem extends a unit vector n into an orthonormal basis,
// using the branch-stable construction of Duff, Burgess, Christensen,
// Hery, Kensler, Liani and Villemin, "Building an Orthonormal Basis,
// Revisited", JCGT 6(1) 2017 - avoids the singularity of the classic
// Hughes-Moller method near the poles.
func CoordinateSystem(n Vec3) (s, t Vec3) {
	sign := math.Copysign(1, n.Z)
	a := -1 / (sign + n.Z)
	b := n.X * n.Y * a
	s = Vec3{X: 1 + sign*n.X*n.X*a, Y: sign * b, Z: -sign * n.X}
	t = Vec3{X: b, Y: sign + n.Y*n.Y*a, Z: -n.Y}
	return s, t
}

// ToLocal expresses world-space vector v in this frame's local basis.
func (f Frame) ToLocal(v Vec3) Vec3 {
	return Vec3{X: Dot(v, f.S), Y: Dot(v, f.T), Z: Dot(v, f.N)}
}

// ToWorld expresses local-space vector v (components along S, T, N) in
// world space.
func (f Frame) ToWorld(v Vec3) Vec3 {
	return f.S.Scale(v.X).Add(f.T.Scale(v.Y)).Add(f.N.Scale(v.Z))
}

// The following are the standard local-shading-frame trig helpers: with
// the frame's z axis aligned to the surface normal, the angle against the
// normal (theta) and the azimuthal angle in the tangent plane (phi) show
// up throughout BSDF and warp code, so it is cheaper and clearer to read
// them directly off the local-space vector's components than to
// reconstruct angles each time.

func CosTheta(v Vec3) float64  { return v.Z }
func Cos2Theta(v Vec3) float64 { return v.Z * v.Z }
func AbsCosTheta(v Vec3) float64 {
	return math.Abs(v.Z)
}

func Sin2Theta(v Vec3) float64 {
	return math.Max(0, 1-Cos2Theta(v))
}
func SinTheta(v Vec3) float64 {
	return math.Sqrt(Sin2Theta(v))
}

func TanTheta(v Vec3) float64 {
	t := Sin2Theta(v)
	if t <= 0 {
		return 0
	}
	return math.Sqrt(t) / v.Z
}
func Tan2Theta(v Vec3) float64 {
	return Sin2Theta(v) / Cos2Theta(v)
}

func SinCosPhi(v Vec3) (sinPhi, cosPhi float64) {
	sinTheta := SinTheta(v)
	if sinTheta == 0 {
		return 0, 1
	}
	cosPhi = Clamp(v.X/sinTheta, -1, 1)
	sinPhi = Clamp(v.Y/sinTheta, -1, 1)
	return sinPhi, cosPhi
}

func CosPhi(v Vec3) float64 {
	_, cosPhi := SinCosPhi(v)
	return cosPhi
}
func SinPhi(v Vec3) float64 {
	sinPhi, _ := SinCosPhi(v)
	return sinPhi
}

func Sin2CosPhi(v Vec3) (sin2Phi, cos2Phi float64) {
	sinTheta2 := Sin2Theta(v)
	if sinTheta2 == 0 {
		return 0, 1
	}
	cos2Phi = Clamp(v.X*v.X/sinTheta2, 0, 1)
	sin2Phi = Clamp(v.Y*v.Y/sinTheta2, 0, 1)
	return sin2Phi, cos2Phi
}

// SameHemisphere reports whether two local-space vectors lie on the same
// side of the z=0 plane, used to branch reflection vs. transmission.
func SameHemisphere(a, b Vec3) bool {
	return a.Z*b.Z > 0
}
