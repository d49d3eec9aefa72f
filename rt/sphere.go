package rt

import "math"

// Sphere is a shape defined by a center and radius in world space.
// Intersection uses the stable quadratic solver from math.cpp;
// light/position sampling falls back to uniform sampling of the full
// sphere surface (shape.cpp's default, rather than the tighter
// visible-cone strategy), which is unbiased but has higher variance when
// the reference point is close to a large sphere.
type Sphere struct {
	Center Point3
	Radius float64
	BSDF   BSDF
	Light  Light // non-nil if this sphere is also an area light's shape
}

func NewSphere(center Point3, radius float64, bsdf BSDF) *Sphere {
	return &Sphere{Center: center, Radius: math.Max(0, radius), BSDF: bsdf}
}

func (s *Sphere) PreliminaryHit(r Ray) PreliminaryIntersection {
	oc := r.Origin.Sub(s.Center)
	a := r.Direction.Len2()
	b := 2 * Dot(r.Direction, oc)
	c := oc.Len2() - s.Radius*s.Radius

	t0, t1, ok := SolveQuadratic(a, b, c)
	if !ok {
		return PreliminaryIntersection{}
	}

	t := t0
	if t < r.TMin || t > r.TMax {
		t = t1
		if t < r.TMin || t > r.TMax {
			return PreliminaryIntersection{}
		}
	}

	return PreliminaryIntersection{Valid: true, T: t, Shape: s}
}

func (s *Sphere) AnyHit(r Ray) bool {
	return s.PreliminaryHit(r).Valid
}

func (s *Sphere) ComputeSurfaceInteraction(r Ray, pi PreliminaryIntersection) SurfaceInteraction {
	p := r.At(pi.T)
	n := p.Sub(s.Center).Div(s.Radius)

	// Spherical UV parameterization: u from azimuth, v from polar angle.
	phi := math.Atan2(n.Y, n.X)
	if phi < 0 {
		phi += 2 * Pi
	}
	theta := math.Acos(Clamp(n.Z, -1, 1))

	wi := r.Direction.Neg().Unit()

	return SurfaceInteraction{
		Interaction: Interaction{Valid: true, T: pi.T, P: p, N: n},
		Shading:     NewFrame(n),
		Wi:          wi,
		UV:          Point2{X: phi / (2 * Pi), Y: theta / Pi},
		Shape:       s,
	}
}

func (s *Sphere) WorldBounds() AABB {
	r := Vec3{X: s.Radius, Y: s.Radius, Z: s.Radius}
	return NewAABBFromPoints(s.Center.Sub(r), s.Center.Add(r))
}

func (s *Sphere) Area() float64 {
	return 4 * Pi * s.Radius * s.Radius
}

func (s *Sphere) SamplePosition(timeSample float64, sample Point2) PositionSample {
	n := SquareToUniformSphere(sample)
	p := s.Center.Add(n.Scale(s.Radius))
	return PositionSample{P: p, N: n, PDF: 1 / s.Area(), Time: timeSample}
}

func (s *Sphere) PDFPosition(ps PositionSample) float64 {
	return 1 / s.Area()
}

func (s *Sphere) SampleDirection(ref Interaction, sample Point2) DirectionSample {
	return defaultSampleDirection(s, ref, sample)
}

func (s *Sphere) PDFDirection(ref Interaction, ds DirectionSample) float64 {
	return defaultPDFDirection(s, ref, ds)
}
