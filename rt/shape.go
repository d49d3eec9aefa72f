package rt

// Shape is the common interface implemented by every piece of renderable
// geometry (sphere, rectangle, triangle mesh). Grounded in
// vislab/graphics/include/vislab/graphics/shape.hpp, which splits
// intersection into a cheap PreliminaryHit phase and a more expensive
// ComputeSurfaceInteraction phase so acceleration structures only pay the
// full shading cost for the winning hit.
type Shape interface {
	// PreliminaryHit finds the closest intersection of ray r with this
	// shape within [r.TMin, r.TMax].
	PreliminaryHit(r Ray) PreliminaryIntersection
	// AnyHit reports whether r intersects this shape at all, without
	// computing where - used for shadow rays.
	AnyHit(r Ray) bool
	// ComputeSurfaceInteraction promotes a PreliminaryIntersection
	// (known to belong to this shape) into full shading data.
	ComputeSurfaceInteraction(r Ray, pi PreliminaryIntersection) SurfaceInteraction
	// WorldBounds returns a conservative world-space bounding box.
	WorldBounds() AABB
	// SamplePosition draws a point on the shape's surface with respect to
	// area measure.
	SamplePosition(timeSample float64, sample Point2) PositionSample
	// PDFPosition is the density (area measure) of SamplePosition at ps.
	PDFPosition(ps PositionSample) float64
	// SampleDirection draws a direction from ref towards a point on the
	// shape, returning the pdf already converted to solid-angle measure.
	SampleDirection(ref Interaction, sample Point2) DirectionSample
	// PDFDirection is the solid-angle density of SampleDirection's result
	// ds, as seen from ref.
	PDFDirection(ref Interaction, ds DirectionSample) float64
	// Area is the shape's total surface area, used by uniform-area
	// position sampling's 1/Area density.
	Area() float64
}

// defaultSampleDirection implements Shape.SampleDirection in terms of
// SamplePosition for shapes that don't have a more efficient
// solid-angle-preserving sampling strategy (e.g. a sphere viewed from
// outside could importance-sample the visible cone, but area sampling is
// what shape.cpp falls back to, and what the Rectangle/Triangle shapes
// use exclusively).
func defaultSampleDirection(s Shape, ref Interaction, sample Point2) DirectionSample {
	ps := s.SamplePosition(0, sample)
	d := ps.P.Sub(ref.P)
	dist2 := d.Len2()
	if dist2 == 0 {
		return DirectionSample{PositionSample: ps}
	}
	dist := SafeSqrt(dist2)
	dir := d.Div(dist)

	pdfDir := ps.PDF * dist2 / AbsDot(ps.N, dir.Neg())
	if AbsDot(ps.N, dir.Neg()) == 0 {
		pdfDir = 0
	}

	return DirectionSample{
		PositionSample: PositionSample{P: ps.P, N: ps.N, PDF: pdfDir, UV: ps.UV},
		Direction:      dir,
		Distance:       dist,
	}
}

func defaultPDFDirection(s Shape, ref Interaction, ds DirectionSample) float64 {
	denom := AbsDot(ds.N, ds.Direction.Neg())
	if denom == 0 {
		return 0
	}
	pdfArea := s.PDFPosition(ds.PositionSample)
	return pdfArea * ds.Distance * ds.Distance / denom
}
