package rt

// Interaction is the common base of any point the renderer reasons
// about: a surface hit, a sampled light position, or a pinhole camera
// origin. Grounded in vislab/graphics/include/vislab/graphics/interaction.hpp.
type Interaction struct {
	// Valid is false for a non-interaction (e.g. a ray that escaped to
	// infinity without hitting anything).
	Valid bool
	// T is the ray parameter at which this interaction occurred.
	T float64
	// P is the world-space position.
	P Point3
	// N is the world-space geometric normal, zero for interactions that
	// have no associated surface (e.g. a point light).
	N Vec3
}

// IsValid reports whether this is an actual interaction, mirroring the
// C++ is_valid() helper so call sites read the same either way.
func (it Interaction) IsValid() bool { return it.Valid }

// SpawnRay builds a ray leaving this interaction's position in direction
// d, offset by RayEpsilon along the geometric normal so the new ray does
// not immediately re-intersect its own surface (self-shadowing).
func (it Interaction) SpawnRay(d Vec3) Ray {
	offset := it.N.Scale(RayEpsilon)
	if Dot(d, it.N) < 0 {
		offset = offset.Neg()
	}
	return NewRay(it.P.Add(offset), d, 0)
}

// SpawnRayTo builds a shadow ray from this interaction towards target,
// clipped just short of it so the intersection test cannot erroneously
// report the light itself as an occluder. Mirrors scene.cpp's shadow ray
// construction: the origin is offset by RayEpsilon along the normal and
// TMax stops ShadowEpsilon (relative to the distance) short of target.
func (it Interaction) SpawnRayTo(target Point3) Ray {
	d := target.Sub(it.P)
	dist := d.Len()
	dir := d.Div(dist)
	offset := it.N.Scale(RayEpsilon)
	if Dot(dir, it.N) < 0 {
		offset = offset.Neg()
	}
	return NewRayMinMax(it.P.Add(offset), dir, 0, dist*(1-ShadowEpsilon), 0)
}

// SurfaceInteraction extends Interaction with the local shading data a
// BSDF needs: the shading frame, the outgoing direction (towards the
// ray's origin), and a back-pointer to the shape that was hit.
type SurfaceInteraction struct {
	Interaction
	Shading Frame
	Wi      Vec3 // incident direction in world space, pointing away from P
	UV      Point2
	Shape   Shape
}

// ToLocal/ToWorld convert a world-space direction into/out of the local
// shading frame at this interaction, used by BSDF evaluation.
func (si SurfaceInteraction) ToLocal(v Vec3) Vec3 { return si.Shading.ToLocal(v) }
func (si SurfaceInteraction) ToWorld(v Vec3) Vec3 { return si.Shading.ToWorld(v) }

// PreliminaryIntersection is the cheap result of a broad-phase/shape
// intersection test: enough to know a hit occurred and at what
// parameter, but not yet enough to shade it. ComputeSurfaceInteraction
// does the (potentially expensive) remaining work only for the winning
// hit, matching shape.cpp's two-phase preliminaryHit/computeSurfaceInteraction
// split.
type PreliminaryIntersection struct {
	Valid     bool
	T         float64
	Shape     Shape
	PrimIndex int // used by Mesh to record which triangle was hit
}

func (pi PreliminaryIntersection) IsValid() bool { return pi.Valid }

// ComputeSurfaceInteraction promotes a preliminary hit along ray r into a
// full SurfaceInteraction.
func (pi PreliminaryIntersection) ComputeSurfaceInteraction(r Ray) SurfaceInteraction {
	if !pi.Valid {
		return SurfaceInteraction{}
	}
	return pi.Shape.ComputeSurfaceInteraction(r, pi)
}

// PositionSample is the result of sampling a point on a shape's surface
// with respect to area measure, used by light sampling.
type PositionSample struct {
	P    Point3
	N    Vec3
	PDF  float64 // density with respect to surface area
	UV   Point2
	Time float64
}

// DirectionSample extends PositionSample with the direction from a
// reference point to the sampled position and the pdf converted to solid
// angle measure, matching shape.cpp's sampleDirection/pdfDirection pair.
type DirectionSample struct {
	PositionSample
	Direction Vec3
	Distance  float64
	// DeltaLight marks samples from lights with a Dirac-delta position or
	// direction (point lights), whose pdf is meaningless to MIS against.
	DeltaLight bool
}

// BSDFSample is the result of importance-sampling a BSDF: the sampled
// direction (in local shading space), its pdf, and the flags describing
// the lobe that was sampled.
type BSDFSample struct {
	Wo          Vec3
	PDF         float64
	Eta         float64
	SampledType BSDFFlags
}
