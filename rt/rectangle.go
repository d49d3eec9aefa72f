package rt

// Rectangle is a planar quad of unit size, spanning [-0.5, 0.5] along the
// local x/y axes at local z=0, with the local normal pointing along +Z.
// Arbitrary position/size/orientation comes from composing an
// object-to-world Transform (scale, rotate, translate), matching the
// scene-building convention in pbr/common/src/scenes.cpp where every wall
// of the Cornell box is "a unit Rectangle with a transform". Ported from
// vislab/graphics/src/rectangle.cpp.
type Rectangle struct {
	ObjectToWorld Transform
	BSDF          BSDF
	Light         Light
}

func NewRectangle(objectToWorld Transform, bsdf BSDF) *Rectangle {
	return &Rectangle{ObjectToWorld: objectToWorld, BSDF: bsdf}
}

func (r *Rectangle) worldToObject() Transform { return r.ObjectToWorld.Inverse() }

func (rect *Rectangle) PreliminaryHit(r Ray) PreliminaryIntersection {
	local := rect.worldToObject().Ray(r)

	// Local plane is z=0; solve local.Origin.Z + t*local.Direction.Z = 0.
	if local.Direction.Z == 0 {
		return PreliminaryIntersection{}
	}
	t := -local.Origin.Z / local.Direction.Z
	if t < r.TMin || t > r.TMax {
		return PreliminaryIntersection{}
	}

	p := local.At(t)
	if p.X < -0.5 || p.X > 0.5 || p.Y < -0.5 || p.Y > 0.5 {
		return PreliminaryIntersection{}
	}

	return PreliminaryIntersection{Valid: true, T: t, Shape: rect}
}

func (rect *Rectangle) AnyHit(r Ray) bool {
	return rect.PreliminaryHit(r).Valid
}

func (rect *Rectangle) ComputeSurfaceInteraction(r Ray, pi PreliminaryIntersection) SurfaceInteraction {
	p := r.At(pi.T)

	localP := rect.worldToObject().Point(p)
	uv := Point2{X: localP.X + 0.5, Y: localP.Y + 0.5}

	n := rect.ObjectToWorld.Normal(Vec3{X: 0, Y: 0, Z: 1}).Unit()
	wi := r.Direction.Neg().Unit()
	if Dot(wi, n) < 0 {
		n = n.Neg()
	}

	return SurfaceInteraction{
		Interaction: Interaction{Valid: true, T: pi.T, P: p, N: n},
		Shading:     NewFrame(n),
		Wi:          wi,
		UV:          uv,
		Shape:       rect,
	}
}

func (rect *Rectangle) WorldBounds() AABB {
	local := NewAABBFromPoints(Point3{X: -0.5, Y: -0.5, Z: 0}, Point3{X: 0.5, Y: 0.5, Z: 0})
	return rect.ObjectToWorld.Bounds(local)
}

func (rect *Rectangle) Area() float64 {
	// The unit square's area scales with the local x/y basis vectors'
	// lengths after the object-to-world transform; for the axis-aligned
	// scale transforms used throughout this package that's simply the
	// transformed edge lengths' product.
	ex := rect.ObjectToWorld.Vector(Vec3{X: 1, Y: 0, Z: 0})
	ey := rect.ObjectToWorld.Vector(Vec3{X: 0, Y: 1, Z: 0})
	return Cross(ex, ey).Len()
}

func (rect *Rectangle) SamplePosition(timeSample float64, sample Point2) PositionSample {
	local := Point3{X: sample.X - 0.5, Y: sample.Y - 0.5, Z: 0}
	p := rect.ObjectToWorld.Point(local)
	n := rect.ObjectToWorld.Normal(Vec3{X: 0, Y: 0, Z: 1}).Unit()
	return PositionSample{P: p, N: n, PDF: 1 / rect.Area(), UV: sample, Time: timeSample}
}

func (rect *Rectangle) PDFPosition(ps PositionSample) float64 {
	return 1 / rect.Area()
}

func (rect *Rectangle) SampleDirection(ref Interaction, sample Point2) DirectionSample {
	return defaultSampleDirection(rect, ref, sample)
}

func (rect *Rectangle) PDFDirection(ref Interaction, ds DirectionSample) float64 {
	return defaultPDFDirection(rect, ref, ds)
}
