package rt

// Scene bundles the shapes, lights and camera that make up a renderable
// world. Ported from vislab/graphics/src/scene.cpp: intersect/anyHit
// delegate to an optional acceleration structure, and
// sampleLightDirection/pdfLightDirection implement uniform light-index
// selection with the probability folded into the returned pdf.
type Scene struct {
	Shapes []Shape
	Lights []Light
	Camera *Camera
	bvh    Shape // optional acceleration structure wrapping Shapes; nil uses linear scan
}

func NewScene(shapes []Shape, lights []Light, camera *Camera) *Scene {
	return &Scene{Shapes: shapes, Lights: lights, Camera: camera}
}

// BuildAccelerationTree wraps the scene's shapes in a BVH, matching
// scene.cpp's buildAccelerationTree. Safe to call with any number of
// shapes; small scenes simply get a shallow tree.
func (s *Scene) BuildAccelerationTree() {
	if len(s.Shapes) == 0 {
		return
	}
	s.bvh = NewBVH(s.Shapes)
}

func (s *Scene) intersectSource() Shape {
	if s.bvh != nil {
		return s.bvh
	}
	return linearShapeList(s.Shapes)
}

// Intersect finds the closest surface interaction along r, if any.
func (s *Scene) Intersect(r Ray) SurfaceInteraction {
	GlobalRenderStats.RayCount.Add(1)
	pi := s.intersectSource().PreliminaryHit(r)
	if !pi.Valid {
		return SurfaceInteraction{}
	}
	return pi.ComputeSurfaceInteraction(r)
}

// AnyHit reports whether r intersects anything in [r.TMin, r.TMax],
// used for shadow-ray visibility queries.
func (s *Scene) AnyHit(r Ray) bool {
	GlobalRenderStats.ShadowRays.Add(1)
	return s.intersectSource().AnyHit(r)
}

// SampleLightDirection picks one of the scene's lights uniformly and
// samples a direction from ref towards it, rescaling the returned pdf by
// 1/len(Lights) so it already accounts for the discrete light-selection
// probability - matching scene.cpp's sampleLightDirection exactly, so
// callers never need to separately track which light was chosen.
func (s *Scene) SampleLightDirection(ref Interaction, lightSample float64, dirSample Point2) (DirectionSample, Spectrum, Light) {
	n := len(s.Lights)
	if n == 0 {
		return DirectionSample{}, Spectrum{}, nil
	}

	idx := int(lightSample * float64(n))
	if idx >= n {
		idx = n - 1
	}
	light := s.Lights[idx]

	ds, radiance := light.SampleDirection(ref, dirSample)
	if ds.PDF > 0 {
		ds.PDF /= float64(n)
	}
	return ds, radiance, light
}

// PDFLightDirection is the solid-angle density SampleLightDirection would
// assign to ds if it had chosen light explicitly, rescaled by the
// 1/len(Lights) selection probability.
func (s *Scene) PDFLightDirection(ref Interaction, light Light, ds DirectionSample) float64 {
	if len(s.Lights) == 0 {
		return 0
	}
	return light.PDFDirection(ref, ds) / float64(len(s.Lights))
}

// linearShapeList is the trivial Shape implementation used when no BVH
// has been built: a flat scan over every shape, closest hit wins.
type linearShapeList []Shape

func (l linearShapeList) PreliminaryHit(r Ray) PreliminaryIntersection {
	best := PreliminaryIntersection{}
	closest := r
	for _, shape := range l {
		pi := shape.PreliminaryHit(closest)
		if pi.Valid {
			best = pi
			closest.TMax = pi.T
		}
	}
	return best
}

func (l linearShapeList) AnyHit(r Ray) bool {
	for _, shape := range l {
		if shape.AnyHit(r) {
			return true
		}
	}
	return false
}

func (l linearShapeList) ComputeSurfaceInteraction(r Ray, pi PreliminaryIntersection) SurfaceInteraction {
	return pi.Shape.ComputeSurfaceInteraction(r, pi)
}

func (l linearShapeList) WorldBounds() AABB {
	box := NewAABB()
	for _, shape := range l {
		box = NewAABBFromBoxes(box, shape.WorldBounds())
	}
	return box
}

func (l linearShapeList) Area() float64 { return 0 }
func (l linearShapeList) SamplePosition(timeSample float64, sample Point2) PositionSample {
	return PositionSample{}
}
func (l linearShapeList) PDFPosition(ps PositionSample) float64 { return 0 }
func (l linearShapeList) SampleDirection(ref Interaction, sample Point2) DirectionSample {
	return DirectionSample{}
}
func (l linearShapeList) PDFDirection(ref Interaction, ds DirectionSample) float64 { return 0 }
