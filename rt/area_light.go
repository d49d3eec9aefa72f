package rt

// AreaLight turns an arbitrary Shape into an emitter with constant
// outgoing radiance, grounded in vislab/graphics/src/area_light.cpp. The
// shape itself still participates in ordinary ray intersection (so a path
// that hits it directly sees its emission via Evaluate), while
// SampleDirection drives explicit light sampling for next-event
// estimation. SampleDirection only illuminates the side the sampled
// normal faces unless TwoSided is set; Evaluate returns Radiance for a
// hit on either side.
type AreaLight struct {
	Shape    Shape
	Radiance Spectrum
	TwoSided bool
}

func NewAreaLight(shape Shape, radiance Spectrum) *AreaLight {
	return &AreaLight{Shape: shape, Radiance: radiance}
}

func (l *AreaLight) Flags() LightFlags { return LightSurface }

func (l *AreaLight) SampleDirection(ref Interaction, sample Point2) (DirectionSample, Spectrum) {
	ds := l.Shape.SampleDirection(ref, sample)
	if ds.Distance <= 0 {
		return ds, Spectrum{}
	}

	cosLight := Dot(ds.N, ds.Direction.Neg())
	if !l.TwoSided && cosLight <= 0 {
		return ds, Spectrum{}
	}

	return ds, l.Radiance
}

func (l *AreaLight) PDFDirection(ref Interaction, ds DirectionSample) float64 {
	return l.Shape.PDFDirection(ref, ds)
}

// Evaluate returns this light's radiance as seen from a surface
// interaction that lies on its shape. It returns Radiance whichever side
// of the shape was hit and does not read TwoSided: Rectangle and Triangle
// flip their reported normal to face the incoming ray, so the interaction
// no longer records the side, and Sphere reports its outward normal.
func (l *AreaLight) Evaluate(si SurfaceInteraction) Spectrum {
	return l.Radiance
}
