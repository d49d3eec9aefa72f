package rt

// PointLight emits uniform radiant intensity in all directions from a
// single point, a Dirac delta in position. Ported from
// vislab/graphics/src/point_light.cpp.
type PointLight struct {
	Position  Point3
	Intensity Spectrum
}

func NewPointLight(position Point3, intensity Spectrum) *PointLight {
	return &PointLight{Position: position, Intensity: intensity}
}

func (l *PointLight) Flags() LightFlags { return LightDeltaPosition }

func (l *PointLight) SampleDirection(ref Interaction, sample Point2) (DirectionSample, Spectrum) {
	d := l.Position.Sub(ref.P)
	dist2 := d.Len2()
	dist := SafeSqrt(dist2)
	dir := d
	if dist > 0 {
		dir = d.Div(dist)
	}

	ds := DirectionSample{
		PositionSample: PositionSample{P: l.Position, N: Vec3{}, PDF: 1},
		Direction:      dir,
		Distance:       dist,
		DeltaLight:     true,
	}

	var radiance Spectrum
	if dist2 > 0 {
		radiance = l.Intensity.Scale(1 / dist2)
	}
	return ds, radiance
}

func (l *PointLight) PDFDirection(ref Interaction, ds DirectionSample) float64 {
	return 0
}

func (l *PointLight) Evaluate(si SurfaceInteraction) Spectrum {
	return Spectrum{}
}
