package rt

// DielectricBSDF is a perfectly smooth dielectric interface (glass,
// water): every incident direction reflects or refracts to exactly one
// outgoing direction, chosen stochastically with probability equal to the
// Fresnel reflectance. Ported from vislab/graphics/src/dielectric_bsdf.cpp.
type DielectricBSDF struct {
	// Eta is the interior/exterior index of refraction ratio.
	Eta float64
}

func NewDielectricBSDF(eta float64) *DielectricBSDF {
	return &DielectricBSDF{Eta: eta}
}

func (b *DielectricBSDF) Flags() BSDFFlags {
	return FlagDeltaReflection | FlagDeltaTransmission | FlagFrontSide | FlagBackSide | FlagNonSymmetric
}

func (b *DielectricBSDF) Sample(si SurfaceInteraction, wo Vec3, sample Point2) (BSDFSample, Spectrum) {
	cosThetaI := CosTheta(wo)
	F, cosThetaT, etaIt, etaTi := Fresnel(cosThetaI, b.Eta)

	if sample.X <= F {
		// Reflect.
		wi := Reflect(wo)
		bs := BSDFSample{Wo: wi, PDF: F, Eta: 1, SampledType: FlagDeltaReflection}
		return bs, Spectrum{X: 1, Y: 1, Z: 1}
	}

	// Refract.
	wi := Refract(wo, cosThetaT, etaIt)
	bs := BSDFSample{Wo: wi, PDF: 1 - F, Eta: etaIt, SampledType: FlagDeltaTransmission}

	// Radiance carried back towards wo scales by (eta on wo's side / eta on
	// the transmitted side)^2 = etaTi^2 when crossing into a denser or
	// sparser medium, to keep the transported quantity (radiance divided
	// by eta^2 is what's actually conserved along a ray) consistent -
	// this is the NonSymmetric correction called out in bsdf.hpp.
	weight := Spectrum{X: 1, Y: 1, Z: 1}.Scale(etaTi * etaTi)
	return bs, weight
}

// Eval/PDF are always zero: a dielectric's reflection and transmission
// lobes are Dirac deltas, so the probability of an independently chosen
// wi landing exactly on them is zero. Integrators must special-case
// Delta-flagged BSDFs rather than calling Eval/PDF against them.
func (b *DielectricBSDF) Eval(si SurfaceInteraction, wo, wi Vec3) Spectrum {
	return Spectrum{}
}

func (b *DielectricBSDF) PDF(si SurfaceInteraction, wo, wi Vec3) float64 {
	return 0
}
