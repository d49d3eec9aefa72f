package rt

// DiffuseBSDF is a Lambertian reflector: constant BRDF value
// albedo/pi over the hemisphere, sampled with cosine-weighted importance
// sampling so that value/pdf reduces to exactly albedo. Ported from
// vislab/graphics/src/diffuse_bsdf.cpp.
type DiffuseBSDF struct {
	Reflectance Texture
}

func NewDiffuseBSDF(reflectance Texture) *DiffuseBSDF {
	return &DiffuseBSDF{Reflectance: reflectance}
}

func (b *DiffuseBSDF) Flags() BSDFFlags {
	return FlagDiffuseReflection | FlagFrontSide
}

func (b *DiffuseBSDF) Sample(si SurfaceInteraction, wo Vec3, sample Point2) (BSDFSample, Spectrum) {
	if CosTheta(wo) <= 0 {
		return BSDFSample{}, Spectrum{}
	}

	wi := SquareToCosineHemisphere(sample)
	pdf := SquareToCosineHemispherePdf(wi)
	if pdf <= 0 {
		return BSDFSample{}, Spectrum{}
	}

	bs := BSDFSample{
		Wo:          wi,
		PDF:         pdf,
		Eta:         1,
		SampledType: FlagDiffuseReflection,
	}
	// value/pdf = (albedo/pi * cosTheta) / (cosTheta/pi) = albedo
	weight := b.Reflectance.Eval(si.UV)
	return bs, weight
}

func (b *DiffuseBSDF) Eval(si SurfaceInteraction, wo, wi Vec3) Spectrum {
	if CosTheta(wo) <= 0 || CosTheta(wi) <= 0 {
		return Spectrum{}
	}
	return b.Reflectance.Eval(si.UV).Scale(InvPi * CosTheta(wi))
}

func (b *DiffuseBSDF) PDF(si SurfaceInteraction, wo, wi Vec3) float64 {
	if CosTheta(wo) <= 0 || CosTheta(wi) <= 0 {
		return 0
	}
	return SquareToCosineHemispherePdf(wi)
}
