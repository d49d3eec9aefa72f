package rt

// BSDFFlags is a bitmask describing what kind of scattering a BSDF (or one
// of its lobes) performs, mirroring vislab/graphics/include/vislab/graphics/
// bsdf.hpp's EBSDFFlag enum. Integrators use these to decide, e.g.,
// whether light-sampling MIS even makes sense against a delta lobe.
type BSDFFlags uint32

const (
	FlagNone BSDFFlags = 0

	FlagDiffuseReflection BSDFFlags = 1 << iota
	FlagGlossyReflection
	FlagDeltaReflection
	FlagDiffuseTransmission
	FlagGlossyTransmission
	FlagDeltaTransmission
	FlagNull
	FlagAnisotropic
	FlagSpatiallyVarying
	FlagNonSymmetric
	FlagFrontSide
	FlagBackSide
)

// Smooth is the union of lobes with a well-defined finite density (i.e.
// everything that isn't a delta spike), used to decide whether MIS weights
// against light sampling are meaningful.
const Smooth = FlagDiffuseReflection | FlagGlossyReflection | FlagDiffuseTransmission | FlagGlossyTransmission

// Delta is the union of lobes that only scatter into a single direction
// (mirror reflection, perfect transmission).
const Delta = FlagDeltaReflection | FlagDeltaTransmission

func (f BSDFFlags) Has(flag BSDFFlags) bool { return f&flag != 0 }

// BSDF is the interface implemented by every bidirectional scattering
// distribution function. wo is always the outgoing direction (towards the
// camera / previous path vertex) in local shading space; wi/sampled
// directions likewise. Grounded in bsdf.hpp's sample/eval/pdf contract,
// which vislab's diffuse_bsdf.cpp and dielectric_bsdf.cpp both implement.
type BSDF interface {
	// Sample importance-samples an outgoing direction given incoming wo
	// and two uniform random numbers. Returns the sample together with
	// the already-divided-by-pdf "weight" (value/pdf), matching
	// dielectric_bsdf.cpp's convention of returning weight directly so
	// callers never divide by a possibly-zero pdf themselves.
	Sample(si SurfaceInteraction, wo Vec3, sample Point2) (BSDFSample, Spectrum)
	// Eval evaluates the BSDF value f(wo, wi) already multiplied by the
	// cosine of wi with the shading normal, for a pair of smooth
	// directions (never called for pure delta BSDFs against an
	// independently-sampled wi, since the probability of picking the
	// exact delta direction is zero).
	Eval(si SurfaceInteraction, wo, wi Vec3) Spectrum
	// PDF is the solid-angle density Sample would assign to wi given wo.
	PDF(si SurfaceInteraction, wo, wi Vec3) float64
	// Flags describes the lobes this BSDF can produce.
	Flags() BSDFFlags
}

// Spectrum is the renderer's radiometric quantity type; a plain RGB triple
// is sufficient for the non-spectral rendering this package targets.
type Spectrum = Vec3
