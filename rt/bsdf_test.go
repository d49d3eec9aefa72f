package rt

import (
	"math"
	"math/rand"
	"testing"
)

// TestDiffuseBSDFEnergyConservation estimates the hemispherical-directional
// reflectance of a Lambertian BSDF via Monte Carlo integration: the
// average of the weights (value*cosTheta/pdf) that Sample returns for
// BSDF-sampled directions, which should equal the
// albedo (spec.md's energy-conservation property for a Lambertian
// reflector).
func TestDiffuseBSDFEnergyConservation(t *testing.T) {
	albedo := Spectrum{X: 0.7, Y: 0.7, Z: 0.7}
	bsdf := NewDiffuseBSDF(NewConstTexture(albedo))
	si := SurfaceInteraction{Shading: NewFrame(Vec3{X: 0, Y: 0, Z: 1})}
	wo := Vec3{X: 0, Y: 0, Z: 1}
	rng := rand.New(rand.NewSource(41))

	sum := Spectrum{}
	const n = 20000
	for i := 0; i < n; i++ {
		sample := Point2{X: rng.Float64(), Y: rng.Float64()}
		bs, weight := bsdf.Sample(si, wo, sample)
		if bs.PDF <= 0 {
			continue
		}
		sum = sum.Add(weight)
	}
	estimate := sum.Scale(1 / float64(n))

	if math.Abs(estimate.X-albedo.X) > 0.02 {
		t.Errorf("estimated reflectance %v, want close to albedo %v", estimate, albedo)
	}
}

func TestDiffuseBSDFEvalSampleConsistency(t *testing.T) {
	bsdf := NewDiffuseBSDF(NewConstTexture(Spectrum{X: 0.5, Y: 0.5, Z: 0.5}))
	si := SurfaceInteraction{Shading: NewFrame(Vec3{X: 0, Y: 0, Z: 1})}
	wo := Vec3{X: 0, Y: 0, Z: 1}
	wi := Vec3{X: 0, Y: 0, Z: 1}

	f := bsdf.Eval(si, wo, wi)
	pdf := bsdf.PDF(si, wo, wi)
	want := 0.5 * InvPi
	if math.Abs(f.X-want) > 1e-9 {
		t.Errorf("Eval = %v, want %v", f.X, want)
	}
	wantPdf := InvPi // cos(0)/pi
	if math.Abs(pdf-wantPdf) > 1e-9 {
		t.Errorf("PDF = %v, want %v", pdf, wantPdf)
	}
}

func TestDiffuseBSDFZeroBelowHorizon(t *testing.T) {
	bsdf := NewDiffuseBSDF(NewConstTexture(Spectrum{X: 1, Y: 1, Z: 1}))
	si := SurfaceInteraction{Shading: NewFrame(Vec3{X: 0, Y: 0, Z: 1})}
	below := Vec3{X: 0, Y: 0, Z: -1}
	above := Vec3{X: 0, Y: 0, Z: 1}

	if f := bsdf.Eval(si, below, above); !f.IsZero() {
		t.Errorf("Eval with wo below horizon = %v, want zero", f)
	}
	bs, weight := bsdf.Sample(si, below, Point2{X: 0.3, Y: 0.3})
	if bs.PDF != 0 || !weight.IsZero() {
		t.Error("Sample with wo below horizon should produce a zero sample")
	}
}

func TestDielectricBSDFReflectTransmitSplitMatchesFresnel(t *testing.T) {
	bsdf := NewDielectricBSDF(1.5)
	si := SurfaceInteraction{}
	wo := Vec3{X: 0, Y: 0, Z: 1}

	rng := rand.New(rand.NewSource(42))
	reflectCount, transmitCount := 0, 0
	const n = 10000
	for i := 0; i < n; i++ {
		bs, _ := bsdf.Sample(si, wo, Point2{X: rng.Float64(), Y: rng.Float64()})
		if bs.SampledType.Has(FlagDeltaReflection) {
			reflectCount++
		} else {
			transmitCount++
		}
	}
	F, _, _, _ := Fresnel(CosTheta(wo), 1.5)
	frac := float64(reflectCount) / n
	if math.Abs(frac-F) > 0.02 {
		t.Errorf("reflected fraction %v, want close to Fresnel reflectance %v", frac, F)
	}
	if reflectCount+transmitCount != n {
		t.Fatal("every sample should be either reflection or transmission")
	}
}

func TestDielectricBSDFEvalPDFAlwaysZero(t *testing.T) {
	bsdf := NewDielectricBSDF(1.5)
	si := SurfaceInteraction{}
	wo := Vec3{X: 0, Y: 0, Z: 1}
	wi := Vec3{X: 0, Y: 0, Z: -1}
	if f := bsdf.Eval(si, wo, wi); !f.IsZero() {
		t.Errorf("Eval on a delta BSDF = %v, want zero", f)
	}
	if pdf := bsdf.PDF(si, wo, wi); pdf != 0 {
		t.Errorf("PDF on a delta BSDF = %v, want zero", pdf)
	}
}
