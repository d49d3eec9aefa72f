package rt

import (
	"math"
	"testing"
)

func TestPointLightInverseSquareFalloff(t *testing.T) {
	light := NewPointLight(Point3{X: 0, Y: 0, Z: 0}, Spectrum{X: 4, Y: 4, Z: 4})
	near := Interaction{P: Point3{X: 1, Y: 0, Z: 0}}
	far := Interaction{P: Point3{X: 2, Y: 0, Z: 0}}

	_, radianceNear := light.SampleDirection(near, Point2{})
	_, radianceFar := light.SampleDirection(far, Point2{})

	// dist=1 -> intensity/1 = 4; dist=2 -> intensity/4 = 1.
	if math.Abs(radianceNear.X-4) > 1e-9 {
		t.Errorf("radiance at dist=1: %v, want 4", radianceNear.X)
	}
	if math.Abs(radianceFar.X-1) > 1e-9 {
		t.Errorf("radiance at dist=2: %v, want 1", radianceFar.X)
	}
}

func TestPointLightIsDeltaPosition(t *testing.T) {
	light := NewPointLight(Point3{}, Spectrum{X: 1, Y: 1, Z: 1})
	if !light.Flags().Has(LightDeltaPosition) {
		t.Error("point light should report LightDeltaPosition")
	}
	ds, _ := light.SampleDirection(Interaction{P: Point3{X: 1, Y: 0, Z: 0}}, Point2{})
	if !ds.DeltaLight {
		t.Error("point light's direction sample should be marked DeltaLight")
	}
	if light.PDFDirection(Interaction{}, ds) != 0 {
		t.Error("a delta light's PDFDirection should always be zero")
	}
}

func TestAreaLightEvaluateReturnsRadiance(t *testing.T) {
	rect := NewRectangle(NewTransformIdentity(), nil)
	light := NewAreaLight(rect, Spectrum{X: 3, Y: 2, Z: 1})
	si := SurfaceInteraction{Shape: rect}
	got := light.Evaluate(si)
	if got != (Spectrum{X: 3, Y: 2, Z: 1}) {
		t.Errorf("Evaluate = %v, want the light's radiance", got)
	}
}

func TestAreaLightOneSidedByDefault(t *testing.T) {
	rect := NewRectangle(NewTransformIdentity(), nil)
	light := NewAreaLight(rect, Spectrum{X: 1, Y: 1, Z: 1})

	// Reference point behind the rectangle (on the -Z side, where the
	// rectangle's local normal +Z does not face) should get zero radiance
	// for a one-sided light.
	ref := Interaction{P: Point3{X: 0, Y: 0, Z: -5}}
	_, radiance := light.SampleDirection(ref, Point2{X: 0.5, Y: 0.5})
	if !radiance.IsZero() {
		t.Errorf("one-sided area light should not illuminate its back side, got %v", radiance)
	}
}

func TestAreaLightTwoSidedIlluminatesBothSides(t *testing.T) {
	rect := NewRectangle(NewTransformIdentity(), nil)
	light := &AreaLight{Shape: rect, Radiance: Spectrum{X: 1, Y: 1, Z: 1}, TwoSided: true}

	ref := Interaction{P: Point3{X: 0, Y: 0, Z: -5}}
	_, radiance := light.SampleDirection(ref, Point2{X: 0.5, Y: 0.5})
	if radiance.IsZero() {
		t.Error("two-sided area light should illuminate its back side")
	}
}

func TestAreaLightFlagsIsSurface(t *testing.T) {
	rect := NewRectangle(NewTransformIdentity(), nil)
	light := NewAreaLight(rect, Spectrum{X: 1, Y: 1, Z: 1})
	if !light.Flags().Has(LightSurface) {
		t.Error("area light should report LightSurface")
	}
	if light.Flags().Has(LightDelta) {
		t.Error("area light should not be a delta light")
	}
}
