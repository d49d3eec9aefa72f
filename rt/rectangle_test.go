package rt

import (
	"math"
	"math/rand"
	"testing"
)

func TestRectangleHitAtOrigin(t *testing.T) {
	rect := NewRectangle(NewTransformIdentity(), nil)
	r := NewRay(Point3{X: 0, Y: 0, Z: -5}, Vec3{X: 0, Y: 0, Z: 1}, 0)
	pi := rect.PreliminaryHit(r)
	if !pi.Valid {
		t.Fatal("expected a hit through the rectangle's center")
	}
	if math.Abs(pi.T-5) > 1e-9 {
		t.Errorf("hit t = %v, want 5", pi.T)
	}
}

func TestRectangleMissesOutsideExtent(t *testing.T) {
	rect := NewRectangle(NewTransformIdentity(), nil)
	r := NewRay(Point3{X: 2, Y: 0, Z: -5}, Vec3{X: 0, Y: 0, Z: 1}, 0)
	if rect.PreliminaryHit(r).Valid {
		t.Error("expected a miss outside the unit square's extent")
	}
}

func TestRectangleAreaScalesWithTransform(t *testing.T) {
	rect := NewRectangle(ScaleXYZ(Vec3{X: 2, Y: 3, Z: 1}), nil)
	want := 2.0 * 3.0
	if math.Abs(rect.Area()-want) > 1e-9 {
		t.Errorf("Area = %v, want %v", rect.Area(), want)
	}
}

func TestRectangleSamplePositionWithinExtent(t *testing.T) {
	tr := Translate(Vec3{X: 5, Y: 0, Z: 0}).Mul(ScaleXYZ(Vec3{X: 2, Y: 2, Z: 1}))
	rect := NewRectangle(tr, nil)
	rng := rand.New(rand.NewSource(21))

	for i := 0; i < 50; i++ {
		ps := rect.SamplePosition(0, Point2{X: rng.Float64(), Y: rng.Float64()})
		if math.Abs(ps.P.X-5) > 1.000001 {
			t.Fatalf("sampled point %v falls outside the transformed rectangle extent on X", ps.P)
		}
		if math.Abs(ps.P.Y) > 1.000001 {
			t.Fatalf("sampled point %v falls outside the transformed rectangle extent on Y", ps.P)
		}
	}
}

func TestRectangleNormalFacesViewer(t *testing.T) {
	rect := NewRectangle(NewTransformIdentity(), nil)
	// Ray approaching from +Z should see a normal pointing towards +Z.
	r := NewRay(Point3{X: 0, Y: 0, Z: 5}, Vec3{X: 0, Y: 0, Z: -1}, 0)
	pi := rect.PreliminaryHit(r)
	si := rect.ComputeSurfaceInteraction(r, pi)
	if si.N.Z < 0 {
		t.Errorf("normal %v should face the incoming ray (+Z side)", si.N)
	}

	// Ray approaching from -Z should see a normal pointing towards -Z.
	r2 := NewRay(Point3{X: 0, Y: 0, Z: -5}, Vec3{X: 0, Y: 0, Z: 1}, 0)
	pi2 := rect.PreliminaryHit(r2)
	si2 := rect.ComputeSurfaceInteraction(r2, pi2)
	if si2.N.Z > 0 {
		t.Errorf("normal %v should face the incoming ray (-Z side)", si2.N)
	}
}
