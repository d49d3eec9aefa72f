package rt

import (
	"math"
	"math/rand"
	"testing"
)

func TestTriangleHitCentroid(t *testing.T) {
	tri := NewTriangle(
		Point3{X: -1, Y: -1, Z: 0},
		Point3{X: 1, Y: -1, Z: 0},
		Point3{X: 0, Y: 1, Z: 0},
		nil,
	)
	r := NewRay(Point3{X: 0, Y: -1.0 / 3.0, Z: -5}, Vec3{X: 0, Y: 0, Z: 1}, 0)
	pi := tri.PreliminaryHit(r)
	if !pi.Valid {
		t.Fatal("expected a hit at the triangle's centroid")
	}
	if math.Abs(pi.T-5) > 1e-9 {
		t.Errorf("hit t = %v, want 5", pi.T)
	}
}

func TestTriangleMissOutsideEdges(t *testing.T) {
	tri := NewTriangle(
		Point3{X: -1, Y: -1, Z: 0},
		Point3{X: 1, Y: -1, Z: 0},
		Point3{X: 0, Y: 1, Z: 0},
		nil,
	)
	r := NewRay(Point3{X: 5, Y: 5, Z: -5}, Vec3{X: 0, Y: 0, Z: 1}, 0)
	if tri.PreliminaryHit(r).Valid {
		t.Error("expected a miss well outside the triangle")
	}
}

func TestTriangleAreaFormula(t *testing.T) {
	tri := NewTriangle(
		Point3{X: 0, Y: 0, Z: 0},
		Point3{X: 2, Y: 0, Z: 0},
		Point3{X: 0, Y: 2, Z: 0},
		nil,
	)
	want := 2.0
	if math.Abs(tri.Area()-want) > 1e-9 {
		t.Errorf("Area = %v, want %v", tri.Area(), want)
	}
}

func TestTriangleSamplePositionOnPlane(t *testing.T) {
	v0 := Point3{X: 0, Y: 0, Z: 1}
	v1 := Point3{X: 2, Y: 0, Z: 1}
	v2 := Point3{X: 0, Y: 2, Z: 1}
	tri := NewTriangle(v0, v1, v2, nil)
	rng := rand.New(rand.NewSource(31))

	for i := 0; i < 50; i++ {
		ps := tri.SamplePosition(0, Point2{X: rng.Float64(), Y: rng.Float64()})
		if math.Abs(ps.P.Z-1) > 1e-9 {
			t.Fatalf("sampled point %v should lie in the triangle's z=1 plane", ps.P)
		}
		// Barycentric coordinates must be non-negative for a point inside
		// the triangle.
		u, v, w := tri.barycentric(ps.P)
		const eps = 1e-9
		if u < -eps || v < -eps || w < -eps {
			t.Fatalf("sampled point %v has invalid barycentric coords (%v,%v,%v)", ps.P, u, v, w)
		}
	}
}

func TestMeshSamplesProportionalToArea(t *testing.T) {
	big := NewTriangle(Point3{X: 0, Y: 0, Z: 0}, Point3{X: 10, Y: 0, Z: 0}, Point3{X: 0, Y: 10, Z: 0}, nil)
	small := NewTriangle(Point3{X: 20, Y: 0, Z: 0}, Point3{X: 21, Y: 0, Z: 0}, Point3{X: 20, Y: 1, Z: 0}, nil)
	mesh := NewMesh([]*Triangle{big, small})

	rng := rand.New(rand.NewSource(32))
	bigCount := 0
	const n = 2000
	for i := 0; i < n; i++ {
		idx := mesh.pickTriangle(rng.Float64())
		if idx == 0 {
			bigCount++
		}
	}
	// big has area 50, small has area 0.5: big should be picked ~99% of
	// the time.
	frac := float64(bigCount) / n
	if frac < 0.95 {
		t.Errorf("big triangle picked %v%% of the time, want >=95%%", frac*100)
	}
}
