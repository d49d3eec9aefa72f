package rt

import (
	"math"
	"math/rand"
	"testing"
)

func TestSceneIntersectFindsClosestShape(t *testing.T) {
	near := NewSphere(Point3{X: 0, Y: 0, Z: 0}, 1, NewDiffuseBSDF(NewConstTexture(Spectrum{X: 1})))
	far := NewSphere(Point3{X: 5, Y: 0, Z: 0}, 1, NewDiffuseBSDF(NewConstTexture(Spectrum{X: 0, Y: 1})))
	scene := NewScene([]Shape{near, far}, nil, NewCamera(
		Point3{X: -10, Y: 0, Z: 0}, Point3{X: 0, Y: 0, Z: 0}, Vec3{X: 0, Y: 1, Z: 0}, 10, 10, 40, 0.01, 100,
	))

	r := NewRay(Point3{X: -10, Y: 0, Z: 0}, Vec3{X: 1, Y: 0, Z: 0}, 0)
	si := scene.Intersect(r)
	if !si.Valid {
		t.Fatal("expected a hit")
	}
	if si.Shape != Shape(near) {
		t.Error("expected the closer sphere to win")
	}
}

func TestSceneAnyHitShadowOccluded(t *testing.T) {
	occluder := NewSphere(Point3{X: 2, Y: 0, Z: 0}, 1, NewDiffuseBSDF(NewConstTexture(Spectrum{})))
	scene := NewScene([]Shape{occluder}, nil, nil)

	r := NewRay(Point3{X: -5, Y: 0, Z: 0}, Vec3{X: 1, Y: 0, Z: 0}, 0)
	if !scene.AnyHit(r) {
		t.Error("expected the shadow ray to be occluded")
	}
}

func TestSceneAnyHitUnoccluded(t *testing.T) {
	occluder := NewSphere(Point3{X: 2, Y: 5, Z: 0}, 1, NewDiffuseBSDF(NewConstTexture(Spectrum{})))
	scene := NewScene([]Shape{occluder}, nil, nil)

	r := NewRay(Point3{X: -5, Y: 0, Z: 0}, Vec3{X: 1, Y: 0, Z: 0}, 0)
	if scene.AnyHit(r) {
		t.Error("expected the shadow ray to be unoccluded")
	}
}

func TestSceneWithBVHMatchesLinearScan(t *testing.T) {
	rng := rand.New(rand.NewSource(51))
	shapes := make([]Shape, 0, 50)
	for i := 0; i < 50; i++ {
		c := Point3{X: rng.Float64()*20 - 10, Y: rng.Float64()*20 - 10, Z: rng.Float64()*20 - 10}
		shapes = append(shapes, NewSphere(c, 0.4, NewDiffuseBSDF(NewConstTexture(Spectrum{X: 1}))))
	}

	linear := NewScene(append([]Shape{}, shapes...), nil, nil)
	withBVH := NewScene(append([]Shape{}, shapes...), nil, nil)
	withBVH.BuildAccelerationTree()

	for i := 0; i < 200; i++ {
		origin := Point3{X: rng.Float64()*40 - 20, Y: rng.Float64()*40 - 20, Z: rng.Float64()*40 - 20}
		target := Point3{X: rng.Float64()*20 - 10, Y: rng.Float64()*20 - 10, Z: rng.Float64()*20 - 10}
		r := NewRay(origin, target.Sub(origin).Unit(), 0)

		a := linear.Intersect(r)
		b := withBVH.Intersect(r)
		if a.Valid != b.Valid {
			t.Fatalf("linear/BVH disagreement on hit validity for ray %d", i)
		}
		if a.Valid && math.Abs(a.T-b.T) > 1e-6 {
			t.Fatalf("linear/BVH disagreement on hit t for ray %d: %v vs %v", i, a.T, b.T)
		}
	}
}

func TestSceneSampleLightDirectionRescalesProbability(t *testing.T) {
	l1 := NewPointLight(Point3{X: 1, Y: 0, Z: 0}, Spectrum{X: 1, Y: 1, Z: 1})
	l2 := NewPointLight(Point3{X: -1, Y: 0, Z: 0}, Spectrum{X: 1, Y: 1, Z: 1})
	scene := NewScene(nil, []Light{l1, l2}, nil)

	ref := Interaction{P: Point3{}}
	ds, _, picked := scene.SampleLightDirection(ref, 0.1, Point2{X: 0.5, Y: 0.5})
	if picked != l1 {
		t.Error("lightSample=0.1 of 2 lights should pick the first")
	}
	if ds.PDF != 0.5 {
		t.Errorf("point light pdf with 2 lights = %v, want 1/2", ds.PDF)
	}
	_, _, picked2 := scene.SampleLightDirection(ref, 0.9, Point2{X: 0.5, Y: 0.5})
	if picked2 != l2 {
		t.Error("lightSample=0.9 of 2 lights should pick the second")
	}
}

func TestCornellBoxSceneBuilds(t *testing.T) {
	scene := NewCornellBoxScene(32, 32)
	if len(scene.Shapes) != 6 {
		t.Errorf("expected 5 walls + 1 light rectangle = 6 shapes, got %d", len(scene.Shapes))
	}
	if len(scene.Lights) != 1 {
		t.Errorf("expected exactly 1 area light, got %d", len(scene.Lights))
	}
	if scene.Camera == nil {
		t.Fatal("expected a camera")
	}
}

func TestDielectricSpheresSceneAddsSpheres(t *testing.T) {
	base := NewCornellBoxScene(16, 16)
	withSpheres := NewDielectricSpheresScene(16, 16)
	if len(withSpheres.Shapes) != len(base.Shapes)+2 {
		t.Errorf("expected 2 extra dielectric spheres, got %d vs base %d", len(withSpheres.Shapes), len(base.Shapes))
	}
}

func TestPointLightSceneHasRequestedLightCount(t *testing.T) {
	rng := rand.New(rand.NewSource(61))
	scene := NewPointLightScene(16, 16, 7, rng)
	if len(scene.Lights) != 7 {
		t.Errorf("expected 7 point lights, got %d", len(scene.Lights))
	}
	if len(scene.Shapes) != 5 {
		t.Errorf("expected 5 walls and no area light shape, got %d", len(scene.Shapes))
	}
}
