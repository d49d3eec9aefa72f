package rt

import (
	"math"
	"testing"
)

func TestCameraCenterPixelPointsAtLookAt(t *testing.T) {
	cam := NewCamera(
		Point3{X: -5, Y: 0, Z: 0}, Point3{X: 0, Y: 0, Z: 0}, Vec3{X: 0, Y: 0, Z: 1},
		100, 100, 60, 0.01, 100,
	)
	r := cam.SampleRay(50, 50)
	want := Vec3{X: 1, Y: 0, Z: 0}
	if r.Direction.Sub(want).Len() > 1e-6 {
		t.Errorf("center pixel direction = %v, want %v", r.Direction, want)
	}
}

func TestCameraRayDirectionIsUnitLength(t *testing.T) {
	cam := NewCamera(
		Point3{X: 0, Y: 0, Z: 0}, Point3{X: 0, Y: 0, Z: -1}, Vec3{X: 0, Y: 1, Z: 0},
		64, 48, 70, 0.01, 100,
	)
	for _, px := range []float64{0, 16, 32, 48, 63} {
		for _, py := range []float64{0, 12, 24, 36, 47} {
			r := cam.SampleRay(px, py)
			if math.Abs(r.Direction.Len()-1) > 1e-9 {
				t.Errorf("ray direction at (%v,%v) has length %v, want 1", px, py, r.Direction.Len())
			}
		}
	}
}

func TestCameraAspectRatioAffectsVerticalExtent(t *testing.T) {
	wide := NewCamera(Point3{}, Point3{X: 0, Y: 0, Z: -1}, Vec3{X: 0, Y: 1, Z: 0}, 200, 100, 60, 0.01, 100)
	square := NewCamera(Point3{}, Point3{X: 0, Y: 0, Z: -1}, Vec3{X: 0, Y: 1, Z: 0}, 100, 100, 60, 0.01, 100)

	wideTop := wide.SampleRay(100, 0)
	squareTop := square.SampleRay(50, 0)

	// A wider aspect ratio (height/width smaller) should compress the
	// vertical field of view, so the top-row ray should point less
	// steeply upward than the square camera's.
	if math.Abs(wideTop.Direction.Y) >= math.Abs(squareTop.Direction.Y) {
		t.Errorf("wide camera top ray Y=%v should have smaller magnitude than square camera's Y=%v",
			wideTop.Direction.Y, squareTop.Direction.Y)
	}
}

func TestSampleRayDifferentialOffsetsByOnePixel(t *testing.T) {
	cam := NewCamera(Point3{}, Point3{X: 0, Y: 0, Z: -1}, Vec3{X: 0, Y: 1, Z: 0}, 64, 64, 60, 0.01, 100)
	rd := cam.SampleRayDifferential(32, 32)
	if !rd.HasDifferentials {
		t.Fatal("expected differentials to be populated")
	}
	straight := cam.SampleRay(32, 32)
	rx := cam.SampleRay(33, 32)
	if rd.RxDirection.Sub(rx.Direction).Len() > 1e-9 {
		t.Errorf("RxDirection = %v, want %v", rd.RxDirection, rx.Direction)
	}
	if rd.Direction.Sub(straight.Direction).Len() > 1e-9 {
		t.Errorf("base direction mismatch: %v vs %v", rd.Direction, straight.Direction)
	}
}
