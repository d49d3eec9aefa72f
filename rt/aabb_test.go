package rt

import (
	"math"
	"testing"
)

func TestIntervalContainsSurrounds(t *testing.T) {
	i := NewInterval(0, 1)
	if !i.Contains(0) || !i.Contains(1) {
		t.Error("Contains should include boundary values")
	}
	if i.Surrounds(0) || i.Surrounds(1) {
		t.Error("Surrounds should exclude boundary values")
	}
	if !i.Surrounds(0.5) {
		t.Error("Surrounds should include interior values")
	}
}

func TestIntervalClamp(t *testing.T) {
	i := NewInterval(-1, 1)
	if got := i.Clamp(-5); got != -1 {
		t.Errorf("Clamp(-5) = %v, want -1", got)
	}
	if got := i.Clamp(5); got != 1 {
		t.Errorf("Clamp(5) = %v, want 1", got)
	}
	if got := i.Clamp(0.5); got != 0.5 {
		t.Errorf("Clamp(0.5) = %v, want 0.5", got)
	}
}

func TestAABBFromBoxesUnion(t *testing.T) {
	a := NewAABBFromPoints(Point3{X: 0, Y: 0, Z: 0}, Point3{X: 1, Y: 1, Z: 1})
	b := NewAABBFromPoints(Point3{X: 2, Y: 2, Z: 2}, Point3{X: 3, Y: 3, Z: 3})
	u := NewAABBFromBoxes(a, b)
	if u.X.Min != 0 || u.X.Max != 3 {
		t.Errorf("union X = [%v,%v], want [0,3]", u.X.Min, u.X.Max)
	}
}

func TestAABBHitDetectsIntersection(t *testing.T) {
	box := AABB{X: NewInterval(-1, 1), Y: NewInterval(-1, 1), Z: NewInterval(-1, 1)}
	hit := NewRay(Point3{X: -5, Y: 0, Z: 0}, Vec3{X: 1, Y: 0, Z: 0}, 0)
	miss := NewRay(Point3{X: -5, Y: 5, Z: 0}, Vec3{X: 1, Y: 0, Z: 0}, 0)

	if !box.Hit(hit, NewInterval(0, math.Inf(1))) {
		t.Error("expected a hit through the box center")
	}
	if box.Hit(miss, NewInterval(0, math.Inf(1))) {
		t.Error("expected a miss well outside the box")
	}
}

func TestAABBLongestAxis(t *testing.T) {
	box := NewAABBFromPoints(Point3{X: 0, Y: 0, Z: 0}, Point3{X: 10, Y: 1, Z: 2})
	if axis := box.LongestAxis(); axis != 0 {
		t.Errorf("LongestAxis = %d, want 0 (X)", axis)
	}
}

func TestAABBCentroid(t *testing.T) {
	box := NewAABBFromPoints(Point3{X: 0, Y: 0, Z: 0}, Point3{X: 2, Y: 4, Z: 6})
	c := box.Centroid()
	want := Vec3{X: 1, Y: 2, Z: 3}
	if c.Sub(want).Len() > 1e-9 {
		t.Errorf("Centroid = %v, want %v", c, want)
	}
}
