package core

import "testing"

func TestAABBHitThroughCenter(t *testing.T) {
	box := NewAABBFromPoints(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	ray := NewRay(NewVec3(-10, 0, 0), NewVec3(1, 0, 0))

	hit, err := box.Hit(ray, UniverseInterval)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !hit {
		t.Fatal("expected ray through box center to hit")
	}
}

func TestAABBMissParallelOutside(t *testing.T) {
	box := NewAABBFromPoints(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	ray := NewRay(NewVec3(-10, 5, 0), NewVec3(1, 0, 0))

	hit, err := box.Hit(ray, UniverseInterval)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hit {
		t.Fatal("expected ray missing the box entirely to miss")
	}
}

func TestAABBHitDegenerateBoxReturnsError(t *testing.T) {
	ray := NewRay(NewVec3(-10, 0, 0), NewVec3(1, 0, 0))

	if _, err := EmptyAABB.Hit(ray, UniverseInterval); err == nil {
		t.Fatal("expected a degenerate (empty) box to report an error")
	}
}

func TestAABBMinimumSidePadding(t *testing.T) {
	flat := NewAABBFromPoints(NewVec3(0, 0, 0), NewVec3(1, 0, 1))
	if flat.Y.Size() < aabbMinSide {
		t.Fatalf("flat axis size = %v, want >= %v", flat.Y.Size(), aabbMinSide)
	}
}

func TestAABBLongestAxis(t *testing.T) {
	box := NewAABBFromPoints(NewVec3(0, 0, 0), NewVec3(1, 5, 2))
	if axis := box.LongestAxis(); axis != 1 {
		t.Fatalf("LongestAxis() = %d, want 1", axis)
	}
}

func TestAABBUnion(t *testing.T) {
	a := NewAABBFromPoints(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	b := NewAABBFromPoints(NewVec3(2, 2, 2), NewVec3(3, 3, 3))
	u := a.Union(b)

	if u.X.Min != 0 || u.X.Max != 3 {
		t.Fatalf("union X = %v, want [0,3]", u.X)
	}
}
