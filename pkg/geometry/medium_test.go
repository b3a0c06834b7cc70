package geometry

import (
	"math"
	"testing"

	"github.com/arkhaios/photon-raytracer/pkg/core"
)

func TestConstantMediumBoundingBoxMatchesBoundary(t *testing.T) {
	boundary := NewSphere(core.Vec3{}, 2, nil)
	medium := NewConstantMedium(boundary, 1.0, core.NewVec3(1, 1, 1))

	if medium.BoundingBox() != boundary.BoundingBox() {
		t.Fatalf("medium bounding box %v != boundary bounding box %v", medium.BoundingBox(), boundary.BoundingBox())
	}
}

func TestConstantMediumNeverHitsOutsideBoundary(t *testing.T) {
	boundary := NewSphere(core.Vec3{}, 2, nil)
	medium := NewConstantMedium(boundary, 100.0, core.NewVec3(1, 1, 1))

	ray := core.NewRay(core.NewVec3(-10, 10, 0), core.NewVec3(1, 0, 0))
	var rec HitRecord
	hit, err := medium.Hit(ray, core.NewInterval(0.001, math.Inf(1)), &rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hit {
		t.Fatal("expected ray missing the boundary entirely to miss the medium")
	}
}

func TestConstantMediumHighDensityUsuallyHits(t *testing.T) {
	boundary := NewSphere(core.Vec3{}, 2, nil)
	medium := NewConstantMedium(boundary, 1e6, core.NewVec3(1, 1, 1))

	hits := 0
	for i := 0; i < 50; i++ {
		ray := core.NewRay(core.NewVec3(-10, 0, 0), core.NewVec3(1, 0, 0))
		var rec HitRecord
		hit, err := medium.Hit(ray, core.NewInterval(0.001, math.Inf(1)), &rec)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if hit {
			hits++
			if rec.Normal != core.NewVec3(1, 0, 0) || !rec.FrontFace {
				t.Fatalf("expected the arbitrary normal/front_face convention, got %v / %v", rec.Normal, rec.FrontFace)
			}
		}
	}
	if hits == 0 {
		t.Fatal("expected a very dense medium to hit almost every ray through the boundary")
	}
}
