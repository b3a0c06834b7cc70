package material

import (
	"math"
	"testing"

	"github.com/arkhaios/photon-raytracer/pkg/core"
)

func TestMetalZeroFuzzReflectsExactly(t *testing.T) {
	m := NewMetal(core.NewVec3(1, 1, 1), 0)
	hit := HitRecord{Point: core.Vec3{}, Normal: core.NewVec3(0, 1, 0)}
	ray := core.NewRay(core.Vec3{}, core.NewVec3(1, -1, 0))

	_, scattered, ok := m.Scatter(ray, hit)
	if !ok {
		t.Fatal("Metal should always scatter")
	}

	want := core.NewVec3(1, 1, 0).Unit()
	got := scattered.Direction.Unit()
	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
		t.Fatalf("reflected direction = %v, want %v", got, want)
	}
}

func TestMetalFuzzClampedToOne(t *testing.T) {
	m := NewMetal(core.Vec3{}, 5.0)
	if m.Fuzz != 1.0 {
		t.Fatalf("Fuzz = %v, want clamped to 1", m.Fuzz)
	}
}
