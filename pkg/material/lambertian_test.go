package material

import (
	"testing"

	"github.com/arkhaios/photon-raytracer/pkg/core"
)

func TestLambertianAlwaysScatters(t *testing.T) {
	l := NewLambertian(core.NewVec3(0.8, 0.3, 0.3))
	hit := HitRecord{Point: core.NewVec3(0, 0, 1), Normal: core.NewVec3(0, 0, 1), U: 0.5, V: 0.5}
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1))

	attenuation, scattered, ok := l.Scatter(ray, hit)
	if !ok {
		t.Fatal("Lambertian should always scatter")
	}
	if attenuation != core.NewVec3(0.8, 0.3, 0.3) {
		t.Fatalf("attenuation = %v, want the texture color", attenuation)
	}
	if scattered.Origin != hit.Point {
		t.Fatalf("scattered ray origin = %v, want hit point %v", scattered.Origin, hit.Point)
	}
}

func TestLambertianScatterAvoidsNearZeroDirection(t *testing.T) {
	l := NewLambertian(core.Vec3{})
	// The random draw can't be forced to the exact inverse of the normal, so
	// this checks that such a cancelled direction is what NearZero detects
	// (the condition Scatter falls back to the normal on), and that Scatter
	// never hands out a degenerate direction.
	hit := HitRecord{Point: core.Vec3{}, Normal: core.NewVec3(0, 1, 0)}

	scatterDirection := hit.Normal.Add(hit.Normal.Negate())
	if !scatterDirection.NearZero() {
		t.Fatal("test setup invariant broken")
	}

	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	for i := 0; i < 100; i++ {
		_, scattered, _ := l.Scatter(ray, hit)
		if scattered.Direction.NearZero() {
			t.Fatalf("Scatter returned a near-zero direction %v", scattered.Direction)
		}
	}
}

func TestEmittedIsZeroForNonEmissive(t *testing.T) {
	l := NewLambertian(core.NewVec3(1, 1, 1))
	if l.Emitted(0, 0, core.Vec3{}) != (core.Vec3{}) {
		t.Fatal("Lambertian should never emit")
	}
}
