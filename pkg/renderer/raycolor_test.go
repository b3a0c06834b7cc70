package renderer

import (
	"math"
	"testing"

	"github.com/arkhaios/photon-raytracer/pkg/core"
	"github.com/arkhaios/photon-raytracer/pkg/geometry"
	"github.com/arkhaios/photon-raytracer/pkg/material"
)

func TestRayColorZeroDepthIsBlack(t *testing.T) {
	world := geometry.NewHittableList()
	got, err := rayColor(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), world, core.NewVec3(1, 1, 1), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != (core.Vec3{}) {
		t.Fatalf("depth-0 ray should be black, got %v", got)
	}
}

func TestRayColorMissReturnsBackground(t *testing.T) {
	world := geometry.NewHittableList()
	background := core.NewVec3(0.7, 0.8, 1.0)
	got, err := rayColor(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), world, background, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != background {
		t.Fatalf("missing ray should return background, got %v", got)
	}
}

func TestRayColorDielectricSphereIsNotBlack(t *testing.T) {
	glass := material.NewDielectric(1.5)
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -5), 1, glass)
	world := geometry.NewHittableListOf(sphere)

	background := core.NewVec3(0.7, 0.8, 1.0)
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))

	got, err := rayColor(ray, world, background, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == (core.Vec3{}) {
		t.Fatal("dielectric refraction should not fully absorb the ray")
	}
	// Attenuation along a dielectric path is always (1,1,1), so the result
	// should never exceed the background's own components.
	if got.X > background.X+1e-9 || got.Y > background.Y+1e-9 || got.Z > background.Z+1e-9 {
		t.Fatalf("got %v brighter than background %v, dielectric never amplifies", got, background)
	}
}

func TestRayColorEmissiveSurfaceAddsLight(t *testing.T) {
	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))
	quad := geometry.NewQuad(core.NewVec3(-1, -1, -5), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), light)
	world := geometry.NewHittableListOf(quad)

	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))
	got, err := rayColor(ray, world, core.Vec3{}, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.X < 3.999 || math.IsNaN(got.X) {
		t.Fatalf("expected the emitted radiance to pass through, got %v", got)
	}
}

