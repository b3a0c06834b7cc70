package geometry

import (
	"math"
	"testing"

	"github.com/arkhaios/photon-raytracer/pkg/core"
	"github.com/arkhaios/photon-raytracer/pkg/material"
)

func TestTranslateRoundTrip(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1, material.NewLambertian(core.Vec3{}))
	offset := core.NewVec3(3, -2, 1)

	translated := NewTranslate(sphere, offset)
	roundTrip := NewTranslate(translated, offset.Negate())

	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))

	var recDirect, recRoundTrip HitRecord
	hitDirect, err := sphere.Hit(ray, core.UniverseInterval, &recDirect)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	hitRoundTrip, err := roundTrip.Hit(ray, core.UniverseInterval, &recRoundTrip)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if hitDirect != hitRoundTrip {
		t.Fatalf("hit mismatch: direct=%v roundtrip=%v", hitDirect, hitRoundTrip)
	}
	if hitDirect && recDirect.Point.Subtract(recRoundTrip.Point).Length() > 1e-9 {
		t.Fatalf("translate round trip point drift: %v vs %v", recDirect.Point, recRoundTrip.Point)
	}
}

func TestRotateYRoundTrip(t *testing.T) {
	box := NewBox(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), material.NewLambertian(core.Vec3{}))
	bvh := NewBVH(box)

	rotated := NewRotateY(bvh, 37)
	roundTrip := NewRotateY(rotated, -37)

	ray := core.NewRay(core.NewVec3(5, 0.3, 0.2), core.NewVec3(-1, 0, 0))

	var recDirect, recRoundTrip HitRecord
	hitDirect, err := bvh.Hit(ray, core.NewInterval(0.001, math.Inf(1)), &recDirect)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	hitRoundTrip, err := roundTrip.Hit(ray, core.NewInterval(0.001, math.Inf(1)), &recRoundTrip)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if hitDirect != hitRoundTrip {
		t.Fatalf("hit mismatch: direct=%v roundtrip=%v", hitDirect, hitRoundTrip)
	}
	if hitDirect && recDirect.Point.Subtract(recRoundTrip.Point).Length() > 1e-6 {
		t.Fatalf("rotateY round trip point drift: %v vs %v", recDirect.Point, recRoundTrip.Point)
	}
}
