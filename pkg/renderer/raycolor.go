package renderer

import (
	"github.com/arkhaios/photon-raytracer/pkg/core"
	"github.com/arkhaios/photon-raytracer/pkg/geometry"
	"github.com/arkhaios/photon-raytracer/pkg/material"
)

// rayColor traces a single path: on a miss it returns the background color;
// on a hit it adds the surface's own emission to the attenuated color of
// the recursively-traced scattered ray, recursing until depth is exhausted
// or the surface doesn't scatter. An error means traversal itself failed
// (a degenerate bounding box), not that the ray missed.
func rayColor(ray core.Ray, world geometry.Hittable, background core.Vec3, depth int) (core.Vec3, error) {
	if depth <= 0 {
		return core.Vec3{}, nil
	}

	var rec geometry.HitRecord
	hit, err := world.Hit(ray, core.NewInterval(0.001, posInf), &rec)
	if err != nil {
		return core.Vec3{}, err
	}
	if !hit {
		return background, nil
	}

	matHit := material.HitRecord{
		Point:     rec.Point,
		Normal:    rec.Normal,
		U:         rec.U,
		V:         rec.V,
		FrontFace: rec.FrontFace,
	}
	colorFromEmission := rec.Material.Emitted(rec.U, rec.V, rec.Point)

	attenuation, scattered, ok := rec.Material.Scatter(ray, matHit)
	if !ok {
		return colorFromEmission, nil
	}

	scatteredColor, err := rayColor(scattered, world, background, depth-1)
	if err != nil {
		return core.Vec3{}, err
	}

	colorFromScatter := attenuation.MultiplyVec(scatteredColor)
	return colorFromEmission.Add(colorFromScatter), nil
}
