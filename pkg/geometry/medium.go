package geometry

import (
	"math"

	"github.com/arkhaios/photon-raytracer/pkg/core"
	"github.com/arkhaios/photon-raytracer/pkg/material"
)

// ConstantMedium is a homogeneous participating medium (fog, smoke) bounded
// by an arbitrary convex Hittable: a ray passing through has a probability
// of scattering that grows with the distance traveled inside the boundary,
// drawn via Beer-Lambert free-path sampling.
type ConstantMedium struct {
	boundary      Hittable
	negInvDensity float64
	phaseFunction material.Material
}

// NewConstantMedium builds a medium of the given density and solid color
func NewConstantMedium(boundary Hittable, density float64, albedo core.Vec3) *ConstantMedium {
	return &ConstantMedium{
		boundary:      boundary,
		negInvDensity: -1.0 / density,
		phaseFunction: material.NewIsotropic(albedo),
	}
}

// NewConstantMediumTexture builds a medium of the given density and texture
func NewConstantMediumTexture(boundary Hittable, density float64, tex material.Texture) *ConstantMedium {
	return &ConstantMedium{
		boundary:      boundary,
		negInvDensity: -1.0 / density,
		phaseFunction: material.NewIsotropicTexture(tex),
	}
}

func (m *ConstantMedium) Hit(ray core.Ray, rayT core.Interval, rec *HitRecord) (bool, error) {
	var rec1, rec2 HitRecord

	hit1, err := m.boundary.Hit(ray, core.UniverseInterval, &rec1)
	if err != nil {
		return false, err
	}
	if !hit1 {
		return false, nil
	}
	hit2, err := m.boundary.Hit(ray, core.NewInterval(rec1.T+0.0001, math.Inf(1)), &rec2)
	if err != nil {
		return false, err
	}
	if !hit2 {
		return false, nil
	}

	if rec1.T < rayT.Min {
		rec1.T = rayT.Min
	}
	if rec2.T > rayT.Max {
		rec2.T = rayT.Max
	}

	if rec1.T >= rec2.T {
		return false, nil
	}
	if rec1.T < 0 {
		rec1.T = 0
	}

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (rec2.T - rec1.T) * rayLength
	hitDistance := m.negInvDensity * math.Log(core.RandomDouble())

	if hitDistance > distanceInsideBoundary {
		return false, nil
	}

	rec.T = rec1.T + hitDistance/rayLength
	rec.Point = ray.At(rec.T)
	// Normal and front face are arbitrary inside a medium: Isotropic, the
	// only material that consumes this hit, ignores both.
	rec.Normal = core.NewVec3(1, 0, 0)
	rec.FrontFace = true
	rec.Material = m.phaseFunction
	return true, nil
}

func (m *ConstantMedium) BoundingBox() core.AABB {
	return m.boundary.BoundingBox()
}
