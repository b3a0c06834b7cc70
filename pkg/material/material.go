// Package material implements the BSDF and texture set: Lambertian, Metal,
// Dielectric, DiffuseLight and Isotropic surfaces, backed by SolidColor,
// CheckerTexture, ImageTexture and NoiseTexture.
package material

import "github.com/arkhaios/photon-raytracer/pkg/core"

// HitRecord is the subset of a geometry hit the material set needs to
// evaluate scattering and emission. Defined here, rather than imported from
// geometry, to keep material free of a dependency on the scene graph; the
// renderer builds one of these from geometry's HitRecord before calling
// into a material.
type HitRecord struct {
	Point     core.Vec3
	Normal    core.Vec3
	U, V      float64
	FrontFace bool
}

// Material is a surface's scattering and emission behavior
type Material interface {
	// Scatter produces the attenuation and outgoing ray for an incoming ray
	// hitting this surface, or reports false if the surface doesn't scatter
	// (e.g. a pure light).
	Scatter(rayIn core.Ray, hit HitRecord) (attenuation core.Vec3, scattered core.Ray, ok bool)

	// Emitted returns the radiance this surface emits at (u, v, p); zero for
	// any non-emissive material.
	Emitted(u, v float64, p core.Vec3) core.Vec3
}

// nonEmitting can be embedded by materials that never emit light
type nonEmitting struct{}

func (nonEmitting) Emitted(u, v float64, p core.Vec3) core.Vec3 { return core.Vec3{} }
