package material

import "github.com/arkhaios/photon-raytracer/pkg/core"

// Metal is an imperfect mirror: it reflects about the normal, then perturbs
// the reflection by a random offset scaled by Fuzz. A fuzzed reflection that
// ends up below the surface is not filtered out — it is left to be absorbed
// by whatever the scattered ray hits next.
type Metal struct {
	nonEmitting
	Albedo core.Vec3
	Fuzz   float64
}

// NewMetal builds a metal surface; fuzz above 1 is clamped to 1
func NewMetal(albedo core.Vec3, fuzz float64) *Metal {
	if fuzz > 1.0 {
		fuzz = 1.0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

func (m *Metal) Scatter(rayIn core.Ray, hit HitRecord) (core.Vec3, core.Ray, bool) {
	reflected := core.Reflect(rayIn.Direction, hit.Normal)
	reflected = reflected.Unit().Add(core.RandomInUnitSphere().Multiply(m.Fuzz))

	scattered := core.NewRayAtTime(hit.Point, reflected, rayIn.Time)
	return m.Albedo, scattered, true
}
