package material

import "github.com/arkhaios/photon-raytracer/pkg/core"

// Dielectric is a clear refractive surface (glass, water, diamond).
// Attenuation is always (1,1,1): the medium is assumed perfectly
// transparent, with no internal absorption tinting.
type Dielectric struct {
	nonEmitting
	// RefractionIndex is the index of refraction relative to the
	// surrounding medium (vacuum/air = 1.0).
	RefractionIndex float64
}

// NewDielectric builds a dielectric surface with the given refraction index
func NewDielectric(refractionIndex float64) *Dielectric {
	return &Dielectric{RefractionIndex: refractionIndex}
}

func (d *Dielectric) Scatter(rayIn core.Ray, hit HitRecord) (core.Vec3, core.Ray, bool) {
	ri := d.RefractionIndex
	if hit.FrontFace {
		ri = 1.0 / d.RefractionIndex
	}

	refracted := core.Refract(rayIn.Direction.Unit(), hit.Normal, ri)
	scattered := core.NewRayAtTime(hit.Point, refracted, rayIn.Time)
	return core.Ones(), scattered, true
}
