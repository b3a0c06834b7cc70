package material

import "github.com/arkhaios/photon-raytracer/pkg/core"

// Isotropic scatters uniformly in every direction; it's the phase function
// used inside a ConstantMedium (fog, smoke).
type Isotropic struct {
	nonEmitting
	tex Texture
}

// NewIsotropic builds an isotropic phase function from a solid color
func NewIsotropic(albedo core.Vec3) *Isotropic {
	return &Isotropic{tex: NewSolidColor(albedo)}
}

// NewIsotropicTexture builds an isotropic phase function from a texture
func NewIsotropicTexture(tex Texture) *Isotropic {
	return &Isotropic{tex: tex}
}

func (i *Isotropic) Scatter(rayIn core.Ray, hit HitRecord) (core.Vec3, core.Ray, bool) {
	scattered := core.NewRayAtTime(hit.Point, core.RandomInUnitSphere(), rayIn.Time)
	attenuation := i.tex.Value(hit.U, hit.V, hit.Point)
	return attenuation, scattered, true
}
