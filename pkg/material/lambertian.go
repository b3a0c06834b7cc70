package material

import "github.com/arkhaios/photon-raytracer/pkg/core"

// Lambertian is an ideal matte surface: it scatters toward a direction drawn
// from the normal-offset unit sphere (a cosine-weighted distribution), with
// the texture value as attenuation.
type Lambertian struct {
	nonEmitting
	tex Texture
}

// NewLambertian builds a matte surface from a solid color
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{tex: NewSolidColor(albedo)}
}

// NewLambertianTexture builds a matte surface from an arbitrary texture
func NewLambertianTexture(tex Texture) *Lambertian {
	return &Lambertian{tex: tex}
}

func (l *Lambertian) Scatter(rayIn core.Ray, hit HitRecord) (core.Vec3, core.Ray, bool) {
	scatterDirection := hit.Normal.Add(core.RandomInUnitSphere())

	// A scatter direction that nearly cancels the normal would produce a
	// degenerate (near-zero) ray; fall back to the normal itself.
	if scatterDirection.NearZero() {
		scatterDirection = hit.Normal
	}

	scattered := core.NewRayAtTime(hit.Point, scatterDirection, rayIn.Time)
	attenuation := l.tex.Value(hit.U, hit.V, hit.Point)
	return attenuation, scattered, true
}
