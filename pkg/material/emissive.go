package material

import "github.com/arkhaios/photon-raytracer/pkg/core"

// DiffuseLight is an emit-only surface: it never scatters, only emits.
type DiffuseLight struct {
	tex Texture
}

// NewDiffuseLight builds a light surface from a solid emission color
func NewDiffuseLight(emit core.Vec3) *DiffuseLight {
	return &DiffuseLight{tex: NewSolidColor(emit)}
}

// NewDiffuseLightTexture builds a light surface from an arbitrary texture
func NewDiffuseLightTexture(tex Texture) *DiffuseLight {
	return &DiffuseLight{tex: tex}
}

func (d *DiffuseLight) Scatter(rayIn core.Ray, hit HitRecord) (core.Vec3, core.Ray, bool) {
	return core.Vec3{}, core.Ray{}, false
}

func (d *DiffuseLight) Emitted(u, v float64, p core.Vec3) core.Vec3 {
	return d.tex.Value(u, v, p)
}
