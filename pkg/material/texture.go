package material

import (
	"math"

	"github.com/arkhaios/photon-raytracer/pkg/core"
)

// Texture maps a surface coordinate (and its world position, for 3D
// procedural textures) to a color.
type Texture interface {
	Value(u, v float64, p core.Vec3) core.Vec3
}

// SolidColor is a texture that returns the same color everywhere
type SolidColor struct {
	Albedo core.Vec3
}

// NewSolidColor wraps a color as a texture
func NewSolidColor(albedo core.Vec3) *SolidColor {
	return &SolidColor{Albedo: albedo}
}

// NewSolidColorRGB wraps explicit RGB components as a texture
func NewSolidColorRGB(r, g, b float64) *SolidColor {
	return &SolidColor{Albedo: core.NewVec3(r, g, b)}
}

func (s *SolidColor) Value(u, v float64, p core.Vec3) core.Vec3 {
	return s.Albedo
}

// CheckerTexture alternates between two sub-textures on a 3D grid, based on
// the parity of the sum of the floored, scaled coordinates.
type CheckerTexture struct {
	invScale   float64
	even, odd Texture
}

// NewCheckerTexture builds a checker pattern with the given cell scale
func NewCheckerTexture(scale float64, even, odd Texture) *CheckerTexture {
	return &CheckerTexture{invScale: 1.0 / scale, even: even, odd: odd}
}

// NewCheckerTextureColors builds a checker pattern from two solid colors
func NewCheckerTextureColors(scale float64, even, odd core.Vec3) *CheckerTexture {
	return NewCheckerTexture(scale, NewSolidColor(even), NewSolidColor(odd))
}

func (c *CheckerTexture) Value(u, v float64, p core.Vec3) core.Vec3 {
	xint := int(math.Floor(c.invScale * p.X))
	yint := int(math.Floor(c.invScale * p.Y))
	zint := int(math.Floor(c.invScale * p.Z))

	if (xint+yint+zint)%2 == 0 {
		return c.even.Value(u, v, p)
	}
	return c.odd.Value(u, v, p)
}

// BGRImageProvider exposes a decoded image as row-major BGR byte triples,
// one row per scanline top-to-bottom. Decoding an actual image file into
// this shape is the caller's responsibility.
type BGRImageProvider interface {
	Width() int
	Height() int
	// At returns the (B, G, R) bytes at pixel (x, y), 0 <= x < Width(), 0 <= y < Height().
	At(x, y int) (b, g, r uint8)
}

// ImageTexture samples a BGRImageProvider by nearest pixel, applying a
// gamma-decode (squaring) to bring the stored sRGB-ish bytes into the
// renderer's linear color space.
type ImageTexture struct {
	img BGRImageProvider
}

// NewImageTexture wraps a decoded image as a texture
func NewImageTexture(img BGRImageProvider) *ImageTexture {
	return &ImageTexture{img: img}
}

func (t *ImageTexture) color(u, v float64) core.Vec3 {
	if u <= 0 {
		u = 0.001
	}
	if u >= 1 {
		u = 0.999
	}
	if v <= 0 {
		v = 0.001
	}
	if v >= 1 {
		v = 0.999
	}

	uImg := int(u * float64(t.img.Width()))
	vImg := int((1.0 - v) * float64(t.img.Height()))
	b, g, r := t.img.At(uImg, vImg)

	return core.NewVec3(float64(r), float64(g), float64(b)).Multiply(1.0 / 255.0)
}

func (t *ImageTexture) Value(u, v float64, p core.Vec3) core.Vec3 {
	if t.img == nil || t.img.Width() == 0 || t.img.Height() == 0 {
		return core.NewVec3(0, 1, 1)
	}
	c := t.color(u, v)
	return core.NewVec3(c.X*c.X, c.Y*c.Y, c.Z*c.Z)
}

// NoiseTexture is a marble-like pattern built from turbulent Perlin noise:
// a sine wave along Z, phase-shifted by accumulated turbulence.
type NoiseTexture struct {
	noise *core.Perlin
	scale float64
}

// NewNoiseTexture builds a noise texture at the given spatial frequency
func NewNoiseTexture(scale float64) *NoiseTexture {
	return &NoiseTexture{noise: core.NewPerlin(), scale: scale}
}

func (n *NoiseTexture) Value(u, v float64, p core.Vec3) core.Vec3 {
	factor := 1.0 + math.Sin(n.scale*p.Z+10.0*n.noise.Turb(p, 7))
	return core.NewVec3(0.5, 0.5, 0.5).Multiply(factor)
}
