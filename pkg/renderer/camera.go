// Package renderer implements the path integrator, the viewport/defocus
// camera model, and the tiled bounded-concurrency render loop that drives
// them over a scene graph.
package renderer

import (
	"math"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/arkhaios/photon-raytracer/pkg/core"
)

// Camera holds render configuration and, after Initialize, the derived
// viewport/defocus geometry used to generate primary rays.
type Camera struct {
	ImageWidth      int
	AspectRatio     float64
	SamplesPerPixel int
	MaxDepth        int

	VFov     float64
	LookFrom core.Vec3
	LookAt   core.Vec3
	VUp      core.Vec3

	DefocusAngle float64
	FocusDist    float64

	Background core.Vec3

	// PartNumX/PartNumY divide the image into a grid of render tiles; both
	// image dimensions must divide evenly by the corresponding count.
	PartNumX, PartNumY int
	// ThreadLimit bounds how many tiles render concurrently.
	ThreadLimit int
	// EnableSSAA switches between stratified sub-pixel sampling and plain
	// jittered sampling.
	EnableSSAA bool

	Logger zerolog.Logger

	imageHeight int
	center      core.Vec3
	pixel00Loc  core.Vec3
	pixelDeltaU core.Vec3
	pixelDeltaV core.Vec3

	u, v, w core.Vec3

	defocusDiskU core.Vec3
	defocusDiskV core.Vec3

	subPixelCount int
	partWidth     int
	partHeight    int
}

// NewCamera returns a Camera with the source's defaults and a disabled logger
func NewCamera() *Camera {
	return &Camera{
		ImageWidth:      400,
		AspectRatio:     16.0 / 9.0,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		VFov:            90,
		LookFrom:        core.Vec3{},
		LookAt:          core.NewVec3(0, 0, -1),
		VUp:             core.NewVec3(0, 1, 0),
		DefocusAngle:    0,
		FocusDist:       10,
		Background:      core.Vec3{},
		PartNumX:        20,
		PartNumY:        20,
		ThreadLimit:     16,
		EnableSSAA:      true,
		Logger:          zerolog.Nop(),
	}
}

// Initialize derives the viewport/defocus/tile geometry from the public
// configuration fields. It must be called (directly, or via Render) before
// generating any rays.
func (c *Camera) Initialize() error {
	c.imageHeight = int(float64(c.ImageWidth) / c.AspectRatio)
	if c.imageHeight < 1 {
		c.imageHeight = 1
	}

	c.subPixelCount = int(math.Floor(math.Sqrt(float64(c.SamplesPerPixel)) + 0.999))
	if c.subPixelCount < 1 {
		return errors.Errorf("renderer: samples per pixel %d yields zero SSAA sub-samples", c.SamplesPerPixel)
	}

	if c.PartNumY == 0 || c.imageHeight%c.PartNumY != 0 {
		return errors.Errorf("renderer: image height %d not divisible by part_num_y %d", c.imageHeight, c.PartNumY)
	}
	if c.PartNumX == 0 || c.ImageWidth%c.PartNumX != 0 {
		return errors.Errorf("renderer: image width %d not divisible by part_num_x %d", c.ImageWidth, c.PartNumX)
	}
	c.partHeight = c.imageHeight / c.PartNumY
	c.partWidth = c.ImageWidth / c.PartNumX

	theta := c.VFov * math.Pi / 180.0
	h := math.Tan(theta / 2.0)

	viewportHeight := 2.0 * h * c.FocusDist
	viewportWidth := viewportHeight * float64(c.ImageWidth) / float64(c.imageHeight)
	c.center = c.LookFrom

	c.w = c.LookFrom.Subtract(c.LookAt).Unit()
	c.u = c.VUp.Cross(c.w).Unit()
	c.v = c.w.Cross(c.u)

	viewportU := c.u.Multiply(viewportWidth)
	viewportV := c.v.Multiply(-viewportHeight)

	c.pixelDeltaU = viewportU.Multiply(1.0 / float64(c.ImageWidth))
	c.pixelDeltaV = viewportV.Multiply(1.0 / float64(c.imageHeight))

	viewportUpperLeft := c.center.
		Subtract(c.w.Multiply(c.FocusDist)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	c.pixel00Loc = viewportUpperLeft.Add(c.pixelDeltaU.Add(c.pixelDeltaV).Multiply(0.5))

	defocusRadius := c.FocusDist * math.Tan((c.DefocusAngle/2.0)*math.Pi/180.0)
	c.defocusDiskU = c.u.Multiply(defocusRadius)
	c.defocusDiskV = c.v.Multiply(defocusRadius)

	return nil
}

// ImageHeight returns the computed image height; valid after Initialize.
func (c *Camera) ImageHeight() int { return c.imageHeight }

func (c *Camera) defocusDiskSample() core.Vec3 {
	p := core.RandomInUnitDisk()
	return c.center.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
}

func (c *Camera) rayOrigin() core.Vec3 {
	if c.DefocusAngle <= 0 {
		return c.center
	}
	return c.defocusDiskSample()
}

// getRay returns a randomly jittered primary ray through pixel (i, j)
func (c *Camera) getRay(i, j int) core.Ray {
	pixelSample := c.pixel00Loc.
		Add(c.pixelDeltaU.Multiply(float64(i) + core.RandomDoubleRange(-0.5, 0.5))).
		Add(c.pixelDeltaV.Multiply(float64(j) + core.RandomDoubleRange(-0.5, 0.5)))

	origin := c.rayOrigin()
	direction := pixelSample.Subtract(origin)
	return core.NewRayAtTime(origin, direction, core.RandomDouble())
}

// getRaySubpixel returns a stratified sample subY/subX of subPixelCount^2
// within pixel (i, j), for SSAA.
func (c *Camera) getRaySubpixel(i, j, subY, subX int) core.Ray {
	n := float64(c.subPixelCount)
	pixelSample := c.pixel00Loc.
		Add(c.pixelDeltaU.Multiply(float64(i) + (float64(subX*2+1))/n/2.0 - 0.5)).
		Add(c.pixelDeltaV.Multiply(float64(j) + (float64(subY*2+1))/n/2.0 - 0.5))

	origin := c.rayOrigin()
	direction := pixelSample.Subtract(origin)
	return core.NewRayAtTime(origin, direction, core.RandomDouble())
}
