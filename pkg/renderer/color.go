package renderer

import (
	"image"
	"math"

	"github.com/arkhaios/photon-raytracer/pkg/core"
)

var posInf = math.Inf(1)

// writeColor gamma-corrects an accumulated radiance sample (square-root
// gamma, matching a gamma of 2) and writes it into img at (x, y). The input
// is expected to already be divided by its sample count.
func writeColor(pixelColor core.Vec3, img *image.RGBA, x, y int) {
	toByte := func(linear float64) uint8 {
		v := math.Sqrt(linear) * 256.0
		if v < 0 {
			v = 0
		}
		if v > 255 {
			v = 255
		}
		return uint8(v)
	}

	offset := img.PixOffset(x, y)
	img.Pix[offset] = toByte(pixelColor.X)
	img.Pix[offset+1] = toByte(pixelColor.Y)
	img.Pix[offset+2] = toByte(pixelColor.Z)
	img.Pix[offset+3] = 255
}
