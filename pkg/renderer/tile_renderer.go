package renderer

import (
	"image"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/integrator"
)

// TileRenderer handles the actual rendering of individual tiles using an integrator
type TileRenderer struct {
	world      geometry.Hittable
	camera     *Camera
	integrator integrator.Integrator
	width      int
	height     int
	samples    int
	seed       uint64
}

// NewTileRenderer creates a tile renderer for one image
func NewTileRenderer(world geometry.Hittable, camera *Camera, integratorInst integrator.Integrator, config RenderConfig) *TileRenderer {
	return &TileRenderer{
		world:      world,
		camera:     camera,
		integrator: integratorInst,
		width:      config.Width,
		height:     config.Height,
		samples:    config.SamplesPerPixel,
		seed:       config.Seed,
	}
}

// RenderTileBounds renders pixels within the specified bounds into the shared
// row-major pixel stats. Tiles never overlap, so no locking is needed.
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, pixelStats []PixelStats, sampler *core.RandomSampler) RenderStats {
	stats := RenderStats{}

	for row := bounds.Min.Y; row < bounds.Max.Y; row++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			index := row*tr.width + i

			// Each pixel gets its own stream so results do not depend on scheduling
			sampler.Seed(tr.seed, uint64(index))

			ps := &pixelStats[index]
			tr.samplePixel(i, row, ps, sampler)

			stats.TotalPixels++
			stats.TotalSamples += ps.SampleCount
		}
	}

	return stats
}

// samplePixel accumulates the configured number of samples for one pixel
func (tr *TileRenderer) samplePixel(i, row int, ps *PixelStats, sampler core.Sampler) {
	// Camera coordinates put j = 0 at the bottom of the picture
	j := tr.height - 1 - row
	sDenom := float64(max(tr.width-1, 1))
	tDenom := float64(max(tr.height-1, 1))

	for ps.SampleCount < tr.samples {
		jitter := sampler.Get2D()
		s := (float64(i) + jitter.X) / sDenom
		t := (float64(j) + jitter.Y) / tDenom

		ray := tr.camera.GetRay(s, t, sampler)
		ps.AddSample(tr.integrator.RayColor(ray, tr.world, sampler))
	}
}
