package renderer

import (
	"errors"
	"fmt"
	"time"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/integrator"
)

// ErrInvalidConfig is returned when render or camera settings cannot produce an image
var ErrInvalidConfig = errors.New("invalid render config")

// RenderConfig contains rendering configuration
type RenderConfig struct {
	Width           int                   // Image width in pixels
	Height          int                   // Image height in pixels
	SamplesPerPixel int                   // Number of rays per pixel
	MaxDepth        int                   // Maximum ray bounce depth
	NumWorkers      int                   // Number of parallel workers (0 = use CPU count)
	TileSize        int                   // Size of each square tile
	Seed            uint64                // Base seed for every pixel's random stream
	Background      integrator.Background // Color of rays that leave the scene
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		NumWorkers:      0, // Auto-detect CPU count
		TileSize:        32,
		Seed:            42,
		Background:      integrator.DefaultBackground(),
	}
}

// Validate rejects settings that would fail mid-render or produce an empty image
func (c RenderConfig) Validate() error {
	switch {
	case c.Width < 1 || c.Height < 1:
		return fmt.Errorf("%w: image size %dx%d must be at least 1x1", ErrInvalidConfig, c.Width, c.Height)
	case c.SamplesPerPixel < 1:
		return fmt.Errorf("%w: samples per pixel %d must be at least 1", ErrInvalidConfig, c.SamplesPerPixel)
	case c.MaxDepth < 1:
		return fmt.Errorf("%w: max depth %d must be at least 1", ErrInvalidConfig, c.MaxDepth)
	case c.TileSize < 1:
		return fmt.Errorf("%w: tile size %d must be at least 1", ErrInvalidConfig, c.TileSize)
	case c.NumWorkers < 0:
		return fmt.Errorf("%w: worker count %d must not be negative", ErrInvalidConfig, c.NumWorkers)
	}
	return nil
}

// Raytracer renders a world through a camera using a pool of tile workers
type Raytracer struct {
	world  geometry.Hittable
	camera *Camera
	config RenderConfig
	logger core.Logger
}

// NewRaytracer creates a new raytracer. A nil logger discards output.
func NewRaytracer(world geometry.Hittable, camera *Camera, config RenderConfig, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = NopLogger{}
	}
	return &Raytracer{
		world:  world,
		camera: camera,
		config: config,
		logger: logger,
	}
}

// Render renders the image to completion. Configuration problems are reported before
// any pixel is sampled.
func (rt *Raytracer) Render() (*Image, RenderStats, error) {
	if err := rt.config.Validate(); err != nil {
		return nil, RenderStats{}, err
	}
	if rt.camera == nil {
		return nil, RenderStats{}, fmt.Errorf("%w: camera is required", ErrInvalidConfig)
	}
	if err := rt.world.Validate(); err != nil {
		return nil, RenderStats{}, fmt.Errorf("invalid world: %w", err)
	}

	width, height := rt.config.Width, rt.config.Height
	startTime := time.Now()

	pathTracer := integrator.NewPathTracingIntegrator(integrator.Config{
		MaxDepth:   rt.config.MaxDepth,
		Background: rt.config.Background,
	})
	tileRenderer := NewTileRenderer(rt.world, rt.camera, pathTracer, rt.config)

	tiles := NewTileGrid(width, height, rt.config.TileSize)
	pixelStats := make([]PixelStats, width*height)

	workerPool := NewWorkerPool(tileRenderer, len(tiles), rt.config.NumWorkers)
	workerPool.Start()

	rt.logger.Printf("Rendering %dx%d, %d samples/pixel, depth %d, %d primitives (%d tiles, %d workers)...\n",
		width, height, rt.config.SamplesPerPixel, rt.config.MaxDepth, rt.world.PrimitiveCount(),
		len(tiles), workerPool.GetNumWorkers())

	for taskID, tile := range tiles {
		workerPool.SubmitTask(TileTask{
			Tile:       tile,
			TaskID:     taskID,
			PixelStats: pixelStats,
		})
	}

	stats := RenderStats{
		SamplesPerPixel: rt.config.SamplesPerPixel,
		MaxDepth:        rt.config.MaxDepth,
		NumWorkers:      workerPool.GetNumWorkers(),
		NumTiles:        len(tiles),
	}

	// Drain every result before stopping, so no worker is left blocked
	var renderErr error
	for range tiles {
		result, ok := workerPool.GetResult()
		if !ok {
			renderErr = fmt.Errorf("worker pool closed unexpectedly")
			break
		}
		if result.Error != nil && renderErr == nil {
			renderErr = result.Error
		}
		stats.add(result.Stats)
	}
	workerPool.Stop()

	if renderErr != nil {
		return nil, RenderStats{}, renderErr
	}

	img := rt.assembleImage(pixelStats, &stats)

	stats.finalize()
	stats.Duration = time.Since(startTime)

	rt.logger.Printf("Render completed in %v (%d samples, average luminance %.3f, mean pixel variance %.5f)\n",
		stats.Duration, stats.TotalSamples, AverageLuminance(img), stats.MeanPixelVariance)

	return img, stats, nil
}

// assembleImage tone maps the accumulated pixel statistics in row-major order and
// sums the per-pixel luminance variance into stats
func (rt *Raytracer) assembleImage(pixelStats []PixelStats, stats *RenderStats) *Image {
	img := NewImage(rt.config.Width, rt.config.Height)
	for i := range pixelStats {
		img.Pixels[i] = ToPixel(pixelStats[i].GetColor())
		stats.varianceSum += pixelStats[i].Variance()
	}
	return img
}

// Render renders the world through the camera with the default background, seed and
// worker count.
func Render(world geometry.Hittable, camera *Camera, width, height, samplesPerPixel, maxDepth int) (*Image, error) {
	config := DefaultRenderConfig()
	config.Width = width
	config.Height = height
	config.SamplesPerPixel = samplesPerPixel
	config.MaxDepth = maxDepth

	img, _, err := NewRaytracer(world, camera, config, nil).Render()
	return img, err
}
