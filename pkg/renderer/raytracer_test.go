package renderer

import (
	"errors"
	"testing"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/integrator"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

// createTestWorld creates a small scene exercising every material
func createTestWorld() geometry.Hittable {
	return geometry.NewList(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)),
	)
}

func testRenderConfig(width, height int) RenderConfig {
	config := DefaultRenderConfig()
	config.Width = width
	config.Height = height
	config.SamplesPerPixel = 4
	config.MaxDepth = 10
	return config
}

func renderOrFail(t *testing.T, world geometry.Hittable, camera *Camera, config RenderConfig) (*Image, RenderStats) {
	t.Helper()
	img, stats, err := NewRaytracer(world, camera, config, nil).Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	return img, stats
}

func TestRaytracer_DeterministicAcrossWorkersAndTiles(t *testing.T) {
	config := testRenderConfig(16, 9)
	cameraConfig := pinholeConfig()
	cameraConfig.AspectRatio = 16.0 / 9.0
	camera := mustCamera(t, cameraConfig)
	world := createTestWorld()

	config.NumWorkers = 1
	config.TileSize = 32
	reference, _ := renderOrFail(t, world, camera, config)

	variants := []struct {
		workers, tileSize int
	}{
		{1, 3},
		{4, 32},
		{4, 5},
		{0, 1},
	}

	for _, v := range variants {
		config.NumWorkers = v.workers
		config.TileSize = v.tileSize
		img, _ := renderOrFail(t, world, camera, config)

		for i := range reference.Pixels {
			if img.Pixels[i] != reference.Pixels[i] {
				t.Errorf("workers=%d tile=%d: pixel %d differs: %v vs %v",
					v.workers, v.tileSize, i, img.Pixels[i], reference.Pixels[i])
				break
			}
		}
	}
}

func TestRaytracer_SeedChangesNoise(t *testing.T) {
	config := testRenderConfig(16, 9)
	camera := mustCamera(t, pinholeConfig())
	world := createTestWorld()

	first, _ := renderOrFail(t, world, camera, config)
	config.Seed++
	second, _ := renderOrFail(t, world, camera, config)

	differing := 0
	for i := range first.Pixels {
		if first.Pixels[i] != second.Pixels[i] {
			differing++
		}
	}
	if differing == 0 {
		t.Error("Expected a different seed to change at least one pixel")
	}
}

func TestRaytracer_EmptySceneMatchesBackgroundForAnySampleCount(t *testing.T) {
	world := geometry.NewList()
	camera := mustCamera(t, pinholeConfig())

	sky := core.NewVec3(0.3, 0.5, 0.7)
	expected := ToPixel(sky)

	for _, samples := range []int{1, 4, 16} {
		config := testRenderConfig(8, 8)
		config.SamplesPerPixel = samples
		config.Background = integrator.Background{Top: sky, Bottom: sky}

		img, _ := renderOrFail(t, world, camera, config)
		for i, p := range img.Pixels {
			if p != expected {
				t.Fatalf("spp=%d: pixel %d is %v, expected %v", samples, i, p, expected)
			}
		}
	}
}

func TestRaytracer_GradientTopIsBluer(t *testing.T) {
	world := geometry.NewList()
	camera := mustCamera(t, pinholeConfig())

	img, _ := renderOrFail(t, world, camera, testRenderConfig(9, 9))

	top := img.PixelAt(4, 0)
	bottom := img.PixelAt(4, 8)
	if top.R >= bottom.R {
		t.Errorf("Expected top row to be bluer than bottom row: top %v, bottom %v", top, bottom)
	}
	if top.B != bottom.B {
		t.Errorf("Blue channel is 1 across the whole gradient: top %v, bottom %v", top, bottom)
	}
}

func TestRaytracer_CenterPixelHitsSphere(t *testing.T) {
	// Depth 1 means any hit scatters into an exhausted budget and comes back black
	world := geometry.NewList(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
	)
	camera := mustCamera(t, pinholeConfig())

	config := testRenderConfig(11, 11)
	config.SamplesPerPixel = 1
	config.MaxDepth = 1

	img, _ := renderOrFail(t, world, camera, config)

	if center := img.PixelAt(5, 5); center != (Pixel{}) {
		t.Errorf("Expected black center pixel, got %v", center)
	}
	if corner := img.PixelAt(0, 0); corner == (Pixel{}) {
		t.Error("Expected corner pixel to show the background")
	}
}

func TestRaytracer_Stats(t *testing.T) {
	config := testRenderConfig(10, 7)
	config.TileSize = 3
	config.NumWorkers = 2

	_, stats := renderOrFail(t, createTestWorld(), mustCamera(t, pinholeConfig()), config)

	if stats.TotalPixels != 70 {
		t.Errorf("Expected 70 pixels, got %d", stats.TotalPixels)
	}
	if stats.TotalSamples != 70*config.SamplesPerPixel {
		t.Errorf("Expected %d samples, got %d", 70*config.SamplesPerPixel, stats.TotalSamples)
	}
	if stats.AverageSamples != float64(config.SamplesPerPixel) {
		t.Errorf("Expected average %d samples, got %f", config.SamplesPerPixel, stats.AverageSamples)
	}
	if stats.NumTiles != 12 || stats.NumWorkers != 2 {
		t.Errorf("Expected 12 tiles on 2 workers, got %d tiles on %d workers", stats.NumTiles, stats.NumWorkers)
	}
}

func TestRaytracer_MeanPixelVariance(t *testing.T) {
	camera := mustCamera(t, pinholeConfig())

	sky := core.NewVec3(0.3, 0.5, 0.7)
	flat := testRenderConfig(8, 8)
	flat.Background = integrator.Background{Top: sky, Bottom: sky}
	_, stats := renderOrFail(t, geometry.NewList(), camera, flat)
	if stats.MeanPixelVariance > 1e-12 {
		t.Errorf("Expected no variance against a flat sky, got %g", stats.MeanPixelVariance)
	}

	_, stats = renderOrFail(t, createTestWorld(), camera, testRenderConfig(8, 8))
	if stats.MeanPixelVariance <= 0 {
		t.Errorf("Expected scattering to add variance, got %g", stats.MeanPixelVariance)
	}
}

func TestRaytracer_InvalidConfiguration(t *testing.T) {
	camera := mustCamera(t, pinholeConfig())

	tests := []struct {
		name   string
		modify func(*RenderConfig)
	}{
		{"zero width", func(c *RenderConfig) { c.Width = 0 }},
		{"zero height", func(c *RenderConfig) { c.Height = 0 }},
		{"zero samples", func(c *RenderConfig) { c.SamplesPerPixel = 0 }},
		{"zero depth", func(c *RenderConfig) { c.MaxDepth = 0 }},
		{"zero tile size", func(c *RenderConfig) { c.TileSize = 0 }},
		{"negative workers", func(c *RenderConfig) { c.NumWorkers = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := testRenderConfig(4, 4)
			tt.modify(&config)

			img, _, err := NewRaytracer(createTestWorld(), camera, config, nil).Render()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
			if img != nil {
				t.Error("Expected no image")
			}
		})
	}

	t.Run("missing camera", func(t *testing.T) {
		_, _, err := NewRaytracer(createTestWorld(), nil, testRenderConfig(4, 4), nil).Render()
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("Expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("negative radius", func(t *testing.T) {
		world := geometry.NewList(geometry.NewSphere(core.NewVec3(0, 0, -1), -0.5, material.NewDielectric(1.5)))
		_, _, err := NewRaytracer(world, camera, testRenderConfig(4, 4), nil).Render()
		if !errors.Is(err, geometry.ErrInvalidGeometry) {
			t.Errorf("Expected ErrInvalidGeometry, got %v", err)
		}
	})
}

func TestRender(t *testing.T) {
	camera := mustCamera(t, pinholeConfig())

	img, err := Render(createTestWorld(), camera, 6, 5, 2, 5)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if img.Width != 6 || img.Height != 5 || len(img.Pixels) != 30 {
		t.Errorf("Expected 6x5 image, got %dx%d with %d pixels", img.Width, img.Height, len(img.Pixels))
	}

	if _, err := Render(createTestWorld(), camera, 6, 5, 0, 5); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected zero samples to be rejected, got %v", err)
	}
}

func TestRender_SinglePixel(t *testing.T) {
	img, err := Render(geometry.NewList(), mustCamera(t, pinholeConfig()), 1, 1, 1, 1)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if img.PixelAt(0, 0) == (Pixel{}) {
		t.Error("Expected a single background pixel")
	}
}

func TestWorkerPool_PanicBecomesError(t *testing.T) {
	// A tile renderer without a camera panics on the first pixel
	config := testRenderConfig(2, 2)
	tileRenderer := NewTileRenderer(geometry.NewList(), nil, integrator.NewPathTracingIntegrator(integrator.DefaultConfig()), config)

	pool := NewWorkerPool(tileRenderer, 1, 1)
	pool.Start()
	pool.SubmitTask(TileTask{
		Tile:       NewTileGrid(2, 2, 2)[0],
		TaskID:     7,
		PixelStats: make([]PixelStats, 4),
	})

	result, ok := pool.GetResult()
	pool.Stop()

	if !ok {
		t.Fatal("Expected a result")
	}
	if result.TaskID != 7 {
		t.Errorf("Expected task 7, got %d", result.TaskID)
	}
	if result.Error == nil {
		t.Error("Expected the panic to be reported as an error")
	}
}
