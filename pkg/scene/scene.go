package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/integrator"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// ErrUnknownScene is returned when a scene name is not registered
var ErrUnknownScene = errors.New("unknown scene")

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	World          geometry.Hittable // Objects in the scene
	CameraConfig   renderer.CameraConfig
	SamplingConfig SamplingConfig
	Background     integrator.Background
}

// SamplingConfig contains the rendering presets of a scene
type SamplingConfig struct {
	Width           int // Image width
	Height          int // Image height
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// HeightForWidth returns the image height matching the camera aspect ratio
func HeightForWidth(width int, aspectRatio float64) int {
	return max(1, int(float64(width)/aspectRatio))
}

// NewScene builds the named scene. The seed only affects procedurally placed objects.
func NewScene(name string, seed int64) (*Scene, error) {
	info, ok := lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownScene, name, Names())
	}

	s := info.build(seed)
	s.Name = info.ID
	if err := s.World.Validate(); err != nil {
		return nil, fmt.Errorf("scene %s: %w", info.ID, err)
	}
	return s, nil
}

// NewCamera creates the camera described by the scene
func (s *Scene) NewCamera() (*renderer.Camera, error) {
	return renderer.NewCamera(s.CameraConfig)
}

// RenderConfig returns a render configuration using the scene presets
func (s *Scene) RenderConfig() renderer.RenderConfig {
	config := renderer.DefaultRenderConfig()
	config.Width = s.SamplingConfig.Width
	config.Height = s.SamplingConfig.Height
	config.SamplesPerPixel = s.SamplingConfig.SamplesPerPixel
	config.MaxDepth = s.SamplingConfig.MaxDepth
	config.Background = s.Background
	return config
}

// GetPrimitiveCount returns the total number of spheres in the scene
func (s *Scene) GetPrimitiveCount() int {
	return s.World.PrimitiveCount()
}
