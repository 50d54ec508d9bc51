package scene

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/integrator"
	"github.com/df07/go-sphere-raytracer/pkg/material"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// NewSimpleScene creates a single gray sphere resting on a huge gray ground sphere,
// seen through a pinhole camera at the origin
func NewSimpleScene() *Scene {
	cameraConfig := renderer.CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		AspectRatio: 16.0 / 9.0,
		VFov:        90.0,
	}

	gray := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))

	world := geometry.NewList(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, gray),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, gray),
	)

	return &Scene{
		World:        world,
		CameraConfig: cameraConfig,
		SamplingConfig: SamplingConfig{
			Width:           400,
			Height:          HeightForWidth(400, cameraConfig.AspectRatio),
			SamplesPerPixel: 100,
			MaxDepth:        50,
		},
		Background: integrator.DefaultBackground(),
	}
}
