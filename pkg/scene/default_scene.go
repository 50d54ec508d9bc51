package scene

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/integrator"
	"github.com/df07/go-sphere-raytracer/pkg/material"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// NewDefaultScene creates a default scene with spheres of every material on a large ground sphere
func NewDefaultScene() *Scene {
	cameraConfig := renderer.CameraConfig{
		Center:        core.NewVec3(0, 0.75, 2), // Position camera higher and farther back
		LookAt:        core.NewVec3(0, 0.5, -1), // Look at the sphere center
		Up:            core.NewVec3(0, 1, 0),    // Standard up direction
		AspectRatio:   16.0 / 9.0,
		VFov:          40.0,
		Aperture:      0.05, // Slight depth of field blur
		FocusDistance: 0.0,  // Auto-calculate focus distance
	}

	// Create materials
	lambertianGround := material.NewLambertian(groundGreen)
	lambertianBlue := material.NewLambertian(steelBlue)
	lambertianRed := material.NewLambertian(brickRed)
	metalSilver := material.NewMetal(silver, 0.0)
	metalGold := material.NewMetal(gold, 0.3)
	materialGlass := material.NewDielectric(1.5)

	world := geometry.NewList(
		// Ground is a huge sphere so the horizon stays finite
		geometry.NewSphere(core.NewVec3(0, -1000, -1), 1000, lambertianGround),

		geometry.NewSphere(core.NewVec3(0, 0.5, -1), 0.5, lambertianRed),
		geometry.NewSphere(core.NewVec3(-1, 0.5, -1), 0.5, metalSilver),
		geometry.NewSphere(core.NewVec3(1, 0.5, -1), 0.5, metalGold),
		geometry.NewSphere(core.NewVec3(0.5, 0.25, -0.5), 0.25, materialGlass),

		// Glass marble with a blue core
		geometry.NewList(
			geometry.NewSphere(core.NewVec3(-0.5, 0.25, -0.5), 0.25, materialGlass),
			geometry.NewSphere(core.NewVec3(-0.5, 0.25, -0.5), 0.15, lambertianBlue),
		),
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
		Background: integrator.Background{
			Top:    skyBlue,
			Bottom: core.NewVec3(1, 1, 1),
		},
	}
}
