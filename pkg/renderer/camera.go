package renderer

import (
	"fmt"
	"math"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// CameraConfig contains the parameters a camera is built from
type CameraConfig struct {
	Center        core.Vec3 // Camera position (look from)
	LookAt        core.Vec3 // Point the camera is looking at
	Up            core.Vec3 // Up direction used to orient the view
	VFov          float64   // Vertical field of view in degrees
	AspectRatio   float64   // Width / height
	Aperture      float64   // Lens diameter; 0 gives a pinhole camera
	FocusDistance float64   // Distance to the plane in focus; 0 = distance to LookAt
}

// Camera generates rays for rendering
type Camera struct {
	origin        core.Vec3
	focusDistance float64
	horizontal    core.Vec3
	vertical      core.Vec3
	u, v, w       core.Vec3 // Orthonormal camera basis
	lensRadius    float64
}

// NewCamera validates the configuration and precomputes the view basis
func NewCamera(config CameraConfig) (*Camera, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	focusDistance := config.FocusDistance
	if focusDistance == 0 {
		focusDistance = config.Center.Subtract(config.LookAt).Length()
	}

	theta := config.VFov * math.Pi / 180.0
	viewportHeight := 2.0 * math.Tan(theta/2.0)
	viewportWidth := config.AspectRatio * viewportHeight

	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	return &Camera{
		origin:        config.Center,
		focusDistance: focusDistance,
		horizontal:    u.Multiply(focusDistance * viewportWidth),
		vertical:      v.Multiply(focusDistance * viewportHeight),
		u:             u,
		v:             v,
		w:             w,
		lensRadius:    config.Aperture / 2.0,
	}, nil
}

// Validate rejects configurations that cannot produce a view
func (c CameraConfig) Validate() error {
	if !(c.AspectRatio > 0) || math.IsInf(c.AspectRatio, 0) {
		return fmt.Errorf("%w: camera aspect ratio %f must be positive", ErrInvalidConfig, c.AspectRatio)
	}
	if !(c.VFov > 0 && c.VFov < 180) {
		return fmt.Errorf("%w: camera vertical fov %f must be in (0, 180)", ErrInvalidConfig, c.VFov)
	}
	if !(c.Aperture >= 0) {
		return fmt.Errorf("%w: camera aperture %f must not be negative", ErrInvalidConfig, c.Aperture)
	}
	if !(c.FocusDistance >= 0) {
		return fmt.Errorf("%w: camera focus distance %f must not be negative", ErrInvalidConfig, c.FocusDistance)
	}
	view := c.Center.Subtract(c.LookAt)
	if view.NearZero() {
		return fmt.Errorf("%w: camera center and look-at point coincide", ErrInvalidConfig)
	}
	if c.Up.Cross(view).NearZero() {
		return fmt.Errorf("%w: camera up vector %v is parallel to the view direction", ErrInvalidConfig, c.Up)
	}
	return nil
}

// GetRay generates a ray for screen coordinates (s, t) where 0 <= s,t <= 1 and
// (0, 0) is the lower-left corner. The sampler is only used when the lens has an aperture.
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	screenPoint := c.origin.
		Subtract(c.w.Multiply(c.focusDistance)).
		Add(c.horizontal.Multiply(s - 0.5)).
		Add(c.vertical.Multiply(t - 0.5))

	origin := c.origin
	if c.lensRadius > 0 {
		rd := core.RandomInUnitDisk(sampler).Multiply(c.lensRadius)
		origin = origin.Add(c.u.Multiply(rd.X)).Add(c.v.Multiply(rd.Y))
	}

	return core.NewRay(origin, screenPoint.Subtract(origin))
}
