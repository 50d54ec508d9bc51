package scene

import (
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// linear converts a named display color to the linear albedo that renders back to it
// after gamma 2 correction
func linear(c color.RGBA) core.Vec3 {
	r := float64(c.R) / 255.0
	g := float64(c.G) / 255.0
	b := float64(c.B) / 255.0
	return core.NewVec3(r*r, g*g, b*b)
}

// Named colors shared by the scenes
var (
	groundGreen = linear(colornames.Olivedrab)
	groundGray  = linear(colornames.Darkgray)
	steelBlue   = linear(colornames.Steelblue)
	brickRed    = linear(colornames.Indianred)
	silver      = linear(colornames.Silver)
	gold        = linear(colornames.Goldenrod)
	skyBlue     = linear(colornames.Lightskyblue)
)
