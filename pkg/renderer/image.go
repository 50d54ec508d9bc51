package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// Pixel is an 8-bit per channel display color
type Pixel struct {
	R, G, B uint8
}

// Image is a row-major grid of pixels; row 0 is the top of the picture
type Image struct {
	Width  int
	Height int
	Pixels []Pixel
}

// NewImage creates a black image of the given size
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pixels: make([]Pixel, width*height),
	}
}

// PixelAt returns the pixel at column x, row y
func (img *Image) PixelAt(x, y int) Pixel {
	return img.Pixels[y*img.Width+x]
}

// SetPixel stores the pixel at column x, row y
func (img *Image) SetPixel(x, y int, p Pixel) {
	img.Pixels[y*img.Width+x] = p
}

// ColorModel implements image.Image
func (img *Image) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image
func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.Width, img.Height)
}

// At implements image.Image so the standard encoders can consume an Image directly
func (img *Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(img.Bounds())) {
		return color.RGBA{}
	}
	p := img.PixelAt(x, y)
	return color.RGBA{R: p.R, G: p.G, B: p.B, A: 255}
}

// ToPixel converts a linear averaged color to a display pixel.
// Gamma 2 (square root), then clamp to [0, 0.999] and scale by 256.
func ToPixel(c core.Vec3) Pixel {
	return Pixel{
		R: toByte(c.X),
		G: toByte(c.Y),
		B: toByte(c.Z),
	}
}

func toByte(v float64) uint8 {
	// Negative and NaN channels both map to 0
	if !(v > 0) {
		return 0
	}
	v = math.Sqrt(v)
	if v > 0.999 {
		v = 0.999
	}
	return uint8(256 * v)
}
