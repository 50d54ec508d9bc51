package renderer

import (
	"math"
	"time"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels     int           // Total number of pixels rendered
	TotalSamples    int           // Total number of samples taken
	AverageSamples  float64       // Average samples per pixel
	SamplesPerPixel int           // Samples requested per pixel
	MaxDepth        int           // Bounce budget per sample
	NumWorkers      int           // Workers that shared the tiles
	NumTiles        int           // Number of tiles the image was cut into
	Duration        time.Duration // Wall time of the render

	// MeanPixelVariance averages the per-pixel luminance variance between samples.
	// A flat background gives 0.
	MeanPixelVariance float64

	varianceSum float64
}

// add merges the counters of a single tile into the totals
func (s *RenderStats) add(tile RenderStats) {
	s.TotalPixels += tile.TotalPixels
	s.TotalSamples += tile.TotalSamples
}

// finalize calculates derived statistics after all tiles are merged
func (s *RenderStats) finalize() {
	if s.TotalPixels > 0 {
		s.AverageSamples = float64(s.TotalSamples) / float64(s.TotalPixels)
		s.MeanPixelVariance = s.varianceSum / float64(s.TotalPixels)
	}
}

// PixelStats tracks sampling statistics for a single pixel
type PixelStats struct {
	ColorAccum       core.Vec3 // RGB accumulator for final result
	LuminanceAccum   float64   // Luminance accumulator
	LuminanceSqAccum float64   // Luminance squared for variance
	SampleCount      int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	luminance := color.Luminance()
	ps.LuminanceAccum += luminance
	ps.LuminanceSqAccum += luminance * luminance
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// Variance returns the luminance variance of the samples taken so far
func (ps *PixelStats) Variance() float64 {
	if ps.SampleCount == 0 {
		return 0
	}
	mean := ps.LuminanceAccum / float64(ps.SampleCount)
	meanSq := ps.LuminanceSqAccum / float64(ps.SampleCount)
	return math.Max(0, meanSq-mean*mean)
}

// AverageLuminance returns the mean display luminance of an image in [0, 1]
func AverageLuminance(img *Image) float64 {
	if len(img.Pixels) == 0 {
		return 0
	}
	var total float64
	for _, p := range img.Pixels {
		c := core.NewVec3(float64(p.R), float64(p.G), float64(p.B)).Multiply(1.0 / 255.0)
		total += c.Luminance()
	}
	return total / float64(len(img.Pixels))
}
