package imageio

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// ErrUnsupportedFormat is returned for file extensions or format names with no encoder
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Format names an output encoding
type Format string

const (
	FormatPPM  Format = "ppm"
	FormatPNG  Format = "png"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

// Formats lists every supported format
func Formats() []Format {
	return []Format{FormatPPM, FormatPNG, FormatBMP, FormatTIFF}
}

// FormatFromPath picks the format from a file extension
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "ppm":
		return FormatPPM, nil
	case "png":
		return FormatPNG, nil
	case "bmp":
		return FormatBMP, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// Encode writes the image to w in the given format
func Encode(w io.Writer, format Format, img *renderer.Image) error {
	switch format {
	case FormatPPM:
		return WritePPM(w, img)
	case FormatPNG:
		return png.Encode(w, img)
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// Save writes the image to path, choosing the encoder from the file extension
func Save(path string, img *renderer.Image) (err error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close image file: %w", closeErr)
		}
		// A failed save leaves nothing behind
		if err != nil {
			os.Remove(path)
		}
	}()

	w := bufio.NewWriter(file)
	if err := Encode(w, format, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", format, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write image file: %w", err)
	}
	return nil
}

// Load reads an image written by Save. PNG, BMP and TIFF go through image.Decode,
// PPM through ReadPPM.
func Load(path string) (*renderer.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	r := bufio.NewReader(file)
	if format, _ := FormatFromPath(path); format == FormatPPM {
		return ReadPPM(r)
	}

	decoded, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return fromImage(decoded), nil
}

// fromImage converts any decoded image to 8-bit pixels
func fromImage(src image.Image) *renderer.Image {
	bounds := src.Bounds()
	img := renderer.NewImage(bounds.Dx(), bounds.Dy())

	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			r, g, b, _ := src.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535]
			img.SetPixel(x, y, renderer.Pixel{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)})
		}
	}

	return img
}
