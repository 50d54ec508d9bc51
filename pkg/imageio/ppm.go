package imageio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// WritePPM writes the image as plain-text PPM: a "P3" header with width, height and a
// maximum value of 255, then one "r g b" line per pixel, top row first
func WritePPM(w io.Writer, img *renderer.Image) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", img.Width, img.Height); err != nil {
		return err
	}
	for _, p := range img.Pixels {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", p.R, p.G, p.B); err != nil {
			return err
		}
	}

	return bw.Flush()
}

const initialPixelCapacity = 1 << 16

// ReadPPM parses a plain-text P3 image. Comments and values above 255 are rejected
// along with anything else WritePPM would not produce.
func ReadPPM(r io.Reader) (*renderer.Image, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	next := func(what string) (string, error) {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", err
			}
			return "", fmt.Errorf("ppm: unexpected end of data reading %s", what)
		}
		return scanner.Text(), nil
	}
	nextInt := func(what string, maxValue int) (int, error) {
		token, err := next(what)
		if err != nil {
			return 0, err
		}
		value, err := strconv.Atoi(token)
		if err != nil || value < 0 || value > maxValue {
			return 0, fmt.Errorf("ppm: invalid %s %q", what, token)
		}
		return value, nil
	}

	magic, err := next("magic number")
	if err != nil {
		return nil, err
	}
	if magic != "P3" {
		return nil, fmt.Errorf("ppm: unsupported magic number %q", magic)
	}

	const maxDimension = 1 << 16
	width, err := nextInt("width", maxDimension)
	if err != nil {
		return nil, err
	}
	height, err := nextInt("height", maxDimension)
	if err != nil {
		return nil, err
	}
	maxValue, err := nextInt("max value", 255)
	if err != nil {
		return nil, err
	}
	if maxValue != 255 {
		return nil, fmt.Errorf("ppm: unsupported max value %d", maxValue)
	}

	// Pixels grow as they are read, so a header alone cannot force a huge allocation
	count := width * height
	pixels := make([]renderer.Pixel, 0, min(count, initialPixelCapacity))
	for i := 0; i < count; i++ {
		var channels [3]uint8
		for c := range channels {
			v, err := nextInt("channel", 255)
			if err != nil {
				return nil, fmt.Errorf("pixel %d: %w", i, err)
			}
			channels[c] = uint8(v)
		}
		pixels = append(pixels, renderer.Pixel{R: channels[0], G: channels[1], B: channels[2]})
	}

	return &renderer.Image{Width: width, Height: height, Pixels: pixels}, nil
}
