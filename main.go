package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/imageio"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
)

// options holds the parsed command line
type options struct {
	sceneType string
	width     int
	samples   int
	depth     int
	workers   int
	seed      int64
	output    string
	help      bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout, renderer.NewDefaultLogger()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parseFlags reads the command line. Zero values mean "use the scene preset".
func parseFlags(args []string, stdout io.Writer) (options, *flag.FlagSet, error) {
	var opts options
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(stdout)

	fs.StringVar(&opts.sceneType, "scene", "default", "Scene type: "+strings.Join(scene.Names(), ", "))
	fs.IntVar(&opts.width, "width", 0, "Image width in pixels; height follows the camera aspect ratio (0 = scene preset)")
	fs.IntVar(&opts.samples, "samples", 0, "Samples per pixel (0 = scene preset)")
	fs.IntVar(&opts.depth, "depth", 0, "Maximum ray bounce depth (0 = scene preset)")
	fs.IntVar(&opts.workers, "workers", 0, "Number of parallel workers (0 = CPU count)")
	fs.Int64Var(&opts.seed, "seed", 42, "Random seed for sampling and procedural scenes")
	fs.StringVar(&opts.output, "out", "", "Output file (.ppm, .png, .bmp, .tif); default output/<scene>/render_<timestamp>.png")
	fs.BoolVar(&opts.help, "help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return options{}, nil, err
	}
	if fs.NArg() > 0 {
		return options{}, nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return opts, fs, nil
}

func printHelp(stdout io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(stdout, "Sphere Raytracer")
	fmt.Fprintln(stdout, "Usage: raytracer [options]")
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Options:")
	fs.PrintDefaults()
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Fprintf(stdout, "  %-8s - %s\n", info.ID, info.Description)
	}
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Output will be saved to output/<scene_type>/render_<timestamp>.png unless -out is given")
}

// run parses the arguments, renders the chosen scene and saves the image
func run(args []string, stdout io.Writer, logger core.Logger) error {
	opts, fs, err := parseFlags(args, stdout)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	if opts.help {
		printHelp(stdout, fs)
		return nil
	}

	logger.Printf("Starting Sphere Raytracer...\n")

	selectedScene, err := createScene(opts.sceneType, opts.seed)
	if err != nil {
		return err
	}
	logger.Printf("Using %s scene (%d spheres)...\n", selectedScene.Name, selectedScene.GetPrimitiveCount())

	camera, err := selectedScene.NewCamera()
	if err != nil {
		return fmt.Errorf("failed to create camera: %w", err)
	}
	config := applyOverrides(selectedScene, opts)

	outputFile := opts.output
	if outputFile == "" {
		outputFile = defaultOutputPath(selectedScene.Name, time.Now())
	}
	if _, err := imageio.FormatFromPath(outputFile); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(outputFile), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	raytracer := renderer.NewRaytracer(selectedScene.World, camera, config, logger)
	img, stats, err := raytracer.Render()
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	logger.Printf("Samples per pixel: %.1f across %d tiles\n", stats.AverageSamples, stats.NumTiles)

	if err := imageio.Save(outputFile, img); err != nil {
		return err
	}

	logger.Printf("Render saved as %s\n", outputFile)
	return nil
}

// createScene builds a built-in scene by name
func createScene(sceneType string, seed int64) (*scene.Scene, error) {
	return scene.NewScene(sceneType, seed)
}

// applyOverrides merges command line values over the scene presets
func applyOverrides(s *scene.Scene, opts options) renderer.RenderConfig {
	config := s.RenderConfig()
	if opts.width > 0 {
		config.Width = opts.width
		config.Height = scene.HeightForWidth(opts.width, s.CameraConfig.AspectRatio)
	}
	if opts.samples > 0 {
		config.SamplesPerPixel = opts.samples
	}
	if opts.depth > 0 {
		config.MaxDepth = opts.depth
	}
	config.NumWorkers = opts.workers
	config.Seed = uint64(opts.seed)
	return config
}

// defaultOutputPath returns output/<scene>/render_<timestamp>.png
func defaultOutputPath(sceneName string, now time.Time) string {
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", sceneName, fmt.Sprintf("render_%s.png", timestamp))
}
