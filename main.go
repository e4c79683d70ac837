package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-pathtracer/pkg/output"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// errUnknownFormat is returned for output formats other than ppm and png
var errUnknownFormat = errors.New("unknown output format")

// Config holds the command line options
type Config struct {
	SceneType  string
	Width      int
	Aspect     float64
	Samples    int
	MaxDepth   int
	Seed       int64
	NumWorkers int
	OutputDir  string
	Format     string
}

func main() {
	config := Config{}

	// Parse command line flags
	flag.StringVar(&config.SceneType, "scene", "default", "Scene type: "+strings.Join(scene.Names(), ", "))
	flag.IntVar(&config.Width, "width", 0, "Image width in pixels (0 = scene default)")
	flag.Float64Var(&config.Aspect, "aspect", 0, "Aspect ratio, width over height (0 = scene default)")
	flag.IntVar(&config.Samples, "samples", 0, "Samples per pixel (0 = scene default)")
	flag.IntVar(&config.MaxDepth, "depth", 0, "Maximum ray bounce depth (0 = scene default)")
	flag.Int64Var(&config.Seed, "seed", renderer.DefaultRaytracerConfig().Seed, "Random seed")
	flag.IntVar(&config.NumWorkers, "workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	flag.StringVar(&config.OutputDir, "out", "output", "Output directory")
	flag.StringVar(&config.Format, "format", "ppm", "Output format: ppm or png")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		showHelp()
		return
	}

	if err := run(config); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func showHelp() {
	fmt.Println("Path Tracer")
	fmt.Println("Usage: pathtracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Printf("  %-11s - %s\n", info.ID, info.Description)
	}
	fmt.Println()
	fmt.Println("Output will be saved to <out>/<scene>/latest_image.<format> and <out>/<scene>/images/<timestamp>.<format>")
}

// run renders the configured scene and writes it to disk
func run(config Config) error {
	fmt.Println("Starting Path Tracer...")

	sceneObj, err := createScene(config.SceneType, cameraOverrides(config))
	if err != nil {
		return err
	}
	fmt.Printf("Using %s scene (%d objects)...\n", sceneObj.Name, sceneObj.GetPrimitiveCount())

	raytracer, err := sceneObj.NewRaytracer(renderer.RaytracerConfig{
		Seed:       config.Seed,
		NumWorkers: config.NumWorkers,
	}, renderer.NewDefaultLogger())
	if err != nil {
		return fmt.Errorf("failed to set up camera: %w", err)
	}

	startTime := time.Now()
	frame := raytracer.Render()
	renderTime := time.Since(startTime)

	fmt.Printf("Render completed in %v\n", renderTime)
	fmt.Printf("Samples: %d per pixel, %d total (%.0f samples/sec on %d workers)\n",
		frame.Stats.SamplesPerPixel, frame.Stats.TotalSamples, frame.Stats.SamplesPerSecond(), frame.Stats.Workers)

	data, err := encodeFrame(frame, config.Format)
	if err != nil {
		return err
	}

	writer := output.NewWriter(createOutputDir(config.OutputDir, sceneObj.Name))
	latest, history, err := writer.Write(data, config.Format)
	if err != nil {
		return err
	}

	fmt.Printf("Render saved as %s (copy in %s)\n", latest, history)
	return nil
}

// cameraOverrides turns the non-zero command line options into a camera override
func cameraOverrides(config Config) renderer.CameraConfig {
	return renderer.CameraConfig{
		Width:           config.Width,
		AspectRatio:     config.Aspect,
		SamplesPerPixel: config.Samples,
		MaxDepth:        config.MaxDepth,
	}
}

// createScene creates a scene based on the scene type string
func createScene(sceneType string, overrides ...renderer.CameraConfig) (*scene.Scene, error) {
	return scene.New(sceneType, overrides...)
}

// createOutputDir returns the output directory for a scene
func createOutputDir(root, sceneName string) string {
	return filepath.Join(root, sceneName)
}

// encodeFrame encodes a rendered frame in the requested format
func encodeFrame(frame *renderer.Frame, format string) ([]byte, error) {
	switch format {
	case "ppm":
		return frame.PPM(), nil
	case "png":
		var buf bytes.Buffer
		if err := png.Encode(&buf, frame.Image()); err != nil {
			return nil, fmt.Errorf("failed to encode PNG: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownFormat, format)
	}
}
