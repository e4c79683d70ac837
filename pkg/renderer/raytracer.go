package renderer

import (
	"image/color"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// RaytracerConfig contains parallelism and reproducibility settings
type RaytracerConfig struct {
	Seed       int64 // Base seed; scanline y uses Seed + y
	NumWorkers int   // Number of parallel workers (0 = use CPU count)
}

// DefaultRaytracerConfig returns sensible default values
func DefaultRaytracerConfig() RaytracerConfig {
	return RaytracerConfig{
		Seed:       42,
		NumWorkers: 0,
	}
}

// Raytracer renders a world through a camera, one scanline per task
type Raytracer struct {
	camera     *Camera
	world      geometry.Hittable
	integrator integrator.Integrator
	config     RaytracerConfig
	logger     core.Logger
}

// NewRaytracer creates a new raytracer. A nil logger discards progress output.
func NewRaytracer(camera *Camera, world geometry.Hittable, config RaytracerConfig, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = core.NopLogger{}
	}

	return &Raytracer{
		camera:     camera,
		world:      world,
		integrator: integrator.NewPathTracingIntegrator(camera.MaxDepth(), camera.Background()),
		config:     config,
		logger:     logger,
	}
}

// Camera returns the camera the raytracer renders through
func (rt *Raytracer) Camera() *Camera {
	return rt.camera
}

// Render renders every scanline in parallel and reassembles them in row order
func (rt *Raytracer) Render() *Frame {
	width, height := rt.camera.Width(), rt.camera.Height()
	frame := NewFrame(width, height)

	pool := NewWorkerPool(rt, height, rt.config.NumWorkers)
	rt.logger.Printf("Rendering %dx%d at %d samples per pixel (using %d workers)...\n",
		width, height, rt.camera.SamplesPerPixel(), pool.GetNumWorkers())

	startTime := time.Now()
	pool.Start()
	for y := 0; y < height; y++ {
		pool.SubmitTask(ScanlineTask{Y: y})
	}

	for remaining := height; remaining > 0; remaining-- {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		// Workers finish in any order; the row index decides placement
		frame.Rows[result.Y] = result.Pixels
		rt.logger.Printf("Scanlines remaining: %d\n", remaining-1)
	}
	pool.Stop()

	elapsed := time.Since(startTime)
	frame.Stats = RenderStats{
		Width:           width,
		Height:          height,
		TotalPixels:     width * height,
		SamplesPerPixel: rt.camera.SamplesPerPixel(),
		TotalSamples:    width * height * rt.camera.SamplesPerPixel(),
		Scanlines:       height,
		Workers:         pool.GetNumWorkers(),
		Elapsed:         elapsed,
	}
	rt.logger.Printf("Render completed in %v\n", elapsed)

	return frame
}

// RenderScanline renders row y with its own deterministic sampler
func (rt *Raytracer) RenderScanline(y int) []color.RGBA {
	sampler := core.NewSeededSampler(rt.config.Seed + int64(y))
	samples := rt.camera.SamplesPerPixel()
	scale := 1.0 / float64(samples)

	pixels := make([]color.RGBA, rt.camera.Width())
	for x := range pixels {
		colorAccum := core.Black
		for s := 0; s < samples; s++ {
			ray := rt.camera.GetRay(x, y, sampler)
			colorAccum = colorAccum.Add(rt.integrator.RayColor(ray, rt.world, sampler))
		}
		pixels[x] = core.ToRGBA(colorAccum.Multiply(scale))
	}

	return pixels
}
