package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width           int           // Image width in pixels
	Height          int           // Image height in pixels
	TotalPixels     int           // Total number of pixels rendered
	SamplesPerPixel int           // Rays averaged per pixel
	TotalSamples    int           // Total number of camera rays traced
	Scanlines       int           // Number of scanline tasks completed
	Workers         int           // Number of parallel workers used
	Elapsed         time.Duration // Wall clock render time
}

// SamplesPerSecond returns the camera ray throughput of the render
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Elapsed.Seconds()
}
