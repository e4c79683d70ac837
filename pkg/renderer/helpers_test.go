package renderer

import (
	"fmt"
	"sync"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// fixedSampler returns the same value for every draw
type fixedSampler struct {
	value float64
}

func (s fixedSampler) Get1D() float64 { return s.value }
func (s fixedSampler) Get2D() core.Vec2 {
	return core.NewVec2(s.value, s.value)
}
func (s fixedSampler) Get3D() core.Vec3 {
	return core.NewVec3(s.value, s.value, s.value)
}

// recordingLogger keeps every formatted message
type recordingLogger struct {
	mu       sync.Mutex
	messages []string
}

func (l *recordingLogger) Printf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, fmt.Sprintf(format, args...))
}

// testCameraConfig is a small forward-looking camera with a 90 degree field of view
func testCameraConfig(width, height int) CameraConfig {
	config := DefaultCameraConfig()
	config.Width = width
	config.AspectRatio = float64(width) / float64(height)
	config.SamplesPerPixel = 1
	config.MaxDepth = 10
	return config
}

// twoSphereWorld is a small diffuse sphere resting on a huge diffuse ground sphere
func twoSphereWorld() *geometry.HittableList {
	gray := material.NewLambertian(core.NewColor(0.5, 0.5, 0.5))
	return geometry.NewHittableList(
		geometry.NewSphere(core.NewPoint(0, 0, -1), 0.5, gray),
		geometry.NewSphere(core.NewPoint(0, -100.5, -1), 100, gray),
	)
}

func mustCamera(config CameraConfig) *Camera {
	camera, err := NewCamera(config)
	if err != nil {
		panic(err)
	}
	return camera
}
