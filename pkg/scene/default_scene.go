package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewDefaultScene creates a diffuse sphere resting on a large diffuse ground sphere
func NewDefaultScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	// Camera at the origin looking down -z
	defaultCameraConfig := renderer.DefaultCameraConfig()

	s := newScene("default", defaultCameraConfig, cameraOverrides)

	gray := material.NewLambertian(core.NewColor(0.5, 0.5, 0.5))
	s.World.Add(
		geometry.NewSphere(core.NewPoint(0, 0, -1), 0.5, gray),
		geometry.NewSphere(core.NewPoint(0, -100.5, -1), 100, gray), // ground
	)

	return s
}
