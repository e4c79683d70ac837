package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewMaterialsScene creates a row of diffuse, glass and metal spheres on a yellow ground
func NewMaterialsScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.DefaultCameraConfig()
	defaultCameraConfig.VFov = 20
	defaultCameraConfig.LookFrom = core.NewPoint(-2, 2, 1)
	defaultCameraConfig.LookAt = core.NewPoint(0, 0, -1)
	defaultCameraConfig.DefocusAngle = 10.0
	defaultCameraConfig.FocusDistance = 3.4

	s := newScene("materials", defaultCameraConfig, cameraOverrides)

	materialGround := material.NewLambertian(core.NewColor(0.8, 0.8, 0.0))
	materialCenter := material.NewLambertian(core.NewColor(0.1, 0.2, 0.5))
	materialLeft := material.NewDielectric(1.5)
	materialBubble := material.NewDielectric(1.0 / 1.5)
	materialRight := material.NewMetal(core.NewColor(0.8, 0.6, 0.2), 1.0)

	s.World.Add(
		geometry.NewSphere(core.NewPoint(0, -100.5, -1), 100, materialGround),
		geometry.NewSphere(core.NewPoint(0, 0, -1.2), 0.5, materialCenter),
		geometry.NewSphere(core.NewPoint(-1, 0, -1), 0.5, materialLeft),
		geometry.NewSphere(core.NewPoint(-1, 0, -1), 0.4, materialBubble), // air bubble inside the glass
		geometry.NewSphere(core.NewPoint(1, 0, -1), 0.5, materialRight),
	)

	return s
}

// NewShellScene creates hollow glass spheres modeled with negative-radius inner surfaces
func NewShellScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.DefaultCameraConfig()
	defaultCameraConfig.VFov = 40
	defaultCameraConfig.LookFrom = core.NewPoint(0, 0.75, 2)
	defaultCameraConfig.LookAt = core.NewPoint(0, 0.25, -1)
	defaultCameraConfig.FocusDistance = 0 // focus on the look-at point

	s := newScene("shell", defaultCameraConfig, cameraOverrides)

	glass := material.NewDielectric(1.5)
	lambertianBlue := material.NewLambertian(core.NewColor(0.1, 0.2, 0.5))
	lambertianRed := material.NewLambertian(core.NewColor(0.65, 0.25, 0.2))
	metalSilver := material.NewMetal(core.NewColor(0.8, 0.8, 0.8), 0.0)
	groundGreen := material.NewLambertian(core.NewColor(0.8, 0.8, 0.0).Multiply(0.6))

	s.World.Add(geometry.NewSphere(core.NewPoint(0, -1000, -1), 1000, groundGreen))

	// Thick shell around a blue core
	s.World.Add(
		geometry.NewSphere(core.NewPoint(-0.6, 0.35, -1), 0.35, glass),
		geometry.NewSphere(core.NewPoint(-0.6, 0.35, -1), -0.3, glass),
		geometry.NewSphere(core.NewPoint(-0.6, 0.35, -1), 0.2, lambertianBlue),
	)

	// Thin empty shell
	s.World.Add(
		geometry.NewSphere(core.NewPoint(0.1, 0.35, -1.3), 0.35, glass),
		geometry.NewSphere(core.NewPoint(0.1, 0.35, -1.3), -0.34, glass),
	)

	// Mirror and diffuse references behind the shells
	s.World.Add(
		geometry.NewSphere(core.NewPoint(0.9, 0.5, -2), 0.5, metalSilver),
		geometry.NewSphere(core.NewPoint(-0.2, 0.25, -2.6), 0.25, lambertianRed),
	)

	return s
}
