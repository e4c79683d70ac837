package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// finalSceneSeed fixes the layout of the random sphere field
const finalSceneSeed = 42

// NewFinalScene creates a field of small random spheres around three large
// glass, diffuse and metal spheres
func NewFinalScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.DefaultCameraConfig()
	defaultCameraConfig.Width = 1200
	defaultCameraConfig.SamplesPerPixel = 500
	defaultCameraConfig.VFov = 20
	defaultCameraConfig.LookFrom = core.NewPoint(13, 2, 3)
	defaultCameraConfig.LookAt = core.NewPoint(0, 0, 0)
	defaultCameraConfig.DefocusAngle = 0.6
	defaultCameraConfig.FocusDistance = 10.0

	s := newScene("final", defaultCameraConfig, cameraOverrides)
	sampler := core.NewSeededSampler(finalSceneSeed)

	groundMaterial := material.NewLambertian(core.NewColor(0.5, 0.5, 0.5))
	s.World.Add(geometry.NewSphere(core.NewPoint(0, -1000, 0), 1000, groundMaterial))

	clearing := core.NewPoint(4, 0.2, 0)
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := sampler.Get1D()
			center := core.NewPoint(float64(a)+0.9*sampler.Get1D(), 0.2, float64(b)+0.9*sampler.Get1D())

			// Keep the large metal sphere unobstructed
			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			var sphereMaterial material.Material
			switch {
			case chooseMat < 0.8:
				albedo := core.RandomColor(sampler).MultiplyVec(core.RandomColor(sampler))
				sphereMaterial = material.NewLambertian(albedo)
			case chooseMat < 0.95:
				albedo := core.RandomColorRange(sampler, 0.5, 1)
				fuzz := core.RandomRange(sampler, 0, 0.5)
				sphereMaterial = material.NewMetal(albedo, fuzz)
			default:
				sphereMaterial = material.NewDielectric(1.5)
			}

			s.World.Add(geometry.NewSphere(center, 0.2, sphereMaterial))
		}
	}

	s.World.Add(
		geometry.NewSphere(core.NewPoint(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewPoint(-4, 1, 0), 1.0, material.NewLambertian(core.NewColor(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewPoint(4, 1, 0), 1.0, material.NewMetal(core.NewColor(0.7, 0.6, 0.5), 0.0)),
	)

	return s
}
