package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name         string                 // Registry name the scene was built from
	World        *geometry.HittableList // Objects in the scene
	CameraConfig renderer.CameraConfig
}

// newScene creates an empty scene, applying the first camera override if present
func newScene(name string, defaultCameraConfig renderer.CameraConfig, cameraOverrides []renderer.CameraConfig) *Scene {
	// Apply any overrides using the reusable merge function
	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	return &Scene{
		Name:         name,
		World:        geometry.NewHittableList(),
		CameraConfig: cameraConfig,
	}
}

// NewCamera builds the camera described by the scene's configuration
func (s *Scene) NewCamera() (*renderer.Camera, error) {
	return renderer.NewCamera(s.CameraConfig)
}

// NewRaytracer builds a raytracer for the scene
func (s *Scene) NewRaytracer(config renderer.RaytracerConfig, logger core.Logger) (*renderer.Raytracer, error) {
	camera, err := s.NewCamera()
	if err != nil {
		return nil, err
	}
	return renderer.NewRaytracer(camera, s.World, config, logger), nil
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return s.World.Len()
}
