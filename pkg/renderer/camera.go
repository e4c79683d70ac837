package renderer

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// ErrInvalidCameraConfig is returned when a camera cannot be built from its configuration
var ErrInvalidCameraConfig = errors.New("invalid camera configuration")

// CameraConfig contains all camera and sampling parameters for a render
type CameraConfig struct {
	AspectRatio     float64            // Image width over height
	Width           int                // Image width in pixels
	VFov            float64            // Vertical field of view in degrees
	LookFrom        core.Point         // Camera position
	LookAt          core.Point         // Point the camera looks at
	Up              core.Vec3          // Camera-relative up direction
	DefocusAngle    float64            // Variation angle of rays through each pixel, in degrees
	FocusDistance   float64            // Distance to the plane of perfect focus (0 = distance to LookAt)
	SamplesPerPixel int                // Number of rays per pixel
	MaxDepth        int                // Maximum ray bounce depth
	Background      *material.Gradient // Color of rays that leave the scene
}

// DefaultCameraConfig returns sensible default values
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		AspectRatio:     16.0 / 9.0,
		Width:           400,
		VFov:            90,
		LookFrom:        core.NewPoint(0, 0, 0),
		LookAt:          core.NewPoint(0, 0, -1),
		Up:              core.NewVec3(0, 1, 0),
		DefocusAngle:    0,
		FocusDistance:   1,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Background:      material.NewSkyGradient(),
	}
}

// MergeCameraConfig returns base with every non-zero field of override applied
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base

	if override.AspectRatio != 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.VFov != 0 {
		result.VFov = override.VFov
	}
	if override.LookFrom != (core.Point{}) {
		result.LookFrom = override.LookFrom
	}
	if override.LookAt != (core.Point{}) {
		result.LookAt = override.LookAt
	}
	if override.Up != (core.Vec3{}) {
		result.Up = override.Up
	}
	if override.DefocusAngle != 0 {
		result.DefocusAngle = override.DefocusAngle
	}
	if override.FocusDistance != 0 {
		result.FocusDistance = override.FocusDistance
	}
	if override.SamplesPerPixel != 0 {
		result.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth != 0 {
		result.MaxDepth = override.MaxDepth
	}
	if override.Background != nil {
		result.Background = override.Background
	}

	return result
}

// Validate reports the first configuration problem, wrapping ErrInvalidCameraConfig
func (c CameraConfig) Validate() error {
	invalid := func(format string, args ...interface{}) error {
		return fmt.Errorf("%w: %s", ErrInvalidCameraConfig, fmt.Sprintf(format, args...))
	}

	switch {
	case c.Width <= 0:
		return invalid("width must be positive, got %d", c.Width)
	case !(c.AspectRatio > 0) || math.IsInf(c.AspectRatio, 0):
		return invalid("aspect ratio must be positive and finite, got %g", c.AspectRatio)
	case !(c.VFov > 0 && c.VFov < 180):
		return invalid("vertical field of view must be in (0, 180), got %g", c.VFov)
	case c.SamplesPerPixel <= 0:
		return invalid("samples per pixel must be positive, got %d", c.SamplesPerPixel)
	case c.MaxDepth < 0:
		return invalid("max depth must not be negative, got %d", c.MaxDepth)
	case c.DefocusAngle < 0 || math.IsNaN(c.DefocusAngle) || c.DefocusAngle >= 180:
		return invalid("defocus angle must be in [0, 180), got %g", c.DefocusAngle)
	case c.FocusDistance < 0 || math.IsNaN(c.FocusDistance) || math.IsInf(c.FocusDistance, 0):
		return invalid("focus distance must not be negative, got %g", c.FocusDistance)
	case c.Background == nil:
		return invalid("background is required")
	}

	view := c.LookFrom.Subtract(c.LookAt)
	if view.NearZero() {
		return invalid("look-from and look-at coincide at %v", c.LookFrom)
	}
	if c.Up.Cross(view).NearZero() {
		return invalid("up %v is parallel to the view direction", c.Up)
	}

	return nil
}

// Camera generates rays for rendering. All fields are derived once at
// construction and never change, so a camera may be shared by every worker.
type Camera struct {
	config CameraConfig
	width  int
	height int

	center       core.Point
	pixel00      core.Point // Center of the top-left pixel
	pixelDeltaU  core.Vec3  // Offset to the pixel on the right
	pixelDeltaV  core.Vec3  // Offset to the pixel below
	w            core.Vec3  // Points from the look-at point back to the camera
	defocusDiskU core.Vec3  // Defocus disk horizontal radius
	defocusDiskV core.Vec3  // Defocus disk vertical radius
}

// NewCamera creates a camera from config, failing on invalid configuration
func NewCamera(config CameraConfig) (*Camera, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	height := int(math.Round(float64(config.Width) / config.AspectRatio))
	if height < 1 {
		height = 1
	}

	focusDistance := config.FocusDistance
	if focusDistance == 0 {
		focusDistance = config.LookFrom.Subtract(config.LookAt).Length()
	}

	// Viewport dimensions use the real pixel ratio, not the requested aspect
	theta := core.DegreesToRadians(config.VFov)
	viewportHeight := 2.0 * math.Tan(theta/2) * focusDistance
	viewportWidth := viewportHeight * float64(config.Width) / float64(height)

	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	// Vectors across the horizontal and down the vertical viewport edges
	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Negate().Multiply(viewportHeight)

	pixelDeltaU := viewportU.Divide(float64(config.Width))
	pixelDeltaV := viewportV.Divide(float64(height))

	center := config.LookFrom
	upperLeft := center.
		Subtract(w.Multiply(focusDistance)).
		Subtract(viewportU.Divide(2)).
		Subtract(viewportV.Divide(2))
	pixel00 := upperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	defocusRadius := focusDistance * math.Tan(core.DegreesToRadians(config.DefocusAngle/2))

	return &Camera{
		config:       config,
		width:        config.Width,
		height:       height,
		center:       center,
		pixel00:      pixel00,
		pixelDeltaU:  pixelDeltaU,
		pixelDeltaV:  pixelDeltaV,
		w:            w,
		defocusDiskU: u.Multiply(defocusRadius),
		defocusDiskV: v.Multiply(defocusRadius),
	}, nil
}

// GetRay returns a randomly jittered ray through pixel (i, j), counted from the
// top-left corner, originating on the defocus disk when depth of field is enabled
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	offset := sampler.Get2D()
	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i) + offset.X - 0.5)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offset.Y - 0.5))

	origin := c.center
	if c.config.DefocusAngle > 0 {
		origin = c.defocusDiskSample(sampler)
	}

	return core.NewRay(origin, pixelSample.Subtract(origin))
}

// defocusDiskSample returns a random point on the camera defocus disk
func (c *Camera) defocusDiskSample(sampler core.Sampler) core.Point {
	p := core.RandomInUnitDisk(sampler)
	return c.center.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
}

// Width returns the image width in pixels
func (c *Camera) Width() int { return c.width }

// Height returns the derived image height in pixels
func (c *Camera) Height() int { return c.height }

// SamplesPerPixel returns the number of rays averaged per pixel
func (c *Camera) SamplesPerPixel() int { return c.config.SamplesPerPixel }

// MaxDepth returns the bounce budget for each camera ray
func (c *Camera) MaxDepth() int { return c.config.MaxDepth }

// Background returns the gradient shown where rays leave the scene
func (c *Camera) Background() *material.Gradient { return c.config.Background }

// GetCameraForward returns the unit direction the camera looks along
func (c *Camera) GetCameraForward() core.Vec3 {
	return c.w.Negate()
}
