package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Gradient is the environment seen by rays that escape the scene.
// It blends from Bottom (straight down) to Top (straight up).
type Gradient struct {
	Top    core.Color
	Bottom core.Color
}

// NewGradient creates a new background gradient
func NewGradient(top, bottom core.Color) *Gradient {
	return &Gradient{Top: top, Bottom: bottom}
}

// NewSkyGradient returns the familiar blue sky fading to white at the horizon
func NewSkyGradient() *Gradient {
	return NewGradient(core.NewColor(0.5, 0.7, 1.0), core.White)
}

// Background returns the environment color for a ray direction
func (g *Gradient) Background(rayIn core.Ray) core.Color {
	unitDirection := rayIn.Direction.Normalize()
	a := 0.5 * (unitDirection.Y + 1.0) // Map Y from [-1,1] to [0,1]
	return g.Bottom.Multiply(1.0 - a).Add(g.Top.Multiply(a))
}

// Scatter implements the Material interface. The hit record is ignored and may be nil;
// the scattered ray carries no meaning.
func (g *Gradient) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{Attenuation: g.Background(rayIn)}, true
}
