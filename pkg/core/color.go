package core

import (
	"image/color"
	"math"
)

// Color is linear-light RGB radiance or reflectance.
// Channels are nominally in [0,1] but may exceed 1 before quantization.
type Color = Vec3

var (
	// White reflects or transmits every channel fully
	White = Color{X: 1, Y: 1, Z: 1}
	// Black carries no light
	Black = Color{X: 0, Y: 0, Z: 0}
)

// intensity is the channel range kept before scaling to 8 bits
var intensity = NewInterval(0.000, 0.999)

// NewColor creates a color from linear channel values
func NewColor(r, g, b float64) Color {
	return Color{X: r, Y: g, Z: b}
}

// NewColorRGB8 creates a color from 8-bit channel values
func NewColorRGB8(r, g, b uint8) Color {
	return Color{X: float64(r) / 255.0, Y: float64(g) / 255.0, Z: float64(b) / 255.0}
}

// RandomColor returns a color with each channel uniform in [0,1)
func RandomColor(sampler Sampler) Color {
	return RandomVec3(sampler)
}

// RandomColorRange returns a color with each channel uniform in [min,max)
func RandomColorRange(sampler Sampler, minVal, maxVal float64) Color {
	return RandomVec3Range(sampler, minVal, maxVal)
}

// LinearToGamma applies gamma 2 encoding (square root) to every channel
func LinearToGamma(c Color) Color {
	return Color{
		X: linearToGamma(c.X),
		Y: linearToGamma(c.Y),
		Z: linearToGamma(c.Z),
	}
}

func linearToGamma(linear float64) float64 {
	if linear > 0 {
		return math.Sqrt(linear)
	}
	return 0
}

// ToByte quantizes one gamma-encoded channel: clamp to [0,0.999], scale by 256, floor
func ToByte(channel float64) uint8 {
	if math.IsNaN(channel) {
		return 0
	}
	return uint8(math.Floor(256 * intensity.Clamp(channel)))
}

// ToRGBA converts an averaged linear color to an opaque 8-bit RGBA pixel,
// gamma encoding before quantization
func ToRGBA(c Color) color.RGBA {
	encoded := LinearToGamma(c)
	return color.RGBA{
		R: ToByte(encoded.X),
		G: ToByte(encoded.Y),
		B: ToByte(encoded.Z),
		A: 255,
	}
}
