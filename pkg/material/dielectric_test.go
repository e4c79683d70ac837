package material

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestDielectric_AttenuationIsWhite(t *testing.T) {
	glass := NewDielectric(1.5)
	ray := core.NewRay(core.NewPoint(0, 1, 0), core.NewVec3(1, -1, 0))
	sampler := core.NewSeededSampler(42)

	for i := 0; i < 100; i++ {
		result, scattered := glass.Scatter(ray, floorHit(glass), sampler)
		if !scattered {
			t.Fatal("Dielectric should always scatter")
		}
		if !result.Attenuation.Equals(core.White) {
			t.Fatalf("Expected attenuation %v, got %v", core.White, result.Attenuation)
		}
	}
}

func TestDielectric_RefractsWhenDrawExceedsReflectance(t *testing.T) {
	glass := NewDielectric(1.5)
	ray := core.NewRay(core.NewPoint(0, 1, 0), core.NewVec3(1, -1, 0))

	// A draw of 0.99 beats Schlick reflectance at 45 degrees (~0.05)
	result, _ := glass.Scatter(ray, floorHit(glass), fixedSampler{value: 0.99})
	direction := result.Scattered.Direction

	if direction.Y >= 0 {
		t.Fatalf("Expected refraction into the surface, got %v", direction)
	}

	// Entering glass bends toward the normal: sin(out) = sin(in) / 1.5
	sinIn := math.Sqrt(0.5)
	if sinOut := math.Abs(direction.Normalize().X); math.Abs(sinOut-sinIn/1.5) > 1e-9 {
		t.Errorf("Expected sin(out)=%f, got %f", sinIn/1.5, sinOut)
	}
}

func TestDielectric_ReflectsWhenDrawBelowReflectance(t *testing.T) {
	glass := NewDielectric(1.5)
	ray := core.NewRay(core.NewPoint(0, 1, 0), core.NewVec3(1, -1, 0))

	result, _ := glass.Scatter(ray, floorHit(glass), fixedSampler{value: 0.0})
	expected := core.NewVec3(1, 1, 0).Normalize()

	if result.Scattered.Direction.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected reflection %v, got %v", expected, result.Scattered.Direction)
	}
}

func TestDielectric_TotalInternalReflection(t *testing.T) {
	glass := NewDielectric(1.5)

	// Exiting glass at 60 degrees: 1.5 * sin(60°) > 1
	direction := core.NewVec3(math.Sin(math.Pi/3), -math.Cos(math.Pi/3), 0)
	ray := core.NewRay(core.NewPoint(0, 1, 0), direction)
	hit := floorHit(glass)
	hit.FrontFace = false

	// Even a draw that would otherwise refract must reflect
	result, scattered := glass.Scatter(ray, hit, fixedSampler{value: 0.999})
	if !scattered {
		t.Fatal("Dielectric should scatter under total internal reflection")
	}

	expected := core.NewVec3(direction.X, -direction.Y, 0)
	if result.Scattered.Direction.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected total internal reflection %v, got %v", expected, result.Scattered.Direction)
	}
}

func TestReflectance(t *testing.T) {
	tests := []struct {
		name     string
		cosine   float64
		ratio    float64
		expected float64
	}{
		{"Normal incidence glass", 1.0, 1.0 / 1.5, 0.04},
		{"Grazing incidence", 0.0, 1.0 / 1.5, 1.0},
		{"Matched index", 1.0, 1.0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reflectance(tt.cosine, tt.ratio)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Expected %f, got %f", tt.expected, got)
			}
		})
	}
}
