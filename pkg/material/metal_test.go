package material

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestNewMetal_FuzzClamp(t *testing.T) {
	tests := []struct {
		name         string
		inputFuzz    float64
		expectedFuzz float64
	}{
		{"Valid fuzz 0.0", 0.0, 0.0},
		{"Valid fuzz 0.5", 0.5, 0.5},
		{"Valid fuzz 1.0", 1.0, 1.0},
		{"Clamp above 1.0", 1.5, 1.0},
		{"Clamp below 0.0", -0.5, 0.0},
		{"Clamp large positive", 10.0, 1.0},
	}

	albedo := core.NewColor(0.8, 0.8, 0.8)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metal := NewMetal(albedo, tt.inputFuzz)
			if metal.Fuzz != tt.expectedFuzz {
				t.Errorf("Expected fuzz %f, got %f", tt.expectedFuzz, metal.Fuzz)
			}
		})
	}
}

func TestMetal_PerfectReflection(t *testing.T) {
	albedo := core.NewColor(0.9, 0.9, 0.9)
	metal := NewMetal(albedo, 0.0)
	sampler := core.NewSeededSampler(42)

	// Ray hitting the floor at 45 degrees
	rayIn := core.NewRay(core.NewPoint(0, 1, 1), core.NewVec3(0, -1, -1))

	scatter, didScatter := metal.Scatter(rayIn, floorHit(metal), sampler)
	if !didScatter {
		t.Fatal("Metal should scatter")
	}

	expected := core.NewVec3(0, 1, -1).Normalize()
	actual := scatter.Scattered.Direction.Normalize()

	tolerance := 1e-10
	if actual.Subtract(expected).Length() > tolerance {
		t.Errorf("Perfect reflection failed: expected %v, got %v", expected, actual)
	}

	if !scatter.Attenuation.Equals(albedo) {
		t.Errorf("Attenuation should equal albedo: expected %v, got %v", albedo, scatter.Attenuation)
	}
}

func TestMetal_FuzzyReflectionStaysNearMirror(t *testing.T) {
	metal := NewMetal(core.NewColor(0.8, 0.8, 0.8), 0.3)
	sampler := core.NewSeededSampler(42)
	rayIn := core.NewRay(core.NewPoint(0, 1, 0), core.NewVec3(0, -1, 0))
	mirror := core.NewVec3(0, 1, 0)

	distinct := false
	var first core.Vec3
	for i := 0; i < 50; i++ {
		scatter, _ := metal.Scatter(rayIn, floorHit(metal), sampler)
		direction := scatter.Scattered.Direction

		// Perturbation is a unit vector scaled by fuzz
		if deviation := direction.Subtract(mirror).Length(); math.Abs(deviation-0.3) > 1e-9 {
			t.Fatalf("Expected deviation from mirror of 0.3, got %f", deviation)
		}
		if i == 0 {
			first = direction
		} else if !direction.Equals(first) {
			distinct = true
		}
	}

	if !distinct {
		t.Error("Fuzzy metal should produce varied directions")
	}
}

func TestMetal_GrazingFuzzStillScattersBelowSurface(t *testing.T) {
	// A grazing ray with full fuzz can be pushed under the surface.
	// The scatter is still reported; absorption is not applied.
	metal := NewMetal(core.NewColor(0.8, 0.8, 0.8), 1.0)
	sampler := core.NewSeededSampler(1)
	rayIn := core.NewRay(core.NewPoint(-1, 0.01, 0), core.NewVec3(1, -0.01, 0))

	below := 0
	for i := 0; i < 1000; i++ {
		scatter, didScatter := metal.Scatter(rayIn, floorHit(metal), sampler)
		if !didScatter {
			t.Fatal("Metal should always report a scatter")
		}
		if scatter.Scattered.Direction.Dot(core.NewVec3(0, 1, 0)) < 0 {
			below++
		}
	}

	if below == 0 {
		t.Error("Expected some fuzzed rays below the surface for a grazing hit")
	}
}
