package core

import (
	"math"
	"testing"
)

func TestInterval_ContainsAndSurrounds(t *testing.T) {
	interval := NewInterval(1, 2)

	tests := []struct {
		x         float64
		contains  bool
		surrounds bool
	}{
		{0.5, false, false},
		{1, true, false},
		{1.5, true, true},
		{2, true, false},
		{2.5, false, false},
	}

	for _, tt := range tests {
		if got := interval.Contains(tt.x); got != tt.contains {
			t.Errorf("Contains(%f): expected %t, got %t", tt.x, tt.contains, got)
		}
		if got := interval.Surrounds(tt.x); got != tt.surrounds {
			t.Errorf("Surrounds(%f): expected %t, got %t", tt.x, tt.surrounds, got)
		}
	}
}

func TestInterval_Clamp(t *testing.T) {
	interval := NewInterval(0, 0.999)

	tests := []struct {
		x, expected float64
	}{
		{-1, 0},
		{0.5, 0.5},
		{1.2, 0.999},
	}

	for _, tt := range tests {
		if got := interval.Clamp(tt.x); got != tt.expected {
			t.Errorf("Clamp(%f): expected %f, got %f", tt.x, tt.expected, got)
		}
	}
}

func TestInterval_EmptyAndUniverse(t *testing.T) {
	if !EmptyInterval.IsEmpty() {
		t.Error("EmptyInterval should be empty")
	}
	if EmptyInterval.Contains(0) {
		t.Error("EmptyInterval should contain nothing")
	}
	if UniverseInterval.IsEmpty() {
		t.Error("UniverseInterval should not be empty")
	}
	for _, x := range []float64{-1e300, 0, 1e300} {
		if !UniverseInterval.Surrounds(x) {
			t.Errorf("UniverseInterval should surround %g", x)
		}
	}
	if !math.IsInf(UniverseInterval.Size(), 1) {
		t.Errorf("UniverseInterval should have infinite size, got %f", UniverseInterval.Size())
	}
}

func TestInterval_WithMax(t *testing.T) {
	shrunk := NewInterval(0.001, math.Inf(1)).WithMax(3)
	if shrunk.Min != 0.001 || shrunk.Max != 3 {
		t.Errorf("Expected [0.001, 3], got [%f, %f]", shrunk.Min, shrunk.Max)
	}
}
