package scene

import (
	"errors"
	"sort"
	"testing"

	"github.com/df07/go-pathtracer/pkg/renderer"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"sphere-grid", "Sphere Grid"},
		{"hollow_shell", "Hollow Shell"},
		{"default", "Default"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := titleCase(tc.input)
			if result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestNew_AllRegisteredScenes(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			s, err := New(name)
			if err != nil {
				t.Fatalf("New(%q) failed: %v", name, err)
			}
			if s.Name != name {
				t.Errorf("Expected scene name %q, got %q", name, s.Name)
			}
			if s.World.Len() == 0 {
				t.Error("Expected scene to contain objects")
			}
			if _, err := s.NewCamera(); err != nil {
				t.Errorf("Scene camera configuration is invalid: %v", err)
			}
		})
	}
}

func TestNew_AliasesAndCase(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"basic", "default"},
		{"DEFAULT", "default"},
		{"sphere-grid", "spheregrid"},
		{" random ", "final"},
	}

	for _, tt := range tests {
		s, err := New(tt.name)
		if err != nil {
			t.Errorf("New(%q) failed: %v", tt.name, err)
			continue
		}
		if s.Name != tt.expected {
			t.Errorf("New(%q): expected scene %q, got %q", tt.name, tt.expected, s.Name)
		}
	}
}

func TestNew_UnknownScene(t *testing.T) {
	s, err := New("cornell-box")
	if !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
	if s != nil {
		t.Error("Expected no scene for an unknown name")
	}
}

func TestNew_CameraOverride(t *testing.T) {
	s, err := New("materials", renderer.CameraConfig{Width: 64, SamplesPerPixel: 2})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if s.CameraConfig.Width != 64 || s.CameraConfig.SamplesPerPixel != 2 {
		t.Errorf("Expected overrides to apply, got %+v", s.CameraConfig)
	}
	if s.CameraConfig.VFov != 20 {
		t.Errorf("Expected scene vfov to survive the override, got %f", s.CameraConfig.VFov)
	}
}

func TestNames_Sorted(t *testing.T) {
	names := Names()
	if len(names) != len(builtInScenes) {
		t.Errorf("Expected %d names, got %d", len(builtInScenes), len(names))
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("Expected sorted names, got %v", names)
	}
}

func TestListScenes(t *testing.T) {
	scenes := ListScenes()
	if len(scenes) != len(builtInScenes) {
		t.Fatalf("Expected %d scenes, got %d", len(builtInScenes), len(scenes))
	}
	for _, info := range scenes {
		if info.DisplayName == "" || info.Description == "" {
			t.Errorf("Scene %q is missing metadata: %+v", info.ID, info)
		}
	}
}
