package scene

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

func TestDefaultScene_TwoSpheres(t *testing.T) {
	s := NewDefaultScene()
	if got := s.GetPrimitiveCount(); got != 2 {
		t.Fatalf("Expected 2 spheres, got %d", got)
	}

	// A ray straight down the view axis hits the small sphere first
	ray := core.NewRay(core.NewPoint(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, ok := s.World.Hit(ray, core.NewInterval(0.001, 1e9))
	if !ok {
		t.Fatal("Expected the view axis to hit the scene")
	}
	if hit.T < 0.5-1e-9 || hit.T > 0.5+1e-9 {
		t.Errorf("Expected hit at t=0.5, got %f", hit.T)
	}
}

func TestShellScene_InnerSurfacesFaceInward(t *testing.T) {
	s := NewShellScene()

	// Shoot from inside the thick shell's cavity outward along +x
	ray := core.NewRay(core.NewPoint(-0.6+0.25, 0.35, -1), core.NewVec3(1, 0, 0))
	hit, ok := s.World.Hit(ray, core.NewInterval(0.001, 1e9))
	if !ok {
		t.Fatal("Expected to hit the inner shell surface")
	}
	// The negative-radius surface reports a front-face hit from inside the cavity
	if !hit.FrontFace {
		t.Error("Expected a front-face hit on the inner shell surface")
	}
	if hit.Normal.X >= 0 {
		t.Errorf("Expected the normal to face back into the cavity, got %v", hit.Normal)
	}
}

func TestFinalScene_Deterministic(t *testing.T) {
	first := NewFinalScene()
	second := NewFinalScene()
	if first.World.Len() != second.World.Len() {
		t.Fatalf("Random field differs between builds: %d vs %d objects", first.World.Len(), second.World.Len())
	}
	if first.World.Len() < 4 {
		t.Errorf("Expected ground, large spheres and a random field, got %d objects", first.World.Len())
	}
}

func TestScene_NewRaytracerRendersSmallFrame(t *testing.T) {
	s := NewDefaultScene(renderer.CameraConfig{Width: 8, AspectRatio: 2, SamplesPerPixel: 1, MaxDepth: 3})

	rt, err := s.NewRaytracer(renderer.RaytracerConfig{Seed: 1, NumWorkers: 2}, nil)
	if err != nil {
		t.Fatalf("NewRaytracer failed: %v", err)
	}
	frame := rt.Render()
	if frame.Width != 8 || frame.Height != 4 {
		t.Errorf("Expected 8x4 frame, got %dx%d", frame.Width, frame.Height)
	}
}

func TestOklchToRGB_InGamut(t *testing.T) {
	for hue := 0.0; hue < 360; hue += 30 {
		c := oklchToRGB(0.65, 0.25, hue)
		for ch := 0; ch < 3; ch++ {
			if v := c.Index(ch); v < 0 || v > 1 {
				t.Errorf("hue %f channel %d out of gamut: %f", hue, ch, v)
			}
		}
	}
}
