package scene

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/df07/go-pathtracer/pkg/renderer"
)

// ErrUnknownScene is returned when a scene name is not registered
var ErrUnknownScene = errors.New("unknown scene")

// Constructor builds a scene, applying an optional camera override
type Constructor func(cameraOverrides ...renderer.CameraConfig) *Scene

// SceneInfo represents a built-in scene with its metadata
type SceneInfo struct {
	ID          string   `json:"id"`          // Unique identifier
	DisplayName string   `json:"displayName"` // UI display name
	Description string   `json:"description"` // Optional description
	Aliases     []string `json:"aliases"`     // Other names accepted by New
}

type registration struct {
	info        SceneInfo
	constructor Constructor
}

var builtInScenes = []registration{
	{
		info:        SceneInfo{ID: "default", Description: "Diffuse sphere on a large diffuse ground sphere", Aliases: []string{"basic"}},
		constructor: NewDefaultScene,
	},
	{
		info:        SceneInfo{ID: "materials", Description: "Diffuse, hollow glass and fuzzy metal spheres with depth of field"},
		constructor: NewMaterialsScene,
	},
	{
		info:        SceneInfo{ID: "shell", Description: "Hollow glass shells built from negative-radius spheres"},
		constructor: NewShellScene,
	},
	{
		info:        SceneInfo{ID: "spheregrid", Description: "Grid of rainbow-colored metallic spheres", Aliases: []string{"sphere-grid"}},
		constructor: NewSphereGridScene,
	},
	{
		info:        SceneInfo{ID: "final", Description: "Field of random spheres around three large spheres", Aliases: []string{"random"}},
		constructor: NewFinalScene,
	},
}

// lookup finds a registration by ID or alias, ignoring case
func lookup(name string) (registration, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, reg := range builtInScenes {
		if reg.info.ID == name {
			return reg, true
		}
		for _, alias := range reg.info.Aliases {
			if alias == name {
				return reg, true
			}
		}
	}
	return registration{}, false
}

// New builds the named scene, applying an optional camera override
func New(name string, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	reg, ok := lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownScene, name, strings.Join(Names(), ", "))
	}
	return reg.constructor(cameraOverrides...), nil
}

// Names returns the IDs of every built-in scene in sorted order
func Names() []string {
	names := make([]string, 0, len(builtInScenes))
	for _, reg := range builtInScenes {
		names = append(names, reg.info.ID)
	}
	sort.Strings(names)
	return names
}

// ListScenes returns metadata for every built-in scene, sorted by display name
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtInScenes))
	for _, reg := range builtInScenes {
		info := reg.info
		if info.DisplayName == "" {
			info.DisplayName = titleCase(info.ID)
		}
		scenes = append(scenes, info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})
	return scenes
}

// titleCase converts an identifier-style string to title case
// e.g., "sphere-grid" -> "Sphere Grid"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}
