package scene

import (
	"fmt"
	"strings"

	"github.com/df07/go-pathtracer/pkg/geometry"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string // Name accepted by Create
	DisplayName string // Human-readable name
	Description string
	NeedsMesh   bool // Requires Options.MeshPath
}

// Options carries the external inputs some scenes need
type Options struct {
	MeshPath      string                 // OBJ file for the mesh scene
	MeshPlacement *MeshPlacement         // Overrides DefaultMeshPlacement
	TexturePath   string                 // Image for the checker scene globe (optional)
	Seed          int64                  // Seed for randomized scene content
	Camera        *geometry.CameraConfig // Non-zero fields override the scene camera
}

type sceneEntry struct {
	info   SceneInfo
	create func(options Options) (*Scene, error)
}

// registry lists the built-in scenes in display order
var registry = []sceneEntry{
	{
		info: SceneInfo{ID: "default", Description: "Ground with diffuse, glass, hollow glass and metal spheres"},
		create: func(o Options) (*Scene, error) {
			return NewDefaultScene(o.cameraOverrides()...), nil
		},
	},
	{
		info: SceneInfo{ID: "quads", Description: "Five colored quads forming an open box"},
		create: func(o Options) (*Scene, error) {
			return NewQuadsScene(o.cameraOverrides()...), nil
		},
	},
	{
		info: SceneInfo{ID: "motion-blur", Description: "Bouncing spheres captured over the shutter interval"},
		create: func(o Options) (*Scene, error) {
			return NewMotionBlurScene(o.Seed, o.cameraOverrides()...), nil
		},
	},
	{
		info: SceneInfo{ID: "perlin", Description: "Marble Perlin noise on a sphere and the ground"},
		create: func(o Options) (*Scene, error) {
			return NewPerlinScene(o.Seed, o.cameraOverrides()...), nil
		},
	},
	{
		info: SceneInfo{ID: "checker", Description: "Checker ground, textured globe and procedural textures"},
		create: func(o Options) (*Scene, error) {
			return NewCheckerScene(o.TexturePath, o.Seed, o.cameraOverrides()...)
		},
	},
	{
		info: SceneInfo{ID: "mesh", Description: "Frosted glass OBJ mesh on Perlin ground", NeedsMesh: true},
		create: func(o Options) (*Scene, error) {
			placement := DefaultMeshPlacement
			if o.MeshPlacement != nil {
				placement = *o.MeshPlacement
			}
			return NewMeshScene(o.MeshPath, placement, o.Seed, o.cameraOverrides()...)
		},
	},
	{
		info: SceneInfo{ID: "spheregrid", Description: "Grid of metal spheres for performance testing"},
		create: func(o Options) (*Scene, error) {
			return NewSphereGridScene(o.cameraOverrides()...), nil
		},
	},
	{
		info: SceneInfo{ID: "normals", Description: "Sphere shaded by its surface normal"},
		create: func(o Options) (*Scene, error) {
			return NewNormalScene(o.cameraOverrides()...), nil
		},
	},
}

func (o Options) cameraOverrides() []geometry.CameraConfig {
	if o.Camera == nil {
		return nil
	}
	return []geometry.CameraConfig{*o.Camera}
}

// ListScenes returns the built-in scenes in display order
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, len(registry))
	for i, entry := range registry {
		scenes[i] = entry.info
		scenes[i].DisplayName = titleCase(entry.info.ID)
	}
	return scenes
}

// Create builds the named scene
func Create(id string, options Options) (*Scene, error) {
	for _, entry := range registry {
		if entry.info.ID == id {
			s, err := entry.create(options)
			if err != nil {
				return nil, fmt.Errorf("failed to create scene %q: %w", id, err)
			}
			return s, nil
		}
	}

	ids := make([]string, len(registry))
	for i, entry := range registry {
		ids[i] = entry.info.ID
	}
	return nil, fmt.Errorf("unknown scene %q (available: %s)", id, strings.Join(ids, ", "))
}

// titleCase converts an identifier to title case
// e.g., "motion-blur" -> "Motion Blur"
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	// Title case each word
	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
