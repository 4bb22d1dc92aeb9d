package scene

import (
	"sync/atomic"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera         *geometry.Camera
	Shapes         []geometry.Shape // Objects in the scene
	SamplingConfig SamplingConfig
	CameraConfig   geometry.CameraConfig
	BVH            *geometry.BVH // Acceleration structure for ray-object intersection

	flat atomic.Pointer[flatWorld] // World fallback until the BVH is built
}

// flatWorld is a linear list over the first count shapes
type flatWorld struct {
	list  *geometry.HittableList
	count int
}

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int // Image width
	Height          int // Image height
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// newScene wires a camera built from cameraConfig into an empty scene
func newScene(cameraConfig geometry.CameraConfig, samplingConfig SamplingConfig) *Scene {
	camera := geometry.NewCamera(cameraConfig)
	samplingConfig.Width, samplingConfig.Height = camera.ImageSize()

	return &Scene{
		Camera:         camera,
		Shapes:         make([]geometry.Shape, 0),
		SamplingConfig: samplingConfig,
		CameraConfig:   cameraConfig,
	}
}

// mergeCamera applies the first override, if any, to a scene's default camera
func mergeCamera(defaults geometry.CameraConfig, overrides []geometry.CameraConfig) geometry.CameraConfig {
	if len(overrides) > 0 {
		return geometry.MergeCameraConfig(defaults, overrides[0])
	}
	return defaults
}

// NewGroundQuad creates a large quad to replace infinite ground planes
// Creates a horizontal quad centered at the given point with normal pointing up (0,1,0)
func NewGroundQuad(center core.Vec3, size float64, material material.Material) *geometry.Quad {
	// Create corner at bottom-left of the quad
	corner := core.NewVec3(center.X-size/2, center.Y, center.Z-size/2)
	// Edge vectors: u along Z axis, v along X axis
	// u × v = (0,0,size) × (size,0,0) = (0,size²,0) which normalizes to (0,1,0)
	u := core.NewVec3(0, 0, size)
	v := core.NewVec3(size, 0, 0)
	return geometry.NewQuad(corner, u, v, material)
}

// ApplySampling replaces the quality settings and resizes the camera to the new width,
// keeping the scene's aspect ratio
func (s *Scene) ApplySampling(config SamplingConfig) {
	if config.Width > 0 {
		s.CameraConfig.Width = config.Width
		s.Camera = geometry.NewCamera(s.CameraConfig)
	}
	config.Width, config.Height = s.Camera.ImageSize()
	s.SamplingConfig = config
}

// Preprocess builds the BVH over all shapes and reports its statistics
func (s *Scene) Preprocess(logger core.Logger) error {
	start := time.Now()
	s.BVH = geometry.NewBVH(s.Shapes)

	logger.Printf("Built BVH over %d shapes (%d primitives) in %v\n",
		len(s.Shapes), s.GetPrimitiveCount(), time.Since(start))
	logger.Printf("BVH: %s\n", s.BVH.Stats())
	return nil
}

// World returns the structure rays should be traced against: the BVH once built,
// otherwise a flat list of the shapes. The list is reused until shapes are appended.
func (s *Scene) World() geometry.Shape {
	if s.BVH != nil {
		return s.BVH
	}
	if flat := s.flat.Load(); flat != nil && flat.count == len(s.Shapes) {
		return flat.list
	}
	flat := &flatWorld{list: geometry.NewHittableList(s.Shapes...), count: len(s.Shapes)}
	s.flat.Store(flat)
	return flat.list
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	count := 0
	for _, shape := range s.Shapes {
		count += s.countPrimitivesInShape(shape)
	}
	return count
}

// countPrimitivesInShape counts primitives in a single shape, handling complex objects
func (s *Scene) countPrimitivesInShape(shape geometry.Shape) int {
	switch obj := shape.(type) {
	case *geometry.TriangleMesh:
		// Triangle meshes contain multiple triangles
		return obj.GetTriangleCount()
	case *geometry.Box:
		return 6
	default:
		// Regular shapes count as 1 primitive each
		return 1
	}
}
