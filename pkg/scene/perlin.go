package scene

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewPerlinScene creates a marble-like Perlin sphere resting on Perlin ground.
// The noise tables are built from seed.
func NewPerlinScene(seed int64, cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := mergeCamera(geometry.CameraConfig{
		LookFrom:    core.NewVec3(13, 2, 3),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        20.0,
	}, cameraOverrides)

	s := newScene(cameraConfig, SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
	})

	noise := material.NewPerlin(rand.New(rand.NewSource(seed)))
	marble := material.NewTexturedLambertian(
		material.NewPerlinTexture(noise, 4.0, 5.0, core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1)),
	)

	s.Shapes = append(s.Shapes,
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
	)

	return s
}
