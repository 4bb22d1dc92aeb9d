package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewNormalScene creates a debug scene: one sphere shaded by its surface normal
// above a near-black ground
func NewNormalScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := mergeCamera(geometry.CameraConfig{
		LookFrom:    core.NewVec3(4, 1, 0),
		LookAt:      core.NewVec3(0, 1, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        20.0,
	}, cameraOverrides)

	s := newScene(cameraConfig, SamplingConfig{
		SamplesPerPixel: 50,
		MaxDepth:        10,
	})

	s.Shapes = append(s.Shapes,
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.03, 0.03, 0.03))),
		geometry.NewSphere(core.NewVec3(0, 1, 0), 0.5, material.NewNormal()),
	)

	return s
}
