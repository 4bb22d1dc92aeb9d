package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewDefaultScene creates a default scene with spheres, ground, and camera
func NewDefaultScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := mergeCamera(geometry.CameraConfig{
		LookFrom:      core.NewVec3(-2, 2, 1),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		Width:         400,
		AspectRatio:   16.0 / 9.0,
		VFov:          20.0,
		ApertureAngle: 10.0, // Shallow depth of field around the center sphere
		FocusDistance: 3.4,
	}, cameraOverrides)

	s := newScene(cameraConfig, SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
	})

	// Create materials
	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	diffuseBlue := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	glass := material.NewDielectric(1.5)
	bubble := material.NewDielectric(1.0 / 1.5)
	metalGold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 1.0)

	// Ground is a huge sphere so the horizon curves away
	s.Shapes = append(s.Shapes,
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		geometry.NewSphere(core.NewVec3(0, 0, -1.2), 0.5, diffuseBlue),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.4, bubble), // Air bubble inside the glass
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, metalGold),
	)

	// Hollow glass shell: a negative radius flips the normal inward
	s.Shapes = append(s.Shapes,
		geometry.NewSphere(core.NewVec3(0.3, -0.3, -0.3), 0.2, glass),
		geometry.NewSphere(core.NewVec3(0.3, -0.3, -0.3), -0.18, glass),
	)

	return s
}
