package scene

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewMotionBlurScene creates a field of small bouncing spheres on a checker ground.
// Sphere placement is drawn from seed so every frame of a render sees the same scene.
func NewMotionBlurScene(seed int64, cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := mergeCamera(geometry.CameraConfig{
		LookFrom:      core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		Width:         400,
		AspectRatio:   16.0 / 9.0,
		VFov:          20.0,
		ApertureAngle: 0.6,
		FocusDistance: 10.0,
		MotionBlur:    true,
	}, cameraOverrides)

	s := newScene(cameraConfig, SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
	})

	random := rand.New(rand.NewSource(seed))

	checker := material.NewCheckerColors(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	s.Shapes = append(s.Shapes, geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)))

	keepClear := core.NewVec3(4, 0.2, 0)
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			center := core.NewVec3(float64(a)+0.9*random.Float64(), 0.2, float64(b)+0.9*random.Float64())
			if center.Subtract(keepClear).Length() <= 0.9 {
				continue
			}

			chooseMaterial := random.Float64()
			switch {
			case chooseMaterial < 0.8:
				// Diffuse spheres bounce upwards during the exposure
				albedo := randomColor(random).MultiplyVec(randomColor(random))
				bounce := center.Add(core.NewVec3(0, 0.5*random.Float64(), 0))
				s.Shapes = append(s.Shapes, geometry.NewMovingSphere(center, bounce, 0.2, material.NewLambertian(albedo)))
			case chooseMaterial < 0.95:
				albedo := randomColor(random).Multiply(0.5).Add(core.Splat(0.5))
				fuzz := 0.5 * random.Float64()
				s.Shapes = append(s.Shapes, geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				s.Shapes = append(s.Shapes, geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	s.Shapes = append(s.Shapes,
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	return s
}

func randomColor(random *rand.Rand) core.Vec3 {
	return core.NewVec3(random.Float64(), random.Float64(), random.Float64())
}
