package scene

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// ErrMeshRequired is returned when the mesh scene is requested without an OBJ file
var ErrMeshRequired = errors.New("mesh scene requires an OBJ file")

// MeshPlacement positions a loaded mesh: uniform scale about the origin, then translation
type MeshPlacement struct {
	Position core.Vec3
	Scale    float64
}

// DefaultMeshPlacement fits a unit-sized model beside the spheres
var DefaultMeshPlacement = MeshPlacement{
	Position: core.NewVec3(1, 0.6, 1),
	Scale:    4,
}

// NewMeshScene creates a scene showcasing a frosted-glass OBJ mesh on Perlin ground
func NewMeshScene(meshPath string, placement MeshPlacement, seed int64, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	if meshPath == "" {
		return nil, ErrMeshRequired
	}

	angle := 75.0 * math.Pi / 180
	cameraConfig := mergeCamera(geometry.CameraConfig{
		LookFrom:    core.NewVec3(4*math.Cos(angle), 2.5, 4*math.Sin(angle)),
		LookAt:      core.NewVec3(0, 0.4, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        40.0,
	}, cameraOverrides)

	s := newScene(cameraConfig, SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
	})

	frosted := material.NewFrostedDielectric(1.5, 0.01)
	mesh, err := geometry.LoadTriangleMesh(meshPath, placement.Position, placement.Scale, frosted)
	if err != nil {
		return nil, fmt.Errorf("failed to create mesh scene: %w", err)
	}

	noise := material.NewPerlin(rand.New(rand.NewSource(seed)))
	ground := material.NewTexturedLambertian(
		material.NewPerlinTexture(noise, 4.0, 20.0, core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1)),
	)
	glass := material.NewDielectric(1.5)
	metal := material.NewMetal(core.NewVec3(0.8, 0.8, 0.2), 0.0)
	// Half the bounces take the diffuse lobe, half the mirror
	satin := material.NewMix(material.NewLambertian(core.NewVec3(0.8, 0.2, 0.8)), metal, 0.5)

	s.Shapes = append(s.Shapes,
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		geometry.NewSphere(core.NewVec3(3.5, 0.75, 1.75), 0.5, glass),
		geometry.NewSphere(core.NewVec3(3.5, 0.75, 1.75), -0.4, glass),
		geometry.NewSphere(core.NewVec3(-0.1, 0.35, 2.0), 0.65, metal),
		geometry.NewSphere(core.NewVec3(-0.3, 0.75, -0.5), 0.75, satin),
		mesh,
	)

	return s, nil
}
