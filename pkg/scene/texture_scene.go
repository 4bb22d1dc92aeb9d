package scene

import (
	"fmt"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
)

// maxTextureSize caps the longer side of loaded texture images
const maxTextureSize = 2048

// NewCheckerScene creates a scene demonstrating texture mapping: a spatial checker
// ground, a globe wearing the image at texturePath (or a UV checker when empty)
// inside a thin glass shell, and a row of procedurally textured shapes
func NewCheckerScene(texturePath string, seed int64, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	cameraConfig := mergeCamera(geometry.CameraConfig{
		LookFrom:    core.NewVec3(0, 1.5, 4),
		LookAt:      core.NewVec3(0, 0.2, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        35.0,
	}, cameraOverrides)

	s := newScene(cameraConfig, SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
	})

	var globeTexture material.ColorSource
	if texturePath != "" {
		imageData, err := loaders.LoadImageWithOptions(texturePath, loaders.ImageOptions{MaxSize: maxTextureSize})
		if err != nil {
			return nil, fmt.Errorf("failed to load texture: %w", err)
		}
		globeTexture = material.NewImageTexture(imageData.Width, imageData.Height, imageData.Pixels)
	} else {
		globeTexture = material.NewUVCheckerColors(0.05, core.NewVec3(0.3, 0.1, 0.1), core.NewVec3(0.7, 0.7, 0.7))
	}

	groundChecker := material.NewCheckerColors(0.3, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	glass := material.NewDielectric(1.5)

	s.Shapes = append(s.Shapes,
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, material.NewTexturedLambertian(groundChecker)),
		geometry.NewSphere(core.NewVec3(0, 0, 0), 0.5, material.NewTexturedLambertian(globeTexture)),
		geometry.NewSphere(core.NewVec3(0, 0, 0), 0.503, glass),
		geometry.NewSphere(core.NewVec3(0, 0, 0), 0.502, glass),
	)

	// Baked noise reads back through the image texture path
	noise := material.NewPerlin(rand.New(rand.NewSource(seed)))
	bakedNoise := material.BakeTexture(
		material.NewPerlinTexture(noise, 0.05, 1.0, core.NewVec3(0.1, 0.1, 0.3), core.NewVec3(0.9, 0.8, 0.6)),
		256, 256,
	)

	s.Shapes = append(s.Shapes,
		geometry.NewAxisAlignedBox(
			core.NewVec3(-1.4, -0.15, -0.4),
			core.NewVec3(0.35, 0.35, 0.35),
			material.NewTexturedLambertian(material.NewUVDebugTexture(256, 256)),
		),
		geometry.NewQuad(
			core.NewVec3(0.9, -0.5, -0.8),
			core.NewVec3(0.8, 0, 0.3),
			core.NewVec3(0, 0.8, 0),
			material.NewTexturedLambertian(bakedNoise),
		),
		geometry.NewTriangleWithAttributes(
			[3]core.Vec3{core.NewVec3(-0.6, -0.5, 1), core.NewVec3(-0.1, -0.5, 1.2), core.NewVec3(-0.35, 0, 1.1)},
			[3]core.Vec3{core.NewVec3(-0.3, 0, 1), core.NewVec3(0.3, 0, 1), core.NewVec3(0, 0.3, 1)},
			[3]core.Vec2{core.NewVec2(0, 0), core.NewVec2(1, 0), core.NewVec2(0.5, 1)},
			material.NewTexturedLambertian(material.NewUVCheckerColors(0.25, core.NewVec3(0.9, 0.9, 0.9), core.NewVec3(0.8, 0.2, 0.2))),
		),
	)

	return s, nil
}
