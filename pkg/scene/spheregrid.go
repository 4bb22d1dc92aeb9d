package scene

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Vec3 {
	// Convert hue from degrees to radians
	hRad := h * math.Pi / 180.0

	// Convert from OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// First convert to LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	// Cube the values
	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// Convert LMS to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	// Clamp to [0, 1] range
	r = math.Max(0, math.Min(1, r))
	g = math.Max(0, math.Min(1, g))
	blue = math.Max(0, math.Min(1, blue))

	return core.NewVec3(r, g, blue)
}

// sphereGridSize is the number of spheres along each side of the grid
const sphereGridSize = 25

// NewSphereGridScene creates a performance scene: a grid of small metal spheres
// colored across hue and chroma, lifted onto a sine surface above a dark floor
func NewSphereGridScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := mergeCamera(geometry.CameraConfig{
		LookFrom:    core.NewVec3(0, 6, 3.5),
		LookAt:      core.NewVec3(0, 1, -1),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        70.0,
	}, cameraOverrides)

	s := newScene(cameraConfig, SamplingConfig{
		SamplesPerPixel: 50,
		MaxDepth:        20,
	})

	s.Shapes = append(s.Shapes, NewGroundQuad(core.NewVec3(0, -0.5, -1), 200, material.NewLambertian(core.NewVec3(0.03, 0.03, 0.03))))

	// Target area: roughly 14x8 units in front of the camera
	const width, depth = 14.0, 8.0
	spacingX := width / float64(sphereGridSize-1)
	spacingZ := depth / float64(sphereGridSize-1)
	sphereRadius := math.Min(spacingX, spacingZ) * 0.35

	// OKLCH parameters for color variation
	baseLightness := 0.65 // Keep lightness relatively constant for uniform appearance
	minChroma := 0.05     // Minimum chroma (near white/gray)
	maxChroma := 0.25     // Maximum chroma (vivid colors)

	for i := 0; i < sphereGridSize; i++ {
		for j := 0; j < sphereGridSize; j++ {
			x := float64(i)*spacingX - width/2
			z := float64(j)*spacingZ - depth + 1.5
			y := math.Sin(x)*math.Sin(z) + 1.0

			// Vary hue across X and chroma across Z
			hue := (float64(i) / float64(sphereGridSize-1)) * 360.0
			chroma := minChroma + (float64(j)/float64(sphereGridSize-1))*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math.Sin(float64(i+j)*0.5)
			color := oklchToRGB(lightness, chroma, hue)

			roughness := 0.05 + 0.1*float64((i+j)%3)/2.0
			s.Shapes = append(s.Shapes, geometry.NewSphere(core.NewVec3(x, y, z), sphereRadius, material.NewMetal(color, roughness)))
		}
	}

	return s
}
