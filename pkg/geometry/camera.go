package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	LookFrom      core.Vec3 // Camera position
	LookAt        core.Vec3 // Point the camera is looking at
	Up            core.Vec3 // Up direction (usually (0,1,0))
	Width         int       // Image width in pixels
	AspectRatio   float64   // Width / height
	VFov          float64   // Vertical field of view in degrees
	ApertureAngle float64   // Lens cone angle in degrees (0 = pinhole)
	FocusDistance float64   // Distance to the focus plane (0 = distance to LookAt)
	MotionBlur    bool      // Sample a shutter time in [0,1) per ray
}

// MergeCameraConfig returns base with every non-zero field of override applied
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.LookFrom != (core.Vec3{}) {
		result.LookFrom = override.LookFrom
	}
	if override.LookAt != (core.Vec3{}) {
		result.LookAt = override.LookAt
	}
	if override.Up != (core.Vec3{}) {
		result.Up = override.Up
	}
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.AspectRatio != 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.VFov != 0 {
		result.VFov = override.VFov
	}
	if override.ApertureAngle != 0 {
		result.ApertureAngle = override.ApertureAngle
	}
	if override.FocusDistance != 0 {
		result.FocusDistance = override.FocusDistance
	}
	if override.MotionBlur {
		result.MotionBlur = true
	}
	return result
}

// Camera generates primary rays for each pixel
type Camera struct {
	config      CameraConfig
	width       int
	height      int
	center      core.Vec3
	pixel00     core.Vec3 // World position of the center of pixel (0,0)
	pixelDeltaU core.Vec3 // Offset to the next pixel to the right
	pixelDeltaV core.Vec3 // Offset to the next pixel down
	lensU       core.Vec3 // Lens disk horizontal radius vector
	lensV       core.Vec3 // Lens disk vertical radius vector
	lensRadius  float64
}

// NewCamera derives the viewport from the configuration
func NewCamera(config CameraConfig) *Camera {
	width := max(config.Width, 1)
	aspect := config.AspectRatio
	if aspect <= 0 {
		aspect = 1
	}
	height := max(int(float64(width)/aspect), 1)

	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		focusDistance = config.LookFrom.Subtract(config.LookAt).Length()
	}

	// Orthonormal basis: w points backwards, u right, v up
	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	theta := degreesToRadians(config.VFov)
	viewportHeight := 2 * math.Tan(theta/2) * focusDistance
	viewportWidth := viewportHeight * float64(width) / float64(height)

	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Multiply(-viewportHeight)
	pixelDeltaU := viewportU.Divide(float64(width))
	pixelDeltaV := viewportV.Divide(float64(height))

	upperLeft := config.LookFrom.
		Subtract(w.Multiply(focusDistance)).
		Subtract(viewportU.Divide(2)).
		Subtract(viewportV.Divide(2))
	pixel00 := upperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	lensRadius := focusDistance * math.Tan(degreesToRadians(config.ApertureAngle)/2)

	return &Camera{
		config:      config,
		width:       width,
		height:      height,
		center:      config.LookFrom,
		pixel00:     pixel00,
		pixelDeltaU: pixelDeltaU,
		pixelDeltaV: pixelDeltaV,
		lensU:       u.Multiply(lensRadius),
		lensV:       v.Multiply(lensRadius),
		lensRadius:  lensRadius,
	}
}

// GetRay returns a jittered ray through pixel (i, j), with j = 0 at the top row
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	jitter := sampler.Get2D()
	offsetX := jitter.X - 0.5
	offsetY := jitter.Y - 0.5

	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i) + offsetX)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offsetY))

	origin := c.center
	if c.lensRadius > 0 {
		p := core.SamplePointInUnitDisk(sampler.Get2D())
		origin = c.center.Add(c.lensU.Multiply(p.X)).Add(c.lensV.Multiply(p.Y))
	}

	time := 0.0
	if c.config.MotionBlur {
		time = sampler.Get1D()
	}

	return core.NewRayAtTime(origin, pixelSample.Subtract(origin), time)
}

// ImageSize returns the output dimensions in pixels
func (c *Camera) ImageSize() (width, height int) {
	return c.width, c.height
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
