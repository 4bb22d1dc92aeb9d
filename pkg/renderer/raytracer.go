package renderer

import (
	"fmt"
	"image"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Raytracer renders complete frames of a scene. A Raytracer holds no mutable
// state of its own, so several may share one preprocessed scene.
type Raytracer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
	width      int
	height     int
	config     scene.SamplingConfig
}

// NewRaytracer creates a raytracer using the scene's sampling configuration
func NewRaytracer(sc *scene.Scene, integ integrator.Integrator) *Raytracer {
	width, height := sc.Camera.ImageSize()
	return &Raytracer{
		scene:      sc,
		integrator: integ,
		width:      width,
		height:     height,
		config:     sc.SamplingConfig,
	}
}

// NewPathTracingRaytracer creates a raytracer driven by the path tracing integrator
func NewPathTracingRaytracer(sc *scene.Scene) *Raytracer {
	return NewRaytracer(sc, integrator.NewPathTracingIntegrator(sc.SamplingConfig))
}

// Size returns the image dimensions this raytracer produces
func (rt *Raytracer) Size() (width, height int) {
	return rt.width, rt.height
}

// RenderPixel averages SamplesPerPixel radiance estimates for pixel (i, j).
// Row j = 0 is the top of the image.
func (rt *Raytracer) RenderPixel(i, j int, sampler core.Sampler) core.Vec3 {
	samples := max(rt.config.SamplesPerPixel, 1)

	var colorAccum core.Vec3
	for s := 0; s < samples; s++ {
		ray := rt.scene.Camera.GetRay(i, j, sampler)
		colorAccum = colorAccum.Add(rt.integrator.RayColor(ray, rt.scene, sampler))
	}

	return colorAccum.Multiply(1.0 / float64(samples))
}

// RenderFrame renders every pixel once and returns the frame as linear 8-bit
// channels. Gamma is applied later, when frames are aggregated.
func (rt *Raytracer) RenderFrame(sampler core.Sampler) (*image.RGBA, RenderStats) {
	start := time.Now()
	img := image.NewRGBA(image.Rect(0, 0, rt.width, rt.height))

	for j := 0; j < rt.height; j++ {
		for i := 0; i < rt.width; i++ {
			img.SetRGBA(i, j, toLinearRGBA(rt.RenderPixel(i, j, sampler)))
		}
	}

	pixels := rt.width * rt.height
	samples := max(rt.config.SamplesPerPixel, 1)
	return img, RenderStats{
		Frames:         1,
		TotalPixels:    pixels,
		TotalSamples:   pixels * samples,
		AverageSamples: float64(samples),
		Elapsed:        time.Since(start),
	}
}
