package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// shadowAcneEpsilon is the lower bound of the hit interval for every traced ray
const shadowAcneEpsilon = 0.001

var (
	skyWhite = core.NewVec3(1.0, 1.0, 1.0)
	skyBlue  = core.NewVec3(0.5, 0.7, 1.0)
)

// PathTracingIntegrator implements unidirectional path tracing with a sky gradient background
type PathTracingIntegrator struct {
	config scene.SamplingConfig
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(config scene.SamplingConfig) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		config: config,
	}
}

// RayColor computes the color for a single primary ray using the configured bounce limit
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, sc *scene.Scene, sampler core.Sampler) core.Vec3 {
	return RayColor(ray, sc.World(), pt.config.MaxDepth, sampler)
}

// RayColor recursively follows scattered rays through world. The path contributes
// nothing once depth reaches zero or a material absorbs it; escaping rays pick up
// the sky gradient, attenuated by every surface they bounced off.
func RayColor(ray core.Ray, world geometry.Shape, depth int, sampler core.Sampler) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	var hit material.HitRecord
	if !world.Hit(ray, core.RightOpen(shadowAcneEpsilon), &hit) {
		return backgroundGradient(ray)
	}

	scatter, didScatter := hit.Material.Scatter(ray, hit, sampler)
	if !didScatter {
		return core.Vec3{}
	}

	return scatter.Attenuation.MultiplyVec(RayColor(scatter.Scattered, world, depth-1, sampler))
}

// backgroundGradient blends from white for downward rays to sky blue for upward rays
func backgroundGradient(ray core.Ray) core.Vec3 {
	t := 0.5 * (ray.Direction.Y + 1.0)
	return skyWhite.Lerp(skyBlue, t)
}
