package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Normal is a debug material that tints by the surface normal and sends the ray straight back
type Normal struct{}

// NewNormal creates a normal-visualizing material
func NewNormal() *Normal {
	return &Normal{}
}

// Scatter implements the Material interface
func (n *Normal) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	tint := hit.Normal.Add(core.Splat(1)).Multiply(0.5).Square()
	return ScatterResult{
		Scattered:   core.NewRayAtTime(hit.Point, rayIn.Direction.Negate(), rayIn.Time),
		Attenuation: tint,
	}, true
}
