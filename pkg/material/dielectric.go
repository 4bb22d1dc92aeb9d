package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Dielectric represents a transparent material like glass that can both reflect and refract
type Dielectric struct {
	RefractiveIndex float64 // Index of refraction (e.g., 1.5 for glass)
	Frost           float64 // Surface roughness in [0, 1]; 0 is clear glass
}

// NewDielectric creates a new clear dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// NewFrostedDielectric creates a dielectric whose surface normal is jittered before each interaction
func NewFrostedDielectric(refractiveIndex, frost float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex, Frost: math.Max(0, math.Min(frost, 1))}
}

// Scatter implements the Material interface for dielectric scattering
func (d *Dielectric) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	// Dielectrics always attenuate by 1.0 (no color absorption for clear glass)
	attenuation := core.NewVec3(1.0, 1.0, 1.0)

	// Determine if we're entering or exiting the material
	var refractionRatio float64
	if hit.FrontFace {
		refractionRatio = 1.0 / d.RefractiveIndex // Ray is entering the material (from air to glass)
	} else {
		refractionRatio = d.RefractiveIndex // Ray is exiting the material (from glass to air)
	}

	unitDirection := rayIn.Direction
	normal := hit.Normal
	if d.Frost > 0 {
		normal = frostNormal(normal, unitDirection, d.Frost, sampler)
	}

	// Calculate the cosine of the angle between ray and normal
	cosTheta := math.Max(0, math.Min(unitDirection.Negate().Dot(normal), 1.0))
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	// Check for total internal reflection
	cannotRefract := refractionRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || Reflectance(cosTheta, refractionRatio) > sampler.Get1D() {
		direction = core.Reflect(unitDirection, normal)
	} else {
		direction = core.Refract(unitDirection, normal, refractionRatio)
	}

	return ScatterResult{
		Scattered:   core.NewRayAtTime(hit.Point, direction, rayIn.Time),
		Attenuation: attenuation,
	}, true
}

// frostNormal jitters normal by a random unit vector scaled by frost. The
// unperturbed normal is kept when the jittered one degenerates or no longer
// faces the incoming direction.
func frostNormal(normal, direction core.Vec3, frost float64, sampler core.Sampler) core.Vec3 {
	perturbed := normal.Add(core.RandomUnitVector(sampler).Multiply(frost))
	if perturbed.NearZero() {
		return normal
	}
	perturbed = perturbed.Normalize()
	if direction.Dot(perturbed) >= 0 {
		return normal
	}
	return perturbed
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractionRatio float64) float64 {
	// Calculate R0 for normal incidence
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
