package core

import (
	"math"
	"math/rand"
)

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Vec3
	// GetGaussian3D returns three independent standard normal deviates
	GetGaussian3D() Vec3
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with its own deterministic random stream
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// GetGaussian3D returns three standard normal values
func (r *RandomSampler) GetGaussian3D() Vec3 {
	return NewVec3(r.random.NormFloat64(), r.random.NormFloat64(), r.random.NormFloat64())
}

// RandomInUnitCube returns a point uniformly distributed in [0,1)^3
func RandomInUnitCube(sampler Sampler) Vec3 {
	return sampler.Get3D()
}

// RandomUnitVector returns a direction uniformly distributed on the unit sphere.
// A normalized isotropic Gaussian vector is uniform on the sphere without rejection sampling.
func RandomUnitVector(sampler Sampler) Vec3 {
	for {
		g := sampler.GetGaussian3D()
		if lengthSq := g.LengthSquared(); lengthSq > 1e-160 {
			return g.Multiply(1 / math.Sqrt(lengthSq))
		}
	}
}

// RandomOnHemisphere returns a unit direction in the hemisphere around normal
func RandomOnHemisphere(normal Vec3, sampler Sampler) Vec3 {
	onUnitSphere := RandomUnitVector(sampler)
	if onUnitSphere.Dot(normal) > 0 {
		return onUnitSphere
	}
	return onUnitSphere.Negate()
}

// SamplePointInUnitDisk maps a 2D sample to a point uniformly distributed in the unit disk (z = 0)
func SamplePointInUnitDisk(sample Vec2) Vec3 {
	r := math.Sqrt(sample.X)
	theta := 2 * math.Pi * sample.Y
	return NewVec3(r*math.Cos(theta), r*math.Sin(theta), 0)
}
