package material

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

const perlinPointCount = 256

// Perlin is a gradient noise generator over a fixed lattice of random unit vectors
type Perlin struct {
	gradients [perlinPointCount]core.Vec3
	permX     []int
	permY     []int
	permZ     []int
}

// NewPerlin creates a noise generator whose gradients and permutations come from random
func NewPerlin(random *rand.Rand) *Perlin {
	p := &Perlin{}
	for i := range p.gradients {
		cube := core.NewVec3(random.Float64(), random.Float64(), random.Float64())
		p.gradients[i] = cube.Multiply(2).Subtract(core.Splat(1)).Normalize()
	}

	// Each axis gets its own independent shuffle
	p.permX = random.Perm(perlinPointCount)
	p.permY = random.Perm(perlinPointCount)
	p.permZ = random.Perm(perlinPointCount)
	return p
}

// Noise returns smoothed gradient noise at point, roughly in [-1, 1]
func (p *Perlin) Noise(point core.Vec3) float64 {
	cell := point.Floor()
	u := point.X - cell.X
	v := point.Y - cell.Y
	w := point.Z - cell.Z

	i := int(cell.X)
	j := int(cell.Y)
	k := int(cell.Z)

	var c [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				c[di][dj][dk] = p.gradients[p.permX[(i+di)&255]^p.permY[(j+dj)&255]^p.permZ[(k+dk)&255]]
			}
		}
	}

	return perlinInterpolate(&c, u, v, w)
}

// Turbulence sums depth octaves of |noise|, doubling frequency and halving weight each octave
func (p *Perlin) Turbulence(point core.Vec3, depth int) float64 {
	accum := 0.0
	weight := 1.0
	for i := 0; i < depth; i++ {
		accum += weight * math.Abs(p.Noise(point))
		weight *= 0.5
		point = point.Multiply(2)
	}
	return accum
}

// perlinInterpolate blends the lattice gradient contributions with a Hermite-smoothed trilinear weight
func perlinInterpolate(c *[2][2][2]core.Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	accum := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				fi, fj, fk := float64(i), float64(j), float64(k)
				offset := core.NewVec3(u-fi, v-fj, w-fk)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(offset)
			}
		}
	}
	return accum
}

// PerlinTexture is a marble-like procedural texture blended between two colors
type PerlinTexture struct {
	noise    *Perlin
	invScale float64
	Contrast float64
	Low      core.Vec3
	High     core.Vec3
}

// NewPerlinTexture creates a noise texture. Larger scale stretches the pattern, larger contrast sharpens it.
func NewPerlinTexture(noise *Perlin, scale, contrast float64, low, high core.Vec3) *PerlinTexture {
	return &PerlinTexture{
		noise:    noise,
		invScale: 1.0 / scale,
		Contrast: contrast,
		Low:      low,
		High:     high,
	}
}

// Evaluate returns the blended color at point
func (t *PerlinTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	turbulence := t.noise.Turbulence(point.Multiply(t.invScale), 7)
	factor := math.Pow(0.5*(1+math.Sin(20*turbulence)), t.Contrast)
	return t.Low.Lerp(t.High, factor)
}
