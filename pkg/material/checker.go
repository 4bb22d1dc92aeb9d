package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// CheckerTexture alternates between two color sources on a 3D lattice of cubes
type CheckerTexture struct {
	invScale float64
	Even     ColorSource
	Odd      ColorSource
}

// NewCheckerTexture creates a spatial checker with cubes of the given edge length
func NewCheckerTexture(scale float64, even, odd ColorSource) *CheckerTexture {
	return &CheckerTexture{invScale: 1.0 / scale, Even: even, Odd: odd}
}

// NewCheckerColors creates a spatial checker from two solid colors
func NewCheckerColors(scale float64, even, odd core.Vec3) *CheckerTexture {
	return NewCheckerTexture(scale, NewSolidColor(even), NewSolidColor(odd))
}

// Evaluate selects a sub-texture by the parity of floor(point/scale)
func (c *CheckerTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	cell := point.Multiply(c.invScale).Floor()
	if (int(cell.X)+int(cell.Y)+int(cell.Z))%2 == 0 {
		return c.Even.Evaluate(uv, point)
	}
	return c.Odd.Evaluate(uv, point)
}

// UVCheckerTexture alternates between two color sources on a grid in texture space
type UVCheckerTexture struct {
	invScale float64
	Even     ColorSource
	Odd      ColorSource
}

// NewUVCheckerTexture creates a UV checker with squares of the given size in UV units
func NewUVCheckerTexture(scale float64, even, odd ColorSource) *UVCheckerTexture {
	return &UVCheckerTexture{invScale: 1.0 / scale, Even: even, Odd: odd}
}

// NewUVCheckerColors creates a UV checker from two solid colors
func NewUVCheckerColors(scale float64, even, odd core.Vec3) *UVCheckerTexture {
	return NewUVCheckerTexture(scale, NewSolidColor(even), NewSolidColor(odd))
}

// Evaluate selects a sub-texture by the parity of floor(uv/scale)
func (c *UVCheckerTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	x := int(math.Floor(uv.X * c.invScale))
	y := int(math.Floor(uv.Y * c.invScale))
	if (x+y)%2 == 0 {
		return c.Even.Evaluate(uv, point)
	}
	return c.Odd.Evaluate(uv, point)
}
