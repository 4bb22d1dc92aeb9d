package material

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ImageTexture provides color from a 2D image
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x], row 0 at the top
}

// NewImageTexture creates a new image texture. It panics if pixels does not hold
// exactly width*height entries.
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	if width < 0 || height < 0 || len(pixels) != width*height {
		panic(fmt.Sprintf("image texture %dx%d needs %d pixels, got %d", width, height, max(width, 0)*max(height, 0), len(pixels)))
	}
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// Evaluate samples the texture at given UV coordinates using nearest-neighbor filtering
func (t *ImageTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	if t.Width <= 0 || t.Height <= 0 {
		// Cyan flags a missing image
		return core.NewVec3(0, 1, 1)
	}

	unit := core.NewInterval(0, 1)
	u := unit.Clamp(uv.X)
	v := 1.0 - unit.Clamp(uv.Y) // V=0 is the bottom row of the image

	x := min(int(u*float64(t.Width)), t.Width-1)
	y := min(int(v*float64(t.Height)), t.Height-1)

	return t.Pixels[y*t.Width+x]
}
