package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// BakeTexture rasterizes a color source over the unit UV square into an image texture.
// Row 0 of the result is v = 1, matching ImageTexture's layout. Point-driven
// sources are sampled at (u, v, 0).
func BakeTexture(source ColorSource, width, height int) *ImageTexture {
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		v := 1.0 - (float64(y)+0.5)/float64(height)
		for x := 0; x < width; x++ {
			u := (float64(x) + 0.5) / float64(width)
			pixels[y*width+x] = source.Evaluate(core.NewVec2(u, v), core.NewVec3(u, v, 0))
		}
	}

	return NewImageTexture(width, height, pixels)
}

// NewUVDebugTexture creates a texture showing UV coordinates as colors
// U maps to red channel, V maps to green channel
func NewUVDebugTexture(width, height int) *ImageTexture {
	pixels := make([]core.Vec3, width*height)

	uSpan := float64(max(width-1, 1))
	vSpan := float64(max(height-1, 1))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			u := float64(x) / uSpan
			v := 1.0 - float64(y)/vSpan
			pixels[y*width+x] = core.NewVec3(u, v, 0.0)
		}
	}

	return NewImageTexture(width, height, pixels)
}
