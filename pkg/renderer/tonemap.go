package renderer

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// intensity is the displayable range before quantization; 0.999*256 truncates to 255
var intensity = core.NewInterval(0.0, 0.999)

// quantize maps a channel in [0,1] to 8 bits. NaN samples become black.
func quantize(c float64) uint8 {
	if math.IsNaN(c) {
		return 0
	}
	return uint8(256 * intensity.Clamp(c))
}

func toLinearRGBA(c core.Vec3) color.RGBA {
	return color.RGBA{R: quantize(c.X), G: quantize(c.Y), B: quantize(c.Z), A: 255}
}

// ToRGBA converts a linear color to a displayable pixel with gamma 2 correction
func ToRGBA(c core.Vec3) color.RGBA {
	return toLinearRGBA(c.Max(core.Vec3{}).Sqrt())
}

// ApplyGamma converts a linear 8-bit frame into a display image
func ApplyGamma(linear *image.RGBA) *image.RGBA {
	img, _ := AverageImages([]*image.RGBA{linear})
	return img
}

// AverageImages averages linear 8-bit frames pixel by pixel and applies gamma
// once to the result. Frames must share the same bounds.
func AverageImages(frames []*image.RGBA) (*image.RGBA, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("no frames to average")
	}

	var bounds image.Rectangle
	for i, frame := range frames {
		if frame == nil {
			return nil, fmt.Errorf("frame %d is missing", i)
		}
		if i == 0 {
			bounds = frame.Bounds()
		} else if frame.Bounds() != bounds {
			return nil, fmt.Errorf("frame %d has bounds %v, expected %v", i, frame.Bounds(), bounds)
		}
	}

	out := image.NewRGBA(bounds)
	n := float64(len(frames))

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			var r, g, b int
			for _, frame := range frames {
				c := frame.RGBAAt(x, y)
				r += int(c.R)
				g += int(c.G)
				b += int(c.B)
			}
			// Divide by the frame count first so identical frames average exactly
			mean := core.NewVec3(float64(r)/n, float64(g)/n, float64(b)/n).Divide(255)
			out.SetRGBA(x, y, ToRGBA(mean))
		}
	}

	return out, nil
}
