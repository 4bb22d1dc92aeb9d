package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder
	_ "golang.org/x/image/webp" // WebP decoder

	"github.com/df07/go-pathtracer/pkg/core"
)

// ImageData contains loaded image data as Vec3 color array
type ImageData struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major, row 0 at the top
}

// ImageOptions controls how a texture image is loaded
type ImageOptions struct {
	// MaxSize caps the longer side in pixels; larger images are downscaled
	// preserving aspect ratio. Zero keeps the original size.
	MaxSize int
}

// LoadImage loads a PNG, JPEG, BMP, TIFF or WebP image at its original size
func LoadImage(filename string) (*ImageData, error) {
	return LoadImageWithOptions(filename, ImageOptions{})
}

// LoadImageWithOptions loads an image and converts it to a Vec3 color array in [0, 1].
// EXIF orientation is applied so the texture appears upright.
func LoadImageWithOptions(filename string, options ImageOptions) (*ImageData, error) {
	img, err := imaging.Open(filename, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}

	if options.MaxSize > 0 {
		bounds := img.Bounds()
		if bounds.Dx() > options.MaxSize || bounds.Dy() > options.MaxSize {
			img = resize.Thumbnail(uint(options.MaxSize), uint(options.MaxSize), img, resize.Lanczos3)
		}
	}

	return imageToData(img), nil
}

// imageToData converts any decoded image into a Vec3 color array
func imageToData(img image.Image) *ImageData {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535], convert to [0, 1]
			pixels[y*width+x] = core.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	return &ImageData{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}
