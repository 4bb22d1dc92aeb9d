package renderer

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// WritePPM encodes img as a plain-text P3 PPM, one "r g b" line per pixel, rows top to bottom
func WritePPM(w io.Writer, img image.Image) error {
	bw := bufio.NewWriter(w)
	bounds := img.Bounds()

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", bounds.Dx(), bounds.Dy()); err != nil {
		return err
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", r>>8, g>>8, b>>8); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

// SaveImage writes img to filename, creating parent directories. The format
// follows the extension: .ppm is written as plain PPM, anything else
// (.png, .jpg, .gif, .tif, .bmp) is encoded by imaging.
func SaveImage(filename string, img image.Image) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if strings.EqualFold(filepath.Ext(filename), ".ppm") {
		file, err := os.Create(filename)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", filename, err)
		}
		if err := WritePPM(file, img); err != nil {
			file.Close()
			return fmt.Errorf("failed to write PPM: %w", err)
		}
		return file.Close()
	}

	if err := imaging.Save(img, filename); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}
