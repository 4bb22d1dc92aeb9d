package renderer

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{255, 0, 0, 255})
	img.SetRGBA(1, 0, color.RGBA{0, 255, 0, 255})
	img.SetRGBA(0, 1, color.RGBA{0, 0, 255, 255})
	img.SetRGBA(1, 1, color.RGBA{12, 34, 56, 255})
	return img
}

func TestWritePPM(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePPM(&buf, testImage()); err != nil {
		t.Fatalf("WritePPM failed: %v", err)
	}

	expected := "P3\n2 2\n255\n" +
		"255 0 0\n" +
		"0 255 0\n" +
		"0 0 255\n" +
		"12 34 56\n"
	if buf.String() != expected {
		t.Errorf("Unexpected PPM output:\n%s\nexpected:\n%s", buf.String(), expected)
	}
}

func TestSaveImage_PNG(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "nested", "render.png")
	if err := SaveImage(filename, testImage()); err != nil {
		t.Fatalf("SaveImage failed: %v", err)
	}

	loaded, err := imaging.Open(filename)
	if err != nil {
		t.Fatalf("Failed to reopen PNG: %v", err)
	}
	r, g, b, _ := loaded.At(1, 1).RGBA()
	if r>>8 != 12 || g>>8 != 34 || b>>8 != 56 {
		t.Errorf("Expected pixel (12,34,56) after round trip, got (%d,%d,%d)", r>>8, g>>8, b>>8)
	}
}

func TestSaveImage_PPM(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "render.PPM")
	if err := SaveImage(filename, testImage()); err != nil {
		t.Fatalf("SaveImage failed: %v", err)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("Failed to read PPM: %v", err)
	}
	if !strings.HasPrefix(string(data), "P3\n2 2\n255\n") {
		t.Errorf("Expected a P3 header, got %q", string(data))
	}
}

func TestSaveImage_UnknownExtension(t *testing.T) {
	if err := SaveImage(filepath.Join(t.TempDir(), "render.xyz"), testImage()); err == nil {
		t.Error("Expected an error for an unsupported extension")
	}
}
