package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

// TestImageTextureEvaluate tests basic texture sampling
func TestImageTextureEvaluate(t *testing.T) {
	// Layout:
	//   white black
	//   black white
	white := core.NewVec3(1, 1, 1)
	black := core.NewVec3(0, 0, 0)
	pixels := []core.Vec3{
		white, black, // Row 0 (top in image coords)
		black, white, // Row 1 (bottom in image coords)
	}
	texture := NewImageTexture(2, 2, pixels)

	tests := []struct {
		name     string
		uv       core.Vec2
		expected core.Vec3
	}{
		{"bottom left", core.NewVec2(0.1, 0.1), black},
		{"bottom right", core.NewVec2(0.9, 0.1), white},
		{"top left", core.NewVec2(0.1, 0.9), white},
		{"top right", core.NewVec2(0.9, 0.9), black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := texture.Evaluate(tt.uv, core.Vec3{}); result != tt.expected {
				t.Errorf("UV%v: expected %v, got %v", tt.uv, tt.expected, result)
			}
		})
	}
}

// TestImageTextureClamping tests that out-of-range UVs clamp to the edge pixels
func TestImageTextureClamping(t *testing.T) {
	red := core.NewVec3(1, 0, 0)
	green := core.NewVec3(0, 1, 0)
	// 2x1 image: red on the left, green on the right
	texture := NewImageTexture(2, 1, []core.Vec3{red, green})

	tests := []struct {
		name     string
		uv       core.Vec2
		expected core.Vec3
	}{
		{"u below zero", core.NewVec2(-3.0, 0.5), red},
		{"u above one", core.NewVec2(7.0, 0.5), green},
		{"u exactly one", core.NewVec2(1.0, 1.0), green},
		{"u exactly zero", core.NewVec2(0.0, 0.0), red},
		{"v out of range", core.NewVec2(0.25, -2.0), red},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := texture.Evaluate(tt.uv, core.Vec3{}); result != tt.expected {
				t.Errorf("UV%v: expected %v, got %v", tt.uv, tt.expected, result)
			}
		})
	}
}

func TestBakeTextureMatchesSource(t *testing.T) {
	checker := NewUVCheckerColors(0.5, core.NewVec3(1, 1, 1), core.NewVec3(0, 0, 0))
	baked := BakeTexture(checker, 8, 8)

	for _, uv := range []core.Vec2{
		core.NewVec2(0.1, 0.1),
		core.NewVec2(0.6, 0.1),
		core.NewVec2(0.1, 0.6),
		core.NewVec2(0.9, 0.9),
	} {
		if got, want := baked.Evaluate(uv, core.Vec3{}), checker.Evaluate(uv, core.Vec3{}); got != want {
			t.Errorf("UV%v: baked %v, source %v", uv, got, want)
		}
	}
}

func TestUVDebugTextureCorners(t *testing.T) {
	texture := NewUVDebugTexture(4, 4)

	if got := texture.Evaluate(core.NewVec2(0, 0), core.Vec3{}); got != core.NewVec3(0, 0, 0) {
		t.Errorf("Expected black at UV origin, got %v", got)
	}
	if got := texture.Evaluate(core.NewVec2(1, 1), core.Vec3{}); got != core.NewVec3(1, 1, 0) {
		t.Errorf("Expected yellow at UV (1,1), got %v", got)
	}
}

func TestBakeTextureVariesWithPoint(t *testing.T) {
	tests := []struct {
		name   string
		source ColorSource
	}{
		{"perlin", NewPerlinTexture(NewPerlin(rand.New(rand.NewSource(1))), 0.05, 1, core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1))},
		{"spatial checker", NewCheckerColors(0.25, core.NewVec3(1, 1, 1), core.NewVec3(0, 0, 0))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			baked := BakeTexture(tt.source, 32, 32)

			distinct := make(map[core.Vec3]struct{})
			for _, pixel := range baked.Pixels {
				distinct[pixel] = struct{}{}
			}
			if len(distinct) < 2 {
				t.Errorf("Expected varying texels, got %d distinct of %d", len(distinct), len(baked.Pixels))
			}
		})
	}
}

func TestUVDebugTextureSinglePixel(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {1, 4}, {4, 1}} {
		texture := NewUVDebugTexture(size[0], size[1])
		for _, pixel := range texture.Pixels {
			if math.IsNaN(pixel.X) || math.IsNaN(pixel.Y) || math.IsNaN(pixel.Z) {
				t.Errorf("%dx%d: expected finite texels, got %v", size[0], size[1], pixel)
			}
		}
	}
}

func TestNewImageTextureRejectsWrongPixelCount(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		pixels        int
	}{
		{"short", 2, 2, 3},
		{"long", 2, 2, 5},
		{"negative width", -1, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Expected panic for %dx%d with %d pixels", tt.width, tt.height, tt.pixels)
				}
			}()
			NewImageTexture(tt.width, tt.height, make([]core.Vec3, tt.pixels))
		})
	}

	if got := NewImageTexture(0, 0, nil).Evaluate(core.NewVec2(0.5, 0.5), core.Vec3{}); got != core.NewVec3(0, 1, 1) {
		t.Errorf("Expected cyan for an empty image, got %v", got)
	}
}
