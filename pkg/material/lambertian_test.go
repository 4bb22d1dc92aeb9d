package material

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestLambertian_ScatterDirection(t *testing.T) {
	albedo := core.NewVec3(0.8, 0.6, 0.4)
	lambertian := NewLambertian(albedo)
	sampler := core.NewSeededSampler(42)

	normal := core.NewVec3(0, 0, 1)
	hit := HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: normal,
	}
	ray := core.NewRayAtTime(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1), 0.3)

	var cosSum float64
	const n = 5000
	for i := 0; i < n; i++ {
		scatter, didScatter := lambertian.Scatter(ray, hit, sampler)
		if !didScatter {
			t.Fatal("Lambertian should always scatter")
		}

		if scatter.Attenuation != albedo {
			t.Fatalf("Expected attenuation %v, got %v", albedo, scatter.Attenuation)
		}

		direction := scatter.Scattered.Direction
		if math.Abs(direction.Length()-1) > 1e-9 {
			t.Fatalf("Expected unit direction, got length %f", direction.Length())
		}
		if direction.Dot(normal) < -1e-9 {
			t.Fatalf("Scattered direction %v points into the surface", direction)
		}
		if scatter.Scattered.Time != ray.Time {
			t.Fatalf("Expected scattered ray to keep time %f, got %f", ray.Time, scatter.Scattered.Time)
		}
		cosSum += direction.Dot(normal)
	}

	// Cosine-distributed directions have mean cos(theta) = 2/3
	if mean := cosSum / n; math.Abs(mean-2.0/3.0) > 0.02 {
		t.Errorf("Expected mean cosine ~0.667, got %f", mean)
	}
}

func TestLambertian_TextureLookup(t *testing.T) {
	checker := NewUVCheckerColors(0.5, core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1))
	lambertian := NewTexturedLambertian(checker)
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	hit := HitRecord{Normal: core.NewVec3(0, 0, 1), UV: core.NewVec2(0.75, 0.25)}
	scatter, _ := lambertian.Scatter(ray, hit, core.NewSeededSampler(1))

	if expected := core.NewVec3(0, 0, 1); scatter.Attenuation != expected {
		t.Errorf("Expected odd checker color %v, got %v", expected, scatter.Attenuation)
	}
}
