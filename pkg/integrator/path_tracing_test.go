package integrator

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

// constantMaterial scatters straight up with a fixed attenuation, or absorbs when absorb is set
type constantMaterial struct {
	attenuation core.Vec3
	absorb      bool
}

func (m constantMaterial) Scatter(rayIn core.Ray, hit material.HitRecord, sampler core.Sampler) (material.ScatterResult, bool) {
	if m.absorb {
		return material.ScatterResult{}, false
	}
	return material.ScatterResult{
		Scattered:   core.NewRayAtTime(hit.Point, core.NewVec3(0, 1, 0), rayIn.Time),
		Attenuation: m.attenuation,
	}, true
}

// floor returns a large quad at y=0 facing up
func floor(mat material.Material) geometry.Shape {
	return scene.NewGroundQuad(core.NewVec3(0, 0, 0), 100, mat)
}

func downRay() core.Ray {
	return core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0))
}

func TestRayColor_DepthZeroIsBlack(t *testing.T) {
	world := geometry.NewHittableList()
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))

	for _, depth := range []int{0, -1} {
		if got := RayColor(ray, world, depth, core.NewSeededSampler(1)); got != (core.Vec3{}) {
			t.Errorf("Depth %d: expected black, got %v", depth, got)
		}
	}
}

func TestRayColor_MissReturnsSkyGradient(t *testing.T) {
	world := geometry.NewHittableList()

	tests := []struct {
		name      string
		direction core.Vec3
		expected  core.Vec3
	}{
		{"straight up is sky blue", core.NewVec3(0, 1, 0), core.NewVec3(0.5, 0.7, 1.0)},
		{"straight down is white", core.NewVec3(0, -1, 0), core.NewVec3(1, 1, 1)},
		{"horizon is halfway", core.NewVec3(1, 0, 0), core.NewVec3(0.75, 0.85, 1.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(core.Vec3{}, tt.direction)
			got := RayColor(ray, world, 10, core.NewSeededSampler(1))
			if diff := cmp.Diff(tt.expected, got, approx); diff != "" {
				t.Errorf("Sky color mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRayColor_AbsorbedPathIsBlack(t *testing.T) {
	world := geometry.NewHittableList(floor(constantMaterial{absorb: true}))

	if got := RayColor(downRay(), world, 10, core.NewSeededSampler(1)); got != (core.Vec3{}) {
		t.Errorf("Expected black for absorbed path, got %v", got)
	}
}

func TestRayColor_AttenuationMultipliesSky(t *testing.T) {
	attenuation := core.NewVec3(0.5, 0.25, 1)
	world := geometry.NewHittableList(floor(constantMaterial{attenuation: attenuation}))

	// One bounce off the floor, then straight up into the sky
	got := RayColor(downRay(), world, 10, core.NewSeededSampler(1))
	expected := attenuation.MultiplyVec(core.NewVec3(0.5, 0.7, 1.0))
	if diff := cmp.Diff(expected, got, approx); diff != "" {
		t.Errorf("Attenuated color mismatch (-want +got):\n%s", diff)
	}

	// Depth 1 allows the hit but not the escape
	if got := RayColor(downRay(), world, 1, core.NewSeededSampler(1)); got != (core.Vec3{}) {
		t.Errorf("Expected black when the bounce budget runs out, got %v", got)
	}
}

func TestRayColor_ScatterStartsAboveSurface(t *testing.T) {
	// A scattered ray starting on the surface must not re-hit it at t~0
	var hits int
	counting := countingShape{Shape: floor(constantMaterial{attenuation: core.NewVec3(1, 1, 1)}), hits: &hits}

	got := RayColor(downRay(), counting, 10, core.NewSeededSampler(1))
	if hits != 1 {
		t.Errorf("Expected exactly one surface hit, got %d", hits)
	}
	if math.Abs(got.Z-1) > 1e-9 {
		t.Errorf("Expected unattenuated sky blue channel, got %v", got)
	}
}

func TestPathTracingIntegrator_UsesMaxDepth(t *testing.T) {
	sc := &scene.Scene{
		Shapes: []geometry.Shape{floor(constantMaterial{attenuation: core.NewVec3(1, 1, 1)})},
	}

	shallow := NewPathTracingIntegrator(scene.SamplingConfig{MaxDepth: 1})
	if got := shallow.RayColor(downRay(), sc, core.NewSeededSampler(1)); got != (core.Vec3{}) {
		t.Errorf("Expected black at MaxDepth 1, got %v", got)
	}

	deep := NewPathTracingIntegrator(scene.SamplingConfig{MaxDepth: 2})
	if got := deep.RayColor(downRay(), sc, core.NewSeededSampler(1)); got == (core.Vec3{}) {
		t.Error("Expected sky light at MaxDepth 2")
	}
}

func TestRayColor_DeterministicForSeed(t *testing.T) {
	sc := scene.NewDefaultScene()
	if err := sc.Preprocess(core.NopLogger{}); err != nil {
		t.Fatalf("Preprocess failed: %v", err)
	}
	ray := core.NewRay(core.NewVec3(13, 2, 3), core.NewVec3(-13, -2, -3))

	first := RayColor(ray, sc.World(), 20, core.NewSeededSampler(7))
	second := RayColor(ray, sc.World(), 20, core.NewSeededSampler(7))
	if first != second {
		t.Errorf("Expected identical colors for the same seed, got %v and %v", first, second)
	}
}

// countingShape counts accepted hits on the wrapped shape
type countingShape struct {
	geometry.Shape
	hits *int
}

func (c countingShape) Hit(ray core.Ray, interval core.Interval, rec *material.HitRecord) bool {
	if c.Shape.Hit(ray, interval, rec) {
		*c.hits++
		return true
	}
	return false
}
