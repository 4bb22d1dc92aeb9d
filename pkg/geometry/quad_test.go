package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

func TestQuad_Hit(t *testing.T) {
	// Unit square in the XY plane facing +Z
	quad := NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), DummyMaterial{})

	tests := []struct {
		name       string
		origin     core.Vec3
		direction  core.Vec3
		expectHit  bool
		expectedT  float64
		expectedUV core.Vec2
		frontFace  bool
	}{
		{
			name:       "center from front",
			origin:     core.NewVec3(0.5, 0.5, 1),
			direction:  core.NewVec3(0, 0, -1),
			expectHit:  true,
			expectedT:  1,
			expectedUV: core.NewVec2(0.5, 0.5),
			frontFace:  true,
		},
		{
			name:       "corner region from back",
			origin:     core.NewVec3(0.25, 0.75, -2),
			direction:  core.NewVec3(0, 0, 1),
			expectHit:  true,
			expectedT:  2,
			expectedUV: core.NewVec2(0.25, 0.75),
			frontFace:  false,
		},
		{
			name:      "outside u range",
			origin:    core.NewVec3(1.5, 0.5, 1),
			direction: core.NewVec3(0, 0, -1),
			expectHit: false,
		},
		{
			name:      "outside v range",
			origin:    core.NewVec3(0.5, -0.1, 1),
			direction: core.NewVec3(0, 0, -1),
			expectHit: false,
		},
		{
			name:      "parallel to plane",
			origin:    core.NewVec3(0.5, 0.5, 1),
			direction: core.NewVec3(1, 0, 0),
			expectHit: false,
		},
		{
			name:      "behind the ray",
			origin:    core.NewVec3(0.5, 0.5, 1),
			direction: core.NewVec3(0, 0, 1),
			expectHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rec material.HitRecord
			hit := quad.Hit(core.NewRay(tt.origin, tt.direction), core.RightOpen(0.001), &rec)
			if hit != tt.expectHit {
				t.Fatalf("Expected hit=%t, got %t", tt.expectHit, hit)
			}
			if !hit {
				return
			}
			if math.Abs(rec.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got %f", tt.expectedT, rec.T)
			}
			if math.Abs(rec.UV.X-tt.expectedUV.X) > 1e-9 || math.Abs(rec.UV.Y-tt.expectedUV.Y) > 1e-9 {
				t.Errorf("Expected UV %v, got %v", tt.expectedUV, rec.UV)
			}
			if rec.FrontFace != tt.frontFace {
				t.Errorf("Expected FrontFace=%t, got %t", tt.frontFace, rec.FrontFace)
			}
		})
	}
}

func TestQuad_SkewedEdges(t *testing.T) {
	// Parallelogram with non-orthogonal edges
	quad := NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(2, 0, 0), core.NewVec3(1, 1, 0), DummyMaterial{})

	var rec material.HitRecord
	// corner + 0.5*u + 0.5*v = (1.5, 0.5, 0)
	ray := core.NewRay(core.NewVec3(1.5, 0.5, 1), core.NewVec3(0, 0, -1))
	if !quad.Hit(ray, core.RightOpen(0.001), &rec) {
		t.Fatal("Expected hit inside parallelogram")
	}
	if math.Abs(rec.UV.X-0.5) > 1e-9 || math.Abs(rec.UV.Y-0.5) > 1e-9 {
		t.Errorf("Expected UV (0.5, 0.5), got %v", rec.UV)
	}

	// (0.2, 0.8) is inside the bounding box but left of the slanted edge
	ray = core.NewRay(core.NewVec3(0.2, 0.8, 1), core.NewVec3(0, 0, -1))
	if quad.Hit(ray, core.RightOpen(0.001), &rec) {
		t.Error("Expected miss outside slanted edge")
	}
}

func TestQuad_BoundingBoxIsPadded(t *testing.T) {
	quad := NewQuad(core.NewVec3(-1, 0, -1), core.NewVec3(2, 0, 0), core.NewVec3(0, 0, 2), DummyMaterial{})
	bbox := quad.BoundingBox()

	if bbox.Size().Y <= 0 {
		t.Errorf("Expected padded thickness on flat axis, got %v", bbox.Size())
	}
	for _, corner := range []core.Vec3{
		core.NewVec3(-1, 0, -1), core.NewVec3(1, 0, -1), core.NewVec3(-1, 0, 1), core.NewVec3(1, 0, 1),
	} {
		if !bbox.Contains(corner) {
			t.Errorf("Expected box %v to contain corner %v", bbox, corner)
		}
	}
}
