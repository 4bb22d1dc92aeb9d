package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Triangle represents a single triangle with per-vertex normals and texture coordinates
type Triangle struct {
	V0, V1, V2 core.Vec3         // The three vertices
	Normals    [3]core.Vec3      // Per-vertex shading normals
	UVs        [3]core.Vec2      // Per-vertex texture coordinates
	Material   material.Material // Material of the triangle
	normal     core.Vec3         // Cached geometric normal
	bbox       core.AABB         // Cached bounding box
}

// NewTriangle creates a flat-shaded triangle from three vertices.
// All vertex normals are the geometric normal and all UVs are zero.
func NewTriangle(v0, v1, v2 core.Vec3, material material.Material) *Triangle {
	normal := faceNormal(v0, v1, v2)
	return NewTriangleWithNormal(v0, v1, v2, normal, material)
}

// NewTriangleWithNormal creates a flat-shaded triangle from three vertices with a custom normal
func NewTriangleWithNormal(v0, v1, v2 core.Vec3, normal core.Vec3, material material.Material) *Triangle {
	normal = normal.Normalize()
	return NewTriangleWithAttributes(
		[3]core.Vec3{v0, v1, v2},
		[3]core.Vec3{normal, normal, normal},
		[3]core.Vec2{},
		material,
	)
}

// NewTriangleWithAttributes creates a smooth-shaded, textured triangle
func NewTriangleWithAttributes(vertices, normals [3]core.Vec3, uvs [3]core.Vec2, material material.Material) *Triangle {
	return &Triangle{
		V0:       vertices[0],
		V1:       vertices[1],
		V2:       vertices[2],
		Normals:  normals,
		UVs:      uvs,
		Material: material,
		normal:   faceNormal(vertices[0], vertices[1], vertices[2]),
		bbox:     core.WrapTriangle(vertices[0], vertices[1], vertices[2]),
	}
}

// faceNormal returns the unit geometric normal for counter-clockwise winding
func faceNormal(v0, v1, v2 core.Vec3) core.Vec3 {
	return v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize()
}

// Hit tests if a ray intersects with the triangle using the Möller-Trumbore algorithm
func (t *Triangle) Hit(ray core.Ray, interval core.Interval, rec *material.HitRecord) bool {
	const epsilon = 1e-6

	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	det := edge1.Dot(h)

	// Ray lies in (or nearly in) the plane of the triangle
	if det > -epsilon && det < epsilon {
		return false
	}

	invDet := 1.0 / det
	s := ray.Origin.Subtract(t.V0)
	u := invDet * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return false
	}

	q := s.Cross(edge1)
	v := invDet * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return false
	}

	root := invDet * edge2.Dot(q)
	if !interval.Surrounds(root) {
		return false
	}

	w := 1.0 - u - v

	rec.T = root
	rec.Point = ray.At(root)
	rec.Material = t.Material

	shadingNormal := t.Normals[0].Multiply(w).
		Add(t.Normals[1].Multiply(u)).
		Add(t.Normals[2].Multiply(v)).
		Normalize()
	rec.SetFaceNormal(ray, shadingNormal)

	rec.UV = core.NewVec2(
		t.UVs[0].X*w+t.UVs[1].X*u+t.UVs[2].X*v,
		t.UVs[0].Y*w+t.UVs[1].Y*u+t.UVs[2].Y*v,
	)

	return true
}

// BoundingBox returns the axis-aligned bounding box for this triangle
func (t *Triangle) BoundingBox() core.AABB {
	return t.bbox
}

// GetNormal returns the triangle's geometric normal vector
func (t *Triangle) GetNormal() core.Vec3 {
	return t.normal
}
