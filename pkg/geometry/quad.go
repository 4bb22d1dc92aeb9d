package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Quad represents a parallelogram defined by a corner and two edge vectors
type Quad struct {
	Corner   core.Vec3         // One corner of the quad
	U        core.Vec3         // First edge vector
	V        core.Vec3         // Second edge vector
	Normal   core.Vec3         // Unit normal (U × V normalized)
	Material material.Material // Material of the quad
	D        float64           // Plane equation constant: normal · p = d
	W        core.Vec3         // n / (n·n), used to project onto the U/V basis
	bbox     core.AABB
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(corner, u, v core.Vec3, material material.Material) *Quad {
	n := u.Cross(v)
	normal := n.Normalize()

	// Box spanning both diagonals covers all four corners
	diagonal1 := core.WrapPoints(corner, corner.Add(u).Add(v))
	diagonal2 := core.WrapPoints(corner.Add(u), corner.Add(v))

	return &Quad{
		Corner:   corner,
		U:        u,
		V:        v,
		Normal:   normal,
		Material: material,
		D:        normal.Dot(corner),
		W:        n.Divide(n.LengthSquared()),
		bbox:     core.WrapBoxes(diagonal1, diagonal2).PadToMinimums(),
	}
}

// Hit tests if a ray intersects with the quad
func (q *Quad) Hit(ray core.Ray, interval core.Interval, rec *material.HitRecord) bool {
	denominator := ray.Direction.Dot(q.Normal)

	// Ray is parallel to the plane
	if math.Abs(denominator) < 1e-8 {
		return false
	}

	t := (q.D - ray.Origin.Dot(q.Normal)) / denominator
	if !interval.Surrounds(t) {
		return false
	}

	hitPoint := ray.At(t)
	planarHit := hitPoint.Subtract(q.Corner)

	// Coordinates of the hit point in the U/V basis
	alpha := q.W.Dot(planarHit.Cross(q.V))
	beta := q.W.Dot(q.U.Cross(planarHit))

	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return false
	}

	rec.T = t
	rec.Point = hitPoint
	rec.Material = q.Material
	rec.UV = core.NewVec2(alpha, beta)
	rec.SetFaceNormal(ray, q.Normal)

	return true
}

// BoundingBox returns the axis-aligned bounding box for this quad
func (q *Quad) BoundingBox() core.AABB {
	return q.bbox
}
