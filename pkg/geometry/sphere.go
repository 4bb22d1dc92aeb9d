package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Sphere represents a sphere shape, optionally moving linearly over the shutter interval.
// A negative radius produces a hollow sphere whose outward normal points inward.
type Sphere struct {
	Center   core.Vec3 // Center at time 0
	Motion   core.Vec3 // Displacement from time 0 to time 1
	Radius   float64
	Material material.Material
	bbox     core.AABB
}

// NewSphere creates a new stationary sphere
func NewSphere(center core.Vec3, radius float64, material material.Material) *Sphere {
	radiusVec := core.Splat(radius)
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
		bbox:     core.WrapPoints(center.Subtract(radiusVec), center.Add(radiusVec)),
	}
}

// NewMovingSphere creates a sphere that moves from center0 at time 0 to center1 at time 1
func NewMovingSphere(center0, center1 core.Vec3, radius float64, material material.Material) *Sphere {
	radiusVec := core.Splat(radius)
	box0 := core.WrapPoints(center0.Subtract(radiusVec), center0.Add(radiusVec))
	box1 := core.WrapPoints(center1.Subtract(radiusVec), center1.Add(radiusVec))
	return &Sphere{
		Center:   center0,
		Motion:   center1.Subtract(center0),
		Radius:   radius,
		Material: material,
		bbox:     core.WrapBoxes(box0, box1),
	}
}

// CenterAt returns the sphere center at the given shutter time
func (s *Sphere) CenterAt(time float64) core.Vec3 {
	return s.Center.Add(s.Motion.Multiply(time))
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, interval core.Interval, rec *material.HitRecord) bool {
	center := s.CenterAt(ray.Time)

	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(center)

	// Direction is unit length, so a = 1
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - c
	if discriminant < 0 {
		return false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := -halfB - sqrtD
	if !interval.Surrounds(root) {
		root = -halfB + sqrtD
		if !interval.Surrounds(root) {
			return false
		}
	}

	rec.T = root
	rec.Point = ray.At(root)
	rec.Material = s.Material

	outwardNormal := rec.Point.Subtract(center).Divide(s.Radius)
	rec.SetFaceNormal(ray, outwardNormal)
	rec.UV = SphereUV(outwardNormal)

	return true
}

// BoundingBox returns the axis-aligned bounding box covering the whole motion
func (s *Sphere) BoundingBox() core.AABB {
	return s.bbox
}

// SphereUV maps a point on the unit sphere to texture coordinates.
// u runs around the Y axis starting at -X, v runs from the bottom pole (0) to the top (1).
func SphereUV(p core.Vec3) core.Vec2 {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return core.NewVec2(phi/(2*math.Pi), theta/math.Pi)
}
