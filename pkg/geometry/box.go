package geometry

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Box represents a rectangular box made up of 6 quads with optional rotation
type Box struct {
	Center   core.Vec3         // Center point of the box
	Size     core.Vec3         // Half-extents along each local axis
	Rotation core.Vec3         // Rotation angles in radians (X, Y, Z)
	Material material.Material // Material for all faces
	faces    [6]*Quad          // The 6 quad faces
	bbox     core.AABB         // Cached bounding box
}

// NewBox creates a new box with the given center, size, rotation, and material
// Size represents half-extents (so a size of (1,1,1) creates a 2x2x2 box)
// Rotation is in radians around X, Y, Z axes (applied in that order)
func NewBox(center, size, rotation core.Vec3, material material.Material) *Box {
	box := &Box{
		Center:   center,
		Size:     size,
		Rotation: rotation,
		Material: material,
	}

	box.generateFaces()

	return box
}

// NewAxisAlignedBox creates a new axis-aligned box (no rotation)
func NewAxisAlignedBox(center, size core.Vec3, material material.Material) *Box {
	return NewBox(center, size, core.Vec3{}, material)
}

// generateFaces creates the 6 outward-facing quad faces of the box
func (b *Box) generateFaces() {
	// The 8 corners of a unit box centered at origin
	corners := [8]core.Vec3{
		core.NewVec3(-1, -1, -1), // 0: left-bottom-back
		core.NewVec3(1, -1, -1),  // 1: right-bottom-back
		core.NewVec3(1, 1, -1),   // 2: right-top-back
		core.NewVec3(-1, 1, -1),  // 3: left-top-back
		core.NewVec3(-1, -1, 1),  // 4: left-bottom-front
		core.NewVec3(1, -1, 1),   // 5: right-bottom-front
		core.NewVec3(1, 1, 1),    // 6: right-top-front
		core.NewVec3(-1, 1, 1),   // 7: left-top-front
	}

	rotation := mgl64.AnglesToQuat(b.Rotation.X, b.Rotation.Y, b.Rotation.Z, mgl64.XYZ)
	for i := range corners {
		scaled := corners[i].MultiplyVec(b.Size)
		rotated := rotation.Rotate(mgl64.Vec3{scaled.X, scaled.Y, scaled.Z})
		corners[i] = core.NewVec3(rotated[0], rotated[1], rotated[2]).Add(b.Center)
	}

	// Each face is a corner and two edges ordered so U × V points outward
	faces := [6][3]int{
		{4, 5, 7}, // Front (Z+)
		{1, 0, 2}, // Back (Z-)
		{5, 1, 6}, // Right (X+)
		{0, 4, 3}, // Left (X-)
		{3, 7, 2}, // Top (Y+)
		{4, 0, 5}, // Bottom (Y-)
	}
	for i, face := range faces {
		origin := corners[face[0]]
		b.faces[i] = NewQuad(origin, corners[face[1]].Subtract(origin), corners[face[2]].Subtract(origin), b.Material)
	}

	b.bbox = core.NewAABBFromPoints(corners[:]...)
}

// Hit tests if a ray intersects with any face of the box
func (b *Box) Hit(ray core.Ray, interval core.Interval, rec *material.HitRecord) bool {
	hitAnything := false
	closestSoFar := interval.Max

	for _, face := range b.faces {
		if face.Hit(ray, core.NewInterval(interval.Min, closestSoFar), rec) {
			hitAnything = true
			closestSoFar = rec.T
		}
	}

	return hitAnything
}

// BoundingBox returns the axis-aligned bounding box for this box
func (b *Box) BoundingBox() core.AABB {
	return b.bbox
}
