package core

import "math"

// minAABBExtent is the thickness given to flat boxes (axis-aligned quads and triangles)
const minAABBExtent = 1e-4

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		panic("cannot bound an empty point set")
	}

	bbox := AABB{Min: points[0], Max: points[0]}
	for _, point := range points[1:] {
		bbox.Min = bbox.Min.Min(point)
		bbox.Max = bbox.Max.Max(point)
	}
	return bbox
}

// WrapPoints returns the minimal box containing both a and b
func WrapPoints(a, b Vec3) AABB {
	return AABB{Min: a.Min(b), Max: a.Max(b)}
}

// WrapBoxes returns the minimal box containing both boxes
func WrapBoxes(a, b AABB) AABB {
	return a.Union(b)
}

// WrapTriangle returns the minimal box containing the three vertices, padded so it is never flat
func WrapTriangle(v0, v1, v2 Vec3) AABB {
	return NewAABBFromPoints(v0, v1, v2).PadToMinimums()
}

// Axis returns the extent of the box along axis 0 (X), 1 (Y) or 2 (Z)
func (aabb AABB) Axis(axis int) Interval {
	return Interval{Min: aabb.Min.Axis(axis), Max: aabb.Max.Axis(axis)}
}

// Hit tests if a ray intersects with this AABB inside the parametric interval using the slab
// method. On success it returns the parametric distance where the ray enters the box.
// Zero direction components produce signed infinities which the comparisons below absorb.
func (aabb AABB) Hit(ray Ray, interval Interval) (float64, bool) {
	tMin, tMax := interval.Min, interval.Max

	for axis := 0; axis < 3; axis++ {
		invDirection := 1.0 / ray.Direction.Axis(axis)
		origin := ray.Origin.Axis(axis)

		t0 := (aabb.Min.Axis(axis) - origin) * invDirection
		t1 := (aabb.Max.Axis(axis) - origin) * invDirection
		if invDirection < 0 {
			t0, t1 = t1, t0
		}

		// NaN (0 * Inf) fails both comparisons and leaves the running interval unchanged
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}

		if tMax < tMin {
			return 0, false
		}
	}

	return tMin, true
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return AABB{Min: aabb.Min.Min(other.Min), Max: aabb.Max.Max(other.Max)}
}

// Contains reports whether the point lies inside or on the box
func (aabb AABB) Contains(point Vec3) bool {
	return point.X >= aabb.Min.X && point.X <= aabb.Max.X &&
		point.Y >= aabb.Min.Y && point.Y <= aabb.Max.Y &&
		point.Z >= aabb.Min.Z && point.Z <= aabb.Max.Z
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// SurfaceArea returns the surface area of the AABB
func (aabb AABB) SurfaceArea() float64 {
	size := aabb.Size()
	return 2.0 * (size.X*size.Y + size.Y*size.Z + size.Z*size.X)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent.
// X is chosen only when strictly longer than both others, otherwise Y when strictly longer than Z.
func (aabb AABB) LongestAxis() int {
	size := aabb.Size()
	if size.X > size.Y && size.X > size.Z {
		return 0 // X axis
	}
	if size.Y > size.Z {
		return 1 // Y axis
	}
	return 2 // Z axis
}

// IsValid returns true if this is a valid AABB (min <= max for all axes)
func (aabb AABB) IsValid() bool {
	return aabb.Min.X <= aabb.Max.X &&
		aabb.Min.Y <= aabb.Max.Y &&
		aabb.Min.Z <= aabb.Max.Z
}

// Expand returns an AABB expanded by the given amount in all directions
func (aabb AABB) Expand(amount float64) AABB {
	expansion := Splat(amount)
	return AABB{
		Min: aabb.Min.Subtract(expansion),
		Max: aabb.Max.Add(expansion),
	}
}

// PadToMinimums widens any axis thinner than minAABBExtent so planar primitives get a box with volume
func (aabb AABB) PadToMinimums() AABB {
	pad := func(lo, hi float64) (float64, float64) {
		if hi-lo >= minAABBExtent {
			return lo, hi
		}
		mid := (lo + hi) / 2
		return mid - minAABBExtent/2, mid + minAABBExtent/2
	}

	aabb.Min.X, aabb.Max.X = pad(aabb.Min.X, aabb.Max.X)
	aabb.Min.Y, aabb.Max.Y = pad(aabb.Min.Y, aabb.Max.Y)
	aabb.Min.Z, aabb.Max.Z = pad(aabb.Min.Z, aabb.Max.Z)
	return aabb
}

// EmptyAABB returns a box that contains nothing and acts as the identity for Union
func EmptyAABB() AABB {
	return AABB{Min: Splat(math.Inf(1)), Max: Splat(math.Inf(-1))}
}
