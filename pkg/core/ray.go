package core

// Ray represents a ray with an origin, a unit-length direction and a time in [0,1)
type Ray struct {
	Origin    Vec3
	Direction Vec3
	Time      float64
}

// NewRay creates a new ray at time 0. The direction is normalized.
func NewRay(origin, direction Vec3) Ray {
	return NewRayAtTime(origin, direction, 0)
}

// NewRayAtTime creates a new ray at the given shutter time. The direction is normalized.
func NewRayAtTime(origin, direction Vec3, time float64) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize(), Time: time}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
