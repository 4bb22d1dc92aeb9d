package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Shape interface for objects that can be hit by rays.
// Hit fills rec only when it reports an intersection strictly inside interval.
type Shape interface {
	Hit(ray core.Ray, interval core.Interval, rec *material.HitRecord) bool
	BoundingBox() core.AABB
}
