package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// HittableList is a flat collection of shapes tested one after another
type HittableList struct {
	Shapes []Shape
	bbox   core.AABB
}

// NewHittableList creates a list over shapes. The list may be empty.
func NewHittableList(shapes ...Shape) *HittableList {
	list := &HittableList{bbox: core.EmptyAABB()}
	for _, shape := range shapes {
		list.Add(shape)
	}
	return list
}

// Add appends a shape and grows the list's bounding box
func (l *HittableList) Add(shape Shape) {
	l.Shapes = append(l.Shapes, shape)
	l.bbox = l.bbox.Union(shape.BoundingBox())
}

// Hit finds the closest intersection among all shapes
func (l *HittableList) Hit(ray core.Ray, interval core.Interval, rec *material.HitRecord) bool {
	hitAnything := false
	closestSoFar := interval.Max

	for _, shape := range l.Shapes {
		if shape.Hit(ray, core.NewInterval(interval.Min, closestSoFar), rec) {
			hitAnything = true
			closestSoFar = rec.T
		}
	}

	return hitAnything
}

// BoundingBox returns the union of all shape boxes (empty for an empty list)
func (l *HittableList) BoundingBox() core.AABB {
	return l.bbox
}

// WrapShapes returns the minimal box containing every shape's box.
// An empty slice is a construction bug and panics.
func WrapShapes(shapes []Shape) core.AABB {
	if len(shapes) == 0 {
		panic("cannot bound an empty shape list")
	}

	bbox := shapes[0].BoundingBox()
	for _, shape := range shapes[1:] {
		bbox = core.WrapBoxes(bbox, shape.BoundingBox())
	}
	return bbox
}
