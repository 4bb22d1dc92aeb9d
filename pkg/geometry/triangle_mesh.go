package geometry

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
)

// TriangleMesh represents a collection of triangles with efficient ray intersection
// It uses an internal BVH (Bounding Volume Hierarchy) for fast intersection tests
type TriangleMesh struct {
	triangles []Shape
	bvh       *BVH
}

// NewTriangleMesh builds a BVH over the given triangles
func NewTriangleMesh(triangles []Shape) *TriangleMesh {
	return &TriangleMesh{
		triangles: triangles,
		bvh:       NewBVH(triangles),
	}
}

// LoadTriangleMesh reads an OBJ file and places it with a uniform scale followed by a translation
func LoadTriangleMesh(filename string, position core.Vec3, scale float64, mat material.Material) (*TriangleMesh, error) {
	data, err := loaders.LoadOBJ(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to load mesh: %w", err)
	}
	return NewTriangleMeshFromOBJ(data, position, scale, mat), nil
}

// NewTriangleMeshFromOBJ creates one triangle per OBJ face. Vertex positions are scaled
// uniformly about the origin and then translated to position. Faces without normals
// use the geometric face normal; faces without texture coordinates get (0,0).
func NewTriangleMeshFromOBJ(data *loaders.OBJData, position core.Vec3, scale float64, mat material.Material) *TriangleMesh {
	transform := mgl64.Translate3D(position.X, position.Y, position.Z).Mul4(mgl64.Scale3D(scale, scale, scale))
	normalTransform := transform.Inv().Transpose()

	positions := make([]core.Vec3, len(data.Positions))
	for i, p := range data.Positions {
		positions[i] = fromMgl(mgl64.TransformCoordinate(toMgl(p), transform))
	}
	normals := make([]core.Vec3, len(data.Normals))
	for i, n := range data.Normals {
		normals[i] = fromMgl(mgl64.TransformNormal(toMgl(n), normalTransform)).Normalize()
	}

	triangles := make([]Shape, 0, len(data.Faces))
	for _, face := range data.Faces {
		var vertices, vertexNormals [3]core.Vec3
		var uvs [3]core.Vec2
		for k, corner := range face {
			vertices[k] = positions[corner.Position]
			if corner.UV >= 0 {
				uvs[k] = data.UVs[corner.UV]
			}
		}

		flat := faceNormal(vertices[0], vertices[1], vertices[2])
		for k, corner := range face {
			if corner.Normal >= 0 {
				vertexNormals[k] = normals[corner.Normal]
			} else {
				vertexNormals[k] = flat
			}
		}

		triangles = append(triangles, NewTriangleWithAttributes(vertices, vertexNormals, uvs, mat))
	}

	return NewTriangleMesh(triangles)
}

func toMgl(v core.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func fromMgl(v mgl64.Vec3) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

// Hit tests if a ray intersects with any triangle in the mesh
func (tm *TriangleMesh) Hit(ray core.Ray, interval core.Interval, rec *material.HitRecord) bool {
	return tm.bvh.Hit(ray, interval, rec)
}

// BoundingBox returns the axis-aligned bounding box for the entire mesh
func (tm *TriangleMesh) BoundingBox() core.AABB {
	return tm.bvh.BoundingBox()
}

// GetTriangleCount returns the number of triangles in this mesh
func (tm *TriangleMesh) GetTriangleCount() int {
	return len(tm.triangles)
}

// GetTriangles returns the individual triangles
func (tm *TriangleMesh) GetTriangles() []Shape {
	return tm.triangles
}

// Stats returns statistics about the mesh's internal BVH
func (tm *TriangleMesh) Stats() BVHStats {
	return tm.bvh.Stats()
}
