// Package geometry implements the scene graph of intersectable primitives:
// spheres, quads, boxes, the BVH that accelerates traversal over them, and
// the Translate/RotateY/ConstantMedium wrappers that transform or perturb
// an underlying Hittable.
package geometry

import (
	"github.com/arkhaios/photon-raytracer/pkg/core"
	"github.com/arkhaios/photon-raytracer/pkg/material"
)

// HitRecord describes a single ray-primitive intersection
type HitRecord struct {
	Point     core.Vec3
	Normal    core.Vec3
	T         float64
	U, V      float64
	FrontFace bool
	Material  material.Material
}

// SetFaceNormal orients Normal against the ray so it always points against
// the incident direction, recording which side was actually hit.
// outwardNormal must already be a unit vector.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Hittable is anything a ray can intersect
type Hittable interface {
	// Hit reports whether the ray hits the surface within rayT, filling rec
	// with the closest such intersection. An error indicates a traversal
	// failure (a degenerate bounding box encountered along the way), not an
	// ordinary miss.
	Hit(ray core.Ray, rayT core.Interval, rec *HitRecord) (bool, error)

	// BoundingBox returns the primitive's world-space bounding box
	BoundingBox() core.AABB
}

// HittableList is an unordered collection of Hittables, hit by linear scan.
// Its bounding box is the running union of every member added so far.
type HittableList struct {
	Objects     []Hittable
	boundingBox core.AABB
}

// NewHittableList creates an empty list
func NewHittableList() *HittableList {
	return &HittableList{boundingBox: core.EmptyAABB}
}

// NewHittableListOf creates a list seeded with the given objects
func NewHittableListOf(objects ...Hittable) *HittableList {
	list := NewHittableList()
	for _, o := range objects {
		list.Add(o)
	}
	return list
}

// Add appends an object and folds its bounding box into the running union
func (l *HittableList) Add(object Hittable) {
	l.Objects = append(l.Objects, object)
	l.boundingBox = core.NewAABBFromBoxes(l.boundingBox, object.BoundingBox())
}

// Clear empties the list
func (l *HittableList) Clear() {
	l.Objects = nil
	l.boundingBox = core.EmptyAABB
}

// Hit scans every object, keeping the closest intersection found so far by
// narrowing the upper bound of the search interval as hits are recorded.
func (l *HittableList) Hit(ray core.Ray, rayT core.Interval, rec *HitRecord) (bool, error) {
	var temp HitRecord
	hitAnything := false
	closestSoFar := rayT.Max

	for _, object := range l.Objects {
		hit, err := object.Hit(ray, core.NewInterval(rayT.Min, closestSoFar), &temp)
		if err != nil {
			return false, err
		}
		if hit {
			hitAnything = true
			closestSoFar = temp.T
			*rec = temp
		}
	}
	return hitAnything, nil
}

// BoundingBox returns the union of every member's bounding box
func (l *HittableList) BoundingBox() core.AABB {
	return l.boundingBox
}
