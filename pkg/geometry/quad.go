package geometry

import (
	"math"

	"github.com/arkhaios/photon-raytracer/pkg/core"
	"github.com/arkhaios/photon-raytracer/pkg/material"
)

// Quad is a flat parallelogram spanned by Q + a*U + b*V for a, b in [0, 1].
type Quad struct {
	q, u, v     core.Vec3
	w           core.Vec3 // cross-product helper for plane coordinates, not a unit normal
	mat         material.Material
	boundingBox core.AABB
	normal      core.Vec3
	d           float64
}

// NewQuad builds a quad from a corner Q and two edge vectors U, V
func NewQuad(q, u, v core.Vec3, mat material.Material) *Quad {
	n := u.Cross(v)
	normal := n.Unit()
	quad := &Quad{
		q:      q,
		u:      u,
		v:      v,
		w:      n.Multiply(1.0 / n.Dot(n)),
		mat:    mat,
		normal: normal,
		d:      normal.Dot(q),
	}
	quad.setBoundingBox()
	return quad
}

func (q *Quad) setBoundingBox() {
	diag1 := core.NewAABBFromPoints(q.q, q.q.Add(q.u).Add(q.v))
	diag2 := core.NewAABBFromPoints(q.q.Add(q.u), q.q.Add(q.v))
	q.boundingBox = core.NewAABBFromBoxes(diag1, diag2)
}

// isInterior reports whether the planar hit coordinates (a, b) fall within
// the unit square, and if so records them as the hit's UV.
func isInterior(a, b float64, rec *HitRecord) bool {
	unit := core.NewInterval(0, 1)
	if !unit.Contains(a) || !unit.Contains(b) {
		return false
	}
	rec.U = a
	rec.V = b
	return true
}

func (q *Quad) Hit(ray core.Ray, rayT core.Interval, rec *HitRecord) (bool, error) {
	denom := ray.Direction.Dot(q.normal)
	if math.Abs(denom) < 1e-8 {
		return false, nil
	}

	t := (q.d - ray.Origin.Dot(q.normal)) / denom
	if !rayT.Contains(t) {
		return false, nil
	}

	intersection := ray.At(t)
	planarHitpt := intersection.Subtract(q.q)
	alpha := q.w.Dot(planarHitpt.Cross(q.v))
	beta := q.w.Dot(q.u.Cross(planarHitpt))

	if !isInterior(alpha, beta, rec) {
		return false, nil
	}

	rec.T = t
	rec.Point = intersection
	rec.Material = q.mat
	rec.SetFaceNormal(ray, q.normal)
	return true, nil
}

func (q *Quad) BoundingBox() core.AABB {
	return q.boundingBox
}

// NewBox returns the six-quad HittableList forming the box spanning opposite
// corners a and b, winding front/right/back/left/top/bottom.
func NewBox(a, b core.Vec3, mat material.Material) *HittableList {
	sides := NewHittableList()

	min := core.NewVec3(math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z))
	max := core.NewVec3(math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z))

	dx := core.NewVec3(max.X-min.X, 0, 0)
	dy := core.NewVec3(0, max.Y-min.Y, 0)
	dz := core.NewVec3(0, 0, max.Z-min.Z)

	sides.Add(NewQuad(core.NewVec3(min.X, min.Y, max.Z), dx, dy, mat))                // front
	sides.Add(NewQuad(core.NewVec3(max.X, min.Y, max.Z), dz.Negate(), dy, mat))       // right
	sides.Add(NewQuad(core.NewVec3(max.X, min.Y, min.Z), dx.Negate(), dy, mat))       // back
	sides.Add(NewQuad(core.NewVec3(min.X, min.Y, min.Z), dz, dy, mat))                // left
	sides.Add(NewQuad(core.NewVec3(min.X, max.Y, max.Z), dx, dz.Negate(), mat))       // top
	sides.Add(NewQuad(core.NewVec3(min.X, min.Y, min.Z), dx, dz, mat))                // bottom

	return sides
}
