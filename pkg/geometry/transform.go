package geometry

import (
	"math"

	"github.com/arkhaios/photon-raytracer/pkg/core"
)

// Translate shifts an underlying Hittable by a constant offset, by moving
// the ray into the object's local space rather than moving the object.
type Translate struct {
	object      Hittable
	offset      core.Vec3
	boundingBox core.AABB
}

// NewTranslate wraps object, displacing it by offset
func NewTranslate(object Hittable, offset core.Vec3) *Translate {
	return &Translate{
		object:      object,
		offset:      offset,
		boundingBox: object.BoundingBox().Add(offset),
	}
}

func (t *Translate) Hit(ray core.Ray, rayT core.Interval, rec *HitRecord) (bool, error) {
	offsetRay := core.NewRayAtTime(ray.Origin.Subtract(t.offset), ray.Direction, ray.Time)

	hit, err := t.object.Hit(offsetRay, rayT, rec)
	if err != nil || !hit {
		return false, err
	}

	rec.Point = rec.Point.Add(t.offset)
	return true, nil
}

func (t *Translate) BoundingBox() core.AABB {
	return t.boundingBox
}

// RotateY rotates an underlying Hittable about the Y axis by a fixed angle,
// by rotating the ray into object space on the way in and rotating the hit
// point and normal back into world space on the way out.
type RotateY struct {
	object              Hittable
	sinTheta, cosTheta  float64
	boundingBox         core.AABB
}

// NewRotateY wraps object, rotating it angleDegrees about the Y axis
func NewRotateY(object Hittable, angleDegrees float64) *RotateY {
	radians := angleDegrees * math.Pi / 180.0
	sinTheta := math.Sin(radians)
	cosTheta := math.Cos(radians)

	box := object.BoundingBox()
	min := core.NewVec3(math.Inf(1), math.Inf(1), math.Inf(1))
	max := core.NewVec3(math.Inf(-1), math.Inf(-1), math.Inf(-1))

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				x := box.X.Min
				if i == 1 {
					x = box.X.Max
				}
				y := box.Y.Min
				if j == 1 {
					y = box.Y.Max
				}
				z := box.Z.Min
				if k == 1 {
					z = box.Z.Max
				}

				newX := cosTheta*x + sinTheta*z
				newZ := -sinTheta*x + cosTheta*z
				tester := core.NewVec3(newX, y, newZ)

				for axis := 0; axis < 3; axis++ {
					min = min.SetAt(axis, math.Min(min.At(axis), tester.At(axis)))
					max = max.SetAt(axis, math.Max(max.At(axis), tester.At(axis)))
				}
			}
		}
	}

	return &RotateY{
		object:      object,
		sinTheta:    sinTheta,
		cosTheta:    cosTheta,
		boundingBox: core.NewAABBFromPoints(min, max),
	}
}

func (r *RotateY) Hit(ray core.Ray, rayT core.Interval, rec *HitRecord) (bool, error) {
	origin := core.NewVec3(
		r.cosTheta*ray.Origin.X-r.sinTheta*ray.Origin.Z,
		ray.Origin.Y,
		r.sinTheta*ray.Origin.X+r.cosTheta*ray.Origin.Z,
	)
	direction := core.NewVec3(
		r.cosTheta*ray.Direction.X-r.sinTheta*ray.Direction.Z,
		ray.Direction.Y,
		r.sinTheta*ray.Direction.X+r.cosTheta*ray.Direction.Z,
	)
	rotatedRay := core.NewRayAtTime(origin, direction, ray.Time)

	hit, err := r.object.Hit(rotatedRay, rayT, rec)
	if err != nil || !hit {
		return false, err
	}

	rec.Point = core.NewVec3(
		r.cosTheta*rec.Point.X+r.sinTheta*rec.Point.Z,
		rec.Point.Y,
		-r.sinTheta*rec.Point.X+r.cosTheta*rec.Point.Z,
	)
	rec.Normal = core.NewVec3(
		r.cosTheta*rec.Normal.X+r.sinTheta*rec.Normal.Z,
		rec.Normal.Y,
		-r.sinTheta*rec.Normal.X+r.cosTheta*rec.Normal.Z,
	)
	return true, nil
}

func (r *RotateY) BoundingBox() core.AABB {
	return r.boundingBox
}
