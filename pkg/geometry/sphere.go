package geometry

import (
	"math"

	"github.com/arkhaios/photon-raytracer/pkg/core"
	"github.com/arkhaios/photon-raytracer/pkg/material"
)

// Sphere is a static or linearly-moving ball
type Sphere struct {
	center      core.Vec3
	radius      float64
	mat         material.Material
	velocity    core.Vec3
	isMoving    bool
	boundingBox core.AABB
}

// NewSphere builds a stationary sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	rvec := core.NewVec3(radius, radius, radius)
	return &Sphere{
		center:      center,
		radius:      radius,
		mat:         mat,
		boundingBox: core.NewAABBFromPoints(center.Subtract(rvec), center.Add(rvec)),
	}
}

// NewMovingSphere builds a sphere whose center moves linearly from center1 at
// time 0 to center2 at time 1, with a bounding box spanning both positions.
func NewMovingSphere(center1, center2 core.Vec3, radius float64, mat material.Material) *Sphere {
	rvec := core.NewVec3(radius, radius, radius)
	box1 := core.NewAABBFromPoints(center1.Subtract(rvec), center1.Add(rvec))
	box2 := core.NewAABBFromPoints(center2.Subtract(rvec), center2.Add(rvec))
	return &Sphere{
		center:      center1,
		radius:      radius,
		mat:         mat,
		velocity:    center2.Subtract(center1),
		isMoving:    true,
		boundingBox: core.NewAABBFromBoxes(box1, box2),
	}
}

func (s *Sphere) centerAt(time float64) core.Vec3 {
	return s.center.Add(s.velocity.Multiply(time))
}

// sphereUV maps a point on the unit sphere (centered at the origin) to
// texture coordinates: u wraps around the Y axis from X=-1, v runs from
// Y=-1 to Y=+1.
func sphereUV(p core.Vec3) (u, v float64) {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi

	u = phi / (2 * math.Pi)
	v = theta / math.Pi
	return u, v
}

func (s *Sphere) Hit(ray core.Ray, rayT core.Interval, rec *HitRecord) (bool, error) {
	center := s.centerAt(ray.Time)
	oc := center.Subtract(ray.Origin)
	a := ray.Direction.LengthSquared()
	h := ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.radius*s.radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return false, nil
	}
	sqrtd := math.Sqrt(discriminant)

	root := (h - sqrtd) / a
	if !rayT.Surrounds(root) {
		root = (h + sqrtd) / a
		if !rayT.Surrounds(root) {
			return false, nil
		}
	}

	rec.T = root
	rec.Point = ray.At(rec.T)
	outwardNormal := rec.Point.Subtract(s.center).Multiply(1.0 / s.radius)
	rec.SetFaceNormal(ray, outwardNormal)
	rec.U, rec.V = sphereUV(outwardNormal)
	rec.Material = s.mat
	return true, nil
}

func (s *Sphere) BoundingBox() core.AABB {
	return s.boundingBox
}
