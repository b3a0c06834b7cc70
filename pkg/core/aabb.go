package core

import "github.com/pkg/errors"

// aabbMinSide is the minimum side length enforced by AABB construction, so
// that flat primitives (e.g. an axis-aligned quad) still slab-test cleanly.
const aabbMinSide = 1e-4

// AABB is an axis-aligned bounding box, stored as one Interval per axis.
type AABB struct {
	X, Y, Z Interval
}

// NewAABB builds an AABB from three axis intervals, padding any side
// narrower than aabbMinSide.
func NewAABB(x, y, z Interval) AABB {
	box := AABB{X: x, Y: y, Z: z}
	box.padToMinimums()
	return box
}

// NewAABBFromPoints builds the AABB spanning two opposite corners.
func NewAABBFromPoints(a, b Vec3) AABB {
	box := AABB{
		X: NewIntervalOrderless(a.X, b.X),
		Y: NewIntervalOrderless(a.Y, b.Y),
		Z: NewIntervalOrderless(a.Z, b.Z),
	}
	box.padToMinimums()
	return box
}

// NewAABBFromBoxes builds the AABB that unions two existing boxes.
func NewAABBFromBoxes(a, b AABB) AABB {
	box := AABB{X: a.X.Union(b.X), Y: a.Y.Union(b.Y), Z: a.Z.Union(b.Z)}
	box.padToMinimums()
	return box
}

// EmptyAABB is the identity element for Union
var EmptyAABB = AABB{X: EmptyInterval, Y: EmptyInterval, Z: EmptyInterval}

// UniverseAABB contains every point
var UniverseAABB = AABB{X: UniverseInterval, Y: UniverseInterval, Z: UniverseInterval}

func (box *AABB) padToMinimums() {
	if box.X.Size() < aabbMinSide {
		box.X = box.X.Expand(aabbMinSide)
	}
	if box.Y.Size() < aabbMinSide {
		box.Y = box.Y.Expand(aabbMinSide)
	}
	if box.Z.Size() < aabbMinSide {
		box.Z = box.Z.Expand(aabbMinSide)
	}
}

// AxisInterval returns the interval along the given axis (0=X, 1=Y, 2=Z)
func (box AABB) AxisInterval(axis int) Interval {
	switch axis {
	case 0:
		return box.X
	case 1:
		return box.Y
	default:
		return box.Z
	}
}

// LongestAxis returns the axis (0/1/2) with the largest extent
func (box AABB) LongestAxis() int {
	xSize, ySize, zSize := box.X.Size(), box.Y.Size(), box.Z.Size()
	if xSize > ySize {
		if xSize > zSize {
			return 0
		}
		return 2
	}
	if ySize > zSize {
		return 1
	}
	return 2
}

// Union returns the AABB bounding both this box and other
func (box AABB) Union(other AABB) AABB {
	return NewAABBFromBoxes(box, other)
}

// Add returns the box translated by offset
func (box AABB) Add(offset Vec3) AABB {
	return AABB{X: box.X.Add(offset.X), Y: box.Y.Add(offset.Y), Z: box.Z.Add(offset.Z)}
}

// Hit runs the slab method: intersects rayT with the per-axis slab
// intervals, narrowing left to right. Returns false as soon as the
// candidate interval collapses (Max <= Min). A box with a non-positive
// size on any axis (EmptyAABB, or one reached before its first Union) is
// degenerate and can't be slab-tested; Hit reports that as an error rather
// than silently treating it as a miss.
func (box AABB) Hit(ray Ray, rayT Interval) (bool, error) {
	if box.X.Size() <= 0 || box.Y.Size() <= 0 || box.Z.Size() <= 0 {
		return false, errors.Errorf("core: degenerate AABB at traversal: x=%v y=%v z=%v", box.X, box.Y, box.Z)
	}

	for axis := 0; axis < 3; axis++ {
		axisInterval := box.AxisInterval(axis)
		invDir := 1.0 / ray.Direction.At(axis)

		t0 := (axisInterval.Min - ray.Origin.At(axis)) * invDir
		t1 := (axisInterval.Max - ray.Origin.At(axis)) * invDir

		rayT = rayT.Intersect(NewIntervalOrderless(t0, t1))
		if rayT.Max <= rayT.Min {
			return false, nil
		}
	}
	return true, nil
}
