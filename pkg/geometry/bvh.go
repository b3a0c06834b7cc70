package geometry

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/arkhaios/photon-raytracer/pkg/core"
)

// BVHNode is a node of a bounding volume hierarchy, built top-down by
// recursively sorting the object span along its longest axis and splitting
// at the midpoint. This is a median split, not a cost-optimized (SAH)
// split: it trades a small amount of traversal efficiency for a
// construction step with no heuristics to tune.
type BVHNode struct {
	boundingBox core.AABB
	left, right Hittable
}

// NewBVH builds a hierarchy over every object currently in list
func NewBVH(list *HittableList) *BVHNode {
	objects := make([]Hittable, len(list.Objects))
	copy(objects, list.Objects)
	return buildBVH(objects)
}

func buildBVH(objects []Hittable) *BVHNode {
	if len(objects) == 0 {
		panic("geometry: BVH node built with zero children")
	}

	node := &BVHNode{boundingBox: core.EmptyAABB}
	for _, o := range objects {
		node.boundingBox = core.NewAABBFromBoxes(node.boundingBox, o.BoundingBox())
	}

	axis := node.boundingBox.LongestAxis()

	switch len(objects) {
	case 1:
		node.left = objects[0]
		node.right = objects[0]
	case 2:
		node.left = objects[0]
		node.right = objects[1]
	default:
		sort.Slice(objects, func(i, j int) bool {
			return objects[i].BoundingBox().AxisInterval(axis).Min < objects[j].BoundingBox().AxisInterval(axis).Min
		})
		mid := len(objects) / 2
		node.left = buildBVH(objects[:mid])
		node.right = buildBVH(objects[mid:])
	}

	return node
}

func (n *BVHNode) Hit(ray core.Ray, rayT core.Interval, rec *HitRecord) (bool, error) {
	hitBox, err := n.boundingBox.Hit(ray, rayT)
	if err != nil {
		return false, errors.Wrap(err, "geometry: bvh node")
	}
	if !hitBox {
		return false, nil
	}

	hitLeft, err := n.left.Hit(ray, rayT, rec)
	if err != nil {
		return false, err
	}
	upper := rayT.Max
	if hitLeft {
		upper = rec.T
	}
	hitRight, err := n.right.Hit(ray, core.NewInterval(rayT.Min, upper), rec)
	if err != nil {
		return false, err
	}

	return hitLeft || hitRight, nil
}

func (n *BVHNode) BoundingBox() core.AABB {
	return n.boundingBox
}
