package bvh

import "github.com/arl/slicer2d/geom"

type solidNode struct {
	box         geom.AABB
	left, right int32 // -1 for a leaf
	solid       int32 // leaf payload: index into the caller's solid list
}

// SolidTree is a flat, static AABB tree keyed by solid bounds (spec §4.4's
// hierarchy-assignment tree): each node stores a solid index instead of a
// range of segments. It shares SegTree's median-axis in-place partition
// scheme but its leaves hold exactly one solid apiece, since solids (unlike
// segments) are the unit of payload rather than a further-subdividable
// collection.
type SolidTree struct {
	nodes []solidNode
	boxes []geom.AABB // reordered in lockstep with the solid index list
	order []int32     // order[i] is the original solid index now at position i
	root  int32
}

// BuildSolidTree builds a SolidTree over the bounds of each solid, indexed
// 0..len(bounds)-1 in the caller's own numbering.
func BuildSolidTree(bounds []geom.AABB) *SolidTree {
	t := &SolidTree{
		boxes: append([]geom.AABB(nil), bounds...),
		order: make([]int32, len(bounds)),
		root:  -1,
	}
	for i := range t.order {
		t.order[i] = int32(i)
	}
	if len(bounds) == 0 {
		return t
	}
	t.nodes = make([]solidNode, 0, 2*len(bounds))
	t.root = t.build(0, int32(len(bounds)))
	return t
}

func (t *SolidTree) Empty() bool { return t.root < 0 }

func (t *SolidTree) build(lo, hi int32) int32 {
	box := geom.NewAABB()
	for i := lo; i < hi; i++ {
		geom.Extend(&box, t.boxes[i].Min)
		geom.Extend(&box, t.boxes[i].Max)
	}

	nodeIdx := int32(len(t.nodes))
	t.nodes = append(t.nodes, solidNode{box: box, left: -1, right: -1})

	if hi-lo <= 1 {
		if hi > lo {
			t.nodes[nodeIdx].solid = t.order[lo]
		}
		return nodeIdx
	}

	axis := 0
	if box.Dy() > box.Dx() {
		axis = 1
	}
	mid := t.partition(lo, hi, axis)
	if mid == lo || mid == hi {
		mid = lo + (hi-lo)/2
	}

	left := t.build(lo, mid)
	right := t.build(mid, hi)
	t.nodes[nodeIdx].left = left
	t.nodes[nodeIdx].right = right
	return nodeIdx
}

func (t *SolidTree) partition(lo, hi int32, axis int) int32 {
	pivot := t.center(lo+(hi-lo)/2, axis)
	i, j := lo, hi-1
	for i <= j {
		for i <= j && t.center(i, axis) < pivot {
			i++
		}
		for i <= j && t.center(j, axis) > pivot {
			j--
		}
		if i <= j {
			t.boxes[i], t.boxes[j] = t.boxes[j], t.boxes[i]
			t.order[i], t.order[j] = t.order[j], t.order[i]
			i++
			j--
		}
	}
	return i
}

func (t *SolidTree) center(i int32, axis int) float32 {
	return (t.boxes[i].Min[axis] + t.boxes[i].Max[axis]) * 0.5
}

// Candidate is one AABB-containing leaf found during a containment query.
type Candidate struct {
	Solid int32
	Box   geom.AABB
}

// QueryContaining appends to out every solid whose AABB contains pt.
func (t *SolidTree) QueryContaining(pt geom.Point, out []Candidate) []Candidate {
	if t.Empty() {
		return out
	}
	return t.queryContaining(t.root, pt, out)
}

func (t *SolidTree) queryContaining(nodeIdx int32, pt geom.Point, out []Candidate) []Candidate {
	n := &t.nodes[nodeIdx]
	if !n.box.Contains(pt) {
		return out
	}
	if n.left < 0 {
		return append(out, Candidate{Solid: n.solid, Box: n.box})
	}
	out = t.queryContaining(n.left, pt, out)
	out = t.queryContaining(n.right, pt, out)
	return out
}
