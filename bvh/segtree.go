// Package bvh implements the flat, in-place-partitioned static AABB trees
// of spec §4.2: SegTree over a set of segments (segment obstruction
// queries) and SolidTree over a set of solid bounds (containment search
// for hole-to-solid hierarchy assignment, spec §4.4). Both trees are built
// once and queried many times within a single slice invocation; neither
// mutates after Build returns.
package bvh

import (
	"github.com/aurelien-rainone/assertgo"
	"github.com/arl/slicer2d/geom"
)

// MaxLeaf is the maximum number of segments stored in a SegTree leaf node
// before the builder stops subdividing. SolidTree does not use it: its
// leaves hold exactly one solid each.
const MaxLeaf = 4

type segNode struct {
	box                geom.AABB
	left, right        int32 // child node indices, -1 for a leaf
	segStart, segCount int32 // leaf's contiguous range into segA/segB
}

// SegTree is a flat, static AABB tree over a set of segments, used as the
// merger's "wall" tree (spec §4.5) and anywhere else a polygon boundary
// needs obstruction queries.
type SegTree struct {
	nodes []segNode
	segA  []geom.Point // reordered endpoints, parallel arrays
	segB  []geom.Point
	root  int32
}

// BuildSegTree builds a SegTree over the given segments. The segment
// slices are copied internally (and the copies reordered in place during
// the build); the caller's slices are untouched.
func BuildSegTree(a, b []geom.Point) *SegTree {
	assert.True(len(a) == len(b), "BuildSegTree: mismatched endpoint slices")

	t := &SegTree{
		segA: append([]geom.Point(nil), a...),
		segB: append([]geom.Point(nil), b...),
		root: -1,
	}
	if len(a) == 0 {
		return t
	}
	t.nodes = make([]segNode, 0, 2*len(a)/MaxLeaf+2)
	t.root = t.build(0, int32(len(a)))
	return t
}

// Empty reports whether the tree holds no segments.
func (t *SegTree) Empty() bool { return t.root < 0 }

// build partitions segA/segB[lo:hi] in place by median axis (Hoare-style,
// falling back to a half-count split if the partition degenerates to one
// side) and returns the index of the node it creates.
func (t *SegTree) build(lo, hi int32) int32 {
	box := geom.NewAABB()
	for i := lo; i < hi; i++ {
		segBox := geom.SegmentAABB(t.segA[i], t.segB[i])
		geom.Extend(&box, segBox.Min)
		geom.Extend(&box, segBox.Max)
	}

	nodeIdx := int32(len(t.nodes))
	t.nodes = append(t.nodes, segNode{box: box, left: -1, right: -1})

	if hi-lo <= MaxLeaf {
		t.nodes[nodeIdx].segStart = lo
		t.nodes[nodeIdx].segCount = hi - lo
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

// partition performs a Hoare-style in-place partition of segA/segB[lo:hi]
// around the center coordinate (on axis) of the segment at the middle
// index of the range, which is not necessarily the median, swapping (a,b)
// pairs together so segA/segB stay aligned, and returns the split point.
func (t *SegTree) partition(lo, hi int32, axis int) int32 {
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
			t.swap(i, j)
			i++
			j--
		}
	}
	return i
}

func (t *SegTree) center(i int32, axis int) float32 {
	return (t.segA[i][axis] + t.segB[i][axis]) * 0.5
}

func (t *SegTree) swap(i, j int32) {
	t.segA[i], t.segA[j] = t.segA[j], t.segA[i]
	t.segB[i], t.segB[j] = t.segB[j], t.segB[i]
}
