package bvh

import "github.com/arl/slicer2d/geom"

// Intersects reports whether segment (p, q) strictly intersects any
// segment stored in the tree (spec §4.2). It descends the tree, culling
// subtrees whose AABB is disjoint from the query's, and at each leaf
// skips segments that share an endpoint with the query before testing
// strict-interior intersection. Returns on the first hit.
func (t *SegTree) Intersects(p, q geom.Point) bool {
	if t.Empty() {
		return false
	}
	queryBox := geom.SegmentAABB(p, q)
	return t.intersects(t.root, p, q, queryBox)
}

func (t *SegTree) intersects(nodeIdx int32, p, q geom.Point, queryBox geom.AABB) bool {
	n := &t.nodes[nodeIdx]
	if !n.box.Overlaps(queryBox) {
		return false
	}
	if n.left < 0 {
		for i := n.segStart; i < n.segStart+n.segCount; i++ {
			a, b := t.segA[i], t.segB[i]
			if sharesEndpoint(p, q, a, b) {
				continue
			}
			if _, ok := geom.SegIntersect(p, q, a, b); ok {
				return true
			}
		}
		return false
	}
	return t.intersects(n.left, p, q, queryBox) || t.intersects(n.right, p, q, queryBox)
}

func sharesEndpoint(p, q, a, b geom.Point) bool {
	return p.DistSqr(a) < geom.SegEndpointEps2 ||
		p.DistSqr(b) < geom.SegEndpointEps2 ||
		q.DistSqr(a) < geom.SegEndpointEps2 ||
		q.DistSqr(b) < geom.SegEndpointEps2
}
