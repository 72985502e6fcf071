// Package merger implements spec §4.5: bridge-stitching a solid's holes
// into its outer loop so the result is a single simple polygon that
// package tri can ear-clip directly.
//
// Grounded on arl/go-detour's recast/contour.go mergeRegionHoles /
// mergeContours, which solve the same problem for heightfield regions:
// sort holes, walk candidate bridge vertices, reject any diagonal that
// crosses the outline or another hole, and splice the hole's vertex run
// into the outline array at the chosen pair of indices. Here the splice
// target is a live doubly-linked ring (spec §9's arena-of-handles design
// note) instead of a flat index array, since later holes may bridge onto
// vertices introduced by earlier ones.
package merger

import (
	"sort"

	"github.com/aurelien-rainone/assertgo"
	"github.com/arl/slicer2d/bvh"
	"github.com/arl/slicer2d/geom"
	"github.com/arl/slicer2d/internal/diag"
)

const maxFlattenNodes = 100000

type ringNode struct {
	pos        geom.Point
	prev, next int32
}

// ring is the arena-of-handles doubly-linked cycle the merger stitches
// holes into (spec §9). Indices into nodes double as node handles.
type ring struct {
	nodes []ringNode
}

func (r *ring) append(pos geom.Point) int32 {
	idx := int32(len(r.nodes))
	r.nodes = append(r.nodes, ringNode{pos: pos, prev: -1, next: -1})
	return idx
}

// buildCycle appends loop as a freshly-linked cycle and returns the index
// of its first node.
func (r *ring) buildCycle(loop []geom.Point) int32 {
	head := int32(-1)
	prev := int32(-1)
	for _, p := range loop {
		idx := r.append(p)
		if head < 0 {
			head = idx
		}
		if prev >= 0 {
			r.nodes[prev].next = idx
			r.nodes[idx].prev = prev
		}
		prev = idx
	}
	r.nodes[head].prev = prev
	r.nodes[prev].next = head
	return head
}

// Merge stitches holes into outer, producing a single simple-polygon
// vertex sequence (spec §6's "merge"). outer must be CCW and every entry
// of holes CW (spec §3). The assert.True calls below state this
// precondition; Merge itself never normalizes or repairs input that
// violates it.
func Merge(outer []geom.Point, holes [][]geom.Point, log *diag.Log) ([]geom.Point, Status) {
	assert.True(geom.SignedArea(outer) > 0, "merger.Merge: outer ring must already be CCW-normalized")
	for i, h := range holes {
		assert.True(geom.SignedArea(h) < 0, "merger.Merge: hole %d must already be CW-normalized", i)
	}

	if log == nil {
		log = &diag.Log{}
	}
	log.StartTimer("merge")
	defer log.StopTimer("merge")

	status := StatusSuccess

	r := &ring{}
	head := r.buildCycle(outer)
	if len(holes) == 0 {
		return flatten(r, head), status
	}

	wallTree := buildWallTree(outer, holes)

	type holeInfo struct {
		loop    []geom.Point
		maxXIdx int
		maxX    float32
	}
	infos := make([]holeInfo, len(holes))
	for i, h := range holes {
		best := 0
		for j := 1; j < len(h); j++ {
			if h[j][0] > h[best][0] {
				best = j
			}
		}
		infos[i] = holeInfo{loop: h, maxXIdx: best, maxX: h[best][0]}
	}
	// Spec §4.5 step 3: sort holes by maxX descending.
	sort.SliceStable(infos, func(i, j int) bool { return infos[i].maxX > infos[j].maxX })

	var placed [][2]geom.Point

	for _, hi := range infos {
		mPos := hi.loop[hi.maxXIdx]

		pIdx, ok := findBridgeTarget(r, head, mPos, wallTree, placed)
		if !ok {
			log.Warningf("merger: no visible bridge point found for hole (maxX=%v); hole skipped", hi.maxX)
			status |= StatusHoleSkipped
			continue
		}

		// Rotate the hole loop so it starts at its maxX vertex, then
		// splice it into the ring at pIdx (spec §4.5 step 6).
		rotated := append(append([]geom.Point(nil), hi.loop[hi.maxXIdx:]...), hi.loop[:hi.maxXIdx]...)
		mIdx := r.buildCycle(rotated)

		spliceHole(r, pIdx, mIdx)
		placed = append(placed, [2]geom.Point{mPos, r.nodes[pIdx].pos})
	}

	return flatten(r, head), status
}

// findBridgeTarget implements spec §4.5 step 5: among every node of the
// current outer ring with x > m.x, pick the one minimizing squared
// distance to m whose bridge segment crosses neither the wall tree nor
// any previously placed bridge.
func findBridgeTarget(r *ring, head int32, m geom.Point, wallTree *bvh.SegTree, placed [][2]geom.Point) (int32, bool) {
	best := int32(-1)
	var bestDist float32

	idx := head
	first := true
	for first || idx != head {
		first = false
		n := &r.nodes[idx]
		if n.pos[0] > m[0] {
			d := geom.Dist2DSqr(n.pos, m)
			if best < 0 || d < bestDist {
				if !obstructed(m, n.pos, wallTree, placed) {
					best = idx
					bestDist = d
				}
			}
		}
		idx = n.next
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}

func obstructed(m, p geom.Point, wallTree *bvh.SegTree, placed [][2]geom.Point) bool {
	if wallTree.Intersects(m, p) {
		return true
	}
	for _, b := range placed {
		if _, ok := geom.SegIntersect(m, p, b[0], b[1]); ok {
			return true
		}
	}
	return false
}

// spliceHole inserts the hole cycle starting at mIdx between pIdx and its
// successor, duplicating the junction vertices so the ring remains a
// single simple cycle (spec §4.5 step 6, §9's "duplicated junctions").
func spliceHole(r *ring, pIdx, mIdx int32) {
	pNext := r.nodes[pIdx].next
	mPrev := r.nodes[mIdx].prev

	mPrime := r.append(r.nodes[mIdx].pos)
	pPrime := r.append(r.nodes[pIdx].pos)

	r.nodes[pIdx].next = mIdx
	r.nodes[mIdx].prev = pIdx

	r.nodes[mPrev].next = mPrime
	r.nodes[mPrime].prev = mPrev

	r.nodes[mPrime].next = pPrime
	r.nodes[pPrime].prev = mPrime

	r.nodes[pPrime].next = pNext
	r.nodes[pNext].prev = pPrime
}

func buildWallTree(outer []geom.Point, holes [][]geom.Point) *bvh.SegTree {
	var a, b []geom.Point
	appendLoop := func(loop []geom.Point) {
		n := len(loop)
		for i := 0; i < n; i++ {
			a = append(a, loop[i])
			b = append(b, loop[(i+1)%n])
		}
	}
	appendLoop(outer)
	for _, h := range holes {
		appendLoop(h)
	}
	return bvh.BuildSegTree(a, b)
}

// flatten walks the ring from head back to head, capped at
// maxFlattenNodes to break any pathological cycle (spec §4.5).
func flatten(r *ring, head int32) []geom.Point {
	out := make([]geom.Point, 0, len(r.nodes))
	idx := head
	for i := 0; i < maxFlattenNodes; i++ {
		out = append(out, r.nodes[idx].pos)
		idx = r.nodes[idx].next
		if idx == head {
			break
		}
	}
	return out
}
