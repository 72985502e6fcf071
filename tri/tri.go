// Package tri implements spec §4.6: grid-accelerated ear-clipping
// triangulation of a simple polygon (normally merger's output, but any
// simple polygon is accepted).
//
// Grounded on arl/go-detour's recast.triangulate (recast/polymesh.go), which
// runs the same "classify reflex vertices, maintain a list of ear
// candidates, clip one ear per step, re-check the two neighbors"
// algorithm over a flat index array with an O(N) reflex scan per ear;
// here the reflex scan is accelerated by a grid.Grid the way
// crowd.ProximityGrid accelerates neighbor queries elsewhere in the
// teacher codebase, per spec §4.6's explicit grid-acceleration design.
package tri

import (
	"github.com/arl/slicer2d/geom"
	"github.com/arl/slicer2d/grid"
	"github.com/arl/slicer2d/internal/diag"
)

// triEps2 is the coincidence tolerance used by the ear test to treat a
// reflex vertex at a duplicated bridge junction as non-blocking (spec
// §4.6 step 4), distinct from geom.EPSCoincide2 used elsewhere.
const triEps2 = 1e-6

type vnode struct {
	pos        geom.Point
	orig       int32
	prev, next int32
	reflex     bool
	candidate  bool
	gridHandle int32 // -1 when not indexed in the grid
}

type triangulator struct {
	nodes      []vnode
	grid       *grid.Grid
	handleToI  map[int32]int32 // grid handle -> ring node index
	candidates []int32         // LIFO stack of ring node indices
	pointCount int
}

// Triangulate ear-clips points (any winding; normalized to CCW
// internally) and returns a flat triangle index list into points (spec
// §6's "triangulate"). The list has length 3*(N-2) on success; it may be
// shorter if the watchdog fires on degenerate input.
func Triangulate(points []geom.Point, log *diag.Log) ([]uint32, Status) {
	if log == nil {
		log = &diag.Log{}
	}
	log.StartTimer("triangulate")
	defer log.StopTimer("triangulate")

	n := len(points)
	if n < 3 {
		return nil, StatusSuccess
	}

	t := &triangulator{
		nodes:     make([]vnode, n),
		handleToI: make(map[int32]int32),
	}
	for i, p := range points {
		t.nodes[i] = vnode{
			pos:        p,
			orig:       int32(i),
			prev:       int32((i - 1 + n) % n),
			next:       int32((i + 1) % n),
			gridHandle: -1,
		}
	}
	t.pointCount = n

	// Spec §4.6: enforce CCW winding; reverse prev/next links in place if
	// the ring isn't already CCW (geom.SignedArea > 0 is CCW throughout
	// this module, per §3's winding convention).
	if geom.SignedArea(points) <= 0 {
		for i := range t.nodes {
			t.nodes[i].prev, t.nodes[i].next = t.nodes[i].next, t.nodes[i].prev
		}
	}

	t.classify()

	bounds := geom.LoopAABB(points)
	reflexCount := 0
	for _, nd := range t.nodes {
		if nd.reflex {
			reflexCount++
		}
	}
	t.grid = grid.New(bounds, reflexCount)
	for i := range t.nodes {
		if t.nodes[i].reflex {
			h := t.grid.Insert(t.nodes[i].pos)
			t.nodes[i].gridHandle = h
			t.handleToI[h] = int32(i)
		}
	}

	var indices []uint32
	status := StatusSuccess
	watchdog := 2 * n
	iter := 0

	for t.pointCount > 3 && len(t.candidates) > 0 {
		if iter >= watchdog {
			log.Warningf("triangulate: watchdog exhausted with %d points remaining", t.pointCount)
			status |= StatusPartial
			break
		}
		iter++

		vi := t.candidates[len(t.candidates)-1]
		t.candidates = t.candidates[:len(t.candidates)-1]
		v := &t.nodes[vi]
		if !v.candidate {
			continue
		}
		v.candidate = false
		if v.reflex {
			continue
		}

		prevI, nextI := v.prev, v.next
		if t.isEar(prevI, vi, nextI) {
			indices = append(indices,
				uint32(t.nodes[prevI].orig),
				uint32(t.nodes[vi].orig),
				uint32(t.nodes[nextI].orig),
			)
			t.unlink(prevI, vi, nextI)
			t.pointCount--

			t.reevaluate(prevI)
			t.reevaluate(nextI)
		}
	}

	if t.pointCount == 3 {
		// Emit the surviving triangle: any remaining node and its two
		// neighbors name every remaining vertex exactly once.
		start := t.anyLiveNode()
		if start >= 0 {
			a := start
			b := t.nodes[a].next
			c := t.nodes[b].next
			indices = append(indices,
				uint32(t.nodes[a].orig),
				uint32(t.nodes[b].orig),
				uint32(t.nodes[c].orig),
			)
		}
	} else if t.pointCount > 3 {
		log.Warningf("triangulate: candidate list exhausted with %d points remaining", t.pointCount)
		status |= StatusPartial
	}

	return indices, status
}

// anyLiveNode returns the ring index of any node still linked into the
// (now 3-node) ring, identified as the first node whose next points
// somewhere other than itself (i.e. hasn't been unlinked to a
// self-loop). Unlinked nodes are never touched again, so scanning from
// index 0 always finds a live one cheaply in practice.
func (t *triangulator) anyLiveNode() int32 {
	for i := range t.nodes {
		if t.nodes[i].next != int32(i) {
			return int32(i)
		}
	}
	return -1
}

func (t *triangulator) classify() {
	for i := range t.nodes {
		n := &t.nodes[i]
		p := t.nodes[n.prev].pos
		nx := t.nodes[n.next].pos
		n.reflex = geom.Orient(p, n.pos, nx) <= 0
		if !n.reflex {
			n.candidate = true
			t.candidates = append(t.candidates, int32(i))
		}
	}
}

// isEar runs spec §4.6 steps 3-4: grid-enumerate reflex vertices near the
// candidate triangle and disqualify v if any strictly-interior one is
// found (other than a coincidence with the triangle's own vertices).
func (t *triangulator) isEar(prevI, vi, nextI int32) bool {
	a, b, c := t.nodes[prevI].pos, t.nodes[vi].pos, t.nodes[nextI].pos
	box := geom.LoopAABB([]geom.Point{a, b, c})

	var handles []int32
	handles = t.grid.EnumerateWindow(box, handles)

	for _, h := range handles {
		ri, ok := t.handleToI[h]
		if !ok {
			continue
		}
		if ri == prevI || ri == nextI || ri == vi {
			continue
		}
		rp := t.grid.Pos(h)
		if geom.Dist2DSqr(rp, a) < triEps2 || geom.Dist2DSqr(rp, b) < triEps2 || geom.Dist2DSqr(rp, c) < triEps2 {
			continue
		}
		if insideTriangle(a, b, c, rp) {
			return false
		}
	}
	return true
}

// insideTriangle reports whether p lies strictly inside the CCW triangle
// (a, b, c).
func insideTriangle(a, b, c, p geom.Point) bool {
	return geom.Orient(a, b, p) > 0 &&
		geom.Orient(b, c, p) > 0 &&
		geom.Orient(c, a, p) > 0
}

// unlink splices clipped ear vi out of the ring. vi is always convex, so
// it is not in the grid (reevaluate already removed it if it was once
// reflex) and there's nothing to remove there; its links are set to
// itself so anyLiveNode can recognize it as unlinked.
func (t *triangulator) unlink(prevI, vi, nextI int32) {
	t.nodes[prevI].next = nextI
	t.nodes[nextI].prev = prevI
	t.nodes[vi].next = vi
	t.nodes[vi].prev = vi
}

// reevaluate re-classifies node i after a neighboring ear was clipped
// (spec §4.6 step 6), moving it between the grid and the candidate list
// as its reflex/convex status changes.
func (t *triangulator) reevaluate(i int32) {
	n := &t.nodes[i]
	wasReflex := n.reflex
	p := t.nodes[n.prev].pos
	nx := t.nodes[n.next].pos
	n.reflex = geom.Orient(p, n.pos, nx) <= 0

	switch {
	case wasReflex && !n.reflex:
		if n.gridHandle >= 0 {
			t.grid.Remove(n.gridHandle)
			delete(t.handleToI, n.gridHandle)
			n.gridHandle = -1
		}
		if !n.candidate {
			n.candidate = true
			t.candidates = append(t.candidates, i)
		}
	case !wasReflex && n.reflex:
		h := t.grid.Insert(n.pos)
		n.gridHandle = h
		t.handleToI[h] = i
		n.candidate = false
	case !wasReflex && !n.reflex:
		if !n.candidate {
			n.candidate = true
			t.candidates = append(t.candidates, i)
		}
	}
}
