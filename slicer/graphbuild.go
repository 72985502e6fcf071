package slicer

import (
	"sort"

	"github.com/arl/slicer2d/geom"
	"github.com/arl/slicer2d/graph"
	"github.com/arl/slicer2d/internal/diag"
)

// hit is one tolerant intersection of a path edge with the (extended) cut
// line, recorded with enough bookkeeping to sort it per spec §4.4 steps
// 1-2 and to feed the odd-even seam pairing.
type hit struct {
	point   geom.Point
	edgeIdx int
	distSqr float32 // squared distance from the edge's start vertex
}

// buildGraph realizes spec §4.4's graph construction for every input path
// (the outer loop, then each hole), followed by cut-seam injection. It
// returns the populated graph and the number of distinct (coincidence-
// deduplicated) boundary intersection points found, which the caller uses
// for the <2 no-op check.
func buildGraph(polygon geom.PolygonWithHoles, cutStart, cutEnd geom.Point, log *diag.Log) (*graph.Graph, int) {
	g := graph.New()

	var allHits []geom.Point

	addPath := func(path []geom.Point) {
		hits := pathHits(path, cutStart, cutEnd)
		spliced := splicePath(path, hits)
		for i := 0; i < len(spliced); i++ {
			a := spliced[i]
			b := spliced[(i+1)%len(spliced)]
			g.AddEdge(a, b)
		}
		for _, h := range hits {
			allHits = append(allHits, h.point)
		}
	}

	addPath(polygon.Outer)
	for _, h := range polygon.Holes {
		addPath(h)
	}

	seamPairs := injectSeam(allHits, cutStart, cutEnd)
	for _, pr := range seamPairs {
		g.AddEdge(pr[0], pr[1])
		g.AddEdge(pr[1], pr[0])
	}

	return g, len(dedupePoints(allHits))
}

// pathHits computes every tolerant intersection of path's edges with the
// cut line (spec §4.4 step 1), recording the edge index and squared
// distance from the edge's start vertex needed for the step-2 sort.
func pathHits(path []geom.Point, cutStart, cutEnd geom.Point) []hit {
	var hits []hit
	n := len(path)
	for i := 0; i < n; i++ {
		a := path[i]
		b := path[(i+1)%n]
		pt, _, ok := geom.LineHitsSegment(cutStart, cutEnd, a, b)
		if !ok {
			continue
		}
		hits = append(hits, hit{
			point:   pt,
			edgeIdx: i,
			distSqr: geom.Dist2DSqr(a, pt),
		})
	}
	// Spec §4.4 step 2: sort by edge index, then by squared distance from
	// the edge's start vertex (stable tie-break).
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].edgeIdx != hits[j].edgeIdx {
			return hits[i].edgeIdx < hits[j].edgeIdx
		}
		return hits[i].distSqr < hits[j].distSqr
	})
	return hits
}

// splicePath walks path and splices in the sorted intersections found on
// each edge, de-duplicating consecutive coincident vertices (spec §4.4
// step 3).
func splicePath(path []geom.Point, hits []hit) []geom.Point {
	if len(hits) == 0 {
		return append([]geom.Point(nil), path...)
	}

	byEdge := make(map[int][]geom.Point, len(hits))
	for _, h := range hits {
		byEdge[h.edgeIdx] = append(byEdge[h.edgeIdx], h.point)
	}

	out := make([]geom.Point, 0, len(path)+len(hits))
	n := len(path)
	for i := 0; i < n; i++ {
		appendDeduped(&out, path[i])
		for _, p := range byEdge[i] {
			appendDeduped(&out, p)
		}
	}
	// Drop a final vertex that wraps around onto the first.
	for len(out) > 1 && geom.Coincident(out[0], out[len(out)-1]) {
		out = out[:len(out)-1]
	}
	return out
}

func appendDeduped(out *[]geom.Point, p geom.Point) {
	if len(*out) > 0 && geom.Coincident((*out)[len(*out)-1], p) {
		return
	}
	*out = append(*out, p)
}

// injectSeam implements spec §4.4's odd-even cut-seam rule: dedupe the
// collected intersection points, sort them by scalar projection onto the
// cut direction, pair consecutive points, and discard a dangling last
// point on an odd count.
func injectSeam(pts []geom.Point, cutStart, cutEnd geom.Point) [][2]geom.Point {
	unique := dedupePoints(pts)

	dx, dy := cutEnd[0]-cutStart[0], cutEnd[1]-cutStart[1]
	proj := func(p geom.Point) float32 {
		return (p[0]-cutStart[0])*dx + (p[1]-cutStart[1])*dy
	}
	sort.Slice(unique, func(i, j int) bool {
		return proj(unique[i]) < proj(unique[j])
	})

	var pairs [][2]geom.Point
	for i := 0; i+1 < len(unique); i += 2 {
		pairs = append(pairs, [2]geom.Point{unique[i], unique[i+1]})
	}
	return pairs
}

func dedupePoints(pts []geom.Point) []geom.Point {
	var out []geom.Point
	for _, p := range pts {
		found := false
		for _, q := range out {
			if geom.Coincident(p, q) {
				found = true
				break
			}
		}
		if !found {
			out = append(out, p)
		}
	}
	return out
}
