// Package slicer orchestrates spec §4.4/§4.7: it builds the planar graph
// for a single straight cut through a polygon-with-holes, extracts faces,
// classifies them by winding, and assigns holes to solids.
//
// Grounded on arl/go-detour's recast.BuildPolyMesh, which brackets each
// phase of its own pipeline with ctx.StartTimer/StopTimer on a
// *BuildContext; Slice does the same with *diag.Log.
package slicer

import (
	"github.com/arl/math32"
	"github.com/arl/slicer2d/geom"
	"github.com/arl/slicer2d/internal/diag"
)

// Slice cuts polygon along the directed segment cutStart->cutEnd and
// returns the resulting polygons-with-holes (spec §4.7, §6's "slice").
//
// refRectSize is the (width, height) of the host's reference rectangle,
// used only to decide how far to extend the cut segment (step 2); it is
// opaque geometry the caller owns, not part of the output.
//
// A nil *diag.Log is valid; Slice allocates one if none is given.
func Slice(polygon geom.PolygonWithHoles, cutStart, cutEnd geom.Point, refRectSize [2]float32, log *diag.Log) ([]geom.PolygonWithHoles, *diag.Log) {
	if log == nil {
		log = &diag.Log{}
	}

	log.StartTimer("slice")
	defer log.StopTimer("slice")

	if geom.Coincident(cutStart, cutEnd) {
		return nil, log
	}

	log.StartTimer("extend_cut")
	extStart, extEnd := extendCut(cutStart, cutEnd, refRectSize)
	log.StopTimer("extend_cut")

	log.StartTimer("build_graph")
	g, hitCount := buildGraph(polygon, extStart, extEnd, log)
	log.StopTimer("build_graph")

	if hitCount < 2 {
		// Degenerate cut: zero or one intersection with the boundary.
		// Spec §4.4/§4.7: no-op, caller keeps the original.
		return nil, log
	}

	log.StartTimer("extract_loops")
	loops := g.ExtractLoops()
	log.StopTimer("extract_loops")

	log.StartTimer("classify")
	solids, holes := classify(loops, log)
	log.StopTimer("classify")

	log.StartTimer("assign_holes")
	results := assignHoles(solids, holes, log)
	log.StopTimer("assign_holes")

	if len(results) < 2 {
		// Spec §4.7 step 5 / §6: fewer than two outputs means the cut
		// produced nothing usable; caller must not destroy the input.
		return nil, log
	}
	return results, log
}

// extendCut lengthens the cut segment on both ends so it fully clears the
// polygon's bounding box (spec §4.7 step 2): extend by
// 1.5*max(refRect.width, refRect.height) + 1.0 along the cut direction.
func extendCut(start, end geom.Point, refRectSize [2]float32) (geom.Point, geom.Point) {
	dx, dy := end[0]-start[0], end[1]-start[1]
	mag2 := dx*dx + dy*dy
	if mag2 == 0 {
		return start, end
	}
	inv := 1 / math32.Sqrt(mag2)
	ux, uy := dx*inv, dy*inv

	w, h := refRectSize[0], refRectSize[1]
	maxSide := w
	if h > maxSide {
		maxSide = h
	}
	ext := 1.5*maxSide + 1.0

	newStart := geom.NewPoint(start[0]-ux*ext, start[1]-uy*ext)
	newEnd := geom.NewPoint(end[0]+ux*ext, end[1]+uy*ext)
	return newStart, newEnd
}
