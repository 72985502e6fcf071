package slicer

import (
	"github.com/arl/slicer2d/bvh"
	"github.com/arl/slicer2d/geom"
	"github.com/arl/slicer2d/glue"
	"github.com/arl/slicer2d/internal/diag"
)

// classify applies spec §4.4's classification rule to every extracted
// loop: loops with |area| < AreaMin are dropped regardless of sign; a
// CCW loop becomes a solid candidate, a CW loop a hole candidate.
func classify(loops [][]geom.Point, log *diag.Log) (solids, holes [][]geom.Point) {
	for _, loop := range loops {
		area := geom.SignedArea(loop)
		if area < 0 {
			area = -area
		}
		if area < geom.AreaMin {
			continue
		}
		if geom.SignedArea(loop) > 0 {
			solids = append(solids, loop)
		} else {
			holes = append(holes, loop)
		}
	}
	return solids, holes
}

// assignHoles builds the flat AABB tree over solid bounds and assigns
// each hole to the smallest-area qualifying solid (spec §4.4 "Hierarchy
// assignment"). Solids are normalized CCW and holes CW (spec §3) before
// being returned.
func assignHoles(solids, holes [][]geom.Point, log *diag.Log) []geom.PolygonWithHoles {
	if len(solids) == 0 {
		return nil
	}

	bounds := make([]geom.AABB, len(solids))
	areas := make([]float32, len(solids))
	for i, s := range solids {
		bounds[i] = geom.LoopAABB(s)
		a := geom.SignedArea(s)
		if a < 0 {
			a = -a
		}
		areas[i] = a
	}
	tree := bvh.BuildSolidTree(bounds)

	results := make([]geom.PolygonWithHoles, len(solids))
	for i, s := range solids {
		out := append([]geom.Point(nil), s...)
		glue.Normalize(out, true)
		results[i] = geom.PolygonWithHoles{Outer: out}
	}

	var buf []bvh.Candidate
	for _, h := range holes {
		centroid := geom.Centroid(h)
		holeArea := geom.SignedArea(h)
		if holeArea < 0 {
			holeArea = -holeArea
		}

		buf = tree.QueryContaining(centroid, buf[:0])

		best := -1
		var bestArea float32
		for _, c := range buf {
			idx := int(c.Solid)
			if areas[idx] <= holeArea {
				continue
			}
			if !geom.PointInPolygon(centroid, solids[idx]) {
				continue
			}
			if best < 0 || areas[idx] < bestArea {
				best = idx
				bestArea = areas[idx]
			}
		}

		if best < 0 {
			log.Warningf("hole with no qualifying parent solid discarded (area=%v)", holeArea)
			continue
		}

		hLoop := append([]geom.Point(nil), h...)
		glue.Normalize(hLoop, false)
		results[best].Holes = append(results[best].Holes, hLoop)
	}

	return results
}
