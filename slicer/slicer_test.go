package slicer

import (
	"testing"

	"github.com/arl/slicer2d/geom"
)

func p(x, y float32) geom.Point { return geom.NewPoint(x, y) }

func totalArea(polys []geom.PolygonWithHoles) float32 {
	var total float32
	for _, poly := range polys {
		total += poly.Area()
	}
	return total
}

// Scenario 1 (spec §8): square, diagonal cut -> two triangles of area 2
// each, summing to the original square's area of 4.
func TestSliceSquareDiagonalCut(t *testing.T) {
	square := []geom.Point{p(-1, -1), p(1, -1), p(1, 1), p(-1, 1)}
	results, _ := Slice(geom.PolygonWithHoles{Outer: square}, p(-2, -2), p(2, 2), [2]float32{2, 2}, nil)

	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	for _, r := range results {
		if len(r.Holes) != 0 {
			t.Errorf("result has %d holes, want 0", len(r.Holes))
		}
		if r.Area() <= 0 {
			t.Errorf("result area = %v, want positive (CCW)", r.Area())
		}
	}
	if got := totalArea(results); abs32(got-4) > 1e-2 {
		t.Errorf("total area = %v, want 4", got)
	}
}

// Scenario 2 (spec §8): square with central square hole, horizontal cut
// through the middle -> two notched rectangles summing to 16-4=12.
func TestSliceSquareWithHoleHorizontalCut(t *testing.T) {
	outer := []geom.Point{p(-2, -2), p(2, -2), p(2, 2), p(-2, 2)}
	hole := []geom.Point{p(-1, 1), p(1, 1), p(1, -1), p(-1, -1)}
	poly := geom.PolygonWithHoles{Outer: outer, Holes: [][]geom.Point{hole}}

	results, _ := Slice(poly, p(-3, 0), p(3, 0), [2]float32{4, 4}, nil)
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	if got := totalArea(results); abs32(got-12) > 1e-2 {
		t.Errorf("total area = %v, want 12", got)
	}
}

// Scenario 3 (spec §8): annulus cut off-center, touching only the outer
// ring -> two polygons, the hole assigned to whichever retains it.
func TestSliceOffCenterKeepsHoleInOneSolid(t *testing.T) {
	outer := []geom.Point{p(-2, -2), p(2, -2), p(2, 2), p(-2, 2)}
	hole := []geom.Point{p(-1, 1), p(1, 1), p(1, -1), p(-1, -1)}
	poly := geom.PolygonWithHoles{Outer: outer, Holes: [][]geom.Point{hole}}

	// Cut above the hole: it never crosses the hole boundary.
	results, _ := Slice(poly, p(-3, 1.5), p(3, 1.5), [2]float32{4, 4}, nil)
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	holeCount := 0
	for _, r := range results {
		holeCount += len(r.Holes)
	}
	if holeCount != 1 {
		t.Fatalf("total holes across results = %d, want 1", holeCount)
	}
	if got := totalArea(results); abs32(got-12) > 1e-2 {
		t.Errorf("total area = %v, want 12", got)
	}
}

// Scenario 4 (spec §8): outer 6x6 square with four 1x1 corner holes,
// horizontal cut y=0 -> two polygons each with two holes.
func TestSliceGridPolygonHorizontalCut(t *testing.T) {
	outer := []geom.Point{p(-3, -3), p(3, -3), p(3, 3), p(-3, 3)}
	holes := [][]geom.Point{
		{p(-2, 1), p(-1, 1), p(-1, 2), p(-2, 2)},
		{p(1, 1), p(2, 1), p(2, 2), p(1, 2)},
		{p(1, -2), p(2, -2), p(2, -1), p(1, -1)},
		{p(-2, -2), p(-1, -2), p(-1, -1), p(-2, -1)},
	}
	poly := geom.PolygonWithHoles{Outer: outer, Holes: holes}

	results, _ := Slice(poly, p(-4, 0), p(4, 0), [2]float32{6, 6}, nil)
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	for i, r := range results {
		if len(r.Holes) != 2 {
			t.Errorf("result %d has %d holes, want 2", i, len(r.Holes))
		}
	}
}

// Scenario 5 (spec §8): a cut that misses the polygon entirely is a no-op.
func TestSliceMissReturnsEmpty(t *testing.T) {
	square := []geom.Point{p(-1, -1), p(1, -1), p(1, 1), p(-1, 1)}
	results, _ := Slice(geom.PolygonWithHoles{Outer: square}, p(10, 10), p(20, 20), [2]float32{2, 2}, nil)
	if len(results) != 0 {
		t.Errorf("len(results) = %d, want 0", len(results))
	}
}

// Scenario 6 (spec §8): a cut passing through a concave vertex of the
// outer polygon still yields two valid polygons, the shared vertex
// appearing exactly once on each side's boundary.
func TestSliceThroughConcaveVertex(t *testing.T) {
	// A square with one edge pulled in to (0,0), a concave ("arrow") vertex
	// that the horizontal cut passes directly through.
	outer := []geom.Point{p(-2, -2), p(2, -2), p(2, 2), p(0, 0), p(-2, 2)}
	results, _ := Slice(geom.PolygonWithHoles{Outer: outer}, p(-3, 0), p(3, 0), [2]float32{4, 4}, nil)
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	for _, r := range results {
		count := 0
		for _, v := range r.Outer {
			if geom.Coincident(v, p(0, 0)) {
				count++
			}
		}
		if count != 1 {
			t.Errorf("concave vertex appears %d times in result boundary, want 1 (deduped)", count)
		}
	}
}

// A zero-length cut is degenerate and must be a no-op (spec §4.7 step 1).
func TestSliceZeroLengthCutIsNoop(t *testing.T) {
	square := []geom.Point{p(-1, -1), p(1, -1), p(1, 1), p(-1, 1)}
	results, _ := Slice(geom.PolygonWithHoles{Outer: square}, p(0, 0), p(0, 0), [2]float32{2, 2}, nil)
	if len(results) != 0 {
		t.Errorf("len(results) = %d, want 0", len(results))
	}
}

func abs32(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
