package merger

import (
	"testing"

	"github.com/arl/slicer2d/geom"
)

func TestMergeNoHoles(t *testing.T) {
	outer := []geom.Point{
		geom.NewPoint(0, 0), geom.NewPoint(2, 0),
		geom.NewPoint(2, 2), geom.NewPoint(0, 2),
	}
	out, status := Merge(outer, nil, nil)
	if !status.Succeeded() {
		t.Fatalf("status.Succeeded() = false")
	}
	if len(out) != len(outer) {
		t.Fatalf("len(out) = %d, want %d", len(out), len(outer))
	}
	if got := geom.SignedArea(out); got != geom.SignedArea(outer) {
		t.Errorf("SignedArea(out) = %v, want %v", got, geom.SignedArea(outer))
	}
}

func TestMergeSingleHolePreservesArea(t *testing.T) {
	outer := []geom.Point{
		geom.NewPoint(-2, -2), geom.NewPoint(2, -2),
		geom.NewPoint(2, 2), geom.NewPoint(-2, 2),
	}
	// CW, per spec §3's hole winding convention.
	hole := []geom.Point{
		geom.NewPoint(-1, 1), geom.NewPoint(1, 1),
		geom.NewPoint(1, -1), geom.NewPoint(-1, -1),
	}
	out, status := Merge(outer, [][]geom.Point{hole}, nil)
	if !status.Succeeded() {
		t.Fatalf("status.Succeeded() = false")
	}
	if status.HasDetail(StatusHoleSkipped) {
		t.Fatalf("hole was skipped, want stitched")
	}

	// The bridge is traversed twice (in opposite directions), so the two
	// crossings cancel in the shoelace sum and the merged simple polygon's
	// area equals outer area + hole's (already-negative) signed area.
	want := geom.SignedArea(outer) + geom.SignedArea(hole)
	if got := geom.SignedArea(out); abs32(got-want) > 1e-2 {
		t.Errorf("SignedArea(merged) = %v, want %v", got, want)
	}

	// Every outer and hole vertex must still be present (bridge junctions
	// duplicate two vertices, so len(out) == len(outer)+len(hole)+2).
	if want := len(outer) + len(hole) + 2; len(out) != want {
		t.Errorf("len(out) = %d, want %d", len(out), want)
	}
}

func TestMergeTwoHolesOrderedRightmostFirst(t *testing.T) {
	outer := []geom.Point{
		geom.NewPoint(-6, -2), geom.NewPoint(6, -2),
		geom.NewPoint(6, 2), geom.NewPoint(-6, 2),
	}
	leftHole := []geom.Point{
		geom.NewPoint(-4, 1), geom.NewPoint(-3, 1),
		geom.NewPoint(-3, -1), geom.NewPoint(-4, -1),
	}
	rightHole := []geom.Point{
		geom.NewPoint(3, 1), geom.NewPoint(4, 1),
		geom.NewPoint(4, -1), geom.NewPoint(3, -1),
	}
	out, status := Merge(outer, [][]geom.Point{leftHole, rightHole}, nil)
	if status.HasDetail(StatusHoleSkipped) {
		t.Fatalf("a hole was skipped, want both stitched")
	}
	want := geom.SignedArea(outer) + geom.SignedArea(leftHole) + geom.SignedArea(rightHole)
	if got := geom.SignedArea(out); abs32(got-want) > 1e-2 {
		t.Errorf("SignedArea(merged) = %v, want %v", got, want)
	}
}

func abs32(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
