package tri

import (
	"testing"

	"github.com/arl/slicer2d/geom"
)

func TestTriangulateSquare(t *testing.T) {
	square := []geom.Point{
		geom.NewPoint(0, 0), geom.NewPoint(2, 0),
		geom.NewPoint(2, 2), geom.NewPoint(0, 2),
	}
	indices, status := Triangulate(square, nil)
	if !status.Succeeded() {
		t.Fatalf("status.Succeeded() = false")
	}
	if len(indices) != 3*(len(square)-2) {
		t.Fatalf("len(indices) = %d, want %d", len(indices), 3*(len(square)-2))
	}

	var area float32
	for i := 0; i < len(indices); i += 3 {
		a, b, c := square[indices[i]], square[indices[i+1]], square[indices[i+2]]
		area += geom.Orient(a, b, c) / 2
	}
	if area != 4 {
		t.Errorf("sum of triangle areas = %v, want 4", area)
	}
}

func TestTriangulateAcceptsCWWinding(t *testing.T) {
	// Same square, reversed winding: §4.6 enforces CCW internally.
	square := []geom.Point{
		geom.NewPoint(0, 2), geom.NewPoint(2, 2),
		geom.NewPoint(2, 0), geom.NewPoint(0, 0),
	}
	indices, status := Triangulate(square, nil)
	if !status.Succeeded() {
		t.Fatalf("status.Succeeded() = false")
	}
	if len(indices) != 6 {
		t.Fatalf("len(indices) = %d, want 6", len(indices))
	}
}

func TestTriangulateConcavePolygon(t *testing.T) {
	// An arrow-like concave pentagon; a naive scan-for-any-convex-vertex
	// ear test would clip the reflex notch if it mishandled the grid
	// query, so this exercises §4.6 step 4's reflex disqualification.
	poly := []geom.Point{
		geom.NewPoint(0, 0), geom.NewPoint(4, 0),
		geom.NewPoint(4, 4), geom.NewPoint(2, 1.5),
		geom.NewPoint(0, 4),
	}
	indices, status := Triangulate(poly, nil)
	if !status.Succeeded() {
		t.Fatalf("status.Succeeded() = false")
	}
	if len(indices) != 3*(len(poly)-2) {
		t.Fatalf("len(indices) = %d, want %d", len(indices), 3*(len(poly)-2))
	}

	var area float32
	for i := 0; i < len(indices); i += 3 {
		a, b, c := poly[indices[i]], poly[indices[i+1]], poly[indices[i+2]]
		area += geom.Orient(a, b, c) / 2
	}
	want := geom.SignedArea(poly)
	if diff := area - want; diff > 1e-3 || diff < -1e-3 {
		t.Errorf("sum of triangle areas = %v, want %v", area, want)
	}
}

func TestTriangulateDegenerateTooFewPoints(t *testing.T) {
	indices, status := Triangulate([]geom.Point{geom.NewPoint(0, 0), geom.NewPoint(1, 0)}, nil)
	if indices != nil {
		t.Errorf("indices = %v, want nil", indices)
	}
	if !status.Succeeded() {
		t.Errorf("status.Succeeded() = false, want true (an empty result isn't a failure)")
	}
}
