package bvh

import (
	"testing"

	"github.com/arl/slicer2d/geom"
)

func TestSegTreeIntersects(t *testing.T) {
	// A unit square's four edges as the wall tree.
	a := []geom.Point{
		geom.NewPoint(-1, -1), geom.NewPoint(1, -1),
		geom.NewPoint(1, 1), geom.NewPoint(-1, 1),
	}
	b := []geom.Point{
		geom.NewPoint(1, -1), geom.NewPoint(1, 1),
		geom.NewPoint(-1, 1), geom.NewPoint(-1, -1),
	}
	tree := BuildSegTree(a, b)

	tests := []struct {
		name string
		p, q geom.Point
		want bool
	}{
		{"crosses bottom edge", geom.NewPoint(0, -2), geom.NewPoint(0, 0), true},
		{"entirely outside", geom.NewPoint(5, 5), geom.NewPoint(6, 6), false},
		{"endpoint on a wall vertex doesn't block", geom.NewPoint(-1, -1), geom.NewPoint(0, 0), false},
	}
	for _, tt := range tests {
		got := tree.Intersects(tt.p, tt.q)
		if got != tt.want {
			t.Errorf("%s: Intersects() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSegTreeEmpty(t *testing.T) {
	tree := BuildSegTree(nil, nil)
	if !tree.Empty() {
		t.Errorf("BuildSegTree(nil,nil).Empty() = false, want true")
	}
	if tree.Intersects(geom.NewPoint(0, 0), geom.NewPoint(1, 1)) {
		t.Errorf("empty tree Intersects() = true, want false")
	}
}
