package bvh

import (
	"testing"

	"github.com/arl/slicer2d/geom"
)

func TestSolidTreeQueryContaining(t *testing.T) {
	big := geom.LoopAABB([]geom.Point{geom.NewPoint(-5, -5), geom.NewPoint(5, 5)})
	small := geom.LoopAABB([]geom.Point{geom.NewPoint(-1, -1), geom.NewPoint(1, 1)})

	tree := BuildSolidTree([]geom.AABB{big, small})

	out := tree.QueryContaining(geom.NewPoint(0, 0), nil)
	if len(out) != 2 {
		t.Fatalf("QueryContaining(origin) returned %d candidates, want 2", len(out))
	}

	out = tree.QueryContaining(geom.NewPoint(3, 3), nil)
	if len(out) != 1 {
		t.Fatalf("QueryContaining(3,3) returned %d candidates, want 1", len(out))
	}
	if out[0].Solid != 0 {
		t.Errorf("QueryContaining(3,3) solid = %d, want 0 (big)", out[0].Solid)
	}
}
