package graph

import (
	"testing"

	"github.com/arl/slicer2d/geom"
)

func TestQuantizeTruncates(t *testing.T) {
	// Spec §3: multiply by 100, truncate (not round).
	k := Quantize(geom.NewPoint(1.239, -1.231))
	if k != (Key{X: 123, Y: -123}) {
		t.Errorf("Quantize(1.239,-1.231) = %+v, want {123,-123}", k)
	}
}

func TestAddEdgeSkipsCoincidentAndDuplicates(t *testing.T) {
	g := New()
	a := geom.NewPoint(0, 0)
	b := geom.NewPoint(1, 0)

	g.AddEdge(a, b)
	g.AddEdge(a, b) // duplicate, must not double the neighbor list
	g.AddEdge(a, a) // coincident, must be skipped

	if g.NodeCount() != 2 {
		t.Fatalf("NodeCount() = %d, want 2", g.NodeCount())
	}
	if len(g.edgeOrder) != 2 {
		t.Errorf("len(edgeOrder) = %d, want 2 (a->b and b->a once each)", len(g.edgeOrder))
	}
}

func TestExtractLoopsSquare(t *testing.T) {
	g := New()
	square := []geom.Point{
		geom.NewPoint(0, 0), geom.NewPoint(1, 0),
		geom.NewPoint(1, 1), geom.NewPoint(0, 1),
	}
	for i := range square {
		g.AddEdge(square[i], square[(i+1)%len(square)])
	}

	loops := g.ExtractLoops()
	if len(loops) != 2 {
		// A single undirected square cycle extracts as two directed loops:
		// one CCW (the solid interior) and one CW (its mirror walking the
		// outside), exactly as spec §4.4 describes for "every face".
		t.Fatalf("ExtractLoops() returned %d loops, want 2", len(loops))
	}
	for _, l := range loops {
		if len(l) != 4 {
			t.Errorf("loop length = %d, want 4", len(l))
		}
	}
}
