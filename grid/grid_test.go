package grid

import (
	"testing"

	"github.com/arl/slicer2d/geom"
	"github.com/stretchr/testify/assert"
)

func TestGridInsertRemove(t *testing.T) {
	bounds := geom.LoopAABB([]geom.Point{geom.NewPoint(-10, -10), geom.NewPoint(10, 10)})
	g := New(bounds, 4)

	h1 := g.Insert(geom.NewPoint(1, 1))
	h2 := g.Insert(geom.NewPoint(1.01, 1.01))

	out := g.EnumerateWindow(geom.LoopAABB([]geom.Point{geom.NewPoint(0, 0), geom.NewPoint(2, 2)}), nil)
	assert.Equal(t, 2, len(out), "should have 2 nodes in the window")

	g.Remove(h1)
	out = g.EnumerateWindow(geom.LoopAABB([]geom.Point{geom.NewPoint(0, 0), geom.NewPoint(2, 2)}), nil)
	assert.Equal(t, 1, len(out), "should have 1 node left after Remove(h1)")
	assert.Equal(t, h2, out[0], "remaining handle should be h2")
}

func TestGridEnumerateWindowOutOfRangeClamps(t *testing.T) {
	bounds := geom.LoopAABB([]geom.Point{geom.NewPoint(0, 0), geom.NewPoint(1, 1)})
	g := New(bounds, 1)
	g.Insert(geom.NewPoint(0.5, 0.5))

	// Query window far outside the grid's bounds; cell() clamps to the
	// border so this must not panic and must still find the point.
	out := g.EnumerateWindow(geom.LoopAABB([]geom.Point{geom.NewPoint(-100, -100), geom.NewPoint(100, 100)}), nil)
	if len(out) != 1 {
		t.Errorf("EnumerateWindow (clamped) found %d, want 1", len(out))
	}
}
