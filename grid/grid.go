// Package grid implements the uniform spatial hash of spec §4.3: a
// row-major array of bucket heads over reflex-vertex positions, with O(1)
// insertion, O(k) removal (k = bucket occupancy) and AABB-window
// enumeration.
//
// Grounded on arl/go-detour's crowd.ProximityGrid (crowd/proximity_grid.go):
// same cellSize/invCellSize fields and math32.Floor-based cell addressing,
// adapted from ProximityGrid's hashed, append-only buckets to the spec's
// direct cellY*cols+cellX indexing, which is what makes an O(1)/O(k)
// remove possible (a hashed bucket alone gives no way to find "this
// vertex's bucket" without rehashing it).
package grid

import (
	"github.com/arl/math32"
	"github.com/arl/slicer2d/geom"
)

// maxCells bounds total bucket count; cellSize is enlarged uniformly if a
// naive area/count-derived size would exceed it.
const maxCells = 200000

// minCellSize is the lower bound spec §4.3 places on cellSize.
const minCellSize = 1e-4

// Node is a single reflex-vertex entry owned by the grid. Callers never
// hold a Node directly; they refer to it by the handle Insert returns.
type Node struct {
	Pos  geom.Point
	next int32 // index into the grid's owning slice, -1 if none
}

// Grid is a uniform spatial hash over a set of Nodes, indexed by
// (cellY*cols + cellX).
type Grid struct {
	cellSize float32
	invCell  float32
	cols     int32
	rows     int32
	minX     float32
	minY     float32
	buckets  []int32 // head index per cell, -1 if empty
	nodes    []Node  // owned storage; index is the node's handle
}

// New builds a grid sized for reflexCount reflex vertices spread over
// bounds, per spec §4.3's cellSize = sqrt(area/(reflexCount+1)) rule,
// capped so cols*rows <= maxCells.
func New(bounds geom.AABB, reflexCount int) *Grid {
	area := bounds.Dx() * bounds.Dy()
	if area <= 0 {
		area = 1
	}
	cellSize := math32.Sqrt(area / float32(reflexCount+1))
	if cellSize < minCellSize {
		cellSize = minCellSize
	}

	minX, minY := bounds.Min[0], bounds.Min[1]
	cols := int32(bounds.Dx()/cellSize) + 1
	rows := int32(bounds.Dy()/cellSize) + 1

	for int64(cols)*int64(rows) > maxCells {
		cellSize *= 1.5
		cols = int32(bounds.Dx()/cellSize) + 1
		rows = int32(bounds.Dy()/cellSize) + 1
	}
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	g := &Grid{
		cellSize: cellSize,
		invCell:  1 / cellSize,
		cols:     cols,
		rows:     rows,
		minX:     minX,
		minY:     minY,
		buckets:  make([]int32, cols*rows),
	}
	for i := range g.buckets {
		g.buckets[i] = -1
	}
	return g
}

func (g *Grid) cell(p geom.Point) (cx, cy int32) {
	cx = int32(math32.Floor((p[0] - g.minX) * g.invCell))
	cy = int32(math32.Floor((p[1] - g.minY) * g.invCell))
	if cx < 0 {
		cx = 0
	}
	if cx >= g.cols {
		cx = g.cols - 1
	}
	if cy < 0 {
		cy = 0
	}
	if cy >= g.rows {
		cy = g.rows - 1
	}
	return cx, cy
}

func (g *Grid) bucketOf(p geom.Point) int32 {
	cx, cy := g.cell(p)
	return cy*g.cols + cx
}

// Insert adds pos to the grid and returns a handle identifying it.
func (g *Grid) Insert(pos geom.Point) int32 {
	b := g.bucketOf(pos)
	handle := int32(len(g.nodes))
	g.nodes = append(g.nodes, Node{Pos: pos, next: g.buckets[b]})
	g.buckets[b] = handle
	return handle
}

// Remove unlinks handle from its bucket's chain. O(k) in the bucket's
// occupancy, as buckets are expected to stay small (spec §4.3).
func (g *Grid) Remove(handle int32) {
	pos := g.nodes[handle].Pos
	b := g.bucketOf(pos)

	cur := g.buckets[b]
	if cur == handle {
		g.buckets[b] = g.nodes[handle].next
		return
	}
	for cur != -1 {
		next := g.nodes[cur].next
		if next == handle {
			g.nodes[cur].next = g.nodes[handle].next
			return
		}
		cur = next
	}
}

// EnumerateWindow appends to out the handle of every node whose cell
// overlaps box (use Pos to get a handle's position), clamping out-of-range cells to the grid's
// border.
func (g *Grid) EnumerateWindow(box geom.AABB, out []int32) []int32 {
	loX, loY := g.cell(box.Min)
	hiX, hiY := g.cell(box.Max)

	for cy := loY; cy <= hiY; cy++ {
		for cx := loX; cx <= hiX; cx++ {
			cur := g.buckets[cy*g.cols+cx]
			for cur != -1 {
				out = append(out, cur)
				cur = g.nodes[cur].next
			}
		}
	}
	return out
}

// Pos returns the position stored for handle.
func (g *Grid) Pos(handle int32) geom.Point { return g.nodes[handle].Pos }
