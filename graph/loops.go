package graph

import "github.com/arl/slicer2d/geom"

// ExtractLoops walks every directed edge not yet visited, following
// left-most turns until the walk closes back on its starting vertex
// (spec §4.4). Unclosed walks and loops shorter than 3 vertices are
// discarded. CCW-signed loops enclose filled regions; CW-signed loops
// enclose holes — classification is left to the caller (slicer), which
// also knows the area-based discard rule.
func (g *Graph) ExtractLoops() [][]geom.Point {
	visited := make(map[[2]Key]bool, len(g.edgeOrder))
	var loops [][]geom.Point

	maxIter := 2*len(g.edgeOrder) + 100

	for _, e := range g.edgeOrder {
		if visited[e] {
			continue
		}
		start, second := e[0], e[1]
		visited[e] = true

		keys := []Key{start, second}
		prev, curr := start, second
		closed := false

		for iter := 0; iter < maxIter; iter++ {
			next, ok := g.leftmostTurn(prev, curr)
			if !ok {
				break
			}
			ne := [2]Key{curr, next}
			if next == start {
				visited[ne] = true
				closed = true
				break
			}
			if visited[ne] {
				// Revisiting an edge without having closed the walk back
				// on its start: this walk cannot form a simple loop.
				break
			}
			visited[ne] = true
			keys = append(keys, next)
			prev, curr = curr, next
		}

		if !closed || len(keys) < 3 {
			continue
		}
		loops = append(loops, g.keysToPoints(keys))
	}
	return loops
}

func (g *Graph) keysToPoints(keys []Key) []geom.Point {
	pts := make([]geom.Point, len(keys))
	for i, k := range keys {
		p, _ := g.Pos(k)
		pts[i] = p
	}
	return pts
}
