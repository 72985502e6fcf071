// Package graph implements the planar graph of spec §4.4: an undirected
// multigraph over coincidence-quantized 2D points, built by edge
// insertion, and traversed directionally by left-most-turn face
// extraction.
//
// Grounded on arl/go-detour's recast/contour.go walkContour2, which walks
// the directed boundary of a heightfield region by rotating through a
// fixed 4-connected neighbor set and marking visited edges per-direction;
// here the same "rotate to the next connected direction, mark visited,
// stop when back at start" shape is generalized from 4 compass directions
// to an arbitrary-degree vertex ordered by signed turn angle.
package graph

import (
	"github.com/arl/math32"
	"github.com/arl/slicer2d/geom"
	"github.com/aurelien-rainone/assertgo"
)

// quantScale is the coincidence-quantization factor of spec §3: multiply
// by 100, truncate to integer, so points within ~0.01 collapse to one key.
const quantScale = 100

// Key is a quantized node identity.
type Key struct{ X, Y int32 }

// Quantize returns the graph key for p: multiply by 100 and truncate to
// integer (spec §3), so points within ~0.01 collapse onto the same key.
func Quantize(p geom.Point) Key {
	return Key{
		X: int32(p[0] * quantScale),
		Y: int32(p[1] * quantScale),
	}
}

type node struct {
	pos       geom.Point
	neighbors []Key
}

// Graph is an adjacency mapping from quantized point key to ordered
// neighbor list, per spec §4.4.
type Graph struct {
	nodes map[Key]*node

	// edgeOrder records every directed edge in insertion order, so loop
	// extraction can iterate "every directed edge" deterministically
	// instead of ranging over the (unordered) nodes map.
	edgeOrder [][2]Key
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{nodes: make(map[Key]*node)}
}

func (g *Graph) getOrCreate(p geom.Point) *node {
	k := Quantize(p)
	n, ok := g.nodes[k]
	if !ok {
		n = &node{pos: p}
		g.nodes[k] = n
	}
	return n
}

// AddEdge inserts the undirected edge (a, b), realized as two directed
// neighbor entries a->b and b->a. A given (u, v) directed pair is never
// duplicated.
func (g *Graph) AddEdge(a, b geom.Point) {
	if geom.Coincident(a, b) {
		return
	}
	na := g.getOrCreate(a)
	nb := g.getOrCreate(b)
	kb := Quantize(b)
	ka := Quantize(a)

	if !containsKey(na.neighbors, kb) {
		na.neighbors = append(na.neighbors, kb)
		g.edgeOrder = append(g.edgeOrder, [2]Key{ka, kb})
	}
	if !containsKey(nb.neighbors, ka) {
		nb.neighbors = append(nb.neighbors, ka)
		g.edgeOrder = append(g.edgeOrder, [2]Key{kb, ka})
	}
}

func containsKey(ks []Key, k Key) bool {
	for _, x := range ks {
		if x == k {
			return true
		}
	}
	return false
}

// NodeCount returns the number of distinct quantized vertices.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// Pos returns the representative position stored for key k.
func (g *Graph) Pos(k Key) (geom.Point, bool) {
	n, ok := g.nodes[k]
	if !ok {
		return geom.NewPoint(0, 0), false
	}
	return n.pos, true
}

// leftmostTurn picks the neighbor of curr that maximizes the signed angle
// from -(incoming direction) to the candidate outgoing direction,
// measured counter-clockwise in [0, 360). Ties are broken by first-in-list
// order (spec §4.4). prev is curr's predecessor on the current walk; if
// curr's only neighbor is prev itself this degenerates to a backtrack.
func (g *Graph) leftmostTurn(prev, curr Key) (Key, bool) {
	cn := g.nodes[curr]
	if cn == nil || len(cn.neighbors) == 0 {
		return Key{}, false
	}
	pp, _ := g.Pos(prev)
	cp := cn.pos
	assert.True(len(cp) == 3 && len(pp) == 3, "graph: corrupt node position (d3.Vec3 must have 3 components)")
	refX, refY := pp[0]-cp[0], pp[1]-cp[1] // reverse of incoming direction
	refAngle := math32.Atan2(refY, refX)

	best := -1
	var bestTurn float32 = -1
	for i, k := range cn.neighbors {
		np, ok := g.Pos(k)
		if !ok {
			continue
		}
		dx, dy := np[0]-cp[0], np[1]-cp[1]
		ang := math32.Atan2(dy, dx)
		turn := ang - refAngle
		for turn < 0 {
			turn += 2 * math32.Pi
		}
		for turn >= 2*math32.Pi {
			turn -= 2 * math32.Pi
		}
		if turn > bestTurn {
			bestTurn = turn
			best = i
		}
	}
	if best < 0 {
		return Key{}, false
	}
	return cn.neighbors[best], true
}
