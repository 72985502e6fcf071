// Package glue holds the small cross-cutting utilities shared by the
// slicer, merger and triangulator: winding normalization, consecutive-
// coincidence simplification, and area/centroid re-exports for host
// convenience.
//
// Grounded on arl/go-detour's recast/contour.go removeDegenerateSegments
// (drop a vertex coincident with its neighbor) and calcAreaOfPolygon2D
// (sign of the shoelace area decides a contour's winding/role).
package glue

import "github.com/arl/slicer2d/geom"

// Dedupe returns loop with consecutive coincident vertices removed (spec
// §3's "no two consecutive points coincident" path invariant), including
// the wrap-around pair (last, first).
func Dedupe(loop []geom.Point) []geom.Point {
	if len(loop) == 0 {
		return loop
	}
	out := make([]geom.Point, 0, len(loop))
	for _, p := range loop {
		if len(out) > 0 && geom.Coincident(out[len(out)-1], p) {
			continue
		}
		out = append(out, p)
	}
	for len(out) > 1 && geom.Coincident(out[0], out[len(out)-1]) {
		out = out[:len(out)-1]
	}
	return out
}

// Normalize reverses loop in place if its winding doesn't match wantCCW.
func Normalize(loop []geom.Point, wantCCW bool) {
	isCCW := geom.SignedArea(loop) > 0
	if isCCW == wantCCW {
		return
	}
	for i, j := 0, len(loop)-1; i < j; i, j = i+1, j-1 {
		loop[i], loop[j] = loop[j], loop[i]
	}
}

// Area returns the (signed) shoelace area of loop.
func Area(loop []geom.Point) float32 { return geom.SignedArea(loop) }

// Centroid returns the vertex-average centroid of loop.
func Centroid(loop []geom.Point) geom.Point { return geom.Centroid(loop) }
