// Package geom provides the 2D geometric primitives shared by every other
// package in this module: points, segments, axis-aligned bounds, signed
// area, orientation and intersection tests. Apart from package tri's own
// junction-coincidence tolerance (triEps2), these are the only places
// where numeric tolerances appear; other packages call through them
// rather than hard-coding epsilons of their own.
package geom

import (
	"github.com/arl/gogeo/f32"
	"github.com/arl/gogeo/f32/d3"
	"github.com/arl/math32"
)

// Tolerance constants. Altering them changes observable behavior on
// near-degenerate inputs; treat them as part of this package's contract.
const (
	// EPSCoincide2 is the squared-distance tolerance below which two points
	// are considered the same vertex (~0.01 world units).
	EPSCoincide2 = 1e-4

	// AreaMin is the minimum |signed area| a loop must have to survive
	// classification; smaller loops (of either winding) are discarded.
	AreaMin = 1e-2

	// IntersectEps bounds the open interval a strict-interior segment
	// intersection parameter must fall within.
	IntersectEps = 1e-5

	// SegEndpointEps2 is the squared-distance tolerance used by the BVH
	// leaf test to skip segments sharing an endpoint with the query.
	SegEndpointEps2 = 1e-7

	// aabbSlack expands every segment AABB to avoid false negatives on
	// axis-aligned edges.
	aabbSlack = 1e-3
)

// Point is a point (or free vector) in the plane. It is backed by
// gogeo/f32/d3.Vec3 with the Z component always pinned to 0: the rest of
// gogeo's d3 machinery (Rectangle, Vec3 arithmetic) stays usable without
// a parallel 2D vector type.
type Point = d3.Vec3

// NewPoint allocates a new Point at (x, y).
func NewPoint(x, y float32) Point {
	return d3.NewVec3XYZ(x, y, 0)
}

// X returns the X coordinate of p.
func X(p Point) float32 { return p[0] }

// Y returns the Y coordinate of p.
func Y(p Point) float32 { return p[1] }

// Coincident reports whether a and b are within EPSCoincide2 (squared) of
// one another.
//
// Note: d3.Vec3's own Dist2D/Dist2DSqr project onto the xz-plane (gogeo's
// 2D convention for a y-up 3D world); our plane is xy with z pinned to 0,
// so plain DistSqr (which sums all three squared deltas, the third always
// zero here) is the correct "2D" distance for this package.
func Coincident(a, b Point) bool {
	return a.DistSqr(b) < EPSCoincide2
}

// Dist2DSqr returns the squared distance between a and b in the xy-plane.
func Dist2DSqr(a, b Point) float32 {
	return a.DistSqr(b)
}

// AABB is an axis-aligned bounding box in the plane, backed by
// gogeo/f32/d3.Rectangle.
//
// d3.Rectangle's Empty/Overlaps/Contains/In all fold in a Z-range check,
// since d3 models a y-up 3D volume. Pinning Z to [0, 0] would make every
// box "empty" in Z (Min==Max on that axis) and every query spuriously
// false. Instead Z is pinned to the fixed, non-degenerate range [0, 1] on
// every AABB this package creates, so the Z checks always pass and the
// type behaves exactly like a 2D rectangle to every caller.
type AABB = d3.Rectangle

const zLo, zHi float32 = 0, 1

// NewAABB returns the empty (inverted) AABB, ready to be grown with Extend.
//
// d3.Rect itself canonicalizes its arguments (swaps Min/Max so Min<=Max),
// which would undo the inversion this needs, so the literal is built
// directly instead.
func NewAABB() AABB {
	return d3.Rectangle{
		Min: d3.NewVec3XYZ(math32.MaxFloat32, math32.MaxFloat32, zLo),
		Max: d3.NewVec3XYZ(-math32.MaxFloat32, -math32.MaxFloat32, zHi),
	}
}

// Extend grows box in place so that it contains p.
func Extend(box *AABB, p Point) {
	if p[0] < box.Min[0] {
		box.Min[0] = p[0]
	}
	if p[1] < box.Min[1] {
		box.Min[1] = p[1]
	}
	if p[0] > box.Max[0] {
		box.Max[0] = p[0]
	}
	if p[1] > box.Max[1] {
		box.Max[1] = p[1]
	}
}

// SegmentAABB returns the AABB of segment (a, b), expanded by aabbSlack on
// every side to avoid false negatives on axis-aligned edges (spec §3).
func SegmentAABB(a, b Point) AABB {
	box := NewAABB()
	Extend(&box, a)
	Extend(&box, b)
	box.Min[0] -= aabbSlack
	box.Min[1] -= aabbSlack
	box.Max[0] += aabbSlack
	box.Max[1] += aabbSlack
	return box
}

// LoopAABB returns the AABB enclosing every vertex of loop.
func LoopAABB(loop []Point) AABB {
	box := NewAABB()
	for _, p := range loop {
		Extend(&box, p)
	}
	return box
}

// Orient returns the sign of the 2D cross product (b-a)x(c-a): positive
// when a,b,c turn counter-clockwise, negative when clockwise, zero when
// collinear.
func Orient(a, b, c Point) float32 {
	return (b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0])
}

// SignedArea returns the shoelace signed area of loop (positive =
// counter-clockwise).
func SignedArea(loop []Point) float32 {
	n := len(loop)
	if n < 3 {
		return 0
	}
	var sum float32
	for i := 0; i < n; i++ {
		a := loop[i]
		b := loop[(i+1)%n]
		sum += a[0]*b[1] - b[0]*a[1]
	}
	return sum * 0.5
}

// Centroid returns the (unweighted vertex average) centroid of loop. Used
// by hierarchy assignment, which only needs a point guaranteed to be
// representative of the loop's location, not its exact area centroid.
func Centroid(loop []Point) Point {
	c := NewPoint(0, 0)
	if len(loop) == 0 {
		return c
	}
	for _, p := range loop {
		c[0] += p[0]
		c[1] += p[1]
	}
	inv := 1 / float32(len(loop))
	c[0] *= inv
	c[1] *= inv
	return c
}

// SegIntersect returns the strict-interior intersection point of segments
// (a,b) and (c,d), if any. Both intersection parameters must fall in the
// open interval (IntersectEps, 1-IntersectEps); collinear segments never
// intersect under this test.
func SegIntersect(a, b, c, d Point) (Point, bool) {
	r0, r1 := b[0]-a[0], b[1]-a[1]
	s0, s1 := d[0]-c[0], d[1]-c[1]

	denom := r0*s1 - r1*s0
	if denom == 0 {
		return d3.NewVec3(), false
	}

	acx, acy := c[0]-a[0], c[1]-a[1]
	t := (acx*s1 - acy*s0) / denom
	u := (acx*r1 - acy*r0) / denom

	if t <= IntersectEps || t >= 1-IntersectEps || u <= IntersectEps || u >= 1-IntersectEps {
		return d3.NewVec3(), false
	}
	return NewPoint(a[0]+t*r0, a[1]+t*r1), true
}

// LineHitsSegment computes the intersection of the (infinite, as used
// here, not actually infinite: extended by the caller) line p1->p2 with
// segment q1->q2, tolerantly accepting parameters slightly outside [0,1]
// to absorb endpoint rounding. Returns the intersection point, the
// parameter u along q1->q2 (clamped to [0,1]), and whether a tolerant hit
// was found.
func LineHitsSegment(p1, p2, q1, q2 Point) (pt Point, u float32, ok bool) {
	const tol = 1e-4

	r0, r1 := p2[0]-p1[0], p2[1]-p1[1]
	s0, s1 := q2[0]-q1[0], q2[1]-q1[1]

	denom := r0*s1 - r1*s0
	if denom == 0 {
		return d3.NewVec3(), 0, false
	}

	acx, acy := q1[0]-p1[0], q1[1]-p1[1]
	uu := (acx*r1 - acy*r0) / denom
	vv := (acx*s1 - acy*s0) / denom

	if uu < -tol || uu > 1+tol || vv < -tol || vv > 1+tol {
		return d3.NewVec3(), 0, false
	}

	uu = f32.Clamp(uu, 0, 1)
	return NewPoint(q1[0]+uu*s0, q1[1]+uu*s1), uu, true
}

// PointInPolygon reports whether p lies inside loop, using even-odd ray
// casting along +x.
func PointInPolygon(p Point, loop []Point) bool {
	n := len(loop)
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := loop[i], loop[j]
		if (vi[1] > p[1]) != (vj[1] > p[1]) {
			xint := (vj[0]-vi[0])*(p[1]-vi[1])/(vj[1]-vi[1]) + vi[0]
			if p[0] < xint {
				inside = !inside
			}
		}
	}
	return inside
}

// UV computes the host-supplied UV mapping (spec §6): uv = ((p-min)/size).
// rectMin/rectSize are (minX, minY) and (width, height) of the reference
// rectangle; the rectangle itself is opaque to this engine, which only
// ever applies this formula to it.
func UV(rectMin, rectSize [2]float32, p Point) [2]float32 {
	var uv [2]float32
	if rectSize[0] != 0 {
		uv[0] = (p[0] - rectMin[0]) / rectSize[0]
	}
	if rectSize[1] != 0 {
		uv[1] = (p[1] - rectMin[1]) / rectSize[1]
	}
	return uv
}
