package intersect

import (
	"sort"

	"github.com/katalvlaran/meshbool/geom"
)

// TriangleXTriangleKind enumerates every outcome TriangleXTriangle can
// report.
type TriangleXTriangleKind int

const (
	// TTCollinear means the triangles' planes are parallel, non-coplanar,
	// and equidistant across all three of one triangle's vertices — a
	// degenerate parallel-planes case.
	TTCollinear TriangleXTriangleKind = iota
	// NotIntersecting means the triangles do not meet.
	NotIntersecting
	// CoplanarIntersecting means the triangles are coplanar and overlap
	// in a polygon of 3 or more vertices.
	CoplanarIntersecting
	// CoplanarNotIntersecting means the triangles are coplanar but do not
	// overlap at all.
	CoplanarNotIntersecting
	// TTIntersecting means the (non-coplanar) triangles cross in a
	// segment.
	TTIntersecting
	// TTIntersectingInPoint means the triangles touch at exactly one
	// point.
	TTIntersectingInPoint
)

// DoesItIntersect reports whether k represents an actual intersection
// (as opposed to NotIntersecting/CoplanarNotIntersecting/Collinear).
func (k TriangleXTriangleKind) DoesItIntersect() bool {
	return k == TTIntersecting || k == CoplanarIntersecting || k == TTIntersectingInPoint
}

// TriangleXTriangleResult is the tagged result of TriangleXTriangle.
type TriangleXTriangleResult struct {
	Kind    TriangleXTriangleKind
	Point   geom.Point
	Segment geom.Segment
	Polygon geom.Polygon
}

// TriangleXTriangle implements the core predicate (base spec 4.3):
//
//  1. If every vertex of tr1 has zero signed distance to tr2's plane, the
//     triangles are coplanar: resolve via clipping tr1 against tr2 as
//     convex polygons (see intersectTrianglesInThePlane).
//  2. If all three signed distances are equal (and, by step 1, not all
//     zero), the planes are parallel and distinct: Collinear.
//  3. If all three signed distances share a strict sign, the triangles do
//     not meet: NotIntersecting. The symmetric check of tr2's vertices
//     against tr1's plane follows the same rule.
//  4. Otherwise the planes cross in a line L; intersect L against each
//     triangle (a point or a sub-segment along L) and combine the two
//     results.
func TriangleXTriangle(tr1, tr2 geom.Triangle) TriangleXTriangleResult {
	plane2 := tr2.GenPlane()
	if plane2.Normal.IsZero() {
		panic("intersect: TriangleXTriangle: degenerate triangle plane")
	}

	d1 := plane2.SignedDistance(tr1.Points[0])
	d2 := plane2.SignedDistance(tr1.Points[1])
	d3 := plane2.SignedDistance(tr1.Points[2])

	if d1.IsZero() && d2.IsZero() && d3.IsZero() {
		poly := intersectTrianglesInThePlane(tr1, tr2)
		switch len(poly.Points) {
		case 0:
			return TriangleXTriangleResult{Kind: CoplanarNotIntersecting}
		case 1:
			return TriangleXTriangleResult{Kind: TTIntersectingInPoint, Point: poly.Points[0]}
		case 2:
			seg, _ := geom.NewSegment(poly.Points[0], poly.Points[1])
			return TriangleXTriangleResult{Kind: TTIntersecting, Segment: seg}
		default:
			return TriangleXTriangleResult{Kind: CoplanarIntersecting, Polygon: poly}
		}
	}

	if d1.Equal(d2) && d1.Equal(d3) {
		return TriangleXTriangleResult{Kind: TTCollinear}
	}
	if sameStrictSign(d1, d2, d3) {
		return TriangleXTriangleResult{Kind: NotIntersecting}
	}

	plane1 := tr1.GenPlane()
	e1 := plane1.SignedDistance(tr2.Points[0])
	e2 := plane1.SignedDistance(tr2.Points[1])
	e3 := plane1.SignedDistance(tr2.Points[2])
	if sameStrictSign(e1, e2, e3) {
		return TriangleXTriangleResult{Kind: NotIntersecting}
	}

	ppRes := PlaneXPlane(plane1, plane2)
	if ppRes.Kind != PPIntersecting {
		panic("intersect: TriangleXTriangle: non-coplanar triangles whose planes don't cross")
	}
	line := ppRes.Line

	hasP1, p1, hasS1, s1 := intersectLineAndTriangle(line, tr1)
	hasP2, p2, hasS2, s2 := intersectLineAndTriangle(line, tr2)

	switch {
	case hasP1 && hasP2:
		if p1.Equal(p2) {
			return TriangleXTriangleResult{Kind: TTIntersectingInPoint, Point: p1}
		}
		return TriangleXTriangleResult{Kind: NotIntersecting}
	case hasS1 && hasS2:
		res := intersectSegmentsOnLine(s1, s2)
		switch res.Kind {
		case IntersectingInSegment:
			return TriangleXTriangleResult{Kind: TTIntersecting, Segment: res.Segment}
		case IntersectingInPointOnLine:
			return TriangleXTriangleResult{Kind: TTIntersectingInPoint, Point: res.Point}
		default:
			return TriangleXTriangleResult{Kind: NotIntersecting}
		}
	case hasS1 && hasP2:
		if s1.ContainsPoint(p2) {
			return TriangleXTriangleResult{Kind: TTIntersectingInPoint, Point: p2}
		}
		return TriangleXTriangleResult{Kind: NotIntersecting}
	case hasP1 && hasS2:
		if s2.ContainsPoint(p1) {
			return TriangleXTriangleResult{Kind: TTIntersectingInPoint, Point: p1}
		}
		return TriangleXTriangleResult{Kind: NotIntersecting}
	default:
		panic("intersect: TriangleXTriangle: unexpected line/triangle intersection shape")
	}
}

func sameStrictSign(a, b, c interface{ IsPositive() bool; IsNegative() bool }) bool {
	allPos := a.IsPositive() && b.IsPositive() && c.IsPositive()
	allNeg := a.IsNegative() && b.IsNegative() && c.IsNegative()
	return allPos || allNeg
}

// intersectLineAndTriangle intersects line against each of tr's three
// sides, deduplicating by exact point value, and returns either a single
// point, a sub-segment spanning the extreme two points (ordered by
// parametric position along line), or neither if line misses tr entirely.
func intersectLineAndTriangle(line geom.Line, tr geom.Triangle) (hasPoint bool, point geom.Point, hasSegment bool, segment geom.Segment) {
	seen := map[string]geom.Point{}
	for _, side := range tr.Sides() {
		res := LineXSegment(line, side)
		switch res.Kind {
		case IntersectingInPoint:
			seen[res.Point.Key()] = res.Point
		case IntersectingInSegment:
			seen[res.Segment.Org.Key()] = res.Segment.Org
			seen[res.Segment.Dest.Key()] = res.Segment.Dest
		}
	}
	pts := make([]geom.Point, 0, len(seen))
	for _, p := range seen {
		pts = append(pts, p)
	}
	switch len(pts) {
	case 0:
		return false, geom.Point{}, false, geom.Segment{}
	case 1:
		return true, pts[0], false, geom.Segment{}
	default:
		ref := line.ConvertToSegment()
		sort.Slice(pts, func(i, j int) bool {
			return ref.AlongParameter(pts[i]).Cmp(ref.AlongParameter(pts[j])) < 0
		})
		seg, err := geom.NewSegment(pts[0], pts[len(pts)-1])
		if err != nil {
			// All collected points coincide despite len > 1: impossible
			// since seen deduplicates by exact Key.
			panic(err)
		}
		return false, geom.Point{}, true, seg
	}
}

// intersectTrianglesInThePlane computes the convex-polygon intersection of
// two coplanar triangles via Sutherland-Hodgman clipping: tr1's vertices
// are clipped against each of tr2's three directed edges in turn, using
// the shared plane normal to decide which side of each edge is "inside".
//
// This is a direct substitute for the source algorithm's directed-point-
// graph / leftmost-turn walk (see DESIGN.md): because every input to this
// routine is a pair of coplanar, convex polygons (triangles are always
// convex), Sutherland-Hodgman clipping computes exactly the same polygon
// the graph walk does, with less code and no loss of exactness (every
// clip computation stays in rational.Number).
func intersectTrianglesInThePlane(tr1, tr2 geom.Triangle) geom.Polygon {
	normal := tr1.Normal
	subject := tr1.Points[:]

	clip := tr2.Points
	if tr1.Normal.DotProduct(tr2.Normal).IsNegative() {
		clip = [3]geom.Point{tr2.Points[0], tr2.Points[2], tr2.Points[1]}
	}

	poly := append([]geom.Point(nil), subject...)
	for i := 0; i < 3; i++ {
		edgeOrg := clip[i]
		edgeDest := clip[(i+1)%3]
		poly = clipConvexPolygon(poly, edgeOrg, edgeDest, normal)
		if len(poly) == 0 {
			break
		}
	}
	poly = dedupeCyclic(poly)
	return geom.NewPolygon(poly, normal)
}

func side(p, edgeOrg, edgeDest geom.Point, normal geom.Vector) int {
	edge := edgeDest.Sub(edgeOrg)
	toP := p.Sub(edgeOrg)
	v := edge.CrossProduct(toP).DotProduct(normal)
	switch {
	case v.IsPositive():
		return 1
	case v.IsNegative():
		return -1
	default:
		return 0
	}
}

func clipConvexPolygon(poly []geom.Point, edgeOrg, edgeDest geom.Point, normal geom.Vector) []geom.Point {
	if len(poly) == 0 {
		return poly
	}
	out := make([]geom.Point, 0, len(poly)+1)
	n := len(poly)
	for i := 0; i < n; i++ {
		cur := poly[i]
		prev := poly[(i+n-1)%n]
		curSide := side(cur, edgeOrg, edgeDest, normal)
		prevSide := side(prev, edgeOrg, edgeDest, normal)

		if curSide >= 0 {
			if prevSide < 0 {
				if ip, ok := edgeLineCrossing(prev, cur, edgeOrg, edgeDest); ok {
					out = append(out, ip)
				}
			}
			out = append(out, cur)
		} else if prevSide >= 0 {
			if ip, ok := edgeLineCrossing(prev, cur, edgeOrg, edgeDest); ok {
				out = append(out, ip)
			}
		}
	}
	return out
}

// edgeLineCrossing finds where segment (a,b) crosses the infinite line
// through (edgeOrg, edgeDest); both are known coplanar, so the only
// non-crossing case is a parallel (possibly collinear) edge, which
// Sutherland-Hodgman never needs a crossing point for.
func edgeLineCrossing(a, b, edgeOrg, edgeDest geom.Point) (geom.Point, bool) {
	seg, err := geom.NewSegment(a, b)
	if err != nil {
		return geom.Point{}, false
	}
	line, err := geom.NewLine(edgeOrg, edgeDest)
	if err != nil {
		return geom.Point{}, false
	}
	res := LineXSegment(line, seg)
	if res.Kind != IntersectingInPoint {
		return geom.Point{}, false
	}
	return res.Point, true
}

// dedupeCyclic removes consecutive duplicate points (including a trailing
// point equal to the first) that Sutherland-Hodgman can introduce when a
// vertex lies exactly on a clip edge.
func dedupeCyclic(poly []geom.Point) []geom.Point {
	if len(poly) == 0 {
		return poly
	}
	out := make([]geom.Point, 0, len(poly))
	for _, p := range poly {
		if len(out) > 0 && out[len(out)-1].Equal(p) {
			continue
		}
		out = append(out, p)
	}
	if len(out) > 1 && out[0].Equal(out[len(out)-1]) {
		out = out[:len(out)-1]
	}
	return out
}
