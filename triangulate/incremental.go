package triangulate

import (
	"github.com/katalvlaran/meshbool/geom"
	"github.com/katalvlaran/meshbool/intersect"
	"github.com/katalvlaran/meshbool/rational"
)

// incrementalTriangulate2D is the alternate, non-boundary-augmented planar
// triangulator: an advancing-front gift-wrap over a bare point cloud (no
// constraint segments, no holes). It starts from one hull edge and
// repeatedly mates each frontier edge with whichever remaining point
// minimizes the bisector parameter (the same selection rule as a
// Delaunay-style empty-circle test), folding new frontier edges in via
// XOR until none remain.
//
// Grounded on incremental_triangulation.rs's triangulate/hull_edge/mate/
// update_frontier, with get_segment_normal's 3x3-solve replaced by a
// direct perpendicular in the X/Y projection (every bisector is built at
// Z = 0, so all of them are coplanar whatever Z the points themselves
// carry, and no general change of basis is needed).
func incrementalTriangulate2D(points []geom.Point) []geom.Triangle {
	var out []geom.Triangle

	e := hullEdge(points)

	frontier := map[string]geom.Segment{frontierKey(e): e}

	for len(frontier) > 0 {
		var key string
		for k := range frontier {
			if key == "" || k > key {
				key = k
			}
		}
		cur := frontier[key]
		delete(frontier, key)

		p, ok := mate(cur, points)
		if !ok {
			continue
		}

		updateFrontier(frontier, p, cur.Org)
		updateFrontier(frontier, cur.Dest, p)

		out = append(out, geom.NewTriangle(cur.Dest, cur.Org, p))
	}

	return out
}

func frontierKey(s geom.Segment) string {
	return s.Org.Key() + ">" + s.Dest.Key()
}

// hullEdge finds one edge of the point set's convex hull: the
// lexicographically smallest point, paired with whichever other point
// keeps every remaining point to the right of (or collinear beyond) the
// edge.
func hullEdge(points []geom.Point) geom.Segment {
	pts := append([]geom.Point(nil), points...)
	m := 0
	for i := 1; i < len(pts); i++ {
		if pts[i].Less(pts[m]) {
			m = i
		}
	}
	pts[0], pts[m] = pts[m], pts[0]

	best := 1
	for i := 2; i < len(pts); i++ {
		c := geom.Classify(pts[i], pts[0], pts[best])
		if c == geom.Left || c == geom.Between {
			best = i
		}
	}

	return geom.Segment{Org: pts[0], Dest: pts[best]}
}

// mate finds the point to the right of e that minimizes the perpendicular
// bisector parameter, i.e. the point that closes e into the
// locally-smallest circumradius triangle.
func mate(e geom.Segment, points []geom.Point) (geom.Point, bool) {
	f := perpendicularBisector(e)

	haveBest := false
	var best geom.Point
	var bestT rational.Number

	for _, p := range points {
		if geom.Classify(p, e.Org, e.Dest) != geom.Right {
			continue
		}

		candidate := geom.Segment{Org: e.Dest, Dest: p}
		g := perpendicularBisector(candidate)

		res := intersect.LineXLine(f, g)
		if res.Kind != intersect.LLIntersecting {
			continue
		}

		t := bisectorParameter(f, res.Point)
		if !haveBest || t.Cmp(bestT) < 0 {
			haveBest = true
			best = p
			bestT = t
		}
	}

	return best, haveBest
}

// perpendicularBisector returns the line through the X/Y projection of
// e's midpoint, perpendicular to e's X/Y projection. Both points defining
// it have Z = 0, so every bisector lies in the same z = 0 plane.
func perpendicularBisector(e geom.Segment) geom.Line {
	mid := geom.NewPoint(
		e.Org.X.Add(e.Dest.X).Div(rational.FromInt64(2, 1)),
		e.Org.Y.Add(e.Dest.Y).Div(rational.FromInt64(2, 1)),
		rational.Zero,
	)
	dir := e.Dest.Sub(e.Org)
	other := geom.NewPoint(mid.X.Sub(dir.Y), mid.Y.Add(dir.X), rational.Zero)
	return geom.Line{Org: mid, Dest: other}
}

// bisectorParameter returns p's parameter along line f (p = f.Org +
// t*(f.Dest-f.Org)), used only to compare candidates sharing the same f.
func bisectorParameter(f geom.Line, p geom.Point) rational.Number {
	dir := f.Dest.Sub(f.Org)
	toP := p.Sub(f.Org)
	denom := dir.DotProduct(dir)
	return toP.DotProduct(dir).Div(denom)
}

func updateFrontier(frontier map[string]geom.Segment, a, b geom.Point) {
	e := geom.Segment{Org: a, Dest: b}
	key := frontierKey(e)
	if _, ok := frontier[key]; ok {
		delete(frontier, key)
		return
	}
	flipped := e.Flip()
	frontier[frontierKey(flipped)] = flipped
}
