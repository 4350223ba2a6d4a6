package triangulate

import (
	"github.com/katalvlaran/meshbool/geom"
	"github.com/katalvlaran/meshbool/rational"
)

// triangulatePolygonTree ear-clips every outer/hole pair in root, walking
// the nesting tree depth-first: root's own polygon is clipped using its
// immediate children as holes, whose interiors stay empty, then each
// grandchild (an island nested inside a hole) is pushed back through the
// same step as a new outer polygon. Only X/Y coordinates are read, so
// every polygon here is assumed already folded so that its X/Y projection
// is not degenerate.
func triangulatePolygonTree(root *geom.PolygonTreeNode) []geom.Triangle {
	var out []geom.Triangle
	stack := []*geom.PolygonTreeNode{root}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		holes := make([]geom.Polygon, len(cur.Children))
		for i, child := range cur.Children {
			holes[i] = child.Polygon
		}
		out = append(out, simpleTriangulation(cur.Polygon, holes)...)
		for _, child := range cur.Children {
			stack = append(stack, child.Children...)
		}
	}
	return out
}

// sign returns -1, 0, or 1 for n's sign.
func sign(n rational.Number) int {
	if n.IsZero() {
		return 0
	}
	if n.IsPositive() {
		return 1
	}
	return -1
}

// sign2D returns the sign of the cross product (b-a) x (p-a), restricted
// to the X/Y plane: positive if p is left of a->b, negative if right,
// zero if collinear.
func sign2D(p, a, b geom.Point) int {
	abx := b.X.Sub(a.X)
	aby := b.Y.Sub(a.Y)
	apx := p.X.Sub(a.X)
	apy := p.Y.Sub(a.Y)
	return sign(abx.Mul(apy).Sub(aby.Mul(apx)))
}

// strictlyInside reports whether p lies in the open interior of triangle
// (a, b, c), excluding its boundary.
func strictlyInside(p, a, b, c geom.Point) bool {
	d1 := sign2D(p, a, b)
	d2 := sign2D(p, b, c)
	d3 := sign2D(p, c, a)
	if d1 == 0 || d2 == 0 || d3 == 0 {
		return false
	}
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

// isConvexVertex is true when next is strictly left of the directed edge
// prev->cur, the per-vertex convexity test a counter-clockwise simple
// polygon satisfies at exactly its convex vertices.
func isConvexVertex(prev, cur, next geom.Point) bool {
	return geom.Classify(next, prev, cur) == geom.Left
}

func smallestKey(set map[int]struct{}) int {
	min := -1
	for k := range set {
		if min == -1 || k < min {
			min = k
		}
	}
	return min
}

func updateConvexAndReflex(
	cur int,
	convex, reflex map[int]struct{},
	points map[int]geom.Point,
	prevOf, nextOf map[int]int,
) {
	prev, next := prevOf[cur], nextOf[cur]
	if isConvexVertex(points[prev], points[cur], points[next]) {
		delete(reflex, cur)
		convex[cur] = struct{}{}
	} else {
		delete(convex, cur)
		reflex[cur] = struct{}{}
	}
}

func updateConvexAndReflexForAll(
	convex, reflex map[int]struct{},
	points map[int]geom.Point,
	prevOf, nextOf map[int]int,
) {
	n := len(points)
	for i := 0; i < n; i++ {
		prevOf[i] = (i + n - 1) % n
		nextOf[i] = (i + 1) % n
	}
	for i := 0; i < n; i++ {
		updateConvexAndReflex(i, convex, reflex, points, prevOf, nextOf)
	}
}

func updateEars(
	cur int,
	ears map[int]struct{},
	reflex map[int]struct{},
	points map[int]geom.Point,
	prevOf, nextOf map[int]int,
) {
	if _, isReflex := reflex[cur]; isReflex {
		delete(ears, cur)
		return
	}

	prev, next := prevOf[cur], nextOf[cur]
	a, b, c := points[prev], points[cur], points[next]

	ear := true
	for idx := range reflex {
		rp := points[idx]
		if rp.Equal(a) || rp.Equal(c) {
			continue
		}
		if strictlyInside(rp, a, b, c) {
			ear = false
			break
		}
	}

	if ear {
		ears[cur] = struct{}{}
	} else {
		delete(ears, cur)
	}
}

func polygonMaxXPoint(p geom.Polygon) geom.Point {
	best := p.Points[0]
	for _, pt := range p.Points[1:] {
		if pt.X.Cmp(best.X) > 0 {
			best = pt
		}
	}
	return best
}

func boundaryEdges(points map[int]geom.Point, nextOf map[int]int) []geom.Segment {
	n := len(points)
	out := make([]geom.Segment, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, geom.Segment{Org: points[i], Dest: points[nextOf[i]]})
	}
	return out
}

// bridgeToHole finds pm (the hole's rightmost point) a visible boundary
// point by the classic rightward-ray sweep, then splices the hole into
// the boundary loop as a zero-width channel through that visible point,
// following the algorithm of ear_clipping_triangulation.rs's
// simple_triangulation hole-merging step exactly.
func bridgeToHole(points map[int]geom.Point, nextOf map[int]int, reflex map[int]struct{}, hole geom.Polygon) map[int]geom.Point {
	pm := polygonMaxXPoint(hole)

	var nicePi geom.Point
	var niceT rational.Number
	var niceSeg geom.Segment
	haveNice := false

	for _, s := range boundaryEdges(points, nextOf) {
		dirY := s.Dest.Y.Sub(s.Org.Y)
		if dirY.IsZero() {
			continue
		}
		t := pm.Y.Sub(s.Org.Y).Div(dirY)
		if sign(t) < 0 || t.Cmp(rational.One) > 0 {
			continue
		}
		dirX := s.Dest.X.Sub(s.Org.X)
		piX := s.Org.X.Add(dirX.Mul(t))
		piY := pm.Y
		pi := geom.NewPoint(piX, piY, pm.Z)
		if pi.X.Cmp(pm.X) < 0 {
			continue
		}
		if !haveNice || pi.X.Cmp(nicePi.X) < 0 {
			nicePi = pi
			niceT = t
			niceSeg = s
			haveNice = true
		}
	}
	if !haveNice {
		panic("triangulate: hole has no visible boundary point")
	}

	var visible geom.Point
	if niceT.IsZero() || niceT.Equal(rational.One) {
		visible = nicePi
	} else {
		var pp geom.Point
		if niceSeg.Org.X.Cmp(niceSeg.Dest.X) > 0 {
			pp = niceSeg.Org
		} else {
			pp = niceSeg.Dest
		}

		var inside []geom.Point
		for idx := range reflex {
			rp := points[idx]
			if !rp.Equal(pp) && strictlyInside(rp, pm, nicePi, pp) {
				inside = append(inside, rp)
			}
		}

		if len(inside) == 0 {
			visible = pp
		} else {
			signedCos2 := func(pr geom.Point) rational.Number {
				dx := pr.X.Sub(pm.X)
				dy := pr.Y.Sub(pm.Y)
				len2 := dx.Mul(dx).Add(dy.Mul(dy))
				cos2 := dx.Mul(dx).Div(len2)
				if sign(dx) < 0 {
					cos2 = cos2.Neg()
				}
				return cos2
			}
			dist2 := func(pr geom.Point) rational.Number {
				dx := pr.X.Sub(pm.X)
				dy := pr.Y.Sub(pm.Y)
				return dx.Mul(dx).Add(dy.Mul(dy))
			}

			best := pp
			bestCos2 := signedCos2(pp)
			bestDist2 := dist2(pp)
			for _, cand := range inside {
				cCos2 := signedCos2(cand)
				cDist2 := dist2(cand)
				if cCos2.Cmp(bestCos2) > 0 || (cCos2.Equal(bestCos2) && cDist2.Cmp(bestDist2) < 0) {
					best = cand
					bestCos2 = cCos2
					bestDist2 = cDist2
				}
			}
			visible = best
		}
	}

	n := len(points)
	rebuilt := make(map[int]geom.Point, n+len(hole.Points)+2)
	next := 0
	hAdded := false
	for i := 0; i < n; i++ {
		p := points[i]
		rebuilt[next] = p
		next++

		if !hAdded && p.Equal(visible) {
			var other []geom.Point
			goFlag := false
			for j := len(hole.Points) - 1; j >= 0; j-- {
				hp := hole.Points[j]
				if hp.Equal(pm) {
					goFlag = true
				}
				if goFlag {
					rebuilt[next] = hp
					next++
				} else {
					other = append(other, hp)
				}
			}
			for _, hp := range other {
				rebuilt[next] = hp
				next++
			}
			rebuilt[next] = pm
			next++
			rebuilt[next] = visible
			next++
			hAdded = true
		}
	}

	return rebuilt
}

// simpleTriangulation ear-clips boundary (a simple, counter-clockwise,
// flattened polygon) with holes cut out of it, following
// ear_clipping_triangulation.rs's simple_triangulation: holes are bridged
// in one by one (farthest-right hole first) into zero-width channels
// through the boundary, then the merged loop is clipped ear by ear.
func simpleTriangulation(boundary geom.Polygon, holes []geom.Polygon) []geom.Triangle {
	var ts []geom.Triangle

	convex := make(map[int]struct{})
	reflex := make(map[int]struct{})
	prevOf := make(map[int]int)
	nextOf := make(map[int]int)

	points := make(map[int]geom.Point, len(boundary.Points))
	for i, p := range boundary.Points {
		points[i] = p
	}
	updateConvexAndReflexForAll(convex, reflex, points, prevOf, nextOf)

	type holeByX struct {
		maxX rational.Number
		poly geom.Polygon
	}
	ordered := make([]holeByX, len(holes))
	for i, h := range holes {
		ordered[i] = holeByX{maxX: polygonMaxXPoint(h).X, poly: h}
	}
	for i := 1; i < len(ordered); i++ {
		j := i
		for j > 0 && ordered[j-1].maxX.Cmp(ordered[j].maxX) < 0 {
			ordered[j-1], ordered[j] = ordered[j], ordered[j-1]
			j--
		}
	}

	for _, h := range ordered {
		points = bridgeToHole(points, nextOf, reflex, h.poly)
		convex = make(map[int]struct{})
		reflex = make(map[int]struct{})
		prevOf = make(map[int]int)
		nextOf = make(map[int]int)
		updateConvexAndReflexForAll(convex, reflex, points, prevOf, nextOf)
	}

	ears := make(map[int]struct{})
	for idx := range convex {
		updateEars(idx, ears, reflex, points, prevOf, nextOf)
	}

	for len(points) >= 3 {
		ear := smallestKey(ears)
		if ear == -1 {
			panic("triangulate: no ear available with vertices remaining (malformed or self-intersecting polygon)")
		}
		delete(ears, ear)
		delete(convex, ear)

		prev, next := prevOf[ear], nextOf[ear]
		ts = append(ts, geom.NewTriangle(points[prev], points[ear], points[next]))

		delete(points, ear)
		prevOf[next] = prev
		nextOf[prev] = next

		updateConvexAndReflex(prev, convex, reflex, points, prevOf, nextOf)
		updateConvexAndReflex(next, convex, reflex, points, prevOf, nextOf)

		for idx := range convex {
			updateEars(idx, ears, reflex, points, prevOf, nextOf)
		}
	}

	return ts
}
