package triangulate

import (
	"sort"

	"github.com/katalvlaran/meshbool/geom"
)

// extractFaces turns a triangle plus a set of coplanar chords cutting
// through it into the bounded faces of the resulting planar subdivision,
// via a most-left-turning walk around each vertex's cyclically-sorted
// neighbor list: the same loop-extraction idiom triangle_x_triangle.rs's
// PointDirGraph uses for coplanar polygon boundaries, applied here to a
// triangle's own interior subdivision instead. Each triangle side is
// first split at every cut endpoint that lies strictly between its
// corners, so a chord landing mid-edge subdivides the boundary instead of
// dangling off it.
func extractFaces(t geom.Triangle, cuts []geom.Segment) []geom.Polygon {
	vertices := make(map[string]geom.Point)
	adjSet := make(map[string]map[string]struct{})

	addEdge := func(a, b geom.Point) {
		ka, kb := a.Key(), b.Key()
		vertices[ka] = a
		vertices[kb] = b
		if adjSet[ka] == nil {
			adjSet[ka] = make(map[string]struct{})
		}
		if adjSet[kb] == nil {
			adjSet[kb] = make(map[string]struct{})
		}
		adjSet[ka][kb] = struct{}{}
		adjSet[kb][ka] = struct{}{}
	}

	// A cut segment's endpoint often lands in the interior of a triangle
	// side rather than at one of its corners. Adding the side whole in
	// that case would leave the cut endpoint a degree-1 dangling vertex,
	// which a face walk cannot turn through: the side must instead be
	// split at every such endpoint and re-added as its sub-segments.
	for _, side := range t.Sides() {
		onSide := map[string]geom.Point{side.Org.Key(): side.Org, side.Dest.Key(): side.Dest}
		for _, s := range cuts {
			for _, p := range [2]geom.Point{s.Org, s.Dest} {
				if geom.Classify(p, side.Org, side.Dest) == geom.Between {
					onSide[p.Key()] = p
				}
			}
		}

		ordered := make([]geom.Point, 0, len(onSide))
		for _, p := range onSide {
			ordered = append(ordered, p)
		}
		sort.Slice(ordered, func(i, j int) bool {
			return side.AlongParameter(ordered[i]).Cmp(side.AlongParameter(ordered[j])) < 0
		})
		for i := 0; i+1 < len(ordered); i++ {
			addEdge(ordered[i], ordered[i+1])
		}
	}
	for _, s := range cuts {
		addEdge(s.Org, s.Dest)
	}

	adjacency := make(map[string][]string, len(adjSet))
	for k, set := range adjSet {
		list := make([]string, 0, len(set))
		for n := range set {
			list = append(list, n)
		}
		origin := vertices[k]
		sort.Slice(list, func(i, j int) bool {
			return angleLess(vertices[list[i]].Sub(origin), vertices[list[j]].Sub(origin))
		})
		adjacency[k] = list
	}

	visited := make(map[string]map[string]bool)
	markVisited := func(a, b string) {
		if visited[a] == nil {
			visited[a] = make(map[string]bool)
		}
		visited[a][b] = true
	}
	isVisited := func(a, b string) bool {
		return visited[a] != nil && visited[a][b]
	}

	// nextInFace picks, at cur (arrived from prev), the neighbor
	// immediately clockwise-adjacent to the reverse edge (cur->prev) in
	// cur's counter-clockwise-sorted neighbor list, continuing the walk
	// around whichever face lies on the consistent side of every
	// directed edge this function is called on.
	nextInFace := func(prev, cur string) string {
		nbrs := adjacency[cur]
		pos := -1
		for i, n := range nbrs {
			if n == prev {
				pos = i
				break
			}
		}
		return nbrs[(pos-1+len(nbrs))%len(nbrs)]
	}

	keys := make([]string, 0, len(vertices))
	for k := range vertices {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var faces [][]string
	for _, u := range keys {
		for _, v := range adjacency[u] {
			if isVisited(u, v) {
				continue
			}
			face := []string{u}
			prev, cur := u, v
			for {
				face = append(face, cur)
				markVisited(prev, cur)
				nxt := nextInFace(prev, cur)
				prev, cur = cur, nxt
				if prev == u && cur == v {
					break
				}
			}
			if len(face) > 1 && face[len(face)-1] == face[0] {
				face = face[:len(face)-1]
			}
			faces = append(faces, face)
		}
	}

	// The walk keeps each face on its left, so every bounded face comes
	// out counter-clockwise (positive signed area) in the X/Y frame,
	// whichever way the input triangle itself winds there; the lone
	// unbounded outer face traces the outer boundary clockwise. When a
	// genuine subdivision exists, the bounded faces outnumber that single
	// outer face, so the majority sign identifies them; when no interior
	// subdivision occurred the two signs tie and the positive face is kept.
	wantSign := 1

	type scoredFace struct {
		poly geom.Polygon
		sgn  int
	}
	var scored []scoredFace
	for _, face := range faces {
		if len(face) < 3 {
			continue
		}
		pts := make([]geom.Point, len(face))
		for i, k := range face {
			pts[i] = vertices[k]
		}
		poly := geom.NewPolygon(pts, t.Normal)
		scored = append(scored, scoredFace{poly: poly, sgn: sign(poly.SignedArea())})
	}

	posCount, negCount := 0, 0
	for _, f := range scored {
		switch {
		case f.sgn > 0:
			posCount++
		case f.sgn < 0:
			negCount++
		}
	}

	keepSign := wantSign
	if posCount != negCount {
		if posCount > negCount {
			keepSign = 1
		} else {
			keepSign = -1
		}
	}

	var out []geom.Polygon
	for _, f := range scored {
		if f.sgn == keepSign {
			out = append(out, f.poly)
		}
	}
	return out
}

// half splits the plane into [0, pi) and [pi, 2pi) halves so angleLess can
// give vectors a total cyclic order without a transcendental atan2.
func half(v geom.Vector) int {
	if v.Y.IsPositive() || (v.Y.IsZero() && v.X.IsPositive()) {
		return 0
	}
	return 1
}

// angleLess orders vectors by increasing counter-clockwise angle from the
// positive X axis.
func angleLess(a, b geom.Vector) bool {
	ha, hb := half(a), half(b)
	if ha != hb {
		return ha < hb
	}
	cross := a.X.Mul(b.Y).Sub(a.Y.Mul(b.X))
	return cross.IsPositive()
}
