package geom

// DegradationLevel classifies how degenerate a triangle's three points are.
type DegradationLevel int

const (
	// Proper means the three points are affinely independent.
	Proper DegradationLevel = 0
	// Collinear means the three points lie on a common line and are
	// pairwise distinct.
	Collinear DegradationLevel = 1
	// Coincident means at least two of the three points are equal.
	Coincident DegradationLevel = 2
)

// Triangle is three ordered points plus a normal cached from vertex order
// (edge0 x edge1, where edge0 = p1-p0 and edge1 = p2-p0).
type Triangle struct {
	Points [3]Point
	Normal Vector
}

// NewTriangle builds a Triangle from three points, computing and caching
// the normal. It does not reject degenerate input (callers that must
// reject degenerate triangles, e.g. Mesh.AddTriangle, check
// DegradationLevel() themselves) because some call sites construct a
// Triangle purely to test its degradation level.
func NewTriangle(p0, p1, p2 Point) Triangle {
	edge0 := p1.Sub(p0)
	edge1 := p2.Sub(p0)
	return Triangle{Points: [3]Point{p0, p1, p2}, Normal: edge0.CrossProduct(edge1)}
}

// DegradationLevel reports how degenerate t is: 0 if the three points are
// affinely independent, 1 if collinear but distinct, 2 if any two
// coincide.
func (t Triangle) DegradationLevel() DegradationLevel {
	p0, p1, p2 := t.Points[0], t.Points[1], t.Points[2]
	if p0.Equal(p1) || p1.Equal(p2) || p0.Equal(p2) {
		return Coincident
	}
	if p1.Sub(p0).IsCollinearTo(p2.Sub(p0)) {
		return Collinear
	}
	return Proper
}

// GenPlane returns the plane t lies in.
func (t Triangle) GenPlane() Plane {
	return NewPlane(t.Normal, t.Points[0])
}

// Reverse returns t with its orientation flipped. Swapping any two of a
// triangle's three vertices yields a cyclic rotation of the fully reversed
// vertex order, which carries the same (opposite) normal; this module
// always swaps the first two, matching the original kernel's
// get_reversed_triangle.
func (t Triangle) Reverse() Triangle {
	return NewTriangle(t.Points[1], t.Points[0], t.Points[2])
}

// Sides returns t's three edges as Segments, in vertex-cycle order
// (p0->p1, p1->p2, p2->p0).
func (t Triangle) Sides() [3]Segment {
	return [3]Segment{
		{Org: t.Points[0], Dest: t.Points[1]},
		{Org: t.Points[1], Dest: t.Points[2]},
		{Org: t.Points[2], Dest: t.Points[0]},
	}
}

// ContainsPoint reports whether p (assumed coplanar with t) lies within or
// on the boundary of t, via barycentric sign tests against each edge.
func (t Triangle) ContainsPoint(p Point) bool {
	n := t.Normal
	for _, side := range t.Sides() {
		edge := side.Dest.Sub(side.Org)
		toP := p.Sub(side.Org)
		if edge.CrossProduct(toP).DotProduct(n).IsNegative() {
			return false
		}
	}
	return true
}
