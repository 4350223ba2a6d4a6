package geom

import "github.com/katalvlaran/meshbool/rational"

// Polygon is an ordered list of coplanar points plus the plane's normal.
// Polygon operations (SignedArea, ContainsPoint) work in the polygon's own
// (X, Y) coordinates, so callers project to a z = const plane first (the
// retriangulator's plane-mapping step does this for every polygon it
// builds).
type Polygon struct {
	Points []Point
	Normal Vector
}

// NewPolygon builds a Polygon from points and normal.
func NewPolygon(points []Point, normal Vector) Polygon {
	return Polygon{Points: points, Normal: normal}
}

// AddPoint appends p to the polygon's point list.
func (p *Polygon) AddPoint(pt Point) {
	p.Points = append(p.Points, pt)
}

// SignedArea returns twice the signed area of the polygon's (X, Y)
// projection via the shoelace formula; positive for counter-clockwise
// point order, negative for clockwise.
func (p Polygon) SignedArea() rational.Number {
	sum := rational.Zero
	n := len(p.Points)
	for i := 0; i < n; i++ {
		a := p.Points[i]
		b := p.Points[(i+1)%n]
		sum = sum.Add(a.X.Mul(b.Y).Sub(b.X.Mul(a.Y)))
	}
	return sum
}

// ContainsPoint reports whether pt lies inside the polygon's (X, Y)
// projection, via a positive-X ray-casting parity test.
func (p Polygon) ContainsPoint(pt Point) bool {
	inside := false
	n := len(p.Points)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a := p.Points[i]
		b := p.Points[j]
		aboveA := a.Y.Cmp(pt.Y) > 0
		aboveB := b.Y.Cmp(pt.Y) > 0
		if aboveA == aboveB {
			continue
		}
		// Edge (a,b) straddles pt's horizontal line; find the X of the
		// crossing and compare against pt.X.
		t := pt.Y.Sub(a.Y).Div(b.Y.Sub(a.Y))
		crossX := a.X.Add(b.X.Sub(a.X).Mul(t))
		if crossX.Cmp(pt.X) > 0 {
			inside = !inside
		}
	}
	return inside
}

// Reversed returns p with its point order reversed (used to flip a loop's
// winding when its signed area came out negative).
func (p Polygon) Reversed() Polygon {
	out := make([]Point, len(p.Points))
	for i, pt := range p.Points {
		out[len(out)-1-i] = pt
	}
	return Polygon{Points: out, Normal: p.Normal}
}

// PolygonTreeNode is a recursive planar region: an outer Polygon with
// Children representing holes (and the children's own Children representing
// islands nested inside those holes, recursively). It is the data structure
// C7's loop-nesting step builds and C7's ear-clipping step consumes.
type PolygonTreeNode struct {
	Polygon  Polygon
	Children []*PolygonTreeNode
}

// NewPolygonTreeNode builds a leaf node (no children) from a polygon.
func NewPolygonTreeNode(poly Polygon) *PolygonTreeNode {
	return &PolygonTreeNode{Polygon: poly}
}

// AddChild attaches child as an immediate hole of n.
func (n *PolygonTreeNode) AddChild(child *PolygonTreeNode) {
	n.Children = append(n.Children, child)
}
