package geom

import "github.com/katalvlaran/meshbool/rational"

// Plane is a normal vector plus a point on the plane; D is the derived
// scalar offset so that Normal . x + D = 0 for every point x on the plane.
type Plane struct {
	Normal Vector
	Point  Point
	D      rational.Number
}

// NewPlane builds a Plane from a normal and a point it passes through.
func NewPlane(normal Vector, point Point) Plane {
	d := normal.DotProduct(point.Sub(Point{})).Neg()
	return Plane{Normal: normal, Point: point, D: d}
}

// NewPlaneFrom3Points builds the plane through p0, p1, p2, with normal
// (p1-p0) x (p2-p0). Returns ErrDegenerateTriangle if the points are
// collinear (the cross product vanishes).
func NewPlaneFrom3Points(p0, p1, p2 Point) (Plane, error) {
	e1 := p1.Sub(p0)
	e2 := p2.Sub(p0)
	n := e1.CrossProduct(e2)
	if n.IsZero() {
		return Plane{}, ErrDegenerateTriangle
	}
	return NewPlane(n, p0), nil
}

// SignedDistance returns Normal . p + D: zero exactly when p lies on the
// plane, positive/negative indicating which side p falls on.
func (pl Plane) SignedDistance(p Point) rational.Number {
	return pl.Normal.DotProduct(p.Sub(Point{})).Add(pl.D)
}

// ContainsPoint reports whether p lies exactly on the plane.
func (pl Plane) ContainsPoint(p Point) bool {
	return pl.SignedDistance(p).IsZero()
}

// SwapXY returns the plane with its normal and point's X/Y coordinates
// exchanged (D is recomputed, since swapping axes changes the offset).
func (pl Plane) SwapXY() Plane {
	return NewPlane(pl.Normal.SwapXY(), pl.Point.SwapXY())
}

// SwapYZ is SwapXY's Y/Z counterpart.
func (pl Plane) SwapYZ() Plane {
	return NewPlane(pl.Normal.SwapYZ(), pl.Point.SwapYZ())
}

// SwapXZ is SwapXY's X/Z counterpart.
func (pl Plane) SwapXZ() Plane {
	return NewPlane(pl.Normal.SwapXZ(), pl.Point.SwapXZ())
}
