package intersect

import "github.com/katalvlaran/meshbool/geom"

// LineXPlaneKind enumerates every outcome LineXPlane can report.
type LineXPlaneKind int

const (
	// LineContainedInPlane means every point of the line lies on the
	// plane.
	LineContainedInPlane LineXPlaneKind = iota
	// LPParallel means the line is parallel to the plane but disjoint
	// from it.
	LPParallel
	// LPIntersecting means the line crosses the plane at one point.
	LPIntersecting
)

// LineXPlaneResult is the tagged result of LineXPlane. Point is populated
// only when Kind == LPIntersecting.
type LineXPlaneResult struct {
	Kind  LineXPlaneKind
	Point geom.Point
}

// LineXPlane computes the closed-form intersection of a line with a plane:
// no linear solver is needed since the line is already parameterized.
func LineXPlane(l geom.Line, pl geom.Plane) LineXPlaneResult {
	dir := l.Direction()
	dp := dir.DotProduct(pl.Normal)
	numerator := pl.Normal.DotProduct(l.Org.Sub(pl.Point))

	if dp.IsZero() {
		if numerator.IsZero() {
			return LineXPlaneResult{Kind: LineContainedInPlane}
		}
		return LineXPlaneResult{Kind: LPParallel}
	}

	d := numerator.Neg().Div(dp)
	point := l.Org.Add(dir.Scale(d))
	return LineXPlaneResult{Kind: LPIntersecting, Point: point}
}
