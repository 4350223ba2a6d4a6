package intersect

import (
	"fmt"

	"github.com/katalvlaran/meshbool/geom"
	"github.com/katalvlaran/meshbool/linalg"
	"github.com/katalvlaran/meshbool/rational"
)

// PlaneXPlaneKind enumerates every outcome PlaneXPlane can report.
type PlaneXPlaneKind int

const (
	// PPCoincident means the planes are the same plane.
	PPCoincident PlaneXPlaneKind = iota
	// PPParallel means the planes are parallel but distinct.
	PPParallel
	// PPIntersecting means the planes cross in a line.
	PPIntersecting
)

// PlaneXPlaneResult is the tagged result of PlaneXPlane. Line is populated
// only when Kind == PPIntersecting.
type PlaneXPlaneResult struct {
	Kind PlaneXPlaneKind
	Line geom.Line
}

// PlaneXPlane computes the relative position of two planes, and the line
// they cross in if they do.
//
// The crossing line's direction is a = n1 x n2. To pin down a point on the
// line, a third, synthetic equation is added to the 3x3 system
// [n1; n2; synthetic] * u = [-d1, -d2, k]: whichever of a's components is
// nonzero selects which axis-aligned unit row (and matching right-hand
// side, plane1.Point's coordinate on that axis) keeps the system
// well-posed, preferring Z, then Y, then X.
func PlaneXPlane(p1, p2 geom.Plane) PlaneXPlaneResult {
	a := p1.Normal.CrossProduct(p2.Normal)
	if a.IsZero() {
		if p2.ContainsPoint(p1.Point) {
			return PlaneXPlaneResult{Kind: PPCoincident}
		}
		return PlaneXPlaneResult{Kind: PPParallel}
	}

	var synthetic [3]rational.Number
	var k rational.Number
	switch {
	case !a.Z.IsZero():
		synthetic = [3]rational.Number{rational.Zero, rational.Zero, rational.One}
		k = p1.Point.Z
	case !a.Y.IsZero():
		synthetic = [3]rational.Number{rational.Zero, rational.One, rational.Zero}
		k = p1.Point.Y
	default:
		synthetic = [3]rational.Number{rational.One, rational.Zero, rational.Zero}
		k = p1.Point.X
	}

	mat := linalg.Matrix3{
		{p1.Normal.X, p1.Normal.Y, p1.Normal.Z},
		{p2.Normal.X, p2.Normal.Y, p2.Normal.Z},
		synthetic,
	}
	rhs := linalg.Vector3{p1.D.Neg(), p2.D.Neg(), k}

	x, err := linalg.Solve3x3(mat, rhs)
	if err != nil {
		panic(fmt.Errorf("intersect: PlaneXPlane: %w", err))
	}

	u := geom.NewPoint(x[0], x[1], x[2])
	lDest := u.Add(a)
	line, err := geom.NewLine(u, lDest)
	if err != nil {
		panic(fmt.Errorf("intersect: PlaneXPlane: %w", err))
	}
	return PlaneXPlaneResult{Kind: PPIntersecting, Line: line}
}
