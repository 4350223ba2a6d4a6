package intersect

import (
	"fmt"

	"github.com/katalvlaran/meshbool/geom"
	"github.com/katalvlaran/meshbool/linalg"
)

// LineXLineKind enumerates every outcome LineXLine can report.
type LineXLineKind int

const (
	// Skew means the lines do not lie in a common plane.
	Skew LineXLineKind = iota
	// LLCollinear means the lines are parallel but distinct.
	LLCollinear
	// LLCoincident means the lines are the same line.
	LLCoincident
	// LLIntersecting means the lines cross at exactly one point.
	LLIntersecting
)

// LineXLineResult is the tagged result of LineXLine. Point is populated only
// when Kind == LLIntersecting.
type LineXLineResult struct {
	Kind  LineXLineKind
	Point geom.Point
}

// LineXLine classifies the relative position of two lines and, if they
// cross, computes the intersection point.
//
// The crossing case is solved via an augmented 3x3 linear system: the
// columns are l1, -l2 and a third, auxiliary column nv = l1 x l2, which is
// never collinear with l1 or l2 and so keeps the system well-posed
// regardless of which two of the three coordinate axes the lines actually
// vary along. Only the first solution component (the parameter along a)
// is used.
func LineXLine(a, b geom.Line) LineXLineResult {
	m1 := a.Org
	l1 := a.Dest.Sub(a.Org)
	m2 := b.Org
	l2 := b.Dest.Sub(b.Org)

	m := b.Org.Sub(a.Org)
	if m.IsZero() {
		m = b.Org.Sub(a.Dest)
	}

	if !m.DotProduct(l1.CrossProduct(l2)).IsZero() {
		return LineXLineResult{Kind: Skew}
	}

	cCond := l1.IsCollinearTo(m) && l2.IsCollinearTo(m)
	if cCond {
		return LineXLineResult{Kind: LLCoincident}
	}

	pCond := l1.IsCollinearTo(l2)
	if !cCond && pCond {
		return LineXLineResult{Kind: LLCollinear}
	}

	nv := l1.CrossProduct(l2)
	mat := linalg.Matrix3{
		{l1.X, l2.X.Neg(), nv.X},
		{l1.Y, l2.Y.Neg(), nv.Y},
		{l1.Z, l2.Z.Neg(), nv.Z},
	}
	rhs := linalg.Vector3{
		m2.X.Sub(m1.X).Add(nv.X),
		m2.Y.Sub(m1.Y).Add(nv.Y),
		m2.Z.Sub(m1.Z).Add(nv.Z),
	}
	x, err := linalg.Solve3x3(mat, rhs)
	if err != nil {
		// The skew/coincidence/parallel checks above already rule out
		// every configuration that could make this system singular;
		// reaching here means an earlier precondition was violated.
		panic(fmt.Errorf("intersect: LineXLine: %w", err))
	}

	p := m1.Add(l1.Scale(x[0]))
	return LineXLineResult{Kind: LLIntersecting, Point: p}
}
