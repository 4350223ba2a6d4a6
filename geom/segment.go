package geom

import "github.com/katalvlaran/meshbool/rational"

// Segment is an unordered pair of distinct points. Equality is
// orientation-insensitive: a Segment{Org: p, Dest: q} equals
// Segment{Org: q, Dest: p}. Ordering (for use as a deterministic map key)
// is defined over the canonical (smaller, larger) representative.
type Segment struct {
	Org, Dest Point
}

// NewSegment builds a Segment, rejecting coincident endpoints.
func NewSegment(org, dest Point) (Segment, error) {
	if org.Equal(dest) {
		return Segment{}, ErrDegenerateSegment
	}
	return Segment{Org: org, Dest: dest}, nil
}

// Flip returns the segment with endpoints swapped.
func (s Segment) Flip() Segment {
	return Segment{Org: s.Dest, Dest: s.Org}
}

// Canonical returns s, or s.Flip() if that orders Org before Dest
// lexicographically, giving a direction-independent representative.
func (s Segment) Canonical() Segment {
	if s.Dest.Less(s.Org) {
		return s.Flip()
	}
	return s
}

// Equal reports orientation-insensitive equality.
func (s Segment) Equal(o Segment) bool {
	return (s.Org.Equal(o.Org) && s.Dest.Equal(o.Dest)) ||
		(s.Org.Equal(o.Dest) && s.Dest.Equal(o.Org))
}

// Key returns a canonical, orientation-insensitive map key.
func (s Segment) Key() string {
	c := s.Canonical()
	return c.Org.Key() + "->" + c.Dest.Key()
}

// GenLine returns the infinite Line through s's endpoints.
func (s Segment) GenLine() Line {
	l, err := NewLine(s.Org, s.Dest)
	if err != nil {
		// s's own constructor already rejected coincident endpoints.
		panic(err)
	}
	return l
}

// ContainsPoint reports whether p, assumed collinear with s, lies within
// the closed span [Org, Dest] (inclusive of both endpoints).
func (s Segment) ContainsPoint(p Point) bool {
	switch Classify(p, s.Org, s.Dest) {
	case Org, Dest, Between:
		return true
	default:
		return false
	}
}

// Projection returns the foot of the perpendicular from p onto the
// infinite line through s. If the direction is orthogonal to (p - Org), the
// foot is Org itself.
func (s Segment) Projection(p Point) Point {
	dir := s.Dest.Sub(s.Org)
	toP := p.Sub(s.Org)
	denom := dir.DotProduct(dir)
	if denom.IsZero() {
		return s.Org
	}
	t := dir.DotProduct(toP).Div(denom)
	if t.IsZero() {
		return s.Org
	}
	return s.Org.Add(dir.Scale(t))
}

// AlongParameter returns the scalar t such that p = Org + t*(Dest - Org),
// computed from whichever coordinate axis has a nonzero delta between Org
// and Dest. p is assumed to lie on the line through s (callers only invoke
// this after a collinearity test). Panics if s is degenerate (the
// constructor already prevents that) since no axis would then have a
// nonzero delta.
func (s Segment) AlongParameter(p Point) rational.Number {
	switch {
	case !s.Dest.X.Equal(s.Org.X):
		return p.X.Sub(s.Org.X).Div(s.Dest.X.Sub(s.Org.X))
	case !s.Dest.Y.Equal(s.Org.Y):
		return p.Y.Sub(s.Org.Y).Div(s.Dest.Y.Sub(s.Org.Y))
	case !s.Dest.Z.Equal(s.Org.Z):
		return p.Z.Sub(s.Org.Z).Div(s.Dest.Z.Sub(s.Org.Z))
	default:
		panic("geom: segment with coincident points is not allowed here")
	}
}
