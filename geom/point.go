package geom

import "github.com/katalvlaran/meshbool/rational"

// Point is a position in three-dimensional space with exact rational
// coordinates. Points are totally ordered lexicographically by (X, Y, Z)
// and compare equal iff all three coordinates are exactly equal, so Point
// is safe to use as a map key after canonicalizing through Key().
type Point struct {
	X, Y, Z rational.Number
}

// NewPoint builds a Point from three coordinates.
func NewPoint(x, y, z rational.Number) Point {
	return Point{X: x, Y: y, Z: z}
}

// Equal reports exact coordinate equality.
func (p Point) Equal(q Point) bool {
	return p.X.Equal(q.X) && p.Y.Equal(q.Y) && p.Z.Equal(q.Z)
}

// Key returns a canonical string identifying p's exact coordinates,
// suitable as a map key.
func (p Point) Key() string {
	return p.X.Key() + "|" + p.Y.Key() + "|" + p.Z.Key()
}

// Less reports whether p sorts before q in lexicographic (X, Y, Z) order.
func (p Point) Less(q Point) bool {
	return p.Cmp(q) < 0
}

// Cmp returns -1, 0, or +1 comparing p and q lexicographically by
// (X, Y, Z).
func (p Point) Cmp(q Point) int {
	if c := p.X.Cmp(q.X); c != 0 {
		return c
	}
	if c := p.Y.Cmp(q.Y); c != 0 {
		return c
	}
	return p.Z.Cmp(q.Z)
}

// SwapXY returns p with its X and Y coordinates exchanged.
func (p Point) SwapXY() Point { return Point{p.Y, p.X, p.Z} }

// SwapYZ returns p with its Y and Z coordinates exchanged.
func (p Point) SwapYZ() Point { return Point{p.X, p.Z, p.Y} }

// SwapXZ returns p with its X and Z coordinates exchanged.
func (p Point) SwapXZ() Point { return Point{p.Z, p.Y, p.X} }

// Add returns the point obtained by displacing p by v.
func (p Point) Add(v Vector) Point {
	return Point{p.X.Add(v.X), p.Y.Add(v.Y), p.Z.Add(v.Z)}
}

// Sub returns the free vector from q to p.
func (p Point) Sub(q Point) Vector {
	return Vector{p.X.Sub(q.X), p.Y.Sub(q.Y), p.Z.Sub(q.Z)}
}

// PointPosition classifies a point against a directed segment (org, dest)
// in the plane spanned by their X, Y coordinates (callers project to a
// z = const plane before classifying, per C7's plane-mapping step).
type PointPosition int

const (
	// Left means the point lies strictly to the left of the directed
	// segment org->dest.
	Left PointPosition = iota
	// Right means the point lies strictly to the right.
	Right
	// Behind means the point is collinear with org->dest but precedes org.
	Behind
	// Beyond means the point is collinear but lies past dest.
	Beyond
	// Org means the point coincides with org.
	Org
	// Dest means the point coincides with dest.
	Dest
	// Between means the point is collinear and strictly between org and
	// dest.
	Between
)

// Classify classifies p against the directed segment (org, dest) using the
// 2D signed area of (dest-org, p-org) projected onto the X/Y plane, with
// dot-product fallbacks for the degenerate collinear cases. This is the
// direct analogue of the original kernel's Point::classify.
func Classify(p, org, dest Point) PointPosition {
	a := dest.Sub(org) // direction vector
	b := p.Sub(org)     // vector to the point under test

	sa := a.X.Mul(b.Y).Sub(b.X.Mul(a.Y))
	if sa.IsPositive() {
		return Left
	}
	if sa.IsNegative() {
		return Right
	}

	// Collinear: disambiguate via position along the line.
	dot := a.X.Mul(b.X).Add(a.Y.Mul(b.Y)).Add(a.Z.Mul(b.Z))
	if dot.IsNegative() {
		return Behind
	}

	lenA := a.X.Mul(a.X).Add(a.Y.Mul(a.Y)).Add(a.Z.Mul(a.Z))
	lenB := b.X.Mul(b.X).Add(b.Y.Mul(b.Y)).Add(b.Z.Mul(b.Z))
	if lenB.Cmp(lenA) > 0 {
		return Beyond
	}
	if p.Equal(org) {
		return Org
	}
	if p.Equal(dest) {
		return Dest
	}
	return Between
}
