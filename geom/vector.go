package geom

import "github.com/katalvlaran/meshbool/rational"

// Vector is a free vector with exact rational components.
type Vector struct {
	X, Y, Z rational.Number
}

// NewVector builds a Vector from three components.
func NewVector(x, y, z rational.Number) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// IsZero reports whether every component is exactly zero.
func (v Vector) IsZero() bool {
	return v.X.IsZero() && v.Y.IsZero() && v.Z.IsZero()
}

// Add returns v + w.
func (v Vector) Add(w Vector) Vector {
	return Vector{v.X.Add(w.X), v.Y.Add(w.Y), v.Z.Add(w.Z)}
}

// Sub returns v - w.
func (v Vector) Sub(w Vector) Vector {
	return Vector{v.X.Sub(w.X), v.Y.Sub(w.Y), v.Z.Sub(w.Z)}
}

// Scale returns v scaled by s.
func (v Vector) Scale(s rational.Number) Vector {
	return Vector{v.X.Mul(s), v.Y.Mul(s), v.Z.Mul(s)}
}

// Neg returns -v.
func (v Vector) Neg() Vector {
	return Vector{v.X.Neg(), v.Y.Neg(), v.Z.Neg()}
}

// DotProduct returns v . w.
func (v Vector) DotProduct(w Vector) rational.Number {
	return v.X.Mul(w.X).Add(v.Y.Mul(w.Y)).Add(v.Z.Mul(w.Z))
}

// CrossProduct returns v x w.
func (v Vector) CrossProduct(w Vector) Vector {
	return Vector{
		X: v.Y.Mul(w.Z).Sub(v.Z.Mul(w.Y)),
		Y: v.Z.Mul(w.X).Sub(v.X.Mul(w.Z)),
		Z: v.X.Mul(w.Y).Sub(v.Y.Mul(w.X)),
	}
}

// MixedProduct returns v . (a x b), the scalar triple product.
func (v Vector) MixedProduct(a, b Vector) rational.Number {
	return v.DotProduct(a.CrossProduct(b))
}

// IsCollinearTo reports whether v and w are parallel (their cross product
// is the zero vector), which for exact rationals is an exact test.
func (v Vector) IsCollinearTo(w Vector) bool {
	return v.CrossProduct(w).IsZero()
}

// SquaredLength returns v . v. The original kernel's Vector::length
// likewise returns the squared length rather than a true Euclidean norm,
// since no square root exists over the exact rational field; callers that
// need relative magnitude comparisons use this directly.
func (v Vector) SquaredLength() rational.Number {
	return v.DotProduct(v)
}

// GenPoint returns the point obtained by treating v as a displacement from
// the origin.
func (v Vector) GenPoint() Point {
	return Point{v.X, v.Y, v.Z}
}

// SwapXY returns v with its X and Y components exchanged.
func (v Vector) SwapXY() Vector { return Vector{v.Y, v.X, v.Z} }

// SwapYZ returns v with its Y and Z components exchanged.
func (v Vector) SwapYZ() Vector { return Vector{v.X, v.Z, v.Y} }

// SwapXZ returns v with its X and Z components exchanged.
func (v Vector) SwapXZ() Vector { return Vector{v.Z, v.Y, v.X} }
