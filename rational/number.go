package rational

import (
	"errors"
	"fmt"
	"math"
	"math/big"
)

// ErrFloatOverflow is returned by ToFloat32 when a Number's magnitude
// exceeds the range representable by a 32-bit float and is not close
// enough to zero to round down safely.
var ErrFloatOverflow = errors.New("rational: magnitude exceeds float32 range")

// Number is an immutable arbitrary-precision rational scalar. The zero
// value is the exact rational zero and is ready to use.
type Number struct {
	r big.Rat
}

// Zero is the exact rational zero.
var Zero = Number{}

// One is the exact rational one.
var One = FromInt64(1, 1)

// FromInt64 builds num/den, reduced to lowest terms. Panics if den is zero:
// a 0-denominator rational has no value to represent.
func FromInt64(num, den int64) Number {
	if den == 0 {
		panic("rational: zero denominator")
	}
	var n Number
	n.r.SetFrac64(num, den)
	return n
}

// FromFloat64 builds the exact rational equal to f. f must be finite.
func FromFloat64(f float64) Number {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		panic("rational: non-finite float64")
	}
	var n Number
	n.r.SetFloat64(f)
	return n
}

// FromFloat32 builds the exact rational equal to f, via an exact widening
// to float64 first (float32 -> float64 is always exact). Used by the STL
// codec to convert serialized IEEE-754 coordinates without losing
// precision on read.
func FromFloat32(f float32) Number {
	return FromFloat64(float64(f))
}

// FromBigRat adopts r by value (defensive copy).
func FromBigRat(r *big.Rat) Number {
	var n Number
	n.r.Set(r)
	return n
}

// Add returns a + b.
func (a Number) Add(b Number) Number {
	var n Number
	n.r.Add(&a.r, &b.r)
	return n
}

// Sub returns a - b.
func (a Number) Sub(b Number) Number {
	var n Number
	n.r.Sub(&a.r, &b.r)
	return n
}

// Mul returns a * b.
func (a Number) Mul(b Number) Number {
	var n Number
	n.r.Mul(&a.r, &b.r)
	return n
}

// Div returns a / b. Panics on division by zero; callers in this module
// only ever divide by values already known nonzero via IsZero checks.
func (a Number) Div(b Number) Number {
	if b.IsZero() {
		panic("rational: division by zero")
	}
	var n Number
	n.r.Quo(&a.r, &b.r)
	return n
}

// Neg returns -a.
func (a Number) Neg() Number {
	var n Number
	n.r.Neg(&a.r)
	return n
}

// Abs returns |a|.
func (a Number) Abs() Number {
	var n Number
	n.r.Abs(&a.r)
	return n
}

// IsZero reports whether a is exactly zero.
func (a Number) IsZero() bool {
	return a.r.Sign() == 0
}

// IsPositive reports whether a is strictly greater than zero.
func (a Number) IsPositive() bool {
	return a.r.Sign() > 0
}

// IsNegative reports whether a is strictly less than zero.
func (a Number) IsNegative() bool {
	return a.r.Sign() < 0
}

// Cmp returns -1, 0, or +1 as a is less than, equal to, or greater than b.
func (a Number) Cmp(b Number) int {
	return a.r.Cmp(&b.r)
}

// Equal reports whether a and b are the same exact rational. Two Numbers
// compare equal iff their reduced numerator and denominator both match;
// big.Rat always stores values in reduced form, so Cmp == 0 is sufficient.
func (a Number) Equal(b Number) bool {
	return a.r.Cmp(&b.r) == 0
}

// Key returns a canonical string uniquely identifying a's exact value,
// suitable as a map key (e.g. for Point's hashing by exact coordinate
// value). big.Rat.RatString always renders the reduced form, so two
// equal Numbers always produce the same Key.
func (a Number) Key() string {
	return a.r.RatString()
}

// String renders a in "num/den" (or integer) form.
func (a Number) String() string {
	return a.r.RatString()
}

// ToFloat32 converts a to a 32-bit float for serialization. If a's
// magnitude exceeds the float32 range, it returns 0 with no error when a is
// itself near enough to zero to round down, and ErrFloatOverflow otherwise
// (base spec 4.1: "degrades gracefully ... return 0 if near zero, fail
// otherwise").
func (a Number) ToFloat32() (float32, error) {
	f64, _ := a.r.Float64()
	f32 := float32(f64)
	if !math.IsInf(float64(f32), 0) {
		return f32, nil
	}
	// f64 overflowed float32 range: only acceptable if a itself is tiny,
	// which cannot produce an Inf from Float64->float32 conversion; an
	// Inf here always means genuine overflow of a large magnitude.
	if a.IsZero() {
		return 0, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrFloatOverflow, a.String())
}

// MustToFloat32 is ToFloat32 without the error return, for call sites that
// have already validated range (e.g. STL writing of bounded model
// coordinates). It panics on overflow.
func (a Number) MustToFloat32() float32 {
	f, err := a.ToFloat32()
	if err != nil {
		panic(err)
	}
	return f
}
