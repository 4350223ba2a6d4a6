// Package rational provides an arbitrary-precision rational scalar, the
// exact-arithmetic foundation every geometric predicate in this module is
// built on.
//
// Number wraps math/big.Rat and adds the sign/zero predicates, ordering,
// and canonical hashing that the geometric layer needs: every predicate
// decision in this module (point classification, intersection tests,
// triangle degradation) ultimately reduces to comparing a Number against
// zero, never to a tolerance-based float comparison.
//
//	n := rational.FromInt64(1, 3)          // 1/3
//	m := rational.FromFloat64(0.5)          // 1/2, exact
//	sum := n.Add(m)                         // 5/6, exact
//	sum.IsZero()                            // false
//
// Float conversion (ToFloat32) is provided only for serialization (the STL
// codec writes lossy 32-bit floats); no predicate in this module ever
// compares converted floats.
package rational
