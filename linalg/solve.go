package linalg

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/meshbool/rational"
)

// ErrSingularMatrix is returned by Solve3x3 when no pivot candidate in a
// column is nonzero. Per this module's failure-semantics design, a caller
// that reaches a singular 3x3 system has already violated a precondition a
// higher-level predicate should have short-circuited (e.g. truly parallel
// lines reaching the solver instead of being caught by an earlier
// collinearity check); treat it as a programmer-error path, not a
// recoverable condition.
var ErrSingularMatrix = errors.New("linalg: singular matrix")

// Matrix3 is a 3x3 matrix of exact rationals, row-major.
type Matrix3 [3][3]rational.Number

// Vector3 is a 3-element column vector of exact rationals.
type Vector3 [3]rational.Number

// Solve3x3 solves m*x = b for x via Gaussian elimination with partial
// pivoting, entirely over exact rationals so no rounding error ever
// accumulates. Returns ErrSingularMatrix if m has no invertible pivot.
//
// The pivot search below intentionally scans the full remaining column and
// keeps the LAST nonzero candidate row found, rather than stopping at the
// first one, matching the source algorithm's Matrix::solve exactly; for
// exact arithmetic this is a legitimate (if unusual) choice of pivot and
// does not affect correctness, only which row ends up swapped to the
// diagonal.
func Solve3x3(m Matrix3, b Vector3) (Vector3, error) {
	const n = 3

	// Stage 1: forward elimination with partial pivoting.
	for mainIdx := 0; mainIdx < n-1; mainIdx++ {
		if m[mainIdx][mainIdx].IsZero() {
			newMainIdx := mainIdx
			for i := mainIdx; i < n; i++ {
				if !m[i][mainIdx].IsZero() {
					newMainIdx = i
				}
			}
			if newMainIdx == mainIdx {
				return Vector3{}, fmt.Errorf("%w: no pivot in column %d", ErrSingularMatrix, mainIdx)
			}
			m[mainIdx], m[newMainIdx] = m[newMainIdx], m[mainIdx]
			b[mainIdx], b[newMainIdx] = b[newMainIdx], b[mainIdx]
		}
		mainValue := m[mainIdx][mainIdx]

		// Stage 2: eliminate the column below the pivot.
		for i := mainIdx + 1; i < n; i++ {
			valueUnderMain := m[i][mainIdx]
			if valueUnderMain.IsZero() {
				continue
			}
			factor := valueUnderMain.Div(mainValue).Neg()
			for j := mainIdx; j < n; j++ {
				m[i][j] = m[i][j].Add(m[mainIdx][j].Mul(factor))
			}
			b[i] = b[i].Add(b[mainIdx].Mul(factor))
		}
	}

	if m[n-1][n-1].IsZero() {
		return Vector3{}, fmt.Errorf("%w: no pivot in column %d", ErrSingularMatrix, n-1)
	}

	// Stage 3: back substitution, bottom row upward.
	var x Vector3
	for i := n - 1; i >= 0; i-- {
		x[i] = b[i]
		for j := i + 1; j < n; j++ {
			x[i] = x[i].Sub(m[i][j].Mul(x[j]))
		}
		x[i] = x[i].Div(m[i][i])
	}
	return x, nil
}
