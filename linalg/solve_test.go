package linalg_test

import (
	"testing"

	"github.com/katalvlaran/meshbool/linalg"
	"github.com/katalvlaran/meshbool/rational"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ri(v int64) rational.Number { return rational.FromInt64(v, 1) }

func TestSolve3x3_KnownSystem(t *testing.T) {
	m := linalg.Matrix3{
		{ri(1), ri(2), ri(3)},
		{ri(1), ri(3), ri(3)},
		{ri(0), ri(1), ri(1)},
	}
	b := linalg.Vector3{ri(9), ri(11), ri(3)}

	x, err := linalg.Solve3x3(m, b)
	require.NoError(t, err)
	assert.True(t, x[0].Equal(ri(2)))
	assert.True(t, x[1].Equal(ri(2)))
	assert.True(t, x[2].Equal(ri(1)))
}

func TestSolve3x3_RequiresPivotSwap(t *testing.T) {
	m := linalg.Matrix3{
		{ri(0), ri(1), ri(2)},
		{ri(0), ri(0), ri(1)},
		{ri(2), ri(0), ri(1)},
	}
	b := linalg.Vector3{ri(4), ri(1), ri(7)}

	x, err := linalg.Solve3x3(m, b)
	require.NoError(t, err)
	assert.True(t, x[0].Equal(ri(3)))
	assert.True(t, x[1].Equal(ri(2)))
	assert.True(t, x[2].Equal(ri(1)))
}

func TestSolve3x3_SingularReturnsError(t *testing.T) {
	m := linalg.Matrix3{
		{ri(1), ri(2), ri(3)},
		{ri(2), ri(4), ri(6)},
		{ri(0), ri(1), ri(1)},
	}
	b := linalg.Vector3{ri(1), ri(2), ri(1)}

	_, err := linalg.Solve3x3(m, b)
	assert.ErrorIs(t, err, linalg.ErrSingularMatrix)
}
