package rational_test

import (
	"testing"

	"github.com/katalvlaran/meshbool/rational"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumber_FieldOps(t *testing.T) {
	cases := []struct {
		name     string
		a, b     rational.Number
		wantSum  rational.Number
		wantDiff rational.Number
		wantProd rational.Number
	}{
		{
			name:     "halves",
			a:        rational.FromInt64(1, 2),
			b:        rational.FromInt64(1, 2),
			wantSum:  rational.FromInt64(1, 1),
			wantDiff: rational.Zero,
			wantProd: rational.FromInt64(1, 4),
		},
		{
			name:     "thirds and negatives",
			a:        rational.FromInt64(1, 3),
			b:        rational.FromInt64(-2, 3),
			wantSum:  rational.FromInt64(-1, 3),
			wantDiff: rational.FromInt64(1, 1),
			wantProd: rational.FromInt64(-2, 9),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, tc.a.Add(tc.b).Equal(tc.wantSum))
			assert.True(t, tc.a.Sub(tc.b).Equal(tc.wantDiff))
			assert.True(t, tc.a.Mul(tc.b).Equal(tc.wantProd))
		})
	}
}

func TestNumber_SignPredicatesAgreeWithZeroComparison(t *testing.T) {
	values := []rational.Number{
		rational.Zero,
		rational.FromInt64(1, 7),
		rational.FromInt64(-1, 7),
		rational.FromInt64(0, 1),
	}
	for _, v := range values {
		assert.Equal(t, v.IsZero(), v.Cmp(rational.Zero) == 0)
		assert.Equal(t, v.IsPositive(), v.Cmp(rational.Zero) > 0)
		assert.Equal(t, v.IsNegative(), v.Cmp(rational.Zero) < 0)
	}
}

func TestNumber_EqualityIsExactAfterReduction(t *testing.T) {
	a := rational.FromInt64(2, 4)
	b := rational.FromInt64(1, 2)
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Key(), b.Key())
}

func TestNumber_ToFloat32RoundTripsForF32ExactValues(t *testing.T) {
	n := rational.FromFloat32(0.5)
	f, err := n.ToFloat32()
	require.NoError(t, err)
	assert.Equal(t, float32(0.5), f)
}

func TestNumber_ToFloat32OverflowFailsForLargeNonzero(t *testing.T) {
	huge := rational.FromInt64(1, 1)
	for i := 0; i < 80; i++ {
		huge = huge.Mul(rational.FromInt64(10, 1))
	}
	_, err := huge.ToFloat32()
	assert.ErrorIs(t, err, rational.ErrFloatOverflow)
}

func TestSinCosApproximateKnownValues(t *testing.T) {
	zero := rational.Zero
	s := rational.Sin(zero, 12)
	c := rational.Cos(zero, 12)
	assert.True(t, s.IsZero())
	assert.True(t, c.Equal(rational.One))
}

func TestSinCosMemoizeByAngle(t *testing.T) {
	angle := rational.FromInt64(1, 4)
	first := rational.Sin(angle, 10)
	second := rational.Sin(angle, 10)
	assert.True(t, first.Equal(second))
}
