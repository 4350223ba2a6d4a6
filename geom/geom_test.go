package geom_test

import (
	"testing"

	"github.com/katalvlaran/meshbool/geom"
	"github.com/katalvlaran/meshbool/rational"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func n(v int64) rational.Number { return rational.FromInt64(v, 1) }

func pt(x, y, z int64) geom.Point { return geom.NewPoint(n(x), n(y), n(z)) }

func TestClassify(t *testing.T) {
	org := pt(0, 0, 0)
	dest := pt(10, 0, 0)

	cases := []struct {
		name string
		p    geom.Point
		want geom.PointPosition
	}{
		{"left", pt(5, 5, 0), geom.Left},
		{"right", pt(5, -5, 0), geom.Right},
		{"behind", pt(-5, 0, 0), geom.Behind},
		{"beyond", pt(15, 0, 0), geom.Beyond},
		{"org", org, geom.Org},
		{"dest", dest, geom.Dest},
		{"between", pt(5, 0, 0), geom.Between},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, geom.Classify(tc.p, org, dest))
		})
	}
}

func TestSegment_CanonicalEqualityIgnoresDirection(t *testing.T) {
	a, err := geom.NewSegment(pt(0, 0, 0), pt(1, 0, 0))
	require.NoError(t, err)
	b, err := geom.NewSegment(pt(1, 0, 0), pt(0, 0, 0))
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Key(), b.Key())
}

func TestSegment_DegenerateRejected(t *testing.T) {
	_, err := geom.NewSegment(pt(1, 1, 1), pt(1, 1, 1))
	assert.ErrorIs(t, err, geom.ErrDegenerateSegment)
}

func TestSegment_ContainsPoint(t *testing.T) {
	s, err := geom.NewSegment(pt(0, 0, 0), pt(10, 0, 0))
	require.NoError(t, err)
	assert.True(t, s.ContainsPoint(pt(5, 0, 0)))
	assert.True(t, s.ContainsPoint(pt(0, 0, 0)))
	assert.False(t, s.ContainsPoint(pt(15, 0, 0)))
}

func TestPlane_FromThreePointsContainsAll(t *testing.T) {
	p, err := geom.NewPlaneFrom3Points(pt(0, 0, 0), pt(1, 0, 0), pt(0, 1, 0))
	require.NoError(t, err)
	assert.True(t, p.ContainsPoint(pt(0, 0, 0)))
	assert.True(t, p.ContainsPoint(pt(1, 0, 0)))
	assert.True(t, p.ContainsPoint(pt(5, 5, 0)))
	assert.False(t, p.ContainsPoint(pt(0, 0, 1)))
}

func TestPlane_FromThreeCollinearPointsFails(t *testing.T) {
	_, err := geom.NewPlaneFrom3Points(pt(0, 0, 0), pt(1, 0, 0), pt(2, 0, 0))
	assert.ErrorIs(t, err, geom.ErrDegenerateTriangle)
}

func TestTriangle_DegradationLevel(t *testing.T) {
	proper := geom.NewTriangle(pt(0, 0, 0), pt(1, 0, 0), pt(0, 1, 0))
	assert.Equal(t, geom.Proper, proper.DegradationLevel())

	collinear := geom.NewTriangle(pt(0, 0, 0), pt(1, 0, 0), pt(2, 0, 0))
	assert.Equal(t, geom.Collinear, collinear.DegradationLevel())

	coincident := geom.NewTriangle(pt(0, 0, 0), pt(0, 0, 0), pt(1, 0, 0))
	assert.Equal(t, geom.Coincident, coincident.DegradationLevel())
}

func TestTriangle_ReverseFlipsNormalDirection(t *testing.T) {
	tr := geom.NewTriangle(pt(0, 0, 0), pt(1, 0, 0), pt(0, 1, 0))
	rev := tr.Reverse()
	assert.True(t, tr.Normal.DotProduct(rev.Normal).IsNegative())
}

func TestBox_Intersects(t *testing.T) {
	a := geom.Box{XMin: n(0), XMax: n(1), YMin: n(0), YMax: n(1), ZMin: n(0), ZMax: n(1)}
	b := geom.Box{XMin: n(1), XMax: n(2), YMin: n(0), YMax: n(1), ZMin: n(0), ZMax: n(1)}
	c := geom.Box{XMin: n(5), XMax: n(6), YMin: n(0), YMax: n(1), ZMin: n(0), ZMax: n(1)}
	assert.True(t, a.Intersects(b))
	assert.False(t, a.Intersects(c))
}

func TestBox_Encloses(t *testing.T) {
	big := geom.Box{XMin: n(-10), XMax: n(10), YMin: n(0), YMax: n(1), ZMin: n(0), ZMax: n(1)}
	small := geom.Box{XMin: n(0), XMax: n(1), YMin: n(0), YMax: n(1), ZMin: n(0), ZMax: n(1)}
	assert.True(t, big.Encloses(small))
	// Encloses is an OR across axes: the two boxes share their Y and Z
	// ranges, so small also encloses big on Y.
	assert.True(t, small.Encloses(big))
}
