package triangulate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meshbool/geom"
	"github.com/katalvlaran/meshbool/rational"
	"github.com/katalvlaran/meshbool/triangulate"
)

func n(v int64) rational.Number { return rational.FromInt64(v, 1) }

func pt(x, y, z int64) geom.Point { return geom.NewPoint(n(x), n(y), n(z)) }

func flatNormal() geom.Vector { return geom.NewVector(n(0), n(0), n(1)) }

func TestPolygon_SquareNoHoles(t *testing.T) {
	square := geom.NewPolygon([]geom.Point{
		pt(1, 0, 0), pt(1, 1, 0), pt(0, 1, 0), pt(0, 0, 0),
	}, flatNormal())
	root := geom.NewPolygonTreeNode(square)

	ts := triangulate.Polygon(root)
	assert.Len(t, ts, 2)
}

func TestPolygon_SquareWithSquareHole(t *testing.T) {
	outer := geom.NewPolygon([]geom.Point{
		pt(1, 0, 0), pt(1, 1, 0), pt(0, 1, 0), pt(0, 0, 0),
	}, flatNormal())
	inner := geom.NewPolygon([]geom.Point{
		pt(0, 0, 0).Add(geom.NewVector(n(1), n(1), n(0)).Scale(rational.FromInt64(1, 4))),
		pt(0, 0, 0).Add(geom.NewVector(n(3), n(1), n(0)).Scale(rational.FromInt64(1, 4))),
		pt(0, 0, 0).Add(geom.NewVector(n(3), n(3), n(0)).Scale(rational.FromInt64(1, 4))),
		pt(0, 0, 0).Add(geom.NewVector(n(1), n(3), n(0)).Scale(rational.FromInt64(1, 4))),
	}, flatNormal())

	root := geom.NewPolygonTreeNode(outer)
	root.AddChild(geom.NewPolygonTreeNode(inner))

	ts := triangulate.Polygon(root)
	// 8 from the bridged outer-minus-hole loop (4 outer + 4 hole points
	// plus the two duplicated bridge endpoints); the hole itself stays
	// empty.
	assert.Len(t, ts, 8)
}

func TestWithConstraints_NoCuts(t *testing.T) {
	tr := geom.NewTriangle(pt(0, 0, 0), pt(1, 0, 0), pt(0, 1, 0))
	out := triangulate.WithConstraints(tr, nil)
	require.Len(t, out, 1)
	assert.True(t, out[0].Points[0].Equal(tr.Points[0]))
}

func TestWithConstraints_MedianCut(t *testing.T) {
	tr := geom.NewTriangle(pt(0, 0, 0), pt(4, 0, 0), pt(0, 4, 0))
	mid := pt(2, 0, 0)
	apex := pt(0, 4, 0)
	cut, err := geom.NewSegment(mid, apex)
	require.NoError(t, err)

	out := triangulate.WithConstraints(tr, []geom.Segment{cut})
	assert.Len(t, out, 2)
}

func TestPointCloud_ConvexQuad(t *testing.T) {
	plane, err := geom.NewPlaneFrom3Points(pt(0, 0, 0), pt(1, 0, 0), pt(0, 1, 0))
	require.NoError(t, err)

	points := []geom.Point{pt(0, 0, 0), pt(1, 0, 0), pt(1, 1, 0), pt(0, 1, 0)}
	ts := triangulate.PointCloud(points, plane)
	assert.Len(t, ts, 2)
}

func TestPointCloud_ThreePointsReturnsSingleTriangle(t *testing.T) {
	plane, err := geom.NewPlaneFrom3Points(pt(0, 0, 0), pt(1, 0, 0), pt(0, 1, 0))
	require.NoError(t, err)

	points := []geom.Point{pt(0, 0, 0), pt(1, 0, 0), pt(0, 1, 0)}
	ts := triangulate.PointCloud(points, plane)
	require.Len(t, ts, 1)
}
