package intersect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meshbool/geom"
	"github.com/katalvlaran/meshbool/intersect"
	"github.com/katalvlaran/meshbool/rational"
)

func n(v int64) rational.Number { return rational.FromInt64(v, 1) }

func pt(x, y, z int64) geom.Point { return geom.NewPoint(n(x), n(y), n(z)) }

func mustLine(t *testing.T, org, dest geom.Point) geom.Line {
	t.Helper()
	l, err := geom.NewLine(org, dest)
	require.NoError(t, err)
	return l
}

func mustSegment(t *testing.T, org, dest geom.Point) geom.Segment {
	t.Helper()
	s, err := geom.NewSegment(org, dest)
	require.NoError(t, err)
	return s
}

func mustPlane(t *testing.T, p0, p1, p2 geom.Point) geom.Plane {
	t.Helper()
	pl, err := geom.NewPlaneFrom3Points(p0, p1, p2)
	require.NoError(t, err)
	return pl
}

func TestLineXLine(t *testing.T) {
	t.Run("intersecting at a point", func(t *testing.T) {
		a := mustLine(t, pt(0, 0, 0), pt(2, 2, 0))
		b := mustLine(t, pt(0, 2, 0), pt(2, 0, 0))
		res := intersect.LineXLine(a, b)
		require.Equal(t, intersect.LLIntersecting, res.Kind)
		assert.True(t, res.Point.Equal(pt(1, 1, 0)))
	})

	t.Run("skew", func(t *testing.T) {
		a := mustLine(t, pt(0, 0, 0), pt(1, 0, 0))
		b := mustLine(t, pt(0, 0, 1), pt(0, 1, 1))
		res := intersect.LineXLine(a, b)
		assert.Equal(t, intersect.Skew, res.Kind)
	})

	t.Run("coincident", func(t *testing.T) {
		a := mustLine(t, pt(0, 0, 0), pt(1, 1, 1))
		b := mustLine(t, pt(2, 2, 2), pt(3, 3, 3))
		res := intersect.LineXLine(a, b)
		assert.Equal(t, intersect.LLCoincident, res.Kind)
	})

	t.Run("parallel but distinct", func(t *testing.T) {
		a := mustLine(t, pt(0, 0, 0), pt(1, 0, 0))
		b := mustLine(t, pt(0, 1, 0), pt(1, 1, 0))
		res := intersect.LineXLine(a, b)
		assert.Equal(t, intersect.LLCollinear, res.Kind)
	})
}

func TestLineXPlane(t *testing.T) {
	plane := mustPlane(t, pt(0, 0, 0), pt(1, 0, 0), pt(0, 1, 0))

	t.Run("crosses at a point", func(t *testing.T) {
		l := mustLine(t, pt(0, 0, -1), pt(0, 0, 1))
		res := intersect.LineXPlane(l, plane)
		require.Equal(t, intersect.LPIntersecting, res.Kind)
		assert.True(t, res.Point.Equal(pt(0, 0, 0)))
	})

	t.Run("parallel and disjoint", func(t *testing.T) {
		l := mustLine(t, pt(0, 0, 1), pt(1, 0, 1))
		res := intersect.LineXPlane(l, plane)
		assert.Equal(t, intersect.LPParallel, res.Kind)
	})

	t.Run("contained in plane", func(t *testing.T) {
		l := mustLine(t, pt(0, 0, 0), pt(1, 1, 0))
		res := intersect.LineXPlane(l, plane)
		assert.Equal(t, intersect.LineContainedInPlane, res.Kind)
	})
}

func TestPlaneXPlane(t *testing.T) {
	xy := mustPlane(t, pt(0, 0, 0), pt(1, 0, 0), pt(0, 1, 0))

	t.Run("crossing planes yield a line", func(t *testing.T) {
		xz := mustPlane(t, pt(0, 0, 0), pt(1, 0, 0), pt(0, 0, 1))
		res := intersect.PlaneXPlane(xy, xz)
		require.Equal(t, intersect.PPIntersecting, res.Kind)
		assert.True(t, res.Line.ContainsPoint(pt(0, 0, 0)))
		assert.True(t, res.Line.ContainsPoint(pt(1, 0, 0)))
	})

	t.Run("parallel distinct planes", func(t *testing.T) {
		shifted := mustPlane(t, pt(0, 0, 1), pt(1, 0, 1), pt(0, 1, 1))
		res := intersect.PlaneXPlane(xy, shifted)
		assert.Equal(t, intersect.PPParallel, res.Kind)
	})

	t.Run("coincident planes", func(t *testing.T) {
		same := mustPlane(t, pt(2, 0, 0), pt(0, 3, 0), pt(0, 0, 0))
		res := intersect.PlaneXPlane(xy, same)
		assert.Equal(t, intersect.PPCoincident, res.Kind)
	})
}

func TestLineXSegment(t *testing.T) {
	l := mustLine(t, pt(0, 0, 0), pt(0, 2, 0))

	t.Run("crosses within bounds", func(t *testing.T) {
		s := mustSegment(t, pt(-1, 1, 0), pt(1, 1, 0))
		res := intersect.LineXSegment(l, s)
		require.Equal(t, intersect.IntersectingInPoint, res.Kind)
		assert.True(t, res.Point.Equal(pt(0, 1, 0)))
	})

	t.Run("crosses outside segment bounds", func(t *testing.T) {
		s := mustSegment(t, pt(1, 1, 0), pt(2, 1, 0))
		res := intersect.LineXSegment(l, s)
		assert.Equal(t, intersect.DisjointInPlane, res.Kind)
	})

	t.Run("skew", func(t *testing.T) {
		s := mustSegment(t, pt(1, 0, 1), pt(1, 1, 2))
		res := intersect.LineXSegment(l, s)
		assert.Equal(t, intersect.LSSkew, res.Kind)
	})

	t.Run("coincident line carries segment payload", func(t *testing.T) {
		s := mustSegment(t, pt(0, 0, 0), pt(0, 1, 0))
		res := intersect.LineXSegment(l, s)
		require.Equal(t, intersect.IntersectingInSegment, res.Kind)
		assert.True(t, res.Segment.Equal(s))
	})
}

func TestSegmentXSegment(t *testing.T) {
	t.Run("crossing in a point", func(t *testing.T) {
		a := mustSegment(t, pt(0, 0, 0), pt(2, 2, 0))
		b := mustSegment(t, pt(0, 2, 0), pt(2, 0, 0))
		res := intersect.SegmentXSegment(a, b)
		require.Equal(t, intersect.IntersectingInPoint, res.Kind)
		assert.True(t, res.Point.Equal(pt(1, 1, 0)))
	})

	t.Run("skew segments", func(t *testing.T) {
		a := mustSegment(t, pt(0, 0, 0), pt(1, 0, 0))
		b := mustSegment(t, pt(0, 0, 1), pt(0, 1, 1))
		res := intersect.SegmentXSegment(a, b)
		assert.Equal(t, intersect.SSSkew, res.Kind)
	})

	t.Run("collinear lines, parallel distinct", func(t *testing.T) {
		a := mustSegment(t, pt(0, 0, 0), pt(1, 0, 0))
		b := mustSegment(t, pt(0, 1, 0), pt(1, 1, 0))
		res := intersect.SegmentXSegment(a, b)
		assert.Equal(t, intersect.SSCollinear, res.Kind)
	})

	t.Run("disjoint on shared line", func(t *testing.T) {
		a := mustSegment(t, pt(0, 0, 0), pt(1, 0, 0))
		b := mustSegment(t, pt(2, 0, 0), pt(3, 0, 0))
		res := intersect.SegmentXSegment(a, b)
		assert.Equal(t, intersect.DisjointInLine, res.Kind)
	})

	t.Run("touching at a shared endpoint on the line", func(t *testing.T) {
		a := mustSegment(t, pt(0, 0, 0), pt(1, 0, 0))
		b := mustSegment(t, pt(1, 0, 0), pt(2, 0, 0))
		res := intersect.SegmentXSegment(a, b)
		assert.Equal(t, intersect.IntersectingInPointOnLine, res.Kind)
		assert.True(t, res.Point.Equal(pt(1, 0, 0)))
	})

	t.Run("one segment encloses the other", func(t *testing.T) {
		a := mustSegment(t, pt(0, 0, 0), pt(4, 0, 0))
		b := mustSegment(t, pt(1, 0, 0), pt(2, 0, 0))
		res := intersect.SegmentXSegment(a, b)
		require.Equal(t, intersect.IntersectingInSegment, res.Kind)
		assert.True(t, res.Segment.Equal(b))
	})

	t.Run("partial overlap", func(t *testing.T) {
		a := mustSegment(t, pt(0, 0, 0), pt(2, 0, 0))
		b := mustSegment(t, pt(1, 0, 0), pt(3, 0, 0))
		res := intersect.SegmentXSegment(a, b)
		require.Equal(t, intersect.IntersectingInSegment, res.Kind)
		expect := mustSegment(t, pt(1, 0, 0), pt(2, 0, 0))
		assert.True(t, res.Segment.Equal(expect))
	})

	t.Run("crossing in plane but outside both spans", func(t *testing.T) {
		a := mustSegment(t, pt(0, 0, 0), pt(1, 1, 0))
		b := mustSegment(t, pt(3, 0, 0), pt(2, 1, 0))
		res := intersect.SegmentXSegment(a, b)
		assert.Equal(t, intersect.DisjointInPlane, res.Kind)
	})
}

func TestTriangleXTriangle(t *testing.T) {
	t.Run("disjoint, parallel planes", func(t *testing.T) {
		tr1 := geom.NewTriangle(pt(0, 0, 0), pt(1, 0, 0), pt(0, 1, 0))
		tr2 := geom.NewTriangle(pt(0, 0, 1), pt(1, 0, 1), pt(0, 1, 1))
		res := intersect.TriangleXTriangle(tr1, tr2)
		assert.Equal(t, intersect.TTCollinear, res.Kind)
		assert.False(t, res.Kind.DoesItIntersect())
	})

	t.Run("not intersecting, same side", func(t *testing.T) {
		tr1 := geom.NewTriangle(pt(0, 0, 0), pt(1, 0, 0), pt(0, 1, 0))
		tr2 := geom.NewTriangle(pt(0, 0, 1), pt(1, 0, 2), pt(0, 1, 2))
		res := intersect.TriangleXTriangle(tr1, tr2)
		assert.Equal(t, intersect.NotIntersecting, res.Kind)
	})

	t.Run("crossing triangles intersect in a segment", func(t *testing.T) {
		tr1 := geom.NewTriangle(pt(-1, 0, -1), pt(-1, 0, 1), pt(2, 0, 0))
		tr2 := geom.NewTriangle(pt(0, -1, -1), pt(0, -1, 1), pt(0, 2, 0))
		res := intersect.TriangleXTriangle(tr1, tr2)
		require.True(t, res.Kind.DoesItIntersect())
		assert.Equal(t, intersect.TTIntersecting, res.Kind)
	})

	t.Run("coplanar overlapping triangles", func(t *testing.T) {
		tr1 := geom.NewTriangle(pt(0, 0, 0), pt(4, 0, 0), pt(0, 4, 0))
		tr2 := geom.NewTriangle(pt(1, 1, 0), pt(5, 1, 0), pt(1, 5, 0))
		res := intersect.TriangleXTriangle(tr1, tr2)
		assert.Equal(t, intersect.CoplanarIntersecting, res.Kind)
		assert.GreaterOrEqual(t, len(res.Polygon.Points), 3)
	})

	t.Run("coplanar disjoint triangles", func(t *testing.T) {
		tr1 := geom.NewTriangle(pt(0, 0, 0), pt(1, 0, 0), pt(0, 1, 0))
		tr2 := geom.NewTriangle(pt(10, 10, 0), pt(11, 10, 0), pt(10, 11, 0))
		res := intersect.TriangleXTriangle(tr1, tr2)
		assert.Equal(t, intersect.CoplanarNotIntersecting, res.Kind)
	})

	t.Run("coplanar triangles touching at a single vertex", func(t *testing.T) {
		tr1 := geom.NewTriangle(pt(0, 0, 0), pt(1, 0, 0), pt(0, 1, 0))
		tr2 := geom.NewTriangle(pt(1, 0, 0), pt(2, 0, 0), pt(1, 1, 0))
		res := intersect.TriangleXTriangle(tr1, tr2)
		assert.Equal(t, intersect.TTIntersectingInPoint, res.Kind)
		assert.True(t, res.Point.Equal(pt(1, 0, 0)))
	})
}
