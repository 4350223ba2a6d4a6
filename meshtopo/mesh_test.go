package meshtopo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meshbool/geom"
	"github.com/katalvlaran/meshbool/meshtopo"
	"github.com/katalvlaran/meshbool/rational"
)

func n(v int64) rational.Number { return rational.FromInt64(v, 1) }

func pt(x, y, z int64) geom.Point { return geom.NewPoint(n(x), n(y), n(z)) }

// unitCube returns the 12 triangles of a closed axis-aligned unit cube
// with outward-facing normals.
func unitCube() []geom.Triangle {
	p := func(x, y, z int64) geom.Point { return pt(x, y, z) }
	faces := [][4]geom.Point{
		{p(0, 0, 0), p(0, 1, 0), p(1, 1, 0), p(1, 0, 0)}, // z=0, normal -Z
		{p(0, 0, 1), p(1, 0, 1), p(1, 1, 1), p(0, 1, 1)}, // z=1, normal +Z
		{p(0, 0, 0), p(1, 0, 0), p(1, 0, 1), p(0, 0, 1)}, // y=0, normal -Y
		{p(0, 1, 0), p(0, 1, 1), p(1, 1, 1), p(1, 1, 0)}, // y=1, normal +Y
		{p(0, 0, 0), p(0, 0, 1), p(0, 1, 1), p(0, 1, 0)}, // x=0, normal -X
		{p(1, 0, 0), p(1, 1, 0), p(1, 1, 1), p(1, 0, 1)}, // x=1, normal +X
	}
	var out []geom.Triangle
	for _, f := range faces {
		out = append(out, geom.NewTriangle(f[0], f[1], f[2]))
		out = append(out, geom.NewTriangle(f[0], f[2], f[3]))
	}
	return out
}

func buildUnitCube(t *testing.T) *meshtopo.Mesh {
	t.Helper()
	m := meshtopo.NewMesh()
	for _, tr := range unitCube() {
		_, err := m.AddTriangle(tr)
		require.NoError(t, err)
	}
	return m
}

func TestMesh_AddTriangleRejectsDegenerate(t *testing.T) {
	m := meshtopo.NewMesh()
	degenerate := geom.NewTriangle(pt(0, 0, 0), pt(1, 0, 0), pt(2, 0, 0))
	_, err := m.AddTriangle(degenerate)
	assert.ErrorIs(t, err, meshtopo.ErrDegenerateTriangle)
	assert.Equal(t, 0, m.NumTriangles())
}

func TestMesh_UnitCubeIsClosedManifold(t *testing.T) {
	m := buildUnitCube(t)
	assert.Equal(t, 12, m.NumTriangles())
	assert.Equal(t, 8, m.NumPoints())
	assert.True(t, m.GeometryCheck())

	for _, id := range m.TriangleIDs() {
		assert.Len(t, m.FindEdgeNeighbors(id), 3)
	}
}

func TestMesh_RemoveTriangleBreaksManifold(t *testing.T) {
	m := buildUnitCube(t)
	ids := m.TriangleIDs()
	m.RemoveTriangle(ids[0])
	assert.Equal(t, 11, m.NumTriangles())
	assert.False(t, m.GeometryCheck())
}

func TestMesh_CoincidentPointCount(t *testing.T) {
	m := buildUnitCube(t)
	ids := m.TriangleIDs()
	id := ids[0]
	neighbors := m.NeighborIDs(id)
	require.NotEmpty(t, neighbors)
	for _, nb := range neighbors {
		count := m.CoincidentPointCount(id, nb)
		assert.GreaterOrEqual(t, count, 1)
		assert.LessOrEqual(t, count, 2)
	}
}

func TestMesh_TrianglesByDirectedEdge(t *testing.T) {
	m := buildUnitCube(t)
	plus, minus, ok := m.TrianglesByDirectedEdge(pt(0, 0, 0), pt(0, 1, 0))
	require.True(t, ok)
	assert.NotEqual(t, plus, minus)
}

func TestMesh_SplitIntoComponents(t *testing.T) {
	m := meshtopo.NewMesh()
	for _, tr := range unitCube() {
		_, err := m.AddTriangle(tr)
		require.NoError(t, err)
	}
	shifted := func(x, y, z int64) geom.Point { return pt(x+10, y+10, z+10) }
	extra := []geom.Triangle{
		geom.NewTriangle(shifted(0, 0, 0), shifted(1, 0, 0), shifted(0, 1, 0)),
	}
	for _, tr := range extra {
		_, err := m.AddTriangle(tr)
		require.NoError(t, err)
	}

	components := m.SplitIntoComponents()
	assert.Len(t, components, 2)
}

func TestMesh_Bounds(t *testing.T) {
	m := buildUnitCube(t)
	box := m.Bounds()
	assert.True(t, box.XMin.Equal(n(0)))
	assert.True(t, box.XMax.Equal(n(1)))
	assert.True(t, box.YMin.Equal(n(0)))
	assert.True(t, box.YMax.Equal(n(1)))
	assert.True(t, box.ZMin.Equal(n(0)))
	assert.True(t, box.ZMax.Equal(n(1)))
}

func TestMesh_RotateXPreservesTriangleCount(t *testing.T) {
	m := buildUnitCube(t)
	m.RotateX(n(1))
	assert.Equal(t, 12, m.NumTriangles())
	assert.True(t, m.GeometryCheck())
}
