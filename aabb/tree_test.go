package aabb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meshbool/aabb"
	"github.com/katalvlaran/meshbool/geom"
	"github.com/katalvlaran/meshbool/meshtopo"
	"github.com/katalvlaran/meshbool/rational"
)

func n(v int64) rational.Number { return rational.FromInt64(v, 1) }

func pt(x, y, z int64) geom.Point { return geom.NewPoint(n(x), n(y), n(z)) }

// cubeAt returns the 12 triangles of a closed unit cube with its
// minimum corner at (ox, oy, oz).
func cubeAt(ox, oy, oz int64) []geom.Triangle {
	p := func(dx, dy, dz int64) geom.Point { return pt(ox+dx, oy+dy, oz+dz) }
	faces := [][4]geom.Point{
		{p(0, 0, 0), p(0, 1, 0), p(1, 1, 0), p(1, 0, 0)},
		{p(0, 0, 1), p(1, 0, 1), p(1, 1, 1), p(0, 1, 1)},
		{p(0, 0, 0), p(1, 0, 0), p(1, 0, 1), p(0, 0, 1)},
		{p(0, 1, 0), p(0, 1, 1), p(1, 1, 1), p(1, 1, 0)},
		{p(0, 0, 0), p(0, 0, 1), p(0, 1, 1), p(0, 1, 0)},
		{p(1, 0, 0), p(1, 1, 0), p(1, 1, 1), p(1, 0, 1)},
	}
	var out []geom.Triangle
	for _, f := range faces {
		out = append(out, geom.NewTriangle(f[0], f[1], f[2]))
		out = append(out, geom.NewTriangle(f[0], f[2], f[3]))
	}
	return out
}

func buildMesh(t *testing.T, tris []geom.Triangle) *meshtopo.Mesh {
	t.Helper()
	m := meshtopo.NewMesh()
	for _, tr := range tris {
		_, err := m.AddTriangle(tr)
		require.NoError(t, err)
	}
	return m
}

func TestTree_PairsFindsOverlap(t *testing.T) {
	a := buildMesh(t, cubeAt(0, 0, 0))
	b := buildMesh(t, cubeAt(0, 0, 0)) // coincident: every triangle overlaps its mirror

	treeA := aabb.New(a)
	treeB := aabb.New(b)

	pairs := aabb.Pairs(treeA, treeB)
	assert.NotEmpty(t, pairs)
}

func TestTree_PairsEmptyWhenFarApart(t *testing.T) {
	a := buildMesh(t, cubeAt(0, 0, 0))
	b := buildMesh(t, cubeAt(100, 100, 100))

	treeA := aabb.New(a)
	treeB := aabb.New(b)

	pairs := aabb.Pairs(treeA, treeB)
	assert.Empty(t, pairs)
}

func TestTree_PairsPrunesBelowBruteForce(t *testing.T) {
	a := buildMesh(t, cubeAt(0, 0, 0))
	b := buildMesh(t, cubeAt(1, 0, 0)) // sharing just one face plane

	treeA := aabb.New(a)
	treeB := aabb.New(b)

	pairs := aabb.Pairs(treeA, treeB)
	bruteForce := a.NumTriangles() * b.NumTriangles()
	assert.Less(t, len(pairs), bruteForce)
}
