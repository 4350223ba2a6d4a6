package stl_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meshbool/geom"
	"github.com/katalvlaran/meshbool/meshtopo"
	"github.com/katalvlaran/meshbool/rational"
	"github.com/katalvlaran/meshbool/stl"
)

func n(v int64) rational.Number { return rational.FromInt64(v, 1) }

func pt(x, y, z int64) geom.Point { return geom.NewPoint(n(x), n(y), n(z)) }

func unitCube() []geom.Triangle {
	p := func(x, y, z int64) geom.Point { return pt(x, y, z) }
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

func TestWriteThenRead_RoundTrips(t *testing.T) {
	mesh := meshtopo.NewMesh()
	for _, tr := range unitCube() {
		_, err := mesh.AddTriangle(tr)
		require.NoError(t, err)
	}

	var buf bytes.Buffer
	require.NoError(t, stl.Write(&buf, mesh))

	got, err := stl.Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, mesh.NumTriangles(), got.NumTriangles())
	assert.True(t, got.GeometryCheck())
}

func TestRead_ShortHeaderFails(t *testing.T) {
	_, err := stl.Read(bytes.NewReader(make([]byte, 10)))
	assert.ErrorIs(t, err, stl.ErrShortHeader)
}

func TestRead_TruncatedTriangleDataFails(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(make([]byte, 80))
	buf.Write([]byte{5, 0, 0, 0}) // claims 5 triangles, provides none
	_, err := stl.Read(&buf)
	assert.ErrorIs(t, err, stl.ErrTruncated)
}
