package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meshbool/geom"
	"github.com/katalvlaran/meshbool/meshtopo"
	"github.com/katalvlaran/meshbool/rational"
)

func TestNewTriangleSpatial_KeepsTriangleID(t *testing.T) {
	n := func(v int64) rational.Number { return rational.FromInt64(v, 1) }
	pt := func(x, y, z int64) geom.Point { return geom.NewPoint(n(x), n(y), n(z)) }

	tr := geom.NewTriangle(pt(0, 0, 0), pt(1, 0, 0), pt(0, 1, 0))
	mesh := meshtopo.NewMesh()
	id, err := mesh.AddTriangle(tr)
	require.NoError(t, err)

	ts := newTriangleSpatial(id, mesh)
	_ = ts.Bounds()
	assert.Equal(t, id, ts.id)
}
