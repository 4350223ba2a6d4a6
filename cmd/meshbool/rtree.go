package main

import (
	"github.com/dhconnelly/rtreego"

	"github.com/katalvlaran/meshbool/geom"
	"github.com/katalvlaran/meshbool/meshtopo"
)

// triangleSpatial adapts one mesh triangle to rtreego.Spatial so inspect's
// nearest-triangle query can reuse a general-purpose R-tree instead of the
// module's own bespoke AABB tree (aabb.Tree), which is built for candidate
// pair generation, not point queries.
type triangleSpatial struct {
	id   int
	rect rtreego.Rect
}

func (t *triangleSpatial) Bounds() rtreego.Rect { return t.rect }

func newTriangleSpatial(id int, mesh *meshtopo.Mesh) *triangleSpatial {
	tr := mesh.Triangle(id)
	box := geom.BoxFromTriangle(tr)

	xMin, _ := box.XMin.ToFloat32()
	xMax, _ := box.XMax.ToFloat32()
	yMin, _ := box.YMin.ToFloat32()
	yMax, _ := box.YMax.ToFloat32()
	zMin, _ := box.ZMin.ToFloat32()
	zMax, _ := box.ZMax.ToFloat32()

	const epsilon = 1e-6
	lengths := []float64{
		maxFloat64(float64(xMax-xMin), epsilon),
		maxFloat64(float64(yMax-yMin), epsilon),
		maxFloat64(float64(zMax-zMin), epsilon),
	}
	rect, err := rtreego.NewRect(rtreego.Point{float64(xMin), float64(yMin), float64(zMin)}, lengths)
	if err != nil {
		// NewRect only fails on a non-positive length, already excluded above.
		panic(err)
	}

	return &triangleSpatial{id: id, rect: rect}
}

func maxFloat64(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
