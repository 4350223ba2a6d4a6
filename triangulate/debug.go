package triangulate

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	svg "github.com/ajstarks/svgo"

	"github.com/katalvlaran/meshbool/geom"
)

// Option configures an optional side effect of WithConstraints.
type Option func(*config)

type config struct {
	debugDir string
}

// WithDebugDir makes WithConstraints write one SVG per call into dir,
// plotting the folded triangle, its cut segments, and the resulting
// triangulation, for diagnosing a retriangulation that produced an
// unexpected face count or winding. Never set outside manual debugging.
func WithDebugDir(dir string) Option {
	return func(c *config) { c.debugDir = dir }
}

var debugDumpCounter uint64

const debugScale = 40

// dumpDebugSVG renders one retriangulation call: the input triangle in
// black, each output triangle lightly shaded, each cut segment in red.
// A write failure is silently ignored; this is a diagnostic aid, not part
// of the retriangulation contract.
func dumpDebugSVG(dir string, foldedT geom.Triangle, foldedCuts []geom.Segment, result []geom.Triangle) {
	id := atomic.AddUint64(&debugDumpCounter, 1)
	f, err := os.Create(filepath.Join(dir, fmt.Sprintf("triangle-%04d.svg", id)))
	if err != nil {
		return
	}
	defer f.Close()

	project, width, height := debugProjection(foldedT, foldedCuts)

	canvas := svg.New(f)
	canvas.Start(width, height)

	tx, ty := debugTrianglePoints(foldedT, project)
	canvas.Polygon(tx, ty, "fill:none;stroke:black;stroke-width:2")

	for _, t := range result {
		rx, ry := debugTrianglePoints(t, project)
		canvas.Polygon(rx, ry, "fill:lightgray;fill-opacity:0.3;stroke:gray;stroke-width:1")
	}

	for _, s := range foldedCuts {
		x1, y1 := project(s.Org)
		x2, y2 := project(s.Dest)
		canvas.Line(x1, y1, x2, y2, "stroke:red;stroke-width:2")
	}

	canvas.End()
}

func debugProjection(t geom.Triangle, cuts []geom.Segment) (func(geom.Point) (int, int), int, int) {
	pts := []geom.Point{t.Points[0], t.Points[1], t.Points[2]}
	for _, s := range cuts {
		pts = append(pts, s.Org, s.Dest)
	}

	minX, _ := pts[0].X.ToFloat32()
	maxX := minX
	minY, _ := pts[0].Y.ToFloat32()
	maxY := minY
	for _, p := range pts[1:] {
		x, _ := p.X.ToFloat32()
		y, _ := p.Y.ToFloat32()
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}

	height := int((maxY-minY)*debugScale) + 40
	project := func(p geom.Point) (int, int) {
		x, _ := p.X.ToFloat32()
		y, _ := p.Y.ToFloat32()
		return int((x-minX)*debugScale) + 20, height - (int((y-minY)*debugScale) + 20)
	}
	width := int((maxX-minX)*debugScale) + 40
	return project, width, height
}

func debugTrianglePoints(t geom.Triangle, project func(geom.Point) (int, int)) ([]int, []int) {
	x1, y1 := project(t.Points[0])
	x2, y2 := project(t.Points[1])
	x3, y3 := project(t.Points[2])
	return []int{x1, x2, x3}, []int{y1, y2, y3}
}
