package triangulate

import (
	"github.com/katalvlaran/meshbool/geom"
)

// Polygon re-triangulates a nested tree of coplanar polygon loops (an
// outer boundary whose Children are holes, whose own Children are islands
// nested inside those holes, and so on). The tree is expected to already
// carry its own plane's normal; every polygon in it is folded, the solid
// regions (outer loops minus their holes) are ear-clipped, and the result
// is unfolded back to that plane before returning.
func Polygon(root *geom.PolygonTreeNode) []geom.Triangle {
	f := classifyFold(root.Polygon.Normal)
	sign := orientationSign(foldVector(root.Polygon.Normal, f))

	folded := foldTree(root, f)
	flat := triangulatePolygonTree(folded)

	out := make([]geom.Triangle, len(flat))
	for i, t := range flat {
		out[i] = restoreOrientation(t, f, sign)
	}
	return out
}

func foldTree(node *geom.PolygonTreeNode, f axisFold) *geom.PolygonTreeNode {
	points := make([]geom.Point, len(node.Polygon.Points))
	for i, p := range node.Polygon.Points {
		points[i] = foldPoint(p, f)
	}
	out := geom.NewPolygonTreeNode(geom.NewPolygon(points, foldVector(node.Polygon.Normal, f)))
	for _, child := range node.Children {
		out.AddChild(foldTree(child, f))
	}
	return out
}

// WithConstraints re-triangulates triangle t so that every segment in
// cuts becomes an edge of the result, preserving t's plane and winding.
// If cuts is empty, t is returned unchanged.
//
// Grounded on triangulation3d.rs's triangulate_ptree3d: fold to the
// triangle's plane, then extract the planar subdivision's bounded faces
// (the loop-extraction step, built on the same most-left-turning-walk
// idiom triangle_x_triangle.rs's PointDirGraph sketches — see DESIGN.md),
// ear-clip each face with no holes (coplanar constraint segments never
// nest), and unfold.
func WithConstraints(t geom.Triangle, cuts []geom.Segment, opts ...Option) []geom.Triangle {
	if len(cuts) == 0 {
		return []geom.Triangle{t}
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	f := classifyFold(t.Normal)
	sign := orientationSign(foldVector(t.Normal, f))

	foldedT := foldTriangle(t, f)
	foldedCuts := make([]geom.Segment, len(cuts))
	for i, s := range cuts {
		foldedCuts[i] = foldSegment(s, f)
	}

	faces := extractFaces(foldedT, foldedCuts)

	var out []geom.Triangle
	var folded []geom.Triangle
	for _, face := range faces {
		node := geom.NewPolygonTreeNode(face)
		for _, t2 := range triangulatePolygonTree(node) {
			folded = append(folded, t2)
			out = append(out, restoreOrientation(t2, f, sign))
		}
	}

	if cfg.debugDir != "" {
		dumpDebugSVG(cfg.debugDir, foldedT, foldedCuts, folded)
	}

	return out
}

// PointCloud triangulates a bare set of coplanar points (no boundary, no
// holes) lying on plane, the alternate advancing-front path grounded on
// incremental_triangulation.rs.
func PointCloud(points []geom.Point, plane geom.Plane) []geom.Triangle {
	if len(points) == 3 {
		t := geom.NewTriangle(points[0], points[1], points[2])
		if t.Normal.DotProduct(plane.Normal).IsNegative() {
			t = t.Reverse()
		}
		return []geom.Triangle{t}
	}

	f := classifyFold(plane.Normal)
	sign := orientationSign(foldVector(plane.Normal, f))

	folded := make([]geom.Point, len(points))
	for i, p := range points {
		folded[i] = foldPoint(p, f)
	}

	flat := incrementalTriangulate2D(folded)

	out := make([]geom.Triangle, len(flat))
	for i, t := range flat {
		out[i] = restoreOrientation(t, f, sign)
	}
	return out
}
