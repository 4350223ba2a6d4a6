package geom

import "github.com/katalvlaran/meshbool/rational"

// Box is an axis-aligned bounding box: the six-tuple (XMin, XMax, YMin,
// YMax, ZMin, ZMax). It is shared by meshtopo (Mesh.Bounds), aabb (tree
// node boxes), and boolop (union/intersection distinguishing), which is why
// it lives in geom rather than in any one of those packages.
type Box struct {
	XMin, XMax rational.Number
	YMin, YMax rational.Number
	ZMin, ZMax rational.Number
}

// BoxFromPoint returns the degenerate box containing exactly p.
func BoxFromPoint(p Point) Box {
	return Box{p.X, p.X, p.Y, p.Y, p.Z, p.Z}
}

// BoxFromTriangle returns the tight bounding box of t's three vertices.
func BoxFromTriangle(t Triangle) Box {
	b := BoxFromPoint(t.Points[0])
	b = b.Union(BoxFromPoint(t.Points[1]))
	b = b.Union(BoxFromPoint(t.Points[2]))
	return b
}

// Union returns the smallest box containing both b and o.
func (b Box) Union(o Box) Box {
	return Box{
		XMin: minNum(b.XMin, o.XMin), XMax: maxNum(b.XMax, o.XMax),
		YMin: minNum(b.YMin, o.YMin), YMax: maxNum(b.YMax, o.YMax),
		ZMin: minNum(b.ZMin, o.ZMin), ZMax: maxNum(b.ZMax, o.ZMax),
	}
}

// Intersects reports whether b and o overlap on every axis (touching at a
// shared boundary counts as overlap, matching the original kernel's
// do_boxes_intersect / overlay semantics).
func (b Box) Intersects(o Box) bool {
	return overlay(b.XMin, b.XMax, o.XMin, o.XMax) &&
		overlay(b.YMin, b.YMax, o.YMin, o.YMax) &&
		overlay(b.ZMin, b.ZMax, o.ZMin, o.ZMax)
}

// Encloses reports whether b's range on the X axis, or the Y axis, or the
// Z axis, already contains o's corresponding range (base spec 4.7 step 7:
// "x, y, or z range bounds are each >=/<= the rest"). This is the OR-across-
// axes test the original distinguish_u_and_i uses to single out the union
// block among the union/intersection-pass blocks, not a strict
// AND-of-all-three-axes containment test.
func (b Box) Encloses(o Box) bool {
	onX := b.XMin.Cmp(o.XMin) <= 0 && b.XMax.Cmp(o.XMax) >= 0
	onY := b.YMin.Cmp(o.YMin) <= 0 && b.YMax.Cmp(o.YMax) >= 0
	onZ := b.ZMin.Cmp(o.ZMin) <= 0 && b.ZMax.Cmp(o.ZMax) >= 0
	return onX || onY || onZ
}

func overlay(min1, max1, min2, max2 rational.Number) bool {
	return containsBound(min1, max1, min2) || containsBound(min1, max1, max2) ||
		containsBound(min2, max2, min1) || containsBound(min2, max2, max1)
}

func containsBound(lo, hi, v rational.Number) bool {
	return lo.Cmp(v) <= 0 && v.Cmp(hi) <= 0
}

func minNum(a, b rational.Number) rational.Number {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

func maxNum(a, b rational.Number) rational.Number {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}
