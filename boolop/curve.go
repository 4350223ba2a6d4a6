package boolop

import (
	"github.com/katalvlaran/meshbool/geom"
	"github.com/katalvlaran/meshbool/meshtopo"
)

// CurveSegment is one exact cut segment plus the four retriangulated
// triangles incident to it: aPlus/aMinus from mesh A, bPlus/bMinus from
// mesh B, where the "plus" triangle traverses the segment org->dest in its
// own winding direction.
//
// Grounded on robust_bool_ops.rs's CurveSegment.
type CurveSegment struct {
	Seg     geom.Segment
	APlus   int
	AMinus  int
	BPlus   int
	BMinus  int
}

func (c CurveSegment) flipped() CurveSegment {
	return CurveSegment{
		Seg:    c.Seg.Flip(),
		APlus:  c.AMinus,
		AMinus: c.APlus,
		BPlus:  c.BMinus,
		BMinus: c.BPlus,
	}
}

// Curve is a closed, directionally coherent cycle of curve segments,
// together with the indices (into a sibling []*subSurface slice) of every
// subsurface that touches it from its positive or negative side.
//
// Grounded on robust_bool_ops.rs's Curve.
type Curve struct {
	Segments            []CurveSegment
	PositiveSubSurfaces map[int]struct{}
	NegativeSubSurfaces map[int]struct{}
}

func newCurve(segs []CurveSegment) *Curve {
	return &Curve{
		Segments:            segs,
		PositiveSubSurfaces: make(map[int]struct{}),
		NegativeSubSurfaces: make(map[int]struct{}),
	}
}

func (c *Curve) triangleIDs(side meshSide) map[int]struct{} {
	ids := make(map[int]struct{})
	for _, cs := range c.Segments {
		if side == sideA {
			ids[cs.APlus] = struct{}{}
			ids[cs.AMinus] = struct{}{}
		} else {
			ids[cs.BPlus] = struct{}{}
			ids[cs.BMinus] = struct{}{}
		}
	}
	return ids
}

// areTwins reports whether it1 and it2 are the positive/negative pair of
// some segment of c, on the given mesh side. Two such triangles are
// adjacent across a curve, not across genuine interior topology, so
// subsurface growth must never cross between them.
func (c *Curve) areTwins(it1, it2 int, side meshSide) bool {
	for _, cs := range c.Segments {
		if side == sideA {
			if (cs.APlus == it1 && cs.AMinus == it2) || (cs.APlus == it2 && cs.AMinus == it1) {
				return true
			}
		} else {
			if (cs.BPlus == it1 && cs.BMinus == it2) || (cs.BPlus == it2 && cs.BMinus == it1) {
				return true
			}
		}
	}
	return false
}

// isPositive reports whether triangle it is c's positive-side triangle (as
// opposed to its negative-side triangle) on the given mesh side. found is
// false if it does not appear on c at all on that side.
func (c *Curve) isPositive(it int, side meshSide) (positive, found bool) {
	for _, cs := range c.Segments {
		if side == sideA {
			if cs.APlus == it {
				return true, true
			}
			if cs.AMinus == it {
				return false, true
			}
		} else {
			if cs.BPlus == it {
				return true, true
			}
			if cs.BMinus == it {
				return false, true
			}
		}
	}
	return false, false
}

// assembleCurves groups every cut segment recorded in itToSegs (keyed by
// triangle id, values deduplicated by the caller) into closed, oriented
// curves: repeatedly pop a segment and walk forward by matching its dest
// against the org (or, flipping the candidate, the dest) of some remaining
// segment, until the walk closes.
//
// Grounded on robust_bool_ops.rs's Curve::new_curves. An open walk
// indicates the mesh intersection was ill-formed (every genuine curve must
// close, since both input surfaces are closed manifolds) and is therefore
// an invariant violation, not a user error — it panics rather than
// returning an error, matching the source's own assert_ne!/implicit panic
// on a malformed walk.
func assembleCurves(itToSegs map[int][]geom.Segment, meshA, meshB *meshtopo.Mesh) []*Curve {
	var remaining []CurveSegment
	for _, segs := range itToSegs {
		for _, s := range segs {
			aPlus, aMinus, okA := meshA.TrianglesByDirectedEdge(s.Org, s.Dest)
			if !okA {
				panic("boolop: cut segment has no manifold edge in the first retriangulated mesh")
			}
			bPlus, bMinus, okB := meshB.TrianglesByDirectedEdge(s.Org, s.Dest)
			if !okB {
				panic("boolop: cut segment has no manifold edge in the second retriangulated mesh")
			}
			remaining = append(remaining, CurveSegment{Seg: s, APlus: aPlus, AMinus: aMinus, BPlus: bPlus, BMinus: bMinus})
		}
	}

	var curves []*Curve
	for len(remaining) > 0 {
		cur := remaining[len(remaining)-1]
		remaining = remaining[:len(remaining)-1]
		segs := []CurveSegment{cur}

		for {
			next, idx, ok := findNextSegment(remaining, cur)
			if !ok {
				break
			}
			remaining = append(remaining[:idx], remaining[idx+1:]...)
			segs = append(segs, next)
			cur = next
		}

		if !segs[0].Seg.Org.Equal(segs[len(segs)-1].Seg.Dest) {
			panic("boolop: open curve walk (intersection of the two meshes is ill-formed)")
		}
		curves = append(curves, newCurve(segs))
	}

	return curves
}

func findNextSegment(remaining []CurveSegment, cur CurveSegment) (CurveSegment, int, bool) {
	for i, cs := range remaining {
		if cs.Seg.Org.Equal(cur.Seg.Dest) {
			return cs, i, true
		}
		if cs.Seg.Dest.Equal(cur.Seg.Dest) {
			return cs.flipped(), i, true
		}
	}
	return CurveSegment{}, -1, false
}
