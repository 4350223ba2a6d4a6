package boolop

import "github.com/katalvlaran/meshbool/meshtopo"

// meshSide tags which of the two input meshes a subsurface or curve
// triangle belongs to.
type meshSide int

const (
	sideA meshSide = iota
	sideB
)

// subSurface is a maximal connected set of retriangulated triangles from
// one mesh, bounded by curve segments, every triangle on the same side of
// every curve it touches.
//
// Grounded on robust_bool_ops.rs's SubSurface.
type subSurface struct {
	Triangles      map[int]struct{}
	PositiveCurves map[int]struct{}
	NegativeCurves map[int]struct{}
	Side           meshSide
}

func newSubSurface(side meshSide) *subSurface {
	return &subSurface{
		Triangles:      make(map[int]struct{}),
		PositiveCurves: make(map[int]struct{}),
		NegativeCurves: make(map[int]struct{}),
		Side:           side,
	}
}

// growSubSurfaces partitions every triangle of meshA and meshB touched by
// a curve segment (plus everything reachable from it without crossing a
// curve) into subsurfaces, recording on each curve which subsurfaces sit
// on its positive and negative side.
//
// Grounded on robust_bool_ops.rs's SubSurface::add_sub_surfaces.
func growSubSurfaces(curves []*Curve, meshA, meshB *meshtopo.Mesh) []*subSurface {
	itToCurveA := make(map[int]map[int]struct{})
	itToCurveB := make(map[int]map[int]struct{})
	itToSubsurfaceA := make(map[int]int)
	itToSubsurfaceB := make(map[int]int)

	insert := func(m map[int]map[int]struct{}, it, ic int) {
		if m[it] == nil {
			m[it] = make(map[int]struct{})
		}
		m[it][ic] = struct{}{}
	}

	for ic, c := range curves {
		for _, cs := range c.Segments {
			insert(itToCurveA, cs.APlus, ic)
			insert(itToCurveA, cs.AMinus, ic)
			insert(itToCurveB, cs.BPlus, ic)
			insert(itToCurveB, cs.BMinus, ic)
		}
	}

	var subSurfaces []*subSurface
	for _, c := range curves {
		for _, cs := range c.Segments {
			addSubSurface(cs.APlus, sideA, itToCurveA, itToSubsurfaceA, curves, &subSurfaces, meshA)
			addSubSurface(cs.AMinus, sideA, itToCurveA, itToSubsurfaceA, curves, &subSurfaces, meshA)
			addSubSurface(cs.BPlus, sideB, itToCurveB, itToSubsurfaceB, curves, &subSurfaces, meshB)
			addSubSurface(cs.BMinus, sideB, itToCurveB, itToSubsurfaceB, curves, &subSurfaces, meshB)
		}
	}

	return subSurfaces
}

// addSubSurface grows one subsurface outward from startID by BFS over
// edge-neighbors, blocking propagation across any edge that is the
// positive/negative pair of a curve, and pushes it onto subSurfaces (at
// index len(*subSurfaces), fixed before growth starts) unless startID was
// already claimed by an earlier call, in which case growth finds nothing
// new and the empty result is dropped.
func addSubSurface(
	startID int, side meshSide,
	itToCurve map[int]map[int]struct{}, itToSubsurface map[int]int,
	curves []*Curve, subSurfaces *[]*subSurface, mesh *meshtopo.Mesh,
) {
	ss := newSubSurface(side)
	is := len(*subSurfaces)
	stack := []int{startID}

	for len(stack) > 0 {
		curIt := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, claimed := itToSubsurface[curIt]; claimed {
			continue
		}

		for _, nb := range mesh.FindEdgeNeighbors(curIt) {
			_, curIsBoundary := itToCurve[curIt]
			nbCurves, nbIsBoundary := itToCurve[nb]
			if curIsBoundary && nbIsBoundary {
				twins := false
				for ic := range nbCurves {
					if curves[ic].areTwins(nb, curIt, side) {
						twins = true
						break
					}
				}
				if twins {
					continue
				}
			}

			if _, claimed := itToSubsurface[nb]; claimed {
				continue
			}

			if nbIsBoundary {
				updateCurvesAndSubsurface(ss, nb, nbCurves, is, curves)
			}
			if curCurves, ok := itToCurve[curIt]; ok {
				updateCurvesAndSubsurface(ss, curIt, curCurves, is, curves)
			}

			stack = append(stack, nb)
		}

		itToSubsurface[curIt] = is
		ss.Triangles[curIt] = struct{}{}
	}

	if len(ss.Triangles) > 0 {
		*subSurfaces = append(*subSurfaces, ss)
	}
}

// updateCurvesAndSubsurface links subsurface ss (at index is) to whichever
// single curve triangle it touches, recording the sign ss sits on. A
// triangle touched by more than one curve is an internal junction, not a
// boundary crossing this subsurface can be tagged by, matching the
// source's own "indexes_of_curves.len() != 1" guard.
func updateCurvesAndSubsurface(ss *subSurface, it int, curveIDs map[int]struct{}, is int, curves []*Curve) {
	if len(curveIDs) != 1 {
		return
	}
	for ic := range curveIDs {
		positive, _ := curves[ic].isPositive(it, ss.Side)
		if positive {
			ss.PositiveCurves[ic] = struct{}{}
			curves[ic].PositiveSubSurfaces[is] = struct{}{}
		} else {
			ss.NegativeCurves[ic] = struct{}{}
			curves[ic].NegativeSubSurfaces[is] = struct{}{}
		}
	}
}
