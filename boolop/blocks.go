package boolop

import (
	"github.com/katalvlaran/meshbool/geom"
	"github.com/katalvlaran/meshbool/meshtopo"
)

// dfsBlocks partitions every subsurface into maximal sets reachable from
// one another by crossing curves under a sign rule: differencePass=false
// is the union/intersection pass (cross to the opposite-sign subsurfaces
// of a curve, matching a solid boundary being traversed from one side),
// differencePass=true is the difference pass (same-sign subsurfaces,
// since a mesh boundary crossed to remove material faces the same way on
// both meshes). A jump is only taken when it also changes which input
// mesh the subsurface came from.
//
// Grounded on robust_bool_ops.rs's Blocks::dfs. The source iterates a
// BTreeSet stack in sorted order; this is plain BFS/DFS over a set
// frontier instead, which yields the identical partition regardless of
// visit order since connectivity, not order, determines block membership.
func dfsBlocks(subSurfaces []*subSurface, curves []*Curve, differencePass bool) [][]int {
	visited := make(map[int]bool, len(subSurfaces))
	var blocks [][]int

	for start := range subSurfaces {
		if visited[start] {
			continue
		}

		frontier := map[int]struct{}{start: {}}
		var block []int

		for len(frontier) > 0 {
			var cur int
			for k := range frontier {
				cur = k
				break
			}
			delete(frontier, cur)
			if visited[cur] {
				continue
			}
			visited[cur] = true
			block = append(block, cur)

			ss := subSurfaces[cur]
			var nearest []int
			if !differencePass {
				for ic := range ss.PositiveCurves {
					for n := range curves[ic].NegativeSubSurfaces {
						nearest = append(nearest, n)
					}
				}
				for ic := range ss.NegativeCurves {
					for n := range curves[ic].PositiveSubSurfaces {
						nearest = append(nearest, n)
					}
				}
			} else {
				for ic := range ss.PositiveCurves {
					for n := range curves[ic].PositiveSubSurfaces {
						nearest = append(nearest, n)
					}
				}
				for ic := range ss.NegativeCurves {
					for n := range curves[ic].NegativeSubSurfaces {
						nearest = append(nearest, n)
					}
				}
			}

			for _, n := range nearest {
				if n == cur || subSurfaces[n].Side == ss.Side {
					continue
				}
				if !visited[n] {
					frontier[n] = struct{}{}
				}
			}
		}

		blocks = append(blocks, block)
	}

	return blocks
}

// meshFromBlock materializes the union of a block's subsurfaces into a
// fresh mesh, optionally reversing whichever input mesh's triangles are
// pulled in (used by the difference passes, which need one side's
// material removed rather than added).
func meshFromBlock(subSurfaces []*subSurface, block []int, meshA, meshB *meshtopo.Mesh, reversedA, reversedB bool) *meshtopo.Mesh {
	out := meshtopo.NewMesh()
	for _, idx := range block {
		ss := subSurfaces[idx]
		src, reversed := meshA, reversedA
		if ss.Side == sideB {
			src, reversed = meshB, reversedB
		}
		for it := range ss.Triangles {
			var t geom.Triangle
			if reversed {
				t = src.ReversedTriangle(it)
			} else {
				t = src.Triangle(it)
			}
			out.AddTriangle(t) //nolint:errcheck
		}
	}
	return out
}

// distinguishUnionIntersection picks out the union/intersection-pass block
// whose bounding box encloses every other's (base spec 4.7 step 7) as the
// union, and treats the rest, filtered to the ones that still pass
// GeometryCheck, as the intersection components.
//
// Grounded on robust_bool_ops.rs's Blocks::distinguish_u_and_i.
func distinguishUnionIntersection(blocksUI [][]int, subSurfaces []*subSurface, meshA, meshB *meshtopo.Mesh) (*meshtopo.Mesh, map[int]struct{}, []*meshtopo.Mesh) {
	meshes := make([]*meshtopo.Mesh, len(blocksUI))
	for i, block := range blocksUI {
		meshes[i] = meshFromBlock(subSurfaces, block, meshA, meshB, false, false)
	}

	best := 0
	bestBox := meshes[0].Bounds()
	for i := 1; i < len(meshes); i++ {
		box := meshes[i].Bounds()
		if box.Encloses(bestBox) {
			bestBox = box
			best = i
		}
	}

	union := meshes[best]
	unionBlock := make(map[int]struct{}, len(blocksUI[best]))
	for _, idx := range blocksUI[best] {
		unionBlock[idx] = struct{}{}
	}

	var intersections []*meshtopo.Mesh
	for i, m := range meshes {
		if i == best {
			continue
		}
		if m.GeometryCheck() {
			intersections = append(intersections, m)
		}
	}

	return union, unionBlock, intersections
}

// distinguishDifferences classifies each difference-pass block by which
// input mesh any one of its subsurfaces (that also belongs to the union
// block) came from: a block with a mesh-A member yields A∖B (A as-is, B
// reversed), one with a mesh-B member yields B∖A. Each emitted mesh is
// split into connectivity components and any component failing
// GeometryCheck is silently dropped as a spurious boundary artifact.
//
// Grounded on robust_bool_ops.rs's Blocks::distinguish_difs.
func distinguishDifferences(blocksDif [][]int, subSurfaces []*subSurface, meshA, meshB *meshtopo.Mesh, unionBlock map[int]struct{}) (difsAB, difsBA []*meshtopo.Mesh) {
	for _, block := range blocksDif {
		var marker int
		found := false
		for _, idx := range block {
			if _, ok := unionBlock[idx]; ok {
				marker = idx
				found = true
				break
			}
		}
		if !found {
			continue
		}

		if subSurfaces[marker].Side == sideA {
			m := meshFromBlock(subSurfaces, block, meshA, meshB, false, true)
			for _, comp := range m.SplitIntoComponents() {
				if comp.GeometryCheck() {
					difsAB = append(difsAB, comp)
				}
			}
		} else {
			m := meshFromBlock(subSurfaces, block, meshA, meshB, true, false)
			for _, comp := range m.SplitIntoComponents() {
				if comp.GeometryCheck() {
					difsBA = append(difsBA, comp)
				}
			}
		}
	}

	return difsAB, difsBA
}
