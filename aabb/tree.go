package aabb

import "github.com/katalvlaran/meshbool/geom"

// Source is whatever a Tree is built over: a mesh's live triangle ids, the
// geometric triangle behind each id, and which other ids are topological
// neighbors (sharing at least one vertex). meshtopo.Mesh satisfies this
// directly.
type Source interface {
	TriangleIDs() []int
	Triangle(id int) geom.Triangle
	NeighborIDs(id int) []int
}

// Tree is a bottom-up hierarchy of bounding boxes over one mesh's
// triangles. Leaf boxes share their ids with the mesh's own triangle ids;
// every internal box gets a newly minted id above the mesh's own range.
type Tree struct {
	boxes      map[int]geom.Box
	successors map[int][]int
	parent     map[int]int
	maxIndex   int
	rootIndex  int
}

// New builds a Tree over every live triangle in src, pairing boxes
// level by level (each box paired with one still-unparented topological
// neighbor, or promoted alone if none remains) until a single root box
// remains.
//
// This assumes src's topological-neighbor graph is connected (true for any
// single connectivity component; boolop always splits a mesh into its
// components with meshtopo.Mesh.SplitIntoComponents before building a
// Tree over each).
func New(src Source) *Tree {
	t := &Tree{
		boxes:      make(map[int]geom.Box),
		successors: make(map[int][]int),
		parent:     make(map[int]int),
	}

	layer := newLeafLayer(src, t)
	if len(layer) == 0 {
		panic("aabb: cannot build a tree over an empty mesh")
	}
	for len(layer) > 1 {
		layer = t.nextLayer(layer)
	}
	for id := range layer {
		t.rootIndex = id
	}
	return t
}

func newLeafLayer(src Source, t *Tree) map[int]map[int]struct{} {
	neighbors := make(map[int]map[int]struct{})
	for _, id := range src.TriangleIDs() {
		t.boxes[id] = geom.BoxFromTriangle(src.Triangle(id))
		if id > t.maxIndex {
			t.maxIndex = id
		}
		ns := make(map[int]struct{})
		for _, n := range src.NeighborIDs(id) {
			ns[n] = struct{}{}
		}
		neighbors[id] = ns
	}
	return neighbors
}

// nextLayer pairs up every box in layer with an unparented neighbor (or
// promotes it alone if no unparented neighbor remains), producing the
// neighbor graph of the next level up.
func (t *Tree) nextLayer(layer map[int]map[int]struct{}) map[int]map[int]struct{} {
	next := make(map[int]map[int]struct{})

	var start int
	for id := range layer {
		start = id
		break
	}
	stack := []int{start}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, done := t.parent[cur]; done {
			continue
		}

		ns := layer[cur]
		var pairedNeighbor int
		paired := false
		for nb := range ns {
			if _, done := t.parent[nb]; !done {
				pairedNeighbor = nb
				paired = true
				break
			}
		}

		var parentID int
		if paired {
			t.maxIndex++
			parentID = t.maxIndex
			parentBox := t.boxes[pairedNeighbor].Union(t.boxes[cur])
			t.boxes[parentID] = parentBox
			next[parentID] = make(map[int]struct{})
			t.successors[parentID] = []int{pairedNeighbor, cur}
			t.parent[pairedNeighbor] = parentID
			t.parent[cur] = parentID
		} else {
			t.maxIndex++
			parentID = t.maxIndex
			t.boxes[parentID] = t.boxes[cur]
			t.parent[cur] = parentID
			next[parentID] = make(map[int]struct{})
			t.successors[parentID] = []int{cur}
		}

		merged := make(map[int]struct{}, len(ns))
		for nb := range ns {
			merged[nb] = struct{}{}
		}
		if paired {
			for nb := range layer[pairedNeighbor] {
				merged[nb] = struct{}{}
			}
			delete(merged, pairedNeighbor)
			delete(merged, cur)
		}

		for nb := range merged {
			if _, done := t.parent[nb]; !done {
				stack = append(stack, nb)
			} else {
				nbParent := t.parent[nb]
				if next[nbParent] == nil {
					next[nbParent] = make(map[int]struct{})
				}
				next[nbParent][parentID] = struct{}{}
				next[parentID][nbParent] = struct{}{}
			}
		}
	}

	return next
}

// Pairs descends a and b together, following into whichever tree's box is
// not yet a leaf whenever the boxes overlap, and returns every leaf-pair
// (original triangle id pair) whose boxes overlap all the way down.
func Pairs(a, b *Tree) []CandidatePair {
	type frame struct{ ia, ib int }
	stack := []frame{{a.rootIndex, b.rootIndex}}
	var out []CandidatePair

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		boxA := a.boxes[f.ia]
		boxB := b.boxes[f.ib]
		if !boxA.Intersects(boxB) {
			continue
		}

		succA, hasA := a.successors[f.ia]
		succB, hasB := b.successors[f.ib]

		switch {
		case !hasA && !hasB:
			out = append(out, CandidatePair{A: f.ia, B: f.ib})
		case !hasA:
			for _, sb := range succB {
				stack = append(stack, frame{f.ia, sb})
			}
		case !hasB:
			for _, sa := range succA {
				stack = append(stack, frame{sa, f.ib})
			}
		default:
			for _, sa := range succA {
				for _, sb := range succB {
					stack = append(stack, frame{sa, sb})
				}
			}
		}
	}
	return out
}

// CandidatePair names two leaf box ids (original mesh triangle ids, one
// from each tree) whose bounding boxes overlap all the way down both
// trees. It is intersect.CandidatePair's exact shape, duplicated here so
// this package does not need to import intersect; callers convert
// trivially when calling intersect.MeshXMesh.
type CandidatePair struct {
	A, B int
}
