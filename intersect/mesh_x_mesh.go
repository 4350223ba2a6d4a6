package intersect

import "github.com/katalvlaran/meshbool/geom"

// TriangleSource looks up a triangle by its integer id within a mesh. Both
// meshtopo.Mesh and any ad-hoc triangle list satisfy this by exposing a
// Triangle method.
type TriangleSource interface {
	Triangle(id int) geom.Triangle
}

// CandidatePair names two triangles, one from each mesh, that an AABB
// descent judged close enough to be worth a full intersection test.
type CandidatePair struct {
	A, B int
}

// MeshXMeshEntry is one confirmed intersecting pair, carrying the full
// tagged result so callers (curve assembly) can recover the exact
// geometry of the crossing.
type MeshXMeshEntry struct {
	IndexA, IndexB int
	Result         TriangleXTriangleResult
}

// MeshXMesh tests every candidate pair's triangles against each other and
// keeps only the pairs that actually intersect.
//
// Unlike the source algorithm's mesh_x_mesh::intersect, which generates its
// own candidate pairs via an O(n*m) enumerate_simple brute force, this
// takes the candidate list as a parameter so the caller can supply the
// output of a bottom-up AABB tree descent instead (base spec 4.5/4.7 Step
// 2 mandates exactly that pruning), without this package needing to
// depend on the tree's package.
func MeshXMesh(a, b TriangleSource, pairs []CandidatePair) []MeshXMeshEntry {
	var out []MeshXMeshEntry
	for _, pair := range pairs {
		trA := a.Triangle(pair.A)
		trB := b.Triangle(pair.B)
		res := TriangleXTriangle(trA, trB)
		if res.Kind.DoesItIntersect() {
			out = append(out, MeshXMeshEntry{IndexA: pair.A, IndexB: pair.B, Result: res})
		}
	}
	return out
}
