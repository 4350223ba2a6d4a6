package meshtopo

import (
	"fmt"

	"github.com/katalvlaran/meshbool/geom"
	"github.com/katalvlaran/meshbool/rational"
)

type triangleRecord struct {
	points    [3]int
	normal    geom.Vector
	neighbors map[int]struct{}
}

// Mesh is an indexed triangle mesh: every triangle is a triple of ids into
// a shared point table, plus per-triangle neighbor bookkeeping maintained
// incrementally as triangles are added and removed.
//
// The zero value is not usable; construct with NewMesh.
type Mesh struct {
	triangles      map[int]*triangleRecord
	nextID         int
	pointToID      map[string]int
	idToPoint      map[int]geom.Point
	pointTriangles map[int]map[int]struct{}
}

// NewMesh returns an empty Mesh ready to accept triangles.
func NewMesh() *Mesh {
	return &Mesh{
		triangles:      make(map[int]*triangleRecord),
		pointToID:      make(map[string]int),
		idToPoint:      make(map[int]geom.Point),
		pointTriangles: make(map[int]map[int]struct{}),
	}
}

// NumTriangles returns the number of triangles currently in the mesh.
func (m *Mesh) NumTriangles() int { return len(m.triangles) }

// NumPoints returns the number of distinct points currently referenced by
// at least one triangle's (original) insertion; points are never pruned
// from the table when their last referencing triangle is removed, matching
// the original kernel's ip_to_p bookkeeping.
func (m *Mesh) NumPoints() int { return len(m.idToPoint) }

// TriangleIDs returns every live triangle id, in no particular order.
func (m *Mesh) TriangleIDs() []int {
	ids := make([]int, 0, len(m.triangles))
	for id := range m.triangles {
		ids = append(ids, id)
	}
	return ids
}

// Points returns the id -> point table.
func (m *Mesh) Points() map[int]geom.Point {
	return m.idToPoint
}

func (m *Mesh) pointID(p geom.Point) int {
	key := p.Key()
	if id, ok := m.pointToID[key]; ok {
		return id
	}
	id := len(m.idToPoint)
	m.pointToID[key] = id
	m.idToPoint[id] = p
	m.pointTriangles[id] = make(map[int]struct{})
	return id
}

// AddTriangle inserts tr, rejecting it (with ErrDegenerateTriangle) if its
// three points are not affinely independent. It does not check for an
// exact duplicate of an already-present triangle.
//
// Every pair of triangles sharing at least one vertex is linked as a
// topological neighbor (mirroring add_triangle's add_neighbour calls,
// which fire for any shared point, not just shared edges).
func (m *Mesh) AddTriangle(tr geom.Triangle) (int, error) {
	if tr.DegradationLevel() != geom.Proper {
		return 0, fmt.Errorf("%w: %v", ErrDegenerateTriangle, tr.Points)
	}

	id := m.nextID
	m.nextID++

	rec := &triangleRecord{normal: tr.Normal, neighbors: make(map[int]struct{})}
	for i, p := range tr.Points {
		pid := m.pointID(p)
		rec.points[i] = pid
		for other := range m.pointTriangles[pid] {
			if _, stillLive := m.triangles[other]; stillLive {
				rec.neighbors[other] = struct{}{}
				m.triangles[other].neighbors[id] = struct{}{}
			}
		}
		m.pointTriangles[pid][id] = struct{}{}
	}

	m.triangles[id] = rec
	return id, nil
}

// AddTriangles inserts each triangle in ts, skipping (not failing on) any
// that AddTriangle rejects as degenerate.
func (m *Mesh) AddTriangles(ts []geom.Triangle) {
	for _, t := range ts {
		m.AddTriangle(t) //nolint:errcheck
	}
}

// RemoveTriangle deletes id from the mesh, unlinking it from every
// neighbor and from the point table's incidence sets. Removing an id that
// does not exist is a no-op.
func (m *Mesh) RemoveTriangle(id int) {
	rec, ok := m.triangles[id]
	if !ok {
		return
	}
	delete(m.triangles, id)
	for other := range rec.neighbors {
		if otherRec, ok := m.triangles[other]; ok {
			delete(otherRec.neighbors, id)
		}
	}
	for _, pid := range rec.points {
		delete(m.pointTriangles[pid], id)
	}
}

// Triangle returns the geometric triangle for id. It panics if id does not
// exist, since every caller of this method (including intersect.MeshXMesh,
// which this method exists to satisfy intersect.TriangleSource for) only
// ever iterates ids this Mesh itself just reported as live.
func (m *Mesh) Triangle(id int) geom.Triangle {
	rec, ok := m.triangles[id]
	if !ok {
		panic(fmt.Errorf("%w: %d", ErrTriangleNotFound, id))
	}
	p0 := m.idToPoint[rec.points[0]]
	p1 := m.idToPoint[rec.points[1]]
	p2 := m.idToPoint[rec.points[2]]
	return geom.Triangle{Points: [3]geom.Point{p0, p1, p2}, Normal: rec.normal}
}

// ReversedTriangle returns the geometric triangle for id with its first two
// points swapped (so its normal points the opposite way), matching
// get_reversed_triangle.
func (m *Mesh) ReversedTriangle(id int) geom.Triangle {
	tr := m.Triangle(id)
	return geom.Triangle{
		Points: [3]geom.Point{tr.Points[1], tr.Points[0], tr.Points[2]},
		Normal: tr.Normal.Neg(),
	}
}

// NeighborIDs returns every triangle sharing at least one vertex with id.
func (m *Mesh) NeighborIDs(id int) []int {
	rec, ok := m.triangles[id]
	if !ok {
		return nil
	}
	ids := make([]int, 0, len(rec.neighbors))
	for n := range rec.neighbors {
		ids = append(ids, n)
	}
	return ids
}

// CoincidentPointCount returns how many point ids triangles a and b share.
func (m *Mesh) CoincidentPointCount(a, b int) int {
	ra, ok := m.triangles[a]
	if !ok {
		return 0
	}
	rb, ok := m.triangles[b]
	if !ok {
		return 0
	}
	set := map[int]struct{}{ra.points[0]: {}, ra.points[1]: {}, ra.points[2]: {}}
	count := 0
	for _, p := range rb.points {
		if _, in := set[p]; in {
			count++
		}
	}
	return count
}

// FindEdgeNeighbors returns id's edge neighbors: the subset of its
// topological neighbors sharing exactly two points with it (i.e. a full
// edge, not just a vertex). On a valid closed manifold this always has
// exactly three elements. Panics if any neighbor shares all three points
// (a literal duplicate triangle, which the source algorithm also treats as
// an invariant violation).
func (m *Mesh) FindEdgeNeighbors(id int) []int {
	var out []int
	for _, n := range m.NeighborIDs(id) {
		switch c := m.CoincidentPointCount(id, n); {
		case c == 2:
			out = append(out, n)
		case c > 2:
			panic(fmt.Errorf("meshtopo: triangles %d and %d share all vertices", id, n))
		}
	}
	return out
}

// GeometryCheck reports whether every triangle has exactly three edge
// neighbors and exactly three distinct points, the condition for a closed,
// two-manifold surface with no holes or self-intersections.
func (m *Mesh) GeometryCheck() bool {
	for id := range m.triangles {
		if len(m.FindEdgeNeighbors(id)) != 3 {
			return false
		}
	}
	return true
}

// TrianglesByDirectedEdge returns the two triangles incident to the
// (unordered) edge {p1, p2}, ordered so the first ("plus") traverses the
// edge org->dest in the direction p1->p2 in its own winding, and the
// second ("minus") traverses it dest->org. ok is false if either point is
// unknown or the edge is not shared by exactly two live triangles.
func (m *Mesh) TrianglesByDirectedEdge(p1, p2 geom.Point) (plus, minus int, ok bool) {
	id1, known1 := m.pointToID[p1.Key()]
	id2, known2 := m.pointToID[p2.Key()]
	if !known1 || !known2 {
		return 0, 0, false
	}

	var shared []int
	for t := range m.pointTriangles[id1] {
		if _, in := m.pointTriangles[id2][t]; in {
			shared = append(shared, t)
		}
	}
	if len(shared) != 2 {
		return 0, 0, false
	}

	a, b := shared[0], shared[1]
	if m.triangleHasDirectedEdge(a, p1, p2) {
		return a, b, true
	}
	return b, a, true
}

func (m *Mesh) triangleHasDirectedEdge(id int, p1, p2 geom.Point) bool {
	tr := m.Triangle(id)
	for i := 0; i < 3; i++ {
		cur := tr.Points[i]
		next := tr.Points[(i+1)%3]
		if cur.Equal(p1) && next.Equal(p2) {
			return true
		}
	}
	return false
}

// SplitIntoComponents partitions the mesh into maximal topologically
// connected pieces (connected via NeighborIDs, i.e. any shared vertex, not
// just shared edges), each returned as its own Mesh.
func (m *Mesh) SplitIntoComponents() []*Mesh {
	visited := make(map[int]bool, len(m.triangles))
	var components []*Mesh

	for start := range m.triangles {
		if visited[start] {
			continue
		}
		comp := NewMesh()
		stack := []int{start}
		for len(stack) > 0 {
			id := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if visited[id] {
				continue
			}
			visited[id] = true
			comp.AddTriangle(m.Triangle(id)) //nolint:errcheck
			stack = append(stack, m.NeighborIDs(id)...)
		}
		components = append(components, comp)
	}
	return components
}

// Bounds returns the tight axis-aligned bounding box of every point in the
// mesh's table. Panics if the mesh has no points.
func (m *Mesh) Bounds() geom.Box {
	if len(m.idToPoint) == 0 {
		panic("meshtopo: Bounds of an empty mesh")
	}
	var box geom.Box
	first := true
	for _, p := range m.idToPoint {
		if first {
			box = geom.BoxFromPoint(p)
			first = false
			continue
		}
		box = box.Union(geom.BoxFromPoint(p))
	}
	return box
}

// rotationTerms is the Maclaurin series term count used by the rotation
// helpers below; it is not exposed for tuning since these helpers exist
// only to generate rotated fixture meshes for tests (see SPEC_FULL.md).
const rotationTerms = 12

// RotateX rotates every point in the mesh about the X axis by angle
// (radians, as an exact rational), recomputing every triangle's normal
// afterward. sin/cos are the memoized Maclaurin approximations from
// rational.Sin/Cos.
func (m *Mesh) RotateX(angle rational.Number) {
	m.rotate(angle, func(p geom.Point, s, c rational.Number) geom.Point {
		y := p.Y.Mul(c).Sub(p.Z.Mul(s))
		z := p.Y.Mul(s).Add(p.Z.Mul(c))
		return geom.NewPoint(p.X, y, z)
	})
}

// RotateY is RotateX's Y-axis counterpart.
func (m *Mesh) RotateY(angle rational.Number) {
	m.rotate(angle, func(p geom.Point, s, c rational.Number) geom.Point {
		z := p.Z.Mul(c).Sub(p.X.Mul(s))
		x := p.Z.Mul(s).Add(p.X.Mul(c))
		return geom.NewPoint(x, p.Y, z)
	})
}

// RotateZ is RotateX's Z-axis counterpart.
func (m *Mesh) RotateZ(angle rational.Number) {
	m.rotate(angle, func(p geom.Point, s, c rational.Number) geom.Point {
		x := p.X.Mul(c).Sub(p.Y.Mul(s))
		y := p.X.Mul(s).Add(p.Y.Mul(c))
		return geom.NewPoint(x, y, p.Z)
	})
}

func (m *Mesh) rotate(angle rational.Number, apply func(geom.Point, rational.Number, rational.Number) geom.Point) {
	sin := rational.Sin(angle, rotationTerms)
	cos := rational.Cos(angle, rotationTerms)

	rotated := make(map[int]geom.Point, len(m.idToPoint))
	newPointToID := make(map[string]int, len(m.idToPoint))
	for id, p := range m.idToPoint {
		np := apply(p, sin, cos)
		rotated[id] = np
		newPointToID[np.Key()] = id
	}
	m.idToPoint = rotated
	m.pointToID = newPointToID

	for _, rec := range m.triangles {
		p0 := m.idToPoint[rec.points[0]]
		p1 := m.idToPoint[rec.points[1]]
		p2 := m.idToPoint[rec.points[2]]
		rec.normal = geom.NewTriangle(p0, p1, p2).Normal
	}
}
