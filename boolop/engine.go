package boolop

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/meshbool/aabb"
	"github.com/katalvlaran/meshbool/geom"
	"github.com/katalvlaran/meshbool/intersect"
	"github.com/katalvlaran/meshbool/meshtopo"
	"github.com/katalvlaran/meshbool/triangulate"
)

// Engine holds the retriangulated input meshes and the pre-computed result
// of every Boolean combination, per base spec 4.7/6.
type Engine struct {
	intermediateA *meshtopo.Mesh
	intermediateB *meshtopo.Mesh
	union         *meshtopo.Mesh
	intersections []*meshtopo.Mesh
	differencesAB []*meshtopo.Mesh
	differencesBA []*meshtopo.Mesh
}

// Union returns A ∪ B.
func (e *Engine) Union() *meshtopo.Mesh { return e.union }

// Intersection returns every A ∩ B component.
func (e *Engine) Intersection() []*meshtopo.Mesh { return e.intersections }

// DifferenceAB returns every A∖B component.
func (e *Engine) DifferenceAB() []*meshtopo.Mesh { return e.differencesAB }

// DifferenceBA returns every B∖A component.
func (e *Engine) DifferenceBA() []*meshtopo.Mesh { return e.differencesBA }

// Intermediate returns the retriangulated A and B meshes, for diagnostics.
func (e *Engine) Intermediate() (*meshtopo.Mesh, *meshtopo.Mesh) {
	return e.intermediateA, e.intermediateB
}

// Run performs the seven-step Boolean pipeline over meshA and meshB and
// returns an Engine holding every precomputed result, or one of the
// sentinel errors in errors.go if the inputs are invalid.
//
// ctx is checked between phases only; Run itself is synchronous and does
// not spawn goroutines.
//
// Grounded on robust_bool_ops.rs's BoolOpResult::new.
func Run(ctx context.Context, meshA, meshB *meshtopo.Mesh, opts ...Option) (*Engine, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	opID := uuid.New().String()
	logf := func(phase string, start time.Time, format string, args ...interface{}) {
		cfg.logger.Printf("[%s] %s: "+format+" (%s)", append(append([]interface{}{opID, phase}, args...), time.Since(start))...)
	}

	// Step 1 — pre-flight.
	step1Start := time.Now()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !meshA.GeometryCheck() {
		return nil, ErrFirstMeshNotManifold
	}
	if !meshB.GeometryCheck() {
		return nil, ErrSecondMeshNotManifold
	}
	componentsA := meshA.SplitIntoComponents()
	if len(componentsA) != 1 {
		return nil, ErrFirstMeshMultiComponent
	}
	componentsB := meshB.SplitIntoComponents()
	if len(componentsB) != 1 {
		return nil, ErrSecondMeshMultiComponent
	}
	a, b := componentsA[0], componentsB[0]
	logf("pre-flight", step1Start, "%d triangles in A, %d in B", a.NumTriangles(), b.NumTriangles())

	// Step 2 — pairwise intersection.
	step2Start := time.Now()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	treeA, treeB := aabb.New(a), aabb.New(b)
	pairs := aabb.Pairs(treeA, treeB)
	candidates := make([]intersect.CandidatePair, len(pairs))
	for i, p := range pairs {
		candidates[i] = intersect.CandidatePair{A: p.A, B: p.B}
	}
	entries := intersect.MeshXMesh(a, b, candidates)

	itToSegsA := make(map[int][]geom.Segment)
	itToSegsB := make(map[int][]geom.Segment)
	for _, e := range entries {
		switch e.Result.Kind {
		case intersect.TTIntersecting:
			addSegment(itToSegsA, e.IndexA, e.Result.Segment)
			addSegment(itToSegsB, e.IndexB, e.Result.Segment)
		case intersect.CoplanarIntersecting:
			return nil, ErrPlanarIntersection
		}
	}
	if len(itToSegsA) == 0 && len(itToSegsB) == 0 {
		return nil, ErrNoIntersection
	}
	logf("intersect", step2Start, "%d candidate pairs, %d confirmed", len(pairs), len(entries))

	// Step 3 — retriangulate.
	step3Start := time.Now()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	retriA := retriangulateMesh(a, itToSegsA)
	retriB := retriangulateMesh(b, itToSegsB)
	if !retriA.GeometryCheck() {
		panic("boolop: retriangulated first mesh failed geometry check")
	}
	if !retriB.GeometryCheck() {
		panic("boolop: retriangulated second mesh failed geometry check")
	}
	logf("retriangulate", step3Start, "%d -> %d triangles in A, %d -> %d in B",
		a.NumTriangles(), retriA.NumTriangles(), b.NumTriangles(), retriB.NumTriangles())

	// Step 4 — build curves.
	step4Start := time.Now()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	curves := assembleCurves(itToSegsA, retriA, retriB)
	logf("curves", step4Start, "%d closed curves", len(curves))

	// Step 5 — grow subsurfaces.
	step5Start := time.Now()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	subSurfaces := growSubSurfaces(curves, retriA, retriB)
	logf("sub-surfaces", step5Start, "%d sub-surfaces", len(subSurfaces))

	// Step 6 — block traversal.
	step6Start := time.Now()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	blocksUI := dfsBlocks(subSurfaces, curves, false)
	blocksDif := dfsBlocks(subSurfaces, curves, true)
	logf("blocks", step6Start, "%d union/intersection blocks, %d difference blocks", len(blocksUI), len(blocksDif))

	// Step 7 — distinguish.
	step7Start := time.Now()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	union, unionBlock, intersections := distinguishUnionIntersection(blocksUI, subSurfaces, retriA, retriB)
	difsAB, difsBA := distinguishDifferences(blocksDif, subSurfaces, retriA, retriB, unionBlock)
	logf("distinguish", step7Start, "union + %d intersections, %d A\\B, %d B\\A", len(intersections), len(difsAB), len(difsBA))

	return &Engine{
		intermediateA: retriA,
		intermediateB: retriB,
		union:         union,
		intersections: intersections,
		differencesAB: difsAB,
		differencesBA: difsBA,
	}, nil
}

func addSegment(m map[int][]geom.Segment, id int, s geom.Segment) {
	for _, existing := range m[id] {
		if existing.Equal(s) {
			return
		}
	}
	m[id] = append(m[id], s)
}

// retriangulateMesh rebuilds mesh, replacing every triangle that has cut
// segments with triangulate.WithConstraints's output and keeping every
// other triangle unchanged.
//
// Grounded on robust_bool_ops.rs's BoolOpResult::re_triangulate_mesh.
func retriangulateMesh(mesh *meshtopo.Mesh, itToSegs map[int][]geom.Segment) *meshtopo.Mesh {
	out := meshtopo.NewMesh()
	for _, id := range mesh.TriangleIDs() {
		t := mesh.Triangle(id)
		if segs, ok := itToSegs[id]; ok {
			for _, piece := range triangulate.WithConstraints(t, segs) {
				out.AddTriangle(piece) //nolint:errcheck
			}
			continue
		}
		out.AddTriangle(t) //nolint:errcheck
	}
	return out
}
