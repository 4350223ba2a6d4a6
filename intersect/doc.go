// Package intersect implements the pairwise geometric intersectors (C4):
// Line x Line, Line x Plane, Plane x Plane, Line x Segment, Segment x
// Segment, and Triangle x Triangle. Every intersector returns a tagged
// result struct (a Kind enum plus the payload fields that Kind implies);
// callers are expected to switch exhaustively over Kind.
//
// All arithmetic is exact (rational.Number); the only place a linear system
// is solved is via linalg.Solve3x3, used by LineXLine and PlaneXPlane to
// find an intersection parameter along an auxiliary well-posed 3x3 system.
package intersect
