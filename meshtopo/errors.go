package meshtopo

import "errors"

// ErrDegenerateTriangle is returned by AddTriangle when the supplied
// triangle's points are not affinely independent (collinear or coincident).
var ErrDegenerateTriangle = errors.New("meshtopo: degenerate triangle")

// ErrTriangleNotFound is wrapped into the panic value Mesh.Triangle raises
// for a triangle id that no longer exists (never added, or already
// removed).
var ErrTriangleNotFound = errors.New("meshtopo: triangle id not found")

// ErrNotManifold names a mesh with at least one edge without exactly two
// incident triangles. No function in this module returns it: GeometryCheck
// reports the condition as a bool, and boolop.Run returns its own
// ErrFirstMeshNotManifold / ErrSecondMeshNotManifold.
var ErrNotManifold = errors.New("meshtopo: mesh is not a closed manifold")
