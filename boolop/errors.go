package boolop

import "errors"

// Sentinel errors Run returns for invalid input. These are the only
// conditions a caller should be prepared to recover from; every other
// failure mode (a failed intermediate geometry_check, a malformed curve
// walk) is a programmer error and panics instead.
var (
	// ErrFirstMeshNotManifold means the first mesh failed GeometryCheck.
	ErrFirstMeshNotManifold = errors.New("boolop: first mesh is not manifold (geometry check failed)")
	// ErrSecondMeshNotManifold means the second mesh failed GeometryCheck.
	ErrSecondMeshNotManifold = errors.New("boolop: second mesh is not manifold (geometry check failed)")
	// ErrFirstMeshMultiComponent means the first mesh has more than one
	// connectivity component.
	ErrFirstMeshMultiComponent = errors.New("boolop: first mesh has more than one connectivity component")
	// ErrSecondMeshMultiComponent means the second mesh has more than one
	// connectivity component.
	ErrSecondMeshMultiComponent = errors.New("boolop: second mesh has more than one connectivity component")
	// ErrPlanarIntersection means some pair of triangles intersected
	// coplanarly, which this module hard-rejects rather than attempting to
	// resolve (see DESIGN.md for the superseded marker-tag approach).
	ErrPlanarIntersection = errors.New("boolop: meshes must not have planar intersections")
	// ErrNoIntersection means no candidate triangle pair intersected in a
	// segment (pairs that only touch at a point do not count).
	ErrNoIntersection = errors.New("boolop: meshes do not intersect")
)
