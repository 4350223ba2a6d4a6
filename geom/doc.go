// Package geom provides the exact-rational geometric value types this
// module's predicates and mesh operations are built on: Point, Vector,
// Segment, Line, Plane, Triangle, Polygon, PolygonTreeNode, and the shared
// axis-aligned Box.
//
// Every coordinate is a rational.Number; there is no float64 anywhere in
// this package's value representation. Point, Vector, Segment, Line, Plane,
// Triangle and Box are immutable value types (their methods return new
// values rather than mutating receivers); Polygon.AddPoint and
// PolygonTreeNode.AddChild are the exceptions and modify their receivers.
package geom
