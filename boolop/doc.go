// Package boolop performs robust Boolean combination (union, intersection,
// A∖B, B∖A) of two closed, manifold, single-component triangle meshes using
// exact rational arithmetic throughout.
//
// Run executes the seven-step pipeline: pre-flight validation, pairwise
// triangle intersection (via aabb's candidate-pair tree and intersect's
// exact predicates), retriangulation of every cut triangle (via
// triangulate), curve assembly, subsurface growth, two-pass block
// traversal, and union/intersection/difference distinguishing. The engine
// is synchronous and single-threaded; ctx is only checked between phases.
//
// Grounded on bool_op/robust_bool_ops.rs's BoolOpResult::new in full.
package boolop
