// Package linalg provides the small dense linear solver the pairwise
// intersectors (C4) use to find line/plane intersection parameters: a 3x3
// Gaussian elimination with partial pivoting over exact rationals.
//
// The system this module ever needs to solve is fixed at 3x3 (base spec
// 4.2), so linalg does not generalize to arbitrary dimensions the way the
// teacher repository's own matrix/ops package does for its float64-backed
// dense matrices; see DESIGN.md for why that package was not reused here.
package linalg
