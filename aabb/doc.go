// Package aabb builds a bottom-up tree of axis-aligned bounding boxes over
// a mesh's triangles, and uses two such trees to prune the O(n*m)
// candidate pair space down to the pairs worth a full geometric test.
//
// The tree's construction deliberately does not balance by box volume or
// surface-area heuristic (as a generic R-tree would): it pairs each
// triangle with a same-level topological mesh neighbor, bottom-up,
// producing a tree whose shape tracks the mesh's own connectivity. This
// mirrors the original kernel's TreeAABT exactly; see DESIGN.md for why a
// generic spatial index (github.com/dhconnelly/rtreego, wired elsewhere in
// this module) is not a substitute for it.
package aabb
