// Package meshtopo implements the indexed-triangle-mesh topology every
// other package above it builds on: a point<->id bijection, per-triangle
// adjacency (both "shares any vertex" and the stricter "shares exactly two
// vertices, i.e. an edge"), manifold/closed-surface validation, and
// connectivity-component splitting.
//
// A Mesh never stores a triangle's points directly; every triangle is a
// triple of point ids into a shared point table, so coincident vertices
// across triangles are automatically identified (two points compare equal
// iff every coordinate matches exactly, via rational.Number's exact
// equality) rather than merely being close.
package meshtopo
