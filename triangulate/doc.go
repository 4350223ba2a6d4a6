// Package triangulate turns a planar region (a triangle cut by boundary
// curves, or a nested tree of polygon loops) back into a flat list of
// triangles.
//
// Every routine here works on the X/Y projection of a folded frame:
// classifyFold and foldPoint swap axes so that the plane's normal has a
// nonzero Z component (planes whose normal already has one are left as
// they are), which makes the X/Y projection non-degenerate; unfoldPoint
// swaps back, and restoreOrientation restores the original winding from
// the orientation sign computed before folding.
package triangulate
