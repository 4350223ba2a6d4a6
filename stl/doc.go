// Package stl reads and writes the binary STL triangle-soup format: an
// 80-byte header, a little-endian uint32 triangle count, then for each
// triangle a little-endian float32 normal, three float32 vertices, and a
// uint16 attribute byte count.
//
// The normal stored on disk is never trusted on read: every triangle's
// normal is recomputed from its vertices, matching the format's own
// ambiguity about which winding a reader should assume.
package stl
