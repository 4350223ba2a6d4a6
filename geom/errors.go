package geom

import "errors"

// ErrDegenerateSegment is returned by NewSegment and NewLine when the two
// supplied points are identical; a segment or line needs two distinct
// points to carry a direction.
var ErrDegenerateSegment = errors.New("geom: segment endpoints coincide")

// ErrDegenerateTriangle is returned where a triangle's three points must be
// affinely independent and are not.
var ErrDegenerateTriangle = errors.New("geom: triangle points coincide")
