package intersect

import "github.com/katalvlaran/meshbool/geom"

// LineXSegmentKind enumerates every outcome LineXSegment can report. It is
// the same type as SegmentXSegmentKind, so LineXSegment reuses that type's
// IntersectingInPoint (the line crosses the segment at one point within
// it or at an endpoint), IntersectingInSegment (the line is coincident
// with the segment's line) and DisjointInPlane (the line crosses the
// segment's line outside the segment's bounded span).
type LineXSegmentKind = SegmentXSegmentKind

const (
	// LSSkew means the line and the segment's line do not share a plane.
	LSSkew = SSSkew
	// LSCollinear means the line is parallel to the segment's line but
	// distinct from it.
	LSCollinear = SSCollinear
)

// LineXSegmentResult is the tagged result of LineXSegment.
type LineXSegmentResult struct {
	Kind    LineXSegmentKind
	Point   geom.Point
	Segment geom.Segment
}

// LineXSegment intersects a line against a bounded segment by delegating to
// LineXLine on the segment's containing line, then refining the
// Intersecting/Coincident cases against the segment's actual bounds.
//
// When the line is coincident with the segment's line (LLCoincident),
// every point of s lies on the line, so this returns IntersectingInSegment
// carrying s itself (its own two defining points) as the payload segment.
func LineXSegment(l geom.Line, s geom.Segment) LineXSegmentResult {
	res := LineXLine(l, s.GenLine())
	switch res.Kind {
	case Skew:
		return LineXSegmentResult{Kind: LSSkew}
	case LLCollinear:
		return LineXSegmentResult{Kind: LSCollinear}
	case LLCoincident:
		return LineXSegmentResult{Kind: IntersectingInSegment, Segment: s}
	case LLIntersecting:
		if s.ContainsPoint(res.Point) {
			return LineXSegmentResult{Kind: IntersectingInPoint, Point: res.Point}
		}
		return LineXSegmentResult{Kind: DisjointInPlane}
	default:
		panic("intersect: LineXSegment: unreachable LineXLine kind")
	}
}
