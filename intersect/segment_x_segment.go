package intersect

import "github.com/katalvlaran/meshbool/geom"

// SegmentXSegmentKind enumerates every outcome SegmentXSegment can report.
type SegmentXSegmentKind int

const (
	// SSSkew means the segments' lines do not share a plane.
	SSSkew SegmentXSegmentKind = iota
	// SSCollinear means the segments' lines are parallel but distinct.
	SSCollinear
	// DisjointInLine means the segments lie on the same line but their
	// spans do not overlap.
	DisjointInLine
	// DisjointInPlane means the segments' lines cross, but outside both
	// segments' bounded spans.
	DisjointInPlane
	// IntersectingInPoint means the segments cross at exactly one point.
	IntersectingInPoint
	// IntersectingInPointOnLine means the segments lie on the same line
	// and touch at exactly one shared endpoint.
	IntersectingInPointOnLine
	// IntersectingInSegment means the segments lie on the same line and
	// overlap over a sub-segment.
	IntersectingInSegment
)

// SegmentXSegmentResult is the tagged result of SegmentXSegment.
type SegmentXSegmentResult struct {
	Kind    SegmentXSegmentKind
	Point   geom.Point
	Segment geom.Segment
}

// SegmentXSegment intersects two bounded segments.
//
// It normalizes each segment into an ordered Line (Org <= Dest
// lexicographically) and delegates the classification to LineXLine;
// LLCoincident is refined by intersectSegmentsOnLine (the 1D overlap
// sub-algorithm below), and LLIntersecting is refined by checking the
// crossing point falls within both segments' bounds.
func SegmentXSegment(a, b geom.Segment) SegmentXSegmentResult {
	la := orderedLine(a)
	lb := orderedLine(b)

	res := LineXLine(la, lb)
	switch res.Kind {
	case Skew:
		return SegmentXSegmentResult{Kind: SSSkew}
	case LLCollinear:
		return SegmentXSegmentResult{Kind: SSCollinear}
	case LLCoincident:
		return intersectSegmentsOnLine(la.ConvertToSegment(), lb.ConvertToSegment())
	case LLIntersecting:
		p := res.Point
		if withinOrdered(p, la) && withinOrdered(p, lb) {
			return SegmentXSegmentResult{Kind: IntersectingInPoint, Point: p}
		}
		return SegmentXSegmentResult{Kind: DisjointInPlane}
	default:
		panic("intersect: SegmentXSegment: unreachable LineXLine kind")
	}
}

func orderedLine(s geom.Segment) geom.Line {
	org, dest := s.Org, s.Dest
	if !org.Less(dest) {
		org, dest = dest, org
	}
	l, err := geom.NewLine(org, dest)
	if err != nil {
		panic(err) // s is already known non-degenerate.
	}
	return l
}

func withinOrdered(p geom.Point, l geom.Line) bool {
	return !p.Less(l.Org) && !l.Dest.Less(p)
}

// directedSegment returns the segment spanning p1..p2 (in whichever order
// sorts first by parametric position along ref), so the caller can
// reorient a computed overlap sub-segment to match a reference segment's
// own direction.
func directedSegment(p1, p2 geom.Point, ref geom.Segment) geom.Segment {
	t1 := ref.AlongParameter(p1)
	t2 := ref.AlongParameter(p2)
	if t1.Cmp(t2) < 0 {
		seg, _ := geom.NewSegment(p1, p2)
		return seg
	}
	seg, _ := geom.NewSegment(p2, p1)
	return seg
}

// intersectSegmentsOnLine resolves the overlap of two segments known to lie
// on the same line. The returned overlap segment (when Kind ==
// IntersectingInSegment) is oriented to match argB's own original
// direction, not the internally flipped orientation used for comparison.
func intersectSegmentsOnLine(argA, argB geom.Segment) SegmentXSegmentResult {
	sa := flipIfDestLess(argA)
	sb := flipIfDestLess(argB)

	switch {
	case sa.Dest.Equal(sb.Org):
		return SegmentXSegmentResult{Kind: IntersectingInPointOnLine, Point: sa.Dest}
	case sb.Dest.Equal(sa.Org):
		return SegmentXSegmentResult{Kind: IntersectingInPointOnLine, Point: sb.Dest}
	case leq(sa.Org, sb.Org) && geq(sa.Dest, sb.Dest):
		// sa encloses sb.
		return SegmentXSegmentResult{Kind: IntersectingInSegment, Segment: directedSegment(sb.Org, sb.Dest, argB)}
	case leq(sb.Org, sa.Org) && geq(sb.Dest, sa.Dest):
		// sb encloses sa.
		return SegmentXSegmentResult{Kind: IntersectingInSegment, Segment: directedSegment(sa.Org, sa.Dest, argB)}
	case sb.Org.Less(sa.Dest) && sa.Dest.Less(sb.Dest):
		return SegmentXSegmentResult{Kind: IntersectingInSegment, Segment: directedSegment(sb.Org, sa.Dest, argB)}
	case sa.Org.Less(sb.Dest) && sb.Dest.Less(sa.Dest):
		return SegmentXSegmentResult{Kind: IntersectingInSegment, Segment: directedSegment(sa.Org, sb.Dest, argB)}
	default:
		return SegmentXSegmentResult{Kind: DisjointInLine}
	}
}

func leq(p, q geom.Point) bool { return !q.Less(p) }
func geq(p, q geom.Point) bool { return !p.Less(q) }

func flipIfDestLess(s geom.Segment) geom.Segment {
	if s.Dest.Less(s.Org) {
		return s.Flip()
	}
	return s
}
