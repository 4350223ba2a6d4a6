package triangulate

import (
	"github.com/katalvlaran/meshbool/geom"
	"github.com/katalvlaran/meshbool/rational"
)

// axisFold names which of a plane normal's components are zero, the same
// seven-way split triangulation3d.rs's classify_normal uses to pick a
// cheap axis-swap projection instead of a general change of basis.
type axisFold int

const (
	foldNone axisFold = iota // all three components nonzero: already flat enough to leave alone
	foldAB                   // z component zero
	foldAC                   // y component zero
	foldBC                   // x component zero
	foldA                    // only x nonzero
	foldB                    // only y nonzero
	foldC                    // only z nonzero
)

func classifyFold(normal geom.Vector) axisFold {
	zx, zy, zz := normal.X.IsZero(), normal.Y.IsZero(), normal.Z.IsZero()
	switch {
	case !zx && !zy && !zz:
		return foldNone
	case !zx && !zy && zz:
		return foldAB
	case !zx && zy && !zz:
		return foldAC
	case zx && !zy && !zz:
		return foldBC
	case !zx && zy && zz:
		return foldA
	case zx && !zy && zz:
		return foldB
	case zx && zy && !zz:
		return foldC
	default:
		panic("triangulate: plane normal cannot be the zero vector")
	}
}

// foldPoint moves p into the fold's working frame; unfoldPoint inverts
// it. The two axis swaps composing each
// case are applied in reverse order to invert, since swap is its own
// inverse.
func foldPoint(p geom.Point, f axisFold) geom.Point {
	switch f {
	case foldAB, foldB:
		return p.SwapYZ().SwapXY()
	case foldA:
		return p.SwapXZ().SwapXY()
	default:
		return p
	}
}

func unfoldPoint(p geom.Point, f axisFold) geom.Point {
	switch f {
	case foldAB, foldB:
		return p.SwapXY().SwapYZ()
	case foldA:
		return p.SwapXY().SwapXZ()
	default:
		return p
	}
}

func foldVector(v geom.Vector, f axisFold) geom.Vector {
	switch f {
	case foldAB, foldB:
		return v.SwapYZ().SwapXY()
	case foldA:
		return v.SwapXZ().SwapXY()
	default:
		return v
	}
}

func foldSegment(s geom.Segment, f axisFold) geom.Segment {
	return geom.Segment{Org: foldPoint(s.Org, f), Dest: foldPoint(s.Dest, f)}
}

func foldTriangle(t geom.Triangle, f axisFold) geom.Triangle {
	return geom.NewTriangle(foldPoint(t.Points[0], f), foldPoint(t.Points[1], f), foldPoint(t.Points[2], f))
}

// orientationSign mirrors triangulate_ptree3d/triangulate3d's orientation
// check: the mixed product of the X and Y unit vectors against the
// (already-folded) plane normal. Positive means the folded frame is still
// right-handed with the original winding; negative means the unmapped
// triangles need their first two vertices swapped to restore it.
func orientationSign(foldedNormal geom.Vector) rational.Number {
	i := geom.NewVector(rational.One, rational.Zero, rational.Zero)
	j := geom.NewVector(rational.Zero, rational.One, rational.Zero)
	return i.MixedProduct(j, foldedNormal)
}

// restoreOrientation unmaps a folded 2D triangle back into 3D, reversing
// its first two vertices when sign is not positive so the output keeps
// the winding the input plane's normal implied.
func restoreOrientation(t geom.Triangle, f axisFold, sign rational.Number) geom.Triangle {
	p0 := unfoldPoint(t.Points[0], f)
	p1 := unfoldPoint(t.Points[1], f)
	p2 := unfoldPoint(t.Points[2], f)
	if sign.IsPositive() {
		return geom.NewTriangle(p0, p1, p2)
	}
	return geom.NewTriangle(p1, p0, p2)
}
