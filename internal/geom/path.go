// Package geom is the kernel's geometry layer: curves and surfaces, kept
// separate from the topology graph in internal/topo and bound to it only
// through internal/geombind, the same separation of concerns as the
// original kernel's geometry/topology split.
//
// Grounded on fj-kernel/src/path.rs and fj-kernel/src/geometry/surface.rs
// (original_source).
package geom

import "github.com/ajsb85/brepkernel/internal/xmath"

// PathKind discriminates the two path3 geometry kinds the kernel supports.
// Go has no sum types, so this mirrors the original's GlobalPath enum with
// a kind tag plus the two payload fields, the more common encoding for
// closed variant sets in Go (as used throughout ajsb85-sdfx's step package
// for ordered STEP entity types).
type PathKind int

const (
	PathLine PathKind = iota
	PathCircle
)

// Path3 is a one-dimensional path through global (3D) space: either a line
// or a circle. It is the curve-independent geometry a Curve object is bound
// to, and is also used as a surface's u-axis.
type Path3 struct {
	Kind   PathKind
	Line   xmath.Line3
	Circle xmath.Circle3
}

func LineFromPoints3(a, b xmath.Point3) Path3 {
	return Path3{Kind: PathLine, Line: xmath.Line3FromPoints(a, b)}
}

func LinePath3(l xmath.Line3) Path3 { return Path3{Kind: PathLine, Line: l} }

func CirclePath3(c xmath.Circle3) Path3 { return Path3{Kind: PathCircle, Circle: c} }

// XAxis3, YAxis3 and ZAxis3 construct the three global coordinate axes,
// used as the u-paths of the kernel's three builtin planes.
func XAxis3() Path3 {
	return LinePath3(xmath.NewLine3(xmath.Point3{}, xmath.NewVector3(1, 0, 0)))
}

func YAxis3() Path3 {
	return LinePath3(xmath.NewLine3(xmath.Point3{}, xmath.NewVector3(0, 1, 0)))
}

func ZAxis3() Path3 {
	return LinePath3(xmath.NewLine3(xmath.Point3{}, xmath.NewVector3(0, 0, 1)))
}

// Origin returns the point at which the path's local coordinate system
// starts (local coordinate 0).
func (p Path3) Origin() xmath.Point3 {
	switch p.Kind {
	case PathCircle:
		return p.Circle.Center.Add(p.Circle.A)
	default:
		return p.Line.Origin
	}
}

func (p Path3) PointFromLocal(t xmath.Point1) xmath.Point3 {
	switch p.Kind {
	case PathCircle:
		return p.Circle.PointFromLocal(t)
	default:
		return p.Line.PointFromLocal(t)
	}
}

func (p Path3) PointToLocal(pt xmath.Point3) xmath.Point1 {
	switch p.Kind {
	case PathCircle:
		return p.Circle.PointToLocal(pt)
	default:
		return p.Line.PointToLocal(pt)
	}
}

func (p Path3) Reverse() Path3 {
	switch p.Kind {
	case PathCircle:
		return CirclePath3(p.Circle.Reverse())
	default:
		return LinePath3(p.Line.Reverse())
	}
}

func (p Path3) Transform(t xmath.Transform) Path3 {
	switch p.Kind {
	case PathCircle:
		return CirclePath3(p.Circle.Transform(t))
	default:
		return LinePath3(p.Line.Transform(t))
	}
}

// Path2 is the surface-local analogue of Path3, used as a curve-on-surface
// path (e.g. a sketch's circular or straight edges, expressed in the
// surface's 2D coordinates).
type Path2 struct {
	Kind   PathKind
	Line   xmath.Line2
	Circle xmath.Circle2
}

func LineFromPoints2(a, b xmath.Point2) Path2 {
	return Path2{Kind: PathLine, Line: xmath.Line2FromPoints(a, b)}
}

func LinePath2(l xmath.Line2) Path2 { return Path2{Kind: PathLine, Line: l} }

func CirclePath2(c xmath.Circle2) Path2 { return Path2{Kind: PathCircle, Circle: c} }

func (p Path2) PointFromLocal(t xmath.Point1) xmath.Point2 {
	switch p.Kind {
	case PathCircle:
		return p.Circle.PointFromLocal(t)
	default:
		return p.Line.PointFromLocal(t)
	}
}

func (p Path2) PointToLocal(pt xmath.Point2) xmath.Point1 {
	switch p.Kind {
	case PathCircle:
		return p.Circle.PointToLocal(pt)
	default:
		return p.Line.PointToLocal(pt)
	}
}

func (p Path2) Reverse() Path2 {
	switch p.Kind {
	case PathCircle:
		return CirclePath2(p.Circle.Reverse())
	default:
		return LinePath2(p.Line.Reverse())
	}
}
