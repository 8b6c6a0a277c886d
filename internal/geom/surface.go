package geom

import "github.com/ajsb85/brepkernel/internal/xmath"

// SurfaceGeometry is the geometry a Surface object is bound to: a swept
// path, defined by a u-axis path through global space and a v-direction
// vector along which that path is extruded.
//
// Grounded on fj-kernel/src/geometry/surface.rs (original_source).
type SurfaceGeometry struct {
	U Path3
	V xmath.Vector3
}

// NewSurfaceGeometry constructs a swept-path surface.
func NewSurfaceGeometry(u Path3, v xmath.Vector3) SurfaceGeometry {
	return SurfaceGeometry{U: u, V: v}
}

// pathToLine returns the line along the v direction, used to convert the
// v-coordinate component back into global space.
func (s SurfaceGeometry) pathToLine() xmath.Line3 {
	return xmath.NewLine3(s.U.Origin(), s.V)
}

// PointFromSurfaceCoords converts a point in surface-local (u, v)
// coordinates into global (3D) coordinates.
func (s SurfaceGeometry) PointFromSurfaceCoords(p xmath.Point2) xmath.Point3 {
	uPoint := s.U.PointFromLocal(xmath.Point1{T: p.X})
	vVector := s.pathToLine().Direction.Scale(p.Y)
	return uPoint.Add(vVector)
}

// VectorFromSurfaceCoords converts a vector in surface-local coordinates
// into a global direction vector.
func (s SurfaceGeometry) VectorFromSurfaceCoords(v xmath.Vector2) xmath.Vector3 {
	var uVector xmath.Vector3
	switch s.U.Kind {
	case PathCircle:
		// The circle's tangent direction scales with angle non-linearly;
		// callers that need exact surface vectors along a circular u-axis
		// should work from PointFromSurfaceCoords differences instead.
		p0 := s.U.PointFromLocal(xmath.Point1{T: 0})
		p1 := s.U.PointFromLocal(xmath.Point1{T: v.X})
		uVector = p1.Sub(p0)
	default:
		uVector = s.U.Line.Direction.Scale(v.X)
	}
	return uVector.Add(s.V.Scale(v.Y))
}

// Normal returns the surface normal at the given u value, computed as the
// cross product of the u-path's local tangent direction and v. For a planar
// surface (u a line) this is constant; for a swept circle it varies with u.
func (s SurfaceGeometry) Normal(u xmath.Scalar) xmath.Vector3 {
	tangent := s.tangentAt(u)
	return tangent.Cross(s.V).Normalize()
}

func (s SurfaceGeometry) tangentAt(u xmath.Scalar) xmath.Vector3 {
	switch s.U.Kind {
	case PathCircle:
		eps := xmath.Scalar(1e-6)
		p0 := s.U.Circle.PointFromLocal(xmath.Point1{T: u})
		p1 := s.U.Circle.PointFromLocal(xmath.Point1{T: u + eps})
		return p1.Sub(p0).Normalize()
	default:
		return s.U.Line.Direction.Normalize()
	}
}
