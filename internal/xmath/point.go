package xmath

// Points and vectors are distinct, dimension-specific types (D = 1 for
// curve-local coordinates, D = 2 for surface-local, D = 3 for global space).
// Go has no const-generic dimension parameter, so each dimension gets its own
// concrete type, the same way golang/geo splits r1/r2/r3 by dimension rather
// than parameterizing over it.

// Point1 is a point in curve-local (1D) coordinates.
type Point1 struct{ T Scalar }

// Vector1 is a displacement in curve-local coordinates.
type Vector1 struct{ T Scalar }

func NewPoint1(t Scalar) Point1   { return Point1{T: t} }
func NewVector1(t Scalar) Vector1 { return Vector1{T: t} }

func (p Point1) Sub(q Point1) Vector1   { return Vector1{T: p.T - q.T} }
func (p Point1) Add(v Vector1) Point1   { return Point1{T: p.T + v.T} }
func (v Vector1) Add(w Vector1) Vector1 { return Vector1{T: v.T + w.T} }
func (v Vector1) Scale(s Scalar) Vector1 {
	return Vector1{T: v.T * s}
}
func (v Vector1) Neg() Vector1         { return Vector1{T: -v.T} }
func (v Vector1) Magnitude() Scalar    { return v.T.Abs() }
func (p Point1) Less(q Point1) bool    { return p.T < q.T }
func (p Point1) Equal(q Point1) bool   { return p.T == q.T }
func (p Point1) Distance(q Point1) Scalar { return p.Sub(q).Magnitude() }

// Point2 is a point in surface-local (2D) coordinates.
type Point2 struct{ X, Y Scalar }

// Vector2 is a displacement in surface-local coordinates.
type Vector2 struct{ X, Y Scalar }

func NewPoint2(x, y Scalar) Point2   { return Point2{X: x, Y: y} }
func NewVector2(x, y Scalar) Vector2 { return Vector2{X: x, Y: y} }

func (p Point2) Sub(q Point2) Vector2 { return Vector2{X: p.X - q.X, Y: p.Y - q.Y} }
func (p Point2) Add(v Vector2) Point2 { return Point2{X: p.X + v.X, Y: p.Y + v.Y} }
func (v Vector2) Add(w Vector2) Vector2 {
	return Vector2{X: v.X + w.X, Y: v.Y + w.Y}
}
func (v Vector2) Scale(s Scalar) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}
func (v Vector2) Neg() Vector2 { return Vector2{X: -v.X, Y: -v.Y} }
func (v Vector2) Dot(w Vector2) Scalar {
	return v.X*w.X + v.Y*w.Y
}
func (v Vector2) Magnitude() Scalar     { return v.Dot(v).Sqrt() }
func (p Point2) Distance(q Point2) Scalar { return p.Sub(q).Magnitude() }

// Cross returns the z-component of the 3D cross product of v and w, which is
// positive iff w is counter-clockwise from v.
func (v Vector2) Cross(w Vector2) Scalar {
	return v.X*w.Y - v.Y*w.X
}

// Point3 is a point in global (3D) space.
type Point3 struct{ X, Y, Z Scalar }

// Vector3 is a displacement in global space.
type Vector3 struct{ X, Y, Z Scalar }

func NewPoint3(x, y, z Scalar) Point3   { return Point3{X: x, Y: y, Z: z} }
func NewVector3(x, y, z Scalar) Vector3 { return Vector3{X: x, Y: y, Z: z} }

func (p Point3) Sub(q Point3) Vector3 {
	return Vector3{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}
func (p Point3) Add(v Vector3) Point3 {
	return Point3{X: p.X + v.X, Y: p.Y + v.Y, Z: p.Z + v.Z}
}
func (v Vector3) Add(w Vector3) Vector3 {
	return Vector3{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}
func (v Vector3) Scale(s Scalar) Vector3 {
	return Vector3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}
func (v Vector3) Neg() Vector3 { return Vector3{X: -v.X, Y: -v.Y, Z: -v.Z} }
func (v Vector3) Dot(w Vector3) Scalar {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}
func (v Vector3) Cross(w Vector3) Vector3 {
	return Vector3{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}
func (v Vector3) Magnitude() Scalar { return v.Dot(v).Sqrt() }
func (v Vector3) Normalize() Vector3 {
	m := v.Magnitude()
	if m == 0 {
		return v
	}
	return v.Scale(1 / m)
}
func (p Point3) Distance(q Point3) Scalar { return p.Sub(q).Magnitude() }

// ScalarProjectionOnto returns the length of v's projection onto w.
func (v Vector3) ScalarProjectionOnto(w Vector3) Scalar {
	return v.Dot(w) / w.Magnitude()
}
