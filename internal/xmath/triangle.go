package xmath

import "fmt"

// Triangle3 is a triangle in global space, identified by its three vertices
// in winding order.
//
// Grounded on ajsb85-sdfx's own sdf.Triangle3 (sdf/mesh3_test.go), including
// the rotateVertex-style invariance tests exercised in triangle_test.go.
type Triangle3 [3]Point3

// NewTriangle3 constructs a triangle, rejecting collinear vertices (zero
// signed area), a numeric error per spec.md §7.
func NewTriangle3(a, b, c Point3) (Triangle3, error) {
	t := Triangle3{a, b, c}
	if t.Area() == 0 {
		return Triangle3{}, fmt.Errorf("xmath: triangle vertices are collinear")
	}
	return t, nil
}

// MustTriangle3 is NewTriangle3, panicking on collinear vertices.
func MustTriangle3(a, b, c Point3) Triangle3 {
	t, err := NewTriangle3(a, b, c)
	if err != nil {
		panic(err)
	}
	return t
}

// Normal returns the triangle's face normal, following the right-hand rule
// for the vertex winding order [0]->[1]->[2].
func (t Triangle3) Normal() Vector3 {
	ab := t[1].Sub(t[0])
	ac := t[2].Sub(t[0])
	return ab.Cross(ac).Normalize()
}

// Area returns the (unsigned) area of the triangle.
func (t Triangle3) Area() Scalar {
	ab := t[1].Sub(t[0])
	ac := t[2].Sub(t[0])
	return ab.Cross(ac).Magnitude() / 2
}

// rotateVertex returns a copy of t with vertices rotated by one position,
// used by tests to assert winding-invariant properties.
func (t Triangle3) rotateVertex() Triangle3 {
	return Triangle3{t[1], t[2], t[0]}
}

// Centroid returns the triangle's centroid.
func (t Triangle3) Centroid() Point3 {
	return Point3{
		X: (t[0].X + t[1].X + t[2].X) / 3,
		Y: (t[0].Y + t[1].Y + t[2].Y) / 3,
		Z: (t[0].Z + t[1].Z + t[2].Z) / 3,
	}
}

// Triangle2 is the 2D analogue used by the triangulation component.
type Triangle2 [3]Point2

// SignedArea returns twice the signed area of the triangle; positive for
// counter-clockwise winding.
func (t Triangle2) SignedArea() Scalar {
	ab := t[1].Sub(t[0])
	ac := t[2].Sub(t[0])
	return ab.Cross(ac)
}

func (t Triangle2) Centroid() Point2 {
	return Point2{
		X: (t[0].X + t[1].X + t[2].X) / 3,
		Y: (t[0].Y + t[1].Y + t[2].Y) / 3,
	}
}
