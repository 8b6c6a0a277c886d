package xmath

// Circle3 is a circle in global space, defined by a center and two mutually
// orthogonal in-plane radius vectors a and b. The radius is implicit: |a|
// (callers are expected to keep |a| == |b|).
//
// The local (curve) coordinate of a circle is the angle in radians,
// measured from a towards b: point(t) = center + a*cos(t) + b*sin(t).
type Circle3 struct {
	Center Point3
	A, B   Vector3
}

func NewCircle3(center Point3, a, b Vector3) Circle3 {
	return Circle3{Center: center, A: a, B: b}
}

func (c Circle3) Radius() Scalar { return c.A.Magnitude() }

func (c Circle3) PointFromLocal(t Point1) Point3 {
	return c.Center.
		Add(c.A.Scale(t.T.Cos())).
		Add(c.B.Scale(t.T.Sin()))
}

// PointToLocal projects p onto the circle's plane and returns the angle of
// that projection. It is robust against points that are not exactly on the
// circle, by construction (it never needs to know the distance to the
// circle, only the angle).
func (c Circle3) PointToLocal(p Point3) Point1 {
	d := p.Sub(c.Center)
	// |a| == |b| by construction, so these are orthonormal-equivalent
	// projections scaled by the (shared) radius.
	radius := c.Radius()
	if radius == 0 {
		return Point1{T: 0}
	}
	x := d.Dot(c.A) / radius
	y := d.Dot(c.B) / radius
	return Point1{T: Atan2(y, x)}
}

func (c Circle3) Reverse() Circle3 {
	return Circle3{Center: c.Center, A: c.A, B: c.B.Neg()}
}

func (c Circle3) Transform(t Transform) Circle3 {
	return Circle3{
		Center: t.ApplyPoint(c.Center),
		A:      t.ApplyVector(c.A),
		B:      t.ApplyVector(c.B),
	}
}

// Circle2 is the 2D analogue of Circle3, used as a surface-local path for
// rotational features.
type Circle2 struct {
	Center Point2
	A, B   Vector2
}

func NewCircle2(center Point2, a, b Vector2) Circle2 {
	return Circle2{Center: center, A: a, B: b}
}

func (c Circle2) Radius() Scalar { return c.A.Magnitude() }

func (c Circle2) PointFromLocal(t Point1) Point2 {
	return c.Center.
		Add(c.A.Scale(t.T.Cos())).
		Add(c.B.Scale(t.T.Sin()))
}

func (c Circle2) PointToLocal(p Point2) Point1 {
	d := p.Sub(c.Center)
	radius := c.Radius()
	if radius == 0 {
		return Point1{T: 0}
	}
	x := d.Dot(c.A) / radius
	y := d.Dot(c.B) / radius
	return Point1{T: Atan2(y, x)}
}

func (c Circle2) Reverse() Circle2 {
	return Circle2{Center: c.Center, A: c.A, B: c.B.Neg()}
}

// CircleSegmentCount returns the number of vertices of the regular polygon
// inscribed in a circle of the given radius that approximates it within
// tolerance: the smallest n >= 3 such that
//
//	radius - radius*cos(pi/n) <= tolerance
func CircleSegmentCount(radius, tolerance Scalar) int {
	n := 3
	for {
		dev := radius - radius*Scalar(CosPiOverN(n))
		if dev <= tolerance {
			return n
		}
		n++
	}
}

// CosPiOverN returns cos(pi/n) as a float64, split out so the formula above
// reads the same as spec.md's statement of it.
func CosPiOverN(n int) float64 {
	return float64((Pi / Scalar(n)).Cos())
}
