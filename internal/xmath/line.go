package xmath

// Line3 is an infinite line in global space, defined by an origin and a
// direction. The length of direction defines the unit of the line's local
// coordinate system: local coordinate 1 is always where direction points,
// from origin.
//
// Grounded on fj-math/src/line.rs (original_source): point_to_line_coords
// projects onto the line before converting, which makes it robust against
// points that are slightly off the line.
type Line3 struct {
	Origin    Point3
	Direction Vector3
}

func NewLine3(origin Point3, direction Vector3) Line3 {
	return Line3{Origin: origin, Direction: direction}
}

// Line3FromPoints builds a line through a and b, with local coordinate 0 at
// a and local coordinate 1 at b.
func Line3FromPoints(a, b Point3) Line3 {
	return Line3{Origin: a, Direction: b.Sub(a)}
}

func (l Line3) PointFromLocal(t Point1) Point3 {
	return l.Origin.Add(l.Direction.Scale(t.T))
}

// PointToLocal projects p onto the line and returns its local coordinate.
func (l Line3) PointToLocal(p Point3) Point1 {
	t := p.Sub(l.Origin).ScalarProjectionOnto(l.Direction) / l.Direction.Magnitude()
	return Point1{T: t}
}

func (l Line3) Reverse() Line3 {
	return Line3{Origin: l.Origin, Direction: l.Direction.Neg()}
}

func (l Line3) Transform(t Transform) Line3 {
	return Line3{
		Origin:    t.ApplyPoint(l.Origin),
		Direction: t.ApplyVector(l.Direction),
	}
}

// Line2 is the 2D analogue of Line3, used as a surface-local path.
type Line2 struct {
	Origin    Point2
	Direction Vector2
}

func NewLine2(origin Point2, direction Vector2) Line2 {
	return Line2{Origin: origin, Direction: direction}
}

func Line2FromPoints(a, b Point2) Line2 {
	return Line2{Origin: a, Direction: b.Sub(a)}
}

func (l Line2) PointFromLocal(t Point1) Point2 {
	return l.Origin.Add(l.Direction.Scale(t.T))
}

func (l Line2) PointToLocal(p Point2) Point1 {
	d := p.Sub(l.Origin)
	mag := l.Direction.Magnitude()
	t := d.Dot(l.Direction) / (mag * mag)
	return Point1{T: t}
}

func (l Line2) Reverse() Line2 {
	return Line2{Origin: l.Origin, Direction: l.Direction.Neg()}
}
