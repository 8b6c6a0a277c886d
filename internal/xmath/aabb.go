package xmath

// AABB3 is an axis-aligned bounding box in global space.
//
// Grounded on fj-math/src/aabb.rs (original_source): from_points, merged,
// include_point, center, size, carried over without the Parry dependency
// fj-math used, since the kernel doesn't otherwise need a physics-engine
// bounding-volume library.
type AABB3 struct {
	Min, Max Point3
}

// AABB3FromPoints returns the smallest AABB containing all of points.
// Panics if points is empty: an AABB with no extent is not representable.
func AABB3FromPoints(points []Point3) AABB3 {
	if len(points) == 0 {
		panic("xmath: cannot build an AABB from zero points")
	}
	box := AABB3{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		box = box.IncludePoint(p)
	}
	return box
}

func (b AABB3) IncludePoint(p Point3) AABB3 {
	return AABB3{
		Min: Point3{X: Min(b.Min.X, p.X), Y: Min(b.Min.Y, p.Y), Z: Min(b.Min.Z, p.Z)},
		Max: Point3{X: Max(b.Max.X, p.X), Y: Max(b.Max.Y, p.Y), Z: Max(b.Max.Z, p.Z)},
	}
}

func (b AABB3) Merge(other AABB3) AABB3 {
	return b.IncludePoint(other.Min).IncludePoint(other.Max)
}

func (b AABB3) Center() Point3 {
	return Point3{
		X: (b.Min.X + b.Max.X) / 2,
		Y: (b.Min.Y + b.Max.Y) / 2,
		Z: (b.Min.Z + b.Max.Z) / 2,
	}
}

func (b AABB3) Size() Vector3 { return b.Max.Sub(b.Min) }

func (b AABB3) Contains(p Point3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// AABB2 is the 2D analogue, used over surface-local coordinates.
type AABB2 struct {
	Min, Max Point2
}

func AABB2FromPoints(points []Point2) AABB2 {
	if len(points) == 0 {
		panic("xmath: cannot build an AABB from zero points")
	}
	box := AABB2{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		box = box.IncludePoint(p)
	}
	return box
}

func (b AABB2) IncludePoint(p Point2) AABB2 {
	return AABB2{
		Min: Point2{X: Min(b.Min.X, p.X), Y: Min(b.Min.Y, p.Y)},
		Max: Point2{X: Max(b.Max.X, p.X), Y: Max(b.Max.Y, p.Y)},
	}
}

func (b AABB2) Contains(p Point2) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}
