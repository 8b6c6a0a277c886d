// Package approx turns curves, half-edges, cycles and faces into
// tolerance-bounded polylines and polygons, the input the triangulation
// pipeline (internal/triangulate) consumes to produce a mesh.
//
// Grounded on fj-core/src/algorithms/approx/{curve,half_edge,mod}.rs
// (original_source): the ApproxPoint pairing of local and global
// coordinates, the cache keyed by (curve, surface, boundary, tolerance),
// and half-edge approximation dropping its end point so cycle
// approximations don't duplicate shared vertices.
package approx

import (
	"github.com/ajsb85/brepkernel/internal/geom"
	"github.com/ajsb85/brepkernel/internal/store"
	"github.com/ajsb85/brepkernel/internal/topo"
	"github.com/ajsb85/brepkernel/internal/xmath"
)

// Point is one point of an approximation, carrying both its curve-local (1D)
// coordinate, its surface-local (2D) coordinate, and its resolved global
// (3D) coordinate.
type Point struct {
	Local  xmath.Point1
	Local2 xmath.Point2
	Global xmath.Point3
}

// Boundary is the curve-local extent an approximation covers.
type Boundary = topo.Boundary

// curveLocalPoints returns the ordered curve-local coordinates that
// approximate path over boundary within tolerance, per spec.md §4.5:
//
//   - Line: no interior points, just the two boundary endpoints.
//   - Circle: a regular polygon with CircleSegmentCount(radius, tolerance)
//     sides, covering the boundary interval inclusively.
func curveLocalPoints(path geom.Path2, boundary Boundary, tolerance xmath.Scalar) []xmath.Point1 {
	lo, hi := boundary.Inner[0], boundary.Inner[1]

	if path.Kind != geom.PathCircle {
		return []xmath.Point1{lo, hi}
	}

	n := xmath.CircleSegmentCount(path.Circle.Radius(), tolerance)
	points := make([]xmath.Point1, 0, n+1)
	for i := 0; i <= n; i++ {
		frac := xmath.Scalar(i) / xmath.Scalar(n)
		points = append(points, xmath.Point1{T: lo.T + (hi.T-lo.T)*frac})
	}
	return points
}

// resolve converts a curve-local coordinate into a full Point, given the
// curve's local path on the surface and the surface's global geometry.
func resolve(path geom.Path2, surfaceGeom geom.SurfaceGeometry, t xmath.Point1) Point {
	local2 := path.PointFromLocal(t)
	return Point{
		Local:  t,
		Local2: local2,
		Global: surfaceGeom.PointFromSurfaceCoords(local2),
	}
}

type cacheKey struct {
	curve   store.Handle[topo.Curve]
	surface store.Handle[topo.Surface]
	lo, hi  xmath.Point1
	tol     xmath.Scalar
}

// Cache memoizes curve approximations, keyed by (curve, surface, boundary,
// tolerance). Approximations are computed over the boundary's normalized
// (low, high) order and reversed on lookup when the caller's boundary is
// reversed relative to that, so a half-edge and its sibling share one
// cache entry despite pointing in opposite directions.
type Cache struct {
	segments map[cacheKey][]Point
}

func NewCache() *Cache {
	return &Cache{segments: map[cacheKey][]Point{}}
}

// ApproxCurveOnSurface returns the tolerance-bounded polyline approximating
// path (curve's local path on surface) over boundary, with each point's
// global position resolved via surfaceGeom.
func (c *Cache) ApproxCurveOnSurface(
	curve store.Handle[topo.Curve],
	surface store.Handle[topo.Surface],
	path geom.Path2,
	surfaceGeom geom.SurfaceGeometry,
	boundary Boundary,
	tolerance xmath.Scalar,
) []Point {
	normalized := boundary.Normalize()
	reversed := normalized.Inner != boundary.Inner

	key := cacheKey{
		curve:   curve,
		surface: surface,
		lo:      normalized.Inner[0],
		hi:      normalized.Inner[1],
		tol:     tolerance,
	}

	points, ok := c.segments[key]
	if !ok {
		locals := curveLocalPoints(path, normalized, tolerance)
		points = make([]Point, len(locals))
		for i, t := range locals {
			points[i] = resolve(path, surfaceGeom, t)
		}
		c.segments[key] = points
	}

	if !reversed {
		out := make([]Point, len(points))
		copy(out, points)
		return out
	}

	out := make([]Point, len(points))
	for i, p := range points {
		out[len(points)-1-i] = p
	}
	return out
}
