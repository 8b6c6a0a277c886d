package approx

import (
	"github.com/ajsb85/brepkernel/internal/geom"
	"github.com/ajsb85/brepkernel/internal/store"
	"github.com/ajsb85/brepkernel/internal/topo"
	"github.com/ajsb85/brepkernel/internal/xmath"
)

// ApproxHalfEdge approximates a half-edge: its curve approximation, with
// the end point dropped. Dropping the end point is what lets ApproxCycle
// concatenate consecutive half-edges without duplicating the vertex they
// share.
//
// Grounded on fj-core/src/algorithms/approx/half_edge.rs's approx_half_edge
// (original_source).
func (c *Cache) ApproxHalfEdge(
	curve store.Handle[topo.Curve],
	surface store.Handle[topo.Surface],
	halfEdge topo.HalfEdge,
	surfaceGeom geom.SurfaceGeometry,
	tolerance xmath.Scalar,
) []Point {
	points := c.ApproxCurveOnSurface(curve, surface, halfEdge.Path, surfaceGeom, halfEdge.Boundary, tolerance)
	if len(points) == 0 {
		return points
	}
	return points[:len(points)-1]
}
