package approx

import (
	"github.com/ajsb85/brepkernel/internal/store"
	"github.com/ajsb85/brepkernel/internal/geom"
	"github.com/ajsb85/brepkernel/internal/topo"
	"github.com/ajsb85/brepkernel/internal/xmath"
)

// HalfEdgeResolver looks up a half-edge and the curve handle it belongs to,
// as stored by the owning kernel Context.
type HalfEdgeResolver func(store.Handle[topo.HalfEdge]) (topo.HalfEdge, store.Handle[topo.Curve])

// ApproxCycle approximates every half-edge in cycle, in order, concatenating
// their (end-point-dropped) approximations into one closed polyline.
func (c *Cache) ApproxCycle(
	cycle topo.Cycle,
	surface store.Handle[topo.Surface],
	surfaceGeom geom.SurfaceGeometry,
	resolve HalfEdgeResolver,
	tolerance xmath.Scalar,
) []Point {
	var out []Point
	for _, h := range cycle.HalfEdges {
		halfEdge, curve := resolve(h)
		out = append(out, c.ApproxHalfEdge(curve, surface, halfEdge, surfaceGeom, tolerance)...)
	}
	return out
}
