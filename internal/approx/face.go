package approx

import (
	"github.com/ajsb85/brepkernel/internal/geom"
	"github.com/ajsb85/brepkernel/internal/store"
	"github.com/ajsb85/brepkernel/internal/topo"
	"github.com/ajsb85/brepkernel/internal/xmath"
)

// CycleResolver looks up a cycle by handle, as stored by the owning kernel
// Context.
type CycleResolver func(store.Handle[topo.Cycle]) topo.Cycle

// FaceApprox is a face's boundary, approximated as one exterior polyline
// and zero or more interior (hole) polylines, each a closed loop of Points
// in the face's surface-local coordinates. internal/triangulate consumes
// this directly as the PSLG input to its constrained triangulation.
type FaceApprox struct {
	Exterior  []Point
	Interiors [][]Point
}

// ApproxFace approximates face's region (exterior cycle plus any interior
// cycles) on the given surface.
func (c *Cache) ApproxFace(
	region topo.Region,
	surface store.Handle[topo.Surface],
	surfaceGeom geom.SurfaceGeometry,
	resolveCycle CycleResolver,
	resolveHalfEdge HalfEdgeResolver,
	tolerance xmath.Scalar,
) FaceApprox {
	exteriorCycle := resolveCycle(region.Exterior)
	fa := FaceApprox{
		Exterior: c.ApproxCycle(exteriorCycle, surface, surfaceGeom, resolveHalfEdge, tolerance),
	}

	for _, interior := range region.Interiors {
		cycle := resolveCycle(interior)
		fa.Interiors = append(fa.Interiors, c.ApproxCycle(cycle, surface, surfaceGeom, resolveHalfEdge, tolerance))
	}

	return fa
}
