package kernel

import (
	"github.com/ajsb85/brepkernel/internal/approx"
	"github.com/ajsb85/brepkernel/internal/store"
	"github.com/ajsb85/brepkernel/internal/topo"
	"github.com/ajsb85/brepkernel/internal/xmath"
)

// RegionOutline is one region of a sketch, approximated to surface-local
// polylines: one exterior ring and zero or more interior (hole) rings.
type RegionOutline struct {
	Exterior  []xmath.Point2
	Interiors [][]xmath.Point2
}

// SketchOutlines approximates every region of sketch to its surface-local
// boundary polylines, within tolerance. Used by the SVG and DXF export
// shells, which need a flattened 2D view of a sketch rather than a
// tessellated 3D solid.
func (c *Context) SketchOutlines(sketch topo.Sketch, tolerance xmath.Scalar) []RegionOutline {
	cache := approx.NewCache()
	surfaceGeom := c.Graph.Geometry.OfSurface(sketch.Surface)

	resolveCycle := func(h store.Handle[topo.Cycle]) topo.Cycle { return h.Get() }
	resolveHalfEdge := func(h store.Handle[topo.HalfEdge]) (topo.HalfEdge, store.Handle[topo.Curve]) {
		he := h.Get()
		return he, he.Curve
	}

	var outlines []RegionOutline
	for _, regionHandle := range sketch.Regions {
		region := regionHandle.Get()
		fa := cache.ApproxFace(region, sketch.Surface, surfaceGeom, resolveCycle, resolveHalfEdge, tolerance)
		scratch := map[xmath.Point2]xmath.Point3{}
		outlines = append(outlines, RegionOutline{
			Exterior:  localPoints(fa.Exterior, scratch),
			Interiors: interiorPoints(fa.Interiors, scratch),
		})
	}
	return outlines
}

func interiorPoints(interiors [][]approx.Point, global map[xmath.Point2]xmath.Point3) [][]xmath.Point2 {
	out := make([][]xmath.Point2, len(interiors))
	for i, interior := range interiors {
		out[i] = localPoints(interior, global)
	}
	return out
}
