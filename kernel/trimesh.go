package kernel

import (
	"github.com/ajsb85/brepkernel/internal/approx"
	"github.com/ajsb85/brepkernel/internal/store"
	"github.com/ajsb85/brepkernel/internal/topo"
	"github.com/ajsb85/brepkernel/internal/triangulate"
	"github.com/ajsb85/brepkernel/internal/xmath"
)

// Color is a Triangle's RGBA tag, a direct re-export of topo.Color so
// export shells only need to import this package.
type Color = topo.Color

// DefaultColor is the color a Triangle carries when its originating
// region has none set: opaque white.
func DefaultColor() Color { return Color{R: 255, G: 255, B: 255, A: 255} }

// Triangle is one triangle of a TriMesh: three global vertex positions in
// winding order, a color, and whether it should be excluded from external
// triangle enumeration (e.g. a face interior to a solid produced by a
// boolean operation). Corresponds to spec.md §6's TriMesh element shape.
type Triangle struct {
	Points   [3]xmath.Point3
	Color    Color
	Internal bool
}

// TriMesh is the flat triangle soup approximate produces from a solid.
// Corresponds to spec.md §6's TriMesh.
type TriMesh struct {
	Triangles []Triangle
}

// Approximate tessellates solid into a TriMesh within tolerance: each
// face's region is approximated to a polygon (with holes), constrained-
// triangulated in the face's surface-local coordinates, and every
// resulting triangle's vertices are the canonical 3D points already
// resolved during approximation — never re-evaluated through the surface
// a second time. Corresponds to spec.md §6's
// approximate(&solid, tolerance) -> TriMesh.
//
// Each triangle's Internal flag mirrors the Face it came from.
func (c *Context) Approximate(solidHandle store.Handle[topo.Solid], tolerance xmath.Scalar) TriMesh {
	solid := solidHandle.Get()
	cache := approx.NewCache()

	resolveHalfEdge := func(h store.Handle[topo.HalfEdge]) (topo.HalfEdge, store.Handle[topo.Curve]) {
		he := h.Get()
		return he, he.Curve
	}
	resolveCycle := func(h store.Handle[topo.Cycle]) topo.Cycle { return h.Get() }

	var mesh TriMesh
	for _, shellHandle := range solid.Shells {
		shell := shellHandle.Get()
		for _, faceHandle := range shell.Faces {
			face := faceHandle.Get()
			surfaceGeom := c.Graph.Geometry.OfSurface(face.Surface)
			region := face.Region.Get()

			fa := cache.ApproxFace(region, face.Surface, surfaceGeom, resolveCycle, resolveHalfEdge, tolerance)
			global := map[xmath.Point2]xmath.Point3{}
			outer := localPoints(fa.Exterior, global)
			holes := make([][]xmath.Point2, len(fa.Interiors))
			for i, interior := range fa.Interiors {
				holes[i] = localPoints(interior, global)
			}

			result := triangulate.Triangulate(outer, holes, global, tolerance)
			color := DefaultColor()
			if region.Color != nil {
				color = *region.Color
			}

			for _, tri := range result.Triangles {
				mesh.Triangles = append(mesh.Triangles, Triangle{
					Points: [3]xmath.Point3{
						result.Globals[tri.A],
						result.Globals[tri.B],
						result.Globals[tri.C],
					},
					Color:    color,
					Internal: face.Internal,
				})
			}
		}
	}
	return mesh
}

// localPoints extracts each point's surface-local 2D coordinate, recording
// its already-resolved global 3D position in global so the triangulator
// can carry it through without ever re-evaluating the surface.
func localPoints(points []approx.Point, global map[xmath.Point2]xmath.Point3) []xmath.Point2 {
	out := make([]xmath.Point2, len(points))
	for i, p := range points {
		out[i] = p.Local2
		global[p.Local2] = p.Global
	}
	return out
}
