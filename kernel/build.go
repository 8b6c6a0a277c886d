package kernel

import (
	"github.com/ajsb85/brepkernel/internal/ops"
	"github.com/ajsb85/brepkernel/internal/store"
	"github.com/ajsb85/brepkernel/internal/topo"
	"github.com/ajsb85/brepkernel/internal/xmath"
)

// BuildHalfEdgeLineSegment builds a half-edge along the straight line from
// a to b on surface. Corresponds to spec.md §6's BuildHalfEdge::line_segment.
func (c *Context) BuildHalfEdgeLineSegment(a, b xmath.Point2, surface store.Handle[topo.Surface]) store.Handle[topo.HalfEdge] {
	return ops.BuildLineSegment(c.Graph, a, b, surface)
}

// BuildHalfEdgeCircle builds a full-circle half-edge. Corresponds to
// spec.md §6's BuildHalfEdge::circle.
func (c *Context) BuildHalfEdgeCircle(center xmath.Point2, radius xmath.Scalar, surface store.Handle[topo.Surface]) store.Handle[topo.HalfEdge] {
	return ops.BuildCircle(c.Graph, center, radius, surface)
}

// BuildHalfEdgeArc builds an arc half-edge. Corresponds to spec.md §6's
// BuildHalfEdge::arc.
func (c *Context) BuildHalfEdgeArc(start, end xmath.Point2, angleRad xmath.Scalar, surface store.Handle[topo.Surface]) store.Handle[topo.HalfEdge] {
	return ops.BuildArc(c.Graph, start, end, angleRad, surface)
}

// CyclePolygon builds a closed polygon cycle through points and validates
// that every adjacent half-edge pair connects. Corresponds to spec.md §6's
// Cycle::polygon.
func (c *Context) CyclePolygon(points []xmath.Point2, surface store.Handle[topo.Surface]) store.Handle[topo.Cycle] {
	cycle := ops.PolygonCycle(c.Graph, points, surface)
	c.Layer.ValidateCycle(c.Graph, cycle)
	return cycle
}

// RegionNew builds a region from exterior and interiors and validates that
// every interior winds opposite the exterior. Corresponds to spec.md §6's
// Region::new.
func (c *Context) RegionNew(exterior store.Handle[topo.Cycle], interiors ...store.Handle[topo.Cycle]) store.Handle[topo.Region] {
	region := ops.NewRegion(c.Graph, exterior, interiors...)
	c.Layer.ValidateRegion(c.Graph, region)
	return region
}

// FaceNew builds a face from surface and region and validates that the
// region has a non-empty boundary. Corresponds to spec.md §6's Face::new.
func (c *Context) FaceNew(surface store.Handle[topo.Surface], region store.Handle[topo.Region]) store.Handle[topo.Face] {
	face := ops.NewFace(c.Graph, surface, region)
	c.Layer.ValidateFace(c.Graph, face)
	return face
}

// ShellTetrahedron builds the four-triangle shell of a tetrahedron through
// points and runs every shell-scoped validation check against it.
// Corresponds to spec.md §6's Shell::tetrahedron.
func (c *Context) ShellTetrahedron(points [4]xmath.Point3) store.Handle[topo.Shell] {
	shell := ops.Tetrahedron(c.Graph, points)
	c.Layer.ValidateShell(c.Graph, shell)
	return shell
}

// SketchFrom builds a sketch of regions on surface. Corresponds to
// spec.md §6's Sketch::from(regions).
func (c *Context) SketchFrom(surface store.Handle[topo.Surface], regions ...store.Handle[topo.Region]) store.Handle[topo.Sketch] {
	return ops.NewSketch(c.Graph, surface, regions...)
}

// XYPlane, XZPlane and YZPlane expose the context's three builtin planes,
// registered once at construction by internal/geombind.
func (c *Context) XYPlane() store.Handle[topo.Surface] { return c.Graph.Geometry.XYPlane() }
func (c *Context) XZPlane() store.Handle[topo.Surface] { return c.Graph.Geometry.XZPlane() }
func (c *Context) YZPlane() store.Handle[topo.Surface] { return c.Graph.Geometry.YZPlane() }
