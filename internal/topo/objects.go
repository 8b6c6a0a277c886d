// Package topo is the kernel's topology graph: the handle-only object
// vocabulary (Vertex, Curve, HalfEdge, Cycle, Region, Surface, Face, Shell,
// Solid, Sketch) that defines how a solid's boundary is structured, without
// carrying any geometric data inline. Geometry is bound separately, in
// internal/geombind, keyed by the handles defined here.
//
// Grounded on fj-core/src/topology/stores.rs (the store-per-kind layout),
// fj-kernel/src/objects/curve.rs and fj-core/src/objects/kinds/half_edge.rs
// (field shape and doc style) and fj-core/src/topology/objects/face.rs
// (original_source), plus the quasoft/DCEL half-edge idiom for the overall
// "objects reference each other only by handle, never by back-pointer"
// discipline.
package topo

import (
	"github.com/ajsb85/brepkernel/internal/geom"
	"github.com/ajsb85/brepkernel/internal/store"
	"github.com/ajsb85/brepkernel/internal/xmath"
)

// Vertex is a point in the topology graph, referenced by handle from the
// half-edges and other objects that bound on it.
//
// Grounded on fj-kernel/src/topology/vertices.rs (original_source), which
// stores a vertex's global point directly rather than deriving it
// transitively from whatever curve happens to reference the vertex.
type Vertex struct {
	Point xmath.Point3
}

// NewVertex returns a Vertex at the given global position.
func NewVertex(point xmath.Point3) Vertex {
	return Vertex{Point: point}
}

// Curve is a one-dimensional shape's topological identity. Like Vertex, it
// carries no geometry inline: a curve's shape may differ from surface to
// surface it appears on (see internal/geombind.DefineCurve), which is why
// geometry is bound externally rather than stored here.
type Curve struct{}

// Surface is a two-dimensional shape's topological identity, analogous to
// Curve. Its global geometry is bound via internal/geombind.DefineSurface.
type Surface struct{}

// Boundary is the curve-local extent of a HalfEdge, normalized/subsetted by
// internal/approx's caching layer.
type Boundary = geom.CurveBoundary[xmath.Point1]

// HalfEdge is a directed use of a curve, bounded on one side.
//
// The end vertex is implicit: it is the start vertex of the next HalfEdge
// in the Cycle that contains this one. Keeping only the start vertex
// avoids the redundancy of storing both ends on every half-edge.
type HalfEdge struct {
	Path        geom.Path2
	Boundary    Boundary
	Curve       store.Handle[Curve]
	StartVertex store.Handle[Vertex]
}

func NewHalfEdge(path geom.Path2, boundary Boundary, curve store.Handle[Curve], start store.Handle[Vertex]) HalfEdge {
	return HalfEdge{Path: path, Boundary: boundary, Curve: curve, StartVertex: start}
}

// StartPosition computes the half-edge's surface-local start position from
// its path and boundary, rather than storing it redundantly.
func (h HalfEdge) StartPosition() xmath.Point2 {
	return h.Path.PointFromLocal(h.Boundary.Inner[0])
}

// EndPosition computes the half-edge's surface-local end position.
func (h HalfEdge) EndPosition() xmath.Point2 {
	return h.Path.PointFromLocal(h.Boundary.Inner[1])
}

// Reverse returns a half-edge with its path and boundary reversed; it keeps
// pointing at the same curve, but parameterized the opposite way.
func (h HalfEdge) Reverse() HalfEdge {
	return HalfEdge{
		Path:        h.Path.Reverse(),
		Boundary:    h.Boundary.Reverse(),
		Curve:       h.Curve,
		StartVertex: h.StartVertex,
	}
}

// Cycle is an ordered sequence of half-edge handles forming a closed loop.
// The end position of each half-edge must equal the start position of the
// next, within the identical-point tolerance (checked by internal/validate).
type Cycle struct {
	HalfEdges []store.Handle[HalfEdge]
}

func NewCycle(halfEdges ...store.Handle[HalfEdge]) Cycle {
	return Cycle{HalfEdges: append([]store.Handle[HalfEdge]{}, halfEdges...)}
}

// Region is a subset of a surface enclosed by one exterior cycle and an
// arbitrary number of interior cycles (holes).
type Region struct {
	Exterior  store.Handle[Cycle]
	Interiors []store.Handle[Cycle]
	Color     *Color
}

// Color is an optional RGBA tag carried by a Region through to TriMesh
// export; nil means "use the export pipeline's default".
type Color struct {
	R, G, B, A uint8
}

func NewRegion(exterior store.Handle[Cycle], interiors ...store.Handle[Cycle]) Region {
	return Region{Exterior: exterior, Interiors: append([]store.Handle[Cycle]{}, interiors...)}
}

// Face is a bounded area of a Surface: a region, anchored to a surface,
// plus a flag marking whether the face is internal. An internal face is
// excluded from TriMesh triangle enumeration used by file exporters (e.g.
// kernel.Triangle.Internal mirrors it), while still participating in
// validation like any other face.
type Face struct {
	Surface  store.Handle[Surface]
	Region   store.Handle[Region]
	Internal bool
}

func NewFace(surface store.Handle[Surface], region store.Handle[Region]) Face {
	return Face{Surface: surface, Region: region}
}

// NewInternalFace builds a face anchored to surface, bounded by region,
// and marked internal.
func NewInternalFace(surface store.Handle[Surface], region store.Handle[Region]) Face {
	return Face{Surface: surface, Region: region, Internal: true}
}

// Shell is a set of face handles, together describing a (possibly open)
// boundary surface.
type Shell struct {
	Faces []store.Handle[Face]
}

func NewShell(faces ...store.Handle[Face]) Shell {
	return Shell{Faces: append([]store.Handle[Face]{}, faces...)}
}

// Solid is a set of shell handles, describing a solid model's full
// boundary.
type Solid struct {
	Shells []store.Handle[Shell]
}

func NewSolid(shells ...store.Handle[Shell]) Solid {
	return Solid{Shells: append([]store.Handle[Shell]{}, shells...)}
}

// Sketch is a 2D profile: a set of region handles on a single surface,
// typically the input to a Sweep operation.
type Sketch struct {
	Surface store.Handle[Surface]
	Regions []store.Handle[Region]
}

func NewSketch(surface store.Handle[Surface], regions ...store.Handle[Region]) Sketch {
	return Sketch{Surface: surface, Regions: append([]store.Handle[Region]{}, regions...)}
}
