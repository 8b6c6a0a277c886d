package ops

import (
	"github.com/ajsb85/brepkernel/internal/geom"
	"github.com/ajsb85/brepkernel/internal/store"
	"github.com/ajsb85/brepkernel/internal/topo"
	"github.com/ajsb85/brepkernel/internal/xmath"
)

// unitBoundary is the [0, 1] curve-local boundary every fresh line segment
// half-edge is given; the curve's own path already runs from the segment's
// start to its end, so 0 and 1 are its natural endpoints.
func unitBoundary() topo.Boundary {
	return geom.NewCurveBoundary(xmath.Point1{T: 0}, xmath.Point1{T: 1})
}

// vertexAt2D inserts a fresh Vertex at the global position local resolves
// to on surface, per spec.md §3's "essential attribute: a global point".
func vertexAt2D(g *Graph, surface store.Handle[topo.Surface], local xmath.Point2) store.Handle[topo.Vertex] {
	global := g.Geometry.OfSurface(surface).PointFromSurfaceCoords(local)
	return g.Vertices.Insert(topo.NewVertex(global))
}

// BuildLineSegment creates a half-edge along the straight line from a to b
// on surface, with a fresh curve and start vertex.
//
// Grounded on fj-core/src/operations/build/half_edge.rs's
// BuildHalfEdge::line_segment (original_source).
func BuildLineSegment(g *Graph, a, b xmath.Point2, surface store.Handle[topo.Surface]) store.Handle[topo.HalfEdge] {
	curve := g.Curves.Insert(topo.Curve{})
	start := vertexAt2D(g, surface, a)
	path := geom.LineFromPoints2(a, b)
	g.Geometry.DefineCurve(curve, surface, path)
	return g.HalfEdges.Insert(topo.NewHalfEdge(path, unitBoundary(), curve, start))
}

// BuildCircle creates a half-edge that is a full circle of radius around
// center on surface, with curve-local boundary [0, 2*pi].
func BuildCircle(g *Graph, center xmath.Point2, radius xmath.Scalar, surface store.Handle[topo.Surface]) store.Handle[topo.HalfEdge] {
	curve := g.Curves.Insert(topo.Curve{})
	circle := xmath.NewCircle2(center, xmath.NewVector2(radius, 0), xmath.NewVector2(0, radius))
	path := geom.CirclePath2(circle)
	g.Geometry.DefineCurve(curve, surface, path)
	start := vertexAt2D(g, surface, path.PointFromLocal(xmath.Point1{T: 0}))
	boundary := geom.NewCurveBoundary(xmath.Point1{T: 0}, xmath.Point1{T: 2 * xmath.Pi})
	return g.HalfEdges.Insert(topo.NewHalfEdge(path, boundary, curve, start))
}

// BuildArc creates a half-edge tracing the arc from start to end, sweeping
// angleRad radians (signed: positive is counter-clockwise), on surface.
//
// Panics if angleRad is not within the open interval (-2*pi, 2*pi), the
// same constructor-time limit spec.md §7 states for arcs.
//
// Grounded on fj-core/src/operations/build/half_edge.rs's
// BuildHalfEdge::arc (original_source); the exact circle/radius derivation
// from two endpoints and a signed angle follows the standard "chord and
// included angle" construction.
func BuildArc(g *Graph, start, end xmath.Point2, angleRad xmath.Scalar, surface store.Handle[topo.Surface]) store.Handle[topo.HalfEdge] {
	if angleRad <= -2*xmath.Pi || angleRad >= 2*xmath.Pi {
		panic("ops: arc angle must be in the range (-2*pi, 2*pi) radians")
	}

	chord := end.Sub(start)
	chordLen := chord.Magnitude()
	half := angleRad / 2
	radius := chordLen / (2 * half.Sin().Abs())

	mid := start.Add(chord.Scale(0.5))
	perp := xmath.NewVector2(-chord.Y, chord.X)
	perpUnit := perp.Scale(1 / perp.Magnitude())
	sagitta := radius * half.Cos()
	if angleRad < 0 {
		sagitta = -sagitta
	}
	center := mid.Add(perpUnit.Scale(sagitta))

	a := xmath.NewVector2(radius, 0)
	b := xmath.NewVector2(0, radius)
	circle := xmath.NewCircle2(center, a, b)
	if angleRad < 0 {
		circle = circle.Reverse()
	}

	curve := g.Curves.Insert(topo.Curve{})
	path := geom.CirclePath2(circle)
	g.Geometry.DefineCurve(curve, surface, path)
	vertex := vertexAt2D(g, surface, start)

	boundary := geom.NewCurveBoundary(circle.PointToLocal(start), circle.PointToLocal(end))
	return g.HalfEdges.Insert(topo.NewHalfEdge(path, boundary, curve, vertex))
}

// BuildHalfEdgeFromSibling creates a half-edge on surface that shares
// sibling's curve identity (making the two half-edges siblings, per spec.md
// §4.7's "half-edge has sibling" check), with its own local path, boundary
// and start vertex — a curve's local representation is surface-specific, so
// the sibling relationship is carried by the shared curve handle alone.
//
// Grounded on fj-core/src/operations/build/half_edge.rs's
// BuildHalfEdge::from_sibling (original_source).
func BuildHalfEdgeFromSibling(g *Graph, sibling store.Handle[topo.HalfEdge], surface store.Handle[topo.Surface], path geom.Path2, boundary topo.Boundary, start store.Handle[topo.Vertex]) store.Handle[topo.HalfEdge] {
	curve := sibling.Get().Curve
	g.Geometry.DefineCurve(curve, surface, path)
	return g.HalfEdges.Insert(topo.NewHalfEdge(path, boundary, curve, start))
}

// PolygonCycle builds a closed cycle of line-segment half-edges through
// points, in order, wrapping back from the last point to the first. Each
// half-edge's start vertex is a fresh Vertex shared with the previous
// half-edge's implicit end, so the cycle is connected by construction.
//
// Grounded on spec.md §6's Cycle::polygon and the quasoft/DCEL idiom of
// building a closed loop by chaining shared vertices.
func PolygonCycle(g *Graph, points []xmath.Point2, surface store.Handle[topo.Surface]) store.Handle[topo.Cycle] {
	n := len(points)
	if n < 3 {
		panic("ops: a polygon cycle needs at least 3 points")
	}

	vertices := make([]store.Handle[topo.Vertex], n)
	for i := range vertices {
		vertices[i] = vertexAt2D(g, surface, points[i])
	}

	halfEdges := make([]store.Handle[topo.HalfEdge], n)
	for i := 0; i < n; i++ {
		a, b := points[i], points[(i+1)%n]
		curve := g.Curves.Insert(topo.Curve{})
		path := geom.LineFromPoints2(a, b)
		g.Geometry.DefineCurve(curve, surface, path)
		halfEdges[i] = g.HalfEdges.Insert(topo.NewHalfEdge(path, unitBoundary(), curve, vertices[i]))
	}

	return g.Cycles.Insert(topo.NewCycle(halfEdges...))
}

// NewRegion builds a region bounded by exterior, with interiors as holes.
func NewRegion(g *Graph, exterior store.Handle[topo.Cycle], interiors ...store.Handle[topo.Cycle]) store.Handle[topo.Region] {
	return g.Regions.Insert(topo.NewRegion(exterior, interiors...))
}

// NewFace builds a face anchored to surface, bounded by region.
func NewFace(g *Graph, surface store.Handle[topo.Surface], region store.Handle[topo.Region]) store.Handle[topo.Face] {
	return g.Faces.Insert(topo.NewFace(surface, region))
}

// NewSketch builds a sketch of regions on a single surface.
func NewSketch(g *Graph, surface store.Handle[topo.Surface], regions ...store.Handle[topo.Region]) store.Handle[topo.Sketch] {
	return g.Sketches.Insert(topo.NewSketch(surface, regions...))
}

// sharedEdge records the first half-edge built along one of a
// tetrahedron's six edges; its curve is shared with the second of the
// exactly two triangular faces that meet along that edge.
type sharedEdge struct {
	firstHalfEdge store.Handle[topo.HalfEdge]
}

// triangleFace builds a planar triangular face over vertex handles va, vb,
// vc at positions a, b, c (in that winding order, as seen from the side the
// face's normal points to). edges caches one sharedEdge per unordered
// vertex pair: the first face to use a given pair of vertices creates a
// fresh curve for that edge; the second reuses it via
// BuildHalfEdgeFromSibling, so the two half-edges tracing the same physical
// edge are true siblings, satisfying spec.md §4.7's half-edge-has-sibling
// check.
func triangleFace(
	g *Graph,
	edges map[[2]store.Handle[topo.Vertex]]sharedEdge,
	va, vb, vc store.Handle[topo.Vertex],
	a, b, c xmath.Point3,
) store.Handle[topo.Face] {
	u := geom.LineFromPoints3(a, b)
	v := c.Sub(a)
	surface := g.Surfaces.Insert(topo.Surface{})
	g.Geometry.DefineSurface(surface, geom.NewSurfaceGeometry(u, v))

	corners := [3]xmath.Point2{
		xmath.NewPoint2(0, 0),
		xmath.NewPoint2(1, 0),
		xmath.NewPoint2(0, 1),
	}
	verts := [3]store.Handle[topo.Vertex]{va, vb, vc}

	halfEdges := make([]store.Handle[topo.HalfEdge], 3)
	for i := 0; i < 3; i++ {
		start, end := verts[i], verts[(i+1)%3]
		halfEdges[i] = edgeHalfEdge(g, edges, start, end, corners[i], corners[(i+1)%3], surface)
	}

	cycle := g.Cycles.Insert(topo.NewCycle(halfEdges...))
	region := NewRegion(g, cycle)
	return NewFace(g, surface, region)
}

// edgeKey normalizes a vertex pair into map-key order, independent of
// traversal direction, so both faces sharing an edge look it up the same
// way regardless of which direction each traces it in.
func edgeKey(a, b store.Handle[topo.Vertex]) [2]store.Handle[topo.Vertex] {
	if a.Less(b) {
		return [2]store.Handle[topo.Vertex]{a, b}
	}
	return [2]store.Handle[topo.Vertex]{b, a}
}

func edgeHalfEdge(
	g *Graph,
	edges map[[2]store.Handle[topo.Vertex]]sharedEdge,
	start, end store.Handle[topo.Vertex],
	startLocal, endLocal xmath.Point2,
	surface store.Handle[topo.Surface],
) store.Handle[topo.HalfEdge] {
	key := edgeKey(start, end)
	path := geom.LineFromPoints2(startLocal, endLocal)

	existing, ok := edges[key]
	if !ok {
		curve := g.Curves.Insert(topo.Curve{})
		g.Geometry.DefineCurve(curve, surface, path)
		he := g.HalfEdges.Insert(topo.NewHalfEdge(path, unitBoundary(), curve, start))
		edges[key] = sharedEdge{firstHalfEdge: he}
		return he
	}

	return BuildHalfEdgeFromSibling(g, existing.firstHalfEdge, surface, path, unitBoundary(), start)
}

// Tetrahedron builds a closed shell of four triangular faces through the
// four given points, sharing one vertex identity per corner and one curve
// identity per edge (each edge used by exactly two faces, as true
// siblings). points must be ordered so that, viewed from outside the
// solid, each of the four faces below is wound counter-clockwise; a
// tetrahedron with points[0] as apex and points[1], points[2], points[3]
// forming its base (counter-clockwise as seen from the side away from
// points[0], i.e. clockwise as seen from points[0]'s side) satisfies this.
//
// Grounded on spec.md §6's Shell::tetrahedron and the general "four
// triangles sharing all six edges in pairs" construction of a tetrahedral
// boundary; the shared-vertex/shared-curve wiring follows
// fj-core/src/operations/build/half_edge.rs's BuildHalfEdge::from_sibling
// pattern (original_source).
func Tetrahedron(g *Graph, points [4]xmath.Point3) store.Handle[topo.Shell] {
	p0, p1, p2, p3 := points[0], points[1], points[2], points[3]
	v0 := g.Vertices.Insert(topo.NewVertex(p0))
	v1 := g.Vertices.Insert(topo.NewVertex(p1))
	v2 := g.Vertices.Insert(topo.NewVertex(p2))
	v3 := g.Vertices.Insert(topo.NewVertex(p3))

	edges := map[[2]store.Handle[topo.Vertex]]sharedEdge{}
	faces := []store.Handle[topo.Face]{
		triangleFace(g, edges, v0, v2, v1, p0, p2, p1),
		triangleFace(g, edges, v0, v1, v3, p0, p1, p3),
		triangleFace(g, edges, v0, v3, v2, p0, p3, p2),
		triangleFace(g, edges, v1, v2, v3, p1, p2, p3),
	}

	return g.Shells.Insert(topo.NewShell(faces...))
}
