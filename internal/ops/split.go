package ops

import (
	"github.com/ajsb85/brepkernel/internal/geom"
	"github.com/ajsb85/brepkernel/internal/store"
	"github.com/ajsb85/brepkernel/internal/topo"
	"github.com/ajsb85/brepkernel/internal/xmath"
)

// splitVertexAt resolves the global point at curve-local parameter at on
// the half-edge at index idx of cycle (local to surface), and inserts a
// fresh Vertex there.
func splitVertexAt(g *Graph, cycleHandle store.Handle[topo.Cycle], idx int, at xmath.Point1, surface store.Handle[topo.Surface]) store.Handle[topo.Vertex] {
	cycle := cycleHandle.Get()
	n := len(cycle.HalfEdges)
	idx = ((idx % n) + n) % n
	he := cycle.HalfEdges[idx].Get()
	local2 := he.Path.PointFromLocal(at)
	global := g.Geometry.OfSurface(surface).PointFromSurfaceCoords(local2)
	return g.Vertices.Insert(topo.NewVertex(global))
}

// splitHalfEdgeInCycleAt splits the half-edge at index idx of cycle into two
// half-edges joined at midVertex, at curve-local parameter at. Returns the
// updated cycle and the two new half-edge handles, in order.
func splitHalfEdgeInCycleAt(g *Graph, cycleHandle store.Handle[topo.Cycle], idx int, at xmath.Point1, midVertex store.Handle[topo.Vertex]) (store.Handle[topo.Cycle], [2]store.Handle[topo.HalfEdge]) {
	cycle := cycleHandle.Get()
	n := len(cycle.HalfEdges)
	idx = ((idx % n) + n) % n

	he := cycle.HalfEdges[idx].Get()
	if !he.Boundary.Contains(at) {
		panic("ops: split point must lie within the half-edge's boundary")
	}
	lo, hi := he.Boundary.Inner[0], he.Boundary.Inner[1]

	first := topo.NewHalfEdge(he.Path, geom.NewCurveBoundary(lo, at), he.Curve, he.StartVertex)
	second := topo.NewHalfEdge(he.Path, geom.NewCurveBoundary(at, hi), he.Curve, midVertex)

	firstHandle := g.HalfEdges.Insert(first)
	secondHandle := g.HalfEdges.Insert(second)

	newHalfEdges := make([]store.Handle[topo.HalfEdge], 0, n+1)
	newHalfEdges = append(newHalfEdges, cycle.HalfEdges[:idx]...)
	newHalfEdges = append(newHalfEdges, firstHandle, secondHandle)
	newHalfEdges = append(newHalfEdges, cycle.HalfEdges[idx+1:]...)

	newCycle := g.Cycles.Insert(topo.NewCycle(newHalfEdges...))
	return newCycle, [2]store.Handle[topo.HalfEdge]{firstHandle, secondHandle}
}

// SplitHalfEdgeInCycle splits the half-edge at index idx of cycle (local to
// surface) at curve parameter at, with a fresh mid vertex at the
// corresponding global point. Use SplitEdge instead when the half-edge has
// a sibling that must be split in step.
func SplitHalfEdgeInCycle(g *Graph, cycleHandle store.Handle[topo.Cycle], idx int, at xmath.Point1, surface store.Handle[topo.Surface]) (store.Handle[topo.Cycle], [2]store.Handle[topo.HalfEdge]) {
	midVertex := splitVertexAt(g, cycleHandle, idx, at, surface)
	return splitHalfEdgeInCycleAt(g, cycleHandle, idx, at, midVertex)
}

// SplitEdge splits the half-edge at index idxA of cycleA (local to
// surfaceA), at curve parameter atA, and its sibling at index idxB of
// cycleB (local to surfaceB), at curve parameter atB (expressed in the
// sibling's own, opposite-direction parameterization). Both splits share
// the same new mid vertex — resolved once, from cycleA's side — so the two
// shells stay joined at the split point both topologically and
// geometrically.
//
// Grounded on fj-core/src/operations/split/edge.rs's SplitEdge::split_edge
// (original_source), which requires the sibling to be split in the
// opposite direction to preserve shell validity.
func SplitEdge(
	g *Graph,
	cycleA store.Handle[topo.Cycle], idxA int, atA xmath.Point1, surfaceA store.Handle[topo.Surface],
	cycleB store.Handle[topo.Cycle], idxB int, atB xmath.Point1, surfaceB store.Handle[topo.Surface],
) (store.Handle[topo.Cycle], [2]store.Handle[topo.HalfEdge], store.Handle[topo.Cycle], [2]store.Handle[topo.HalfEdge]) {
	midVertex := splitVertexAt(g, cycleA, idxA, atA, surfaceA)
	newCycleA, splitA := splitHalfEdgeInCycleAt(g, cycleA, idxA, atA, midVertex)
	newCycleB, splitB := splitHalfEdgeInCycleAt(g, cycleB, idxB, atB, midVertex)
	return newCycleA, splitA, newCycleB, splitB
}
