package ops

import (
	"github.com/ajsb85/brepkernel/internal/store"
	"github.com/ajsb85/brepkernel/internal/topo"
)

// JoinCycles replaces the half-edges of a at the indices in rangeA with
// versions that share curve and start vertex with the corresponding
// half-edges of b at the indices in rangeB (index i of rangeA pairs with
// index i of rangeB), returning a's updated handle. rangeA and rangeB must
// have equal length. Indices are taken modulo each cycle's length, so a
// range may cross the cycle's "seam".
//
// Used to stitch a sweep's side faces to its top/bottom faces: a side
// face's "top" edge and the corresponding edge of the swept top face start
// out as geometrically coincident but topologically distinct half-edges;
// JoinCycles unifies them into true siblings.
//
// Grounded on fj-kernel/src/operations/join/cycle.rs's JoinCycle::join_to
// (original_source).
func JoinCycles(g *Graph, a store.Handle[topo.Cycle], rangeA []int, b store.Handle[topo.Cycle], rangeB []int) store.Handle[topo.Cycle] {
	if len(rangeA) != len(rangeB) {
		panic("ops: JoinCycles ranges must have equal length")
	}

	cycleA := a.Get()
	cycleB := b.Get()
	na, nb := len(cycleA.HalfEdges), len(cycleB.HalfEdges)

	newHalfEdges := append([]store.Handle[topo.HalfEdge]{}, cycleA.HalfEdges...)
	for k := range rangeA {
		ia := ((rangeA[k] % na) + na) % na
		ib := ((rangeB[k] % nb) + nb) % nb

		heA := newHalfEdges[ia].Get()
		heB := cycleB.HalfEdges[ib].Get()

		joined := topo.NewHalfEdge(heA.Path, heA.Boundary, heB.Curve, heB.StartVertex)
		newHalfEdges[ia] = g.HalfEdges.Insert(joined)
	}

	return g.Cycles.Insert(topo.NewCycle(newHalfEdges...))
}
