package kernel

import (
	"github.com/ajsb85/brepkernel/internal/ops"
	"github.com/ajsb85/brepkernel/internal/store"
	"github.com/ajsb85/brepkernel/internal/topo"
	"github.com/ajsb85/brepkernel/internal/xmath"
)

// JoinCycles stitches the half-edges of a at rangeA to the corresponding
// half-edges of b at rangeB, so they become true siblings.
func (c *Context) JoinCycles(a store.Handle[topo.Cycle], rangeA []int, b store.Handle[topo.Cycle], rangeB []int) store.Handle[topo.Cycle] {
	return ops.JoinCycles(c.Graph, a, rangeA, b, rangeB)
}

// SplitHalfEdgeInCycle splits the half-edge at index idx of cycle (local to
// surface) at curve parameter at, with a fresh mid vertex.
func (c *Context) SplitHalfEdgeInCycle(cycle store.Handle[topo.Cycle], idx int, at xmath.Point1, surface store.Handle[topo.Surface]) (store.Handle[topo.Cycle], [2]store.Handle[topo.HalfEdge]) {
	return ops.SplitHalfEdgeInCycle(c.Graph, cycle, idx, at, surface)
}

// SplitEdge splits a half-edge and its sibling in step, sharing one new
// mid vertex between both cycles.
func (c *Context) SplitEdge(
	cycleA store.Handle[topo.Cycle], idxA int, atA xmath.Point1, surfaceA store.Handle[topo.Surface],
	cycleB store.Handle[topo.Cycle], idxB int, atB xmath.Point1, surfaceB store.Handle[topo.Surface],
) (store.Handle[topo.Cycle], [2]store.Handle[topo.HalfEdge], store.Handle[topo.Cycle], [2]store.Handle[topo.HalfEdge]) {
	return ops.SplitEdge(c.Graph, cycleA, idxA, atA, surfaceA, cycleB, idxB, atB, surfaceB)
}
