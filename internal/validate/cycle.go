package validate

import (
	"github.com/ajsb85/brepkernel/internal/ops"
	"github.com/ajsb85/brepkernel/internal/store"
	"github.com/ajsb85/brepkernel/internal/topo"
)

// CheckAdjacentHalfEdgesConnected reports every pair of consecutive
// half-edges in cycle whose shared vertex position disagrees by more than
// config.IdenticalMaxDistance.
//
// Grounded on
// fj-core/src/validation/checks/half_edge_connection.rs's
// AdjacentHalfEdgesNotConnected (original_source).
func CheckAdjacentHalfEdgesConnected(g *ops.Graph, config Config, cycleHandle store.Handle[topo.Cycle]) []error {
	cycle := cycleHandle.Get()
	n := len(cycle.HalfEdges)
	if n == 0 {
		return nil
	}

	var errs []error
	for i := 0; i < n; i++ {
		first := cycle.HalfEdges[i].Get()
		second := cycle.HalfEdges[(i+1)%n].Get()

		endOfFirst := first.EndPosition()
		startOfSecond := second.StartPosition()
		distance := endOfFirst.Distance(startOfSecond)

		if distance > config.IdenticalMaxDistance {
			errs = append(errs, AdjacentHalfEdgesNotConnected{
				EndOfFirst:    cycle.HalfEdges[i],
				StartOfSecond: cycle.HalfEdges[(i+1)%n],
				EndPosition:   endOfFirst,
				StartPosition: startOfSecond,
				Distance:      distance,
			})
		}
	}
	return errs
}
