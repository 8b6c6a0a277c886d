package validate

import (
	"github.com/ajsb85/brepkernel/internal/ops"
	"github.com/ajsb85/brepkernel/internal/store"
	"github.com/ajsb85/brepkernel/internal/topo"
)

// CheckExclusiveOwnership reports every Cycle, HalfEdge, Region or Face
// referenced more than once across the whole graph: spec.md §4.7 requires
// each of these kinds to have at most one owning reference (a half-edge
// belongs to exactly one cycle, a cycle to exactly one region, and so on),
// unlike Vertex/Curve/Surface, which are legitimately shared.
func CheckExclusiveOwnership(g *ops.Graph) []error {
	var errs []error

	halfEdgeRefs := map[store.Handle[topo.HalfEdge]]int{}
	g.Cycles.Each(func(_ store.Handle[topo.Cycle], cycle topo.Cycle) {
		for _, he := range cycle.HalfEdges {
			halfEdgeRefs[he]++
		}
	})
	errs = append(errs, countExcessReferences("HalfEdge", halfEdgeRefs)...)

	cycleRefs := map[store.Handle[topo.Cycle]]int{}
	g.Regions.Each(func(_ store.Handle[topo.Region], region topo.Region) {
		cycleRefs[region.Exterior]++
		for _, interior := range region.Interiors {
			cycleRefs[interior]++
		}
	})
	errs = append(errs, countExcessReferences("Cycle", cycleRefs)...)

	regionRefs := map[store.Handle[topo.Region]]int{}
	g.Faces.Each(func(_ store.Handle[topo.Face], face topo.Face) {
		regionRefs[face.Region]++
	})
	errs = append(errs, countExcessReferences("Region", regionRefs)...)

	faceRefs := map[store.Handle[topo.Face]]int{}
	g.Shells.Each(func(_ store.Handle[topo.Shell], shell topo.Shell) {
		for _, face := range shell.Faces {
			faceRefs[face]++
		}
	})
	errs = append(errs, countExcessReferences("Face", faceRefs)...)

	return errs
}

func countExcessReferences[K comparable](kind string, refs map[K]int) []error {
	var errs []error
	for _, count := range refs {
		if count > 1 {
			errs = append(errs, MultipleReferences{Kind: kind, Count: count})
		}
	}
	return errs
}
