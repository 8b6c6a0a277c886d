// Package ops implements the kernel's topology-building operations: sweep
// (vertex/edge/face/sketch), rigid transform, reverse, join and split-edge.
// Every operation is a function over a Graph (the per-kind object stores
// plus the geometry binding), taking and returning store.Handle values the
// same way the topology graph in internal/topo references its own
// constituents.
//
// Grounded on fj-core/src/operations/{sweep,transform,reverse,join,split}
// and fj-kernel/src/algorithms/{reverse,transform} (original_source).
package ops

import (
	"github.com/ajsb85/brepkernel/internal/geombind"
	"github.com/ajsb85/brepkernel/internal/store"
	"github.com/ajsb85/brepkernel/internal/topo"
	"github.com/ajsb85/brepkernel/internal/xmath"
)

// Graph bundles the per-kind object stores and the geometry binding that
// every building/sweeping/transforming operation needs. It is the ops-level
// equivalent of spec.md §4.8's kernel.Context, kept separate from the
// validation layer so internal/ops has no dependency on internal/validate.
type Graph struct {
	Vertices  *store.Store[topo.Vertex]
	Curves    *store.Store[topo.Curve]
	Surfaces  *store.Store[topo.Surface]
	HalfEdges *store.Store[topo.HalfEdge]
	Cycles    *store.Store[topo.Cycle]
	Regions   *store.Store[topo.Region]
	Faces     *store.Store[topo.Face]
	Shells    *store.Store[topo.Shell]
	Solids    *store.Store[topo.Solid]
	Sketches  *store.Store[topo.Sketch]

	Geometry  *geombind.Geometry
	Tolerance xmath.Scalar
}

const defaultStoreBlockSize = 256

// NewGraph constructs an empty Graph with tolerance as its approximation
// deviation bound, registering the builtin planes (xy, xz, yz, 2D space)
// into the surface store via geombind.New.
func NewGraph(tolerance xmath.Scalar) *Graph {
	surfaces := store.New[topo.Surface](defaultStoreBlockSize)
	return &Graph{
		Vertices:  store.New[topo.Vertex](defaultStoreBlockSize),
		Curves:    store.New[topo.Curve](defaultStoreBlockSize),
		Surfaces:  surfaces,
		HalfEdges: store.New[topo.HalfEdge](defaultStoreBlockSize),
		Cycles:    store.New[topo.Cycle](defaultStoreBlockSize),
		Regions:   store.New[topo.Region](defaultStoreBlockSize),
		Faces:     store.New[topo.Face](defaultStoreBlockSize),
		Shells:    store.New[topo.Shell](defaultStoreBlockSize),
		Solids:    store.New[topo.Solid](defaultStoreBlockSize),
		Sketches:  store.New[topo.Sketch](defaultStoreBlockSize),
		Geometry:  geombind.New(surfaces),
		Tolerance: tolerance,
	}
}

// Resolvers builds a topo.Resolvers backed directly by handle dereference:
// every store.Handle[T] already carries a pointer to its own slot, so no
// store lookup is needed, only the method itself, expressed as a method
// expression matching topo.Resolvers' function-valued fields.
func (g *Graph) Resolvers() topo.Resolvers {
	return topo.Resolvers{
		HalfEdge: store.Handle[topo.HalfEdge].Get,
		Cycle:    store.Handle[topo.Cycle].Get,
		Region:   store.Handle[topo.Region].Get,
		Face:     store.Handle[topo.Face].Get,
		Shell:    store.Handle[topo.Shell].Get,
	}
}
