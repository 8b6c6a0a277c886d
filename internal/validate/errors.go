package validate

import (
	"fmt"

	"github.com/ajsb85/brepkernel/internal/store"
	"github.com/ajsb85/brepkernel/internal/topo"
	"github.com/ajsb85/brepkernel/internal/xmath"
)

// AdjacentHalfEdgesNotConnected reports that the end position of one
// half-edge in a cycle doesn't meet the start position of the next, within
// Config.IdenticalMaxDistance.
//
// Grounded on fj-core/src/validation/checks/half_edge_connection.rs
// (original_source).
type AdjacentHalfEdgesNotConnected struct {
	EndOfFirst, StartOfSecond store.Handle[topo.HalfEdge]
	EndPosition, StartPosition xmath.Point2
	Distance                  xmath.Scalar
}

func (e AdjacentHalfEdgesNotConnected) Error() string {
	return fmt.Sprintf(
		"adjacent half-edges in cycle are not connected: end position %v, start position %v, distance %v",
		e.EndPosition, e.StartPosition, e.Distance,
	)
}

// HalfEdgeHasNoSibling reports a half-edge in a shell with no matching
// sibling: no other half-edge, in a different face, shares its curve with
// reversed bounding vertices.
//
// Grounded on fj-core/src/validation/checks/half_edge_has_no_sibling.rs
// (original_source).
type HalfEdgeHasNoSibling struct {
	HalfEdge store.Handle[topo.HalfEdge]
}

func (e HalfEdgeHasNoSibling) Error() string {
	return "half-edge has no sibling in shell"
}

// CoincidentHalfEdgesAreNotSiblings reports two half-edges whose positions
// coincide within Config.IdenticalMaxDistance but which do not share a
// curve handle: geometric coincidence without the identity relationship
// that should accompany it.
type CoincidentHalfEdgesAreNotSiblings struct {
	First, Second store.Handle[topo.HalfEdge]
}

func (e CoincidentHalfEdgesAreNotSiblings) Error() string {
	return "coincident half-edges do not share a curve (are not siblings)"
}

// CurveGeometryMismatch reports that two half-edges sharing a curve have
// global end points that disagree, in either direction, by Distance.
type CurveGeometryMismatch struct {
	First, Second store.Handle[topo.HalfEdge]
	Distance      xmath.Scalar
}

func (e CurveGeometryMismatch) Error() string {
	return fmt.Sprintf("half-edges sharing a curve disagree on its geometry, distance %v", e.Distance)
}

// FaceHasNoBoundary reports a face whose region's exterior cycle has no
// half-edges.
type FaceHasNoBoundary struct {
	Face store.Handle[topo.Face]
}

func (e FaceHasNoBoundary) Error() string {
	return "face's region has an empty exterior cycle"
}

// InteriorCycleHasInvalidWinding reports an interior (hole) cycle whose
// winding matches, rather than opposes, its region's exterior cycle.
type InteriorCycleHasInvalidWinding struct {
	Region   store.Handle[topo.Region]
	Interior store.Handle[topo.Cycle]
}

func (e InteriorCycleHasInvalidWinding) Error() string {
	return "interior cycle's winding must be opposite the exterior cycle's"
}

// MultipleReferences reports an object referenced by more than one owner,
// violating the "at most one reference" exclusivity spec.md §4.7 requires
// for cycles, half-edges, regions and faces.
type MultipleReferences struct {
	Kind  string
	Count int
}

func (e MultipleReferences) Error() string {
	return fmt.Sprintf("%s is referenced %d times, exclusive ownership requires at most 1", e.Kind, e.Count)
}

// SolidVertexCoincidence reports two vertices in a solid that are either
// distinct handles closer than Config.DistinctMinDistance (should have been
// merged into one vertex), or references to the same handle whose resolved
// positions differ by more than Config.IdenticalMaxDistance (inconsistent
// geometry binding).
type SolidVertexCoincidence struct {
	First, Second store.Handle[topo.Vertex]
	Distance      xmath.Scalar
	SameHandle    bool
}

func (e SolidVertexCoincidence) Error() string {
	if e.SameHandle {
		return fmt.Sprintf("same vertex resolves to positions %v apart, exceeding identical_max_distance", e.Distance)
	}
	return fmt.Sprintf("distinct vertices are %v apart, closer than distinct_min_distance", e.Distance)
}
