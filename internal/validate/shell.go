package validate

import (
	"github.com/ajsb85/brepkernel/internal/ops"
	"github.com/ajsb85/brepkernel/internal/store"
	"github.com/ajsb85/brepkernel/internal/topo"
	"github.com/ajsb85/brepkernel/internal/xmath"
)

// shellHalfEdge is one half-edge of a shell together with the context
// needed to resolve its global position and identify its sibling: the face
// surface it's bound to and the vertex handle its cycle implies as its end.
type shellHalfEdge struct {
	handle  store.Handle[topo.HalfEdge]
	value   topo.HalfEdge
	surface store.Handle[topo.Surface]
	end     store.Handle[topo.Vertex]
}

// collectShellHalfEdges walks every face/region/cycle of shell, returning
// one shellHalfEdge per half-edge encountered.
func collectShellHalfEdges(g *ops.Graph, shell topo.Shell) []shellHalfEdge {
	var out []shellHalfEdge
	for _, faceHandle := range shell.Faces {
		face := faceHandle.Get()
		region := face.Region.Get()
		cycles := append([]store.Handle[topo.Cycle]{region.Exterior}, region.Interiors...)
		for _, cycleHandle := range cycles {
			cycle := cycleHandle.Get()
			n := len(cycle.HalfEdges)
			for i, heHandle := range cycle.HalfEdges {
				he := heHandle.Get()
				next := cycle.HalfEdges[(i+1)%n].Get()
				out = append(out, shellHalfEdge{
					handle:  heHandle,
					value:   he,
					surface: face.Surface,
					end:     next.StartVertex,
				})
			}
		}
	}
	return out
}

func (g *Graph) globalPosition(s shellHalfEdge, local xmath.Point1) xmath.Point3 {
	surfaceGeom := g.ops.Geometry.OfSurface(s.surface)
	return surfaceGeom.PointFromSurfaceCoords(s.value.Path.PointFromLocal(local))
}

// Graph is a thin wrapper giving this package's checks a name for the
// ops.Graph they operate over, without internal/ops needing to know
// anything about validation.
type Graph struct {
	ops *ops.Graph
}

// NewGraph wraps an ops.Graph for use by this package's checks.
func NewGraph(g *ops.Graph) *Graph {
	return &Graph{ops: g}
}

func (g *Graph) startPosition(s shellHalfEdge) xmath.Point3 {
	return g.globalPosition(s, s.value.Boundary.Inner[0])
}

func (g *Graph) endPosition(s shellHalfEdge) xmath.Point3 {
	return g.globalPosition(s, s.value.Boundary.Inner[1])
}

// CheckHalfEdgeHasSibling reports every half-edge in shell that has no
// sibling: no other half-edge, on a different face, sharing its curve,
// whose (start, end) vertex pair is this one's reversed. Two half-edges on
// the *same* face can never be siblings of each other, even if their
// endpoints happen to coincide in reverse — a sibling closes a shell seam
// between two distinct faces, not a face against itself.
//
// Grounded on fj-core/src/validation/checks/half_edge_has_no_sibling.rs
// (original_source).
func (g *Graph) CheckHalfEdgeHasSibling(shell topo.Shell) []error {
	type key struct {
		curve      store.Handle[topo.Curve]
		start, end store.Handle[topo.Vertex]
	}

	halfEdges := collectShellHalfEdges(g.ops, shell)
	unmatched := map[key]shellHalfEdge{}

	for _, s := range halfEdges {
		k := key{curve: s.value.Curve, start: s.value.StartVertex, end: s.end}
		reversed := key{curve: s.value.Curve, start: s.end, end: s.value.StartVertex}

		if candidate, ok := unmatched[reversed]; ok && candidate.surface != s.surface {
			delete(unmatched, reversed)
			continue
		}
		unmatched[k] = s
	}

	var errs []error
	for _, s := range unmatched {
		errs = append(errs, HalfEdgeHasNoSibling{HalfEdge: s.handle})
	}
	return errs
}

// CheckCoincidentHalfEdgesAreSiblings reports pairs of half-edges anywhere
// in shell (the same face or not) whose endpoints coincide within
// Config.IdenticalMaxDistance but whose curve handles differ: geometric
// coincidence without the identity relationship (shared curve) that should
// accompany it.
func (g *Graph) CheckCoincidentHalfEdgesAreSiblings(shell topo.Shell, config Config) []error {
	halfEdges := collectShellHalfEdges(g.ops, shell)

	var errs []error
	for i := range halfEdges {
		for j := i + 1; j < len(halfEdges); j++ {
			a, b := halfEdges[i], halfEdges[j]
			if a.value.Curve == b.value.Curve {
				continue
			}

			aStart, aEnd := g.startPosition(a), g.endPosition(a)
			bStart, bEnd := g.startPosition(b), g.endPosition(b)

			forward := aStart.Distance(bStart) <= config.IdenticalMaxDistance &&
				aEnd.Distance(bEnd) <= config.IdenticalMaxDistance
			backward := aStart.Distance(bEnd) <= config.IdenticalMaxDistance &&
				aEnd.Distance(bStart) <= config.IdenticalMaxDistance

			if forward || backward {
				errs = append(errs, CoincidentHalfEdgesAreNotSiblings{First: a.handle, Second: b.handle})
			}
		}
	}
	return errs
}

// CheckCurveGeometryMismatch reports, for each curve handle, every
// half-edge whose global start and end positions differ from those of the
// first half-edge on that curve (compared in either direction, summed) by
// more than Config.IdenticalMaxDistance. Only the two end points are
// compared; the curve between them is not sampled.
func (g *Graph) CheckCurveGeometryMismatch(shell topo.Shell, config Config) []error {
	halfEdges := collectShellHalfEdges(g.ops, shell)
	byCurve := map[store.Handle[topo.Curve]][]shellHalfEdge{}
	for _, s := range halfEdges {
		byCurve[s.value.Curve] = append(byCurve[s.value.Curve], s)
	}

	var errs []error
	for _, group := range byCurve {
		if len(group) < 2 {
			continue
		}
		first := group[0]
		firstStart, firstEnd := g.startPosition(first), g.endPosition(first)

		for _, other := range group[1:] {
			otherStart, otherEnd := g.startPosition(other), g.endPosition(other)

			d := min2(
				firstStart.Distance(otherStart)+firstEnd.Distance(otherEnd),
				firstStart.Distance(otherEnd)+firstEnd.Distance(otherStart),
			)
			if d > config.IdenticalMaxDistance {
				errs = append(errs, CurveGeometryMismatch{First: first.handle, Second: other.handle, Distance: d})
			}
		}
	}
	return errs
}

func min2(a, b xmath.Scalar) xmath.Scalar {
	if a < b {
		return a
	}
	return b
}
