package ops

import (
	"github.com/ajsb85/brepkernel/internal/geom"
	"github.com/ajsb85/brepkernel/internal/store"
	"github.com/ajsb85/brepkernel/internal/topo"
	"github.com/ajsb85/brepkernel/internal/xmath"
)

// flipPath2 mirrors a surface-local path through the surface's u-axis (v ->
// -v), the local-coordinate change that corresponds to flipping the
// surface's v direction.
func flipPath2(p geom.Path2) geom.Path2 {
	if p.Kind == geom.PathCircle {
		c := p.Circle
		return geom.CirclePath2(xmath.NewCircle2(
			xmath.NewPoint2(c.Center.X, -c.Center.Y),
			xmath.NewVector2(c.A.X, -c.A.Y),
			xmath.NewVector2(c.B.X, -c.B.Y),
		))
	}
	l := p.Line
	return geom.LinePath2(xmath.NewLine2(
		xmath.NewPoint2(l.Origin.X, -l.Origin.Y),
		xmath.NewVector2(l.Direction.X, -l.Direction.Y),
	))
}

// ReverseCycle reverses cycle's direction (sequence of half-edges reversed,
// each half-edge's path and boundary reversed) and rebinds each half-edge's
// curve onto newSurface with its path mirrored to match that surface's
// flipped v direction.
//
// Grounded on fj-kernel/src/algorithms/reverse.rs's reverse_face /
// reverse_local_coordinates_in_cycle (original_source): the original negates
// the v-coordinate (named "v" there as the second local axis) of every
// half-edge's local curve form when a face is reversed.
func ReverseCycle(g *Graph, newSurface store.Handle[topo.Surface], cycleHandle store.Handle[topo.Cycle]) store.Handle[topo.Cycle] {
	cycle := cycleHandle.Get()
	n := len(cycle.HalfEdges)
	resolved := make([]topo.HalfEdge, n)
	for i, h := range cycle.HalfEdges {
		resolved[i] = h.Get()
	}

	newHalfEdges := make([]store.Handle[topo.HalfEdge], n)
	for i := 0; i < n; i++ {
		he := resolved[i]
		// he's implicit end vertex is the next half-edge's start; once
		// reversed, that becomes its start.
		nextStart := resolved[(i+1)%n].StartVertex

		flipped := flipPath2(he.Path)
		g.Geometry.DefineCurve(he.Curve, newSurface, flipped)

		reversed := topo.NewHalfEdge(flipped.Reverse(), he.Boundary.Reverse(), he.Curve, nextStart)
		newHandle := g.HalfEdges.Insert(reversed)
		newHalfEdges[n-1-i] = newHandle
	}

	return g.Cycles.Insert(topo.NewCycle(newHalfEdges...))
}

// ReverseFace reverses face: its exterior and interior cycles are reversed,
// and its surface's normal is inverted by negating the surface's v
// direction.
//
// Grounded on fj-kernel/src/algorithms/reverse.rs's reverse_face
// (original_source).
func ReverseFace(g *Graph, faceHandle store.Handle[topo.Face]) store.Handle[topo.Face] {
	face := faceHandle.Get()
	old := g.Geometry.OfSurface(face.Surface)
	newSurface := g.Surfaces.Insert(topo.Surface{})
	g.Geometry.DefineSurface(newSurface, geom.NewSurfaceGeometry(old.U, old.V.Neg()))

	region := face.Region.Get()
	newExterior := ReverseCycle(g, newSurface, region.Exterior)
	newInteriors := make([]store.Handle[topo.Cycle], len(region.Interiors))
	for i, interior := range region.Interiors {
		newInteriors[i] = ReverseCycle(g, newSurface, interior)
	}

	newRegion := g.Regions.Insert(topo.NewRegion(newExterior, newInteriors...))
	newFace := topo.NewFace(newSurface, newRegion)
	newFace.Internal = face.Internal
	return g.Faces.Insert(newFace)
}
