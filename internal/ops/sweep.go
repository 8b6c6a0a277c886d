package ops

import (
	"github.com/ajsb85/brepkernel/internal/geom"
	"github.com/ajsb85/brepkernel/internal/store"
	"github.com/ajsb85/brepkernel/internal/topo"
	"github.com/ajsb85/brepkernel/internal/xmath"
)

// SweepCache caches the vertical curve introduced by sweeping a given
// vertex, so that two side faces meeting at the same swept edge share one
// curve identity instead of two, and composes a TransformCache to build the
// swept-face's "top" copy.
//
// Grounded on fj-core/src/operations/sweep/{half_edge,shell_face}.rs's
// SweepCache (original_source), simplified: the original caches per-vertex
// swept curve *and* vertex together; here the vertex side of that is
// already handled by reusing internal/ops's TransformCache (the vertex a
// side face's "up" edge ends on is exactly the one the top face's
// TransformFace call produced for that same input vertex).
type SweepCache struct {
	transform      *TransformCache
	verticalCurves map[store.Handle[topo.Vertex]]store.Handle[topo.Curve]
}

// NewSweepCache returns an empty SweepCache.
func NewSweepCache() *SweepCache {
	return &SweepCache{
		transform:      NewTransformCache(),
		verticalCurves: map[store.Handle[topo.Vertex]]store.Handle[topo.Curve]{},
	}
}

func verticalCurve(g *Graph, cache *SweepCache, vertex store.Handle[topo.Vertex]) store.Handle[topo.Curve] {
	if c, ok := cache.verticalCurves[vertex]; ok {
		return c
	}
	c := g.Curves.Insert(topo.Curve{})
	cache.verticalCurves[vertex] = c
	return c
}

// sweepSurfacePath sweeps a surface-local path along sweepVec, producing the
// swept-path surface it traces: u is path re-expressed in global
// coordinates via base, v is sweepVec.
//
// Grounded on fj-core/src/operations/sweep/path.rs's SweepSurfacePath
// (original_source), including its refusal to sweep a path defined on a
// curved base surface.
func sweepSurfacePath(path geom.Path2, base geom.SurfaceGeometry, sweepVec xmath.Vector3) geom.SurfaceGeometry {
	if base.U.Kind == geom.PathCircle {
		panic("ops: sweeping a curve defined on a curved surface is not supported")
	}

	if path.Kind == geom.PathCircle {
		center := base.PointFromSurfaceCoords(path.Circle.Center)
		a := base.VectorFromSurfaceCoords(path.Circle.A)
		b := base.VectorFromSurfaceCoords(path.Circle.B)
		return geom.NewSurfaceGeometry(geom.CirclePath3(xmath.NewCircle3(center, a, b)), sweepVec)
	}

	origin := base.PointFromSurfaceCoords(path.Line.Origin)
	direction := base.VectorFromSurfaceCoords(path.Line.Direction)
	return geom.NewSurfaceGeometry(geom.LinePath3(xmath.NewLine3(origin, direction)), sweepVec)
}

// sweepSideFace builds the quadrilateral face swept from a single boundary
// half-edge: bottom is the half-edge itself, top is its counterpart on the
// already-transformed top face, and the two vertical sides are curves
// cached per start vertex so adjacent side faces share them.
func sweepSideFace(
	g *Graph, cache *SweepCache, base geom.SurfaceGeometry, sweepVec xmath.Vector3,
	bottomHE topo.HalfEdge, bottomEndVertex store.Handle[topo.Vertex],
	topHE topo.HalfEdge, topEndVertex store.Handle[topo.Vertex],
) store.Handle[topo.Face] {
	sideGeom := sweepSurfacePath(bottomHE.Path, base, sweepVec)
	sideSurface := g.Surfaces.Insert(topo.Surface{})
	g.Geometry.DefineSurface(sideSurface, sideGeom)

	lo, hi := bottomHE.Boundary.Inner[0], bottomHE.Boundary.Inner[1]
	unit01 := geom.NewCurveBoundary(xmath.Point1{T: 0}, xmath.Point1{T: 1})
	unit10 := geom.NewCurveBoundary(xmath.Point1{T: 1}, xmath.Point1{T: 0})

	bottomPath := geom.LinePath2(xmath.NewLine2(xmath.NewPoint2(lo.T, 0), xmath.NewVector2(hi.T-lo.T, 0)))
	g.Geometry.DefineCurve(bottomHE.Curve, sideSurface, bottomPath)
	bottomSide := g.HalfEdges.Insert(topo.NewHalfEdge(bottomPath, bottomHE.Boundary, bottomHE.Curve, bottomHE.StartVertex))

	rightCurve := verticalCurve(g, cache, bottomEndVertex)
	rightPath := geom.LinePath2(xmath.NewLine2(xmath.NewPoint2(hi.T, 0), xmath.NewVector2(0, 1)))
	g.Geometry.DefineCurve(rightCurve, sideSurface, rightPath)
	right := g.HalfEdges.Insert(topo.NewHalfEdge(rightPath, unit01, rightCurve, bottomEndVertex))

	topCurve := g.Curves.Insert(topo.Curve{})
	topPath := geom.LinePath2(xmath.NewLine2(xmath.NewPoint2(hi.T, 1), xmath.NewVector2(lo.T-hi.T, 0)))
	g.Geometry.DefineCurve(topCurve, sideSurface, topPath)
	top := g.HalfEdges.Insert(topo.NewHalfEdge(topPath, bottomHE.Boundary.Reverse(), topCurve, topEndVertex))

	leftCurve := verticalCurve(g, cache, bottomHE.StartVertex)
	leftPath := geom.LinePath2(xmath.NewLine2(xmath.NewPoint2(lo.T, 1), xmath.NewVector2(0, -1)))
	g.Geometry.DefineCurve(leftCurve, sideSurface, leftPath)
	left := g.HalfEdges.Insert(topo.NewHalfEdge(leftPath, unit10, leftCurve, topHE.StartVertex))

	cycle := g.Cycles.Insert(topo.NewCycle(bottomSide, right, top, left))
	region := g.Regions.Insert(topo.NewRegion(cycle))
	return g.Faces.Insert(topo.NewFace(sideSurface, region))
}

// SweepFace sweeps face along sweepVec, producing a closed shell: the
// original face's plane translated forms one cap, the original (possibly
// reversed) face forms the other, and one side face is built per boundary
// half-edge. Panics if face's region has interior cycles, which this
// simplified sweep does not yet support.
//
// The sweep direction is compared against the surface normal; a negative
// dot product ("negative sweep") swaps the bottom and top caps and reverses
// neither of them, following spec.md §4.6 exactly.
//
// Grounded on fj-core/src/operations/sweep/shell_face.rs's
// sweep_face_of_shell (original_source).
func SweepFace(g *Graph, cache *SweepCache, faceHandle store.Handle[topo.Face], sweepVec xmath.Vector3) (store.Handle[topo.Shell], store.Handle[topo.Face]) {
	face := faceHandle.Get()
	region := face.Region.Get()
	if len(region.Interiors) > 0 {
		panic("ops: sweeping a face with interior cycles is not supported")
	}

	base := g.Geometry.OfSurface(face.Surface)
	normal := base.Normal(xmath.Zero)
	negative := normal.Dot(sweepVec) < 0

	translated := TransformFace(g, cache.transform, xmath.Translation(sweepVec), faceHandle)

	bottomExterior := region.Exterior.Get()
	topExterior := translated.Get().Region.Get().Exterior.Get()
	n := len(bottomExterior.HalfEdges)
	if n != len(topExterior.HalfEdges) {
		panic("ops: swept face's translated copy has a different edge count than the original")
	}

	sideFaces := make([]store.Handle[topo.Face], n)
	for i := 0; i < n; i++ {
		bottomHE := bottomExterior.HalfEdges[i].Get()
		nextBottomHE := bottomExterior.HalfEdges[(i+1)%n].Get()
		topHE := topExterior.HalfEdges[i].Get()
		nextTopHE := topExterior.HalfEdges[(i+1)%n].Get()

		sideFaces[i] = sweepSideFace(g, cache, base, sweepVec,
			bottomHE, nextBottomHE.StartVertex,
			topHE, nextTopHE.StartVertex,
		)
	}

	var bottomFace, topFace store.Handle[topo.Face]
	if negative {
		bottomFace = translated
		topFace = faceHandle
	} else {
		bottomFace = ReverseFace(g, faceHandle)
		topFace = translated
	}

	faces := append([]store.Handle[topo.Face]{bottomFace, topFace}, sideFaces...)
	shell := g.Shells.Insert(topo.NewShell(faces...))
	return shell, topFace
}

// reverseRegionWinding reverses a region's cycles' direction in place (new
// handles), without touching the surface the region will eventually be
// bound to. Used by SweepSketch, which must flip a sketch region's winding
// before building a face from it when the sweep is not a negative sweep,
// but has no surface of its own yet to flip (unlike ReverseFace).
func reverseRegionWinding(g *Graph, regionHandle store.Handle[topo.Region]) store.Handle[topo.Region] {
	region := regionHandle.Get()
	newExterior := reverseCycleWindingOnly(g, region.Exterior)
	newInteriors := make([]store.Handle[topo.Cycle], len(region.Interiors))
	for i, interior := range region.Interiors {
		newInteriors[i] = reverseCycleWindingOnly(g, interior)
	}
	return g.Regions.Insert(topo.NewRegion(newExterior, newInteriors...))
}

func reverseCycleWindingOnly(g *Graph, cycleHandle store.Handle[topo.Cycle]) store.Handle[topo.Cycle] {
	cycle := cycleHandle.Get()
	n := len(cycle.HalfEdges)
	resolved := make([]topo.HalfEdge, n)
	for i, h := range cycle.HalfEdges {
		resolved[i] = h.Get()
	}

	newHalfEdges := make([]store.Handle[topo.HalfEdge], n)
	for i := 0; i < n; i++ {
		he := resolved[i]
		nextStart := resolved[(i+1)%n].StartVertex
		reversed := topo.NewHalfEdge(he.Path.Reverse(), he.Boundary.Reverse(), he.Curve, nextStart)
		newHalfEdges[n-1-i] = g.HalfEdges.Insert(reversed)
	}

	return g.Cycles.Insert(topo.NewCycle(newHalfEdges...))
}

// planarDirection returns a surface's u-path direction, if it is a line.
// ok is false for a circular (rounded) u-path.
func planarDirection(surfaceGeom geom.SurfaceGeometry) (xmath.Vector3, bool) {
	if surfaceGeom.U.Kind == geom.PathCircle {
		return xmath.Vector3{}, false
	}
	return surfaceGeom.U.Line.Direction, true
}

// SweepSketch sweeps every region of sketch independently along sweepVec,
// each producing its own shell; the resulting solid is their union.
//
// Each region's exterior cycle must already be wound counter-clockwise
// (panics otherwise). The sweep direction is compared against the sketch's
// surface normal (u x v): for a "positive" sweep the region is reversed
// before building its face (so the swept solid's outward side faces the
// sweep direction); for a negative sweep it is used as-is, matching
// spec.md §4.6 and the supplemented is_negative_sweep computation in
// fj-core/src/operations/sweep/sketch.rs (original_source). Sweeping from a
// surface with a circular u-path is not supported, mirroring that file's
// todo!-guarded rejection.
func SweepSketch(g *Graph, sketch topo.Sketch, sweepVec xmath.Vector3) store.Handle[topo.Solid] {
	cache := NewSweepCache()
	surfaceGeom := g.Geometry.OfSurface(sketch.Surface)

	u, ok := planarDirection(surfaceGeom)
	if !ok {
		panic("ops: sweeping a sketch from a rounded surface is not supported")
	}
	normal := u.Cross(surfaceGeom.V)
	negative := normal.Dot(sweepVec) < 0

	var shells []store.Handle[topo.Shell]
	for _, regionHandle := range sketch.Regions {
		region := regionHandle.Get()
		exterior := region.Exterior.Get()
		if exterior.Winding(store.Handle[topo.HalfEdge].Get) != topo.CCW {
			panic("ops: sketch region's exterior cycle must be wound counter-clockwise before sweeping")
		}

		usedRegion := regionHandle
		if !negative {
			usedRegion = reverseRegionWinding(g, regionHandle)
		}

		face := g.Faces.Insert(topo.NewFace(sketch.Surface, usedRegion))
		shell, _ := SweepFace(g, cache, face, sweepVec)
		shells = append(shells, shell)
	}

	return g.Solids.Insert(topo.NewSolid(shells...))
}
