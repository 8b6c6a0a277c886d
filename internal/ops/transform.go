package ops

import (
	"github.com/ajsb85/brepkernel/internal/geom"
	"github.com/ajsb85/brepkernel/internal/store"
	"github.com/ajsb85/brepkernel/internal/topo"
	"github.com/ajsb85/brepkernel/internal/xmath"
)

// TransformCache remembers which new object each input handle has already
// been transformed into, so that two references to the same sub-object
// (e.g. two faces sharing an edge) transform into a single shared result
// instead of two independent copies.
//
// Grounded on fj-core/src/algorithms/transform/mod.rs's TransformCache
// (original_source), a per-kind cache keyed by object id; here expressed
// as one map per object kind, matching Go's lack of Rust's TypeMap.
type TransformCache struct {
	vertices  map[store.Handle[topo.Vertex]]store.Handle[topo.Vertex]
	curves    map[store.Handle[topo.Curve]]store.Handle[topo.Curve]
	surfaces  map[store.Handle[topo.Surface]]store.Handle[topo.Surface]
	halfEdges map[store.Handle[topo.HalfEdge]]store.Handle[topo.HalfEdge]
	cycles    map[store.Handle[topo.Cycle]]store.Handle[topo.Cycle]
	regions   map[store.Handle[topo.Region]]store.Handle[topo.Region]
	faces     map[store.Handle[topo.Face]]store.Handle[topo.Face]
	shells    map[store.Handle[topo.Shell]]store.Handle[topo.Shell]
}

// NewTransformCache returns an empty TransformCache.
func NewTransformCache() *TransformCache {
	return &TransformCache{
		vertices:  map[store.Handle[topo.Vertex]]store.Handle[topo.Vertex]{},
		curves:    map[store.Handle[topo.Curve]]store.Handle[topo.Curve]{},
		surfaces:  map[store.Handle[topo.Surface]]store.Handle[topo.Surface]{},
		halfEdges: map[store.Handle[topo.HalfEdge]]store.Handle[topo.HalfEdge]{},
		cycles:    map[store.Handle[topo.Cycle]]store.Handle[topo.Cycle]{},
		regions:   map[store.Handle[topo.Region]]store.Handle[topo.Region]{},
		faces:     map[store.Handle[topo.Face]]store.Handle[topo.Face]{},
		shells:    map[store.Handle[topo.Shell]]store.Handle[topo.Shell]{},
	}
}

// TransformVertex returns a fresh Vertex handle for h, carrying h's global
// point through t, or the one already produced for it in this cache.
func TransformVertex(g *Graph, cache *TransformCache, t xmath.Transform, h store.Handle[topo.Vertex]) store.Handle[topo.Vertex] {
	if nh, ok := cache.vertices[h]; ok {
		return nh
	}
	nh := g.Vertices.Insert(topo.NewVertex(t.ApplyPoint(h.Get().Point)))
	cache.vertices[h] = nh
	return nh
}

func transformCurve(g *Graph, cache *TransformCache, h store.Handle[topo.Curve]) store.Handle[topo.Curve] {
	if nh, ok := cache.curves[h]; ok {
		return nh
	}
	nh := g.Curves.Insert(topo.Curve{})
	cache.curves[h] = nh
	return nh
}

// TransformSurface returns the result of applying t to surface's bound
// geometry, registering it as a new Surface object.
func TransformSurface(g *Graph, cache *TransformCache, t xmath.Transform, h store.Handle[topo.Surface]) store.Handle[topo.Surface] {
	if nh, ok := cache.surfaces[h]; ok {
		return nh
	}
	old := g.Geometry.OfSurface(h)
	transformed := geom.NewSurfaceGeometry(old.U.Transform(t), t.ApplyVector(old.V))
	nh := g.Surfaces.Insert(topo.Surface{})
	g.Geometry.DefineSurface(nh, transformed)
	cache.surfaces[h] = nh
	return nh
}

// transformHalfEdge transforms a half-edge, reusing the cached transform of
// its curve and start vertex. The half-edge's own 2D path is unchanged: a
// rigid transform of a surface's global embedding doesn't change a curve's
// local coordinates on that surface.
func transformHalfEdge(g *Graph, cache *TransformCache, t xmath.Transform, newSurface store.Handle[topo.Surface], h store.Handle[topo.HalfEdge]) store.Handle[topo.HalfEdge] {
	if nh, ok := cache.halfEdges[h]; ok {
		return nh
	}
	he := h.Get()
	newCurve := transformCurve(g, cache, he.Curve)
	newStart := TransformVertex(g, cache, t, he.StartVertex)
	g.Geometry.DefineCurve(newCurve, newSurface, he.Path)
	nh := g.HalfEdges.Insert(topo.NewHalfEdge(he.Path, he.Boundary, newCurve, newStart))
	cache.halfEdges[h] = nh
	return nh
}

func transformCycle(g *Graph, cache *TransformCache, t xmath.Transform, newSurface store.Handle[topo.Surface], h store.Handle[topo.Cycle]) store.Handle[topo.Cycle] {
	if nh, ok := cache.cycles[h]; ok {
		return nh
	}
	cycle := h.Get()
	newHalfEdges := make([]store.Handle[topo.HalfEdge], len(cycle.HalfEdges))
	for i, he := range cycle.HalfEdges {
		newHalfEdges[i] = transformHalfEdge(g, cache, t, newSurface, he)
	}
	nh := g.Cycles.Insert(topo.NewCycle(newHalfEdges...))
	cache.cycles[h] = nh
	return nh
}

func transformRegion(g *Graph, cache *TransformCache, t xmath.Transform, newSurface store.Handle[topo.Surface], h store.Handle[topo.Region]) store.Handle[topo.Region] {
	if nh, ok := cache.regions[h]; ok {
		return nh
	}
	region := h.Get()
	newExterior := transformCycle(g, cache, t, newSurface, region.Exterior)
	newInteriors := make([]store.Handle[topo.Cycle], len(region.Interiors))
	for i, interior := range region.Interiors {
		newInteriors[i] = transformCycle(g, cache, t, newSurface, interior)
	}
	nh := g.Regions.Insert(topo.NewRegion(newExterior, newInteriors...))
	cache.regions[h] = nh
	return nh
}

// TransformFace applies t to face, producing a new Face on a new Surface.
// The new face keeps the same Internal flag as the one it was produced from.
func TransformFace(g *Graph, cache *TransformCache, t xmath.Transform, h store.Handle[topo.Face]) store.Handle[topo.Face] {
	if nh, ok := cache.faces[h]; ok {
		return nh
	}
	face := h.Get()
	newSurface := TransformSurface(g, cache, t, face.Surface)
	newRegion := transformRegion(g, cache, t, newSurface, face.Region)
	newFace := topo.NewFace(newSurface, newRegion)
	newFace.Internal = face.Internal
	nh := g.Faces.Insert(newFace)
	cache.faces[h] = nh
	return nh
}

// TransformShell applies t to every face of shell.
func TransformShell(g *Graph, cache *TransformCache, t xmath.Transform, h store.Handle[topo.Shell]) store.Handle[topo.Shell] {
	if nh, ok := cache.shells[h]; ok {
		return nh
	}
	shell := h.Get()
	newFaces := make([]store.Handle[topo.Face], len(shell.Faces))
	for i, f := range shell.Faces {
		newFaces[i] = TransformFace(g, cache, t, f)
	}
	nh := g.Shells.Insert(topo.NewShell(newFaces...))
	cache.shells[h] = nh
	return nh
}

// TransformSolid applies t to every shell of solid.
func TransformSolid(g *Graph, cache *TransformCache, t xmath.Transform, h store.Handle[topo.Solid]) store.Handle[topo.Solid] {
	solid := h.Get()
	newShells := make([]store.Handle[topo.Shell], len(solid.Shells))
	for i, s := range solid.Shells {
		newShells[i] = TransformShell(g, cache, t, s)
	}
	return g.Solids.Insert(topo.NewSolid(newShells...))
}

// Translate moves solid by offset, using a fresh TransformCache.
//
// Grounded on fj-core/src/operations/transform/mod.rs's
// TransformObject::translate convenience wrapper (original_source).
func Translate(g *Graph, h store.Handle[topo.Solid], offset xmath.Vector3) store.Handle[topo.Solid] {
	return TransformSolid(g, NewTransformCache(), xmath.Translation(offset), h)
}

// Rotate rotates solid by angle radians about axis through origin, using a
// fresh TransformCache.
func Rotate(g *Graph, h store.Handle[topo.Solid], origin xmath.Point3, axis xmath.Vector3, angle xmath.Scalar) store.Handle[topo.Solid] {
	return TransformSolid(g, NewTransformCache(), xmath.RotationAboutAxis(origin, axis, angle), h)
}
