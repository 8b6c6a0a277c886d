// Package geombind maps topological identity (curve and surface handles
// from internal/topo) to the geometric data in internal/geom that actually
// describes their shape. Keeping this mapping external to the topology
// graph lets one curve identity carry different local representations on
// different surfaces, which matters for sibling detection during
// validation.
//
// Grounded on fj-core/src/geometry/geometry.rs's Geometry struct and the
// Surfaces builtin-plane bootstrapping in
// fj-core/src/topology/stores.rs (original_source).
package geombind

import (
	"github.com/ajsb85/brepkernel/internal/geom"
	"github.com/ajsb85/brepkernel/internal/store"
	"github.com/ajsb85/brepkernel/internal/topo"
	"github.com/ajsb85/brepkernel/internal/xmath"
)

type curveOnSurfaceKey struct {
	curve   store.Handle[topo.Curve]
	surface store.Handle[topo.Surface]
}

// Geometry is the kernel's geometry binding: it relates curve/surface
// handles to their geom-layer representation.
type Geometry struct {
	curveOnSurface map[curveOnSurfaceKey]geom.Path2
	surfaces       map[store.Handle[topo.Surface]]geom.SurfaceGeometry

	space2D store.Handle[topo.Surface]
	xyPlane store.Handle[topo.Surface]
	xzPlane store.Handle[topo.Surface]
	yzPlane store.Handle[topo.Surface]
}

// New constructs a Geometry binding, registering the three builtin planes
// (xy, xz, yz) plus the special "2D space" surface (used for sketches that
// aren't embedded in any 3D surface) into surfaceStore. Every new Context
// calls this exactly once at construction.
func New(surfaceStore *store.Store[topo.Surface]) *Geometry {
	g := &Geometry{
		curveOnSurface: map[curveOnSurfaceKey]geom.Path2{},
		surfaces:       map[store.Handle[topo.Surface]]geom.SurfaceGeometry{},
	}

	g.space2D = surfaceStore.Insert(topo.Surface{})

	g.xyPlane = surfaceStore.Insert(topo.Surface{})
	g.DefineSurface(g.xyPlane, geom.NewSurfaceGeometry(geom.XAxis3(), xmath.NewVector3(0, 1, 0)))

	g.xzPlane = surfaceStore.Insert(topo.Surface{})
	g.DefineSurface(g.xzPlane, geom.NewSurfaceGeometry(geom.XAxis3(), xmath.NewVector3(0, 0, 1)))

	g.yzPlane = surfaceStore.Insert(topo.Surface{})
	g.DefineSurface(g.yzPlane, geom.NewSurfaceGeometry(geom.YAxis3(), xmath.NewVector3(0, 0, 1)))

	return g
}

func (g *Geometry) Space2D() store.Handle[topo.Surface] { return g.space2D }
func (g *Geometry) XYPlane() store.Handle[topo.Surface] { return g.xyPlane }
func (g *Geometry) XZPlane() store.Handle[topo.Surface] { return g.xzPlane }
func (g *Geometry) YZPlane() store.Handle[topo.Surface] { return g.yzPlane }

// DefineCurve registers curve's local path on a particular surface. A curve
// may have a different local path on each surface it is used on; this is
// what lets two half-edges on different faces (sharing a curve, e.g. along
// a fold line) each carry their own 2D representation.
func (g *Geometry) DefineCurve(curve store.Handle[topo.Curve], surface store.Handle[topo.Surface], path geom.Path2) {
	g.curveOnSurface[curveOnSurfaceKey{curve: curve, surface: surface}] = path
}

// OfCurve looks up curve's local path on surface. ok is false if no path
// has been registered for that (curve, surface) pair.
func (g *Geometry) OfCurve(curve store.Handle[topo.Curve], surface store.Handle[topo.Surface]) (geom.Path2, bool) {
	path, ok := g.curveOnSurface[curveOnSurfaceKey{curve: curve, surface: surface}]
	return path, ok
}

// DefineSurface registers a surface's global 3D geometry.
func (g *Geometry) DefineSurface(surface store.Handle[topo.Surface], geometry geom.SurfaceGeometry) {
	g.surfaces[surface] = geometry
}

// OfSurface looks up a surface's global geometry. Panics if surface has no
// registered geometry: every Surface object in a valid graph must have one,
// the same way an uninitialized store slot is a programming error rather
// than a recoverable condition.
func (g *Geometry) OfSurface(surface store.Handle[topo.Surface]) geom.SurfaceGeometry {
	geometry, ok := g.surfaces[surface]
	if !ok {
		panic("geombind: surface has no registered geometry")
	}
	return geometry
}
