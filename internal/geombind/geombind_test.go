package geombind

import (
	"testing"

	"github.com/ajsb85/brepkernel/internal/geom"
	"github.com/ajsb85/brepkernel/internal/store"
	"github.com/ajsb85/brepkernel/internal/topo"
	"github.com/ajsb85/brepkernel/internal/xmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistersThreeBuiltinPlanes(t *testing.T) {
	surfaces := store.New[topo.Surface](0)
	g := New(surfaces)

	assert.False(t, g.XYPlane().Equal(g.XZPlane()))
	assert.False(t, g.XYPlane().Equal(g.YZPlane()))
	assert.False(t, g.Space2D().Equal(g.XYPlane()))
	assert.Equal(t, 4, surfaces.Len())
}

func TestOfSurfacePanicsWithoutRegistration(t *testing.T) {
	surfaces := store.New[topo.Surface](0)
	g := New(surfaces)
	unregistered := surfaces.Insert(topo.Surface{})
	assert.Panics(t, func() { g.OfSurface(unregistered) })
}

func TestDefineAndLookupCurveOnSurface(t *testing.T) {
	surfaces := store.New[topo.Surface](0)
	curves := store.New[topo.Curve](0)
	g := New(surfaces)

	c := curves.Insert(topo.Curve{})
	path := geom.LineFromPoints2(xmath.NewPoint2(0, 0), xmath.NewPoint2(1, 1))
	g.DefineCurve(c, g.XYPlane(), path)

	got, ok := g.OfCurve(c, g.XYPlane())
	require.True(t, ok)
	assert.Equal(t, path, got)

	_, ok = g.OfCurve(c, g.XZPlane())
	assert.False(t, ok, "curve should have no path registered on a surface it was never defined on")
}

func TestXYPlaneGeometryMatchesZNormal(t *testing.T) {
	surfaces := store.New[topo.Surface](0)
	g := New(surfaces)
	geometry := g.OfSurface(g.XYPlane())
	p := geometry.PointFromSurfaceCoords(xmath.NewPoint2(2, 3))
	assert.InDelta(t, 2.0, float64(p.X), 1e-9)
	assert.InDelta(t, 3.0, float64(p.Y), 1e-9)
	assert.InDelta(t, 0.0, float64(p.Z), 1e-9)
}
