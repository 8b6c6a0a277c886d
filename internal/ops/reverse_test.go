package ops

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ajsb85/brepkernel/internal/store"
	"github.com/ajsb85/brepkernel/internal/topo"
	"github.com/ajsb85/brepkernel/internal/xmath"
)

func TestReverseCycleFlipsWinding(t *testing.T) {
	g := NewGraph(0.001)
	points := []xmath.Point2{
		xmath.NewPoint2(0, 0), xmath.NewPoint2(1, 0),
		xmath.NewPoint2(1, 1), xmath.NewPoint2(0, 1),
	}
	surface := g.Geometry.XYPlane()
	cycleHandle := PolygonCycle(g, points, surface)
	assert.Equal(t, topo.CCW, cycleHandle.Get().Winding(store.Handle[topo.HalfEdge].Get))

	reversed := ReverseCycle(g, surface, cycleHandle)
	assert.Equal(t, topo.CW, reversed.Get().Winding(store.Handle[topo.HalfEdge].Get))
}

func TestReverseCycleTwiceRestoresWinding(t *testing.T) {
	g := NewGraph(0.001)
	points := []xmath.Point2{
		xmath.NewPoint2(0, 0), xmath.NewPoint2(1, 0),
		xmath.NewPoint2(1, 1), xmath.NewPoint2(0, 1),
	}
	surface := g.Geometry.XYPlane()
	cycleHandle := PolygonCycle(g, points, surface)

	once := ReverseCycle(g, surface, cycleHandle)
	twice := ReverseCycle(g, surface, once)
	assert.Equal(t, topo.CCW, twice.Get().Winding(store.Handle[topo.HalfEdge].Get))
	assert.Equal(t, len(cycleHandle.Get().HalfEdges), len(twice.Get().HalfEdges))
}

func TestReverseFaceInvertsSurfaceNormal(t *testing.T) {
	g := NewGraph(0.001)
	points := []xmath.Point2{
		xmath.NewPoint2(0, 0), xmath.NewPoint2(1, 0),
		xmath.NewPoint2(1, 1), xmath.NewPoint2(0, 1),
	}
	surface := g.Geometry.XYPlane()
	cycleHandle := PolygonCycle(g, points, surface)
	region := g.Regions.Insert(topo.NewRegion(cycleHandle))
	face := g.Faces.Insert(topo.NewFace(surface, region))

	before := g.Geometry.OfSurface(surface).Normal(xmath.Zero)

	reversedFace := ReverseFace(g, face)
	reversedSurface := reversedFace.Get().Surface
	after := g.Geometry.OfSurface(reversedSurface).Normal(xmath.Zero)

	assert.InDelta(t, float64(-before.X), float64(after.X), 1e-9)
	assert.InDelta(t, float64(-before.Y), float64(after.Y), 1e-9)
	assert.InDelta(t, float64(-before.Z), float64(after.Z), 1e-9)
}
