package ops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajsb85/brepkernel/internal/store"
	"github.com/ajsb85/brepkernel/internal/topo"
	"github.com/ajsb85/brepkernel/internal/xmath"
)

func TestBuildLineSegmentHasUnitBoundary(t *testing.T) {
	g := NewGraph(0.001)
	heHandle := BuildLineSegment(g, xmath.NewPoint2(0, 0), xmath.NewPoint2(1, 0), g.Geometry.XYPlane())
	he := heHandle.Get()

	assert.Equal(t, xmath.Point1{T: 0}, he.Boundary.Inner[0])
	assert.Equal(t, xmath.Point1{T: 1}, he.Boundary.Inner[1])
	assert.Equal(t, xmath.NewPoint2(0, 0), he.StartPosition())
	assert.Equal(t, xmath.NewPoint2(1, 0), he.EndPosition())
}

func TestBuildCircleCoversFullTurn(t *testing.T) {
	g := NewGraph(0.001)
	heHandle := BuildCircle(g, xmath.NewPoint2(0, 0), 2, g.Geometry.XYPlane())
	he := heHandle.Get()

	assert.InDelta(t, 0, float64(he.Boundary.Inner[0].T), 1e-9)
	assert.InDelta(t, float64(2*xmath.Pi), float64(he.Boundary.Inner[1].T), 1e-9)
}

func TestBuildArcRejectsOutOfRangeAngle(t *testing.T) {
	g := NewGraph(0.001)
	assert.Panics(t, func() {
		BuildArc(g, xmath.NewPoint2(0, 0), xmath.NewPoint2(1, 0), 3*xmath.Pi, g.Geometry.XYPlane())
	})
}

func TestPolygonCycleConnectsSharedVertices(t *testing.T) {
	g := NewGraph(0.001)
	points := []xmath.Point2{
		xmath.NewPoint2(0, 0), xmath.NewPoint2(1, 0),
		xmath.NewPoint2(1, 1), xmath.NewPoint2(0, 1),
	}
	cycleHandle := PolygonCycle(g, points, g.Geometry.XYPlane())
	cycle := cycleHandle.Get()
	require.Len(t, cycle.HalfEdges, 4)

	for i, heHandle := range cycle.HalfEdges {
		he := heHandle.Get()
		next := cycle.HalfEdges[(i+1)%4].Get()
		assert.True(t, he.EndPosition().Distance(next.StartPosition()) < 1e-9)
	}
}

func TestPolygonCycleWindingIsCCWForCCWPoints(t *testing.T) {
	g := NewGraph(0.001)
	points := []xmath.Point2{
		xmath.NewPoint2(0, 0), xmath.NewPoint2(1, 0),
		xmath.NewPoint2(1, 1), xmath.NewPoint2(0, 1),
	}
	cycleHandle := PolygonCycle(g, points, g.Geometry.XYPlane())
	winding := cycleHandle.Get().Winding(store.Handle[topo.HalfEdge].Get)
	assert.Equal(t, topo.CCW, winding)
}

func TestTetrahedronHasFourFaces(t *testing.T) {
	g := NewGraph(0.001)
	points := [4]xmath.Point3{
		xmath.NewPoint3(0, 0, 0),
		xmath.NewPoint3(1, 0, 0),
		xmath.NewPoint3(0, 1, 0),
		xmath.NewPoint3(0, 0, 1),
	}
	shellHandle := Tetrahedron(g, points)
	shell := shellHandle.Get()
	assert.Len(t, shell.Faces, 4)

	for _, faceHandle := range shell.Faces {
		face := faceHandle.Get()
		region := face.Region.Get()
		assert.Len(t, region.Exterior.Get().HalfEdges, 3)
	}
}
