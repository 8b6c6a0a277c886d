package ops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajsb85/brepkernel/internal/xmath"
)

func TestSplitHalfEdgeInCycleProducesTwoSegments(t *testing.T) {
	g := NewGraph(0.001)
	surface := g.Geometry.XYPlane()
	square := []xmath.Point2{
		xmath.NewPoint2(0, 0), xmath.NewPoint2(1, 0),
		xmath.NewPoint2(1, 1), xmath.NewPoint2(0, 1),
	}
	cycleHandle := PolygonCycle(g, square, surface)

	newCycle, split := SplitHalfEdgeInCycle(g, cycleHandle, 0, xmath.Point1{T: 0.5}, surface)
	require.Len(t, newCycle.Get().HalfEdges, 5)

	first := split[0].Get()
	second := split[1].Get()
	assert.Equal(t, first.Curve, second.Curve)
	assert.NotEqual(t, first.StartVertex, second.StartVertex)
	assert.Equal(t, xmath.Point1{T: 0}, first.Boundary.Inner[0])
	assert.Equal(t, xmath.Point1{T: 0.5}, first.Boundary.Inner[1])
	assert.Equal(t, xmath.Point1{T: 0.5}, second.Boundary.Inner[0])
	assert.Equal(t, xmath.Point1{T: 1}, second.Boundary.Inner[1])
}

func TestSplitHalfEdgeInCycleRejectsOutOfBoundsParameter(t *testing.T) {
	g := NewGraph(0.001)
	surface := g.Geometry.XYPlane()
	square := []xmath.Point2{
		xmath.NewPoint2(0, 0), xmath.NewPoint2(1, 0),
		xmath.NewPoint2(1, 1), xmath.NewPoint2(0, 1),
	}
	cycleHandle := PolygonCycle(g, square, surface)

	assert.Panics(t, func() {
		SplitHalfEdgeInCycle(g, cycleHandle, 0, xmath.Point1{T: 2}, surface)
	})
}

func TestSplitEdgeSharesMidVertexBetweenSiblings(t *testing.T) {
	g := NewGraph(0.001)
	surface := g.Geometry.XYPlane()
	squareA := []xmath.Point2{
		xmath.NewPoint2(0, 0), xmath.NewPoint2(1, 0),
		xmath.NewPoint2(1, 1), xmath.NewPoint2(0, 1),
	}
	squareB := []xmath.Point2{
		xmath.NewPoint2(1, 0), xmath.NewPoint2(0, 0),
		xmath.NewPoint2(0, -1), xmath.NewPoint2(1, -1),
	}
	cycleA := PolygonCycle(g, squareA, surface)
	cycleB := PolygonCycle(g, squareB, surface)

	_, splitA, _, splitB := SplitEdge(
		g, cycleA, 0, xmath.Point1{T: 0.5}, surface,
		cycleB, 0, xmath.Point1{T: 0.5}, surface,
	)

	assert.Equal(t, splitA[1].Get().StartVertex, splitB[1].Get().StartVertex)
}
