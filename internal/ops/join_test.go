package ops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajsb85/brepkernel/internal/xmath"
)

func TestJoinCyclesSharesCurveAndStartVertex(t *testing.T) {
	g := NewGraph(0.001)
	surface := g.Geometry.XYPlane()

	squareA := []xmath.Point2{
		xmath.NewPoint2(0, 0), xmath.NewPoint2(1, 0),
		xmath.NewPoint2(1, 1), xmath.NewPoint2(0, 1),
	}
	squareB := []xmath.Point2{
		xmath.NewPoint2(5, 5), xmath.NewPoint2(6, 5),
		xmath.NewPoint2(6, 6), xmath.NewPoint2(5, 6),
	}
	cycleA := PolygonCycle(g, squareA, surface)
	cycleB := PolygonCycle(g, squareB, surface)

	joined := JoinCycles(g, cycleA, []int{0, 2}, cycleB, []int{1, 3})
	jc := joined.Get()
	require.Len(t, jc.HalfEdges, 4)

	heAt0 := jc.HalfEdges[0].Get()
	heBat1 := cycleB.Get().HalfEdges[1].Get()
	assert.Equal(t, heBat1.Curve, heAt0.Curve)
	assert.Equal(t, heBat1.StartVertex, heAt0.StartVertex)

	heAt2 := jc.HalfEdges[2].Get()
	heBat3 := cycleB.Get().HalfEdges[3].Get()
	assert.Equal(t, heBat3.Curve, heAt2.Curve)
	assert.Equal(t, heBat3.StartVertex, heAt2.StartVertex)

	// Untouched indices keep cycleA's own half-edges.
	assert.Equal(t, cycleA.Get().HalfEdges[1], jc.HalfEdges[1])
	assert.Equal(t, cycleA.Get().HalfEdges[3], jc.HalfEdges[3])
}

func TestJoinCyclesRejectsMismatchedRangeLengths(t *testing.T) {
	g := NewGraph(0.001)
	surface := g.Geometry.XYPlane()
	square := []xmath.Point2{
		xmath.NewPoint2(0, 0), xmath.NewPoint2(1, 0),
		xmath.NewPoint2(1, 1), xmath.NewPoint2(0, 1),
	}
	cycleA := PolygonCycle(g, square, surface)
	cycleB := PolygonCycle(g, square, surface)

	assert.Panics(t, func() {
		JoinCycles(g, cycleA, []int{0, 1}, cycleB, []int{0})
	})
}
