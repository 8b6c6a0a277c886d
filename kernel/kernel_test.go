package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajsb85/brepkernel/internal/approx"
	"github.com/ajsb85/brepkernel/internal/ops"
	"github.com/ajsb85/brepkernel/internal/topo"
	"github.com/ajsb85/brepkernel/internal/triangulate"
	"github.com/ajsb85/brepkernel/internal/validate"
	"github.com/ajsb85/brepkernel/internal/xmath"
	"github.com/ajsb85/brepkernel/kernel"
)

// Scenario 1 (spec.md §8): unit cube by sweep.
func TestUnitCubeBySweepProducesTwelveTriangles(t *testing.T) {
	ctx := kernel.NewContext(kernel.DefaultConfig())
	surface := ctx.XYPlane()

	cycle := ctx.CyclePolygon([]xmath.Point2{
		xmath.NewPoint2(0, 0), xmath.NewPoint2(1, 0),
		xmath.NewPoint2(1, 1), xmath.NewPoint2(0, 1),
	}, surface)
	region := ctx.RegionNew(cycle)
	sketchHandle := ctx.SketchFrom(surface, region)

	solidHandle := ctx.SweepSketch(sketchHandle.Get(), xmath.NewVector3(0, 0, 1))
	solid := solidHandle.Get()
	require.Len(t, solid.Shells, 1)
	shell := solid.Shells[0].Get()
	assert.Len(t, shell.Faces, 6)

	mesh := ctx.Approximate(solidHandle, 0.001)
	assert.Len(t, mesh.Triangles, 12)

	assert.Empty(t, ctx.Errors())
}

// Scenario 2 (spec.md §8): tetrahedron shell.
func TestTetrahedronShellHasSixSiblingPairsAndThreeErrorsWithAFaceMissing(t *testing.T) {
	ctx := kernel.NewContext(kernel.DefaultConfig())
	shellHandle := ctx.ShellTetrahedron([4]xmath.Point3{
		xmath.NewPoint3(0, 0, 0),
		xmath.NewPoint3(0, 1, 0),
		xmath.NewPoint3(1, 0, 0),
		xmath.NewPoint3(0, 0, 1),
	})
	assert.Empty(t, ctx.Errors())

	shell := shellHandle.Get()
	require.Len(t, shell.Faces, 4)

	open := topo.Shell{Faces: shell.Faces[:3]}
	vg := validate.NewGraph(ctx.Graph)
	errs := vg.CheckHalfEdgeHasSibling(open)
	assert.Len(t, errs, 3)
}

// Scenario 3 (spec.md §8): circle approximation determinism.
func TestCircleApproximationDeterminism(t *testing.T) {
	n := xmath.CircleSegmentCount(1.0, 0.001)
	assert.Equal(t, 71, n)

	ctx := kernel.NewContext(kernel.DefaultConfig())
	surface := ctx.XYPlane()
	heHandle := ctx.BuildHalfEdgeCircle(xmath.NewPoint2(0, 0), 1.0, surface)
	he := heHandle.Get()

	cache := approx.NewCache()
	surfaceGeom := ctx.Graph.Geometry.OfSurface(surface)
	points := cache.ApproxHalfEdge(he.Curve, surface, he, surfaceGeom, 0.001)

	assert.Len(t, points, 71)
	assert.True(t, distinctGlobalPoints(points))
}

func distinctGlobalPoints(points []approx.Point) bool {
	const eps = 1e-9
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			if points[i].Global.Distance(points[j].Global) < eps {
				return false
			}
		}
	}
	return true
}

// Scenario 4 (spec.md §8): difference 2D.
func TestDifference2DProducesNonConvexMeshBetweenTheTwoSquares(t *testing.T) {
	ctx := kernel.NewContext(kernel.DefaultConfig())
	surface := ctx.XYPlane()

	outer := ctx.CyclePolygon([]xmath.Point2{
		xmath.NewPoint2(-1, -1), xmath.NewPoint2(1, -1),
		xmath.NewPoint2(1, 1), xmath.NewPoint2(-1, 1),
	}, surface)
	// Reversed (CW) so its winding opposes the CCW exterior, as required
	// of a hole.
	inner := ctx.CyclePolygon([]xmath.Point2{
		xmath.NewPoint2(-0.5, -0.5), xmath.NewPoint2(-0.5, 0.5),
		xmath.NewPoint2(0.5, 0.5), xmath.NewPoint2(0.5, -0.5),
	}, surface)

	region := ctx.RegionNew(outer, inner)
	assert.Empty(t, ctx.Errors())

	outerRing := []xmath.Point2{
		xmath.NewPoint2(-1, -1), xmath.NewPoint2(1, -1),
		xmath.NewPoint2(1, 1), xmath.NewPoint2(-1, 1),
	}
	innerRing := []xmath.Point2{
		xmath.NewPoint2(-0.5, -0.5), xmath.NewPoint2(-0.5, 0.5),
		xmath.NewPoint2(0.5, 0.5), xmath.NewPoint2(0.5, -0.5),
	}
	result := triangulate.Triangulate(outerRing, [][]xmath.Point2{innerRing}, nil, 0.001)
	require.NotEmpty(t, result.Triangles)

	for _, tri := range result.Triangles {
		a, b, c := result.Vertices[tri.A], result.Vertices[tri.B], result.Vertices[tri.C]
		centroid := xmath.NewPoint2((a.X+b.X+c.X)/3, (a.Y+b.Y+c.Y)/3)

		assert.True(t, triangulate.PointInPolygon(centroid, outerRing))
		assert.False(t, triangulate.PointInPolygon(centroid, innerRing))
	}

	_ = region
}

// Scenario 5 (spec.md §8): cycle disconnection detected.
func TestCycleDisconnectionDetected(t *testing.T) {
	ctx := kernel.NewContext(kernel.DefaultConfig())
	surface := ctx.XYPlane()

	first := ops.BuildLineSegment(ctx.Graph, xmath.NewPoint2(0, 0), xmath.NewPoint2(1, 0), surface)
	// Should instead start at (1, 0); a duplicate of the first segment
	// leaves a gap of exactly 1.0 between the two half-edges.
	second := ops.BuildLineSegment(ctx.Graph, xmath.NewPoint2(0, 0), xmath.NewPoint2(1, 0), surface)

	cycle := ctx.Graph.Cycles.Insert(topo.NewCycle(first, second))
	errs := validate.CheckAdjacentHalfEdgesConnected(ctx.Graph, kernel.DefaultConfig(), cycle)

	require.Len(t, errs, 1)
	var gap validate.AdjacentHalfEdgesNotConnected
	require.ErrorAs(t, errs[0], &gap)
	assert.InDelta(t, 1.0, float64(gap.Distance), 1e-9)
}

// Scenario 6 (spec.md §8): interior winding rejection.
func TestInteriorWindingRejection(t *testing.T) {
	ctx := kernel.NewContext(kernel.DefaultConfig())
	surface := ctx.XYPlane()

	exterior := ops.PolygonCycle(ctx.Graph, []xmath.Point2{
		xmath.NewPoint2(0, 0), xmath.NewPoint2(4, 0),
		xmath.NewPoint2(4, 4), xmath.NewPoint2(0, 4),
	}, surface)
	sameWindingInterior := ops.PolygonCycle(ctx.Graph, []xmath.Point2{
		xmath.NewPoint2(1, 1), xmath.NewPoint2(2, 1),
		xmath.NewPoint2(2, 2), xmath.NewPoint2(1, 2),
	}, surface)

	region := ctx.Graph.Regions.Insert(topo.NewRegion(exterior, sameWindingInterior))
	errs := validate.CheckInteriorCycleWinding(ctx.Graph, region)
	require.Len(t, errs, 1)

	var invalid validate.InteriorCycleHasInvalidWinding
	assert.ErrorAs(t, errs[0], &invalid)
}
