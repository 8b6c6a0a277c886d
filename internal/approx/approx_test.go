package approx

import (
	"testing"

	"github.com/ajsb85/brepkernel/internal/geom"
	"github.com/ajsb85/brepkernel/internal/store"
	"github.com/ajsb85/brepkernel/internal/topo"
	"github.com/ajsb85/brepkernel/internal/xmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApproxLineHasOnlyBoundaryPoints(t *testing.T) {
	cache := NewCache()
	curves := store.New[topo.Curve](0)
	surfaces := store.New[topo.Surface](0)
	curve := curves.Insert(topo.Curve{})
	surface := surfaces.Insert(topo.Surface{})

	path := geom.LineFromPoints2(xmath.NewPoint2(0, 0), xmath.NewPoint2(4, 0))
	boundary := geom.NewCurveBoundary(xmath.Point1{T: 0}, xmath.Point1{T: 1})
	surfaceGeom := geom.NewSurfaceGeometry(geom.XAxis3(), xmath.NewVector3(0, 1, 0))

	points := cache.ApproxCurveOnSurface(curve, surface, path, surfaceGeom, boundary, 0.001)
	require.Len(t, points, 2)
	assert.InDelta(t, 0.0, float64(points[0].Local2.X), 1e-9)
	assert.InDelta(t, 4.0, float64(points[1].Local2.X), 1e-9)
}

func TestApproxCircleCoversBoundaryInclusively(t *testing.T) {
	cache := NewCache()
	curves := store.New[topo.Curve](0)
	surfaces := store.New[topo.Surface](0)
	curve := curves.Insert(topo.Curve{})
	surface := surfaces.Insert(topo.Surface{})

	path := geom.CirclePath2(xmath.NewCircle2(xmath.Point2{}, xmath.NewVector2(1, 0), xmath.NewVector2(0, 1)))
	boundary := geom.NewCurveBoundary(xmath.Point1{T: 0}, xmath.Point1{T: 2 * float64Pi()})
	surfaceGeom := geom.NewSurfaceGeometry(geom.XAxis3(), xmath.NewVector3(0, 1, 0))

	points := cache.ApproxCurveOnSurface(curve, surface, path, surfaceGeom, boundary, 0.1)
	n := xmath.CircleSegmentCount(1, 0.1)
	assert.Len(t, points, n+1)

	first, last := points[0], points[len(points)-1]
	assert.InDelta(t, float64(first.Local2.X), float64(last.Local2.X), 1e-9)
	assert.InDelta(t, float64(first.Local2.Y), float64(last.Local2.Y), 1e-9)
}

func float64Pi() xmath.Scalar { return xmath.Pi }

func TestApproxCacheSharesSiblingApproximations(t *testing.T) {
	cache := NewCache()
	curves := store.New[topo.Curve](0)
	surfaces := store.New[topo.Surface](0)
	curve := curves.Insert(topo.Curve{})
	surface := surfaces.Insert(topo.Surface{})

	path := geom.LineFromPoints2(xmath.NewPoint2(0, 0), xmath.NewPoint2(4, 0))
	surfaceGeom := geom.NewSurfaceGeometry(geom.XAxis3(), xmath.NewVector3(0, 1, 0))

	forward := geom.NewCurveBoundary(xmath.Point1{T: 0}, xmath.Point1{T: 1})
	backward := forward.Reverse()

	pf := cache.ApproxCurveOnSurface(curve, surface, path, surfaceGeom, forward, 0.001)
	pb := cache.ApproxCurveOnSurface(curve, surface, path.Reverse(), surfaceGeom, backward, 0.001)

	require.Len(t, pf, 2)
	require.Len(t, pb, 2)
	assert.Equal(t, pf[0].Local, pb[len(pb)-1].Local)
	assert.Equal(t, pf[1].Local, pb[0].Local)
}

func TestApproxHalfEdgeDropsEndPoint(t *testing.T) {
	cache := NewCache()
	curves := store.New[topo.Curve](0)
	surfaces := store.New[topo.Surface](0)
	vertices := store.New[topo.Vertex](0)
	curve := curves.Insert(topo.Curve{})
	surface := surfaces.Insert(topo.Surface{})
	v := vertices.Insert(topo.Vertex{})

	path := geom.LineFromPoints2(xmath.NewPoint2(0, 0), xmath.NewPoint2(1, 0))
	boundary := geom.NewCurveBoundary(xmath.Point1{T: 0}, xmath.Point1{T: 1})
	he := topo.NewHalfEdge(path, boundary, curve, v)
	surfaceGeom := geom.NewSurfaceGeometry(geom.XAxis3(), xmath.NewVector3(0, 1, 0))

	points := cache.ApproxHalfEdge(curve, surface, he, surfaceGeom, 0.001)
	assert.Len(t, points, 1)
}

func TestApproxCycleConcatenatesWithoutDuplicateVertices(t *testing.T) {
	cache := NewCache()
	curves := store.New[topo.Curve](0)
	surfaces := store.New[topo.Surface](0)
	vertices := store.New[topo.Vertex](0)
	halfEdges := store.New[topo.HalfEdge](0)
	surface := surfaces.Insert(topo.Surface{})
	surfaceGeom := geom.NewSurfaceGeometry(geom.XAxis3(), xmath.NewVector3(0, 1, 0))

	corners := []xmath.Point2{
		xmath.NewPoint2(0, 0), xmath.NewPoint2(1, 0),
		xmath.NewPoint2(1, 1), xmath.NewPoint2(0, 1),
	}
	curveOf := map[store.Handle[topo.HalfEdge]]store.Handle[topo.Curve]{}
	var handles []store.Handle[topo.HalfEdge]
	for i := range corners {
		a, b := corners[i], corners[(i+1)%len(corners)]
		v := vertices.Insert(topo.Vertex{})
		c := curves.Insert(topo.Curve{})
		path := geom.LineFromPoints2(a, b)
		boundary := geom.NewCurveBoundary(xmath.Point1{T: 0}, xmath.Point1{T: 1})
		h := halfEdges.Insert(topo.NewHalfEdge(path, boundary, c, v))
		curveOf[h] = c
		handles = append(handles, h)
	}
	cycle := topo.NewCycle(handles...)

	resolve := func(h store.Handle[topo.HalfEdge]) (topo.HalfEdge, store.Handle[topo.Curve]) {
		return h.Get(), curveOf[h]
	}

	points := cache.ApproxCycle(cycle, surface, surfaceGeom, resolve, 0.001)
	assert.Len(t, points, 4)
}
