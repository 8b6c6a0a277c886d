package topo

import (
	"testing"

	"github.com/ajsb85/brepkernel/internal/geom"
	"github.com/ajsb85/brepkernel/internal/store"
	"github.com/ajsb85/brepkernel/internal/xmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildSquareCycle builds a unit-square cycle (CCW, or CW when ccw is false) of 4 straight half-edges
// in the xy-plane's local coordinates, returning the stores used to resolve
// it plus the cycle handle.
func buildSquareCycle(t *testing.T, ccw bool) (*store.Store[HalfEdge], *store.Store[Cycle], store.Handle[Cycle]) {
	t.Helper()
	vertices := store.New[Vertex](0)
	curves := store.New[Curve](0)
	halfEdges := store.New[HalfEdge](0)
	cycles := store.New[Cycle](0)

	corners := []xmath.Point2{
		xmath.NewPoint2(0, 0),
		xmath.NewPoint2(1, 0),
		xmath.NewPoint2(1, 1),
		xmath.NewPoint2(0, 1),
	}
	if !ccw {
		for i, j := 0, len(corners)-1; i < j; i, j = i+1, j-1 {
			corners[i], corners[j] = corners[j], corners[i]
		}
	}

	var handles []store.Handle[HalfEdge]
	for i := range corners {
		a := corners[i]
		b := corners[(i+1)%len(corners)]
		v := vertices.Insert(Vertex{})
		c := curves.Insert(Curve{})
		path := geom.LineFromPoints2(a, b)
		he := halfEdges.Insert(NewHalfEdge(path, NewCurveBoundary0to1(), c, v))
		handles = append(handles, he)
	}

	cycleHandle := cycles.Insert(NewCycle(handles...))
	return halfEdges, cycles, cycleHandle
}

// NewCurveBoundary0to1 is a tiny test helper building the [0, 1] boundary
// every straight half-edge in this test suite uses.
func NewCurveBoundary0to1() Boundary {
	return geom.NewCurveBoundary(xmath.Point1{T: 0}, xmath.Point1{T: 1})
}

func TestCycleWindingCCW(t *testing.T) {
	_, _, h := buildSquareCycle(t, true)
	resolve := func(he store.Handle[HalfEdge]) HalfEdge { return he.Get() }
	got := h.Get().Winding(resolve)
	assert.Equal(t, CCW, got)
}

func TestCycleWindingCW(t *testing.T) {
	_, _, h := buildSquareCycle(t, false)
	resolve := func(he store.Handle[HalfEdge]) HalfEdge { return he.Get() }
	got := h.Get().Winding(resolve)
	assert.Equal(t, CW, got)
}

func TestHalfEdgeReverseSwapsBoundary(t *testing.T) {
	c := store.New[Curve](0).Insert(Curve{})
	v := store.New[Vertex](0).Insert(Vertex{})
	path := geom.LineFromPoints2(xmath.NewPoint2(0, 0), xmath.NewPoint2(1, 0))
	he := NewHalfEdge(path, NewCurveBoundary0to1(), c, v)
	rev := he.Reverse()
	assert.Equal(t, he.Boundary.Inner[0], rev.Boundary.Inner[1])
}

func TestWalkFaceCollectsAllReachableObjects(t *testing.T) {
	halfEdges, cycles, cycleHandle := buildSquareCycle(t, true)
	regions := store.New[Region](0)
	faces := store.New[Face](0)
	surfaces := store.New[Surface](0)

	surface := surfaces.Insert(Surface{})
	region := regions.Insert(NewRegion(cycleHandle))
	face := faces.Insert(NewFace(surface, region))

	resolvers := Resolvers{
		HalfEdge: func(h store.Handle[HalfEdge]) HalfEdge { return h.Get() },
		Cycle:    func(h store.Handle[Cycle]) Cycle { return h.Get() },
		Region:   func(h store.Handle[Region]) Region { return h.Get() },
		Face:     func(h store.Handle[Face]) Face { return h.Get() },
		Shell:    func(h store.Handle[Shell]) Shell { return h.Get() },
	}

	walked := WalkFace(resolvers, face)
	require.Len(t, walked.Faces, 1)
	require.Len(t, walked.Regions, 1)
	require.Len(t, walked.Cycles, 1)
	assert.Len(t, walked.HalfEdges, 4)
	assert.Equal(t, 4, halfEdges.Len())
	assert.Equal(t, 1, cycles.Len())
}
