package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajsb85/brepkernel/internal/geom"
	"github.com/ajsb85/brepkernel/internal/ops"
	"github.com/ajsb85/brepkernel/internal/store"
	"github.com/ajsb85/brepkernel/internal/topo"
	"github.com/ajsb85/brepkernel/internal/xmath"
)

func tetrahedronShell(g *ops.Graph) topo.Shell {
	handle := ops.Tetrahedron(g, [4]xmath.Point3{
		xmath.NewPoint3(0, 0, 0),
		xmath.NewPoint3(1, 0, 0),
		xmath.NewPoint3(0, 1, 0),
		xmath.NewPoint3(0, 0, 1),
	})
	return handle.Get()
}

func TestCheckHalfEdgeHasSiblingAcceptsTetrahedron(t *testing.T) {
	g := ops.NewGraph(0.001)
	shell := tetrahedronShell(g)

	vg := NewGraph(g)
	assert.Empty(t, vg.CheckHalfEdgeHasSibling(shell))
}

func TestCheckHalfEdgeHasSiblingFlagsMissingFace(t *testing.T) {
	g := ops.NewGraph(0.001)
	shell := tetrahedronShell(g)
	require.Len(t, shell.Faces, 4)

	// Dropping one face leaves the three edges it shared with the other
	// faces without their sibling.
	open := topo.Shell{Faces: shell.Faces[:3]}

	vg := NewGraph(g)
	errs := vg.CheckHalfEdgeHasSibling(open)
	assert.Len(t, errs, 3)
	for _, err := range errs {
		var noSibling HalfEdgeHasNoSibling
		assert.ErrorAs(t, err, &noSibling)
	}
}

func TestCheckHalfEdgeHasSiblingRejectsSameFaceMatch(t *testing.T) {
	g := ops.NewGraph(0.001)
	surface := g.Geometry.XYPlane()

	// A single two-half-edge cycle sharing one curve, with reversed
	// endpoints: a (curve, start, end) match, but both half-edges live in
	// the same cycle/face. Neither is a valid sibling of the other.
	curve := g.Curves.Insert(topo.Curve{})
	path := geom.LineFromPoints2(xmath.NewPoint2(0, 0), xmath.NewPoint2(1, 0))
	g.Geometry.DefineCurve(curve, surface, path)
	vA := g.Vertices.Insert(topo.NewVertex(xmath.NewPoint3(0, 0, 0)))
	vB := g.Vertices.Insert(topo.NewVertex(xmath.NewPoint3(1, 0, 0)))
	boundary := geom.NewCurveBoundary(xmath.Point1{T: 0}, xmath.Point1{T: 1})

	he1 := g.HalfEdges.Insert(topo.NewHalfEdge(path, boundary, curve, vA))
	he2 := g.HalfEdges.Insert(topo.NewHalfEdge(path.Reverse(), boundary.Reverse(), curve, vB))
	cycle := g.Cycles.Insert(topo.NewCycle(he1, he2))
	face := ops.NewFace(g, surface, ops.NewRegion(g, cycle))

	shell := topo.Shell{Faces: []store.Handle[topo.Face]{face}}

	vg := NewGraph(g)
	errs := vg.CheckHalfEdgeHasSibling(shell)
	assert.Len(t, errs, 2)
	for _, err := range errs {
		var noSibling HalfEdgeHasNoSibling
		assert.ErrorAs(t, err, &noSibling)
	}
}

func TestCheckCoincidentHalfEdgesAreSiblingsAcceptsTetrahedron(t *testing.T) {
	g := ops.NewGraph(0.001)
	shell := tetrahedronShell(g)

	vg := NewGraph(g)
	assert.Empty(t, vg.CheckCoincidentHalfEdgesAreSiblings(shell, DefaultConfig()))
}

func TestCheckCoincidentHalfEdgesAreSiblingsFlagsIndependentlyBuiltOverlap(t *testing.T) {
	g := ops.NewGraph(0.001)
	surface := g.Geometry.XYPlane()

	// Two triangles, built independently (so their shared edge gets two
	// unrelated curve identities), placed so one edge of each coincides.
	cycleA := ops.PolygonCycle(g, []xmath.Point2{
		xmath.NewPoint2(0, 0), xmath.NewPoint2(1, 0), xmath.NewPoint2(0, 1),
	}, surface)
	cycleB := ops.PolygonCycle(g, []xmath.Point2{
		xmath.NewPoint2(1, 0), xmath.NewPoint2(0, 0), xmath.NewPoint2(1, 1),
	}, surface)

	regionA := ops.NewRegion(g, cycleA)
	regionB := ops.NewRegion(g, cycleB)
	faceA := ops.NewFace(g, surface, regionA)
	faceB := ops.NewFace(g, surface, regionB)

	shell := topo.Shell{Faces: []store.Handle[topo.Face]{faceA, faceB}}

	vg := NewGraph(g)
	errs := vg.CheckCoincidentHalfEdgesAreSiblings(shell, DefaultConfig())
	require.NotEmpty(t, errs)
	var mismatch CoincidentHalfEdgesAreNotSiblings
	assert.ErrorAs(t, errs[0], &mismatch)
}

func TestCheckCurveGeometryMismatchAcceptsTetrahedron(t *testing.T) {
	g := ops.NewGraph(0.001)
	shell := tetrahedronShell(g)

	vg := NewGraph(g)
	assert.Empty(t, vg.CheckCurveGeometryMismatch(shell, DefaultConfig()))
}

func TestCheckCurveGeometryMismatchFlagsDisagreeingSibling(t *testing.T) {
	g := ops.NewGraph(0.001)
	surface := g.Geometry.XYPlane()

	he1 := ops.BuildLineSegment(g, xmath.NewPoint2(0, 0), xmath.NewPoint2(1, 0), surface)

	// A sibling sharing he1's curve identity, but whose local path traces
	// an entirely different segment: the curve's geometry disagrees with
	// itself between the two half-edges that reference it.
	badStart := g.Vertices.Insert(topo.Vertex{})
	he2 := ops.BuildHalfEdgeFromSibling(
		g, he1, surface,
		geom.LineFromPoints2(xmath.NewPoint2(5, 5), xmath.NewPoint2(6, 5)),
		he1.Get().Boundary,
		badStart,
	)

	cycle1 := g.Cycles.Insert(topo.NewCycle(he1))
	cycle2 := g.Cycles.Insert(topo.NewCycle(he2))
	face1 := ops.NewFace(g, surface, ops.NewRegion(g, cycle1))
	face2 := ops.NewFace(g, surface, ops.NewRegion(g, cycle2))

	shell := topo.Shell{Faces: []store.Handle[topo.Face]{face1, face2}}

	vg := NewGraph(g)
	errs := vg.CheckCurveGeometryMismatch(shell, DefaultConfig())
	require.Len(t, errs, 1)
	var mismatch CurveGeometryMismatch
	assert.ErrorAs(t, errs[0], &mismatch)
}
