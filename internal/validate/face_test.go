package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ajsb85/brepkernel/internal/ops"
	"github.com/ajsb85/brepkernel/internal/topo"
	"github.com/ajsb85/brepkernel/internal/xmath"
)

func TestCheckFaceHasBoundaryAcceptsNonEmptyExterior(t *testing.T) {
	g := ops.NewGraph(0.001)
	surface := g.Geometry.XYPlane()
	cycle := ops.PolygonCycle(g, []xmath.Point2{
		xmath.NewPoint2(0, 0), xmath.NewPoint2(1, 0), xmath.NewPoint2(0, 1),
	}, surface)
	region := ops.NewRegion(g, cycle)
	face := ops.NewFace(g, surface, region)

	assert.Empty(t, CheckFaceHasBoundary(g, face))
}

func TestCheckFaceHasBoundaryFlagsEmptyExterior(t *testing.T) {
	g := ops.NewGraph(0.001)
	surface := g.Geometry.XYPlane()
	emptyCycle := g.Cycles.Insert(topo.NewCycle())
	region := ops.NewRegion(g, emptyCycle)
	face := ops.NewFace(g, surface, region)

	errs := CheckFaceHasBoundary(g, face)
	assert.Len(t, errs, 1)
	var noBoundary FaceHasNoBoundary
	assert.ErrorAs(t, errs[0], &noBoundary)
}
