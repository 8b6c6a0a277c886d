package topo

import (
	"github.com/ajsb85/brepkernel/internal/geom"
	"github.com/ajsb85/brepkernel/internal/store"
	"github.com/ajsb85/brepkernel/internal/xmath"
)

// Winding is the orientation of a cycle's boundary in its surface's 2D
// coordinate system.
//
// Grounded on fj-core/src/topology/objects/face.rs's Face::coord_handedness
// (original_source), which derives a face's handedness from its exterior
// cycle's winding; here Winding is computed directly on Cycle, since
// internal/topo carries each half-edge's 2D path inline.
type Winding int

const (
	CW Winding = iota
	CCW
)

// samplePoints returns a coarse polyline sampling of a half-edge's path
// over its boundary, used only to determine winding sign (not for display
// or export, which go through internal/approx's tolerance-driven pipeline).
func (h HalfEdge) samplePoints() []xmath.Point2 {
	const lineSamples = 2
	lo, hi := h.Boundary.Inner[0], h.Boundary.Inner[1]

	if h.Path.Kind == geom.PathCircle {
		n := xmath.CircleSegmentCount(h.Path.Circle.Radius(), 1e-3)
		pts := make([]xmath.Point2, 0, n)
		for i := 0; i <= n; i++ {
			frac := xmath.Scalar(i) / xmath.Scalar(n)
			t := xmath.Point1{T: lo.T + (hi.T-lo.T)*frac}
			pts = append(pts, h.Path.PointFromLocal(t))
		}
		return pts
	}

	pts := make([]xmath.Point2, 0, lineSamples)
	for i := 0; i < lineSamples; i++ {
		frac := xmath.Scalar(i) / xmath.Scalar(lineSamples-1)
		t := xmath.Point1{T: lo.T + (hi.T-lo.T)*frac}
		pts = append(pts, h.Path.PointFromLocal(t))
	}
	return pts
}

// Winding computes the cycle's winding by the shoelace formula over the
// polyline formed by all of its half-edges' sampled points, in order.
// resolve looks up a half-edge handle's value; callers pass the owning
// Context's half-edge store.
func (c Cycle) Winding(resolve func(store.Handle[HalfEdge]) HalfEdge) Winding {
	var points []xmath.Point2
	for _, h := range c.HalfEdges {
		points = append(points, resolve(h).samplePoints()...)
	}

	var signedArea xmath.Scalar
	for i := range points {
		a := points[i]
		b := points[(i+1)%len(points)]
		signedArea += a.X*b.Y - b.X*a.Y
	}

	if signedArea < 0 {
		return CW
	}
	return CCW
}
