package triangulate

import "github.com/ajsb85/brepkernel/internal/xmath"

// Result is the output mesh: a flat vertex list and triangles indexing it,
// plus each vertex's already-resolved global (3D) position.
type Result struct {
	Vertices  []xmath.Point2
	Globals   []xmath.Point3
	Triangles []Triangle
}

// Triangulate builds a constrained triangulation of outer, with holes cut
// out, within tolerance. outer must already be a simple (non-self-
// intersecting) polygon in surface-local coordinates; orientation doesn't
// matter, it's normalized internally.
//
// global maps each input vertex (from outer or holes) to its canonical 3D
// position, already resolved by internal/approx. This package only ever
// reorders, dedups or drops input vertices — it never synthesizes new
// ones — so every vertex the result carries is a key of global; the
// result's Globals are looked up from it rather than re-evaluated through
// the surface a second time. Pass nil when callers don't need Globals
// populated.
func Triangulate(outer []xmath.Point2, holes [][]xmath.Point2, global map[xmath.Point2]xmath.Point3, tolerance xmath.Scalar) Result {
	pslg := NormalizePSLG(outer, holes, tolerance)
	if len(pslg.Outer) < 3 {
		return Result{}
	}

	ccwOuter := pslg.Outer
	if signedArea(ccwOuter) < 0 {
		ccwOuter = reversed(ccwOuter)
	}

	ccwHoles := make([][]xmath.Point2, len(pslg.Holes))
	for i, h := range pslg.Holes {
		// Holes must wind opposite the exterior so the merged ring stays
		// a single simple CCW polygon once bridged in.
		if signedArea(h) > 0 {
			ccwHoles[i] = reversed(h)
		} else {
			ccwHoles[i] = h
		}
	}

	merged := mergeHoles(ccwOuter, ccwHoles)
	boundary := boundaryEdges(ccwOuter, ccwHoles, merged)

	triangles := earClip(merged)
	triangles = legalize(merged, triangles, boundary)

	globals := make([]xmath.Point3, len(merged))
	for i, p := range merged {
		globals[i] = global[p]
	}

	return Result{Vertices: merged, Globals: globals, Triangles: triangles}
}

// boundaryEdges returns the set of edges that must never be flipped during
// legalization: every consecutive pair in the exterior ring and every hole
// ring, expressed as indices into merged (the bridged polygon ear clipping
// actually runs on).
func boundaryEdges(outer []xmath.Point2, holes [][]xmath.Point2, merged []xmath.Point2) map[edgeKey]bool {
	index := make(map[xmath.Point2]int, len(merged))
	for i, p := range merged {
		index[p] = i
	}

	edges := map[edgeKey]bool{}
	markRing := func(ring []xmath.Point2) {
		for i := range ring {
			a, ok1 := index[ring[i]]
			b, ok2 := index[ring[(i+1)%len(ring)]]
			if ok1 && ok2 {
				edges[newEdgeKey(a, b)] = true
			}
		}
	}

	markRing(outer)
	for _, h := range holes {
		markRing(h)
	}
	return edges
}

// PointInPolygon reports whether p lies inside the closed polygon ring
// (even-odd rule), used by callers classifying auxiliary points (e.g. the
// kernel's negative-sweep detection doesn't need this, but face-splitting
// utilities elsewhere in the kernel do).
func PointInPolygon(p xmath.Point2, ring []xmath.Point2) bool {
	inside := false
	for i, j := 0, len(ring)-1; i < len(ring); j, i = i, i+1 {
		pi, pj := ring[i], ring[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) {
			slopeX := (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y) + pi.X
			if p.X < slopeX {
				inside = !inside
			}
		}
	}
	return inside
}
