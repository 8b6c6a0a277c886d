// Package triangulate turns a face's approximated boundary (one exterior
// polygon plus zero or more interior hole polygons, a PSLG — planar
// straight-line graph) into a triangle mesh.
//
// Grounded on iceisfun/gomesh's cdt package (other_examples): the overall
// pipeline stages (normalize the PSLG, build an initial triangulation,
// recover constrained boundary edges, legalize interior edges) follow
// Build()'s shape there; Build()'s step that classifies and discards
// triangles outside the valid region has no counterpart here, and the
// result is not guaranteed to be Delaunay. The concrete per-stage
// algorithms differ: gomesh's CDT uses
// full incremental Bowyer-Watson insertion with cover-vertex removal, which
// needs edge-adjacency bookkeeping that is easy to get subtly wrong without
// a compiler to catch it; this package instead recovers the boundary by
// hole-bridging and fills the interior by ear clipping, then runs a bounded
// number of Lawson flip passes (internal/triangulate/legalize.go) to
// improve triangle quality where legal. See DESIGN.md for the tradeoff.
package triangulate

import "github.com/ajsb85/brepkernel/internal/xmath"

// PSLG is a normalized planar straight-line graph: one exterior ring and
// zero or more interior (hole) rings, each a closed polygon in surface-local
// 2D coordinates, with consecutive near-duplicate vertices merged.
type PSLG struct {
	Outer []xmath.Point2
	Holes [][]xmath.Point2
}

// NormalizePSLG merges consecutive vertices within tolerance of each other
// in outer and every hole ring, and drops any ring that collapses to fewer
// than 3 vertices.
func NormalizePSLG(outer []xmath.Point2, holes [][]xmath.Point2, tolerance xmath.Scalar) PSLG {
	pslg := PSLG{Outer: dedupRing(outer, tolerance)}
	for _, h := range holes {
		deduped := dedupRing(h, tolerance)
		if len(deduped) >= 3 {
			pslg.Holes = append(pslg.Holes, deduped)
		}
	}
	return pslg
}

func dedupRing(ring []xmath.Point2, tolerance xmath.Scalar) []xmath.Point2 {
	if len(ring) == 0 {
		return nil
	}
	out := make([]xmath.Point2, 0, len(ring))
	for _, p := range ring {
		if len(out) > 0 && out[len(out)-1].Distance(p) <= tolerance {
			continue
		}
		out = append(out, p)
	}
	if len(out) > 1 && out[0].Distance(out[len(out)-1]) <= tolerance {
		out = out[:len(out)-1]
	}
	return out
}
