package triangulate

import "github.com/ajsb85/brepkernel/internal/xmath"

// mergeHoles splices each hole ring into outer via a zero-width bridge edge
// pair, producing a single simple polygon that ear clipping can consume
// directly. The bridge connects the hole's rightmost vertex (guaranteed to
// be on the hole's convex hull) to the nearest outer-ring vertex.
//
// This is the standard "bridge to make one simple polygon" technique used
// by ear-clipping triangulators as an alternative to full constrained
// Delaunay edge recovery.
func mergeHoles(outer []xmath.Point2, holes [][]xmath.Point2) []xmath.Point2 {
	ring := append([]xmath.Point2{}, outer...)
	for _, hole := range holes {
		ring = mergeOneHole(ring, hole)
	}
	return ring
}

func mergeOneHole(ring, hole []xmath.Point2) []xmath.Point2 {
	if len(hole) == 0 {
		return ring
	}

	rightmost := 0
	for i := 1; i < len(hole); i++ {
		if hole[i].X > hole[rightmost].X {
			rightmost = i
		}
	}

	nearestOuter := 0
	best := ring[0].Distance(hole[rightmost])
	for i := 1; i < len(ring); i++ {
		d := ring[i].Distance(hole[rightmost])
		if d < best {
			best = d
			nearestOuter = i
		}
	}

	// Splice: outer[0..nearestOuter], hole[rightmost..end, 0..rightmost],
	// hole[rightmost] again (closes the hole loop), outer[nearestOuter]
	// again (closes the bridge), outer[nearestOuter+1..].
	out := make([]xmath.Point2, 0, len(ring)+len(hole)+2)
	out = append(out, ring[:nearestOuter+1]...)
	for i := 0; i < len(hole); i++ {
		out = append(out, hole[(rightmost+i)%len(hole)])
	}
	out = append(out, hole[rightmost])
	out = append(out, ring[nearestOuter:]...)
	return out
}
