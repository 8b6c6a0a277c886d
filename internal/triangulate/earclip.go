package triangulate

import "github.com/ajsb85/brepkernel/internal/xmath"

// Triangle is a triangle of the output mesh, referencing polygon's vertex
// slice by index.
type Triangle struct {
	A, B, C int
}

// earClip triangulates a simple (non-self-intersecting) polygon using the
// standard ear-clipping algorithm: repeatedly find a convex vertex whose
// triangle with its neighbors contains no other remaining vertex, emit that
// triangle, and remove the vertex from the active ring.
//
// polygon must be wound counter-clockwise; reorient before calling if it
// isn't (see signedArea).
func earClip(polygon []xmath.Point2) []Triangle {
	n := len(polygon)
	if n < 3 {
		return nil
	}

	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}

	var triangles []Triangle
	guard := 0
	maxGuard := n * n
	for len(indices) > 3 {
		guard++
		if guard > maxGuard {
			// Pathological input (likely self-intersecting after bridging);
			// stop rather than loop forever. Remaining ring is dropped.
			break
		}

		clipped := false
		for i := 0; i < len(indices); i++ {
			prev := indices[(i-1+len(indices))%len(indices)]
			cur := indices[i]
			next := indices[(i+1)%len(indices)]

			if !isConvex(polygon[prev], polygon[cur], polygon[next]) {
				continue
			}
			if anyVertexInside(polygon, indices, prev, cur, next) {
				continue
			}

			triangles = append(triangles, Triangle{A: prev, B: cur, C: next})
			indices = append(indices[:i], indices[i+1:]...)
			clipped = true
			break
		}

		if !clipped {
			// No ear found (degenerate/self-intersecting ring); emit a
			// fan from the first remaining vertex rather than losing the
			// remaining area entirely.
			for i := 1; i+1 < len(indices); i++ {
				triangles = append(triangles, Triangle{A: indices[0], B: indices[i], C: indices[i+1]})
			}
			indices = indices[:1]
			break
		}
	}

	if len(indices) == 3 {
		triangles = append(triangles, Triangle{A: indices[0], B: indices[1], C: indices[2]})
	}

	return triangles
}

func isConvex(a, b, c xmath.Point2) bool {
	return b.Sub(a).Cross(c.Sub(b)) > 0
}

func anyVertexInside(polygon []xmath.Point2, indices []int, a, b, c int) bool {
	for _, idx := range indices {
		if idx == a || idx == b || idx == c {
			continue
		}
		if pointInTriangle(polygon[idx], polygon[a], polygon[b], polygon[c]) {
			return true
		}
	}
	return false
}

func pointInTriangle(p, a, b, c xmath.Point2) bool {
	d1 := b.Sub(a).Cross(p.Sub(a))
	d2 := c.Sub(b).Cross(p.Sub(b))
	d3 := a.Sub(c).Cross(p.Sub(c))

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

// signedArea returns twice the signed area of polygon; positive for
// counter-clockwise winding.
func signedArea(polygon []xmath.Point2) xmath.Scalar {
	var sum xmath.Scalar
	for i := range polygon {
		a := polygon[i]
		b := polygon[(i+1)%len(polygon)]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum
}

func reversed(polygon []xmath.Point2) []xmath.Point2 {
	out := make([]xmath.Point2, len(polygon))
	for i, p := range polygon {
		out[len(polygon)-1-i] = p
	}
	return out
}
