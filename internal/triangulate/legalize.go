package triangulate

import (
	"gonum.org/v1/gonum/mat"

	"github.com/ajsb85/brepkernel/internal/xmath"
)

// edgeKey identifies an undirected edge by its two (ordered) vertex
// indices, used to find the pair of triangles sharing it.
type edgeKey struct{ lo, hi int }

func newEdgeKey(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{lo: a, hi: b}
}

// incircle reports whether point d lies strictly inside the circle through
// a, b, c (which must be wound counter-clockwise), using the standard
// determinant predicate.
//
// Grounded on the incircle test used throughout constrained-Delaunay
// literature and exercised here via gonum's mat.Dense determinant, the
// matrix library ajsb85-sdfx already depends on.
func incircle(a, b, c, d xmath.Point2) bool {
	m := mat.NewDense(3, 3, []float64{
		float64(a.X - d.X), float64(a.Y - d.Y), float64((a.X-d.X)*(a.X-d.X) + (a.Y-d.Y)*(a.Y-d.Y)),
		float64(b.X - d.X), float64(b.Y - d.Y), float64((b.X-d.X)*(b.X-d.X) + (b.Y-d.Y)*(b.Y-d.Y)),
		float64(c.X - d.X), float64(c.Y - d.Y), float64((c.X-d.X)*(c.X-d.X) + (c.Y-d.Y)*(c.Y-d.Y)),
	})
	return mat.Det(m) > 0
}

// legalize runs a bounded number of Lawson flip passes over triangles,
// swapping the shared diagonal of any two triangles that violate the
// Delaunay incircle condition, as long as doing so keeps both resulting
// triangles non-degenerate and doesn't touch a boundary edge.
//
// boundary holds every edge that came from the input polygon (exterior ring
// or a hole ring, including bridge edges); those edges are never flipped,
// since flipping them would change the mesh's outer shape.
func legalize(vertices []xmath.Point2, triangles []Triangle, boundary map[edgeKey]bool) []Triangle {
	const maxPasses = 8

	for pass := 0; pass < maxPasses; pass++ {
		adjacency := buildAdjacency(triangles)
		flipped := false

		for key, pair := range adjacency {
			if boundary[key] || len(pair) != 2 {
				continue
			}

			t0, t1 := triangles[pair[0].triIndex], triangles[pair[1].triIndex]
			opp0 := oppositeVertex(t0, key)
			opp1 := oppositeVertex(t1, key)

			// Edge keys order their ends by index, not by position: put opp0
			// on the left of lo->hi so the incircle triple is counter-clockwise
			// and both flipped triangles below come out counter-clockwise.
			if (xmath.Triangle2{vertices[key.lo], vertices[key.hi], vertices[opp0]}).SignedArea() < 0 {
				opp0, opp1 = opp1, opp0
			}

			if !incircle(vertices[key.lo], vertices[key.hi], vertices[opp0], vertices[opp1]) {
				continue
			}

			if !quadIsConvex(vertices[opp0], vertices[key.lo], vertices[opp1], vertices[key.hi]) {
				continue
			}

			triangles[pair[0].triIndex] = Triangle{A: opp0, B: key.lo, C: opp1}
			triangles[pair[1].triIndex] = Triangle{A: opp0, B: opp1, C: key.hi}
			flipped = true
		}

		if !flipped {
			break
		}
	}

	return triangles
}

type triRef struct {
	triIndex int
}

func buildAdjacency(triangles []Triangle) map[edgeKey][]triRef {
	adjacency := map[edgeKey][]triRef{}
	for i, t := range triangles {
		for _, e := range [][2]int{{t.A, t.B}, {t.B, t.C}, {t.C, t.A}} {
			key := newEdgeKey(e[0], e[1])
			adjacency[key] = append(adjacency[key], triRef{triIndex: i})
		}
	}
	return adjacency
}

// quadIsConvex reports whether the quadrilateral a-b-c-d (in order) is
// convex, i.e. flipping its diagonal b-d for a-c stays a valid, non
// self-intersecting pair of triangles.
func quadIsConvex(a, b, c, d xmath.Point2) bool {
	corners := [4]xmath.Point2{a, b, c, d}
	sign := 0.0
	for i := 0; i < 4; i++ {
		prev := corners[(i+3)%4]
		cur := corners[i]
		next := corners[(i+1)%4]
		cross := float64(cur.Sub(prev).Cross(next.Sub(cur)))
		if cross == 0 {
			return false
		}
		if sign == 0 {
			sign = cross
		} else if (cross > 0) != (sign > 0) {
			return false
		}
	}
	return true
}

func oppositeVertex(t Triangle, edge edgeKey) int {
	for _, v := range []int{t.A, t.B, t.C} {
		if v != edge.lo && v != edge.hi {
			return v
		}
	}
	return t.A
}
