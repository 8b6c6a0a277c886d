package geom

// Ordered is the constraint CurveBoundary's endpoint type must satisfy: a
// total order, used to normalize the boundary's two endpoints into a
// canonical (low, high) order.
type Ordered[T any] interface {
	Less(T) bool
}

// CurveBoundary is the two endpoints of a half-edge's (or an approximation
// segment's) extent on a curve, in the curve's local 1D coordinates.
//
// Grounded on spec.md §4.5's description of the approximation cache key and
// on half_edge.rs's `boundary: CurveBoundary<Point<1>>` field
// (original_source); the Rust source's CurveBoundary type itself wasn't
// present in the retrieved files, so this is built directly from the
// normalize/subset/reverse contract spec.md states for it.
type CurveBoundary[T Ordered[T]] struct {
	Inner [2]T
}

func NewCurveBoundary[T Ordered[T]](a, b T) CurveBoundary[T] {
	return CurveBoundary[T]{Inner: [2]T{a, b}}
}

// Reverse swaps the boundary's two endpoints, without reordering them into
// canonical form. Used when reversing a half-edge's direction.
func (b CurveBoundary[T]) Reverse() CurveBoundary[T] {
	return CurveBoundary[T]{Inner: [2]T{b.Inner[1], b.Inner[0]}}
}

// Normalize returns the boundary with its endpoints sorted into (low, high)
// order. Approximation caching and structural equality checks require
// normalized boundaries, so that a half-edge and its reversed sibling share
// one cache entry instead of two.
func (b CurveBoundary[T]) Normalize() CurveBoundary[T] {
	if b.Inner[1].Less(b.Inner[0]) {
		return b.Reverse()
	}
	return b
}

// NormalizeIsIdempotent is a convenience predicate used by tests to assert
// spec.md §8's "normalizing an already-normalized segment yields the same
// segment" property.
func (b CurveBoundary[T]) NormalizeIsIdempotent() bool {
	n := b.Normalize()
	return n.Inner == n.Normalize().Inner
}

// Contains reports whether t falls within the boundary's (normalized)
// closed interval.
func (b CurveBoundary[T]) Contains(t T) bool {
	n := b.Normalize()
	lo, hi := n.Inner[0], n.Inner[1]
	return !t.Less(lo) && !hi.Less(t)
}

// Subset reports whether b is fully contained within other, after
// normalizing both.
func (b CurveBoundary[T]) Subset(other CurveBoundary[T]) bool {
	nb := b.Normalize()
	no := other.Normalize()
	return !nb.Inner[0].Less(no.Inner[0]) && !no.Inner[1].Less(nb.Inner[1])
}
