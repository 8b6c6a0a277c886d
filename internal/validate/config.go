// Package validate implements the kernel's validation checks and the
// event-sourced error layer that accumulates them: each check consumes a
// single topological object plus a ValidationConfig and reports the errors
// it finds.
//
// Grounded on fj-core/src/validation/{config,error}.rs and
// fj-core/src/layers/{layer,validation}.rs (original_source).
package validate

import "github.com/ajsb85/brepkernel/internal/xmath"

// Config carries the tolerances every check is measured against.
//
// Grounded on fj-core/src/validation/config.rs's ValidationConfig
// (original_source).
type Config struct {
	// PanicOnError makes the first validation error panic immediately,
	// instead of accumulating in a Layer.
	PanicOnError bool

	// Tolerance is the approximation deviation bound.
	Tolerance xmath.Scalar

	// IdenticalMaxDistance is the greatest distance between two points
	// still considered "the same point".
	IdenticalMaxDistance xmath.Scalar

	// DistinctMinDistance is the least distance between two points still
	// considered "different points".
	DistinctMinDistance xmath.Scalar
}

// ConfigFromTolerance derives a Config from a single tolerance value, using
// the fixed multipliers spec.md §4.7 states: identical_max_distance is ten
// times tolerance (any smaller and numerical noise alone would trip the
// adjacency checks everywhere), distinct_min_distance is twice that (any
// smaller and a pair of points could simultaneously satisfy neither "same"
// nor "different").
func ConfigFromTolerance(tolerance xmath.Scalar) Config {
	identicalMaxDistance := tolerance * 10
	return Config{
		Tolerance:            tolerance,
		IdenticalMaxDistance: identicalMaxDistance,
		DistinctMinDistance:  identicalMaxDistance * 2,
	}
}

// DefaultConfig returns the Config derived from spec.md's default tolerance
// of 0.001.
func DefaultConfig() Config {
	return ConfigFromTolerance(0.001)
}
