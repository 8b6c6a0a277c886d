package kernel

import (
	"github.com/ajsb85/brepkernel/internal/validate"
	"github.com/ajsb85/brepkernel/internal/xmath"
)

// Config is the kernel's validation configuration: whether a validation
// error should panic immediately, and the three distance thresholds
// derived from a single tolerance (spec.md §4.7). It is a direct re-export
// of internal/validate.Config, kept at the kernel level under the name
// spec.md §6 gives it (ValidationConfig there, Config here, matching this
// package's own Go-idiomatic naming).
type Config = validate.Config

// ConfigFromTolerance derives a Config from tolerance using spec.md §4.7's
// fixed multipliers (identical_max_distance = 10*tolerance,
// distinct_min_distance = 2*identical_max_distance).
func ConfigFromTolerance(tolerance xmath.Scalar) Config {
	return validate.ConfigFromTolerance(tolerance)
}

// DefaultConfig returns ConfigFromTolerance(0.001), the kernel's default
// approximation tolerance.
func DefaultConfig() Config {
	return validate.DefaultConfig()
}
