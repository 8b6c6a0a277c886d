package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ajsb85/brepkernel/internal/xmath"
)

func TestConfigFromToleranceDerivesFixedMultipliers(t *testing.T) {
	config := ConfigFromTolerance(0.001)

	assert.InDelta(t, 0.01, float64(config.IdenticalMaxDistance), 1e-12)
	assert.InDelta(t, 0.02, float64(config.DistinctMinDistance), 1e-12)
	assert.False(t, config.PanicOnError)
}

func TestConfigFromToleranceScalesLinearly(t *testing.T) {
	a := ConfigFromTolerance(0.002)
	b := ConfigFromTolerance(0.004)

	assert.InDelta(t, float64(a.IdenticalMaxDistance)*2, float64(b.IdenticalMaxDistance), 1e-12)
	assert.InDelta(t, float64(a.DistinctMinDistance)*2, float64(b.DistinctMinDistance), 1e-12)
}

func TestDefaultConfigMatchesSpecDefaultTolerance(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, xmath.Scalar(0.001), config.Tolerance)
}
