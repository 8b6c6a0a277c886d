package xmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

// TestCircleSegmentCountMeetsTolerance is the property from spec.md §8: for
// any radius and tolerance, the returned n is the smallest n >= 3 such that
// the sagitta of the inscribed polygon is within tolerance.
func TestCircleSegmentCountMeetsTolerance(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		radius := Scalar(rapid.Float64Range(0.01, 1000).Draw(rt, "radius"))
		tolerance := Scalar(rapid.Float64Range(0.001, radius.Float64()).Draw(rt, "tolerance"))

		n := CircleSegmentCount(radius, tolerance)
		assert.GreaterOrEqual(rt, n, 3)

		dev := radius - radius*Scalar(CosPiOverN(n))
		assert.LessOrEqual(rt, dev.Float64(), tolerance.Float64())

		if n > 3 {
			prevDev := radius - radius*Scalar(CosPiOverN(n-1))
			assert.Greater(rt, prevDev.Float64(), tolerance.Float64())
		}
	})
}

func TestCircleSegmentCountKnownValue(t *testing.T) {
	// radius 71 at tolerance 0.1: 59 segments leave a sagitta of about
	// 0.1006, 60 segments about 0.0973.
	n := CircleSegmentCount(71, 0.1)
	assert.Equal(t, 60, n)
}

func TestCircle3PointFromLocalRoundTrip(t *testing.T) {
	c := NewCircle3(Point3{}, NewVector3(2, 0, 0), NewVector3(0, 2, 0))
	p := c.PointFromLocal(Point1{T: Pi / 4})
	got := c.PointToLocal(p)
	assert.InDelta(t, float64(Pi/4), float64(got.T), 1e-9)
}

func TestCircle3ReverseNegatesB(t *testing.T) {
	c := NewCircle3(Point3{}, NewVector3(1, 0, 0), NewVector3(0, 1, 0))
	r := c.Reverse()
	assert.Equal(t, c.A, r.A)
	assert.Equal(t, c.B.Neg(), r.B)
}
