package xmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector3CrossOrthogonal(t *testing.T) {
	x := NewVector3(1, 0, 0)
	y := NewVector3(0, 1, 0)
	z := x.Cross(y)
	assert.InDelta(t, 0.0, float64(z.Dot(x)), 1e-9)
	assert.InDelta(t, 0.0, float64(z.Dot(y)), 1e-9)
	assert.InDelta(t, 1.0, float64(z.Z), 1e-9)
}

func TestVector2CrossSign(t *testing.T) {
	v := NewVector2(1, 0)
	w := NewVector2(0, 1)
	assert.Greater(t, float64(v.Cross(w)), 0.0)
	assert.Less(t, float64(w.Cross(v)), 0.0)
}

func TestVector3NormalizeUnitLength(t *testing.T) {
	v := NewVector3(3, 4, 0).Normalize()
	assert.InDelta(t, 1.0, float64(v.Magnitude()), 1e-9)
}

func TestVector3NormalizeZeroIsZero(t *testing.T) {
	v := Vector3{}.Normalize()
	assert.Equal(t, Vector3{}, v)
}

func TestPoint3DistanceSymmetric(t *testing.T) {
	a := NewPoint3(1, 2, 3)
	b := NewPoint3(4, 5, 6)
	assert.Equal(t, a.Distance(b), b.Distance(a))
}
