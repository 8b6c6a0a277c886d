package xmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAABB3FromPointsContainsAll(t *testing.T) {
	pts := []Point3{NewPoint3(1, -2, 3), NewPoint3(-4, 5, -6), NewPoint3(0, 0, 0)}
	box := AABB3FromPoints(pts)
	for _, p := range pts {
		assert.True(t, box.Contains(p))
	}
}

func TestAABB3MergeContainsBoth(t *testing.T) {
	a := AABB3FromPoints([]Point3{NewPoint3(0, 0, 0), NewPoint3(1, 1, 1)})
	b := AABB3FromPoints([]Point3{NewPoint3(5, 5, 5), NewPoint3(6, 6, 6)})
	m := a.Merge(b)
	assert.True(t, m.Contains(NewPoint3(0, 0, 0)))
	assert.True(t, m.Contains(NewPoint3(6, 6, 6)))
	assert.False(t, m.Contains(NewPoint3(10, 10, 10)))
}

func TestAABB3FromPointsPanicsOnEmpty(t *testing.T) {
	assert.Panics(t, func() { AABB3FromPoints(nil) })
}

func TestAABB3Center(t *testing.T) {
	box := AABB3FromPoints([]Point3{NewPoint3(0, 0, 0), NewPoint3(2, 4, 6)})
	c := box.Center()
	assert.InDelta(t, 1.0, float64(c.X), 1e-9)
	assert.InDelta(t, 2.0, float64(c.Y), 1e-9)
	assert.InDelta(t, 3.0, float64(c.Z), 1e-9)
}
