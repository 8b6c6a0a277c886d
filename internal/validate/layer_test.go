package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayerRecordAccumulatesErrors(t *testing.T) {
	l := NewLayer(DefaultConfig())
	assert.False(t, l.HasErrors())

	l.record([]error{HalfEdgeHasNoSibling{}})
	assert.True(t, l.HasErrors())

	errs := l.Errors()
	assert.Len(t, errs, 1)
	assert.False(t, l.HasErrors())
}

func TestLayerRecordPanicsImmediatelyWhenConfigured(t *testing.T) {
	config := DefaultConfig()
	config.PanicOnError = true
	l := NewLayer(config)

	assert.Panics(t, func() {
		l.record([]error{HalfEdgeHasNoSibling{}})
	})
}

func TestLayerCloseIsNoopWithNoErrors(t *testing.T) {
	run := func() {
		l := NewLayer(DefaultConfig())
		defer l.Close()
	}
	assert.NotPanics(t, run)
}

func TestLayerClosePanicsWithUnhandledErrors(t *testing.T) {
	run := func() {
		l := NewLayer(DefaultConfig())
		defer l.Close()
		l.record([]error{HalfEdgeHasNoSibling{}})
	}
	assert.Panics(t, run)
}

func TestLayerCloseDoesNotMaskAnInFlightPanic(t *testing.T) {
	run := func() {
		l := NewLayer(DefaultConfig())
		defer l.Close()
		panic("boom")
	}
	assert.PanicsWithValue(t, "boom", run)
}

func TestLayerErrorsDrainsOnlyOnce(t *testing.T) {
	l := NewLayer(DefaultConfig())
	l.record([]error{HalfEdgeHasNoSibling{}, HalfEdgeHasNoSibling{}})

	first := l.Errors()
	assert.Len(t, first, 2)

	second := l.Errors()
	assert.Empty(t, second)
}
