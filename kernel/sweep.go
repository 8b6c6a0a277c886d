package kernel

import (
	"github.com/ajsb85/brepkernel/internal/ops"
	"github.com/ajsb85/brepkernel/internal/store"
	"github.com/ajsb85/brepkernel/internal/topo"
	"github.com/ajsb85/brepkernel/internal/xmath"
)

// SweepSketch sweeps every region of sketch along sweepVec into a solid
// and validates the result's vertex coincidence and exclusive ownership.
// Corresponds to spec.md §6's Sweep::sweep_sketch.
func (c *Context) SweepSketch(sketch topo.Sketch, sweepVec xmath.Vector3) store.Handle[topo.Solid] {
	solid := ops.SweepSketch(c.Graph, sketch, sweepVec)
	c.Layer.ValidateSolid(c.Graph, solid)
	c.Layer.ValidateOwnership(c.Graph)
	return solid
}
