// Package kernel is the consumer-facing facade spec.md §6 describes: a
// single context bundling the topology object store, the geometry binding,
// and the validation layer, with the operations of internal/ops exposed as
// methods that validate their own output as they go.
//
// Grounded on chazu-lignin's pkg/kernel.Kernel interface (Box, Cylinder,
// Union, Translate, ToMesh) for the shape of a facade wrapping a richer
// core, adapted here from an SDF-boolean facade to a B-rep
// topology-operations one, since sweep/reverse/join/transform, not CSG
// booleans, are this kernel's vocabulary.
package kernel

import (
	"github.com/ajsb85/brepkernel/internal/ops"
	"github.com/ajsb85/brepkernel/internal/validate"
)

// Context is the kernel's mutable state: everything a consumer needs to
// build, transform, and validate a solid model.
type Context struct {
	Graph *ops.Graph
	Layer *validate.Layer
}

// NewContext constructs a Context using config's tolerance for the object
// store's approximation deviation bound, and config itself for the
// validation layer.
func NewContext(config Config) *Context {
	return &Context{
		Graph: ops.NewGraph(config.Tolerance),
		Layer: validate.NewLayer(config),
	}
}

// Errors drains every validation error accumulated so far.
func (c *Context) Errors() []error {
	return c.Layer.Errors()
}

// HasErrors reports whether any unhandled validation errors remain.
func (c *Context) HasErrors() bool {
	return c.Layer.HasErrors()
}

// Close panics if unhandled validation errors remain; call via `defer`
// immediately after NewContext, matching validate.Layer's own contract.
func (c *Context) Close() {
	c.Layer.Close()
}
