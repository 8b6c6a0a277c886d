package kernel

import (
	"github.com/ajsb85/brepkernel/internal/ops"
	"github.com/ajsb85/brepkernel/internal/store"
	"github.com/ajsb85/brepkernel/internal/topo"
	"github.com/ajsb85/brepkernel/internal/xmath"
)

// Translate moves solid by offset. Corresponds to spec.md §6's
// TransformObject::translate.
func (c *Context) Translate(solid store.Handle[topo.Solid], offset xmath.Vector3) store.Handle[topo.Solid] {
	return ops.Translate(c.Graph, solid, offset)
}

// Rotate rotates solid by angle radians about axis through origin.
// Corresponds to spec.md §6's TransformObject::rotate.
func (c *Context) Rotate(solid store.Handle[topo.Solid], origin xmath.Point3, axis xmath.Vector3, angle xmath.Scalar) store.Handle[topo.Solid] {
	return ops.Rotate(c.Graph, solid, origin, axis, angle)
}

// Reverse reverses face's winding and surface normal. Corresponds to
// spec.md §6's Reverse::reverse.
func (c *Context) Reverse(face store.Handle[topo.Face]) store.Handle[topo.Face] {
	return ops.ReverseFace(c.Graph, face)
}
