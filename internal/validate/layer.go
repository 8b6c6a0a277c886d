package validate

import (
	"fmt"

	"github.com/ajsb85/brepkernel/internal/ops"
	"github.com/ajsb85/brepkernel/internal/store"
	"github.com/ajsb85/brepkernel/internal/topo"
)

// Layer is the kernel's event-sourced validation state: every
// ValidateX call is the "command", the errors it finds are the "events",
// and Layer.errors is the accumulated "state" those events evolve.
// Draining (Errors) or closing (Close) consumes accumulated state, the Go
// analogue of the original Rust layer's panic-on-drop (Go has no
// destructors, so Close must be called explicitly, typically via `defer`
// right after NewLayer).
//
// Grounded on fj-core/src/layers/{layer,validation}.rs's Layer<Validation>
// decide/evolve cycle and drop-time panic (original_source).
type Layer struct {
	config Config
	errors []error
}

// NewLayer constructs an empty Layer using config.
func NewLayer(config Config) *Layer {
	return &Layer{config: config}
}

// record appends errs to the layer's accumulated state, or panics
// immediately on the first one if config.PanicOnError is set.
func (l *Layer) record(errs []error) {
	for _, err := range errs {
		if l.config.PanicOnError {
			panic(fmt.Sprintf("validate: %v", err))
		}
		l.errors = append(l.errors, err)
	}
}

// ValidateCycle runs the cycle-scoped checks (adjacent half-edge
// connectivity) against cycleHandle.
func (l *Layer) ValidateCycle(g *ops.Graph, cycleHandle store.Handle[topo.Cycle]) {
	l.record(CheckAdjacentHalfEdgesConnected(g, l.config, cycleHandle))
}

// ValidateFace runs the face-scoped checks (non-empty boundary) against
// faceHandle.
func (l *Layer) ValidateFace(g *ops.Graph, faceHandle store.Handle[topo.Face]) {
	l.record(CheckFaceHasBoundary(g, faceHandle))
}

// ValidateRegion runs the region-scoped checks (interior winding) against
// regionHandle.
func (l *Layer) ValidateRegion(g *ops.Graph, regionHandle store.Handle[topo.Region]) {
	l.record(CheckInteriorCycleWinding(g, regionHandle))
}

// ValidateShell runs every shell-scoped check (sibling presence, coincident
// non-siblings, curve geometry agreement) against shellHandle.
func (l *Layer) ValidateShell(g *ops.Graph, shellHandle store.Handle[topo.Shell]) {
	shell := shellHandle.Get()
	vg := NewGraph(g)
	l.record(vg.CheckHalfEdgeHasSibling(shell))
	l.record(vg.CheckCoincidentHalfEdgesAreSiblings(shell, l.config))
	l.record(vg.CheckCurveGeometryMismatch(shell, l.config))
}

// ValidateSolid runs the solid-scoped checks (vertex coincidence) against
// solidHandle.
func (l *Layer) ValidateSolid(g *ops.Graph, solidHandle store.Handle[topo.Solid]) {
	l.record(CheckSolidVertexCoincidence(g, l.config, solidHandle))
}

// ValidateOwnership runs the whole-graph exclusive-ownership check.
func (l *Layer) ValidateOwnership(g *ops.Graph) {
	l.record(CheckExclusiveOwnership(g))
}

// Errors drains and returns every unhandled error accumulated so far.
func (l *Layer) Errors() []error {
	errs := l.errors
	l.errors = nil
	return errs
}

// HasErrors reports whether any unhandled errors remain.
func (l *Layer) HasErrors() bool {
	return len(l.errors) > 0
}

// Close panics if unhandled errors remain, printing each one first — the Go
// equivalent of the original layer's Drop impl, which prints and panics
// unless the thread is already unwinding from another panic (checked here
// via recover, since Close must be the function directly deferred by the
// caller to see an in-flight panic).
func (l *Layer) Close() {
	alreadyPanicking := recover()

	if len(l.errors) == 0 {
		if alreadyPanicking != nil {
			panic(alreadyPanicking)
		}
		return
	}

	fmt.Printf("closing validation layer with %d unhandled errors:\n", len(l.errors))
	for _, err := range l.errors {
		fmt.Println(err)
	}

	if alreadyPanicking != nil {
		panic(alreadyPanicking)
	}
	panic(fmt.Sprintf("validate: %d unhandled validation errors", len(l.errors)))
}
