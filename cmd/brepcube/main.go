// Command brepcube builds the unit-cube-by-sweep scenario (spec.md §8's
// first testable property) and exports it to STL, 3MF and STEP, plus a
// flattened SVG and DXF preview of its base sketch.
//
// Grounded on examples/step_export/main.go's shape: build a model, export
// it to each format in turn, log.Fatalf on the first error.
package main

import (
	"log"

	"github.com/ajsb85/brepkernel/export/dxf"
	"github.com/ajsb85/brepkernel/export/step"
	"github.com/ajsb85/brepkernel/export/stl"
	"github.com/ajsb85/brepkernel/export/svg"
	"github.com/ajsb85/brepkernel/export/threemf"
	"github.com/ajsb85/brepkernel/internal/xmath"
	"github.com/ajsb85/brepkernel/kernel"
)

func main() {
	ctx := kernel.NewContext(kernel.DefaultConfig())
	defer ctx.Close()

	surface := ctx.XYPlane()
	cycle := ctx.CyclePolygon([]xmath.Point2{
		xmath.NewPoint2(0, 0), xmath.NewPoint2(1, 0),
		xmath.NewPoint2(1, 1), xmath.NewPoint2(0, 1),
	}, surface)
	region := ctx.RegionNew(cycle)
	sketchHandle := ctx.SketchFrom(surface, region)
	sketch := sketchHandle.Get()

	solid := ctx.SweepSketch(sketch, xmath.NewVector3(0, 0, 1))
	if ctx.HasErrors() {
		log.Fatalf("validation errors building cube: %v", ctx.Errors())
	}

	mesh := ctx.Approximate(solid, 0.001)
	log.Printf("tessellated cube into %d triangles", len(mesh.Triangles))

	if err := stl.WriteFile("cube.stl", "brepcube", mesh); err != nil {
		log.Fatalf("failed to export STL: %v", err)
	}
	if err := threemf.WriteFile("cube.3mf", "brepcube", mesh); err != nil {
		log.Fatalf("failed to export 3MF: %v", err)
	}
	if err := step.WriteFile("cube.step", "brepcube", mesh); err != nil {
		log.Fatalf("failed to export STEP: %v", err)
	}

	outlines := ctx.SketchOutlines(sketch, 0.001)
	if err := svg.WriteFile("cube_base.svg", outlines, svg.Options{}); err != nil {
		log.Fatalf("failed to export SVG preview: %v", err)
	}
	if err := dxf.WriteFile("cube_base.dxf", outlines); err != nil {
		log.Fatalf("failed to export DXF preview: %v", err)
	}

	log.Println("export complete: cube.stl, cube.3mf, cube.step, cube_base.svg, cube_base.dxf")
}
