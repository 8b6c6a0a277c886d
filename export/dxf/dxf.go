// Package dxf renders a sketch's flattened 2D outlines as a DXF drawing of
// line segments, using yofu/dxf.
//
// Grounded on render/step.go's single-entry-point writer shape, adapted
// from a 3D triangle writer to a 2D polyline writer, with one layer for all
// exteriors and one for all holes so a CAD viewer can toggle the two
// independently.
package dxf

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/drawing"

	"github.com/ajsb85/brepkernel/internal/xmath"
	"github.com/ajsb85/brepkernel/kernel"
)

// WriteFile renders outlines as a DXF drawing at path: each region's
// exterior goes on layer "exterior", and every hole goes on "interior", as
// closed polylines of line segments.
func WriteFile(path string, outlines []kernel.RegionOutline) error {
	d := dxf.NewDrawing()
	d.AddLayer("exterior", dxf.DefaultColor, dxf.DefaultLineType, true)
	d.AddLayer("interior", dxf.DefaultColor, dxf.DefaultLineType, true)

	for _, region := range outlines {
		drawRing(d, "exterior", region.Exterior)
		for _, hole := range region.Interiors {
			drawRing(d, "interior", hole)
		}
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("dxf: save %s: %w", path, err)
	}
	return nil
}

// drawRing emits one line per edge of the closed ring, wrapping back to the
// first point, on layer.
func drawRing(d *drawing.Drawing, layer string, ring []xmath.Point2) {
	if len(ring) < 2 {
		return
	}
	d.ChangeLayer(layer)
	for i := range ring {
		a := ring[i]
		b := ring[(i+1)%len(ring)]
		d.Line(a.X.Float64(), a.Y.Float64(), 0, b.X.Float64(), b.Y.Float64(), 0)
	}
}
