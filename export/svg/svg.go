// Package svg renders a sketch's flattened 2D outlines as an SVG preview,
// using ajstarks/svgo.
//
// Grounded on render/step.go's options-struct + single-entry-point shape,
// adapted from a 3D mesh writer to a 2D outline writer since svgo only
// knows how to draw polygons in a page-coordinate plane.
package svg

import (
	"fmt"
	"os"

	svgo "github.com/ajstarks/svgo"

	"github.com/ajsb85/brepkernel/internal/xmath"
	"github.com/ajsb85/brepkernel/kernel"
)

// Options configures the preview's page and styling.
type Options struct {
	Width, Height int     // canvas size in pixels; 0 defaults to 512x512
	Scale         float64 // sketch units to pixels; 0 defaults to 100
	Style         string  // svgo polygon style; "" defaults to a light fill with a dark stroke
}

func (o Options) withDefaults() Options {
	if o.Width == 0 {
		o.Width = 512
	}
	if o.Height == 0 {
		o.Height = 512
	}
	if o.Scale == 0 {
		o.Scale = 100
	}
	if o.Style == "" {
		o.Style = "fill:#dddddd;stroke:#333333;stroke-width:1;fill-rule:evenodd"
	}
	return o
}

// WriteFile renders outlines as an SVG document at path: each region's
// exterior is drawn as a filled polygon, then each of its holes is drawn
// on top in the page background color, punching a visible gap.
func WriteFile(path string, outlines []kernel.RegionOutline, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("svg: create %s: %w", path, err)
	}
	defer f.Close()

	opts = opts.withDefaults()
	canvas := svgo.New(f)
	canvas.Start(opts.Width, opts.Height)
	defer canvas.End()

	const holeStyle = "fill:#ffffff;stroke:#333333;stroke-width:1"
	cx, cy := opts.Width/2, opts.Height/2
	for _, region := range outlines {
		drawRing(canvas, region.Exterior, cx, cy, opts.Scale, opts.Style)
		for _, hole := range region.Interiors {
			drawRing(canvas, hole, cx, cy, opts.Scale, holeStyle)
		}
	}
	return nil
}

// drawRing draws one closed ring as a polygon, projecting sketch-local
// coordinates to page pixels: y is flipped since SVG's y axis points down
// while the sketch's points up.
func drawRing(canvas *svgo.SVG, ring []xmath.Point2, cx, cy int, scale float64, style string) {
	if len(ring) == 0 {
		return
	}
	xs := make([]int, len(ring))
	ys := make([]int, len(ring))
	for i, p := range ring {
		xs[i] = cx + int(p.X.Float64()*scale)
		ys[i] = cy - int(p.Y.Float64()*scale)
	}
	canvas.Polygon(xs, ys, style)
}
