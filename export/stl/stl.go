// Package stl writes a kernel.TriMesh out as an ASCII STL file with no
// third-party codec: STL's format is a handful of fixed-width lines, not
// worth pulling a dependency in for.
//
// Grounded on render/step.go's ToSTEPWithOptions shape (a single Write
// entry point taking the mesh and a destination path) and on
// internal/store's style of trusting the caller's handles, adapted here to
// trust the caller's kernel.TriMesh.
package stl

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/ajsb85/brepkernel/internal/xmath"
	"github.com/ajsb85/brepkernel/kernel"
)

// WriteFile writes mesh to path as an ASCII STL solid named name.
func WriteFile(path, name string, mesh kernel.TriMesh) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("stl: create %s: %w", path, err)
	}
	defer f.Close()
	return Write(f, name, mesh)
}

// Write encodes mesh as an ASCII STL solid named name to w.
func Write(w io.Writer, name string, mesh kernel.TriMesh) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "solid %s\n", name); err != nil {
		return err
	}
	for _, tri := range mesh.Triangles {
		n := normal(tri.Points)
		if _, err := fmt.Fprintf(bw, "  facet normal %g %g %g\n", n.X, n.Y, n.Z); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(bw, "    outer loop"); err != nil {
			return err
		}
		for _, p := range tri.Points {
			if _, err := fmt.Fprintf(bw, "      vertex %g %g %g\n", p.X, p.Y, p.Z); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(bw, "    endloop"); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(bw, "  endfacet"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(bw, "endsolid %s\n", name); err != nil {
		return err
	}
	return bw.Flush()
}

// normal computes the facet normal from the triangle's winding order, the
// same right-handed convention geom.SurfaceGeometry.Normal uses.
func normal(points [3]xmath.Point3) xmath.Vector3 {
	u := points[0].Sub(points[1])
	v := points[2].Sub(points[1])
	return v.Cross(u).Normalize()
}
