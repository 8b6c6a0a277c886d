// Package threemf writes a kernel.TriMesh out as a 3MF package using
// hpinc/go3mf, the one format in the stack with a full container (a zipped
// OPC package with an embedded model part) rather than a flat text file.
//
// Grounded on render/step.go's streaming-writer shape, adapted from a
// channel of triangles into a single in-memory go3mf.Mesh, since go3mf's
// encoder wants the whole model built before it writes the package.
package threemf

import (
	"fmt"
	"os"

	"github.com/hpinc/go3mf"

	"github.com/ajsb85/brepkernel/kernel"
)

// WriteFile writes mesh to path as a 3MF package containing a single mesh
// object named name.
func WriteFile(path, name string, mesh kernel.TriMesh) error {
	model := &go3mf.Model{}
	model.Resources.Objects = append(model.Resources.Objects, buildObject(1, name, mesh))
	model.Build.Items = append(model.Build.Items, &go3mf.Item{ObjectID: 1})

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("threemf: create %s: %w", path, err)
	}
	defer f.Close()

	enc := go3mf.NewEncoder(f)
	if err := enc.Encode(model); err != nil {
		return fmt.Errorf("threemf: encode %s: %w", path, err)
	}
	return nil
}

// buildObject deduplicates mesh's vertices by position, within floating-
// point equality, so shared triangle corners become shared vertex indices
// rather than one vertex per triangle corner.
func buildObject(id uint32, name string, mesh kernel.TriMesh) *go3mf.Object {
	obj := &go3mf.Object{ID: id, Name: name, Mesh: &go3mf.Mesh{}}

	type key struct{ x, y, z float64 }
	index := map[key]uint32{}

	vertexIndex := func(p [3]float64) uint32 {
		k := key{p[0], p[1], p[2]}
		if i, ok := index[k]; ok {
			return i
		}
		i := uint32(len(obj.Mesh.Vertices.Vertex))
		obj.Mesh.Vertices.Vertex = append(obj.Mesh.Vertices.Vertex, go3mf.Point3D{
			float32(p[0]), float32(p[1]), float32(p[2]),
		})
		index[k] = i
		return i
	}

	for _, tri := range mesh.Triangles {
		a := vertexIndex([3]float64{tri.Points[0].X.Float64(), tri.Points[0].Y.Float64(), tri.Points[0].Z.Float64()})
		b := vertexIndex([3]float64{tri.Points[1].X.Float64(), tri.Points[1].Y.Float64(), tri.Points[1].Z.Float64()})
		c := vertexIndex([3]float64{tri.Points[2].X.Float64(), tri.Points[2].Y.Float64(), tri.Points[2].Z.Float64()})
		obj.Mesh.Triangles.Triangle = append(obj.Mesh.Triangles.Triangle, go3mf.Triangle{V1: a, V2: b, V3: c})
	}
	return obj
}
