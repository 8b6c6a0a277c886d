package step_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajsb85/brepkernel/export/step"
	"github.com/ajsb85/brepkernel/internal/xmath"
	"github.com/ajsb85/brepkernel/kernel"
)

func TestWriteFileProducesAWellFormedStepFile(t *testing.T) {
	mesh := kernel.TriMesh{Triangles: []kernel.Triangle{
		{Points: [3]xmath.Point3{
			xmath.NewPoint3(0, 0, 0),
			xmath.NewPoint3(1, 0, 0),
			xmath.NewPoint3(0, 1, 0),
		}},
	}}

	path := filepath.Join(t.TempDir(), "out.step")
	require.NoError(t, step.WriteFile(path, "tri", mesh))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)

	assert.True(t, strings.HasPrefix(out, "ISO-10303-21;\n"))
	assert.Contains(t, out, "DATA;\n")
	assert.Contains(t, out, "ADVANCED_FACE")
	assert.True(t, strings.HasSuffix(out, "END-ISO-10303-21;\n"))
}

func TestWriteMeshDropsDegenerateTriangles(t *testing.T) {
	mesh := []kernel.Triangle{
		{Points: [3]xmath.Point3{
			xmath.NewPoint3(0, 0, 0),
			xmath.NewPoint3(0, 0, 0),
			xmath.NewPoint3(0, 0, 0),
		}},
	}
	optimized := step.OptimizeMesh(mesh)
	assert.Empty(t, optimized)
}
