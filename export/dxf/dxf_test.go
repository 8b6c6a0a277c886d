package dxf_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajsb85/brepkernel/export/dxf"
	"github.com/ajsb85/brepkernel/internal/xmath"
	"github.com/ajsb85/brepkernel/kernel"
)

func TestWriteFileProducesANonEmptyDrawing(t *testing.T) {
	outlines := []kernel.RegionOutline{{
		Exterior: []xmath.Point2{
			xmath.NewPoint2(0, 0), xmath.NewPoint2(4, 0),
			xmath.NewPoint2(4, 4), xmath.NewPoint2(0, 4),
		},
		Interiors: [][]xmath.Point2{{
			xmath.NewPoint2(1, 1), xmath.NewPoint2(2, 1),
			xmath.NewPoint2(2, 2), xmath.NewPoint2(1, 2),
		}},
	}}

	path := filepath.Join(t.TempDir(), "out.dxf")
	require.NoError(t, dxf.WriteFile(path, outlines))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
