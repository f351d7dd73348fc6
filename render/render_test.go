package render

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/chosler/mobius4d/curvature"
	"github.com/chosler/mobius4d/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPipeline(t *testing.T) (*grid.PointGrids, *curvature.Fields) {
	t.Helper()
	pg, fld := curvature.Pipeline(grid.Spec{
		Nu: 24, Nv: 9,
		UMin: 0, UMax: 2 * math.Pi,
		VMin: -math.Pi / 2, VMax: math.Pi / 2,
	})
	return pg, fld
}

func TestHeatmap(t *testing.T) {
	_, fld := testPipeline(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "habs.png")
	require.NoError(t, Heatmap(fld, "habs", path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
	// Unknown fields propagate the accessor error
	assert.Error(t, Heatmap(fld, "nosuchfield", filepath.Join(dir, "x.png")))
}

func TestRenderAll(t *testing.T) {
	pg, fld := testPipeline(t)
	dir := filepath.Join(t.TempDir(), "out")
	require.NoError(t, RenderAll(fld, pg, dir))
	for _, name := range curvature.FieldNames() {
		_, err := os.Stat(filepath.Join(dir, name+".png"))
		assert.NoError(t, err, "missing heat map for %s", name)
		_, err = os.Stat(filepath.Join(dir, name+"_xy.png"))
		assert.NoError(t, err, "missing projection for %s", name)
	}
}
