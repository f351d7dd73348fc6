package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Grid resolution from a parameter file must survive unless a flag was
// given explicitly; the flag defaults are display values, not overrides.
func TestParamFilePrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.yaml")
	require.NoError(t, os.WriteFile(path, []byte("Nu: 100\nNv: 25\n"), 0o644))

	mr := &ModelRun{ParamFile: path}
	sp := processInput(mr)
	assert.Equal(t, 100, sp.Nu)
	assert.Equal(t, 25, sp.Nv)

	// An explicit flag wins over the file, per flag
	mr = &ModelRun{ParamFile: path, Nu: 64}
	sp = processInput(mr)
	assert.Equal(t, 64, sp.Nu)
	assert.Equal(t, 25, sp.Nv)
}

func TestGatherRunChangedFlagsOnly(t *testing.T) {
	mr := gatherRun(CurvatureCmd)
	assert.Equal(t, 0, mr.Nu)
	assert.Equal(t, 0, mr.Nv)

	require.NoError(t, CurvatureCmd.Flags().Set("nu", "64"))
	mr = gatherRun(CurvatureCmd)
	assert.Equal(t, 64, mr.Nu)
	assert.Equal(t, 0, mr.Nv)
}
