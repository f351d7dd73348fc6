package curvature

import (
	"math"
	"testing"

	"github.com/chosler/mobius4d/grid"
	"github.com/chosler/mobius4d/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffOperators(t *testing.T) {
	var (
		nr, nc = 12, 9
		du, dv = 0.1, 0.2
	)
	// Both the central and the one-sided stencils are exact for quadratics
	F := utils.NewMatrix(nr, nc)
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			x := float64(i) * du
			y := float64(j) * dv
			F.Set(i, j, 2+3*x-x*x+0.5*y*y-y)
		}
	}
	Fu := DiffU(F, du)
	Fv := DiffV(F, dv)
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			x := float64(i) * du
			y := float64(j) * dv
			assert.InDelta(t, 3-2*x, Fu.At(i, j), 1.e-10)
			assert.InDelta(t, y-1, Fv.At(i, j), 1.e-10)
		}
	}
	// Nested mixed partial of f = x*y is identically 1, edges included
	G := utils.NewMatrix(nr, nc)
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			G.Set(i, j, float64(i)*du*float64(j)*dv)
		}
	}
	_, _, _, guv, _ := derivatives([]utils.Matrix{G}, du, dv)
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			assert.InDelta(t, 1., guv[0].At(i, j), 1.e-9)
		}
	}
}

func TestDegenerateGuards(t *testing.T) {
	assert.True(t, math.IsNaN(GuardedDiv(1, 0)))
	assert.True(t, math.IsNaN(GuardedDiv(1, 1.e-14)))
	assert.Equal(t, 2., GuardedDiv(4, 2))
	// Parallel tangents give an undefined normal, hence NaN coefficients,
	// and the NaN stays local to the cell in the curvature formulas
	var (
		nr, nc = 3, 3
		one    = utils.NewMatrix(nr, nc).AddScalar(1)
		zero   = utils.NewMatrix(nr, nc)
	)
	ru := []utils.Matrix{one.Copy(), zero.Copy(), zero.Copy()}
	rv := []utils.Matrix{one.Copy().Scale(2), zero.Copy(), zero.Copy()}
	sf := NewSecondForm3(ru, rv, ru, ru, ru)
	assert.True(t, math.IsNaN(sf.L.At(1, 1)))
	ff := NewFirstForm(ru, rv)
	K := gaussCurvature(ff, sf, 0)
	assert.True(t, math.IsNaN(K.At(1, 1)))
	H := meanCurvature(ff, sf)
	assert.True(t, math.IsNaN(H.At(1, 1)))
}

// The strip is minimal in S3: its mean curvature computed against the
// in-sphere normal must vanish up to discretization error. This is the
// strongest single check on the whole estimator.
func TestMinimalityOracle(t *testing.T) {
	_, fld := Pipeline(grid.DefaultSpec())
	var (
		nv = fld.Spec.Nv
	)
	for i := 0; i < fld.Spec.Nu; i++ {
		for j := 0; j < nv; j++ {
			h := fld.MeanSphere.At(i, j)
			require.False(t, math.IsNaN(h), "undefined H_S3 at %d,%d", i, j)
			if j >= 2 && j <= nv-3 {
				assert.InDelta(t, 0., h, 0.05, "interior H_S3 at %d,%d", i, j)
			} else {
				assert.InDelta(t, 0., h, 0.2, "edge H_S3 at %d,%d", i, j)
			}
		}
	}
}

// The projection is conformal, so the scale factor recovered from the E
// ratio and from the G ratio must agree with each other and with the
// analytic factor 1/(1-w). Disagreement beyond tolerance means estimator
// error, not geometry.
func TestConformality(t *testing.T) {
	_, fld := Pipeline(grid.DefaultSpec())
	var (
		nv = fld.Spec.Nv
	)
	for i := 0; i < fld.Spec.Nu; i++ {
		for j := 2; j <= nv-3; j++ {
			lamE := fld.ScaleFromE.At(i, j)
			lamG := fld.ScaleFromG.At(i, j)
			lam := fld.ScaleFactor.At(i, j)
			assert.InDelta(t, 1., lamE/lamG, 0.02, "E/G ratio at %d,%d", i, j)
			assert.InDelta(t, 1., lamE/lam, 0.02, "E/analytic ratio at %d,%d", i, j)
		}
	}
}

// Two independent computations of the intrinsic sphere curvature: the Gauss
// equation with the ambient +1, and the Brioschi formula from the metric
// alone. A missing ambient term shows up as a constant offset of 1.
func TestIntrinsicCurvatureCrossCheck(t *testing.T) {
	_, fld := Pipeline(grid.DefaultSpec())
	var (
		nv = fld.Spec.Nv
	)
	for i := 0; i < fld.Spec.Nu; i++ {
		for j := 2; j <= nv-3; j++ {
			kg := fld.GaussSphere.At(i, j)
			kb := fld.GaussBrioschi.At(i, j)
			assert.InDelta(t, kg, kb, 0.5, "K_S3 paths at %d,%d", i, j)
		}
	}
}

// The curvature difference recomputed through the conformal change formula
// must track the direct one. Errors compound through the nested Laplacian,
// so the tolerance is loose; structural mistakes (wrong power of lambda,
// sign of the Laplacian term) exceed it by an order of magnitude.
func TestConformalChangeCrossCheck(t *testing.T) {
	_, fld := Pipeline(grid.DefaultSpec())
	var (
		nv = fld.Spec.Nv
	)
	for i := 0; i < fld.Spec.Nu; i++ {
		for j := 3; j <= nv-4; j++ {
			kd := fld.GaussProjected.At(i, j)
			kc := fld.GaussConformal.At(i, j)
			tol := 0.5 + 0.05*math.Abs(kd)
			assert.InDelta(t, kd, kc, tol, "K_proj paths at %d,%d", i, j)
		}
	}
}

// With the fixed rotation, every sample of the default grid stays clear of
// the projection pole by a documented margin.
func TestPoleMargin(t *testing.T) {
	pg, fld := Pipeline(grid.DefaultSpec())
	wMax := pg.Core(pg.X4[3]).Max()
	assert.Greater(t, 1-wMax, 0.01)
	// ... and consequently no field has undefined cells
	for _, name := range FieldNames() {
		m, err := fld.ByName(name)
		require.NoError(t, err)
		assert.Equal(t, 0, m.NumNonFinite(), "field %s", name)
	}
}

// Regression bound for the scale factor along the strip's central curve:
// the rows nearest v=0 stay inside a known range and vary smoothly in u.
func TestScaleFactorCenterRow(t *testing.T) {
	_, fld := Pipeline(grid.DefaultSpec())
	var (
		nu = fld.Spec.Nu
		nv = fld.Spec.Nv
	)
	for _, j := range []int{nv/2 - 1, nv / 2} {
		prev := fld.ScaleFactor.At(0, j)
		assert.Greater(t, prev, 0.3)
		assert.Less(t, prev, 3.6)
		for i := 1; i < nu; i++ {
			lam := fld.ScaleFactor.At(i, j)
			assert.Greater(t, lam, 0.3)
			assert.Less(t, lam, 3.6)
			assert.Less(t, math.Abs(lam-prev), 0.15, "jump at %d,%d", i, j)
			prev = lam
		}
	}
}

// (u,v) and (u+2pi,-v) label the same physical point, so |H| must be
// invariant under re-running the pipeline on the shifted window with the v
// index flipped.
func TestDeckSymmetry(t *testing.T) {
	spec := grid.DefaultSpec()
	_, fld1 := Pipeline(spec)
	shifted := spec
	shifted.UMin += 2 * math.Pi
	shifted.UMax += 2 * math.Pi
	_, fld2 := Pipeline(shifted)
	var (
		nv = spec.Nv
	)
	for i := 0; i < spec.Nu; i++ {
		for j := 0; j < nv; j++ {
			assert.InDelta(t, fld1.MeanAbs.At(i, nv-1-j), fld2.MeanAbs.At(i, j), 1.e-6,
				"deck symmetry at %d,%d", i, j)
		}
	}
}

func TestFieldsAccessor(t *testing.T) {
	_, fld := Pipeline(grid.Spec{
		Nu: 16, Nv: 7,
		UMin: 0, UMax: 2 * math.Pi,
		VMin: -math.Pi / 2, VMax: math.Pi / 2,
	})
	m, err := fld.ByName("|H|")
	assert.NoError(t, err)
	assert.Equal(t, fld.MeanAbs, m)
	m, err = fld.ByName("dk")
	assert.NoError(t, err)
	assert.Equal(t, fld.GaussDiff, m)
	_, err = fld.ByName("vorticity")
	assert.Error(t, err)
	// Fields are frozen once the estimator hands them out
	assert.Panics(t, func() { fld.MeanAbs.Set(0, 0, 1) })
	nr, nc := fld.GaussDiff.Dims()
	assert.Equal(t, 16, nr)
	assert.Equal(t, 7, nc)
}
