// Package curvature estimates the fundamental forms and curvature scalars of
// the sampled strip by finite differences, both in the sphere embedding and
// after stereographic projection.
package curvature

import (
	"github.com/chosler/mobius4d/utils"
)

// DiffU differentiates a field along the u axis (rows): second-order central
// stencils in the interior, one-sided second-order 3-point stencils at the
// first and last stored rows. On the padded grids produced by the sampler
// the one-sided rows are ghost rows, so every core result is central.
func DiffU(F utils.Matrix, du float64) (R utils.Matrix) {
	var (
		nr, nc = F.Dims()
		d      = F.RawMatrix().Data
		half   = 1 / (2 * du)
	)
	R = utils.NewMatrix(nr, nc)
	rd := R.RawMatrix().Data
	last := (nr - 1) * nc
	for j := 0; j < nc; j++ {
		rd[j] = (-3*d[j] + 4*d[nc+j] - d[2*nc+j]) * half
		rd[last+j] = (3*d[last+j] - 4*d[last-nc+j] + d[last-2*nc+j]) * half
	}
	for i := 1; i < nr-1; i++ {
		for j := 0; j < nc; j++ {
			ind := i*nc + j
			rd[ind] = (d[ind+nc] - d[ind-nc]) * half
		}
	}
	return
}

// DiffV differentiates along the v axis (columns). The v direction is open;
// the two edge columns use the same one-sided second-order stencils, the
// pinned boundary policy for the whole estimator.
func DiffV(F utils.Matrix, dv float64) (R utils.Matrix) {
	var (
		nr, nc = F.Dims()
		d      = F.RawMatrix().Data
		half   = 1 / (2 * dv)
	)
	R = utils.NewMatrix(nr, nc)
	rd := R.RawMatrix().Data
	for i := 0; i < nr; i++ {
		row := i * nc
		rd[row] = (-3*d[row] + 4*d[row+1] - d[row+2]) * half
		rd[row+nc-1] = (3*d[row+nc-1] - 4*d[row+nc-2] + d[row+nc-3]) * half
		for j := 1; j < nc-1; j++ {
			rd[row+j] = (d[row+j+1] - d[row+j-1]) * half
		}
	}
	return
}

// derivatives applies the first-difference operators to every component of a
// point field, then builds the second partials by nesting the same stencils.
// The mixed partial is symmetrized across the two nesting orders.
func derivatives(r []utils.Matrix, du, dv float64) (ru, rv, ruu, ruv, rvv []utils.Matrix) {
	n := len(r)
	ru = make([]utils.Matrix, n)
	rv = make([]utils.Matrix, n)
	ruu = make([]utils.Matrix, n)
	ruv = make([]utils.Matrix, n)
	rvv = make([]utils.Matrix, n)
	for k := 0; k < n; k++ {
		ru[k] = DiffU(r[k], du)
		rv[k] = DiffV(r[k], dv)
		ruu[k] = DiffU(ru[k], du)
		rvv[k] = DiffV(rv[k], dv)
		ruv[k] = DiffV(ru[k], dv).Add(DiffU(rv[k], du)).Scale(0.5)
	}
	return
}
