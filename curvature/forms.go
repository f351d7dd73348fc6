package curvature

import (
	"math"

	"github.com/chosler/mobius4d/geometry4D"
	"github.com/chosler/mobius4d/utils"
)

// MetricTol is the smallest metric determinant (or denominator) treated as
// non-degenerate. Below it the cell's curvature is reported as NaN.
const MetricTol = 1.e-12

// GuardedDiv divides, mapping degenerate denominators to NaN instead of
// letting Inf or garbage propagate into the fields.
func GuardedDiv(num, den float64) float64 {
	if math.Abs(den) < MetricTol {
		return math.NaN()
	}
	return num / den
}

// FirstForm holds the induced metric coefficients over the grid:
// E = r_u.r_u, F = r_u.r_v, G = r_v.r_v.
type FirstForm struct {
	E, F, G utils.Matrix
}

func NewFirstForm(ru, rv []utils.Matrix) (ff FirstForm) {
	ff.E = dotField(ru, ru)
	ff.F = dotField(ru, rv)
	ff.G = dotField(rv, rv)
	return
}

// Det is the metric determinant EG - F^2, the denominator of every
// curvature formula.
func (ff FirstForm) Det() (R utils.Matrix) {
	R = ff.E.Copy().ElMul(ff.G).Subtract(ff.F.Copy().POW(2))
	return
}

// SecondForm holds the extrinsic bending coefficients against a unit
// normal: L = r_uu.n, M = r_uv.n, N = r_vv.n.
type SecondForm struct {
	L, M, N utils.Matrix
}

// NewSecondForm3 builds the second form of the projected surface in R3,
// using the normal r_u x r_v normalized per cell. Cells where the tangents
// are too close to parallel get NaN coefficients.
func NewSecondForm3(ru, rv, ruu, ruv, rvv []utils.Matrix) (sf SecondForm) {
	var (
		nr, nc = ru[0].Dims()
	)
	sf.L = utils.NewMatrix(nr, nc)
	sf.M = utils.NewMatrix(nr, nc)
	sf.N = utils.NewMatrix(nr, nc)
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			a := at3(ru, i, j)
			b := at3(rv, i, j)
			n := a.Cross(b).Normalize()
			sf.L.Set(i, j, at3(ruu, i, j).Dot(n))
			sf.M.Set(i, j, at3(ruv, i, j).Dot(n))
			sf.N.Set(i, j, at3(rvv, i, j).Dot(n))
		}
	}
	return
}

// NewSecondForm4 builds the second form of the surface within S3. The
// normal direction inside the sphere's tangent space is the 4D triple cross
// product of the position with the two tangents.
func NewSecondForm4(x, ru, rv, ruu, ruv, rvv []utils.Matrix) (sf SecondForm) {
	var (
		nr, nc = ru[0].Dims()
	)
	sf.L = utils.NewMatrix(nr, nc)
	sf.M = utils.NewMatrix(nr, nc)
	sf.N = utils.NewMatrix(nr, nc)
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			p := at4(x, i, j)
			a := at4(ru, i, j)
			b := at4(rv, i, j)
			n := geometry4D.Cross4(p, a, b).Normalize()
			sf.L.Set(i, j, at4(ruu, i, j).Dot(n))
			sf.M.Set(i, j, at4(ruv, i, j).Dot(n))
			sf.N.Set(i, j, at4(rvv, i, j).Dot(n))
		}
	}
	return
}

func dotField(a, b []utils.Matrix) (R utils.Matrix) {
	R = a[0].Copy().ElMul(b[0])
	for k := 1; k < len(a); k++ {
		R.Add(a[k].Copy().ElMul(b[k]))
	}
	return
}

func at3(f []utils.Matrix, i, j int) geometry4D.Vec3 {
	return geometry4D.Vec3{f[0].At(i, j), f[1].At(i, j), f[2].At(i, j)}
}

func at4(f []utils.Matrix, i, j int) geometry4D.Vec4 {
	return geometry4D.Vec4{f[0].At(i, j), f[1].At(i, j), f[2].At(i, j), f[3].At(i, j)}
}
