package curvature

import (
	"fmt"
	"math"
	"strings"

	"github.com/chosler/mobius4d/grid"
	"github.com/chosler/mobius4d/utils"
)

// Fields holds the scalar fields of the estimator, index-aligned with the
// parameter grid (Nu x Nv, halo trimmed). Each matrix is written once and
// marked read-only; the rendering layer only reads. NaN entries mean
// "undefined at this sample", never "zero".
type Fields struct {
	Spec grid.Spec
	// ScaleFactor is the conformal factor of the projection, 1/(1-w).
	ScaleFactor utils.Matrix
	// MeanAbs is |H| of the projected surface. The strip is one-sided, so
	// the sign of H depends on an arbitrary local normal choice and only
	// the magnitude is geometrically meaningful.
	MeanAbs utils.Matrix
	// GaussProjected is the Gaussian curvature after projection.
	GaussProjected utils.Matrix
	// GaussSphere is the intrinsic Gaussian curvature in S3, including the
	// ambient +1 of the sphere.
	GaussSphere utils.Matrix
	// GaussDiff is GaussSphere - GaussProjected, the projection-induced
	// curvature change.
	GaussDiff utils.Matrix

	// Diagnostics, mostly consumed by the correctness checks.
	MeanProjected  utils.Matrix // signed H in R3
	MeanSphere     utils.Matrix // H within S3; zero for a minimal surface
	GaussConformal utils.Matrix // K_proj recomputed via the conformal change formula
	GaussBrioschi  utils.Matrix // intrinsic K from the 4D metric alone, cross-check for GaussSphere
	ScaleFromE     utils.Matrix // sqrt(E3/E4), metric-ratio scale estimate
	ScaleFromG     utils.Matrix // sqrt(G3/G4)
}

// Compute runs the full estimator over sampled point grids.
func Compute(pg *grid.PointGrids) (fld *Fields) {
	var (
		spec   = pg.Spec
		du, dv = spec.Du(), spec.Dv()
	)
	fld = &Fields{Spec: spec}

	xu, xv, xuu, xuv, xvv := derivatives(pg.X4[:], du, dv)
	cu, cv, cuu, cuv, cvv := derivatives(pg.P3[:], du, dv)

	ff4 := NewFirstForm(xu, xv)
	ff3 := NewFirstForm(cu, cv)
	sf4 := NewSecondForm4(pg.X4[:], xu, xv, xuu, xuv, xvv)
	sf3 := NewSecondForm3(cu, cv, cuu, cuv, cvv)

	h3 := meanCurvature(ff3, sf3)
	k3 := gaussCurvature(ff3, sf3, 0)
	h4 := meanCurvature(ff4, sf4)
	k4 := gaussCurvature(ff4, sf4, 1) // ambient S3 contributes +1

	habs := h3.Copy().Apply(math.Abs)
	dk := k4.Copy().Subtract(k3)
	kconf := conformalGauss(k4, pg.Scale, ff4, du, dv)
	kbri := brioschiGauss(ff4, du, dv)
	lamE := ratioSqrt(ff3.E, ff4.E)
	lamG := ratioSqrt(ff3.G, ff4.G)

	fld.ScaleFactor = finish(pg, pg.Scale.Copy(), "ScaleFactor")
	fld.MeanAbs = finish(pg, habs, "MeanAbs")
	fld.GaussProjected = finish(pg, k3, "GaussProjected")
	fld.GaussSphere = finish(pg, k4, "GaussSphere")
	fld.GaussDiff = finish(pg, dk, "GaussDiff")
	fld.MeanProjected = finish(pg, h3, "MeanProjected")
	fld.MeanSphere = finish(pg, h4, "MeanSphere")
	fld.GaussConformal = finish(pg, kconf, "GaussConformal")
	fld.GaussBrioschi = finish(pg, kbri, "GaussBrioschi")
	fld.ScaleFromE = finish(pg, lamE, "ScaleFromE")
	fld.ScaleFromG = finish(pg, lamG, "ScaleFromG")
	return
}

// Pipeline samples and estimates in one call; the grid value is the entire
// configuration of the run.
func Pipeline(spec grid.Spec) (pg *grid.PointGrids, fld *Fields) {
	pg = grid.NewSampler(spec).Sample()
	fld = Compute(pg)
	return
}

// meanCurvature evaluates H = (EN - 2FM + GL) / (2(EG - F^2)) per cell.
func meanCurvature(ff FirstForm, sf SecondForm) (H utils.Matrix) {
	var (
		nr, nc = ff.E.Dims()
		e      = ff.E.RawMatrix().Data
		f      = ff.F.RawMatrix().Data
		g      = ff.G.RawMatrix().Data
		l      = sf.L.RawMatrix().Data
		m      = sf.M.RawMatrix().Data
		n      = sf.N.RawMatrix().Data
	)
	H = utils.NewMatrix(nr, nc)
	hd := H.RawMatrix().Data
	for ind := range hd {
		den := e[ind]*g[ind] - f[ind]*f[ind]
		hd[ind] = GuardedDiv(e[ind]*n[ind]-2*f[ind]*m[ind]+g[ind]*l[ind], 2*den)
	}
	return
}

// gaussCurvature evaluates K = (LN - M^2) / (EG - F^2) + ambient per cell.
func gaussCurvature(ff FirstForm, sf SecondForm, ambient float64) (K utils.Matrix) {
	var (
		nr, nc = ff.E.Dims()
		e      = ff.E.RawMatrix().Data
		f      = ff.F.RawMatrix().Data
		g      = ff.G.RawMatrix().Data
		l      = sf.L.RawMatrix().Data
		m      = sf.M.RawMatrix().Data
		n      = sf.N.RawMatrix().Data
	)
	K = utils.NewMatrix(nr, nc)
	kd := K.RawMatrix().Data
	for ind := range kd {
		den := e[ind]*g[ind] - f[ind]*f[ind]
		kd[ind] = GuardedDiv(l[ind]*n[ind]-m[ind]*m[ind], den) + ambient
	}
	return
}

// conformalGauss recomputes the projected curvature from the intrinsic one:
// for a conformal metric change g -> lambda^2 g,
//
//	K_proj = (K_intrinsic - Lap_g log lambda) / lambda^2
//
// with Lap_g the Laplace-Beltrami operator of the intrinsic metric,
// discretized with the same stencil family as everything else. Used as an
// independent cross-check on GaussDiff.
func conformalGauss(k4, scale utils.Matrix, ff4 FirstForm, du, dv float64) (K utils.Matrix) {
	var (
		nr, nc = k4.Dims()
		phi    = scale.Copy().Apply(math.Log)
		phiU   = DiffU(phi, du)
		phiV   = DiffV(phi, dv)
		e      = ff4.E.RawMatrix().Data
		f      = ff4.F.RawMatrix().Data
		g      = ff4.G.RawMatrix().Data
		pu     = phiU.RawMatrix().Data
		pv     = phiV.RawMatrix().Data
		A      = utils.NewMatrix(nr, nc)
		B      = utils.NewMatrix(nr, nc)
		W      = utils.NewMatrix(nr, nc)
	)
	ad, bd, wd := A.RawMatrix().Data, B.RawMatrix().Data, W.RawMatrix().Data
	for ind := range wd {
		det := e[ind]*g[ind] - f[ind]*f[ind]
		wd[ind] = math.Sqrt(math.Max(det, 0))
		ad[ind] = GuardedDiv(g[ind]*pu[ind]-f[ind]*pv[ind], wd[ind])
		bd[ind] = GuardedDiv(e[ind]*pv[ind]-f[ind]*pu[ind], wd[ind])
	}
	lap := DiffU(A, du).Add(DiffV(B, dv))
	var (
		kd = k4.RawMatrix().Data
		ld = lap.RawMatrix().Data
		sd = scale.RawMatrix().Data
	)
	K = utils.NewMatrix(nr, nc)
	out := K.RawMatrix().Data
	for ind := range out {
		lb := GuardedDiv(ld[ind], wd[ind])
		out[ind] = GuardedDiv(kd[ind]-lb, sd[ind]*sd[ind])
	}
	return
}

// brioschiGauss evaluates the intrinsic Gaussian curvature from the metric
// coefficients alone (Brioschi formula). Unlike the Gauss-equation path it
// needs no second fundamental form and no ambient term, which makes it an
// independent check that the +1 of the sphere is accounted for correctly.
func brioschiGauss(ff FirstForm, du, dv float64) (K utils.Matrix) {
	var (
		nr, nc = ff.E.Dims()
		eu     = DiffU(ff.E, du)
		ev     = DiffV(ff.E, dv)
		fu     = DiffU(ff.F, du)
		fv     = DiffV(ff.F, dv)
		gu     = DiffU(ff.G, du)
		gv     = DiffV(ff.G, dv)
		evv    = DiffV(ev, dv)
		guu    = DiffU(gu, du)
		fuv    = DiffV(fu, dv).Add(DiffU(fv, du)).Scale(0.5)
	)
	var (
		e   = ff.E.RawMatrix().Data
		f   = ff.F.RawMatrix().Data
		g   = ff.G.RawMatrix().Data
		eud = eu.RawMatrix().Data
		evd = ev.RawMatrix().Data
		fud = fu.RawMatrix().Data
		fvd = fv.RawMatrix().Data
		gud = gu.RawMatrix().Data
		gvd = gv.RawMatrix().Data
		ed2 = evv.RawMatrix().Data
		gd2 = guu.RawMatrix().Data
		fd2 = fuv.RawMatrix().Data
	)
	K = utils.NewMatrix(nr, nc)
	kd := K.RawMatrix().Data
	for ind := range kd {
		num := det3(
			-0.5*ed2[ind]+fd2[ind]-0.5*gd2[ind], 0.5*eud[ind], fud[ind]-0.5*evd[ind],
			fvd[ind]-0.5*gud[ind], e[ind], f[ind],
			0.5*gvd[ind], f[ind], g[ind],
		) - det3(
			0, 0.5*evd[ind], 0.5*gud[ind],
			0.5*evd[ind], e[ind], f[ind],
			0.5*gud[ind], f[ind], g[ind],
		)
		den := e[ind]*g[ind] - f[ind]*f[ind]
		kd[ind] = GuardedDiv(num, den*den)
	}
	return
}

func det3(a0, a1, a2, b0, b1, b2, c0, c1, c2 float64) float64 {
	return a0*(b1*c2-b2*c1) - a1*(b0*c2-b2*c0) + a2*(b0*c1-b1*c0)
}

// ratioSqrt computes sqrt(a/b) per cell with the degenerate-metric guard.
func ratioSqrt(a, b utils.Matrix) (R utils.Matrix) {
	R = a.Copy().Apply2(b, func(x, y float64) float64 {
		return math.Sqrt(GuardedDiv(x, y))
	})
	return
}

// finish trims a padded field to the core grid and freezes it.
func finish(pg *grid.PointGrids, padded utils.Matrix, name string) utils.Matrix {
	core := pg.Core(padded)
	return core.SetReadOnly(name)
}

// FieldNames lists the primary scalar fields in presentation order.
func FieldNames() []string {
	return []string{"scale", "habs", "kproj", "dk"}
}

// ByName returns a scalar field for the rendering layer, which polls this
// accessor when the user switches fields. Aliases follow the labels of the
// reference visualization.
func (fld *Fields) ByName(name string) (utils.Matrix, error) {
	switch strings.ToLower(name) {
	case "scale", "lambda":
		return fld.ScaleFactor, nil
	case "habs", "|h|":
		return fld.MeanAbs, nil
	case "kproj", "k":
		return fld.GaussProjected, nil
	case "dk", "deltak":
		return fld.GaussDiff, nil
	case "ksphere":
		return fld.GaussSphere, nil
	case "hsphere":
		return fld.MeanSphere, nil
	case "kbrioschi":
		return fld.GaussBrioschi, nil
	default:
		return utils.Matrix{}, fmt.Errorf("unknown scalar field %q, have %v", name, FieldNames())
	}
}
