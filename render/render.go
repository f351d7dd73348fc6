// Package render turns the estimator's scalar fields into color-mapped
// images. It sits strictly downstream of the core: it reads the point grid
// and polls fields by name, and nothing in the core depends on it.
package render

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"github.com/chosler/mobius4d/curvature"
	"github.com/chosler/mobius4d/grid"
	"github.com/chosler/mobius4d/utils"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Titles matches the colorbar labels of the reference visualization.
var Titles = map[string]string{
	"scale": "Scale Factor (lambda)",
	"habs":  "Absolute Mean Curvature |H|",
	"kproj": "Gaussian Curvature K (projected)",
	"dk":    "Curvature Difference K_S3 - K_R3",
}

// fieldGrid adapts a scalar field matrix and its parameter axes to the
// plotter's grid interface. Columns run along u, rows along v.
type fieldGrid struct {
	z    utils.Matrix
	u, v utils.Vector
}

func (g fieldGrid) Dims() (c, r int) {
	nr, nc := g.z.Dims()
	return nr, nc
}
func (g fieldGrid) Z(c, r int) float64 { return g.z.At(c, r) }
func (g fieldGrid) X(c int) float64    { return g.u.AtVec(c) }
func (g fieldGrid) Y(r int) float64    { return g.v.AtVec(r) }

// Heatmap renders one named field over the parameter domain. Fields that
// straddle zero get a diverging palette centered on zero; single-signed
// fields get a sequential one, following the reference visualization.
// Undefined (NaN) cells are left blank by the heat map.
func Heatmap(fld *curvature.Fields, name, path string) error {
	m, err := fld.ByName(name)
	if err != nil {
		return err
	}
	var (
		g = fieldGrid{
			z: m,
			u: fld.Spec.U(),
			v: fld.Spec.V(),
		}
		min, max = m.Min(), m.Max()
	)
	p := plot.New()
	if title, ok := Titles[name]; ok {
		p.Title.Text = title
	} else {
		p.Title.Text = name
	}
	p.X.Label.Text = "u"
	p.Y.Label.Text = "v"
	var hm *plotter.HeatMap
	if min < 0 && max > 0 {
		hm = plotter.NewHeatMap(g, moreland.SmoothBlueRed().Palette(255))
		bound := math.Max(math.Abs(min), math.Abs(max))
		hm.Min, hm.Max = -bound, bound
	} else {
		hm = plotter.NewHeatMap(g, moreland.ExtendedBlackBody().Palette(255))
		hm.Min, hm.Max = min, max
	}
	p.Add(hm)
	return p.Save(7*vg.Inch, 5*vg.Inch, path)
}

// Projection renders the projected strip seen down the z axis, each sample
// colored by the named field. Undefined samples are dropped.
func Projection(fld *curvature.Fields, pg *grid.PointGrids, name, path string) error {
	m, err := fld.ByName(name)
	if err != nil {
		return err
	}
	var (
		P       = pg.Points3()
		nr, nc  = m.Dims()
		pts     plotter.XYs
		vals    []float64
		lo, hi  = m.Min(), m.Max()
		defined int
	)
	var cm palette.ColorMap
	if lo < 0 && hi > 0 {
		cm = moreland.SmoothBlueRed()
		bound := math.Max(math.Abs(lo), math.Abs(hi))
		lo, hi = -bound, bound
	} else {
		cm = moreland.ExtendedBlackBody()
	}
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			val := m.At(i, j)
			x, y := P[0].At(i, j), P[1].At(i, j)
			if math.IsNaN(val) || math.IsNaN(x) || math.IsNaN(y) {
				continue
			}
			pts = append(pts, plotter.XY{X: x, Y: y})
			vals = append(vals, val)
			defined++
		}
	}
	if defined == 0 {
		return fmt.Errorf("field %q has no defined samples to plot", name)
	}
	cm.SetMin(lo)
	cm.SetMax(hi)
	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	sc.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		col, cerr := cm.At(vals[i])
		if cerr != nil {
			col = color.Gray{Y: 128}
		}
		return draw.GlyphStyle{
			Color:  col,
			Radius: vg.Points(1.2),
			Shape:  draw.CircleGlyph{},
		}
	}
	p := plot.New()
	if title, ok := Titles[name]; ok {
		p.Title.Text = title
	} else {
		p.Title.Text = name
	}
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(sc)
	return p.Save(7*vg.Inch, 7*vg.Inch, path)
}

// RenderAll writes a heat map and a projected view for every primary field.
func RenderAll(fld *curvature.Fields, pg *grid.PointGrids, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, name := range curvature.FieldNames() {
		if err := Heatmap(fld, name, filepath.Join(dir, name+".png")); err != nil {
			return err
		}
		if err := Projection(fld, pg, name, filepath.Join(dir, name+"_xy.png")); err != nil {
			return err
		}
	}
	return nil
}
