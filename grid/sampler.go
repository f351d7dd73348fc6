package grid

import (
	"fmt"
	"math"

	"github.com/chosler/mobius4d/geometry4D"
	"github.com/chosler/mobius4d/surface"
	"github.com/chosler/mobius4d/utils"
)

// Sampler evaluates the surface and projection over a Spec's grid. All of
// its collaborators are fixed values chosen at construction.
type Sampler struct {
	Spec       Spec
	Surface    surface.Lawson
	Rotation   geometry4D.Mat4
	Projection geometry4D.Stereographic
	Display    geometry4D.Mat3
}

// PointGrids holds the index-aligned sampled fields. Matrices are padded
// with Halo ghost columns on each side of the u axis; Core trims a padded
// field back to Nu x Nv. Downstream components read, never write.
type PointGrids struct {
	Spec Spec
	// X4 is the rotated 4D point field, one matrix per component.
	X4 [4]utils.Matrix
	// P3 is the projected (and display-rotated) 3D point field.
	P3 [3]utils.Matrix
	// Scale is the analytic conformal factor 1/(1-w) of the projection.
	Scale utils.Matrix
	// U, V are the core parameter axes.
	U, V utils.Vector
}

// NewSampler builds a sampler with the fixed default collaborators: the
// half-twist Lawson map, the pole-avoidance rotation and the display
// rotation. Invalid specs and non-orthogonal rotations are fatal here,
// before any curvature computation can run.
func NewSampler(spec Spec) (sm *Sampler) {
	if err := spec.Validate(); err != nil {
		panic(err)
	}
	sm = &Sampler{
		Spec:       spec,
		Surface:    surface.NewLawson(),
		Rotation:   geometry4D.PoleRotation().MustOrthogonal(utils.NODETOL),
		Projection: geometry4D.NewStereographic(),
		Display:    geometry4D.DisplayRotation(),
	}
	return
}

// Sample evaluates every field over the padded grid. Ghost columns are
// filled through the seam policy: the deck identification makes the copied
// sample exactly equal to evaluating the map beyond the domain edge.
func (sm *Sampler) Sample() (pg *PointGrids) {
	var (
		spec   = sm.Spec
		du, dv = spec.Du(), spec.Dv()
		nrPad  = spec.Nu + 2*Halo
		idx    = SeamIndex{Nu: spec.Nu, Nv: spec.Nv}
	)
	// The ghost copies rely on the closure r(u+2pi,v) = r(u,-v), which only
	// holds for half-odd-integer twists; anything else leaves an open seam.
	if math.Abs(math.Mod(math.Abs(2*sm.Surface.Twist), 2)-1) > utils.NODETOL {
		err := fmt.Errorf("twist %v does not close the strip over one traversal", sm.Surface.Twist)
		panic(err)
	}
	pg = &PointGrids{
		Spec:  spec,
		Scale: utils.NewMatrix(nrPad, spec.Nv),
		U:     spec.U(),
		V:     spec.V(),
	}
	for k := 0; k < 4; k++ {
		pg.X4[k] = utils.NewMatrix(nrPad, spec.Nv)
	}
	for k := 0; k < 3; k++ {
		pg.P3[k] = utils.NewMatrix(nrPad, spec.Nv)
	}
	for i := 0; i < spec.Nu; i++ {
		u := spec.UMin + float64(i)*du
		for j := 0; j < spec.Nv; j++ {
			v := spec.VMin + float64(j)*dv
			x := sm.Surface.At(u, v)
			surface.MustUnit(x, u, v)
			xr := sm.Rotation.MulVec(x)
			c, scale := sm.Projection.Project(xr)
			cd := sm.Display.MulVec(c)
			for k := 0; k < 4; k++ {
				pg.X4[k].Set(i+Halo, j, xr[k])
			}
			for k := 0; k < 3; k++ {
				pg.P3[k].Set(i+Halo, j, cd[k])
			}
			pg.Scale.Set(i+Halo, j, scale)
		}
	}
	// Ghost columns: logical u indexes -Halo..-1 and Nu..Nu+Halo-1
	for _, i := range ghostRange(spec.Nu) {
		for j := 0; j < spec.Nv; j++ {
			iw, jw := idx.Neighbor(i, j)
			for k := 0; k < 4; k++ {
				pg.X4[k].Set(i+Halo, j, pg.X4[k].At(iw+Halo, jw))
			}
			for k := 0; k < 3; k++ {
				pg.P3[k].Set(i+Halo, j, pg.P3[k].At(iw+Halo, jw))
			}
			pg.Scale.Set(i+Halo, j, pg.Scale.At(iw+Halo, jw))
		}
	}
	return
}

func ghostRange(nu int) (is []int) {
	for p := 1; p <= Halo; p++ {
		is = append(is, -p, nu+p-1)
	}
	return
}

// Core trims a padded field to the Nu x Nv samples of the parameter grid.
func (pg *PointGrids) Core(m utils.Matrix) utils.Matrix {
	return m.Slice(Halo, Halo+pg.Spec.Nu, 0, pg.Spec.Nv)
}

// Points3 returns the core 3D point grid for the rendering layer.
func (pg *PointGrids) Points3() (P [3]utils.Matrix) {
	for k := 0; k < 3; k++ {
		P[k] = pg.Core(pg.P3[k])
	}
	return
}
