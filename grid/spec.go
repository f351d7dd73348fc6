// Package grid builds the uniform parameter grid for the strip and samples
// the embedding and its projection over it. The u direction is periodic
// through the deck identification (u+2pi, v) ~ (u, -v); the v direction is
// open with its endpoints included.
package grid

import (
	"fmt"
	"math"

	"github.com/chosler/mobius4d/utils"
)

// Halo is the number of ghost columns added on each side of the u axis so
// that second derivatives at the seam can use purely central stencils.
const Halo = 2

// Spec fixes the parameter domain and resolution. It is an immutable value
// handed to the sampler, never package state.
type Spec struct {
	Nu, Nv     int
	UMin, UMax float64
	VMin, VMax float64
}

// DefaultSpec covers one traversal of the strip at the resolution used for
// the reference visualization.
func DefaultSpec() Spec {
	return Spec{
		Nu:   200,
		Nv:   50,
		UMin: 0,
		UMax: 2 * math.Pi,
		VMin: -math.Pi / 2,
		VMax: math.Pi / 2,
	}
}

// Du is the periodic step; the sample at UMax is identified with UMin and
// not stored.
func (s Spec) Du() float64 { return (s.UMax - s.UMin) / float64(s.Nu) }

// Dv is the open-direction step; both endpoints are stored.
func (s Spec) Dv() float64 { return (s.VMax - s.VMin) / float64(s.Nv-1) }

// Validate rejects grids the finite-difference stencils cannot handle. The
// wraparound identification pairs v with -v, so the v range must be
// symmetric about zero for seam copies to land on stored samples.
func (s Spec) Validate() error {
	if s.Nu < 3 || s.Nv < 3 {
		return fmt.Errorf("grid too small for difference stencils: Nu=%d, Nv=%d, need at least 3", s.Nu, s.Nv)
	}
	if s.UMax <= s.UMin || s.VMax <= s.VMin {
		return fmt.Errorf("empty parameter domain: u=[%v,%v), v=[%v,%v]", s.UMin, s.UMax, s.VMin, s.VMax)
	}
	if math.Abs(s.VMin+s.VMax) > utils.NODETOL {
		return fmt.Errorf("v range must be symmetric about 0 for the seam identification, got [%v,%v]", s.VMin, s.VMax)
	}
	if math.Abs(s.UMax-s.UMin-2*math.Pi) > utils.NODETOL {
		return fmt.Errorf("u range must span one full traversal (2pi), got [%v,%v)", s.UMin, s.UMax)
	}
	return nil
}

// U returns the periodic parameter axis, endpoint excluded.
func (s Spec) U() utils.Vector { return utils.NewVectorPeriodic(s.Nu, s.UMin, s.UMax) }

// V returns the open parameter axis, endpoints included.
func (s Spec) V() utils.Vector { return utils.NewVectorLinspace(s.Nv, s.VMin, s.VMax) }
