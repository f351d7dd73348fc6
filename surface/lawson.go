// Package surface evaluates the Sudanese Mobius strip as a surface embedded
// in the unit 3-sphere, using Lawson's parameterization
//
//	r(u,v) = (cos v cos u, cos v sin u, sin v cos(t u), sin v sin(t u))
//
// with twist t = 1/2. The map satisfies r(u+2pi, v) = r(u, -v), so one
// traversal of u closes the strip only under the flip of v. That
// identification is what makes the surface one-sided.
package surface

import (
	"fmt"
	"math"

	"github.com/chosler/mobius4d/geometry4D"
	"github.com/chosler/mobius4d/utils"
)

// Lawson is the parametric map. It is a pure value; evaluation has no state.
type Lawson struct {
	Twist float64
}

// NewLawson returns the half-twist map that produces the Sudanese strip.
// Other twist values produce orientable tubes or multi-twist bands and are
// mostly useful in tests.
func NewLawson() Lawson {
	return Lawson{Twist: 0.5}
}

// At evaluates the embedding at (u,v). The result lies on the unit sphere in
// 4-space for every input.
func (s Lawson) At(u, v float64) (x geometry4D.Vec4) {
	var (
		su, cu = math.Sincos(u)
		sv, cv = math.Sincos(v)
		st, ct = math.Sincos(s.Twist * u)
	)
	x[0] = cv * cu
	x[1] = cv * su
	x[2] = sv * ct
	x[3] = sv * st
	return
}

// MustUnit panics when the embedded point drifts off the unit sphere beyond
// tolerance. That can only happen through a programming error in At, so it
// is a fatal precondition rather than a recoverable runtime case.
func MustUnit(x geometry4D.Vec4, u, v float64) {
	if math.Abs(x.Norm()-1) > utils.UNITTOL {
		err := fmt.Errorf("embedded point off the unit sphere at u=%v v=%v: |x|=%v", u, v, x.Norm())
		panic(err)
	}
}
