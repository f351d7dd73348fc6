package utils

import (
	"math"
)

// POW computes x^pp for small integer exponents without calling math.Pow.
func POW(x float64, pp int) (y float64) {
	var (
		p       = pp
		flipped bool
	)
	if pp > 4 || pp < -4 {
		goto MATHPOW
	}
	if p < 0 {
		p = -pp
		flipped = true
	}
	switch p {
	case 0:
		y = 1
	case 1:
		y = x
	case 2:
		y = x * x
	case 3:
		y = x * x * x
	case 4:
		y = x * x
		y = y * y
	}
	if flipped {
		y = 1 / y
	}
	return
MATHPOW:
	y = math.Pow(x, float64(pp))
	return
}
