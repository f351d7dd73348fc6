package geometry4D

import (
	"fmt"
	"math"
)

// Mat4 is a 4x4 transform stored row-major.
type Mat4 [4][4]float64

// Mat3 is a 3x3 transform stored row-major.
type Mat3 [3][3]float64

func (m Mat4) MulVec(v Vec4) (r Vec4) {
	for i := 0; i < 4; i++ {
		r[i] = m[i][0]*v[0] + m[i][1]*v[1] + m[i][2]*v[2] + m[i][3]*v[3]
	}
	return
}

func (m Mat3) MulVec(v Vec3) (r Vec3) {
	for i := 0; i < 3; i++ {
		r[i] = m[i][0]*v[0] + m[i][1]*v[1] + m[i][2]*v[2]
	}
	return
}

// IsOrthogonal verifies M*Mt = I within tol. Rotations used ahead of the
// projection must preserve norms, otherwise every downstream metric quantity
// is silently wrong.
func (m Mat4) IsOrthogonal(tol float64) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var dot float64
			for k := 0; k < 4; k++ {
				dot += m[i][k] * m[j][k]
			}
			want := 0.
			if i == j {
				want = 1.
			}
			if math.Abs(dot-want) > tol {
				return false
			}
		}
	}
	return true
}

func (m Mat3) IsOrthogonal(tol float64) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var dot float64
			for k := 0; k < 3; k++ {
				dot += m[i][k] * m[j][k]
			}
			want := 0.
			if i == j {
				want = 1.
			}
			if math.Abs(dot-want) > tol {
				return false
			}
		}
	}
	return true
}

// MustOrthogonal panics when the transform fails the orthogonality check.
// Called once at pipeline construction, before any sampling happens.
func (m Mat4) MustOrthogonal(tol float64) Mat4 {
	if !m.IsOrthogonal(tol) {
		err := fmt.Errorf("4D rotation is not orthogonal within %v: %v", tol, m)
		panic(err)
	}
	return m
}

// PoleRotation is the fixed orthogonal transform that moves every sampled
// point of the strip away from the projection pole (0,0,0,1). With this
// rotation the minimum of (1-w) over the default grid is about 0.23.
func PoleRotation() Mat4 {
	return Mat4{
		{0.5, -0.5, -0.5, -0.5},
		{0.5, 0.5, -0.5, 0.5},
		{0.5, 0.5, 0.5, -0.5},
		{0.5, -0.5, 0.5, 0.5},
	}
}

// DisplayRotation orients the projected strip for viewing. Being orthogonal
// in R3 it changes no first or second fundamental form quantity.
func DisplayRotation() Mat3 {
	var (
		s = math.Sqrt2 / 2
	)
	return Mat3{
		{1, 0, 0},
		{0, s, -s},
		{0, s, s},
	}
}
