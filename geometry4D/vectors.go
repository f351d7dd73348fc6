package geometry4D

import (
	"math"
)

type Vec4 [4]float64

type Vec3 [3]float64

func (a Vec4) Dot(b Vec4) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3]
}

func (a Vec4) Norm() float64 { return math.Sqrt(a.Dot(a)) }

func (a Vec4) Scale(s float64) Vec4 {
	return Vec4{s * a[0], s * a[1], s * a[2], s * a[3]}
}

func (a Vec4) Normalize() (n Vec4) {
	l := a.Norm()
	if l < degenTol {
		return Vec4{nan, nan, nan, nan}
	}
	return a.Scale(1 / l)
}

func (a Vec3) Dot(b Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func (a Vec3) Norm() float64 { return math.Sqrt(a.Dot(a)) }

func (a Vec3) Scale(s float64) Vec3 {
	return Vec3{s * a[0], s * a[1], s * a[2]}
}

func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Normalize returns the unit vector, or NaN components when the input is too
// short to carry a direction. Degenerate cells surface as NaN in the fields
// built from the result.
func (a Vec3) Normalize() (n Vec3) {
	l := a.Norm()
	if l < degenTol {
		return Vec3{nan, nan, nan}
	}
	return a.Scale(1 / l)
}

// Cross4 is the 4D vector triple product: the unique (up to sign) vector
// orthogonal to a, b and c, by cofactor expansion along the first row of
// the 4x4 determinant [e; a; b; c].
func Cross4(a, b, c Vec4) (n Vec4) {
	n[0] = det3(
		a[1], a[2], a[3],
		b[1], b[2], b[3],
		c[1], c[2], c[3])
	n[1] = -det3(
		a[0], a[2], a[3],
		b[0], b[2], b[3],
		c[0], c[2], c[3])
	n[2] = det3(
		a[0], a[1], a[3],
		b[0], b[1], b[3],
		c[0], c[1], c[3])
	n[3] = -det3(
		a[0], a[1], a[2],
		b[0], b[1], b[2],
		c[0], c[1], c[2])
	return
}

func det3(a0, a1, a2, b0, b1, b2, c0, c1, c2 float64) float64 {
	return a0*(b1*c2-b2*c1) - a1*(b0*c2-b2*c0) + a2*(b0*c1-b1*c0)
}

var nan = math.NaN()

const degenTol = 1.e-12
