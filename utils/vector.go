package utils

import (
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

// Vector holds a 1D coordinate axis.
type Vector struct {
	V *mat.VecDense
}

func NewVector(N int, dataO ...[]float64) (v Vector) {
	if len(dataO) != 0 {
		v = Vector{mat.NewVecDense(N, dataO[0])}
	} else {
		v = Vector{mat.NewVecDense(N, make([]float64, N))}
	}
	return
}

// NewVectorLinspace samples [min,max] inclusive at N uniformly spaced points.
func NewVectorLinspace(N int, min, max float64) (v Vector) {
	var (
		x = make([]float64, N)
		h = (max - min) / float64(N-1)
	)
	for i := range x {
		x[i] = min + float64(i)*h
	}
	x[N-1] = max
	return NewVector(N, x)
}

// NewVectorPeriodic samples [min,max) at N points, excluding the endpoint
// that the wraparound identifies with the start.
func NewVectorPeriodic(N int, min, max float64) (v Vector) {
	var (
		x = make([]float64, N)
		h = (max - min) / float64(N)
	)
	for i := range x {
		x[i] = min + float64(i)*h
	}
	return NewVector(N, x)
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (v Vector) Dims() (r, c int)         { return v.V.Dims() }
func (v Vector) At(i, j int) float64      { return v.V.At(i, j) }
func (v Vector) T() mat.Matrix            { return v.V.T() }
func (v Vector) AtVec(i int) float64      { return v.V.AtVec(i) }
func (v Vector) RawVector() blas64.Vector { return v.V.RawVector() }
func (v Vector) Len() int                 { return v.V.Len() }

func (v Vector) Min() (min float64) {
	var (
		data = v.V.RawVector().Data
	)
	min = data[0]
	for _, val := range data {
		if val < min {
			min = val
		}
	}
	return
}

func (v Vector) Max() (max float64) {
	var (
		data = v.V.RawVector().Data
	)
	max = data[0]
	for _, val := range data {
		if val > max {
			max = val
		}
	}
	return
}
