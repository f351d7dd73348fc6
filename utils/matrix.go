package utils

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

// Matrix is a dense 2D scalar field indexed (i,j) over the sampling grid.
// Fields produced by the pipeline are marked read-only once written.
type Matrix struct {
	M        *mat.Dense
	readOnly bool
	name     string
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	var m *mat.Dense
	if len(dataO) != 0 {
		if len(dataO[0]) != nr*nc {
			err := fmt.Errorf("mismatch in allocation: NewMatrix nr,nc = %v,%v, len(data[0]) = %v\n", nr, nc, len(dataO[0]))
			panic(err)
		}
		m = mat.NewDense(nr, nc, dataO[0])
	} else {
		m = mat.NewDense(nr, nc, make([]float64, nr*nc))
	}
	R = Matrix{
		m,
		false,
		"unnamed - hint: pass a variable name to SetReadOnly()",
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m Matrix) Dims() (r, c int)          { return m.M.Dims() }
func (m Matrix) At(i, j int) float64       { return m.M.At(i, j) }
func (m Matrix) T() mat.Matrix             { return m.M.T() }
func (m Matrix) RawMatrix() blas64.General { return m.M.RawMatrix() }

func (m *Matrix) SetReadOnly(name ...string) Matrix {
	if len(name) != 0 {
		m.name = name[0]
	}
	m.readOnly = true
	return *m
}

func (m *Matrix) SetWritable() Matrix {
	m.readOnly = false
	return *m
}

func (m Matrix) Copy() (R Matrix) { // Does not change receiver
	var (
		data   = m.M.RawMatrix().Data
		nr, nc = m.Dims()
		dataR  = make([]float64, nr*nc)
	)
	copy(dataR, data)
	R = NewMatrix(nr, nc, dataR)
	return
}

// Slice returns rows [I,K) and columns [J,L) as a new Matrix.
func (m Matrix) Slice(I, K, J, L int) (R Matrix) { // Does not change receiver
	var (
		nrR = K - I
		ncR = L - J
	)
	R = NewMatrix(nrR, ncR)
	for i := I; i < K; i++ {
		for j := J; j < L; j++ {
			R.M.Set(i-I, j-J, m.M.At(i, j))
		}
	}
	return
}

func (m Matrix) Set(i, j int, val float64) Matrix { // Changes receiver
	m.checkWritable()
	m.M.Set(i, j, val)
	return m
}

func (m Matrix) Scale(a float64) Matrix { // Changes receiver
	m.checkWritable()
	var (
		data = m.RawMatrix().Data
	)
	for i := range data {
		data[i] *= a
	}
	return m
}

func (m Matrix) AddScalar(a float64) Matrix { // Changes receiver
	m.checkWritable()
	var (
		data = m.RawMatrix().Data
	)
	for i := range data {
		data[i] += a
	}
	return m
}

func (m Matrix) Add(A Matrix) Matrix { // Changes receiver
	m.checkWritable()
	var (
		data  = m.RawMatrix().Data
		dataA = A.RawMatrix().Data
	)
	for i := range data {
		data[i] += dataA[i]
	}
	return m
}

func (m Matrix) Subtract(A Matrix) Matrix { // Changes receiver
	m.checkWritable()
	var (
		data  = m.RawMatrix().Data
		dataA = A.RawMatrix().Data
	)
	for i := range data {
		data[i] -= dataA[i]
	}
	return m
}

func (m Matrix) Apply(f func(float64) float64) Matrix { // Changes receiver
	m.checkWritable()
	var (
		data = m.RawMatrix().Data
	)
	for i, val := range data {
		data[i] = f(val)
	}
	return m
}

func (m Matrix) Apply2(A Matrix, f func(float64, float64) float64) Matrix { // Changes receiver
	m.checkWritable()
	var (
		data  = m.RawMatrix().Data
		dataA = A.RawMatrix().Data
	)
	for i, val := range data {
		data[i] = f(val, dataA[i])
	}
	return m
}

func (m Matrix) POW(p int) Matrix { // Changes receiver
	m.checkWritable()
	var (
		data = m.RawMatrix().Data
	)
	for i, val := range data {
		data[i] = POW(val, p)
	}
	return m
}

func (m Matrix) ElMul(A Matrix) Matrix { // Changes receiver
	m.checkWritable()
	var (
		data  = m.RawMatrix().Data
		dataA = A.RawMatrix().Data
	)
	for i := range data {
		data[i] *= dataA[i]
	}
	return m
}

// Min returns the smallest finite entry. Non-finite entries mark cells where
// the field is undefined and are skipped.
func (m Matrix) Min() (min float64) {
	var (
		data = m.RawMatrix().Data
	)
	min = math.Inf(1)
	for _, val := range data {
		if !isFinite(val) {
			continue
		}
		if val < min {
			min = val
		}
	}
	return
}

// Max returns the largest finite entry, skipping undefined cells.
func (m Matrix) Max() (max float64) {
	var (
		data = m.RawMatrix().Data
	)
	max = math.Inf(-1)
	for _, val := range data {
		if !isFinite(val) {
			continue
		}
		if val > max {
			max = val
		}
	}
	return
}

// Mean returns the arithmetic mean of the finite entries.
func (m Matrix) Mean() (mean float64) {
	var (
		data = m.RawMatrix().Data
		n    int
	)
	for _, val := range data {
		if !isFinite(val) {
			continue
		}
		mean += val
		n++
	}
	if n != 0 {
		mean /= float64(n)
	}
	return
}

// NumNonFinite counts undefined (NaN/Inf sentinel) cells.
func (m Matrix) NumNonFinite() (n int) {
	var (
		data = m.RawMatrix().Data
	)
	for _, val := range data {
		if !isFinite(val) {
			n++
		}
	}
	return
}

func (m Matrix) checkWritable() {
	if m.readOnly {
		err := fmt.Errorf("attempt to write to a read only matrix named: \"%v\"", m.name)
		panic(err)
	}
}

func isFinite(val float64) bool {
	return !math.IsNaN(val) && !math.IsInf(val, 0)
}
