package utils

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

func NewIdentity(n int) (I *mat.Dense) {
	return NewScaledIdentity(n, 1)
}

func NewScaledIdentity(n int, s float64) (I *mat.Dense) {
	if n == 0 {
		return &mat.Dense{}
	}
	I = mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		I.Set(i, i, s)
	}
	return
}

// SetBlock copies src into dst with the top left corner of src placed at (i, j)
func SetBlock(dst *mat.Dense, i, j int, src mat.Matrix) {
	var (
		nr, nc   = src.Dims()
		nrD, ncD = dst.Dims()
	)
	if nr == 0 || nc == 0 {
		return
	}
	if i < 0 || j < 0 || i+nr > nrD || j+nc > ncD {
		panic(fmt.Errorf("block [%d:%d, %d:%d] does not fit in a %dx%d matrix",
			i, i+nr, j, j+nc, nrD, ncD))
	}
	dst.Slice(i, i+nr, j, j+nc).(*mat.Dense).Copy(src)
}

// BlockDiagonal repeats block count times along the diagonal
func BlockDiagonal(block mat.Matrix, count int) (R *mat.Dense) {
	var (
		nr, nc = block.Dims()
	)
	if count == 0 {
		return &mat.Dense{}
	}
	R = mat.NewDense(nr*count, nc*count, nil)
	for n := 0; n < count; n++ {
		SetBlock(R, n*nr, n*nc, block)
	}
	return
}

// NewSymTriDiagonal builds the symmetric matrix with main diagonal d0 and
// first off diagonal d1, len(d1) must be len(d0)-1
func NewSymTriDiagonal(d0, d1 []float64) (T *mat.SymDense) {
	var (
		n = len(d0)
	)
	if len(d1) != n-1 && !(n == 0 && len(d1) == 0) {
		panic(fmt.Errorf("off diagonal length %d does not match diagonal length %d", len(d1), n))
	}
	T = mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		T.SetSym(i, i, d0[i])
		if i < n-1 {
			T.SetSym(i, i+1, d1[i])
		}
	}
	return
}
