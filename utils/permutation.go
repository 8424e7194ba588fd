package utils

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

// Signed permutation matrices are mostly identity, so they are assembled in a
// DOK and carried around as CSR

func NewIdentityCSR(n int) *sparse.CSR {
	dok := sparse.NewDOK(n, n)
	for i := 0; i < n; i++ {
		dok.Set(i, i, 1)
	}
	return dok.ToCSR()
}

// NewBlockPermutation returns the n x n matrix that is the identity outside of
// rows [start, start+block*len(perm)). Inside that range the block DOFs of
// point p are taken from the block DOFs of point perm[p].
func NewBlockPermutation(n, start, block int, perm []int) *sparse.CSR {
	var (
		end = start + block*len(perm)
	)
	if start < 0 || end > n {
		panic(fmt.Errorf("permutation range [%d, %d) exceeds dimension %d", start, end, n))
	}
	dok := sparse.NewDOK(n, n)
	for i := 0; i < start; i++ {
		dok.Set(i, i, 1)
	}
	for p, q := range perm {
		for b := 0; b < block; b++ {
			dok.Set(start+block*p+b, start+block*q+b, 1)
		}
	}
	for i := end; i < n; i++ {
		dok.Set(i, i, 1)
	}
	return dok.ToCSR()
}

// NewBlockEmbedding returns the n x n identity with the square matrix B
// replacing the diagonal block that starts at (start, start)
func NewBlockEmbedding(n, start int, B mat.Matrix) *sparse.CSR {
	var (
		nb, ncb = B.Dims()
		end     = start + nb
	)
	if nb != ncb {
		panic(fmt.Errorf("embedded block must be square, have %dx%d", nb, ncb))
	}
	if start < 0 || end > n {
		panic(fmt.Errorf("block range [%d, %d) exceeds dimension %d", start, end, n))
	}
	dok := sparse.NewDOK(n, n)
	for i := 0; i < n; i++ {
		if i < start || i >= end {
			dok.Set(i, i, 1)
		}
	}
	for i := 0; i < nb; i++ {
		for j := 0; j < nb; j++ {
			if v := B.At(i, j); v != 0 {
				dok.Set(start+i, start+j, v)
			}
		}
	}
	return dok.ToCSR()
}

// MulCSR returns the product A*B without changing either operand
func MulCSR(A, B *sparse.CSR) (C *sparse.CSR) {
	var (
		nr, _ = A.Dims()
		_, nc = B.Dims()
	)
	C = sparse.NewCSR(nr, nc, nil, nil, nil)
	C.Mul(A, B)
	return
}

func CopyCSR(A *sparse.CSR) *sparse.CSR {
	var (
		nr, nc = A.Dims()
	)
	dok := sparse.NewDOK(nr, nc)
	A.DoNonZero(func(i, j int, v float64) {
		dok.Set(i, j, v)
	})
	return dok.ToCSR()
}
