package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestNewBlockPermutation(t *testing.T) {
	// rows 1..4 hold two points with two DOFs each, the points are swapped
	P := NewBlockPermutation(6, 1, 2, []int{1, 0})
	assert.True(t, mat.Equal(mat.NewDense(6, 6, []float64{
		1, 0, 0, 0, 0, 0,
		0, 0, 0, 1, 0, 0,
		0, 0, 0, 0, 1, 0,
		0, 1, 0, 0, 0, 0,
		0, 0, 1, 0, 0, 0,
		0, 0, 0, 0, 0, 1,
	}), P))
	assert.True(t, mat.Equal(NewIdentityCSR(6), MulCSR(P, P)))
	assert.Panics(t, func() { NewBlockPermutation(4, 1, 2, []int{1, 0}) })
}

func TestNewBlockEmbedding(t *testing.T) {
	var (
		B = mat.NewDense(2, 2, []float64{-1, 1, -1, 0})
		E = NewBlockEmbedding(4, 1, B)
	)
	assert.True(t, mat.Equal(mat.NewDense(4, 4, []float64{
		1, 0, 0, 0,
		0, -1, 1, 0,
		0, -1, 0, 0,
		0, 0, 0, 1,
	}), E))
	// the tangent rotation has order three
	assert.True(t, mat.Equal(NewIdentityCSR(4), MulCSR(E, MulCSR(E, E))))
	assert.Panics(t, func() { NewBlockEmbedding(3, 0, mat.NewDense(2, 3, nil)) })
	assert.Panics(t, func() { NewBlockEmbedding(2, 1, B) })
}

func TestCopyCSR(t *testing.T) {
	var (
		A = NewBlockEmbedding(3, 0, mat.NewDense(2, 2, []float64{0, 2, 3, 0}))
		C = CopyCSR(A)
	)
	assert.True(t, mat.Equal(A, C))
	assert.NotSame(t, A, C)
	assert.Equal(t, A.NNZ(), C.NNZ())
}
