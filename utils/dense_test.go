package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestIdentity(t *testing.T) {
	assert.True(t, mat.Equal(mat.NewDense(2, 2, []float64{1, 0, 0, 1}), NewIdentity(2)))
	assert.True(t, mat.Equal(mat.NewDense(2, 2, []float64{-1, 0, 0, -1}), NewScaledIdentity(2, -1)))
	assert.True(t, NewIdentity(0).IsEmpty())
}

func TestSetBlock(t *testing.T) {
	var (
		A = mat.NewDense(3, 3, nil)
		B = mat.NewDense(2, 1, []float64{4, 5})
	)
	SetBlock(A, 1, 2, B)
	assert.True(t, mat.Equal(mat.NewDense(3, 3, []float64{
		0, 0, 0,
		0, 0, 4,
		0, 0, 5,
	}), A))
	assert.Panics(t, func() { SetBlock(A, 2, 2, B) })
	SetBlock(A, 3, 3, &mat.Dense{})
}

func TestBlockDiagonal(t *testing.T) {
	R := BlockDiagonal(mat.NewDense(2, 2, []float64{0, 1, 1, 0}), 2)
	assert.True(t, mat.Equal(mat.NewDense(4, 4, []float64{
		0, 1, 0, 0,
		1, 0, 0, 0,
		0, 0, 0, 1,
		0, 0, 1, 0,
	}), R))
	assert.True(t, BlockDiagonal(NewIdentity(2), 0).IsEmpty())
}

func TestNewSymTriDiagonal(t *testing.T) {
	T := NewSymTriDiagonal([]float64{1, 2, 3}, []float64{4, 5})
	assert.True(t, mat.Equal(mat.NewDense(3, 3, []float64{
		1, 4, 0,
		4, 2, 5,
		0, 5, 3,
	}), T))
	assert.Panics(t, func() { NewSymTriDiagonal([]float64{1, 2}, []float64{1, 2}) })
}
