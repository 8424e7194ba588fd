package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestIsNan(t *testing.T) {
	assert.False(t, IsNan(1.))
	assert.True(t, IsNan([]float64{0, math.Inf(1)}))
	assert.True(t, IsNan(mat.NewDense(1, 2, []float64{0, math.NaN()})))
	assert.False(t, IsNan("not a number"))
}

func TestGetMemUsage(t *testing.T) {
	assert.Contains(t, GetMemUsage(), "MiB")
}
