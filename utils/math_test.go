package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPOW(t *testing.T) {
	for _, x := range []float64{-1.7, 0.3, 2} {
		for p := -10; p <= 10; p++ {
			assert.InDelta(t, math.Pow(x, float64(p)), POW(x, p), 1e-12*math.Max(1, math.Abs(math.Pow(x, float64(p)))))
		}
	}
}

func TestFactorialBinomial(t *testing.T) {
	assert.Equal(t, 1., Factorial(-1))
	assert.Equal(t, 1., Factorial(0))
	assert.Equal(t, 720., Factorial(6))
	assert.Equal(t, 0, Binomial(3, 4))
	assert.Equal(t, 0, Binomial(3, -1))
	assert.Equal(t, 1, Binomial(5, 0))
	assert.Equal(t, 10, Binomial(5, 2))
	assert.Equal(t, 56, Binomial(8, 3))
}
