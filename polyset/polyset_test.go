package polyset

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gotab/cell"
	"github.com/notargets/gotab/quadrature"
	"github.com/notargets/gotab/utils"
)

var simplices = []cell.Type{cell.Interval, cell.Triangle, cell.Tetrahedron}

func TestDim(t *testing.T) {
	assert.Equal(t, 0, Dim(cell.Triangle, -1))
	assert.Equal(t, 4, Dim(cell.Interval, 3))
	assert.Equal(t, 10, Dim(cell.Triangle, 3))
	assert.Equal(t, 20, Dim(cell.Tetrahedron, 3))
	assert.Panics(t, func() { Dim(cell.Quadrilateral, 1) })
	for n := 0; n < 8; n++ {
		assert.Equal(t, utils.Binomial(n+1, 1), Dim(cell.Interval, n))
		assert.Equal(t, utils.Binomial(n+2, 2), Dim(cell.Triangle, n))
		assert.Equal(t, utils.Binomial(n+3, 3), Dim(cell.Tetrahedron, n))
	}
}

func TestOrthonormality(t *testing.T) {
	for _, ct := range simplices {
		for degree := 0; degree <= 5; degree++ {
			t.Run(fmt.Sprintf("%s/%d", ct, degree), func(t *testing.T) {
				Q, err := quadrature.MakeQuadrature(ct, 2*degree)
				require.NoError(t, err)
				tabs, err := Tabulate(ct, degree, 0, Q.Points)
				require.NoError(t, err)
				require.Len(t, tabs, 1)
				var (
					P     = tabs[0]
					psize = Dim(ct, degree)
				)
				var WP, M mat.Dense
				WP.Apply(func(i, j int, v float64) float64 { return v * Q.Weights[i] }, P)
				M.Mul(P.T(), &WP)
				for i := 0; i < psize; i++ {
					for j := 0; j < psize; j++ {
						want := 0.
						if i == j {
							want = 1
						}
						assert.InDeltaf(t, want, M.At(i, j), 1e-11, "M[%d,%d]", i, j)
					}
				}
			})
		}
	}
}

// The first Dim(ct, 1) members are affine, so their second difference along
// a line vanishes
func TestDegreeOrdering(t *testing.T) {
	pts := mat.NewDense(3, 2, []float64{0.1, 0.2, 0.2, 0.25, 0.3, 0.3})
	tabs, err := Tabulate(cell.Triangle, 2, 0, pts)
	require.NoError(t, err)
	for n := 0; n < Dim(cell.Triangle, 1); n++ {
		d2 := tabs[0].At(0, n) - 2*tabs[0].At(1, n) + tabs[0].At(2, n)
		assert.InDelta(t, 0, d2, 1e-13)
	}
}

func TestDerivatives(t *testing.T) {
	const h = 1e-6
	samples := map[cell.Type][]float64{
		cell.Interval:    {0.3},
		cell.Triangle:    {0.21, 0.37},
		cell.Tetrahedron: {0.17, 0.23, 0.31},
	}
	for _, ct := range simplices {
		var (
			x0     = samples[ct]
			tdim   = len(x0)
			degree = 4
		)
		tabs, err := Tabulate(ct, degree, 1, mat.NewDense(1, tdim, x0))
		require.NoError(t, err)
		require.Len(t, tabs, tdim+1)
		for d := 0; d < tdim; d++ {
			xp := append([]float64(nil), x0...)
			xm := append([]float64(nil), x0...)
			xp[d] += h
			xm[d] -= h
			tp, err := Tabulate(ct, degree, 0, mat.NewDense(1, tdim, xp))
			require.NoError(t, err)
			tm, err := Tabulate(ct, degree, 0, mat.NewDense(1, tdim, xm))
			require.NoError(t, err)
			for n := 0; n < Dim(ct, degree); n++ {
				fd := (tp[0].At(0, n) - tm[0].At(0, n)) / (2 * h)
				assert.InDeltaf(t, fd, tabs[d+1].At(0, n), 1e-5, "%s member %d direction %d", ct, n, d)
			}
		}
	}
}

func TestTetrahedronBlockTail(t *testing.T) {
	pts := mat.NewDense(2, 3, []float64{0.1, 0.2, 0.3, 0.25, 0.15, 0.4})
	tabs, err := Tabulate(cell.Tetrahedron, 3, 1, pts)
	require.NoError(t, err)
	for n := 1; n <= 3; n++ {
		end := Dim(cell.Tetrahedron, n)
		for m := end - (n + 1); m < end; m++ {
			for p := 0; p < 2; p++ {
				assert.InDelta(t, 0, tabs[1].At(p, m), 1e-12)
			}
		}
	}
}

func TestTabulateFailures(t *testing.T) {
	pts := mat.NewDense(1, 2, []float64{0.2, 0.2})
	_, err := Tabulate(cell.Quadrilateral, 1, 0, pts)
	assert.ErrorIs(t, err, ErrUnsupportedCell)
	_, err = Tabulate(cell.Triangle, 1, 2, pts)
	assert.ErrorIs(t, err, ErrUnsupportedDerivative)
	_, err = Tabulate(cell.Tetrahedron, 1, 0, pts)
	assert.Error(t, err)
}
