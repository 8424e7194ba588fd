package element

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gotab/cell"
	"github.com/notargets/gotab/polyset"
	"github.com/notargets/gotab/utils"
)

type discontinuousLagrange struct{}

// CreateDLagrange is the discontinuous Lagrange element on an equispaced
// lattice, the centroid for degree 0. Every DOF belongs to the interior.
func CreateDLagrange(ct cell.Type, degree int, name string) (fe *FiniteElement, err error) {
	if !ct.IsSimplex() || ct == cell.Point {
		err = fmt.Errorf("%w: %s, need interval, triangle or tetrahedron", ErrInvalidCellType, ct)
		return
	}
	if degree < 0 {
		err = fmt.Errorf("%w: %d, need at least 0", ErrInvalidDegree, degree)
		return
	}
	fe, _, err = construct(discontinuousLagrange{}, ct, degree, name)
	return
}

func (discontinuousLagrange) valueShape(cell.Type) []int { return []int{} }

func (discontinuousLagrange) span(ct cell.Type, degree int) (*mat.Dense, error) {
	return utils.NewIdentity(polyset.Dim(ct, degree)), nil
}

func (discontinuousLagrange) dual(ct cell.Type, degree int) (D *mat.Dense, err error) {
	var tabs []*mat.Dense
	if tabs, err = polyset.Tabulate(ct, degree, 0, LatticePoints(ct, degree)); err != nil {
		return
	}
	D = tabs[0]
	return
}

func (discontinuousLagrange) entityDofs(ct cell.Type, degree int) (ed [][]int) {
	ed = uniformDofs(ct)
	ed[cell.TopologicalDimension(ct)][0] = polyset.Dim(ct, degree)
	return
}

func (discontinuousLagrange) basePermutations(ct cell.Type, _ int, layout dofLayout) ([]*sparse.CSR, bool) {
	return baseGenerators(ct, layout, nil, nil, nil), true
}

// LatticePoints is the equispaced lattice of a simplex, x fastest then y then
// z. Degree 0 gives the centroid.
func LatticePoints(ct cell.Type, degree int) (X *mat.Dense) {
	var (
		tdim = cell.TopologicalDimension(ct)
		np   = polyset.Dim(ct, degree)
		d    = float64(degree)
	)
	X = mat.NewDense(np, tdim, nil)
	if degree == 0 {
		for k := 0; k < tdim; k++ {
			X.Set(0, k, 1/float64(tdim+1))
		}
		return
	}
	var c int
	switch tdim {
	case 1:
		for i := 0; i <= degree; i++ {
			X.Set(c, 0, float64(i)/d)
			c++
		}
	case 2:
		for j := 0; j <= degree; j++ {
			for i := 0; i <= degree-j; i++ {
				X.SetRow(c, []float64{float64(i) / d, float64(j) / d})
				c++
			}
		}
	case 3:
		for k := 0; k <= degree; k++ {
			for j := 0; j <= degree-k; j++ {
				for i := 0; i <= degree-j-k; i++ {
					X.SetRow(c, []float64{float64(i) / d, float64(j) / d, float64(k) / d})
					c++
				}
			}
		}
	}
	return
}
