package element

import (
	"fmt"
	"log/slog"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gotab/cell"
	"github.com/notargets/gotab/polyset"
	"github.com/notargets/gotab/quadrature"
)

// family supplies the pieces that distinguish one element family from
// another, the assembly around them is shared
type family interface {
	valueShape(ct cell.Type) []int
	// span returns the coefficients of a basis of the element's polynomial
	// space over the expansion set
	span(ct cell.Type, degree int) (*mat.Dense, error)
	dual(ct cell.Type, degree int) (*mat.Dense, error)
	entityDofs(ct cell.Type, degree int) [][]int
	basePermutations(ct cell.Type, degree int, layout dofLayout) (perms []*sparse.CSR, complete bool)
}

func checkVectorCell(ct cell.Type, degree int) error {
	if ct != cell.Triangle && ct != cell.Tetrahedron {
		return fmt.Errorf("%w: %s, need triangle or tetrahedron", ErrInvalidCellType, ct)
	}
	if degree < 1 {
		return fmt.Errorf("%w: %d, need at least 1", ErrInvalidDegree, degree)
	}
	return nil
}

func construct(f family, ct cell.Type, degree int, name string) (fe *FiniteElement, dual *mat.Dense, err error) {
	var wcoeffs *mat.Dense
	if wcoeffs, err = f.span(ct, degree); err != nil {
		return
	}
	if dual, err = f.dual(ct, degree); err != nil {
		return
	}
	layout := newDofLayout(f.entityDofs(ct, degree))
	if dr, _ := dual.Dims(); dr != layout.ndofs {
		err = fmt.Errorf("%w: %d dual functionals for %d entity DOFs", ErrShapeMismatch, dr, layout.ndofs)
		return
	}
	var coeffs *mat.Dense
	if coeffs, err = ComputeExpansionCoefficients(wcoeffs, dual); err != nil {
		return
	}
	fe = &FiniteElement{
		name:       name,
		cellType:   ct,
		degree:     degree,
		valueShape: f.valueShape(ct),
		coeffs:     coeffs,
		entityDofs: layout.entityDofs,
	}
	fe.basePerms, fe.permsComplete = f.basePermutations(ct, degree, layout)
	if !fe.permsComplete {
		slog.Warn("base permutations incomplete, face generators left as identity",
			"element", name, "cell", ct.String(), "degree", degree)
	}
	return
}

// stack concatenates row blocks with matching column counts
func stack(blocks ...*mat.Dense) (S *mat.Dense) {
	var nr, nc int
	for _, B := range blocks {
		r, c := B.Dims()
		nr += r
		nc = c
	}
	S = mat.NewDense(nr, nc, nil)
	var row int
	for _, B := range blocks {
		r, _ := B.Dims()
		if r == 0 {
			continue
		}
		S.Slice(row, row+r, 0, nc).(*mat.Dense).Copy(B)
		row += r
	}
	return
}

// quadratureTable is a rule exact for the span completion integrals, which
// have degree 2k, with the expansion set of degree k tabulated at its points
type quadratureTable struct {
	Q quadrature.Rule
	P *mat.Dense
}

func newQuadratureTable(ct cell.Type, k int) (qt quadratureTable, err error) {
	if qt.Q, err = quadrature.MakeQuadrature(ct, 2*k); err != nil {
		return
	}
	var tabs []*mat.Dense
	if tabs, err = polyset.Tabulate(ct, k, 0, qt.Q.Points); err != nil {
		return
	}
	qt.P = tabs[0]
	return
}

// product is the integral of p_a x_d p_b
func (qt quadratureTable) product(a, d, b int) (sum float64) {
	for q, w := range qt.Q.Weights {
		sum += w * qt.P.At(q, a) * qt.Q.Points.At(q, d) * qt.P.At(q, b)
	}
	return
}

// dualQuadratureDegree is the quadrature degree used for moments
func dualQuadratureDegree(degree int) int { return 5 * degree }
