// Package element builds finite elements as coefficients over the orthonormal
// expansion set of the reference cell, together with the signed permutation
// generators that describe how the DOFs move under reorientation of the
// cell's sub entities.
package element

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gotab/cell"
	"github.com/notargets/gotab/polyset"
	"github.com/notargets/gotab/utils"
)

// FiniteElement is immutable once built, accessors hand out copies
type FiniteElement struct {
	name          string
	cellType      cell.Type
	degree        int
	valueShape    []int
	coeffs        *mat.Dense // ndofs x valueSize*psize
	entityDofs    [][]int
	basePerms     []*sparse.CSR
	permsComplete bool
}

func (fe *FiniteElement) Name() string        { return fe.name }
func (fe *FiniteElement) CellType() cell.Type { return fe.cellType }
func (fe *FiniteElement) Degree() int         { return fe.degree }

func (fe *FiniteElement) ValueShape() []int {
	return append([]int{}, fe.valueShape...)
}

func (fe *FiniteElement) ValueSize() (vs int) {
	vs = 1
	for _, s := range fe.valueShape {
		vs *= s
	}
	return
}

// Dim is the number of DOFs
func (fe *FiniteElement) Dim() int {
	r, _ := fe.coeffs.Dims()
	return r
}

func (fe *FiniteElement) Coefficients() *mat.Dense {
	return mat.DenseCopyOf(fe.coeffs)
}

// EntityDofs is the DOF count indexed by [dimension][entity]
func (fe *FiniteElement) EntityDofs() (ed [][]int) {
	ed = make([][]int, len(fe.entityDofs))
	for d := range fe.entityDofs {
		ed[d] = append([]int{}, fe.entityDofs[d]...)
	}
	return
}

// BasePermutations returns one generator per edge, then a rotation and a
// reflection per face of a tetrahedron
func (fe *FiniteElement) BasePermutations() (perms []*sparse.CSR) {
	perms = make([]*sparse.CSR, len(fe.basePerms))
	for i, P := range fe.basePerms {
		perms[i] = utils.CopyCSR(P)
	}
	return
}

// PermutationsComplete is false when some generators could not be expressed
// as signed permutations and were left as the identity
func (fe *FiniteElement) PermutationsComplete() bool { return fe.permsComplete }

// Tabulate evaluates the basis at the rows of pts. Table 0 holds values, the
// following tdim tables hold reference derivatives when nderiv is 1. Each
// table is npts x valueSize*Dim, component major.
func (fe *FiniteElement) Tabulate(nderiv int, pts mat.Matrix) (tables []*mat.Dense, err error) {
	var P []*mat.Dense
	if P, err = polyset.Tabulate(fe.cellType, fe.degree, nderiv, pts); err != nil {
		return
	}
	var (
		vs    = fe.ValueSize()
		ndofs = fe.Dim()
		psize = polyset.Dim(fe.cellType, fe.degree)
	)
	tables = make([]*mat.Dense, len(P))
	for i, T := range P {
		np, _ := T.Dims()
		if np == 0 {
			tables[i] = &mat.Dense{}
			continue
		}
		tables[i] = mat.NewDense(np, vs*ndofs, nil)
		for c := 0; c < vs; c++ {
			var (
				dst = tables[i].Slice(0, np, c*ndofs, (c+1)*ndofs).(*mat.Dense)
				Cc  = fe.coeffs.Slice(0, ndofs, c*psize, (c+1)*psize)
			)
			dst.Mul(T, Cc.T())
		}
	}
	return
}

// ApplyPermutation returns base permutation g applied to the DOF vector
func (fe *FiniteElement) ApplyPermutation(g int, dofs []float64) (out []float64, err error) {
	if g < 0 || g >= len(fe.basePerms) {
		err = fmt.Errorf("element: generator %d out of range [0, %d)", g, len(fe.basePerms))
		return
	}
	if len(dofs) != fe.Dim() {
		err = fmt.Errorf("%w: %d DOF values for a %d DOF element", ErrShapeMismatch, len(dofs), fe.Dim())
		return
	}
	out = make([]float64, len(dofs))
	fe.basePerms[g].DoNonZero(func(i, j int, v float64) {
		out[i] += v * dofs[j]
	})
	return
}

func (fe *FiniteElement) String() string {
	return fmt.Sprintf("%s(%s, %d)", fe.name, fe.cellType, fe.degree)
}
