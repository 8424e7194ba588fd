package element

import (
	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gotab/cell"
	"github.com/notargets/gotab/dofperms"
	"github.com/notargets/gotab/moments"
	"github.com/notargets/gotab/polyset"
	"github.com/notargets/gotab/utils"
)

// nedelecSecondKind is the H(curl) element N2curl of degree k, the full P_k^d
type nedelecSecondKind struct{}

func CreateNedelec2(ct cell.Type, degree int, name string) (fe *FiniteElement, err error) {
	if err = checkVectorCell(ct, degree); err != nil {
		return
	}
	fe, _, err = construct(nedelecSecondKind{}, ct, degree, name)
	return
}

func (nedelecSecondKind) valueShape(ct cell.Type) []int {
	return []int{cell.TopologicalDimension(ct)}
}

func (nedelecSecondKind) span(ct cell.Type, k int) (*mat.Dense, error) {
	return utils.NewIdentity(cell.TopologicalDimension(ct) * polyset.Dim(ct, k)), nil
}

func (nedelecSecondKind) dual(ct cell.Type, k int) (D *mat.Dense, err error) {
	var (
		tdim   = cell.TopologicalDimension(ct)
		qdeg   = dualQuadratureDegree(k)
		blocks []*mat.Dense
		B      *mat.Dense
		aux    *FiniteElement
	)
	if aux, err = CreateDLagrange(cell.Interval, k, "DG"); err != nil {
		return
	}
	if B, err = moments.MakeTangentIntegralMoments(aux, ct, tdim, k, qdeg); err != nil {
		return
	}
	blocks = append(blocks, B)
	if k > 1 {
		// interior of a triangle, faces of a tetrahedron
		if aux, err = CreateRT(cell.Triangle, k-1, "RT"); err != nil {
			return
		}
		if B, err = moments.MakeDotIntegralMoments(aux, ct, tdim, k, qdeg); err != nil {
			return
		}
		blocks = append(blocks, B)
	}
	if tdim == 3 && k > 2 {
		if aux, err = CreateRT(cell.Tetrahedron, k-2, "RT"); err != nil {
			return
		}
		if B, err = moments.MakeDotIntegralMoments(aux, ct, tdim, k, qdeg); err != nil {
			return
		}
		blocks = append(blocks, B)
	}
	D = stack(blocks...)
	return
}

func (nedelecSecondKind) entityDofs(ct cell.Type, k int) [][]int {
	if ct == cell.Triangle {
		return uniformDofs(ct, 0, k+1, (k-1)*(k+1))
	}
	return uniformDofs(ct, 0, k+1, (k-1)*(k+1), (k-2)*(k-1)*(k+1)/2)
}

// basePermutations reorients edges only. Face DOFs are moments against an RT
// basis, which does not transform as a signed permutation, so face
// generators stay the identity and the set is reported incomplete.
func (nedelecSecondKind) basePermutations(ct cell.Type, k int, layout dofLayout) ([]*sparse.CSR, bool) {
	edge := func(ndofs, start int) *sparse.CSR {
		return orient(ndofs, start, 1, dofperms.IntervalReflection(k+1),
			dofperms.IntervalReflectionTangentDirections(k+1))
	}
	complete := ct == cell.Triangle || k < 2
	return baseGenerators(ct, layout, edge, nil, nil), complete
}
