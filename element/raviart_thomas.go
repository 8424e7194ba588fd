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

// raviartThomas is the H(div) element RT of degree k, P_{k-1}^d completed by
// p r for p homogeneous of degree k-1
type raviartThomas struct{}

func CreateRT(ct cell.Type, degree int, name string) (fe *FiniteElement, err error) {
	if err = checkVectorCell(ct, degree); err != nil {
		return
	}
	fe, _, err = construct(raviartThomas{}, ct, degree, name)
	return
}

func (raviartThomas) valueShape(ct cell.Type) []int {
	return []int{cell.TopologicalDimension(ct)}
}

func facetType(ct cell.Type) cell.Type {
	if ct == cell.Tetrahedron {
		return cell.Triangle
	}
	return cell.Interval
}

func (raviartThomas) span(ct cell.Type, k int) (W *mat.Dense, err error) {
	var Q quadratureTable
	if Q, err = newQuadratureTable(ct, k); err != nil {
		return
	}
	var (
		tdim  = cell.TopologicalDimension(ct)
		psize = polyset.Dim(ct, k)
		nv    = polyset.Dim(ct, k-1)
		ns0   = polyset.Dim(ct, k-2)
		ns    = polyset.Dim(facetType(ct), k-1)
	)
	W = mat.NewDense(nv*tdim+ns, psize*tdim, nil)
	for j := 0; j < tdim; j++ {
		utils.SetBlock(W, nv*j, psize*j, utils.NewIdentity(nv))
	}
	for i := 0; i < ns; i++ {
		for j := 0; j < tdim; j++ {
			for m := 0; m < psize; m++ {
				W.Set(nv*tdim+i, m+psize*j, Q.product(ns0+i, j, m))
			}
		}
	}
	return
}

func (raviartThomas) dual(ct cell.Type, k int) (D *mat.Dense, err error) {
	var (
		tdim   = cell.TopologicalDimension(ct)
		qdeg   = dualQuadratureDegree(k)
		blocks []*mat.Dense
		B      *mat.Dense
		aux    *FiniteElement
	)
	if aux, err = CreateDLagrange(facetType(ct), k-1, "DG"); err != nil {
		return
	}
	if B, err = moments.MakeNormalIntegralMoments(aux, ct, tdim, k, qdeg); err != nil {
		return
	}
	blocks = append(blocks, B)
	if k > 1 {
		if aux, err = CreateDLagrange(ct, k-2, "DG"); err != nil {
			return
		}
		if B, err = moments.MakeIntegralMoments(aux, ct, tdim, k, qdeg); err != nil {
			return
		}
		blocks = append(blocks, B)
	}
	D = stack(blocks...)
	return
}

func (raviartThomas) entityDofs(ct cell.Type, k int) [][]int {
	var (
		facet    = polyset.Dim(facetType(ct), k-1)
		interior = cell.TopologicalDimension(ct) * polyset.Dim(ct, k-2)
	)
	if ct == cell.Triangle {
		return uniformDofs(ct, 0, facet, interior)
	}
	return uniformDofs(ct, 0, 0, facet, interior)
}

func (raviartThomas) basePermutations(ct cell.Type, k int, layout dofLayout) ([]*sparse.CSR, bool) {
	// facet moments live on a lattice with k points per side
	if ct == cell.Triangle {
		edge := func(ndofs, start int) *sparse.CSR {
			return orient(ndofs, start, 1, dofperms.IntervalReflection(k), dofperms.NormalDirections(k, -1))
		}
		return baseGenerators(ct, layout, edge, nil, nil), true
	}
	size := dofperms.TriangleLatticeSize(k)
	rotation := func(ndofs, start int) *sparse.CSR {
		return orient(ndofs, start, 1, dofperms.TriangleRotation(k), dofperms.NormalDirections(size, 1))
	}
	reflection := func(ndofs, start int) *sparse.CSR {
		return orient(ndofs, start, 1, dofperms.TriangleReflection(k), dofperms.NormalDirections(size, -1))
	}
	return baseGenerators(ct, layout, nil, rotation, reflection), true
}
