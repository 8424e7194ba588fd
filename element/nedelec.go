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

// nedelecFirstKind is the H(curl) element N1curl of degree k, P_{k-1}^d
// completed by the degree k fields p (r x e)
type nedelecFirstKind struct{}

func CreateNedelec(ct cell.Type, degree int, name string) (fe *FiniteElement, err error) {
	if err = checkVectorCell(ct, degree); err != nil {
		return
	}
	fe, _, err = construct(nedelecFirstKind{}, ct, degree, name)
	return
}

func (nedelecFirstKind) valueShape(ct cell.Type) []int {
	return []int{cell.TopologicalDimension(ct)}
}

func (nedelecFirstKind) span(ct cell.Type, k int) (W *mat.Dense, err error) {
	var Q quadratureTable
	if Q, err = newQuadratureTable(ct, k); err != nil {
		return
	}
	if ct == cell.Triangle {
		return nedelecSpan2D(Q, k), nil
	}
	return nedelecSpan3D(Q, k), nil
}

func nedelecSpan2D(Q quadratureTable, k int) (W *mat.Dense) {
	var (
		psize = polyset.Dim(cell.Triangle, k)
		nv    = polyset.Dim(cell.Triangle, k-1)
		ns0   = polyset.Dim(cell.Triangle, k-2)
		ns    = k
	)
	W = mat.NewDense(2*nv+ns, 2*psize, nil)
	utils.SetBlock(W, 0, 0, utils.NewIdentity(nv))
	utils.SetBlock(W, nv, psize, utils.NewIdentity(nv))
	// p (y, -x) for p homogeneous of degree k-1
	for i := 0; i < ns; i++ {
		for m := 0; m < psize; m++ {
			W.Set(2*nv+i, m, Q.product(ns0+i, 1, m))
			W.Set(2*nv+i, psize+m, -Q.product(ns0+i, 0, m))
		}
	}
	return
}

func nedelecSpan3D(Q quadratureTable, k int) (W *mat.Dense) {
	var (
		psize = polyset.Dim(cell.Tetrahedron, k)
		nv    = polyset.Dim(cell.Tetrahedron, k-1)
		ns0   = polyset.Dim(cell.Tetrahedron, k-2)
		ns    = k * (k + 1) / 2
		// the first family only keeps the members free of x, the rest are
		// combinations of the other two families
		nsr = k * (k - 1) / 2
	)
	W = mat.NewDense(3*nv+3*ns-nsr, 3*psize, nil)
	for c := 0; c < 3; c++ {
		utils.SetBlock(W, nv*c, psize*c, utils.NewIdentity(nv))
	}
	var (
		first  = 3 * nv
		second = 3*nv + ns - nsr
		third  = 3*nv + 2*ns - nsr
	)
	for i := 0; i < ns; i++ {
		for m := 0; m < psize; m++ {
			var (
				wx = Q.product(ns0+i, 0, m)
				wy = Q.product(ns0+i, 1, m)
				wz = Q.product(ns0+i, 2, m)
			)
			// p (0, -z, y)
			if i >= nsr {
				W.Set(first+i-nsr, psize+m, -wz)
				W.Set(first+i-nsr, 2*psize+m, wy)
			}
			// p (z, 0, -x)
			W.Set(second+i, m, wz)
			W.Set(second+i, 2*psize+m, -wx)
			// p (-y, x, 0)
			W.Set(third+i, m, -wy)
			W.Set(third+i, psize+m, wx)
		}
	}
	return
}

func (nedelecFirstKind) dual(ct cell.Type, k int) (D *mat.Dense, err error) {
	var (
		tdim   = cell.TopologicalDimension(ct)
		qdeg   = dualQuadratureDegree(k)
		blocks []*mat.Dense
		B      *mat.Dense
		aux    *FiniteElement
	)
	if aux, err = CreateDLagrange(cell.Interval, k-1, "DG"); err != nil {
		return
	}
	if B, err = moments.MakeTangentIntegralMoments(aux, ct, tdim, k, qdeg); err != nil {
		return
	}
	blocks = append(blocks, B)
	if k > 1 {
		// interior of a triangle, faces of a tetrahedron
		if aux, err = CreateDLagrange(cell.Triangle, k-2, "DG"); err != nil {
			return
		}
		if B, err = moments.MakeIntegralMoments(aux, ct, tdim, k, qdeg); err != nil {
			return
		}
		blocks = append(blocks, B)
	}
	if tdim == 3 && k > 2 {
		if aux, err = CreateDLagrange(cell.Tetrahedron, k-3, "DG"); err != nil {
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

func (nedelecFirstKind) entityDofs(ct cell.Type, k int) [][]int {
	if ct == cell.Triangle {
		return uniformDofs(ct, 0, k, k*(k-1))
	}
	return uniformDofs(ct, 0, k, k*(k-1), k*(k-1)*(k-2)/2)
}

func (nedelecFirstKind) basePermutations(ct cell.Type, k int, layout dofLayout) ([]*sparse.CSR, bool) {
	edge := func(ndofs, start int) *sparse.CSR {
		return orient(ndofs, start, 1, dofperms.IntervalReflection(k),
			dofperms.IntervalReflectionTangentDirections(k))
	}
	var rotation, reflection generatorFunc
	if ct == cell.Tetrahedron {
		// face DOFs are two tangential moments per point of a lattice with k-1 points per side
		n := k - 1
		rotation = func(ndofs, start int) *sparse.CSR {
			return orient(ndofs, start, 2, dofperms.TriangleRotation(n),
				dofperms.TriangleRotationTangentDirections(dofperms.TriangleLatticeSize(n)))
		}
		reflection = func(ndofs, start int) *sparse.CSR {
			return orient(ndofs, start, 2, dofperms.TriangleReflection(n),
				dofperms.TriangleReflectionTangentDirections(dofperms.TriangleLatticeSize(n)))
		}
	}
	return baseGenerators(ct, layout, edge, rotation, reflection), true
}
