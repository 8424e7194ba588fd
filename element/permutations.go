package element

import (
	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gotab/cell"
	"github.com/notargets/gotab/utils"
)

type dofLayout struct {
	entityDofs [][]int
	starts     [][]int // first DOF of each entity
	ndofs      int
}

func newDofLayout(entityDofs [][]int) (l dofLayout) {
	l.entityDofs = entityDofs
	l.starts = make([][]int, len(entityDofs))
	for d, counts := range entityDofs {
		l.starts[d] = make([]int, len(counts))
		for e, n := range counts {
			l.starts[d][e] = l.ndofs
			l.ndofs += n
		}
	}
	return
}

// uniformDofs lays out count DOFs on every entity of dimension dim
func uniformDofs(ct cell.Type, counts ...int) (ed [][]int) {
	tdim := cell.TopologicalDimension(ct)
	ed = make([][]int, tdim+1)
	for d := 0; d <= tdim; d++ {
		ed[d] = make([]int, cell.SubEntityCount(ct, d))
		if d < len(counts) {
			for e := range ed[d] {
				ed[d][e] = counts[d]
			}
		}
	}
	return
}

// GeneratorCount is one per edge plus two per face for cells of dimension 3
func GeneratorCount(ct cell.Type) (n int) {
	tdim := cell.TopologicalDimension(ct)
	for d := 1; d < tdim; d++ {
		n += d * cell.SubEntityCount(ct, d)
	}
	return
}

// orient is the generator acting as the point permutation perm, each point
// carrying block DOFs, composed with the direction block, on the DOFs
// starting at start
func orient(ndofs, start, block int, perm []int, directions mat.Matrix) *sparse.CSR {
	return utils.MulCSR(
		utils.NewBlockPermutation(ndofs, start, block, perm),
		utils.NewBlockEmbedding(ndofs, start, directions),
	)
}

// generatorFunc builds the generator for an entity whose DOFs start at start
type generatorFunc func(ndofs, start int) *sparse.CSR

// baseGenerators assembles edge generators then face rotation and reflection
// pairs. A nil builder, or an entity without DOFs, gives the identity.
func baseGenerators(ct cell.Type, layout dofLayout, edge, faceRotation, faceReflection generatorFunc) (perms []*sparse.CSR) {
	var (
		tdim = cell.TopologicalDimension(ct)
		n    = layout.ndofs
	)
	perms = make([]*sparse.CSR, 0, GeneratorCount(ct))
	build := func(g generatorFunc, d, e int) *sparse.CSR {
		if g == nil || layout.entityDofs[d][e] == 0 {
			return utils.NewIdentityCSR(n)
		}
		return g(n, layout.starts[d][e])
	}
	if tdim > 1 {
		for e := 0; e < cell.SubEntityCount(ct, 1); e++ {
			perms = append(perms, build(edge, 1, e))
		}
	}
	if tdim > 2 {
		for f := 0; f < cell.SubEntityCount(ct, 2); f++ {
			perms = append(perms, build(faceRotation, 2, f), build(faceReflection, 2, f))
		}
	}
	return
}
