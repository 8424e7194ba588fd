// Package dofperms supplies the raw index permutations and direction blocks
// that describe how DOFs laid out on a sub entity lattice move when the
// entity is reoriented. n is the number of lattice points per side.
//
// A permutation perm means new DOF p takes the value of old DOF perm[p].
package dofperms

import (
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gotab/utils"
)

// IntervalReflection reverses the n points of an edge
func IntervalReflection(n int) (perm []int) {
	perm = make([]int, n)
	for i := range perm {
		perm[i] = n - 1 - i
	}
	return
}

// TriangleLatticeSize is the number of points (i,j), i+j < n
func TriangleLatticeSize(n int) int { return n * (n + 1) / 2 }

// TriangleLatticeIndex orders the lattice by rows of constant j
func TriangleLatticeIndex(i, j, n int) int {
	return j*n - j*(j-1)/2 + i
}

// TriangleRotation relabels the face vertices (v0,v1,v2) -> (v1,v2,v0)
func TriangleRotation(n int) (perm []int) {
	perm = make([]int, TriangleLatticeSize(n))
	for j := 0; j < n; j++ {
		for i := 0; i < n-j; i++ {
			perm[TriangleLatticeIndex(i, j, n)] = TriangleLatticeIndex(n-1-i-j, i, n)
		}
	}
	return
}

// TriangleReflection swaps v1 and v2
func TriangleReflection(n int) (perm []int) {
	perm = make([]int, TriangleLatticeSize(n))
	for j := 0; j < n; j++ {
		for i := 0; i < n-j; i++ {
			perm[TriangleLatticeIndex(i, j, n)] = TriangleLatticeIndex(j, i, n)
		}
	}
	return
}

// IntervalReflectionTangentDirections flips the tangent of every edge DOF
func IntervalReflectionTangentDirections(n int) *mat.Dense {
	return utils.NewScaledIdentity(n, -1)
}

// TriangleReflectionTangentDirections swaps the two face tangents at each of
// the n points
func TriangleReflectionTangentDirections(n int) *mat.Dense {
	return utils.BlockDiagonal(mat.NewDense(2, 2, []float64{
		0, 1,
		1, 0,
	}), n)
}

// TriangleRotationTangentDirections maps the tangents at each of the n points
// as t0' = t1 - t0, t1' = -t0
func TriangleRotationTangentDirections(n int) *mat.Dense {
	return utils.BlockDiagonal(mat.NewDense(2, 2, []float64{
		-1, 1,
		-1, 0,
	}), n)
}

// NormalDirections scales n facet normal DOFs by sign
func NormalDirections(n int, sign float64) *mat.Dense {
	return utils.NewScaledIdentity(n, sign)
}
