package element

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gotab/utils"
)

// ComputeExpansionCoefficients returns the coefficients, over the expansion
// set, of the basis dual to the functionals in dual within the span of
// wcoeffs. It solves (W D^T) X = W so that D X^T = I.
func ComputeExpansionCoefficients(wcoeffs, dual mat.Matrix) (X *mat.Dense, err error) {
	var (
		wr, wc = wcoeffs.Dims()
		dr, dc = dual.Dims()
	)
	if wr != dr || wc != dc {
		err = fmt.Errorf("%w: span is %dx%d, dual is %dx%d", ErrShapeMismatch, wr, wc, dr, dc)
		return
	}
	if wr == 0 {
		err = fmt.Errorf("%w: empty span", ErrShapeMismatch)
		return
	}
	var (
		A  mat.Dense
		lu mat.LU
	)
	A.Mul(wcoeffs, dual.T())
	lu.Factorize(&A)
	X = mat.NewDense(wr, wc, nil)
	if err = lu.SolveTo(X, false, wcoeffs); err != nil {
		X = nil
		err = fmt.Errorf("%w: %v", ErrSingularPairing, err)
		return
	}
	if utils.IsNan(X) {
		X = nil
		err = fmt.Errorf("%w: solution is not finite", ErrSingularPairing)
	}
	return
}
