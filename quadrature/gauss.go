package quadrature

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gotab/utils"
)

// Gauss computes the Gauss rule from the recursion coefficients of a family
// of monic orthogonal polynomials. Nodes are the eigenvalues of the Jacobi
// matrix, weights are beta[0] times the squared first eigenvector components.
func Gauss(alpha, beta []float64) (x, w []float64, err error) {
	var (
		n = len(alpha)
	)
	if n == 0 || len(beta) != n {
		err = fmt.Errorf("%w: recursion coefficients of length %d and %d",
			ErrInvalidArgument, len(alpha), len(beta))
		return
	}
	d1 := make([]float64, n-1)
	for i := range d1 {
		d1[i] = math.Sqrt(beta[i+1])
	}
	var (
		J   = utils.NewSymTriDiagonal(alpha, d1)
		eig mat.EigenSym
	)
	if ok := eig.Factorize(J, true); !ok {
		err = errors.New("quadrature: eigenvalue decomposition of the Jacobi matrix failed")
		return
	}
	x = eig.Values(nil)
	V := mat.NewDense(n, n, nil)
	eig.VectorsTo(V)
	w = make([]float64, n)
	for i := range w {
		v0 := V.At(0, i)
		w[i] = beta[0] * v0 * v0
	}
	return
}

// lobatto modifies the last recursion coefficients so the Gauss rule of the
// modified system has nodes at xl1 and xl2
func lobatto(alpha, beta []float64, xl1, xl2 float64) (x, w []float64, err error) {
	var (
		n      = len(alpha)
		bsqrt  = make([]float64, n)
		g1, g2 float64
	)
	for i := range beta {
		bsqrt[i] = math.Sqrt(beta[i])
	}
	for i := 1; i < n-1; i++ {
		g1 = bsqrt[i] / (alpha[i] - xl1 - bsqrt[i-1]*g1)
		g2 = bsqrt[i] / (alpha[i] - xl2 - bsqrt[i-1]*g2)
	}
	g1 = 1 / (alpha[n-1] - xl1 - bsqrt[n-2]*g1)
	g2 = 1 / (alpha[n-1] - xl2 - bsqrt[n-2]*g2)

	alphaL := append([]float64(nil), alpha...)
	betaL := append([]float64(nil), beta...)
	alphaL[n-1] = (g1*xl2 - g2*xl1) / (g1 - g2)
	betaL[n-1] = (xl2 - xl1) / (g1 - g2)
	return Gauss(alphaL, betaL)
}

// GaussLobattoLegendreLineRule is the m point GLL rule on [0,1], both
// endpoints included, exact to degree 2m-3
func GaussLobattoLegendreLineRule(m int) (R Rule, err error) {
	if m < 2 {
		err = fmt.Errorf("%w: Gauss-Lobatto-Legendre needs at least two points, have %d",
			ErrInvalidArgument, m)
		return
	}
	var (
		alpha, beta = RecJacobi(m, 0, 0)
		x, w        []float64
	)
	if x, w, err = lobatto(alpha, beta, -1, 1); err != nil {
		return
	}
	R = Rule{Points: mat.NewDense(m, 1, nil), Weights: make([]float64, m)}
	for i := range x {
		R.Points.Set(i, 0, 0.5*(x[i]+1))
		R.Weights[i] = 0.5 * w[i]
	}
	return
}
