package quadrature

import (
	"math"
)

// JacobiDerivatives evaluates the Jacobi polynomial P_n^(a,0) and its first
// nderiv derivatives at the points x. Row i of the result holds derivative i.
func JacobiDerivatives(a float64, n, nderiv int, x []float64) (J [][]float64) {
	var (
		np   = len(x)
		prev [][]float64
	)
	J = make([][]float64, nderiv+1)
	for i := 0; i <= nderiv; i++ {
		Jd := make([][]float64, n+1)
		for k := range Jd {
			Jd[k] = make([]float64, np)
		}
		if i == 0 {
			for p := range x {
				Jd[0][p] = 1
			}
		}
		if n > 0 {
			switch i {
			case 0:
				for p, xp := range x {
					Jd[1][p] = (xp*(a+2) + a) * 0.5
				}
			case 1:
				for p := range x {
					Jd[1][p] = a*0.5 + 1
				}
			}
		}
		for k := 2; k <= n; k++ {
			var (
				fk = float64(k)
				a1 = 2 * fk * (fk + a) * (2*fk + a - 2)
				a2 = (2*fk + a - 1) * (a * a) / a1
				a3 = (2*fk + a - 1) * (2*fk + a) / (2 * fk * (fk + a))
				a4 = 2 * (fk + a - 1) * (fk - 1) * (2*fk + a) / a1
			)
			for p, xp := range x {
				Jd[k][p] = Jd[k-1][p]*(xp*a3+a2) - Jd[k-2][p]*a4
				if i > 0 {
					Jd[k][p] += float64(i) * a3 * prev[k-1][p]
				}
			}
		}
		J[i] = Jd[n]
		prev = Jd
	}
	return
}

// RecJacobi returns the recursion coefficients of the monic Jacobi polynomials
// orthogonal on [-1,1] under (1-x)^a (1+x)^b:
//
//	P_{k+1}(x) = (x-alpha_k) P_k(x) - beta_k P_{k-1}(x)
//
// beta[0] is the integral of the weight.
func RecJacobi(n int, a, b float64) (alpha, beta []float64) {
	var (
		nu = (b - a) / (a + b + 2)
		mu = math.Pow(2, a+b+1) * math.Gamma(a+1) * math.Gamma(b+1) / math.Gamma(a+b+2)
	)
	alpha, beta = make([]float64, n), make([]float64, n)
	if n == 0 {
		return
	}
	alpha[0], beta[0] = nu, mu
	for k := 1; k < n; k++ {
		var (
			fk  = float64(k)
			nab = 2*fk + a + b
		)
		alpha[k] = (b*b - a*a) / (nab * (nab + 2))
		beta[k] = 4 * (fk + a) * (fk + b) * fk * (fk + a + b) /
			(nab * nab * (nab + 1) * (nab - 1))
	}
	return
}
