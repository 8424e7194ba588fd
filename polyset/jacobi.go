package polyset

import (
	"math"
)

// jacobiP evaluates the Jacobi polynomial P_n^(alpha,beta) at x, normalized
// to unit L2 norm on [-1,1] under its weight
func jacobiP(x, alpha, beta float64, n int) float64 {
	var (
		ab     = alpha + beta
		ab1    = alpha + beta + 1
		a1     = alpha + 1
		b1     = beta + 1
		gamma0 = math.Pow(2, ab1) / ab1 * math.Gamma(a1) * math.Gamma(b1) / math.Gamma(ab1)
		p0     = 1 / math.Sqrt(gamma0)
	)
	if n == 0 {
		return p0
	}
	gamma1 := a1 * b1 / (ab + 3) * gamma0
	p1 := ((ab+2)*x/2 + (alpha-beta)/2) / math.Sqrt(gamma1)
	if n == 1 {
		return p1
	}
	aold := 2 / (2 + ab) * math.Sqrt(a1*b1/(ab+3))
	for i := 1; i < n; i++ {
		var (
			fi   = float64(i)
			h1   = 2*fi + ab
			anew = 2 / (h1 + 2) * math.Sqrt((fi+1)*(fi+ab1)*(fi+a1)*(fi+b1)/(h1+1)/(h1+3))
			bnew = -(alpha*alpha - beta*beta) / h1 / (h1 + 2)
		)
		p0, p1 = p1, (-aold*p0+(x-bnew)*p1)/anew
		aold = anew
	}
	return p1
}

func gradJacobiP(x, alpha, beta float64, n int) float64 {
	if n == 0 {
		return 0
	}
	fn := float64(n)
	return math.Sqrt(fn*(fn+alpha+beta+1)) * jacobiP(x, alpha+1, beta+1, n-1)
}

// rsToAB maps the biunit triangle to the collapsed square
func rsToAB(r, s float64) (a, b float64) {
	if s != 1 {
		a = 2*(1+r)/(1-s) - 1
	} else {
		a = -1
	}
	b = s
	return
}

// rstToABC maps the biunit tetrahedron to the collapsed cube
func rstToABC(r, s, t float64) (a, b, c float64) {
	if s+t != 0 {
		a = 2*(1+r)/(-s-t) - 1
	} else {
		a = -1
	}
	if t != 1 {
		b = 2*(1+s)/(1-t) - 1
	} else {
		b = -1
	}
	c = t
	return
}
