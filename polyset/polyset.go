// Package polyset tabulates the orthonormal Dubiner expansion set on the
// [0,1] reference interval, triangle and tetrahedron. Members are ordered by
// total degree so the first Dim(cell, k) members span P_k.
package polyset

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gotab/cell"
	"github.com/notargets/gotab/utils"
)

var (
	ErrUnsupportedCell       = errors.New("polyset: unsupported cell type")
	ErrUnsupportedDerivative = errors.New("polyset: unsupported derivative order")
)

// Dim is the dimension of P_degree on a simplex, zero for negative degree
func Dim(ct cell.Type, degree int) int {
	if degree < 0 {
		return 0
	}
	switch ct {
	case cell.Interval:
		return degree + 1
	case cell.Triangle:
		return (degree + 1) * (degree + 2) / 2
	case cell.Tetrahedron:
		return (degree + 1) * (degree + 2) * (degree + 3) / 6
	}
	panic(fmt.Errorf("%w: %s", ErrUnsupportedCell, ct))
}

// Tabulate evaluates the expansion set at the rows of pts. Table 0 holds the
// values (npts x Dim), tables 1..tdim hold the reference derivatives when
// nderiv is 1.
func Tabulate(ct cell.Type, degree, nderiv int, pts mat.Matrix) (tables []*mat.Dense, err error) {
	if nderiv < 0 || nderiv > 1 {
		err = fmt.Errorf("%w: %d", ErrUnsupportedDerivative, nderiv)
		return
	}
	if degree < 0 {
		err = fmt.Errorf("polyset: negative degree %d", degree)
		return
	}
	if !ct.IsSimplex() || ct == cell.Point {
		err = fmt.Errorf("%w: %s", ErrUnsupportedCell, ct)
		return
	}
	var (
		tdim     = cell.TopologicalDimension(ct)
		np, ncol = pts.Dims()
		ntab     = 1
	)
	if ncol != tdim {
		err = fmt.Errorf("polyset: %d point coordinates on a %s", ncol, ct)
		return
	}
	if nderiv == 1 {
		ntab += tdim
	}
	tables = make([]*mat.Dense, ntab)
	if np == 0 {
		for i := range tables {
			tables[i] = &mat.Dense{}
		}
		return
	}
	for i := range tables {
		tables[i] = mat.NewDense(np, Dim(ct, degree), nil)
	}
	switch ct {
	case cell.Interval:
		tabulateInterval(degree, pts, tables)
	case cell.Triangle:
		tabulateTriangle(degree, pts, tables)
	case cell.Tetrahedron:
		tabulateTetrahedron(degree, pts, tables)
	}
	return
}

func tabulateInterval(degree int, X mat.Matrix, tables []*mat.Dense) {
	var (
		np, _ = X.Dims()
		scale = math.Sqrt2
	)
	for p := 0; p < np; p++ {
		r := 2*X.At(p, 0) - 1
		for n := 0; n <= degree; n++ {
			tables[0].Set(p, n, scale*jacobiP(r, 0, 0, n))
			if len(tables) > 1 {
				tables[1].Set(p, n, 2*scale*gradJacobiP(r, 0, 0, n))
			}
		}
	}
}

func tabulateTriangle(degree int, X mat.Matrix, tables []*mat.Dense) {
	var (
		np, _ = X.Dims()
		scale = 2.
	)
	for p := 0; p < np; p++ {
		a, b := rsToAB(2*X.At(p, 0)-1, 2*X.At(p, 1)-1)
		for n := 0; n <= degree; n++ {
			for j := 0; j <= n; j++ {
				var (
					i   = n - j
					idx = n*(n+1)/2 + j
				)
				tables[0].Set(p, idx, scale*simplex2DP(a, b, i, j))
				if len(tables) > 1 {
					ddr, dds := gradSimplex2DP(a, b, i, j)
					tables[1].Set(p, idx, 2*scale*ddr)
					tables[2].Set(p, idx, 2*scale*dds)
				}
			}
		}
	}
}

func tabulateTetrahedron(degree int, X mat.Matrix, tables []*mat.Dense) {
	var (
		np, _ = X.Dims()
		scale = math.Sqrt(8)
	)
	for p := 0; p < np; p++ {
		a, b, c := rstToABC(2*X.At(p, 0)-1, 2*X.At(p, 1)-1, 2*X.At(p, 2)-1)
		for n := 0; n <= degree; n++ {
			// members with i = 0 close each block, they do not depend on x
			for l := 0; l <= n; l++ {
				for k := 0; k <= l; k++ {
					var (
						i   = n - l
						j   = l - k
						idx = n*(n+1)*(n+2)/6 + l*(l+1)/2 + k
					)
					tables[0].Set(p, idx, scale*simplex3DP(a, b, c, i, j, k))
					if len(tables) > 1 {
						ddr, dds, ddt := gradSimplex3DP(a, b, c, i, j, k)
						tables[1].Set(p, idx, 2*scale*ddr)
						tables[2].Set(p, idx, 2*scale*dds)
						tables[3].Set(p, idx, 2*scale*ddt)
					}
				}
			}
		}
	}
}

func simplex2DP(a, b float64, i, j int) float64 {
	var (
		h1 = jacobiP(a, 0, 0, i)
		h2 = jacobiP(b, float64(2*i+1), 0, j)
	)
	return math.Sqrt2 * h1 * h2 * utils.POW(1-b, i)
}

func gradSimplex2DP(a, b float64, id, jd int) (ddr, dds float64) {
	var (
		fa   = jacobiP(a, 0, 0, id)
		dfa  = gradJacobiP(a, 0, 0, id)
		gb   = jacobiP(b, 2*float64(id)+1, 0, jd)
		dgb  = gradJacobiP(b, 2*float64(id)+1, 0, jd)
		norm = math.Pow(2, float64(id)+0.5)
	)
	// d/dr = (2/(1-b)) d/da
	ddr = dfa * gb
	if id > 0 {
		ddr *= utils.POW(0.5*(1-b), id-1)
	}
	// d/ds = ((1+a)/2)/((1-b)/2) d/da + d/db
	dds = 0.5 * dfa * gb * (1 + a)
	if id > 0 {
		dds *= utils.POW(0.5*(1-b), id-1)
	}
	tmp := dgb * utils.POW(0.5*(1-b), id)
	if id > 0 {
		tmp -= 0.5 * float64(id) * gb * utils.POW(0.5*(1-b), id-1)
	}
	dds += fa * tmp
	ddr *= norm
	dds *= norm
	return
}

func simplex3DP(a, b, c float64, i, j, k int) float64 {
	var (
		h1 = jacobiP(a, 0, 0, i)
		h2 = jacobiP(b, float64(2*i+1), 0, j)
		h3 = jacobiP(c, float64(2*(i+j)+2), 0, k)
	)
	return 2 * math.Sqrt2 * h1 * h2 * utils.POW(1-b, i) * h3 * utils.POW(1-c, i+j)
}

func gradSimplex3DP(a, b, c float64, id, jd, kd int) (ddr, dds, ddt float64) {
	var (
		fa   = jacobiP(a, 0, 0, id)
		gb   = jacobiP(b, float64(2*id+1), 0, jd)
		hc   = jacobiP(c, float64(2*(id+jd)+2), 0, kd)
		dfa  = gradJacobiP(a, 0, 0, id)
		dgb  = gradJacobiP(b, float64(2*id+1), 0, jd)
		dhc  = gradJacobiP(c, float64(2*(id+jd)+2), 0, kd)
		norm = math.Pow(2, float64(2*id+jd)+1.5)
	)
	ddr = dfa * gb * hc
	if id > 0 {
		ddr *= utils.POW(0.5*(1-b), id-1)
	}
	if id+jd > 0 {
		ddr *= utils.POW(0.5*(1-c), id+jd-1)
	}

	dds = 0.5 * (1 + a) * ddr
	tmp := dgb * utils.POW(0.5*(1-b), id)
	if id > 0 {
		tmp -= 0.5 * float64(id) * gb * utils.POW(0.5*(1-b), id-1)
	}
	if id+jd > 0 {
		tmp *= utils.POW(0.5*(1-c), id+jd-1)
	}
	tmp = fa * tmp * hc
	dds += tmp

	ddt = 0.5*(1+a)*ddr + 0.5*(1+b)*tmp
	tmp2 := dhc * utils.POW(0.5*(1-c), id+jd)
	if id+jd > 0 {
		tmp2 -= 0.5 * float64(id+jd) * hc * utils.POW(0.5*(1-c), id+jd-1)
	}
	ddt += fa * gb * tmp2 * utils.POW(0.5*(1-b), id)

	ddr *= norm
	dds *= norm
	ddt *= norm
	return
}
