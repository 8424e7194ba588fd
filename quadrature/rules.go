package quadrature

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/gotab/cell"
)

// Rule is a set of points, one per row of Points, with matching weights
type Rule struct {
	Points  *mat.Dense
	Weights []float64
}

func (r Rule) Len() int { return len(r.Weights) }

func (r Rule) Dim() int {
	if r.Points == nil || r.Len() == 0 {
		return 0
	}
	_, nc := r.Points.Dims()
	return nc
}

// Mass is the sum of the weights, the measure of the integration domain
func (r Rule) Mass() float64 { return floats.Sum(r.Weights) }

// Integrate applies the rule to f
func (r Rule) Integrate(f func(x []float64) float64) (sum float64) {
	var (
		x = make([]float64, r.Dim())
	)
	for i, w := range r.Weights {
		mat.Row(x, i, r.Points)
		sum += w * f(x)
	}
	return
}

// MakeQuadrature returns a rule on the reference cell exact for polynomials
// of total degree up to degree
func MakeQuadrature(ct cell.Type, degree int) (Rule, error) {
	return defaultEngine.MakeQuadrature(ct, degree)
}

func MakeQuadratureLine(m int) (Rule, error) {
	return defaultEngine.MakeQuadratureLine(m)
}

func MakeQuadratureTriangleCollapsed(m int) (Rule, error) {
	return defaultEngine.MakeQuadratureTriangleCollapsed(m)
}

func MakeQuadratureTetrahedronCollapsed(m int) (Rule, error) {
	return defaultEngine.MakeQuadratureTetrahedronCollapsed(m)
}

func MakeSimplexQuadrature(simplex mat.Matrix, degree int) (Rule, error) {
	return defaultEngine.MakeSimplexQuadrature(simplex, degree)
}

func PointsPerDirection(degree int) int { return (degree + 2) / 2 }

func (e *Engine) MakeQuadrature(ct cell.Type, degree int) (R Rule, err error) {
	if degree < 0 {
		err = fmt.Errorf("%w: negative degree %d", ErrInvalidArgument, degree)
		return
	}
	m := PointsPerDirection(degree)
	switch ct {
	case cell.Interval:
		return e.MakeQuadratureLine(m)
	case cell.Triangle:
		return e.MakeQuadratureTriangleCollapsed(m)
	case cell.Tetrahedron:
		return e.MakeQuadratureTetrahedronCollapsed(m)
	case cell.Quadrilateral, cell.Hexahedron:
		var line Rule
		if line, err = e.MakeQuadratureLine(m); err != nil {
			return
		}
		R = line
		for d := 1; d < cell.TopologicalDimension(ct); d++ {
			R = tensorProduct(R, line)
		}
		return
	case cell.Prism:
		var line, tri Rule
		if line, err = e.MakeQuadratureLine(m); err != nil {
			return
		}
		if tri, err = e.MakeQuadratureTriangleCollapsed(m); err != nil {
			return
		}
		return tensorProduct(tri, line), nil
	case cell.Pyramid:
		err = ErrPyramidNotSupported
		return
	}
	err = fmt.Errorf("%w: %s", ErrUnsupportedCell, ct)
	return
}

// MakeQuadratureLine is the m point Gauss-Legendre rule on [0,1]
func (e *Engine) MakeQuadratureLine(m int) (R Rule, err error) {
	if m < 1 {
		err = fmt.Errorf("%w: line rule needs at least one point, have %d", ErrInvalidArgument, m)
		return
	}
	var pts, wts []float64
	if pts, wts, err = e.GaussJacobiRule(0, m); err != nil {
		return
	}
	R = Rule{Points: mat.NewDense(m, 1, nil), Weights: make([]float64, m)}
	for i := range pts {
		R.Points.Set(i, 0, 0.5*(pts[i]+1))
		R.Weights[i] = wts[i] * 0.5
	}
	return
}

// MakeQuadratureTriangleCollapsed maps an m x m Gauss-Jacobi tensor rule onto
// the reference triangle with the Duffy transform
func (e *Engine) MakeQuadratureTriangleCollapsed(m int) (R Rule, err error) {
	if m < 1 {
		err = fmt.Errorf("%w: triangle rule needs at least one point, have %d", ErrInvalidArgument, m)
		return
	}
	var ptx, wx, pty, wy []float64
	if ptx, wx, err = e.GaussJacobiRule(0, m); err != nil {
		return
	}
	if pty, wy, err = e.GaussJacobiRule(1, m); err != nil {
		return
	}
	R = Rule{Points: mat.NewDense(m*m, 2, nil), Weights: make([]float64, m*m)}
	var c int
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			R.Points.Set(c, 0, 0.25*(1+ptx[i])*(1-pty[j]))
			R.Points.Set(c, 1, 0.5*(1+pty[j]))
			R.Weights[c] = wx[i] * wy[j] * 0.125
			c++
		}
	}
	return
}

func (e *Engine) MakeQuadratureTetrahedronCollapsed(m int) (R Rule, err error) {
	if m < 1 {
		err = fmt.Errorf("%w: tetrahedron rule needs at least one point, have %d", ErrInvalidArgument, m)
		return
	}
	var ptx, wx, pty, wy, ptz, wz []float64
	if ptx, wx, err = e.GaussJacobiRule(0, m); err != nil {
		return
	}
	if pty, wy, err = e.GaussJacobiRule(1, m); err != nil {
		return
	}
	if ptz, wz, err = e.GaussJacobiRule(2, m); err != nil {
		return
	}
	R = Rule{Points: mat.NewDense(m*m*m, 3, nil), Weights: make([]float64, m*m*m)}
	var c int
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			for k := 0; k < m; k++ {
				R.Points.Set(c, 0, 0.125*(1+ptx[i])*(1-pty[j])*(1-ptz[k]))
				R.Points.Set(c, 1, 0.25*(1+pty[j])*(1-ptz[k]))
				R.Points.Set(c, 2, 0.5*(1+ptz[k]))
				R.Weights[c] = wx[i] * wy[j] * wz[k] * 0.015625
				c++
			}
		}
	}
	return
}

// MakeSimplexQuadrature maps the reference rule onto the simplex whose
// vertices are the rows of simplex. The embedding space may be larger than
// the simplex dimension for intervals and triangles.
func (e *Engine) MakeSimplexQuadrature(simplex mat.Matrix, degree int) (R Rule, err error) {
	var (
		nr, nc = simplex.Dims()
		dim    = nr - 1
		m      = PointsPerDirection(degree)
		ref    Rule
		scale  float64
	)
	if dim < 1 || dim > 3 {
		err = fmt.Errorf("%w: unsupported simplex dimension %d", ErrInvalidArgument, dim)
		return
	}
	if nc < dim {
		err = fmt.Errorf("%w: %d vertex coordinates cannot hold a %d dimensional simplex",
			ErrInvalidArgument, nc, dim)
		return
	}
	if degree < 0 {
		err = fmt.Errorf("%w: negative degree %d", ErrInvalidArgument, degree)
		return
	}
	bvec := mat.NewDense(dim, nc, nil)
	for i := 0; i < dim; i++ {
		for j := 0; j < nc; j++ {
			bvec.Set(i, j, simplex.At(i+1, j)-simplex.At(0, j))
		}
	}
	switch dim {
	case 1:
		if ref, err = e.MakeQuadratureLine(m); err != nil {
			return
		}
		scale = mat.Norm(bvec, 2)
	case 2:
		if ref, err = e.MakeQuadratureTriangleCollapsed(m); err != nil {
			return
		}
		switch nc {
		case 2:
			scale = mat.Det(bvec)
		case 3:
			scale = r3.Norm(r3.Cross(rowVec(bvec, 0), rowVec(bvec, 1)))
		default:
			err = fmt.Errorf("%w: triangle embedded in %d dimensions", ErrInvalidArgument, nc)
			return
		}
	case 3:
		if nc != 3 {
			err = fmt.Errorf("%w: tetrahedron embedded in %d dimensions", ErrInvalidArgument, nc)
			return
		}
		if ref, err = e.MakeQuadratureTetrahedronCollapsed(m); err != nil {
			return
		}
		scale = mat.Det(bvec)
	}
	R = Rule{Points: mat.NewDense(ref.Len(), nc, nil), Weights: make([]float64, ref.Len())}
	R.Points.Mul(ref.Points, bvec)
	for i := 0; i < ref.Len(); i++ {
		for j := 0; j < nc; j++ {
			R.Points.Set(i, j, R.Points.At(i, j)+simplex.At(0, j))
		}
	}
	floats.ScaleTo(R.Weights, scale, ref.Weights)
	return
}

func rowVec(A mat.Matrix, i int) r3.Vec {
	return r3.Vec{X: A.At(i, 0), Y: A.At(i, 1), Z: A.At(i, 2)}
}

// tensorProduct orders points with the first factor outermost
func tensorProduct(A, B Rule) (R Rule) {
	var (
		na, nb = A.Len(), B.Len()
		da, db = A.Dim(), B.Dim()
	)
	R = Rule{Points: mat.NewDense(na*nb, da+db, nil), Weights: make([]float64, na*nb)}
	var c int
	for i := 0; i < na; i++ {
		for j := 0; j < nb; j++ {
			for d := 0; d < da; d++ {
				R.Points.Set(c, d, A.Points.At(i, d))
			}
			for d := 0; d < db; d++ {
				R.Points.Set(c, da+d, B.Points.At(j, d))
			}
			R.Weights[c] = A.Weights[i] * B.Weights[j]
			c++
		}
	}
	return
}
