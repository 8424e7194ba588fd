// Package moments assembles dual matrices whose rows are integral moments of
// a polynomial expansion against the basis of a lower dimensional moment
// space, taken on every sub entity of a cell.
//
// Every result has one column per (component, expansion member) pair,
// component major, and one row block per sub entity in topology order.
package moments

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/gotab/cell"
	"github.com/notargets/gotab/polyset"
	"github.com/notargets/gotab/quadrature"
)

var (
	ErrValueSize = errors.New("moments: moment space has the wrong value size")
	ErrSubEntity = errors.New("moments: moment space cell is not a sub entity of the target cell")
)

// MomentSpace is the basis the moments are taken against. Tabulate returns
// npts x (ValueSize*Dim) tables, component major.
type MomentSpace interface {
	CellType() cell.Type
	ValueSize() int
	Dim() int
	Tabulate(nderiv int, pts mat.Matrix) ([]*mat.Dense, error)
}

// subEntity is a sub entity of the target cell with the moment space
// quadrature pushed onto it
type subEntity struct {
	axes *mat.Dense // sdim x tdim, v_{j+1} - v_0
	P    *mat.Dense // expansion set at the mapped points, nq x psize
}

type assembly struct {
	sdim, tdim int
	psize      int
	Q          quadrature.Rule
	phi        *mat.Dense // moment space at the reference points, nq x vs*dim
	entities   []subEntity
}

func newAssembly(V MomentSpace, ct cell.Type, polyDegree, qdeg int) (a *assembly, err error) {
	if !ct.IsSimplex() || ct == cell.Point {
		err = fmt.Errorf("%w: %s", polyset.ErrUnsupportedCell, ct)
		return
	}
	a = &assembly{
		sdim:  cell.TopologicalDimension(V.CellType()),
		tdim:  cell.TopologicalDimension(ct),
		psize: polyset.Dim(ct, polyDegree),
	}
	if a.sdim > a.tdim || a.sdim == 0 {
		err = fmt.Errorf("%w: %s on %s", ErrSubEntity, V.CellType(), ct)
		return
	}
	if a.Q, err = quadrature.MakeQuadrature(V.CellType(), qdeg); err != nil {
		return
	}
	var tabs []*mat.Dense
	if tabs, err = V.Tabulate(0, a.Q.Points); err != nil {
		return
	}
	a.phi = tabs[0]
	nq := a.Q.Len()
	for e := 0; e < cell.SubEntityCount(ct, a.sdim); e++ {
		var (
			E    = cell.SubEntityGeometry(ct, a.sdim, e)
			axes = mat.NewDense(a.sdim, a.tdim, nil)
			X    = mat.NewDense(nq, a.tdim, nil)
		)
		for j := 0; j < a.sdim; j++ {
			for k := 0; k < a.tdim; k++ {
				axes.Set(j, k, E.At(j+1, k)-E.At(0, k))
			}
		}
		X.Mul(a.Q.Points, axes)
		for i := 0; i < nq; i++ {
			for k := 0; k < a.tdim; k++ {
				X.Set(i, k, X.At(i, k)+E.At(0, k))
			}
		}
		if tabs, err = polyset.Tabulate(ct, polyDegree, 0, X); err != nil {
			return
		}
		a.entities = append(a.entities, subEntity{axes: axes, P: tabs[0]})
	}
	return
}

// project returns P^T (f .* w), the moments of f against the expansion set
func (a *assembly) project(P *mat.Dense, f []float64) []float64 {
	fw := make([]float64, len(f))
	floats.MulTo(fw, f, a.Q.Weights)
	q := mat.NewVecDense(a.psize, nil)
	q.MulVec(P.T(), mat.NewVecDense(len(fw), fw))
	return q.RawVector().Data
}

// phiColumn is component c of moment space member j at every quadrature point
func (a *assembly) phiColumn(c, j, dim int) []float64 {
	return mat.Col(nil, c*dim+j, a.phi)
}

// MakeIntegralMoments integrates a scalar moment space against the expansion
// set of degree polyDegree on ct. With valueSize 1 each moment space member
// gives one row per entity. Otherwise each member gives one row per entity
// axis, the moment taken against the axis direction.
func MakeIntegralMoments(V MomentSpace, ct cell.Type, valueSize, polyDegree, qdeg int) (D *mat.Dense, err error) {
	if V.ValueSize() != 1 {
		err = fmt.Errorf("%w: integral moments need a scalar space, have value size %d",
			ErrValueSize, V.ValueSize())
		return
	}
	var a *assembly
	if a, err = newAssembly(V, ct, polyDegree, qdeg); err != nil {
		return
	}
	if valueSize != 1 && valueSize != a.tdim {
		err = fmt.Errorf("%w: value size %d on a %s", ErrValueSize, valueSize, ct)
		return
	}
	var (
		vdim      = V.Dim()
		perEntity = vdim
	)
	if valueSize > 1 {
		perEntity *= a.sdim
	}
	D = mat.NewDense(len(a.entities)*perEntity, a.psize*valueSize, nil)
	for e, ent := range a.entities {
		row := e * perEntity
		for j := 0; j < vdim; j++ {
			q := a.project(ent.P, a.phiColumn(0, j, vdim))
			if valueSize == 1 {
				D.SetRow(row, q)
				row++
				continue
			}
			for d := 0; d < a.sdim; d++ {
				for k := 0; k < valueSize; k++ {
					setScaled(D, row, k*a.psize, q, ent.axes.At(d, k))
				}
				row++
			}
		}
	}
	return
}

// MakeTangentIntegralMoments takes moments of the tangential component along
// every edge of ct against a scalar space on the interval
func MakeTangentIntegralMoments(V MomentSpace, ct cell.Type, valueSize, polyDegree, qdeg int) (D *mat.Dense, err error) {
	if V.CellType() != cell.Interval {
		err = fmt.Errorf("%w: tangent moments need an interval space, have %s", ErrSubEntity, V.CellType())
		return
	}
	if V.ValueSize() != 1 {
		err = fmt.Errorf("%w: tangent moments need a scalar space, have value size %d",
			ErrValueSize, V.ValueSize())
		return
	}
	var a *assembly
	if a, err = newAssembly(V, ct, polyDegree, qdeg); err != nil {
		return
	}
	if valueSize != a.tdim {
		err = fmt.Errorf("%w: value size %d on a %s", ErrValueSize, valueSize, ct)
		return
	}
	vdim := V.Dim()
	D = mat.NewDense(len(a.entities)*vdim, a.psize*valueSize, nil)
	for e, ent := range a.entities {
		for j := 0; j < vdim; j++ {
			q := a.project(ent.P, a.phiColumn(0, j, vdim))
			for k := 0; k < valueSize; k++ {
				setScaled(D, e*vdim+j, k*a.psize, q, ent.axes.At(0, k))
			}
		}
	}
	return
}

// MakeNormalIntegralMoments takes moments of the normal component on every
// facet of ct against a scalar space on the facet. Normals are not
// normalized: (-t_y, t_x) in 2D and t0 x t1 in 3D.
func MakeNormalIntegralMoments(V MomentSpace, ct cell.Type, valueSize, polyDegree, qdeg int) (D *mat.Dense, err error) {
	if V.ValueSize() != 1 {
		err = fmt.Errorf("%w: normal moments need a scalar space, have value size %d",
			ErrValueSize, V.ValueSize())
		return
	}
	var a *assembly
	if a, err = newAssembly(V, ct, polyDegree, qdeg); err != nil {
		return
	}
	if a.sdim != a.tdim-1 {
		err = fmt.Errorf("%w: %s is not a facet of %s", ErrSubEntity, V.CellType(), ct)
		return
	}
	if valueSize != a.tdim {
		err = fmt.Errorf("%w: value size %d on a %s", ErrValueSize, valueSize, ct)
		return
	}
	vdim := V.Dim()
	D = mat.NewDense(len(a.entities)*vdim, a.psize*valueSize, nil)
	for e, ent := range a.entities {
		normal := facetNormal(ent.axes)
		for j := 0; j < vdim; j++ {
			q := a.project(ent.P, a.phiColumn(0, j, vdim))
			for k := 0; k < valueSize; k++ {
				setScaled(D, e*vdim+j, k*a.psize, q, normal[k])
			}
		}
	}
	return
}

// MakeDotIntegralMoments takes moments of the vector field against a vector
// valued space living on each sub entity, its members pushed forward by the
// entity axes
func MakeDotIntegralMoments(V MomentSpace, ct cell.Type, valueSize, polyDegree, qdeg int) (D *mat.Dense, err error) {
	var a *assembly
	if a, err = newAssembly(V, ct, polyDegree, qdeg); err != nil {
		return
	}
	if V.ValueSize() != a.sdim {
		err = fmt.Errorf("%w: dot moments on a %s need value size %d, have %d",
			ErrValueSize, V.CellType(), a.sdim, V.ValueSize())
		return
	}
	if valueSize != a.tdim {
		err = fmt.Errorf("%w: value size %d on a %s", ErrValueSize, valueSize, ct)
		return
	}
	var (
		vdim = V.Dim()
		nq   = a.Q.Len()
	)
	D = mat.NewDense(len(a.entities)*vdim, a.psize*valueSize, nil)
	for e, ent := range a.entities {
		for j := 0; j < vdim; j++ {
			for k := 0; k < valueSize; k++ {
				f := make([]float64, nq)
				for d := 0; d < a.sdim; d++ {
					floats.AddScaled(f, ent.axes.At(d, k), a.phiColumn(d, j, vdim))
				}
				setScaled(D, e*vdim+j, k*a.psize, a.project(ent.P, f), 1)
			}
		}
	}
	return
}

func facetNormal(axes *mat.Dense) []float64 {
	_, tdim := axes.Dims()
	if tdim == 2 {
		return []float64{-axes.At(0, 1), axes.At(0, 0)}
	}
	n := r3.Cross(
		r3.Vec{X: axes.At(0, 0), Y: axes.At(0, 1), Z: axes.At(0, 2)},
		r3.Vec{X: axes.At(1, 0), Y: axes.At(1, 1), Z: axes.At(1, 2)},
	)
	return []float64{n.X, n.Y, n.Z}
}

// setScaled writes s*q into row of D starting at column col
func setScaled(D *mat.Dense, row, col int, q []float64, s float64) {
	if s == 0 {
		return
	}
	dst := D.RawRowView(row)[col : col+len(q)]
	floats.AddScaled(dst, s, q)
}
