package moments

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gotab/cell"
	"github.com/notargets/gotab/polyset"
	"github.com/notargets/gotab/utils"
)

// scalarSpace is the orthonormal expansion set used as a moment space
type scalarSpace struct {
	ct     cell.Type
	degree int
}

func (s scalarSpace) CellType() cell.Type { return s.ct }
func (s scalarSpace) ValueSize() int      { return 1 }
func (s scalarSpace) Dim() int            { return polyset.Dim(s.ct, s.degree) }
func (s scalarSpace) Tabulate(nderiv int, pts mat.Matrix) ([]*mat.Dense, error) {
	return polyset.Tabulate(s.ct, s.degree, nderiv, pts)
}

// vectorSpace has one member per (component, expansion member)
type vectorSpace struct {
	scalarSpace
}

func (v vectorSpace) ValueSize() int { return cell.TopologicalDimension(v.ct) }
func (v vectorSpace) Dim() int       { return v.ValueSize() * v.scalarSpace.Dim() }
func (v vectorSpace) Tabulate(nderiv int, pts mat.Matrix) ([]*mat.Dense, error) {
	tabs, err := v.scalarSpace.Tabulate(nderiv, pts)
	if err != nil {
		return nil, err
	}
	var (
		np, pdim = tabs[0].Dims()
		vs       = v.ValueSize()
		dim      = v.Dim()
	)
	out := make([]*mat.Dense, len(tabs))
	for i, T := range tabs {
		out[i] = mat.NewDense(np, vs*dim, nil)
		for c := 0; c < vs; c++ {
			utils.SetBlock(out[i], 0, c*dim+c*pdim, T)
		}
	}
	return out, nil
}

func TestIntegralMomentsOnCell(t *testing.T) {
	D, err := MakeIntegralMoments(scalarSpace{cell.Triangle, 2}, cell.Triangle, 1, 2, 4)
	require.NoError(t, err)
	assert.True(t, mat.EqualApprox(D, utils.NewIdentity(6), 1e-12))

	// vector valued: row (j, d) picks member j in component block d
	D, err = MakeIntegralMoments(scalarSpace{cell.Triangle, 1}, cell.Triangle, 2, 1, 2)
	require.NoError(t, err)
	r, c := D.Dims()
	require.Equal(t, 6, r)
	require.Equal(t, 6, c)
	for j := 0; j < 3; j++ {
		for d := 0; d < 2; d++ {
			for col := 0; col < 6; col++ {
				want := 0.
				if col == d*3+j {
					want = 1
				}
				assert.InDelta(t, want, D.At(j*2+d, col), 1e-12)
			}
		}
	}
}

func TestIntegralMomentsOnFaces(t *testing.T) {
	D, err := MakeIntegralMoments(scalarSpace{cell.Triangle, 0}, cell.Tetrahedron, 3, 0, 2)
	require.NoError(t, err)
	r, c := D.Dims()
	assert.Equal(t, 8, r)
	assert.Equal(t, 3, c)
	// face 3 is {0,1,2}: tangents e_x and e_y
	q := math.Sqrt(3)
	assert.InDeltaSlice(t, []float64{q, 0, 0}, D.RawRowView(6), 1e-12)
	assert.InDeltaSlice(t, []float64{0, q, 0}, D.RawRowView(7), 1e-12)
}

func TestTangentIntegralMoments(t *testing.T) {
	D, err := MakeTangentIntegralMoments(scalarSpace{cell.Interval, 0}, cell.Triangle, 2, 0, 2)
	require.NoError(t, err)
	s := math.Sqrt2
	expected := mat.NewDense(3, 2, []float64{
		-s, s,
		0, s,
		s, 0,
	})
	assert.True(t, mat.EqualApprox(D, expected, 1e-12))

	D, err = MakeTangentIntegralMoments(scalarSpace{cell.Interval, 2}, cell.Tetrahedron, 3, 3, 6)
	require.NoError(t, err)
	r, c := D.Dims()
	assert.Equal(t, 18, r)
	assert.Equal(t, 3*polyset.Dim(cell.Tetrahedron, 3), c)
}

func TestNormalIntegralMoments(t *testing.T) {
	D, err := MakeNormalIntegralMoments(scalarSpace{cell.Interval, 0}, cell.Triangle, 2, 0, 2)
	require.NoError(t, err)
	s := math.Sqrt2
	expected := mat.NewDense(3, 2, []float64{
		-s, -s,
		-s, 0,
		0, s,
	})
	assert.True(t, mat.EqualApprox(D, expected, 1e-12))

	D, err = MakeNormalIntegralMoments(scalarSpace{cell.Triangle, 0}, cell.Tetrahedron, 3, 0, 2)
	require.NoError(t, err)
	q := math.Sqrt(3)
	assert.InDeltaSlice(t, []float64{q, q, q}, D.RawRowView(0), 1e-12)
}

func TestDotIntegralMoments(t *testing.T) {
	V := vectorSpace{scalarSpace{cell.Triangle, 0}}
	D, err := MakeDotIntegralMoments(V, cell.Tetrahedron, 3, 0, 2)
	require.NoError(t, err)
	r, _ := D.Dims()
	assert.Equal(t, 8, r)
	q := math.Sqrt(3)
	assert.InDeltaSlice(t, []float64{q, 0, 0}, D.RawRowView(6), 1e-12)
	assert.InDeltaSlice(t, []float64{0, q, 0}, D.RawRowView(7), 1e-12)

	// on the cell itself the axes are the identity
	V = vectorSpace{scalarSpace{cell.Triangle, 1}}
	D, err = MakeDotIntegralMoments(V, cell.Triangle, 2, 1, 2)
	require.NoError(t, err)
	assert.True(t, mat.EqualApprox(D, utils.NewIdentity(6), 1e-12))
}

func TestMomentFailures(t *testing.T) {
	V := vectorSpace{scalarSpace{cell.Triangle, 0}}
	_, err := MakeIntegralMoments(V, cell.Triangle, 2, 1, 2)
	assert.ErrorIs(t, err, ErrValueSize)
	_, err = MakeTangentIntegralMoments(scalarSpace{cell.Triangle, 0}, cell.Tetrahedron, 3, 1, 2)
	assert.ErrorIs(t, err, ErrSubEntity)
	_, err = MakeNormalIntegralMoments(scalarSpace{cell.Interval, 0}, cell.Tetrahedron, 3, 1, 2)
	assert.ErrorIs(t, err, ErrSubEntity)
	_, err = MakeDotIntegralMoments(scalarSpace{cell.Triangle, 0}, cell.Tetrahedron, 3, 1, 2)
	assert.ErrorIs(t, err, ErrValueSize)
	_, err = MakeIntegralMoments(scalarSpace{cell.Tetrahedron, 0}, cell.Triangle, 1, 1, 2)
	assert.ErrorIs(t, err, ErrSubEntity)
}
