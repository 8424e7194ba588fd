package cell

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseType(t *testing.T) {
	for name, want := range TypeNames {
		got, err := ParseType(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, name, got.String())
	}
	ct, err := ParseType("Tetrahedron")
	require.NoError(t, err)
	assert.Equal(t, Tetrahedron, ct)
	_, err = ParseType("hexagon")
	assert.True(t, errors.Is(err, ErrUnknownCell))
}

func TestTopologyCounts(t *testing.T) {
	tests := []struct {
		ct     Type
		counts []int
	}{
		{Interval, []int{2, 1}},
		{Triangle, []int{3, 3, 1}},
		{Tetrahedron, []int{4, 6, 4, 1}},
		{Quadrilateral, []int{4, 4, 1}},
		{Hexahedron, []int{8, 12, 6, 1}},
		{Prism, []int{6, 9, 5, 1}},
		{Pyramid, []int{5, 8, 5, 1}},
	}
	for _, tc := range tests {
		t.Run(tc.ct.String(), func(t *testing.T) {
			topo := Topology(tc.ct)
			require.Len(t, topo, TopologicalDimension(tc.ct)+1)
			for dim, n := range tc.counts {
				assert.Equal(t, n, SubEntityCount(tc.ct, dim))
			}
			nv, _ := Geometry(tc.ct).Dims()
			assert.Equal(t, tc.counts[0], nv)
		})
	}
}

func TestOppositeEntities(t *testing.T) {
	// Each facet of a simplex omits exactly the vertex with the same index
	for _, ct := range []Type{Triangle, Tetrahedron} {
		tdim := TopologicalDimension(ct)
		for f, verts := range Topology(ct)[tdim-1] {
			assert.NotContains(t, verts, f)
			assert.Len(t, verts, tdim)
		}
	}
}

func TestSubEntityGeometry(t *testing.T) {
	E := SubEntityGeometry(Tetrahedron, 1, 0)
	nr, nc := E.Dims()
	assert.Equal(t, 2, nr)
	assert.Equal(t, 3, nc)
	assert.Equal(t, []float64{0, 1, 0}, E.RawRowView(0))
	assert.Equal(t, []float64{0, 0, 1}, E.RawRowView(1))
	assert.Equal(t, Triangle, SubEntityType(Tetrahedron, 2, 3))
	assert.Equal(t, Quadrilateral, SubEntityType(Prism, 2, 1))
	assert.Equal(t, Triangle, SubEntityType(Prism, 2, 4))
	assert.Equal(t, Interval, SubEntityType(Hexahedron, 1, 5))
}
