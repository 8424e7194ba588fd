package library

import (
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gotab/cell"
	"github.com/notargets/gotab/element"
)

func TestParseFamily(t *testing.T) {
	for label, want := range map[string]Family{
		"N1curl": N1Curl, "n2CURL": N2Curl, "RT": RT, "dg": DG,
	} {
		f, err := ParseFamily(label)
		require.NoError(t, err)
		assert.Equal(t, want, f)
	}
	_, err := ParseFamily("BDM")
	assert.ErrorIs(t, err, ErrUnknownFamily)
	assert.Equal(t, "N1curl", N1Curl.String())
	assert.Equal(t, "Family(9)", Family(9).String())
}

func TestCreate(t *testing.T) {
	fe, err := Create(N1Curl, cell.Triangle, 2)
	require.NoError(t, err)
	assert.Equal(t, "N1curl", fe.Name())
	assert.Equal(t, 8, fe.Dim())

	fe, err = CreateByName("RT", "tetrahedron", 1)
	require.NoError(t, err)
	assert.Equal(t, 4, fe.Dim())

	_, err = Create(Family(9), cell.Triangle, 1)
	assert.ErrorIs(t, err, ErrUnknownFamily)
	_, err = CreateByName("N1curl", "quadrilateral", 1)
	assert.ErrorIs(t, err, element.ErrInvalidCellType)
	_, err = CreateByName("N1curl", "cube", 1)
	assert.ErrorIs(t, err, cell.ErrUnknownCell)
}

func TestCache(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCache(reg, nil)
	require.NoError(t, err)

	fe1, err := c.Get(N1Curl, cell.Tetrahedron, 1)
	require.NoError(t, err)
	fe2, err := c.Get(N1Curl, cell.Tetrahedron, 1)
	require.NoError(t, err)
	assert.Same(t, fe1, fe2)
	assert.Equal(t, 1, c.Len())

	assert.Equal(t, 1., testutil.ToFloat64(c.metrics.hits.WithLabelValues("N1curl")))
	assert.Equal(t, 1., testutil.ToFloat64(c.metrics.misses.WithLabelValues("N1curl")))

	_, err = c.Get(RT, cell.Quadrilateral, 1)
	assert.ErrorIs(t, err, element.ErrInvalidCellType)
	assert.Equal(t, 1., testutil.ToFloat64(c.metrics.failures.WithLabelValues("RT")))
	assert.Equal(t, 1, c.Len())

	n, err := testutil.GatherAndCount(reg, "gotab_element_cache_hits_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// a second cache cannot register the same collectors
	_, err = NewCache(reg, nil)
	assert.Error(t, err)
}

func TestCacheConcurrent(t *testing.T) {
	c, err := NewCache(nil, nil)
	require.NoError(t, err)
	var (
		wg  sync.WaitGroup
		got = make([]*element.FiniteElement, 8)
	)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			fe, err := c.Get(RT, cell.Triangle, 2)
			assert.NoError(t, err)
			got[i] = fe
		}(i)
	}
	wg.Wait()
	for _, fe := range got {
		assert.Same(t, got[0], fe)
	}
	assert.Equal(t, 7., testutil.ToFloat64(c.metrics.hits.WithLabelValues("RT")))
}
