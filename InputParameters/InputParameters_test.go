package InputParameters

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = []byte(`
Title: "Edge elements"
Newton:
  tolerance: 1.0e-10
  maxIterations: 50
  strict: true
Elements:
  - Family: N1curl
    Cell: tetrahedron
    Degree: 2
  - Family: RT
    Cell: triangle
    Degree: 1
    Coefficients: true
Quadratures:
  - Cell: prism
    Degree: 4
  - Lobatto: true
    Points: 5
`)

func TestParse(t *testing.T) {
	var ip InputParameters
	require.NoError(t, ip.Parse(sample))
	assert.Equal(t, "Edge elements", ip.Title)
	assert.Equal(t, 1.0e-10, ip.Newton.Tolerance)
	assert.Equal(t, 50, ip.Newton.MaxIterations)
	assert.True(t, ip.Newton.Strict)
	require.Len(t, ip.Elements, 2)
	assert.Equal(t, ElementRequest{Family: "N1curl", Cell: "tetrahedron", Degree: 2}, ip.Elements[0])
	assert.True(t, ip.Elements[1].Coefficients)
	require.Len(t, ip.Quadratures, 2)
	assert.Equal(t, "prism", ip.Quadratures[0].Cell)
	assert.Equal(t, 5, ip.Quadratures[1].Points)

	var buf bytes.Buffer
	ip.Fprint(&buf)
	assert.Contains(t, buf.String(), "Elements[0] = N1curl(tetrahedron, 2)")
	assert.Contains(t, buf.String(), "Quadratures[1] = GLL(5 points)")

	assert.Error(t, ip.Parse([]byte("Elements: [unterminated")))
}

func TestRead(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "input.yaml")
	require.NoError(t, os.WriteFile(fileName, sample, 0o644))
	ip, err := Read(fileName)
	require.NoError(t, err)
	assert.Len(t, ip.Elements, 2)

	_, err = Read(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
