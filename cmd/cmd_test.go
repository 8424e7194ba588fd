package cmd

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/ghodss/yaml"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gotab/InputParameters"
	"github.com/notargets/gotab/element"
	"github.com/notargets/gotab/quadrature"
)

func TestRunQuadrature(t *testing.T) {
	var (
		buf    bytes.Buffer
		engine = quadrature.NewEngine(quadrature.DefaultSettings(), nil)
	)
	require.NoError(t, RunQuadrature(&buf, engine, InputParameters.QuadratureRequest{Cell: "triangle", Degree: 4}))
	var rs ruleSummary
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &rs))
	assert.Equal(t, "triangle", rs.Cell)
	assert.Len(t, rs.Weights, 9)
	assert.Len(t, rs.Points, 9)
	assert.InDelta(t, 0.5, rs.Mass, 1e-14)

	buf.Reset()
	require.NoError(t, RunQuadrature(&buf, engine, InputParameters.QuadratureRequest{Lobatto: true, Points: 4}))
	rs = ruleSummary{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &rs))
	assert.True(t, rs.Lobatto)
	assert.Len(t, rs.Weights, 4)

	err := RunQuadrature(&buf, engine, InputParameters.QuadratureRequest{Cell: "pyramid", Degree: 2})
	assert.ErrorIs(t, err, quadrature.ErrUnsupportedCell)
}

func TestRunBatch(t *testing.T) {
	ip := &InputParameters.InputParameters{
		Title: "batch",
		Elements: []InputParameters.ElementRequest{
			{Family: "N1curl", Cell: "triangle", Degree: 2},
			{Family: "n1curl", Cell: "Triangle", Degree: 2},
			{Family: "RT", Cell: "tetrahedron", Degree: 1, Coefficients: true},
		},
		Quadratures: []InputParameters.QuadratureRequest{{Cell: "interval", Degree: 3}},
	}
	var (
		buf    bytes.Buffer
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	)
	require.NoError(t, RunBatch(&buf, ip, prometheus.NewRegistry(), logger))
	var out batchOutput
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out.Elements, 3)
	assert.Equal(t, 8, out.Elements[0].Dofs)
	assert.Equal(t, 3, out.Elements[0].Generators)
	assert.Empty(t, out.Elements[0].Coefficients)
	assert.Len(t, out.Elements[2].Coefficients, 4)
	assert.Equal(t, 14, out.Elements[2].Generators)
	require.Len(t, out.Quadratures, 1)
	assert.Len(t, out.Quadratures[0].Weights, 2)

	ip.Elements = append(ip.Elements, InputParameters.ElementRequest{Family: "N1curl", Cell: "hexahedron", Degree: 1})
	err := RunBatch(&buf, ip, nil, logger)
	assert.ErrorIs(t, err, element.ErrInvalidCellType)
}

func TestExecuteElement(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs([]string{"element", "--family", "RT", "--cell", "triangle", "--degree", "2"})
	require.NoError(t, rootCmd.Execute())
	var es elementSummary
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &es))
	assert.Equal(t, "RT", es.Name)
	assert.Equal(t, 8, es.Dofs)
	assert.Equal(t, []int{2}, es.ValueShape)
	assert.True(t, es.PermutationsComplete)
}

func TestExecuteBatch(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "input.yaml")
	require.NoError(t, os.WriteFile(fileName, []byte(exampleInput), 0o644))
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs([]string{"batch", "-I", fileName, "--log-level", "warn"})
	require.NoError(t, rootCmd.Execute())
	var out batchOutput
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "Edge elements", out.Title)
	assert.Len(t, out.Elements, 2)
	assert.Equal(t, 20, out.Elements[0].Dofs)
}

func TestNewLogger(t *testing.T) {
	_, err := newLogger("debug", io.Discard)
	assert.NoError(t, err)
	_, err = newLogger("loud", io.Discard)
	assert.Error(t, err)
}
