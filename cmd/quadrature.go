/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/ghodss/yaml"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gotab/InputParameters"
	"github.com/notargets/gotab/cell"
	"github.com/notargets/gotab/quadrature"
)

// QuadratureCmd represents the quadrature command
var QuadratureCmd = &cobra.Command{
	Use:   "quadrature",
	Short: "Print a quadrature rule on a reference cell",
	Long: `
Prints the collapsed Gauss-Jacobi rule exact to the requested degree, or the
Gauss-Lobatto-Legendre rule on [0,1] with --lobatto,

gotab quadrature --cell triangle --degree 4
gotab quadrature --lobatto --points 5`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			qr InputParameters.QuadratureRequest
		)
		qr.Cell, _ = cmd.Flags().GetString("cell")
		qr.Degree, _ = cmd.Flags().GetInt("degree")
		qr.Lobatto, _ = cmd.Flags().GetBool("lobatto")
		qr.Points, _ = cmd.Flags().GetInt("points")
		engine := quadrature.NewEngine(newtonSettings(), slog.Default())
		return RunQuadrature(cmd.OutOrStdout(), engine, qr)
	},
}

func init() {
	rootCmd.AddCommand(QuadratureCmd)
	QuadratureCmd.Flags().StringP("cell", "c", "triangle", "reference cell: interval, triangle, tetrahedron, quadrilateral, hexahedron, prism")
	QuadratureCmd.Flags().IntP("degree", "n", 2, "polynomial degree integrated exactly")
	QuadratureCmd.Flags().Bool("lobatto", false, "Gauss-Lobatto-Legendre rule on [0,1]")
	QuadratureCmd.Flags().IntP("points", "m", 3, "number of Gauss-Lobatto-Legendre points")
}

type ruleSummary struct {
	Cell    string      `json:"cell"`
	Degree  int         `json:"degree,omitempty"`
	Lobatto bool        `json:"lobatto,omitempty"`
	Mass    float64     `json:"mass"`
	Points  [][]float64 `json:"points"`
	Weights []float64   `json:"weights"`
}

func buildRule(engine *quadrature.Engine, qr InputParameters.QuadratureRequest) (rs ruleSummary, err error) {
	var R quadrature.Rule
	if qr.Lobatto {
		if R, err = quadrature.GaussLobattoLegendreLineRule(qr.Points); err != nil {
			return
		}
		rs.Cell, rs.Lobatto = cell.Interval.String(), true
	} else {
		var ct cell.Type
		if ct, err = cell.ParseType(qr.Cell); err != nil {
			return
		}
		if R, err = engine.MakeQuadrature(ct, qr.Degree); err != nil {
			return
		}
		rs.Cell, rs.Degree = ct.String(), qr.Degree
	}
	rs.Mass = R.Mass()
	rs.Weights = R.Weights
	rs.Points = make([][]float64, R.Len())
	for i := range rs.Points {
		rs.Points[i] = mat.Row(nil, i, R.Points)
	}
	return
}

func RunQuadrature(w io.Writer, engine *quadrature.Engine, qr InputParameters.QuadratureRequest) (err error) {
	var (
		rs   ruleSummary
		data []byte
	)
	if rs, err = buildRule(engine, qr); err != nil {
		return
	}
	if data, err = yaml.Marshal(rs); err != nil {
		return
	}
	_, err = fmt.Fprintf(w, "%s", data)
	return
}
