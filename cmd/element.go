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

	"github.com/ghodss/yaml"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gotab/InputParameters"
	"github.com/notargets/gotab/element"
	"github.com/notargets/gotab/library"
)

// ElementCmd represents the element command
var ElementCmd = &cobra.Command{
	Use:   "element",
	Short: "Build a vector finite element and print its DOF layout",
	Long: `
Builds the element and prints its DOF layout, value shape and the number of
base permutations, optionally with the expansion coefficients,

gotab element --family N1curl --cell tetrahedron --degree 2 --coefficients`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			er InputParameters.ElementRequest
		)
		er.Family, _ = cmd.Flags().GetString("family")
		er.Cell, _ = cmd.Flags().GetString("cell")
		er.Degree, _ = cmd.Flags().GetInt("degree")
		er.Coefficients, _ = cmd.Flags().GetBool("coefficients")
		fe, err := library.CreateByName(er.Family, er.Cell, er.Degree)
		if err != nil {
			return err
		}
		return printSummaries(cmd.OutOrStdout(), summarize(fe, er.Coefficients))
	},
}

func init() {
	rootCmd.AddCommand(ElementCmd)
	ElementCmd.Flags().StringP("family", "f", "N1curl", "element family: N1curl, N2curl, RT or DG")
	ElementCmd.Flags().StringP("cell", "c", "triangle", "reference cell: triangle or tetrahedron")
	ElementCmd.Flags().IntP("degree", "n", 1, "element degree")
	ElementCmd.Flags().Bool("coefficients", false, "include the expansion coefficients")
}

type elementSummary struct {
	Name                 string      `json:"name"`
	Cell                 string      `json:"cell"`
	Degree               int         `json:"degree"`
	ValueShape           []int       `json:"valueShape"`
	Dofs                 int         `json:"dofs"`
	EntityDofs           [][]int     `json:"entityDofs"`
	Generators           int         `json:"generators"`
	PermutationsComplete bool        `json:"permutationsComplete"`
	Coefficients         [][]float64 `json:"coefficients,omitempty"`
}

func summarize(fe *element.FiniteElement, coefficients bool) (es elementSummary) {
	es = elementSummary{
		Name:                 fe.Name(),
		Cell:                 fe.CellType().String(),
		Degree:               fe.Degree(),
		ValueShape:           fe.ValueShape(),
		Dofs:                 fe.Dim(),
		EntityDofs:           fe.EntityDofs(),
		Generators:           len(fe.BasePermutations()),
		PermutationsComplete: fe.PermutationsComplete(),
	}
	if coefficients {
		C := fe.Coefficients()
		es.Coefficients = make([][]float64, fe.Dim())
		for i := range es.Coefficients {
			es.Coefficients[i] = mat.Row(nil, i, C)
		}
	}
	return
}

func printSummaries(w io.Writer, v interface{}) (err error) {
	var data []byte
	if data, err = yaml.Marshal(v); err != nil {
		return
	}
	_, err = fmt.Fprintf(w, "%s", data)
	return
}
