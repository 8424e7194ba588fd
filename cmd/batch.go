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

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/notargets/gotab/InputParameters"
	"github.com/notargets/gotab/cell"
	"github.com/notargets/gotab/element"
	"github.com/notargets/gotab/library"
	"github.com/notargets/gotab/quadrature"
	"github.com/notargets/gotab/utils"
)

// BatchCmd represents the batch command
var BatchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Build every element and quadrature rule listed in a YAML input file",
	Long: `
Reads a YAML input file and builds each requested element through a shared
cache, then each requested quadrature rule,

gotab batch -I input.yaml`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			ip       *InputParameters.InputParameters
			fileName string
		)
		if fileName, _ = cmd.Flags().GetString("inputFile"); len(fileName) == 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "Example File:%s\n", exampleInput)
			return fmt.Errorf("must supply an input parameters file (-I, --inputFile)")
		}
		if ip, err = InputParameters.Read(fileName); err != nil {
			return
		}
		if echo, _ := cmd.Flags().GetBool("print"); echo {
			ip.Fprint(cmd.ErrOrStderr())
		}
		return RunBatch(cmd.OutOrStdout(), ip, prometheus.NewRegistry(), slog.Default())
	},
}

const exampleInput = `
########################################
Title: "Edge elements"
Newton:
  tolerance: 1.0e-8
  maxIterations: 100
Elements:
  - Family: N1curl
    Cell: tetrahedron
    Degree: 2
  - Family: RT
    Cell: triangle
    Degree: 1
Quadratures:
  - Cell: triangle
    Degree: 4
########################################
`

func init() {
	rootCmd.AddCommand(BatchCmd)
	BatchCmd.Flags().StringP("inputFile", "I", "", "YAML file listing the element and quadrature requests")
	BatchCmd.Flags().Bool("print", false, "echo the parsed input file on stderr")
}

type batchOutput struct {
	Title       string           `json:"title"`
	Elements    []elementSummary `json:"elements"`
	Quadratures []ruleSummary    `json:"quadratures,omitempty"`
}

// RunBatch builds every request through one cache registered on reg. Newton
// settings in the input file take precedence over the config.
func RunBatch(w io.Writer, ip *InputParameters.InputParameters, reg prometheus.Registerer, logger *slog.Logger) (err error) {
	if logger == nil {
		logger = slog.Default()
	}
	var (
		cache  *library.Cache
		out    = batchOutput{Title: ip.Title}
		engine = quadrature.NewEngine(batchSettings(ip.Newton), logger)
	)
	if cache, err = library.NewCache(reg, logger); err != nil {
		return
	}
	for i, er := range ip.Elements {
		var (
			f  library.Family
			ct cell.Type
			fe *element.FiniteElement
		)
		if f, err = library.ParseFamily(er.Family); err != nil {
			return fmt.Errorf("element request %d: %w", i, err)
		}
		if ct, err = cell.ParseType(er.Cell); err != nil {
			return fmt.Errorf("element request %d: %w", i, err)
		}
		if fe, err = cache.Get(f, ct, er.Degree); err != nil {
			return fmt.Errorf("element request %d: %w", i, err)
		}
		out.Elements = append(out.Elements, summarize(fe, er.Coefficients))
	}
	for i, qr := range ip.Quadratures {
		var rs ruleSummary
		if rs, err = buildRule(engine, qr); err != nil {
			return fmt.Errorf("quadrature request %d: %w", i, err)
		}
		out.Quadratures = append(out.Quadratures, rs)
	}
	logger.Info("Batch complete",
		slog.String("title", ip.Title),
		slog.Int("elements", len(out.Elements)),
		slog.Int("distinctElements", cache.Len()),
		slog.Int("quadratures", len(out.Quadratures)))
	logger.Debug("Memory", slog.String("usage", utils.GetMemUsage()))
	return printSummaries(w, out)
}

func batchSettings(s quadrature.Settings) quadrature.Settings {
	if s == (quadrature.Settings{}) {
		return newtonSettings()
	}
	return s
}
