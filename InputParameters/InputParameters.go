package InputParameters

import (
	"fmt"
	"io"
	"os"

	"github.com/ghodss/yaml"

	"github.com/notargets/gotab/quadrature"
)

// Parameters obtained from the YAML input file. ghodss/yaml converts to JSON
// before decoding, so the json tags name the keys.
type InputParameters struct {
	Title       string              `json:"Title"`
	Newton      quadrature.Settings `json:"Newton"`
	Elements    []ElementRequest    `json:"Elements"`
	Quadratures []QuadratureRequest `json:"Quadratures"`
}

type ElementRequest struct {
	Family       string `json:"Family"`
	Cell         string `json:"Cell"`
	Degree       int    `json:"Degree"`
	Coefficients bool   `json:"Coefficients"`
}

type QuadratureRequest struct {
	Cell    string `json:"Cell"`
	Degree  int    `json:"Degree"`
	Lobatto bool   `json:"Lobatto"`
	Points  int    `json:"Points"`
}

func (ip *InputParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func Read(fileName string) (ip *InputParameters, err error) {
	var data []byte
	if data, err = os.ReadFile(fileName); err != nil {
		return
	}
	ip = &InputParameters{}
	if err = ip.Parse(data); err != nil {
		err = fmt.Errorf("unable to parse input file %s: %w", fileName, err)
		ip = nil
	}
	return
}

func (ip *InputParameters) Print() {
	ip.Fprint(os.Stdout)
}

func (ip *InputParameters) Fprint(w io.Writer) {
	fmt.Fprintf(w, "\"%s\"\t\t= Title\n", ip.Title)
	fmt.Fprintf(w, "%8.2e\t\t= Newton Tolerance\n", ip.Newton.Tolerance)
	fmt.Fprintf(w, "[%d]\t\t\t= Newton Max Iterations\n", ip.Newton.MaxIterations)
	fmt.Fprintf(w, "[%v]\t\t\t= Newton Strict\n", ip.Newton.Strict)
	for i, er := range ip.Elements {
		fmt.Fprintf(w, "Elements[%d] = %s(%s, %d)\n", i, er.Family, er.Cell, er.Degree)
	}
	for i, qr := range ip.Quadratures {
		if qr.Lobatto {
			fmt.Fprintf(w, "Quadratures[%d] = GLL(%d points)\n", i, qr.Points)
			continue
		}
		fmt.Fprintf(w, "Quadratures[%d] = %s(degree %d)\n", i, qr.Cell, qr.Degree)
	}
}
