package cell

import (
	"errors"
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

var ErrUnknownCell = errors.New("cell: unknown cell type")

type Type uint8

const (
	Point Type = iota
	Interval
	Triangle
	Tetrahedron
	Quadrilateral
	Hexahedron
	Prism
	Pyramid
)

var (
	TypeNames = map[string]Type{
		"point":         Point,
		"interval":      Interval,
		"triangle":      Triangle,
		"tetrahedron":   Tetrahedron,
		"quadrilateral": Quadrilateral,
		"hexahedron":    Hexahedron,
		"prism":         Prism,
		"pyramid":       Pyramid,
	}
	TypePrintNames = []string{"point", "interval", "triangle", "tetrahedron",
		"quadrilateral", "hexahedron", "prism", "pyramid"}
)

func (t Type) String() string {
	if int(t) < len(TypePrintNames) {
		return TypePrintNames[t]
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

func ParseType(label string) (t Type, err error) {
	var (
		ok bool
	)
	if t, ok = TypeNames[strings.ToLower(label)]; !ok {
		err = fmt.Errorf("%w: %q", ErrUnknownCell, label)
	}
	return
}

func (t Type) IsSimplex() bool {
	return t == Interval || t == Triangle || t == Tetrahedron
}

func TopologicalDimension(t Type) int {
	switch t {
	case Point:
		return 0
	case Interval:
		return 1
	case Triangle, Quadrilateral:
		return 2
	case Tetrahedron, Hexahedron, Prism, Pyramid:
		return 3
	}
	panic(fmt.Errorf("%w: %d", ErrUnknownCell, uint8(t)))
}

// Topology returns, per dimension, the vertex indices of every sub entity.
// Triangle edge i and tetrahedron face i are opposite vertex i.
func Topology(t Type) (topo [][][]int) {
	switch t {
	case Point:
		topo = [][][]int{{{0}}}
	case Interval:
		topo = [][][]int{
			{{0}, {1}},
			{{0, 1}},
		}
	case Triangle:
		topo = [][][]int{
			{{0}, {1}, {2}},
			{{1, 2}, {0, 2}, {0, 1}},
			{{0, 1, 2}},
		}
	case Tetrahedron:
		topo = [][][]int{
			{{0}, {1}, {2}, {3}},
			{{2, 3}, {1, 3}, {1, 2}, {0, 3}, {0, 2}, {0, 1}},
			{{1, 2, 3}, {0, 2, 3}, {0, 1, 3}, {0, 1, 2}},
			{{0, 1, 2, 3}},
		}
	case Quadrilateral:
		topo = [][][]int{
			{{0}, {1}, {2}, {3}},
			{{0, 1}, {0, 2}, {1, 3}, {2, 3}},
			{{0, 1, 2, 3}},
		}
	case Hexahedron:
		topo = [][][]int{
			{{0}, {1}, {2}, {3}, {4}, {5}, {6}, {7}},
			{{0, 1}, {0, 2}, {0, 4}, {1, 3}, {1, 5}, {2, 3},
				{2, 6}, {3, 7}, {4, 5}, {4, 6}, {5, 7}, {6, 7}},
			{{0, 1, 2, 3}, {0, 1, 4, 5}, {0, 2, 4, 6},
				{1, 3, 5, 7}, {2, 3, 6, 7}, {4, 5, 6, 7}},
			{{0, 1, 2, 3, 4, 5, 6, 7}},
		}
	case Prism:
		topo = [][][]int{
			{{0}, {1}, {2}, {3}, {4}, {5}},
			{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 4},
				{2, 5}, {3, 4}, {3, 5}, {4, 5}},
			{{0, 1, 2}, {0, 1, 3, 4}, {0, 2, 3, 5}, {1, 2, 4, 5}, {3, 4, 5}},
			{{0, 1, 2, 3, 4, 5}},
		}
	case Pyramid:
		topo = [][][]int{
			{{0}, {1}, {2}, {3}, {4}},
			{{0, 1}, {0, 2}, {0, 4}, {1, 3}, {1, 4}, {2, 3}, {2, 4}, {3, 4}},
			{{0, 1, 2, 3}, {0, 1, 4}, {0, 2, 4}, {1, 3, 4}, {2, 3, 4}},
			{{0, 1, 2, 3, 4}},
		}
	default:
		panic(fmt.Errorf("%w: %d", ErrUnknownCell, uint8(t)))
	}
	return
}

// Geometry returns the reference vertex coordinates, one vertex per row
func Geometry(t Type) (G *mat.Dense) {
	switch t {
	case Point:
		G = mat.NewDense(1, 1, []float64{0})
	case Interval:
		G = mat.NewDense(2, 1, []float64{0, 1})
	case Triangle:
		G = mat.NewDense(3, 2, []float64{
			0, 0,
			1, 0,
			0, 1,
		})
	case Tetrahedron:
		G = mat.NewDense(4, 3, []float64{
			0, 0, 0,
			1, 0, 0,
			0, 1, 0,
			0, 0, 1,
		})
	case Quadrilateral:
		G = mat.NewDense(4, 2, []float64{
			0, 0,
			1, 0,
			0, 1,
			1, 1,
		})
	case Hexahedron:
		G = mat.NewDense(8, 3, []float64{
			0, 0, 0,
			1, 0, 0,
			0, 1, 0,
			1, 1, 0,
			0, 0, 1,
			1, 0, 1,
			0, 1, 1,
			1, 1, 1,
		})
	case Prism:
		G = mat.NewDense(6, 3, []float64{
			0, 0, 0,
			1, 0, 0,
			0, 1, 0,
			0, 0, 1,
			1, 0, 1,
			0, 1, 1,
		})
	case Pyramid:
		G = mat.NewDense(5, 3, []float64{
			0, 0, 0,
			1, 0, 0,
			0, 1, 0,
			1, 1, 0,
			0, 0, 1,
		})
	default:
		panic(fmt.Errorf("%w: %d", ErrUnknownCell, uint8(t)))
	}
	return
}

// Volume is the measure of the reference cell
func Volume(t Type) float64 {
	switch t {
	case Point:
		return 0
	case Interval, Quadrilateral, Hexahedron:
		return 1
	case Triangle, Prism:
		return 0.5
	case Tetrahedron:
		return 1. / 6.
	case Pyramid:
		return 1. / 3.
	}
	panic(fmt.Errorf("%w: %d", ErrUnknownCell, uint8(t)))
}

func SubEntityCount(t Type, dim int) int {
	topo := Topology(t)
	if dim < 0 || dim >= len(topo) {
		return 0
	}
	return len(topo[dim])
}

// SubEntityType returns the cell type of sub entity index of dimension dim
func SubEntityType(t Type, dim, index int) Type {
	switch dim {
	case 0:
		return Point
	case 1:
		return Interval
	}
	if dim == TopologicalDimension(t) {
		return t
	}
	if len(Topology(t)[dim][index]) == 3 {
		return Triangle
	}
	return Quadrilateral
}

// SubEntityGeometry returns the vertex coordinates of a sub entity, one per row
func SubEntityGeometry(t Type, dim, index int) (E *mat.Dense) {
	var (
		topo  = Topology(t)
		G     = Geometry(t)
		_, gd = G.Dims()
	)
	if dim < 0 || dim >= len(topo) || index < 0 || index >= len(topo[dim]) {
		panic(fmt.Errorf("sub entity (%d, %d) does not exist on a %s", dim, index, t))
	}
	verts := topo[dim][index]
	E = mat.NewDense(len(verts), gd, nil)
	for i, v := range verts {
		E.SetRow(i, G.RawRowView(v))
	}
	return
}
