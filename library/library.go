// Package library creates elements by family name and caches them.
package library

import (
	"errors"
	"fmt"
	"strings"

	"github.com/notargets/gotab/cell"
	"github.com/notargets/gotab/element"
)

var ErrUnknownFamily = errors.New("library: unknown element family")

type Family uint8

const (
	N1Curl Family = iota
	N2Curl
	RT
	DG
)

var (
	FamilyNames = map[string]Family{
		"n1curl": N1Curl,
		"n2curl": N2Curl,
		"rt":     RT,
		"dg":     DG,
	}
	FamilyPrintNames = []string{"N1curl", "N2curl", "RT", "DG"}
)

func (f Family) String() string {
	if int(f) < len(FamilyPrintNames) {
		return FamilyPrintNames[f]
	}
	return fmt.Sprintf("Family(%d)", uint8(f))
}

func ParseFamily(label string) (f Family, err error) {
	var (
		ok bool
	)
	if f, ok = FamilyNames[strings.ToLower(label)]; !ok {
		err = fmt.Errorf("%w: %q, choose from %v", ErrUnknownFamily, label, FamilyPrintNames)
	}
	return
}

// Create builds the element of the family on the reference cell
func Create(f Family, ct cell.Type, degree int) (*element.FiniteElement, error) {
	switch f {
	case N1Curl:
		return element.CreateNedelec(ct, degree, f.String())
	case N2Curl:
		return element.CreateNedelec2(ct, degree, f.String())
	case RT:
		return element.CreateRT(ct, degree, f.String())
	case DG:
		return element.CreateDLagrange(ct, degree, f.String())
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownFamily, f)
}

// CreateByName parses the family and cell labels, then calls Create
func CreateByName(family, cellName string, degree int) (fe *element.FiniteElement, err error) {
	var (
		f  Family
		ct cell.Type
	)
	if f, err = ParseFamily(family); err != nil {
		return
	}
	if ct, err = cell.ParseType(cellName); err != nil {
		return
	}
	return Create(f, ct, degree)
}
