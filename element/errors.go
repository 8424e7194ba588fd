package element

import "errors"

var (
	ErrInvalidCellType = errors.New("element: invalid cell type")
	ErrInvalidDegree   = errors.New("element: invalid degree")
	ErrShapeMismatch   = errors.New("element: span and dual shapes do not match")
	ErrSingularPairing = errors.New("element: span and dual pairing is singular")
)
