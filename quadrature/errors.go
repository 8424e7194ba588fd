package quadrature

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedCell        = errors.New("quadrature: unsupported cell type")
	ErrPyramidNotSupported    = fmt.Errorf("%w: pyramid", ErrUnsupportedCell)
	ErrInvalidArgument        = errors.New("quadrature: invalid argument")
	ErrConvergenceNotVerified = errors.New("quadrature: Newton iteration did not converge")
)
