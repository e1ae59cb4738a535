package types

import "errors"

var (
	ErrDimensionMismatch   = errors.New("types: matrix dimension mismatch")
	ErrSingularMatrix      = errors.New("types: matrix is not invertible")
	ErrDegenerateOperation = errors.New("types: operation has no geometric meaning")
)
