package matrix

import (
	"errors"
	"fmt"
)

// Sentinel errors for the matrix package. Algorithms return these
// directly or wrapped with matrixErrorf; they never panic on
// user-triggered conditions.
var (
	// ErrInvalidDimensions indicates requested rows/cols are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates a row or column index outside [0,n).
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch indicates incompatible shapes between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare indicates a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates a nil *Dense was used where one was required.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrRowNotStochastic indicates a row failed to sum to 1 within tolerance.
	ErrRowNotStochastic = errors.New("matrix: row does not sum to 1")

	// ErrNegativeExponent indicates MatrixPower was called with exp < 0.
	ErrNegativeExponent = errors.New("matrix: exponent must be >= 0")
)

func matrixErrorf(method string, err error) error {
	return fmt.Errorf("matrix.%s: %w", method, err)
}
