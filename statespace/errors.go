package statespace

import (
	"errors"
	"fmt"
)

// ErrInvalidDims indicates L <= 0 or K < 2 was requested.
var ErrInvalidDims = errors.New("statespace: L must be > 0 and K must be >= 2")

func statespaceErrorf(method string, err error) error {
	return fmt.Errorf("statespace.%s: %w", method, err)
}
