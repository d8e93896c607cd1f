package bilateral

import (
	"errors"
	"fmt"
)

// Sentinel errors for the bilateral package.
var (
	// ErrEdgeIndexOutOfRange indicates a single-edge write addressed an
	// index outside the target edge class's cardinality.
	ErrEdgeIndexOutOfRange = errors.New("bilateral: edge index out of range")

	// ErrUnknownSide indicates a Side value other than Ipsi/Contra.
	ErrUnknownSide = errors.New("bilateral: unknown side")
)

func bilateralErrorf(method string, err error) error {
	return fmt.Errorf("bilateral.%s: %w", method, err)
}
