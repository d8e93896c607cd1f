package evolve

import (
	"errors"
	"fmt"
)

// Sentinel errors for the evolve package.
var (
	// ErrNegativeDiagTime indicates a caller asked for a negative time step.
	ErrNegativeDiagTime = errors.New("evolve: diagnose time must be >= 0")

	// ErrDiagTimeExceedsMax indicates diag_time > T_max, the condition
	// that gates log-likelihood to -Inf rather than raising an error.
	ErrDiagTimeExceedsMax = errors.New("evolve: diagnose time exceeds T_max")

	// ErrDistributionNotNormalized indicates pi_tau does not sum to 1.
	ErrDistributionNotNormalized = errors.New("evolve: diagnose-time distribution must sum to 1")
)

func evolveErrorf(method string, err error) error {
	return fmt.Errorf("evolve.%s: %w", method, err)
}
