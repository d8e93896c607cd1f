package lymphmodel

import (
	"errors"
	"fmt"
)

// Sentinel errors for the lymphmodel package.
var (
	// ErrNoDataLoaded indicates a query that requires patient data ran
	// before LoadPatientData succeeded.
	ErrNoDataLoaded = errors.New("lymphmodel: no patient data loaded")

	// ErrUnknownTStage indicates a query referenced a T-stage with no
	// loaded data.
	ErrUnknownTStage = errors.New("lymphmodel: unknown T-stage")

	// ErrMissingTimeSpec indicates neither a fixed diagnose time nor a
	// diagnose-time distribution was supplied for a T-stage under HMM
	// mode.
	ErrMissingTimeSpec = errors.New("lymphmodel: missing diag_time or time_distribution for stage")
)

func lymphmodelErrorf(method string, err error) error {
	return fmt.Errorf("lymphmodel.%s: %w", method, err)
}
