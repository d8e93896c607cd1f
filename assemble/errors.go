package assemble

import (
	"errors"
	"fmt"
)

// Sentinel errors for the assemble package.
var (
	// ErrNoModalities indicates an observation matrix was requested before
	// any modality was registered.
	ErrNoModalities = errors.New("assemble: no modalities registered")
)

func assembleErrorf(method string, err error) error {
	return fmt.Errorf("assemble.%s: %w", method, err)
}
