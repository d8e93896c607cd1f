package modality

import (
	"errors"
	"fmt"
)

// Sentinel errors for the modality package.
var (
	// ErrInvalidSpSn indicates specificity or sensitivity fell outside [0.5,1.0].
	ErrInvalidSpSn = errors.New("modality: specificity/sensitivity must be in [0.5, 1.0]")

	// ErrUnknownKind indicates an unrecognized modality Kind.
	ErrUnknownKind = errors.New("modality: unknown kind")

	// ErrUnknownModality indicates a lookup for a name never registered.
	ErrUnknownModality = errors.New("modality: unknown modality")

	// ErrEmptyName indicates a modality was registered with an empty name.
	ErrEmptyName = errors.New("modality: empty name")
)

func modalityErrorf(method string, err error) error {
	return fmt.Errorf("modality.%s: %w", method, err)
}
