package compress

import (
	"errors"
	"fmt"
)

// Sentinel errors for the compress package.
var (
	// ErrUnknownTStage indicates a patient row's raw T-stage value could
	// not be mapped to a coarse category by the configured mapper.
	ErrUnknownTStage = errors.New("compress: unmapped T-stage value")

	// ErrUnknownModality indicates a row references a modality name that
	// isn't in the registered modality list.
	ErrUnknownModality = errors.New("compress: unknown modality in row")

	// ErrUnknownLNL indicates a row references an LNL name absent from
	// the graph.
	ErrUnknownLNL = errors.New("compress: unknown LNL in row")
)

func compressErrorf(method string, err error) error {
	return fmt.Errorf("compress.%s: %w", method, err)
}
