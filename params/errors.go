package params

import (
	"errors"
	"fmt"
)

// Sentinel errors for the params package.
var (
	// ErrShapeMismatch indicates SetSpreadParams received a slice whose
	// length doesn't match the target edge class's cardinality.
	ErrShapeMismatch = errors.New("params: value count does not match edge class cardinality")

	// ErrMicroModNotApplicable indicates MicroMod was set on a binary graph.
	ErrMicroModNotApplicable = errors.New("params: micro_mod is only defined for trinary graphs")

	// ErrGrowthNotApplicable indicates Growth was set on a binary graph,
	// or a graph constructed with growth disabled.
	ErrGrowthNotApplicable = errors.New("params: growth edges not present on this graph")

	// ErrOutOfRange indicates a probability value outside [0,1].
	ErrOutOfRange = errors.New("params: value outside [0,1]")

	// ErrUnknownKind indicates an unrecognized Kind value.
	ErrUnknownKind = errors.New("params: unknown parameter kind")
)

func paramsErrorf(method string, err error) error {
	return fmt.Errorf("params.%s: %w", method, err)
}
