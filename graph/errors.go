package graph

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction. Callers branch on these with
// errors.Is; messages are never pattern-matched.
var (
	// ErrSelfLoop indicates a node was listed as its own neighbor. Growth
	// edges are the only self-loop-like transition and are never listed
	// explicitly by the caller — they are generated internally.
	ErrSelfLoop = errors.New("graph: self-loop not allowed")

	// ErrDuplicateConnection indicates a node's neighbor list contains the
	// same name twice.
	ErrDuplicateConnection = errors.New("graph: duplicate connection")

	// ErrDuplicateName indicates two nodes were declared with the same name.
	ErrDuplicateName = errors.New("graph: duplicate node name")

	// ErrUnknownNeighbor indicates a listed neighbor name has no matching node.
	ErrUnknownNeighbor = errors.New("graph: unknown neighbor")

	// ErrEmptyName indicates a node was declared with an empty name.
	ErrEmptyName = errors.New("graph: empty node name")

	// ErrTumorChild indicates an edge targets a tumor node; tumors only
	// ever have outgoing edges.
	ErrTumorChild = errors.New("graph: tumor node cannot be an edge target")

	// ErrNoLNLs indicates a graph has no lymph-node-level nodes at all.
	ErrNoLNLs = errors.New("graph: graph has no LNL nodes")
)

// graphErrorf wraps err with a call-site tag while preserving errors.Is.
func graphErrorf(tag string, err error) error {
	return fmt.Errorf("graph: %s: %w", tag, err)
}
