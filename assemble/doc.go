// Package assemble builds the hidden-state transition matrix A and the
// observation matrix B from a graph's per-edge tensors (package params)
// and its registered diagnostic modalities (package modality).
//
// A[i][j] is the probability of moving from hidden state i to hidden
// state j in one time step; it factors as a product, over LNLs, of
// each LNL's own next-state distribution, obtained by chaining that
// LNL's incoming edge tensors (tumor, LNL->LNL, growth) as successive
// linear operators on a one-hot distribution seeded at its current
// state. B[i][z] is the probability of observing pattern z given
// hidden state i, factored across modalities and LNLs under
// conditional independence.
//
// Assembler caches both matrices and only recomputes them when the
// underlying params.Block or modality.Registry report a new version,
// via an "is-current" version counter rather than eager invalidation.
package assemble
