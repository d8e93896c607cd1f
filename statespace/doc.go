// Package statespace enumerates the hidden-state and observation index
// spaces of a lymphatic drainage model and precomputes the
// non-decreasing-state reachability mask used by the matrix assembler to
// skip the (structurally zero) cells of the transition matrix.
//
// A hidden state is a vector in {0,...,K-1}^L, enumerated by canonical
// base-K counting over L digits with the most-significant digit at
// position 0. An observation is a vector in {0,1}^(M*L), packed so the
// m-th modality occupies positions m*L..(m+1)*L-1.
package statespace
