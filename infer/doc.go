// Package infer scores compressed patient data against a hidden-state
// distribution (log-likelihood), and turns a partial diagnosis into a
// posterior over hidden states and a risk estimate for a partial
// involvement pattern.
package infer
