// Package evolve advances a hidden-state distribution through time
// using the transition matrix A assembled by package assemble. Three
// evolution modes are supported: a fixed diagnose time, a diagnose-time
// distribution marginalized over pi_tau, and the one-shot
// Bayesian-network mode.
package evolve
