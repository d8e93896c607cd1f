// Package compress turns a patient diagnosis table into, for each
// T-stage, a marginalization matrix C_tau and a multiplicity vector
// f_tau. Every patient row
// becomes a 0/1 indicator column over the full observation space (1 at
// every complete pattern compatible with the row's non-missing
// entries); all-missing (hence all-ones) columns are dropped, and
// identical columns are collapsed with their count recorded in f_tau.
package compress
