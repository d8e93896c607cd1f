// Package modality is the diagnostic-modality registry: per-modality
// confusion matrices (Clinical or Pathological) combined across LNLs
// and modalities into the assembler's observation matrix B.
package modality
