// Package params owns the four closed parameter categories that
// parametrize a drainage graph's edges — TumorSpread, LnlSpread,
// Growth, MicroMod — and computes the per-edge transition tensor each
// edge contributes to the assembler (component D).
//
// Per-edge tensors are a pure function of
// (K_parent, K_child, is_tumor, is_growth, spread_prob, micro_mod); a
// Block memoizes them in a mutex-guarded, instance-private table so two
// unrelated models never share or invalidate each other's cache, per
// the resolved Open Question in DESIGN.md.
package params
