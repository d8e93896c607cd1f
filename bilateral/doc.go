// Package bilateral composes two unilateral cores ("ipsi" and "contra")
// over the same graph topology. An explicit symmetry Broker — not an
// attribute-delegation mixin — owns the three
// symmetry flags (tumor_spread_symmetric, lnl_spread_symmetric,
// modalities_symmetric) and routes writes to the mirror side when a
// flag is set; propagation is one level deep and never retriggers
// itself.
package bilateral
