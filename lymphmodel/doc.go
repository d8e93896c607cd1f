// Package lymphmodel is the public surface of the engine: it wires
// graph, params, statespace, assemble, modality, compress, evolve,
// infer and bilateral into a single construction/query API — Unilateral
// for a single drainage side, Bilateral for two symmetry-linked sides.
package lymphmodel
