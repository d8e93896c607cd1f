package assemble

import (
	"github.com/katalvlaran/lymphatic/graph"
	"github.com/katalvlaran/lymphatic/matrix"
	"github.com/katalvlaran/lymphatic/modality"
	"github.com/katalvlaran/lymphatic/statespace"
)

// BuildObservationMatrix assembles the N x Z observation matrix B: for
// every hidden state i and packed observation z, B[i][z] is the
// product, across registered modalities and LNLs, of that modality's
// confusion-matrix entry for the LNL's hidden state and the observed
// bit — the conditional-independence factorization across modalities.
func BuildObservationMatrix(g *graph.Graph, reg *modality.Registry, sp *statespace.Space, obs *statespace.ObsSpace) (*matrix.Dense, error) {
	names := reg.Names()
	if len(names) == 0 {
		return nil, assembleErrorf("BuildObservationMatrix", ErrNoModalities)
	}

	cms := make([]*matrix.Dense, len(names))
	for m, name := range names {
		cm, err := reg.ConfusionMatrix(name, g.K())
		if err != nil {
			return nil, assembleErrorf("BuildObservationMatrix", err)
		}
		cms[m] = cm
	}

	b, err := matrix.NewDense(sp.N, obs.N)
	if err != nil {
		return nil, assembleErrorf("BuildObservationMatrix", err)
	}

	for i := 0; i < sp.N; i++ {
		s := sp.State(i)
		for z := 0; z < obs.N; z++ {
			bits := obs.Bits(z)
			prob := 1.0
			for m := range names {
				for l := 0; l < obs.L; l++ {
					bit := obs.Bit(bits, m, l)
					prob *= cms[m].MustAt(s[l], bit)
				}
			}
			b.MustSet(i, z, prob)
		}
	}

	return b, nil
}
