package compress

import (
	"sort"

	"github.com/katalvlaran/lymphatic/matrix"
	"github.com/katalvlaran/lymphatic/statespace"
)

// Compressed holds one T-stage's marginalization matrix C_tau (shape
// obs.N x len(F)) and its multiplicity vector f_tau.
type Compressed struct {
	C *matrix.Dense
	F []float64
}

// Compress groups rows by their mapper-assigned T-stage and compresses
// each group independently. modalities and lnls fix the (m,l) ->
// bit-position assignment and must match the order used
// to build obs (modality.Registry.Names() and graph.Graph.LNLs(),
// respectively).
func Compress(rows []Row, modalities, lnls []string, obs *statespace.ObsSpace, mapper TStageMapper) (map[string]*Compressed, error) {
	if mapper == nil {
		mapper = DefaultTStageMapper
	}

	grouped := make(map[string][]Row)
	for _, row := range rows {
		stage, err := mapper(row.RawTStage)
		if err != nil {
			return nil, compressErrorf("Compress", err)
		}
		grouped[stage] = append(grouped[stage], row)
	}

	out := make(map[string]*Compressed, len(grouped))
	for stage, groupRows := range grouped {
		c, err := compressGroup(groupRows, modalities, lnls, obs)
		if err != nil {
			return nil, compressErrorf("Compress", err)
		}
		out[stage] = c
	}
	return out, nil
}

// compressGroup builds one T-stage's (C_tau, f_tau) from its rows:
// every row becomes a 0/1 indicator column over the observation space
// (1 at every z compatible with its non-missing entries); all-ones
// (fully missing) columns are dropped, and identical columns are
// collapsed with their count recorded in f_tau.
func compressGroup(rows []Row, modalities, lnls []string, obs *statespace.ObsSpace) (*Compressed, error) {
	counts := make(map[string]int)
	colByKey := make(map[string][]float64)

	for _, row := range rows {
		col := make([]float64, obs.N)
		allOnes := true
		for z := 0; z < obs.N; z++ {
			bits := obs.Bits(z)
			compatible := true
			for m, modName := range modalities {
				for l, lnlName := range lnls {
					want, ok := row.Diagnoses[Cell{Modality: modName, LNL: lnlName}]
					if !ok {
						continue
					}
					if (obs.Bit(bits, m, l) == 1) != want {
						compatible = false
						break
					}
				}
				if !compatible {
					break
				}
			}
			if compatible {
				col[z] = 1
			} else {
				allOnes = false
			}
		}
		if allOnes {
			continue // fully missing diagnosis contributes 0 to log-likelihood
		}

		key := columnKey(col)
		counts[key]++
		if _, seen := colByKey[key]; !seen {
			colByKey[key] = col
		}
	}

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if len(keys) == 0 {
		return &Compressed{C: nil, F: nil}, nil
	}

	c, err := matrix.NewDense(obs.N, len(keys))
	if err != nil {
		return nil, err
	}
	f := make([]float64, len(keys))
	for k, key := range keys {
		col := colByKey[key]
		for z, v := range col {
			c.MustSet(z, k, v)
		}
		f[k] = float64(counts[key])
	}

	return &Compressed{C: c, F: f}, nil
}

func columnKey(col []float64) string {
	b := make([]byte, len(col))
	for i, v := range col {
		if v != 0 {
			b[i] = '1'
		} else {
			b[i] = '0'
		}
	}
	return string(b)
}
