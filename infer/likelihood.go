package infer

import (
	"math"

	"github.com/katalvlaran/lymphatic/matrix"
)

// StageLikelihood bundles one T-stage's (or, for the Bayesian-network
// mode, the single pooled stage's) scoring inputs: the hidden-state
// distribution feeding it, and the compressed data (C may be nil if
// every row in that stage compressed away to no columns).
type StageLikelihood struct {
	StateDist []float64
	C         *matrix.Dense
	F         []float64
}

// LogLikelihood computes sum_stage f_stage . log(state_dist_stage . B .
// C_stage) — both the HMM and BN modes reduce to this same formula, the
// BN mode simply supplying one stage built from the one-shot
// distribution. valid gates the -Inf short circuit: whenever
// any spread parameter lies outside [0,1] or any diagnose time exceeds
// T_max, callers pass valid=false and none of the stages are evaluated.
func LogLikelihood(valid bool, b *matrix.Dense, stages []StageLikelihood) (float64, error) {
	if !valid {
		return math.Inf(-1), nil
	}

	total := 0.0
	for _, st := range stages {
		if st.C == nil {
			continue
		}

		obsDist, err := matrix.VecMat(st.StateDist, b)
		if err != nil {
			return 0, inferErrorf("LogLikelihood", err)
		}
		p, err := matrix.VecMat(obsDist, st.C)
		if err != nil {
			return 0, inferErrorf("LogLikelihood", err)
		}

		for k, f := range st.F {
			if f == 0 {
				continue
			}
			total += f * math.Log(p[k])
		}
	}

	return total, nil
}
