package bilateral

import (
	"math"

	"github.com/katalvlaran/lymphatic/evolve"
	"github.com/katalvlaran/lymphatic/matrix"
)

// JointColumn is one compressed joint-diagnosis record: a patient's
// ipsi and contra observation-indicator columns (each length Z_side)
// paired by patient, with a shared multiplicity.
type JointColumn struct {
	IpsiCol, ContraCol []float64
	F                  float64
}

// JointStage bundles one T-stage's diagnose-time distribution and
// joint-diagnosis columns.
type JointStage struct {
	Pi      []float64
	Columns []JointColumn
}

// JointLogLikelihoodHMM computes the bilateral HMM log-likelihood via a
// trace identity: since ipsi and contra hidden states evolve
// independently given a shared diagnose time t, the joint
// observation probability at t factors as p_ipsi(t) * p_contra(t) — the
// full N x N outer product ipsi_state(t) ⊗ contra_state(t) is never
// formed; only the two sides' own (state_dist . B) vectors are, and
// they're combined as a per-patient scalar product accumulated over t.
func JointLogLikelihoodHMM(ipsiA, contraA, ipsiB, contraB *matrix.Dense, stages []JointStage) (float64, error) {
	n := ipsiA.Rows()
	total := 0.0

	for _, st := range stages {
		pColumn := make([]float64, len(st.Columns))
		ipsiDist := evolve.StartVector(n)
		contraDist := evolve.StartVector(n)

		for t, w := range st.Pi {
			if w != 0 {
				ipsiObs, err := matrix.VecMat(ipsiDist, ipsiB)
				if err != nil {
					return 0, bilateralErrorf("JointLogLikelihoodHMM", err)
				}
				contraObs, err := matrix.VecMat(contraDist, contraB)
				if err != nil {
					return 0, bilateralErrorf("JointLogLikelihoodHMM", err)
				}
				for k, col := range st.Columns {
					pIpsi := matrix.DotVec(ipsiObs, col.IpsiCol)
					pContra := matrix.DotVec(contraObs, col.ContraCol)
					pColumn[k] += w * pIpsi * pContra
				}
			}
			if t < len(st.Pi)-1 {
				var err error
				ipsiDist, err = matrix.VecMat(ipsiDist, ipsiA)
				if err != nil {
					return 0, bilateralErrorf("JointLogLikelihoodHMM", err)
				}
				contraDist, err = matrix.VecMat(contraDist, contraA)
				if err != nil {
					return 0, bilateralErrorf("JointLogLikelihoodHMM", err)
				}
			}
		}

		for k, col := range st.Columns {
			if col.F == 0 {
				continue
			}
			total += col.F * math.Log(pColumn[k])
		}
	}

	return total, nil
}
