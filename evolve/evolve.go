package evolve

import (
	"math"

	"github.com/katalvlaran/lymphatic/matrix"
)

// StartVector returns the starting hidden-state distribution: mass 1 on
// the all-healthy state (index 0), 0 elsewhere.
func StartVector(n int) []float64 {
	s := make([]float64, n)
	s[0] = 1
	return s
}

// matrixPowerCutoff is the diagnose time beyond which AtDiagTime switches
// from walking the state vector through A one step at a time to computing
// A^t directly via MatrixPower's repeated squaring. Below the cutoff the
// O(t*n^2) vector walk has less overhead than the O(n^3*log(t)) matrix
// power; above it the squaring wins.
const matrixPowerCutoff = 8

// AtDiagTime returns start * A^t, the HMM state distribution at a fixed
// discrete diagnose time t. Returns ErrNegativeDiagTime for t < 0;
// callers gate diag_time > T_max themselves (package infer turns that
// into a -Inf likelihood rather than an error here).
func AtDiagTime(a *matrix.Dense, t int) ([]float64, error) {
	if t < 0 {
		return nil, evolveErrorf("AtDiagTime", ErrNegativeDiagTime)
	}

	if t > matrixPowerCutoff {
		powered, err := matrix.MatrixPower(a, t)
		if err != nil {
			return nil, evolveErrorf("AtDiagTime", err)
		}
		dist, err := matrix.VecMat(StartVector(a.Rows()), powered)
		if err != nil {
			return nil, evolveErrorf("AtDiagTime", err)
		}
		return dist, nil
	}

	dist := StartVector(a.Rows())
	for i := 0; i < t; i++ {
		next, err := matrix.VecMat(dist, a)
		if err != nil {
			return nil, evolveErrorf("AtDiagTime", err)
		}
		dist = next
	}
	return dist, nil
}

// MarginalizedOverPi returns sum_t pi[t] * (start * A^t) for t in
// 0..len(pi)-1, computed by iterating start <- start*A once per step
// and accumulating the weighted sum. pi must sum to 1 within 1e-9.
func MarginalizedOverPi(a *matrix.Dense, pi []float64) ([]float64, error) {
	sum := 0.0
	for _, w := range pi {
		sum += w
	}
	if math.Abs(sum-1) > 1e-9 {
		return nil, evolveErrorf("MarginalizedOverPi", ErrDistributionNotNormalized)
	}

	n := a.Rows()
	dist := StartVector(n)
	acc := make([]float64, n)

	for t, w := range pi {
		if w != 0 {
			acc = matrix.AddVec(acc, matrix.ScaleVec(dist, w))
		}
		if t < len(pi)-1 {
			next, err := matrix.VecMat(dist, a)
			if err != nil {
				return nil, evolveErrorf("MarginalizedOverPi", err)
			}
			dist = next
		}
	}
	return acc, nil
}

// BNDist returns the Bayesian-network (time-free) hidden-state
// distribution: the probability of every state under one-shot
// independent-cause firing from all-healthy, which is exactly A's
// all-healthy row (A is itself built by the one-shot composition of
// every edge's tensor — see package assemble).
func BNDist(a *matrix.Dense) []float64 {
	return a.Row(0)
}
