package infer

import (
	"github.com/katalvlaran/lymphatic/compress"
	"github.com/katalvlaran/lymphatic/matrix"
	"github.com/katalvlaran/lymphatic/statespace"
)

// EncodingVector builds the 2^(M*L)-length 0/1 vector e where
// e[z] = 1 iff complete observation z agrees with diag on every
// non-missing entry. modalities and lnls fix the (m,l) -> bit-position
// assignment and must match the order used to build obs.
func EncodingVector(obs *statespace.ObsSpace, modalities, lnls []string, diag map[compress.Cell]bool) []float64 {
	e := make([]float64, obs.N)
	for z := 0; z < obs.N; z++ {
		bits := obs.Bits(z)
		agrees := true
		for m, modName := range modalities {
			for l, lnlName := range lnls {
				want, has := diag[compress.Cell{Modality: modName, LNL: lnlName}]
				if !has {
					continue
				}
				if (obs.Bit(bits, m, l) == 1) != want {
					agrees = false
					break
				}
			}
			if !agrees {
				break
			}
		}
		if agrees {
			e[z] = 1
		}
	}
	return e
}

// Posterior computes p(s|d) proportional to (e . B^T) . prior,
// normalized to sum to 1 over hidden states. (e . B^T)_i equals
// sum_z e[z]*B[i,z], i.e. B*e as an ordinary matrix-vector product.
func Posterior(b *matrix.Dense, e, prior []float64) ([]float64, error) {
	likelihood, err := matrix.MatVec(b, e)
	if err != nil {
		return nil, inferErrorf("Posterior", err)
	}

	post := make([]float64, len(prior))
	sum := 0.0
	for i, pr := range prior {
		post[i] = likelihood[i] * pr
		sum += post[i]
	}
	if sum == 0 {
		return post, nil
	}
	for i := range post {
		post[i] /= sum
	}
	return post, nil
}
