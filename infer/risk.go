package infer

import "github.com/katalvlaran/lymphatic/statespace"

// Risk marginalizes posterior over every hidden state whose non-missing
// entries of involvement match. A K=3 state is treated as "involved"
// for any nonzero digit; lnls fixes the LNL-name -> digit-position
// assignment and must match the order used to build sp
// (graph.Graph.LNLs()).
func Risk(posterior []float64, sp *statespace.Space, lnls []string, involvement map[string]bool) float64 {
	risk := 0.0
	for i, p := range posterior {
		if p == 0 {
			continue
		}
		s := sp.State(i)
		matches := true
		for idx, name := range lnls {
			want, has := involvement[name]
			if !has {
				continue
			}
			if (s[idx] > 0) != want {
				matches = false
				break
			}
		}
		if matches {
			risk += p
		}
	}
	return risk
}
