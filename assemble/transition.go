package assemble

import (
	"github.com/katalvlaran/lymphatic/graph"
	"github.com/katalvlaran/lymphatic/matrix"
	"github.com/katalvlaran/lymphatic/params"
	"github.com/katalvlaran/lymphatic/statespace"
)

// BuildTransitionMatrix assembles the N x N hidden-state transition
// matrix A for g under the parameters currently held by blk, masked by
// sp's non-decreasing-state reachability mask.
//
// For every origin state i, each LNL's next-state distribution is
// computed independently (dist seeded as a one-hot at the LNL's
// current state, then each incoming edge's tensor — tumor, LNL->LNL,
// and finally growth — is applied as a linear operator in turn). A[i][j]
// is then the product, across LNLs, of that LNL's probability of
// landing on the digit j assigns it. Unreachable (j, i) pairs (j not in
// sp.Mask()[i]) are left at zero.
func BuildTransitionMatrix(g *graph.Graph, blk *params.Block, sp *statespace.Space) (*matrix.Dense, error) {
	a, err := matrix.NewDense(sp.N, sp.N)
	if err != nil {
		return nil, assembleErrorf("BuildTransitionMatrix", err)
	}

	lnls := g.LNLs()
	mask := sp.Mask()

	// Each LNL's incoming/growth edges are fixed by the graph topology,
	// not by the origin state i — look them up once rather than on every
	// one of the N states below.
	incoming := make([][]*graph.Edge, len(lnls))
	growth := make([]*graph.Edge, len(lnls))
	hasGrowth := make([]bool, len(lnls))
	for idx, lnl := range lnls {
		incoming[idx] = g.IncomingEdges(lnl.Name)
		growth[idx], hasGrowth[idx] = g.GrowthEdgeFor(lnl.Name)
	}

	for i := 0; i < sp.N; i++ {
		s := sp.State(i)
		childDist := make([][]float64, len(lnls))

		for idx, lnl := range lnls {
			cPrev := s[lnl.LNLIndex()]
			dist := make([]float64, g.K())
			dist[cPrev] = 1

			for _, e := range incoming[idx] {
				t := blk.Tensor(e)
				p := 0 // tumor's "active" row-0 convention, see params.Tensor
				if !e.IsTumorEdge() {
					p = s[e.Parent.LNLIndex()]
				}
				dist = applyTensor(t, p, dist)
			}
			if hasGrowth[idx] {
				t := blk.Tensor(growth[idx])
				dist = applyTensor(t, cPrev, dist)
			}
			childDist[idx] = dist
		}

		for _, j := range mask[i] {
			sPrime := sp.State(j)
			prob := 1.0
			for idx := range lnls {
				prob *= childDist[idx][sPrime[idx]]
			}
			a.MustSet(i, j, prob)
		}
	}

	return a, nil
}

// applyTensor evolves dist (a distribution over the child's previous
// state) through tensor t's parent-row p, returning the resulting
// distribution over the child's next state.
func applyTensor(t *params.Tensor, p int, dist []float64) []float64 {
	out := make([]float64, t.Kc)
	for cPrev, mass := range dist {
		if mass == 0 {
			continue
		}
		for cNext := 0; cNext < t.Kc; cNext++ {
			out[cNext] += mass * t.At(p, cPrev, cNext)
		}
	}
	return out
}
