package assemble_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lymphatic/assemble"
	"github.com/katalvlaran/lymphatic/graph"
	"github.com/katalvlaran/lymphatic/matrix"
	"github.com/katalvlaran/lymphatic/modality"
	"github.com/katalvlaran/lymphatic/params"
)

func chainGraph(t *testing.T) (*graph.Graph, *params.Block) {
	t.Helper()
	g, err := graph.New(map[graph.NodeKey][]string{
		{Kind: graph.Tumor, Name: "T"}: {"I", "II"},
		{Kind: graph.LNL, Name: "I"}:   {"II"},
		{Kind: graph.LNL, Name: "II"}:  {},
	})
	require.NoError(t, err)

	blk := params.NewBlock(g)
	require.NoError(t, blk.SetSpreadParams(params.TumorSpread, []float64{0.6, 0.1}))
	require.NoError(t, blk.SetSpreadParams(params.LnlSpread, []float64{0.3}))
	return g, blk
}

func TestTransitionMatrixIsRowStochastic(t *testing.T) {
	g, blk := chainGraph(t)
	asm, err := assemble.New(g, blk, modality.NewRegistry())
	require.NoError(t, err)

	a, err := asm.TransitionMatrix()
	require.NoError(t, err)
	assert.NoError(t, matrix.ValidateRowStochastic(a, 1e-9))
}

func TestTransitionMatrixIsUpperTriangularUnderPartialOrder(t *testing.T) {
	g, blk := chainGraph(t)
	asm, err := assemble.New(g, blk, modality.NewRegistry())
	require.NoError(t, err)

	a, err := asm.TransitionMatrix()
	require.NoError(t, err)

	sp := asm.Space()
	for i := 0; i < sp.N; i++ {
		si := sp.State(i)
		for j := 0; j < sp.N; j++ {
			sj := sp.State(j)
			if v, _ := a.At(i, j); v != 0 {
				assert.Truef(t, statespaceGreaterEqual(sj, si), "A[%d][%d] nonzero but state %v not >= %v", i, j, sj, si)
			}
		}
	}
}

func statespaceGreaterEqual(a, b []int) bool {
	for i := range a {
		if a[i] < b[i] {
			return false
		}
	}
	return true
}

func TestTransitionMatrixRecomputesOnlyAfterWrite(t *testing.T) {
	g, blk := chainGraph(t)
	asm, err := assemble.New(g, blk, modality.NewRegistry())
	require.NoError(t, err)

	a1, err := asm.TransitionMatrix()
	require.NoError(t, err)
	a2, err := asm.TransitionMatrix()
	require.NoError(t, err)
	assert.Same(t, a1, a2)

	require.NoError(t, blk.SetSpreadParams(params.LnlSpread, []float64{0.9}))
	a3, err := asm.TransitionMatrix()
	require.NoError(t, err)
	assert.NotSame(t, a1, a3)
}

func TestObservationMatrixShapeAndRowStochastic(t *testing.T) {
	g, blk := chainGraph(t)
	reg := modality.NewRegistry()
	require.NoError(t, reg.Set("CT", modality.Clinical, 0.81, 0.87))

	asm, err := assemble.New(g, blk, reg)
	require.NoError(t, err)

	b, obs, err := asm.ObservationMatrix()
	require.NoError(t, err)
	assert.Equal(t, 1<<uint(obs.L), obs.N)

	assert.NoError(t, matrix.ValidateRowStochastic(b, 1e-9))
}

func TestObservationMatrixErrorsWithoutModalities(t *testing.T) {
	g, blk := chainGraph(t)
	asm, err := assemble.New(g, blk, modality.NewRegistry())
	require.NoError(t, err)

	_, _, err = asm.ObservationMatrix()
	assert.ErrorIs(t, err, assemble.ErrNoModalities)
}
