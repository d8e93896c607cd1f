package graph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lymphatic/graph"
)

func twoLNLSpec() map[graph.NodeKey][]string {
	return map[graph.NodeKey][]string{
		{Kind: graph.Tumor, Name: "T"}: {"I", "II"},
		{Kind: graph.LNL, Name: "I"}:   {"II"},
		{Kind: graph.LNL, Name: "II"}:  {},
	}
}

func TestNewBinaryGraph(t *testing.T) {
	g, err := graph.New(twoLNLSpec())
	require.NoError(t, err)
	assert.Equal(t, 2, g.K())
	assert.False(t, g.IsTrinary())
	assert.Equal(t, 2, g.NumLNLs())
	assert.Len(t, g.TumorEdges(), 2)
	assert.Len(t, g.LNLEdges(), 1)
	assert.Empty(t, g.GrowthEdges())

	i, ok := g.Node("I")
	require.True(t, ok)
	assert.Equal(t, 0, i.LNLIndex())
	ii, ok := g.Node("II")
	require.True(t, ok)
	assert.Equal(t, 1, ii.LNLIndex())
}

func TestNewTrinaryGraphGeneratesGrowthEdges(t *testing.T) {
	g, err := graph.New(twoLNLSpec(), graph.WithTrinary(true))
	require.NoError(t, err)
	assert.Equal(t, 3, g.K())
	require.Len(t, g.GrowthEdges(), 2)
	for _, e := range g.GrowthEdges() {
		assert.True(t, e.IsGrowth)
		assert.Same(t, e.Parent, e.Child)
	}
}

func TestNewRejectsSelfLoop(t *testing.T) {
	spec := map[graph.NodeKey][]string{
		{Kind: graph.LNL, Name: "I"}: {"I"},
	}
	_, err := graph.New(spec)
	assert.ErrorIs(t, err, graph.ErrSelfLoop)
}

func TestNewRejectsDuplicateConnection(t *testing.T) {
	spec := map[graph.NodeKey][]string{
		{Kind: graph.LNL, Name: "I"}:  {"II", "II"},
		{Kind: graph.LNL, Name: "II"}: {},
	}
	_, err := graph.New(spec)
	assert.ErrorIs(t, err, graph.ErrDuplicateConnection)
}

func TestNewRejectsUnknownNeighbor(t *testing.T) {
	spec := map[graph.NodeKey][]string{
		{Kind: graph.LNL, Name: "I"}: {"ghost"},
	}
	_, err := graph.New(spec)
	assert.ErrorIs(t, err, graph.ErrUnknownNeighbor)
}

func TestNewRejectsTumorAsChild(t *testing.T) {
	spec := map[graph.NodeKey][]string{
		{Kind: graph.Tumor, Name: "T1"}: {"T2"},
		{Kind: graph.Tumor, Name: "T2"}: {},
	}
	_, err := graph.New(spec)
	assert.ErrorIs(t, err, graph.ErrTumorChild)
}

func TestNewRejectsDuplicateName(t *testing.T) {
	spec := map[graph.NodeKey][]string{
		{Kind: graph.Tumor, Name: "X"}: {},
		{Kind: graph.LNL, Name: "X"}:   {},
	}
	_, err := graph.New(spec)
	require.Error(t, err)
	assert.True(t, errors.Is(err, graph.ErrDuplicateName))
}

func TestIncomingEdges(t *testing.T) {
	g, err := graph.New(twoLNLSpec())
	require.NoError(t, err)

	in := g.IncomingEdges("II")
	require.Len(t, in, 2)
}
