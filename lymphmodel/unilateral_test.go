package lymphmodel_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lymphatic/bilateral"
	"github.com/katalvlaran/lymphatic/compress"
	"github.com/katalvlaran/lymphatic/graph"
	"github.com/katalvlaran/lymphatic/lymphmodel"
	"github.com/katalvlaran/lymphatic/modality"
	"github.com/katalvlaran/lymphatic/params"
)

func s1Spec() map[graph.NodeKey][]string {
	return map[graph.NodeKey][]string{
		{Kind: graph.Tumor, Name: "T"}: {"I"},
		{Kind: graph.LNL, Name: "I"}:   {},
	}
}

// Graph T->I, K=2, spread_prob=0.3, one clinical modality (sp=0.9,
// sn=0.8): state_dist(diag_time=2) = [0.49, 0.51], matching the closed
// form 1-(1-p)^t for a single non-self-healing edge.
func TestStateDistAtFixedDiagTime(t *testing.T) {
	g, err := graph.New(s1Spec())
	require.NoError(t, err)

	m, err := lymphmodel.NewUnilateral(g)
	require.NoError(t, err)
	require.NoError(t, m.SetSpreadParams(params.TumorSpread, []float64{0.3}))
	require.NoError(t, m.SetModalities(map[string]lymphmodel.ModalitySpec{
		"CT": {Kind: modality.Clinical, Specificity: 0.9, Sensitivity: 0.8},
	}))

	t2 := 2
	dist, err := m.StateDist(lymphmodel.StateDistOptions{Mode: lymphmodel.HMM, DiagTime: &t2})
	require.NoError(t, err)
	assert.InDelta(t, 0.49, dist[0], 1e-9)
	assert.InDelta(t, 0.51, dist[1], 1e-9)
}

// Loading patient data and scoring log-likelihood under a diagnose-time
// distribution yields a finite, strictly negative value.
func TestLogLikelihoodFinite(t *testing.T) {
	g, err := graph.New(s1Spec())
	require.NoError(t, err)

	m, err := lymphmodel.NewUnilateral(g)
	require.NoError(t, err)
	require.NoError(t, m.SetSpreadParams(params.TumorSpread, []float64{0.3}))
	require.NoError(t, m.SetModalities(map[string]lymphmodel.ModalitySpec{
		"CT": {Kind: modality.Clinical, Specificity: 0.9, Sensitivity: 0.8},
	}))

	rows := []compress.Row{
		{RawTStage: "1", Diagnoses: map[compress.Cell]bool{{Modality: "CT", LNL: "I"}: true}},
		{RawTStage: "1", Diagnoses: map[compress.Cell]bool{{Modality: "CT", LNL: "I"}: true}},
		{RawTStage: "1", Diagnoses: map[compress.Cell]bool{{Modality: "CT", LNL: "I"}: true}},
		{RawTStage: "1", Diagnoses: map[compress.Cell]bool{{Modality: "CT", LNL: "I"}: false}},
		{RawTStage: "1", Diagnoses: map[compress.Cell]bool{{Modality: "CT", LNL: "I"}: false}},
	}
	require.NoError(t, m.LoadPatientData(rows, nil))

	pi := make([]float64, 6)
	for i := range pi {
		pi[i] = 1.0 / 6
	}

	ll, err := m.LogLikelihood(lymphmodel.LogLikelihoodOptions{
		Mode: lymphmodel.HMM,
		Times: map[string]lymphmodel.TimeSpec{
			"early": {TimeDistribution: pi},
		},
	})
	require.NoError(t, err)
	assert.False(t, math.IsInf(ll, 0) || math.IsNaN(ll))
	assert.Less(t, ll, 0.0)
}

// Under the one-shot (BN) mode, log-likelihood as a function of
// spread_prob is unimodal: for a cohort of 3 positive and 2 negative
// observations under CT (sp=0.9, sn=0.8), the maximum-likelihood
// estimate works out to p=5/7 (solving d/dp[3*log(0.1+0.7p) +
// 2*log(0.9-0.7p)] = 0). Scoring below, at, and above that point must
// show the log-likelihood rise then fall.
func TestLogLikelihoodPeaksNearMaximumLikelihoodEstimate(t *testing.T) {
	rows := []compress.Row{
		{RawTStage: "1", Diagnoses: map[compress.Cell]bool{{Modality: "CT", LNL: "I"}: true}},
		{RawTStage: "1", Diagnoses: map[compress.Cell]bool{{Modality: "CT", LNL: "I"}: true}},
		{RawTStage: "1", Diagnoses: map[compress.Cell]bool{{Modality: "CT", LNL: "I"}: true}},
		{RawTStage: "1", Diagnoses: map[compress.Cell]bool{{Modality: "CT", LNL: "I"}: false}},
		{RawTStage: "1", Diagnoses: map[compress.Cell]bool{{Modality: "CT", LNL: "I"}: false}},
	}

	scoreAt := func(p float64) float64 {
		g, err := graph.New(s1Spec())
		require.NoError(t, err)
		m, err := lymphmodel.NewUnilateral(g)
		require.NoError(t, err)
		require.NoError(t, m.SetSpreadParams(params.TumorSpread, []float64{p}))
		require.NoError(t, m.SetModalities(map[string]lymphmodel.ModalitySpec{
			"CT": {Kind: modality.Clinical, Specificity: 0.9, Sensitivity: 0.8},
		}))
		require.NoError(t, m.LoadPatientData(rows, nil))

		ll, err := m.LogLikelihood(lymphmodel.LogLikelihoodOptions{Mode: lymphmodel.BN})
		require.NoError(t, err)
		return ll
	}

	below := scoreAt(0.3)
	atMLE := scoreAt(5.0 / 7.0)
	above := scoreAt(0.9)

	assert.Less(t, below, atMLE)
	assert.Less(t, above, atMLE)
}

func TestLogLikelihoodRequiresData(t *testing.T) {
	g, err := graph.New(s1Spec())
	require.NoError(t, err)
	m, err := lymphmodel.NewUnilateral(g)
	require.NoError(t, err)

	_, err = m.LogLikelihood(lymphmodel.LogLikelihoodOptions{Mode: lymphmodel.BN})
	assert.ErrorIs(t, err, lymphmodel.ErrNoDataLoaded)
}

// Log-likelihood is -Inf whenever the requested diag_time exceeds T_max.
func TestLogLikelihoodNegInfWhenDiagTimeExceedsTMax(t *testing.T) {
	g, err := graph.New(s1Spec())
	require.NoError(t, err)

	m, err := lymphmodel.NewUnilateral(g, lymphmodel.WithTMax(3))
	require.NoError(t, err)
	require.NoError(t, m.SetSpreadParams(params.TumorSpread, []float64{0.3}))
	require.NoError(t, m.SetModalities(map[string]lymphmodel.ModalitySpec{
		"CT": {Kind: modality.Clinical, Specificity: 0.9, Sensitivity: 0.8},
	}))
	require.NoError(t, m.LoadPatientData([]compress.Row{
		{RawTStage: "1", Diagnoses: map[compress.Cell]bool{{Modality: "CT", LNL: "I"}: true}},
	}, nil))

	over := 4
	ll, err := m.LogLikelihood(lymphmodel.LogLikelihoodOptions{
		Mode: lymphmodel.HMM,
		Times: map[string]lymphmodel.TimeSpec{
			"early": {DiagTime: &over},
		},
	})
	require.NoError(t, err)
	assert.True(t, math.IsInf(ll, -1))
}

// At the top-level API, a bilateral model with tumor_spread_symmetric
// = true propagates a write to ipsi's tumor->I spread over to contra.
func TestBilateralTumorSpreadSymmetricPropagatesAtTopLevel(t *testing.T) {
	bl, err := lymphmodel.NewBilateral(s1Spec(), bilateral.Flags{TumorSpreadSymmetric: true}, nil)
	require.NoError(t, err)

	require.NoError(t, bl.SetSpreadProbAt(bilateral.Ipsi, params.TumorSpread, 0, 0.4))

	ipsiEdges := bl.Ipsi.Graph().TumorEdges()
	contraEdges := bl.Contra.Graph().TumorEdges()
	assert.Equal(t, 0.4, bl.Ipsi.SpreadProb(ipsiEdges[0]))
	assert.Equal(t, 0.4, bl.Contra.SpreadProb(contraEdges[0]))
}
