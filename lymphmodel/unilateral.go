package lymphmodel

import (
	"sort"
	"sync"

	"github.com/katalvlaran/lymphatic/assemble"
	"github.com/katalvlaran/lymphatic/compress"
	"github.com/katalvlaran/lymphatic/evolve"
	"github.com/katalvlaran/lymphatic/graph"
	"github.com/katalvlaran/lymphatic/infer"
	"github.com/katalvlaran/lymphatic/modality"
	"github.com/katalvlaran/lymphatic/params"
)

// Mode selects how a hidden-state distribution is produced for a query.
type Mode int

const (
	// HMM evolves the starting distribution through A, either to a fixed
	// diagnose time or marginalized over a diagnose-time distribution.
	HMM Mode = iota
	// BN is the time-free, one-shot Bayesian-network mode.
	BN
)

// Option configures Unilateral construction.
type Option func(*unilateralConfig)

type unilateralConfig struct {
	tMax int
}

// WithTMax sets T_max, the maximum admissible diagnose time (default 10).
func WithTMax(tMax int) Option {
	return func(c *unilateralConfig) { c.tMax = tMax }
}

// Unilateral is one drainage-side model: a graph plus the parameter,
// modality and (optionally) compressed-data state layered on top of it.
type Unilateral struct {
	g   *graph.Graph
	blk *params.Block
	reg *modality.Registry
	asm *assemble.Assembler

	tMax int

	mu         sync.RWMutex
	compressed map[string]*compress.Compressed
}

// NewUnilateral constructs a Unilateral model over g.
func NewUnilateral(g *graph.Graph, opts ...Option) (*Unilateral, error) {
	cfg := unilateralConfig{tMax: 10}
	for _, opt := range opts {
		opt(&cfg)
	}

	blk := params.NewBlock(g)
	reg := modality.NewRegistry()
	asm, err := assemble.New(g, blk, reg)
	if err != nil {
		return nil, lymphmodelErrorf("NewUnilateral", err)
	}

	return &Unilateral{g: g, blk: blk, reg: reg, asm: asm, tMax: cfg.tMax}, nil
}

// Graph returns the underlying drainage graph.
func (u *Unilateral) Graph() *graph.Graph { return u.g }

// SpreadProb returns edge e's current spread_prob.
func (u *Unilateral) SpreadProb(e *graph.Edge) float64 { return u.blk.SpreadProb(e) }

// SetSpreadParams assigns spread (or micro_mod) parameters by edge
// class. See params.Block.SetSpreadParams.
func (u *Unilateral) SetSpreadParams(kind params.Kind, values []float64) error {
	return u.blk.SetSpreadParams(kind, values)
}

// ModalitySpec describes one entry of the map SetModalities accepts.
type ModalitySpec struct {
	Kind                     modality.Kind
	Specificity, Sensitivity float64
}

// SetModalities registers every (name -> spec) entry in modalities.
func (u *Unilateral) SetModalities(modalities map[string]ModalitySpec) error {
	for name, spec := range modalities {
		if err := u.reg.Set(name, spec.Kind, spec.Specificity, spec.Sensitivity); err != nil {
			return err
		}
	}
	return nil
}

func (u *Unilateral) lnlNames() []string {
	lnls := u.g.LNLs()
	out := make([]string, len(lnls))
	for i, n := range lnls {
		out[i] = n.Name
	}
	return out
}

// LoadPatientData compresses rows into per-T-stage (C_tau, f_tau) pairs,
// replacing any previously loaded data.
func (u *Unilateral) LoadPatientData(rows []compress.Row, mapper compress.TStageMapper) error {
	_, obs, err := u.asm.ObservationMatrix()
	if err != nil {
		return lymphmodelErrorf("LoadPatientData", err)
	}

	compressed, err := compress.Compress(rows, u.reg.Names(), u.lnlNames(), obs, mapper)
	if err != nil {
		return lymphmodelErrorf("LoadPatientData", err)
	}

	u.mu.Lock()
	u.compressed = compressed
	u.mu.Unlock()
	return nil
}

// TimeSpec supplies either a fixed diagnose time or a full
// diagnose-time distribution for one T-stage's HMM evaluation.
type TimeSpec struct {
	DiagTime         *int
	TimeDistribution []float64
}

// LogLikelihoodOptions configures LogLikelihood.
type LogLikelihoodOptions struct {
	Mode   Mode
	Stages []string // nil means every loaded stage
	Times  map[string]TimeSpec
}

// LogLikelihood scores the currently loaded data under the given mode.
// Returns ErrNoDataLoaded if no data has been loaded yet, and -Inf (no
// error) whenever a spread parameter is out of [0,1] or a requested
// diagnose time exceeds T_max.
func (u *Unilateral) LogLikelihood(opts LogLikelihoodOptions) (float64, error) {
	u.mu.RLock()
	compressed := u.compressed
	u.mu.RUnlock()
	if compressed == nil {
		return 0, lymphmodelErrorf("LogLikelihood", ErrNoDataLoaded)
	}

	stageNames := opts.Stages
	if stageNames == nil {
		stageNames = sortedKeys(compressed)
	}

	a, err := u.asm.TransitionMatrix()
	if err != nil {
		return 0, lymphmodelErrorf("LogLikelihood", err)
	}
	b, _, err := u.asm.ObservationMatrix()
	if err != nil {
		return 0, lymphmodelErrorf("LogLikelihood", err)
	}

	valid := u.blk.AllValid()
	if !valid {
		return infer.LogLikelihood(false, b, nil)
	}

	var stages []infer.StageLikelihood
	for _, name := range stageNames {
		c, ok := compressed[name]
		if !ok {
			return 0, lymphmodelErrorf("LogLikelihood", ErrUnknownTStage)
		}

		var dist []float64
		switch opts.Mode {
		case BN:
			dist = evolve.BNDist(a)
		default:
			ts, ok := opts.Times[name]
			if !ok {
				return 0, lymphmodelErrorf("LogLikelihood", ErrMissingTimeSpec)
			}
			switch {
			case ts.DiagTime != nil:
				if *ts.DiagTime > u.tMax {
					// Every remaining stage's evolution is about to be
					// discarded by the -Inf gate: stop paying for it.
					return infer.LogLikelihood(false, b, nil)
				}
				dist, err = evolve.AtDiagTime(a, *ts.DiagTime)
				if err != nil {
					return 0, lymphmodelErrorf("LogLikelihood", err)
				}
			case ts.TimeDistribution != nil:
				dist, err = evolve.MarginalizedOverPi(a, ts.TimeDistribution)
				if err != nil {
					return 0, lymphmodelErrorf("LogLikelihood", err)
				}
			default:
				return 0, lymphmodelErrorf("LogLikelihood", ErrMissingTimeSpec)
			}
		}

		stages = append(stages, infer.StageLikelihood{StateDist: dist, C: c.C, F: c.F})
	}

	return infer.LogLikelihood(true, b, stages)
}

// StateDistOptions configures StateDist.
type StateDistOptions struct {
	Mode             Mode
	DiagTime         *int
	TimeDistribution []float64
}

// StateDist returns the hidden-state distribution under opts, without
// requiring patient data to be loaded.
func (u *Unilateral) StateDist(opts StateDistOptions) ([]float64, error) {
	a, err := u.asm.TransitionMatrix()
	if err != nil {
		return nil, lymphmodelErrorf("StateDist", err)
	}

	if opts.Mode == BN {
		return evolve.BNDist(a), nil
	}
	switch {
	case opts.DiagTime != nil:
		return evolve.AtDiagTime(a, *opts.DiagTime)
	case opts.TimeDistribution != nil:
		return evolve.MarginalizedOverPi(a, opts.TimeDistribution)
	default:
		return nil, lymphmodelErrorf("StateDist", ErrMissingTimeSpec)
	}
}

// RiskOptions configures Risk.
type RiskOptions struct {
	StateDistOptions
	Diagnoses   map[compress.Cell]bool
	Involvement map[string]bool
}

// Risk computes the risk of a (possibly partial) involvement pattern
// given a (possibly partial) diagnosis.
func (u *Unilateral) Risk(opts RiskOptions) (float64, error) {
	prior, err := u.StateDist(opts.StateDistOptions)
	if err != nil {
		return 0, lymphmodelErrorf("Risk", err)
	}

	b, obs, err := u.asm.ObservationMatrix()
	if err != nil {
		return 0, lymphmodelErrorf("Risk", err)
	}

	e := infer.EncodingVector(obs, u.reg.Names(), u.lnlNames(), opts.Diagnoses)
	posterior, err := infer.Posterior(b, e, prior)
	if err != nil {
		return 0, lymphmodelErrorf("Risk", err)
	}

	sp := u.asm.Space()
	return infer.Risk(posterior, sp, u.lnlNames(), opts.Involvement), nil
}

func sortedKeys(m map[string]*compress.Compressed) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
