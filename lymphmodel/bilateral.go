package lymphmodel

import (
	"github.com/katalvlaran/lymphatic/bilateral"
	"github.com/katalvlaran/lymphatic/compress"
	"github.com/katalvlaran/lymphatic/graph"
	"github.com/katalvlaran/lymphatic/modality"
	"github.com/katalvlaran/lymphatic/params"
)

// Bilateral composes two Unilateral cores over the same graph topology
// behind an explicit symmetry Broker.
type Bilateral struct {
	Ipsi, Contra *Unilateral
	broker       *bilateral.Broker
}

// NewBilateral constructs two independent Unilateral cores over
// identically-shaped graphs built from the same spec, linked by a
// Broker configured with flags.
func NewBilateral(spec map[graph.NodeKey][]string, flags bilateral.Flags, graphOpts []graph.Option, opts ...Option) (*Bilateral, error) {
	ipsiGraph, err := graph.New(spec, graphOpts...)
	if err != nil {
		return nil, lymphmodelErrorf("NewBilateral", err)
	}
	contraGraph, err := graph.New(spec, graphOpts...)
	if err != nil {
		return nil, lymphmodelErrorf("NewBilateral", err)
	}

	ipsi, err := NewUnilateral(ipsiGraph, opts...)
	if err != nil {
		return nil, lymphmodelErrorf("NewBilateral", err)
	}
	contra, err := NewUnilateral(contraGraph, opts...)
	if err != nil {
		return nil, lymphmodelErrorf("NewBilateral", err)
	}

	broker := bilateral.NewBroker(ipsiGraph, contraGraph, ipsi.blk, contra.blk, ipsi.reg, contra.reg, flags)

	return &Bilateral{Ipsi: ipsi, Contra: contra, broker: broker}, nil
}

// SetSpreadParams assigns values to side's edge class, mirroring to the
// other side when the matching symmetry flag is set.
func (bl *Bilateral) SetSpreadParams(side bilateral.Side, kind params.Kind, values []float64) error {
	return bl.broker.SetSpreadParams(side, kind, values)
}

// SetSpreadProbAt writes a single edge's spread_prob, mirroring by
// position when the matching symmetry flag is set.
func (bl *Bilateral) SetSpreadProbAt(side bilateral.Side, kind params.Kind, edgeIndex int, v float64) error {
	return bl.broker.SetSpreadProbAt(side, kind, edgeIndex, v)
}

// SetModality registers a modality on side, mirroring when
// modalities_symmetric is set.
func (bl *Bilateral) SetModality(side bilateral.Side, name string, kind modality.Kind, sp, sn float64) error {
	return bl.broker.SetModality(side, name, kind, sp, sn)
}

// LoadPatientData loads independent patient tables for each side.
func (bl *Bilateral) LoadPatientData(ipsiRows, contraRows []compress.Row, mapper compress.TStageMapper) error {
	if err := bl.Ipsi.LoadPatientData(ipsiRows, mapper); err != nil {
		return err
	}
	return bl.Contra.LoadPatientData(contraRows, mapper)
}

// JointLogLikelihood scores a bilateral HMM likelihood via a trace
// identity, given pre-built joint per-stage columns (each pairing one
// patient's ipsi and contra compressed observation vectors).
func (bl *Bilateral) JointLogLikelihood(stages []bilateral.JointStage) (float64, error) {
	ipsiA, err := bl.Ipsi.asm.TransitionMatrix()
	if err != nil {
		return 0, lymphmodelErrorf("JointLogLikelihood", err)
	}
	contraA, err := bl.Contra.asm.TransitionMatrix()
	if err != nil {
		return 0, lymphmodelErrorf("JointLogLikelihood", err)
	}
	ipsiB, _, err := bl.Ipsi.asm.ObservationMatrix()
	if err != nil {
		return 0, lymphmodelErrorf("JointLogLikelihood", err)
	}
	contraB, _, err := bl.Contra.asm.ObservationMatrix()
	if err != nil {
		return 0, lymphmodelErrorf("JointLogLikelihood", err)
	}

	return bilateral.JointLogLikelihoodHMM(ipsiA, contraA, ipsiB, contraB, stages)
}
