package bilateral

import (
	"sync"

	"github.com/katalvlaran/lymphatic/graph"
	"github.com/katalvlaran/lymphatic/modality"
	"github.com/katalvlaran/lymphatic/params"
)

// Side selects which of the two cores a write targets.
type Side int

const (
	// Ipsi is the ipsilateral side.
	Ipsi Side = iota
	// Contra is the contralateral side.
	Contra
)

// Flags holds the three symmetry switches that control whether a write
// to one side of a bilateral model mirrors to the other.
type Flags struct {
	TumorSpreadSymmetric bool
	LnlSpreadSymmetric   bool
	ModalitiesSymmetric  bool
}

// Broker is an explicit parameter-synchronization object in place of an
// attribute-delegation mixin: it owns the symmetry Flags and routes
// every write through itself, mirroring to the other side only when the
// relevant flag is set. A propagating guard makes mirrored writes
// non-cyclic: a mirrored write never triggers a second mirror back to
// its origin.
type Broker struct {
	ipsiGraph, contraGraph *graph.Graph
	ipsiBlk, contraBlk     *params.Block
	ipsiReg, contraReg     *modality.Registry
	flags                  Flags

	mu          sync.Mutex
	propagating bool
}

// NewBroker constructs a Broker over two same-topology graphs and their
// respective parameter blocks and modality registries.
func NewBroker(ipsiGraph, contraGraph *graph.Graph, ipsiBlk, contraBlk *params.Block, ipsiReg, contraReg *modality.Registry, flags Flags) *Broker {
	return &Broker{
		ipsiGraph: ipsiGraph, contraGraph: contraGraph,
		ipsiBlk: ipsiBlk, contraBlk: contraBlk,
		ipsiReg: ipsiReg, contraReg: contraReg,
		flags: flags,
	}
}

func (br *Broker) graphsFor(side Side) (primary, mirror *graph.Graph) {
	if side == Contra {
		return br.contraGraph, br.ipsiGraph
	}
	return br.ipsiGraph, br.contraGraph
}

func (br *Broker) blocksFor(side Side) (primary, mirror *params.Block) {
	if side == Contra {
		return br.contraBlk, br.ipsiBlk
	}
	return br.ipsiBlk, br.contraBlk
}

func (br *Broker) registriesFor(side Side) (primary, mirror *modality.Registry) {
	if side == Contra {
		return br.contraReg, br.ipsiReg
	}
	return br.ipsiReg, br.contraReg
}

func (br *Broker) symmetricFor(kind params.Kind) bool {
	if kind == params.TumorSpread {
		return br.flags.TumorSpreadSymmetric
	}
	return br.flags.LnlSpreadSymmetric // LnlSpread, Growth, MicroMod
}

func edgesForKind(g *graph.Graph, kind params.Kind) []*graph.Edge {
	switch kind {
	case params.TumorSpread:
		return g.TumorEdges()
	case params.Growth:
		return g.GrowthEdges()
	default: // LnlSpread, MicroMod
		return g.LNLEdges()
	}
}

// SetSpreadParams assigns values to every edge of kind on side, in that
// class's deterministic order, then — if kind's symmetry flag is set —
// mirrors the same values onto the other side's matching edge class
// (both graphs share the same topology and edge ordering by
// construction, so no per-edge identity lookup is needed).
func (br *Broker) SetSpreadParams(side Side, kind params.Kind, values []float64) error {
	br.mu.Lock()
	defer br.mu.Unlock()

	primary, mirror := br.blocksFor(side)
	if err := primary.SetSpreadParams(kind, values); err != nil {
		return bilateralErrorf("SetSpreadParams", err)
	}

	if !br.propagating && br.symmetricFor(kind) {
		br.propagating = true
		err := mirror.SetSpreadParams(kind, values)
		br.propagating = false
		if err != nil {
			return bilateralErrorf("SetSpreadParams", err)
		}
	}
	return nil
}

// SetSpreadProbAt writes a single edge's spread_prob (or micro_mod, for
// kind==MicroMod), addressed by its position within kind's edge class,
// then mirrors it by the same position when symmetric: writing ipsi's
// tumor-edge 0 propagates to contra's tumor-edge 0 without touching any
// other edge.
func (br *Broker) SetSpreadProbAt(side Side, kind params.Kind, edgeIndex int, v float64) error {
	br.mu.Lock()
	defer br.mu.Unlock()

	primaryGraph, mirrorGraph := br.graphsFor(side)
	primaryBlk, mirrorBlk := br.blocksFor(side)

	edges := edgesForKind(primaryGraph, kind)
	if edgeIndex < 0 || edgeIndex >= len(edges) {
		return bilateralErrorf("SetSpreadProbAt", ErrEdgeIndexOutOfRange)
	}
	writeOne(primaryBlk, kind, edges[edgeIndex], v)

	if !br.propagating && br.symmetricFor(kind) {
		mirrorEdges := edgesForKind(mirrorGraph, kind)
		if edgeIndex < len(mirrorEdges) {
			br.propagating = true
			writeOne(mirrorBlk, kind, mirrorEdges[edgeIndex], v)
			br.propagating = false
		}
	}
	return nil
}

func writeOne(blk *params.Block, kind params.Kind, e *graph.Edge, v float64) {
	if kind == params.MicroMod {
		blk.SetMicroModFor(e, v)
	} else {
		blk.SetSpreadProb(e, v)
	}
}

// SetModality registers modality name on side, mirroring it onto the
// other side's registry when modalities_symmetric is set.
func (br *Broker) SetModality(side Side, name string, kind modality.Kind, sp, sn float64) error {
	br.mu.Lock()
	defer br.mu.Unlock()

	primary, mirror := br.registriesFor(side)
	if err := primary.Set(name, kind, sp, sn); err != nil {
		return bilateralErrorf("SetModality", err)
	}

	if !br.propagating && br.flags.ModalitiesSymmetric {
		br.propagating = true
		err := mirror.Set(name, kind, sp, sn)
		br.propagating = false
		if err != nil {
			return bilateralErrorf("SetModality", err)
		}
	}
	return nil
}
