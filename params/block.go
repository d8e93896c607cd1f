package params

import (
	"sync"

	"github.com/katalvlaran/lymphatic/graph"
)

// Kind tags one of the four closed parameter categories a drainage
// graph's edges can carry.
type Kind int

const (
	// TumorSpread parametrizes tumor->LNL edges.
	TumorSpread Kind = iota
	// LnlSpread parametrizes LNL->LNL edges.
	LnlSpread
	// Growth parametrizes the auto-generated micro->macro edges (K=3 only).
	Growth
	// MicroMod scales spread contributed by a microscopic parent (K=3 only).
	MicroMod
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case TumorSpread:
		return "TumorSpread"
	case LnlSpread:
		return "LnlSpread"
	case Growth:
		return "Growth"
	case MicroMod:
		return "MicroMod"
	default:
		return "Unknown"
	}
}

// Block owns the parameter values living on top of a graph.Graph's
// edges: spread_prob for every edge (tumor, lnl, growth) and micro_mod
// for lnl-edges on trinary graphs. Writes invalidate nothing by
// themselves — the assembler decides what derived state to recompute —
// but Block bumps an internal version counter callers can poll.
type Block struct {
	g *graph.Graph

	mu       sync.RWMutex
	spread   map[*graph.Edge]float64
	microMod map[*graph.Edge]float64
	version  uint64

	tensorMu    sync.Mutex
	tensorCache map[tensorKey]*Tensor
}

// NewBlock constructs a parameter block over g with every spread_prob
// and micro_mod initialized to zero.
func NewBlock(g *graph.Graph) *Block {
	b := &Block{
		g:           g,
		spread:      make(map[*graph.Edge]float64),
		microMod:    make(map[*graph.Edge]float64),
		tensorCache: make(map[tensorKey]*Tensor),
	}
	for _, e := range g.Edges() {
		b.spread[e] = 0
		if g.IsTrinary() && e.IsLNLEdge() {
			b.microMod[e] = 0
		}
	}
	return b
}

// Version returns a counter incremented on every successful write,
// usable by callers (the assembler) as a cheap "is-current" check.
func (b *Block) Version() uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.version
}

func (b *Block) edgesFor(kind Kind) ([]*graph.Edge, error) {
	switch kind {
	case TumorSpread:
		return b.g.TumorEdges(), nil
	case LnlSpread:
		return b.g.LNLEdges(), nil
	case Growth:
		if !b.g.IsTrinary() || len(b.g.GrowthEdges()) == 0 {
			return nil, paramsErrorf("edgesFor", ErrGrowthNotApplicable)
		}
		return b.g.GrowthEdges(), nil
	case MicroMod:
		if !b.g.IsTrinary() {
			return nil, paramsErrorf("edgesFor", ErrMicroModNotApplicable)
		}
		return b.g.LNLEdges(), nil
	default:
		return nil, paramsErrorf("edgesFor", ErrUnknownKind)
	}
}

// SetSpreadParams assigns values to every edge of the given class, in
// that class's deterministic order (graph.TumorEdges/LNLEdges/
// GrowthEdges). len(values) must equal the class's cardinality.
//
// Stage 1 (Validate): resolve the target edge slice, check shape.
// Stage 2 (Execute): assign values[i] to edges[i]'s spread_prob (or
// micro_mod, for Kind==MicroMod).
// Stage 3 (Finalize): bump the version counter; does not itself
// invalidate caches in other packages — callers (the assembler) poll
// Version() lazily.
func (b *Block) SetSpreadParams(kind Kind, values []float64) error {
	edges, err := b.edgesFor(kind)
	if err != nil {
		return err
	}
	if len(values) != len(edges) {
		return paramsErrorf("SetSpreadParams", ErrShapeMismatch)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for i, e := range edges {
		if kind == MicroMod {
			b.microMod[e] = values[i]
		} else {
			b.spread[e] = values[i]
		}
	}
	b.version++

	return nil
}

// SpreadProb returns the current spread_prob of edge e.
func (b *Block) SpreadProb(e *graph.Edge) float64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.spread[e]
}

// SetSpreadProb assigns a single edge's spread_prob directly — used by
// the bilateral symmetry broker to mirror a single write without
// requiring the full edge-class slice.
func (b *Block) SetSpreadProb(e *graph.Edge, v float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.spread[e] = v
	b.version++
}

// MicroMod returns the current micro_mod of edge e (0 if not applicable).
func (b *Block) MicroMod(e *graph.Edge) float64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.microMod[e]
}

// SetMicroModFor assigns a single edge's micro_mod directly, mirroring
// SetSpreadProb's role for bilateral synchronization.
func (b *Block) SetMicroModFor(e *graph.Edge, v float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.microMod[e] = v
	b.version++
}

// AllSpreadProbs returns every edge's spread_prob, in the graph's
// overall edge order (tumor, lnl, growth) — the flat spread_probs
// vector other tooling expects.
func (b *Block) AllSpreadProbs() []float64 {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]float64, 0, len(b.g.Edges()))
	for _, e := range b.g.Edges() {
		out = append(out, b.spread[e])
	}
	return out
}

// AllValid reports whether every spread_prob and micro_mod currently
// held lies in [0,1] — the gate log-likelihood uses to return -Inf
// instead of raising an exception.
func (b *Block) AllValid() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, v := range b.spread {
		if v < 0 || v > 1 {
			return false
		}
	}
	for _, v := range b.microMod {
		if v < 0 || v > 1 {
			return false
		}
	}
	return true
}
