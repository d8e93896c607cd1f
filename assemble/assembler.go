package assemble

import (
	"sync"

	"github.com/katalvlaran/lymphatic/graph"
	"github.com/katalvlaran/lymphatic/matrix"
	"github.com/katalvlaran/lymphatic/modality"
	"github.com/katalvlaran/lymphatic/params"
	"github.com/katalvlaran/lymphatic/statespace"
)

// Assembler memoizes A and B against the version counters of the
// params.Block and modality.Registry feeding them, recomputing only
// when a write has actually happened since the last build.
type Assembler struct {
	g   *graph.Graph
	blk *params.Block
	reg *modality.Registry
	sp  *statespace.Space

	mu       sync.Mutex
	a        *matrix.Dense
	aVersion uint64

	b        *matrix.Dense
	bVersion uint64
	obs      *statespace.ObsSpace
	obsM     int
}

// New constructs an Assembler over g, blk and reg. g, blk and reg must
// already be mutually consistent (blk and reg built against g).
func New(g *graph.Graph, blk *params.Block, reg *modality.Registry) (*Assembler, error) {
	sp, err := statespace.New(g.NumLNLs(), g.K())
	if err != nil {
		return nil, assembleErrorf("New", err)
	}
	return &Assembler{g: g, blk: blk, reg: reg, sp: sp}, nil
}

// Space returns the hidden-state space backing this assembler.
func (asm *Assembler) Space() *statespace.Space { return asm.sp }

// TransitionMatrix returns the current A, rebuilding it only if blk has
// been written to since the last build.
func (asm *Assembler) TransitionMatrix() (*matrix.Dense, error) {
	asm.mu.Lock()
	defer asm.mu.Unlock()

	v := asm.blk.Version()
	if asm.a != nil && asm.aVersion == v {
		return asm.a, nil
	}

	a, err := BuildTransitionMatrix(asm.g, asm.blk, asm.sp)
	if err != nil {
		return nil, assembleErrorf("TransitionMatrix", err)
	}
	asm.a, asm.aVersion = a, v
	return a, nil
}

// ObservationMatrix returns the current B and its backing ObsSpace,
// rebuilding both only if reg has changed (any successful Set, including
// one that overwrites an existing modality) since the last build.
func (asm *Assembler) ObservationMatrix() (*matrix.Dense, *statespace.ObsSpace, error) {
	asm.mu.Lock()
	defer asm.mu.Unlock()

	v := asm.reg.Version()
	m := asm.reg.Len()
	if asm.b != nil && asm.bVersion == v && asm.obsM == m {
		return asm.b, asm.obs, nil
	}

	obs, err := statespace.NewObs(asm.g.NumLNLs(), m)
	if err != nil {
		return nil, nil, assembleErrorf("ObservationMatrix", err)
	}
	b, err := BuildObservationMatrix(asm.g, asm.reg, asm.sp, obs)
	if err != nil {
		return nil, nil, assembleErrorf("ObservationMatrix", err)
	}

	asm.b, asm.bVersion, asm.obs, asm.obsM = b, v, obs, m
	return b, obs, nil
}
