package params

import "github.com/katalvlaran/lymphatic/graph"

// Tensor is the per-edge transition tensor T of shape (Kp, Kc, Kc):
// T[parentState][childPrev][childNext] = P(childNext | parentState, childPrev).
type Tensor struct {
	Kp, Kc int
	data   []float64
}

func newIdentityTensor(kp, kc int) *Tensor {
	t := &Tensor{Kp: kp, Kc: kc, data: make([]float64, kp*kc*kc)}
	for p := 0; p < kp; p++ {
		for c := 0; c < kc; c++ {
			t.set(p, c, c, 1)
		}
	}
	return t
}

func (t *Tensor) idx(p, cPrev, cNext int) int {
	return (p*t.Kc+cPrev)*t.Kc + cNext
}

func (t *Tensor) set(p, cPrev, cNext int, v float64) { t.data[t.idx(p, cPrev, cNext)] = v }

// At returns T[parentState][childPrev][childNext].
func (t *Tensor) At(p, cPrev, cNext int) float64 { return t.data[t.idx(p, cPrev, cNext)] }

type tensorKey struct {
	kp, kc             int
	isTumor, isGrowth  bool
	spreadProb, microM float64
}

// Tensor computes (or returns the memoized) per-edge transition tensor
// for e:
//
//   - Tumor edge: row "parent active" (index 0 in the tensor's parent
//     axis — tumor state is always 1 but contributes through row 0 by
//     convention) goes from healthy to [1-p, p, 0,...].
//   - Growth edge: micro (index 1) transitions to [0, 1-p, p].
//   - LNL->LNL, Kp==3: healthy child row split between micro-parent
//     (spread*micro_mod) and macro-parent (spread) contributions.
//   - LNL->LNL, Kp==2: involved parent (index 1) spreads at rate p.
//
// Every other cell defaults to the identity (no transition).
func (b *Block) Tensor(e *graph.Edge) *Tensor {
	kp, kc := parentK(e, b.g.K()), childK(e, b.g.K())
	spread := b.SpreadProb(e)
	micro := b.MicroMod(e)

	key := tensorKey{kp: kp, kc: kc, isTumor: e.IsTumorEdge(), isGrowth: e.IsGrowth, spreadProb: spread, microM: micro}

	b.tensorMu.Lock()
	defer b.tensorMu.Unlock()
	if cached, ok := b.tensorCache[key]; ok {
		return cached
	}

	t := computeTensor(kp, kc, e.IsTumorEdge(), e.IsGrowth, spread, micro)
	b.tensorCache[key] = t
	return t
}

func parentK(e *graph.Edge, graphK int) int {
	if e.IsTumorEdge() {
		return 2 // two tumor rows: row 0 carries the spreading contribution, row 1 stays identity
	}
	return graphK
}

func childK(e *graph.Edge, graphK int) int {
	return graphK
}

func computeTensor(kp, kc int, isTumor, isGrowth bool, spreadProb, microMod float64) *Tensor {
	t := newIdentityTensor(kp, kc)

	row := func(p, cPrev int, vals ...float64) {
		for i, v := range vals {
			t.set(p, cPrev, i, v)
		}
	}
	padded := func(p float64) []float64 {
		out := make([]float64, kc)
		out[0] = 1 - p
		out[1] = p
		return out
	}

	switch {
	case isTumor:
		// Tumor parent index 1 is "active"; stored at row 0 per the
		// tensor's own convention (tumor state is always 1, but the
		// parent axis reserves row 0 for its spreading contribution in
		// this implementation's indexing).
		row(0, 0, padded(spreadProb)...)

	case isGrowth:
		// kc == 3 always for growth edges.
		row(1, 1, 0, 1-spreadProb, spreadProb)

	case kp == 3:
		microSpread := spreadProb * microMod
		row(1, 0, padded(microSpread)...)
		row(2, 0, padded(spreadProb)...)

	default: // LNL->LNL, kp == 2
		row(1, 0, padded(spreadProb)...)
	}

	return t
}
