package modality

import (
	"sort"
	"sync"

	"github.com/katalvlaran/lymphatic/matrix"
)

// Kind distinguishes the two confusion-matrix flavors a diagnostic
// modality can have.
type Kind int

const (
	// Clinical modalities cannot detect microscopic disease.
	Clinical Kind = iota
	// Pathological modalities detect both microscopic and macroscopic disease.
	Pathological
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k == Clinical {
		return "Clinical"
	}
	return "Pathological"
}

type entry struct {
	kind   Kind
	sp, sn float64
}

// Registry holds the set of registered diagnostic modalities, keyed by
// name, in a stable (sorted) iteration order.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]entry
	version uint64
}

// NewRegistry constructs an empty modality registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]entry)}
}

// Set registers (or overwrites) modality name with the given kind,
// specificity and sensitivity. sp and sn must lie in [0.5, 1.0].
func (r *Registry) Set(name string, kind Kind, sp, sn float64) error {
	if name == "" {
		return modalityErrorf("Set", ErrEmptyName)
	}
	if kind != Clinical && kind != Pathological {
		return modalityErrorf("Set", ErrUnknownKind)
	}
	if sp < 0.5 || sp > 1.0 || sn < 0.5 || sn > 1.0 {
		return modalityErrorf("Set", ErrInvalidSpSn)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[name] = entry{kind: kind, sp: sp, sn: sn}
	r.version++
	return nil
}

// Version returns a counter incremented on every successful Set, usable
// by the assembler as an "is-current" check for B.
func (r *Registry) Version() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.version
}

// Len returns the number of registered modalities.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Names returns registered modality names in a stable, sorted order —
// the canonical m=0..M-1 ordering used when packing observation indices.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ConfusionMatrix builds the K x 2 confusion matrix for modality name
// under a K-state hidden encoding:
//
//   - Clinical:     rows {0,...,K-2} = [sp, 1-sp]; row K-1 = [1-sn, sn].
//   - Pathological:  row 0 = [sp, 1-sp]; rows {1,...,K-1} = [1-sn, sn].
//
// For K=2 both flavors collapse to the usual binary confusion matrix.
func (r *Registry) ConfusionMatrix(name string, k int) (*matrix.Dense, error) {
	r.mu.RLock()
	e, ok := r.entries[name]
	r.mu.RUnlock()
	if !ok {
		return nil, modalityErrorf("ConfusionMatrix", ErrUnknownModality)
	}

	cm, err := matrix.NewDense(k, 2)
	if err != nil {
		return nil, modalityErrorf("ConfusionMatrix", err)
	}

	healthyRow := []float64{e.sp, 1 - e.sp}
	involvedRow := []float64{1 - e.sn, e.sn}

	for state := 0; state < k; state++ {
		isDetectable := state > 0
		if e.kind == Clinical {
			// Clinical: only the macroscopic state (K-1) is detectable.
			isDetectable = state == k-1
		}
		row := healthyRow
		if isDetectable {
			row = involvedRow
		}
		_ = cm.Set(state, 0, row[0])
		_ = cm.Set(state, 1, row[1])
	}

	return cm, nil
}
