package statespace

// Space enumerates the K^L hidden states of an L-LNL, K-state model.
type Space struct {
	L, K, N int
}

// New constructs a Space for L LNLs with K states each.
func New(L, K int) (*Space, error) {
	if L <= 0 || K < 2 {
		return nil, statespaceErrorf("New", ErrInvalidDims)
	}
	n := 1
	for i := 0; i < L; i++ {
		n *= K
	}
	return &Space{L: L, K: K, N: n}, nil
}

// State returns the base-K digit vector for state index i, most
// significant digit first (position 0).
func (s *Space) State(i int) []int {
	return digits(i, s.K, s.L)
}

// Index returns the state index for a digit vector (MSB first, length L).
func (s *Space) Index(ds []int) int {
	idx := 0
	for _, d := range ds {
		idx = idx*s.K + d
	}
	return idx
}

// digits converts number into base base as a length-length slice,
// most-significant digit first, zero-padded.
func digits(number, base, length int) []int {
	out := make([]int, length)
	for i := length - 1; i >= 0; i-- {
		out[i] = number % base
		number /= base
	}
	return out
}

// GreaterEqual reports whether a dominates b componentwise (a[i] >= b[i]
// for all i) — the partial order underlying the self-healing-forbidden
// transition structure.
func GreaterEqual(a, b []int) bool {
	for i := range a {
		if a[i] < b[i] {
			return false
		}
	}
	return true
}
