package graph

import "sort"

// New validates spec and constructs a Graph.
//
// spec maps every node, keyed by (kind, name), to the list of neighbor
// names it connects to. Tumor nodes list their drainage targets (LNLs);
// LNL nodes list the downstream LNLs they can spread to. Growth edges
// are never listed — they are generated automatically for trinary
// graphs, one per LNL.
//
// Stage 1 (Validate): unique names, no self-loops, no duplicate
// neighbor entries, every neighbor name resolves to a declared node.
// Stage 2 (Prepare): partition nodes into tumors/LNLs, assign the
// canonical LNL index order (sorted by name, for determinism).
// Stage 3 (Execute): materialize edges into tumor/lnl/growth buckets.
// Stage 4 (Finalize): return the built Graph or the first GraphError
// encountered.
//
// Complexity: O(N + E log N) where N = len(spec), E = total neighbor
// entries (the log factor is the canonical-order sort).
func New(spec map[NodeKey][]string, opts ...Option) (*Graph, error) {
	cfg := &buildConfig{allowGrowth: true}
	for _, opt := range opts {
		opt(cfg)
	}

	if err := validateSpec(spec); err != nil {
		return nil, err
	}

	k := 2
	if cfg.trinary {
		k = 3
	}

	g := &Graph{
		k:           k,
		allowGrowth: cfg.trinary && cfg.allowGrowth,
		nodes:       make(map[string]*Node, len(spec)),
	}

	// Stage 2: materialize nodes, tumors first in encounter order is not
	// defined by map iteration, so we sort names within each kind for a
	// fully deterministic build regardless of Go's map ordering.
	var tumorNames, lnlNames []string
	for key := range spec {
		switch key.Kind {
		case Tumor:
			tumorNames = append(tumorNames, key.Name)
		case LNL:
			lnlNames = append(lnlNames, key.Name)
		}
	}
	sort.Strings(tumorNames)
	sort.Strings(lnlNames)

	for _, name := range tumorNames {
		n := &Node{Kind: Tumor, Name: name, lnlIndex: -1}
		g.nodes[name] = n
		g.tumors = append(g.tumors, n)
	}
	for i, name := range lnlNames {
		n := &Node{Kind: LNL, Name: name, lnlIndex: i}
		g.nodes[name] = n
		g.lnls = append(g.lnls, n)
	}

	if len(g.lnls) == 0 {
		return nil, graphErrorf("New", ErrNoLNLs)
	}

	// Stage 3: materialize edges in the same deterministic order as the
	// sorted node lists, parent-major then child-minor.
	for _, name := range append(append([]string{}, tumorNames...), lnlNames...) {
		parent := g.nodes[name]
		key := NodeKey{Kind: parent.Kind, Name: name}
		neighbors := append([]string{}, spec[key]...)
		sort.Strings(neighbors)
		for _, childName := range neighbors {
			child := g.nodes[childName]
			e := &Edge{Parent: parent, Child: child}
			g.edges = append(g.edges, e)
			if e.IsTumorEdge() {
				g.tumorEdges = append(g.tumorEdges, e)
			} else {
				g.lnlEdges = append(g.lnlEdges, e)
			}
		}
	}

	if g.allowGrowth {
		for _, lnl := range g.lnls {
			e := &Edge{Parent: lnl, Child: lnl, IsGrowth: true}
			g.edges = append(g.edges, e)
			g.growthEdges = append(g.growthEdges, e)
		}
	}

	return g, nil
}

// validateSpec enforces the drainage graph's construction invariants:
// non-empty, unique node names, no self-loops, no neighbor named twice.
func validateSpec(spec map[NodeKey][]string) error {
	seen := make(map[string]NodeKey, len(spec))
	for key, neighbors := range spec {
		if key.Name == "" {
			return graphErrorf("New", ErrEmptyName)
		}
		if _, ok := seen[key.Name]; ok {
			return graphErrorf("New", ErrDuplicateName)
		}
		seen[key.Name] = key

		uniq := make(map[string]struct{}, len(neighbors))
		for _, n := range neighbors {
			if n == key.Name {
				return graphErrorf("New", ErrSelfLoop)
			}
			if _, dup := uniq[n]; dup {
				return graphErrorf("New", ErrDuplicateConnection)
			}
			uniq[n] = struct{}{}
		}
	}

	for _, neighbors := range spec {
		for _, n := range neighbors {
			target, ok := seen[n]
			if !ok {
				return graphErrorf("New", ErrUnknownNeighbor)
			}
			if target.Kind == Tumor {
				return graphErrorf("New", ErrTumorChild)
			}
		}
	}

	return nil
}
