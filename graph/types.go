package graph

import "sync"

// Kind distinguishes tumor nodes from lymph-node-level (LNL) nodes.
type Kind uint8

const (
	// Tumor marks a primary tumor node. Tumor nodes always have state 1
	// and only ever carry outgoing edges.
	Tumor Kind = iota
	// LNL marks a lymph-node-level node.
	LNL
)

// String implements fmt.Stringer for Kind.
func (k Kind) String() string {
	if k == Tumor {
		return "tumor"
	}
	return "lnl"
}

// NodeKey identifies a node by its kind and name, mirroring the
// (kind, name) -> []neighbor construction mapping graphs are built from.
type NodeKey struct {
	Kind Kind
	Name string
}

// Node is a single vertex of the drainage graph.
type Node struct {
	Kind Kind
	Name string

	// lnlIndex is the position of this node within the canonical LNL
	// ordering (see Graph.LNLs). It is -1 for tumor nodes.
	lnlIndex int
}

// LNLIndex returns the node's position in the canonical LNL ordering, or
// -1 if the node is a tumor.
func (n *Node) LNLIndex() int { return n.lnlIndex }

// Edge is a directed connection from a parent node to a child LNL.
//
// Edges fall into three disjoint classes, queryable via Kind-like
// predicates: tumor-edges (Parent.Kind == Tumor), lnl-edges (both
// endpoints are LNL, IsGrowth == false), and growth-edges (Parent ==
// Child, IsGrowth == true, only present when the graph is trinary).
type Edge struct {
	Parent   *Node
	Child    *Node
	IsGrowth bool
}

// IsTumorEdge reports whether this edge originates at a tumor node.
func (e *Edge) IsTumorEdge() bool { return e.Parent.Kind == Tumor }

// IsLNLEdge reports whether this edge connects two distinct LNLs.
func (e *Edge) IsLNLEdge() bool { return !e.IsTumorEdge() && !e.IsGrowth }

// Graph is the validated, immutable-shape drainage network: node set and
// edge topology are fixed at construction time; only the parameter
// values living on top of each edge (see package params) ever change.
type Graph struct {
	mu sync.RWMutex

	k           int // 2 (binary) or 3 (trinary)
	allowGrowth bool

	nodes  map[string]*Node
	tumors []*Node
	lnls   []*Node // canonical order: see build.go

	edges       []*Edge
	tumorEdges  []*Edge
	lnlEdges    []*Edge
	growthEdges []*Edge
}

// K returns the per-node state cardinality: 2 for binary, 3 for trinary.
func (g *Graph) K() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.k
}

// IsTrinary reports whether this graph uses the 3-state LNL encoding.
func (g *Graph) IsTrinary() bool { return g.K() == 3 }

// NumLNLs returns L, the number of lymph-node-level nodes.
func (g *Graph) NumLNLs() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.lnls)
}

// LNLs returns the canonical, index-ordered list of LNL nodes. The
// returned slice must not be mutated by the caller.
func (g *Graph) LNLs() []*Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.lnls
}

// Tumors returns the tumor nodes in construction order.
func (g *Graph) Tumors() []*Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.tumors
}

// Edges returns all edges (tumor-edges, lnl-edges, and — if trinary —
// growth-edges) in a stable order: tumor-edges, then lnl-edges, then
// growth-edges.
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// TumorEdges returns edges whose parent is a tumor node.
func (g *Graph) TumorEdges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.tumorEdges
}

// LNLEdges returns edges connecting two distinct LNLs.
func (g *Graph) LNLEdges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.lnlEdges
}

// GrowthEdges returns the auto-generated micro→macro edges, one per LNL,
// present only when the graph is trinary and growth is allowed.
func (g *Graph) GrowthEdges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.growthEdges
}

// Node looks up a node by name.
func (g *Graph) Node(name string) (*Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[name]
	return n, ok
}

// IncomingEdges returns, in a deterministic order, every edge whose
// child is the LNL named name (excluding growth-edges, which are
// single-node self-transitions handled separately by the assembler).
func (g *Graph) IncomingEdges(name string) []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []*Edge
	for _, e := range g.edges {
		if e.IsGrowth {
			continue
		}
		if e.Child.Name == name {
			out = append(out, e)
		}
	}
	return out
}

// GrowthEdgeFor returns the growth edge attached to the named LNL, if any.
func (g *Graph) GrowthEdgeFor(name string) (*Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, e := range g.growthEdges {
		if e.Child.Name == name {
			return e, true
		}
	}
	return nil, false
}

// Option configures graph construction.
type Option func(*buildConfig)

type buildConfig struct {
	trinary     bool
	allowGrowth bool
}

// WithTrinary elects the 3-state (healthy/micro/macro) LNL encoding. The
// default is binary (2-state).
func WithTrinary(trinary bool) Option {
	return func(c *buildConfig) { c.trinary = trinary }
}

// WithGrowth controls whether growth edges are auto-generated on a
// trinary graph. Ignored for binary graphs. Defaults to true.
func WithGrowth(allow bool) Option {
	return func(c *buildConfig) { c.allowGrowth = allow }
}
