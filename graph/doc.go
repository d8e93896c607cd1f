// Package graph is the in-memory representation of a lymphatic drainage
// network: a small directed graph of tumor and lymph-node-level (LNL)
// nodes, built once and then only mutated through the parameter blocks
// that own its edges.
//
//	A modern, zero-dependency building block that brings together:
//
//	  • Node/Edge primitives — tumor vs. LNL kind, binary/trinary election
//	  • Strict construction validation — GraphError on malformed input
//	  • Deterministic LNL ordering — the canonical digit order used by
//	    every downstream component (params, statespace, assemble, ...)
//
// Growth edges (micro→macro, trinary only) are generated automatically
// and never listed explicitly by the caller.
package graph
