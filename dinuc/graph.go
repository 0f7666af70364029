package dinuc

import "github.com/katalvlaran/hotseq/seq"

// transitionGraph is the per-sequence directed multigraph of adjacent symbol
// pairs. Nodes are symbol indices with the missing symbol mapped to the
// extra node `channels`; adj[u] holds one successor entry per edge
// occurrence, in observation order. The graph is ephemeral: built from one
// region, sampled from, discarded.
type transitionGraph struct {
	adj   [][]int
	first int // node of the region's first symbol
	last  int // node of the region's last symbol (arborescence root)
	edges int
}

// nodeOf maps a symbol index to its graph node; symOf inverts it.
func nodeOf(sym, channels int) int {
	if sym == seq.Missing {
		return channels
	}

	return sym
}

func symOf(node, channels int) int {
	if node == channels {
		return seq.Missing
	}

	return node
}

// buildGraph constructs the multigraph of the region's adjacent pairs from
// an already-decoded symbol slice. O(K) for region width K.
func buildGraph(syms []int, channels int, reg seq.Region) *transitionGraph {
	g := &transitionGraph{
		adj:   make([][]int, channels+1),
		first: nodeOf(syms[reg.Start], channels),
		last:  nodeOf(syms[reg.End-1], channels),
	}

	for p := reg.Start; p < reg.End-1; p++ {
		u := nodeOf(syms[p], channels)
		g.adj[u] = append(g.adj[u], nodeOf(syms[p+1], channels))
		g.edges++
	}

	return g
}

// observed reports whether a node occurs in the region at all. Every
// observed node except possibly the terminal has at least one out-edge.
func (g *transitionGraph) observed(u int) bool {
	return len(g.adj[u]) > 0 || u == g.last
}
