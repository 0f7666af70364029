package dinuc

import (
	"math/rand"

	"github.com/katalvlaran/hotseq/rng"
)

// arborescence samples an in-arborescence rooted at g.last, uniformly at
// random among all in-arborescences of the multigraph (parallel edges
// counted as distinct), via Wilson's loop-erased random walk.
//
// The walk picks a uniform entry of adj[v] at each step, so transition
// probabilities are proportional to remaining edge multiplicities — exactly
// the weighting that makes the node-level tree distribution match the
// uniform edge-level one. Self-loops and cycles disappear in the erasure:
// next[v] keeps only the last exit taken from v, and the retrace follows
// those pointers straight into the tree.
//
// Every non-terminal observed node has an out-edge and can reach the root
// (both hold because the graph was read off one real traversal), so the
// walk terminates with probability one.
//
// Returned: parent[u] = arborescence successor of u, -1 for the root and
// for unobserved nodes. Expected O(edges) on these graphs.
func (g *transitionGraph) arborescence(gen *rand.Rand) []int {
	var (
		n      = len(g.adj)
		parent = make([]int, n)
		next   = make([]int, n)
		inTree = make([]bool, n)
	)
	for u := range parent {
		parent[u] = -1
	}
	inTree[g.last] = true

	// Deterministic start order keeps draw reproducibility; Wilson's
	// distribution does not depend on it.
	for u := 0; u < n; u++ {
		if !g.observed(u) || inTree[u] {
			continue
		}

		v := u
		for !inTree[v] {
			next[v] = g.adj[v][gen.Intn(len(g.adj[v]))]
			v = next[v]
		}
		v = u
		for !inTree[v] {
			inTree[v] = true
			parent[v] = next[v]
			v = next[v]
		}
	}

	return parent
}

// eulerianPath emits one uniformly random Eulerian path over the multigraph,
// from g.first to g.last, as a node sequence of length edges+1.
//
// Construction: sample an arborescence, then give every node a uniformly
// random ordering of its out-edges with the arborescence edge forced last
// at non-terminal nodes (the terminal orders all its edges freely). The
// walk from g.first consuming each node's list in order is guaranteed to
// use every edge and end at g.last; the (arborescence × orderings) pairs
// biject onto Eulerian paths, so the draw is uniform.
func (g *transitionGraph) eulerianPath(gen *rand.Rand) []int {
	var (
		parent = g.arborescence(gen)
		n      = len(g.adj)
		order  = make([][]int, n)
	)

	for u := 0; u < n; u++ {
		if len(g.adj[u]) == 0 {
			continue
		}
		edges := append([]int(nil), g.adj[u]...)
		if u != g.last {
			// Pull one occurrence of the arborescence head out, permute the
			// rest, and reattach it at the tail.
			for k, v := range edges {
				if v == parent[u] {
					edges[k] = edges[len(edges)-1]
					edges = edges[:len(edges)-1]
					break
				}
			}
			rng.ShuffleInts(edges, gen)
			edges = append(edges, parent[u])
		} else {
			rng.ShuffleInts(edges, gen)
		}
		order[u] = edges
	}

	var (
		path = make([]int, 0, g.edges+1)
		idx  = make([]int, n)
		cur  = g.first
	)
	path = append(path, cur)
	for step := 0; step < g.edges; step++ {
		v := order[cur][idx[cur]]
		idx[cur]++
		path = append(path, v)
		cur = v
	}

	return path
}
