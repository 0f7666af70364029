// Package dinuc shuffles sequence regions while preserving their exact
// dinucleotide (adjacent-pair) composition — the strictest of the hotseq
// background generators.
//
// 🚀 Why dinucleotide-preserving?
//
//	Nucleotide neighbors are strongly correlated in real genomes (CpG
//	depletion being the textbook case). A control that only preserves
//	mononucleotide counts therefore looks "wrong" to sequence models. This
//	package permutes a region so that every adjacent symbol pair occurs
//	exactly as often as in the source, and the first and last region
//	symbols stay fixed.
//
// ✨ The algorithm (per sequence, per draw):
//
//  1. Build a directed multigraph: one node per observed symbol (missing
//     columns participate as a node of their own), one edge per adjacent
//     position pair inside the region.
//  2. Sample an in-arborescence rooted at the terminal node, uniformly at
//     random among all arborescences of the multigraph, with Wilson's
//     loop-erased random walk (transitions proportional to remaining edge
//     multiplicities; self-loops vanish in the erasure).
//  3. Give every node a uniformly random ordering of its out-edges, with
//     the arborescence edge forced last at every non-terminal node.
//  4. Walk from the initial symbol consuming each node's list in order.
//     The walk necessarily uses every edge and ends at the terminal node,
//     emitting a complete Eulerian path.
//
// By the BEST-theorem bijection (Eulerian path ↔ arborescence × free edge
// orderings) the emitted path is exactly uniform among all Eulerian paths
// with the observed edge multiset and the fixed endpoints. There is no
// retry loop and no backtracking; one draw costs one arborescence and one
// walk.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/hotseq/dinuc"
//
//	d, err := dinuc.Shuffle(b,
//	    dinuc.WithDraws(32),
//	    dinuc.WithSeed(7),
//	    dinuc.WithVerbose())
//
// Degeneracy:
//
//	Short or low-complexity regions admit very few Eulerian paths — or just
//	one. With two or more draws, a sequence whose draws all come out
//	identical raises ErrNoDiversity; an interior position that never varies
//	across draws is reported through the warn hook when WithVerbose is set
//	(default sink: log.Printf).
//
// Performance: graph construction is O(K) per sequence for region width K;
// each draw is O(K) expected (the loop-erased walk is linear on these
// strongly-path-connected multigraphs). Total O(N·(A·L + R·K)).
package dinuc
