// Package hotseq is an in-memory editing engine for batches of one-hot
// encoded biological sequences — the counterfactual-generation toolkit of
// sequence-model interpretability work.
//
// 🚀 What is hotseq?
//
//	A small, deterministic library that brings together:
//		• One-hot containers: dense N×A×L batches, zero-copy views, draw tensors
//		• Positional edits: substitute, multi-substitute, insert, delete
//		• Backgrounds: composition sampling and in-place permutation shuffles
//		• Dinucleotide shuffles: uniformly random Eulerian paths, pair-exact
//		• Strand mirror: reverse complement in text and one-hot space
//
// ✨ Why choose hotseq?
//
//   - Reproducible by contract – every randomized operation derives one
//     stream per sequence and per draw from a single seed, so results never
//     depend on batch composition or traversal order
//   - Rock-solid error discipline – sentinel errors, no panics on user input
//   - Immutable inputs – operations return fresh containers, sources survive
//   - Pure Go – no cgo; dependencies end at hashing and test assertions
//
// Everything is organized under six subpackages:
//
//	seq/     — Alphabet, Batch, Sequence, Draws, Region; encode/decode,
//	           composition tallies, CRC-64 fingerprints
//	rng/     — seeded streams: Derive/Sub substream mixing, shuffles,
//	           categorical draws
//	edit/    — motif placement and span removal at explicit positions
//	shuffle/ — permutation shuffler + background composition sampler
//	dinuc/   — dinucleotide-preserving shuffler (uniform Eulerian paths)
//	revcomp/ — reverse complement, character and one-hot forms
//
// Quick ASCII example:
//
//	          pos →  0    1    2    3
//	        A     [ 1    0    0    0 ]
//	        C     [ 0    1    0    0 ]
//	        G     [ 0    0    0    0 ]
//	        T     [ 0    0    0    1 ]
//
//	column 2 is all-zero: a missing (masked) base inside "ACNT".
//
// Dive into the package docs for the editing vocabulary, the seeding
// contract, and the degeneracy rules of the dinucleotide shuffler.
//
//	go get github.com/katalvlaran/hotseq
package hotseq
