// Package xmcs computes extended sets of Maximal Common Subsequences
// (xMCS) of k sequences, represented compactly as a directed acyclic graph.
//
// 🚀 What is xmcs?
//
//	Given k sequences over any comparable alphabet and a minimum length ℓ,
//	xmcs builds a DAG whose accepted language is the set of all maximal
//	common subsequences of length at least ℓ.  The set itself is often
//	exponential in the input divergence; the DAG stays sub-exponential by
//	sharing common prefixes and suffixes between branches.
//
// ✨ Key features:
//   - incremental construction: fold sequences one at a time into the DAG
//   - constant-time tail-subsequence oracle prunes forced branches
//   - index-arena storage — splicing two graphs is a single offset shift
//   - longest-subsequence extraction and full path enumeration
//   - Graphviz DOT rendering of the resulting automaton
//
// The module is organized in flat subpackages:
//
//	subseq/  — banded tail-subsequence oracle (O(|s1|·δ) precompute, O(1) query)
//	dag/     — DAG model, pairwise & k-ary builders, extraction, DOT renderer
//	seqset/  — reference hash-set implementation, used as a test oracle
//	logger/  — zerolog-backed build logging
//
// Quick usage:
//
//	seqs := [][]byte{[]byte("ADBCBAD"), []byte("ADCBACD"), []byte("ABDCABDA")}
//	d := dag.XMCSK(4, seqs)
//	lcs, ok := d.ExtractLCS()
//
// Runnable examples are the Example functions in the example_test.go
// files of dag and subseq; DOT output is produced by Dag.FormatGraph.
//
//	go get github.com/katalvlaran/xmcs
package xmcs
