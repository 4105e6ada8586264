// Package seqset is the reference implementation of the xMCS contract:
// it materializes the extended set of maximal common subsequences as a
// plain set of sequences instead of a graph.
//
// 🚀 Why a second implementation?
//
//	The DAG builders in package dag are the production path; seqset
//	implements the same mathematical contract by brute enumeration.
//	Its output is exponential in the input divergence, which makes it
//	unusable at scale — and ideal as a cross-checking oracle in tests:
//	every sequence it produces must be accepted by the DAG.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/xmcs/seqset"
//
//	set := seqset.XMCS2(3, []byte("ABCD"), []byte("ACBD"))
//	set.Contains([]byte("ACD")) // true
//	set.Contains([]byte("ABD")) // true
//
// Performance: exponential time and memory; intended for short inputs
// in tests only.
package seqset
