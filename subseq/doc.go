// Package subseq answers tail-subsequence queries between two sequences
// in constant time, after a banded precomputation.
//
// 🚀 What is subseq?
//
//	Given two sequences s1, s2 and a divergence bound delta, SubString
//	precomputes a boolean table so that the question
//
//	  "is the shorter of s1[i:], s2[j:] a subsequence of the longer?
//	   (are they equal, if the same length?)"
//
//	is answered in O(1) for every index pair with |i−j| ≤ delta.  It is
//	the pruning oracle behind the xMCS DAG builders: whenever one tail is
//	a subsequence of the other, the whole recursion below that position
//	collapses to a single leaf.
//
// ✨ Key features:
//   - O(|s1|·delta) precomputation, O(1) per query
//   - only the ±delta diagonal band is materialized: |s1|×(2·delta+1) cells
//   - two query modes: by start offsets (IsSubstringAt) and by residual
//     lengths counted from the end (IsSubstringFromEnd)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/xmcs/subseq"
//
//	ss, err := subseq.New([]byte("ABCABC"), []byte("ACBAC"), 5)
//	if err != nil { ... }
//
//	ss.IsSubstringAt(4, 2) // "BC" vs "BAC" → true
//	ss.IsSubstringAt(3, 1) // "ABC" vs "CBAC" → false
//
// Querying outside the band, or past either sequence end, is a programmer
// error: those methods panic with ErrBandExceeded / ErrIndexOutOfRange.
//
// Performance:
//
//   - Time:   O(|s1|·delta) precompute, O(1) query
//   - Memory: O(|s1|·delta)
package subseq
