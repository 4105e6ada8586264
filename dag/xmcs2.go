// Pairwise xMCS construction: build the DAG of maximal common
// subsequences of two flat sequences.
package dag

import (
	"github.com/katalvlaran/xmcs/logger"
	"github.com/katalvlaran/xmcs/subseq"
)

// pairBuilder computes the xMCS DAG of two sequences.
type pairBuilder[T comparable] struct {
	builderCore[T]
}

// XMCS2 builds a Dag whose accepted language is the set of maximal
// common subsequences of s1 and s2 of length at least minLen.
//
// When no such subsequence exists — including the boundary where minLen
// exceeds either input length — the canonical empty Dag is returned.
// The resulting Dag aliases s1 and s2 through its End leaves.
func XMCS2[T comparable](minLen int, s1, s2 []T) *Dag[T] {
	// A budget longer than an input can never be met, and would also put
	// the oracle band below the length difference of the inputs.
	if minLen > len(s1) || minLen > len(s2) {
		return Empty[T](minLen)
	}

	nodes, start := xmcs2Raw(minLen, s1, s2)
	if start == noNode {
		nodes = append(nodes, emptyNode[T]())
		start = 0
	}

	log := logger.Logger()
	log.Debug().
		Int("min_len", minLen).
		Int("len_s1", len(s1)).
		Int("len_s2", len(s2)).
		Int("nodes", len(nodes)).
		Msg("pairwise xmcs built")

	return &Dag[T]{nodes: nodes, start: start, minLen: minLen}
}

// xmcs2Raw runs the pairwise recursion and returns the raw arena plus
// the root index, noNode when the set is empty.  The k-ary builder uses
// this form to splice the arena into its own.
//
// Precondition: minLen ≤ min(|s1|, |s2|), so the oracle band
// delta = max(|s1|, |s2|) − minLen covers the length difference.
func xmcs2Raw[T comparable](minLen int, s1, s2 []T) ([]Node[T], int) {
	delta := max(len(s1), len(s2)) - minLen
	oracle, err := subseq.New(s1, s2, delta)
	if err != nil {
		panic(err)
	}

	b := &pairBuilder[T]{builderCore[T]{memo: make(map[position]int)}}
	start := b.compute(minLen, s1, s2, oracle)

	return b.nodes, start
}

// compute resolves the position (length, |s1|, |s2|), emitting nodes in
// post-order so that every child index precedes its parent.
func (b *pairBuilder[T]) compute(length int, s1, s2 []T, oracle *subseq.SubString) int {
	l1, l2 := len(s1), len(s2)
	pos := position{len: length, l1: l1, l2: l2}

	// 1) Position already resolved.
	if index, ok := b.memo[pos]; ok {
		return index
	}

	// 2) The remaining budget exceeds an input tail: empty set.
	if length > l1 || length > l2 {
		return b.insertEmptyAt(pos)
	}

	// 3) One tail is a subsequence of the other: the recursion below this
	//    position is forced, emit the shorter tail as a single leaf.
	if oracle.IsSubstringFromEnd(l1, l2) {
		return b.subseqNode(s1, l1, s2, l2, pos)
	}

	// 4) Matching heads: consume both.  Neither tail is empty here,
	//    otherwise one would be a subsequence of the other.
	if s1[0] == s2[0] {
		child := b.compute(saturatingDec(length), s1[1:], s2[1:], oracle)

		return b.elementNode(s1[0], child, pos)
	}

	// 5) Mismatching heads: branch on skipping either head.
	index1 := b.compute(length, s1[1:], s2, oracle)
	index2 := b.compute(length, s1, s2[1:], oracle)

	return b.splitNode(index1, index2, pos)
}

// subseqNode emits the End leaf for the forced base case, holding the
// shorter of the two tails.
func (b *pairBuilder[T]) subseqNode(s1 []T, l1 int, s2 []T, l2 int, pos position) int {
	suffix := s2
	if l1 < l2 {
		suffix = s1
	}

	return b.insertNodeAt(pos, endNode(suffix))
}
