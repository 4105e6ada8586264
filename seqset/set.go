// Package seqset materializes extended sets of maximal common
// subsequences by exhaustive recursion, pruned by the same
// tail-subsequence oracle the DAG builders use.
package seqset

import (
	"slices"

	"github.com/katalvlaran/xmcs/subseq"
)

// Set is a deduplicated collection of sequences over T.
//
// A generic sequence cannot key a Go map, so membership is a linear
// scan; the reference implementation is exponential anyway.
type Set[T comparable] struct {
	items [][]T
}

// New returns an empty set.
func New[T comparable]() *Set[T] {
	return &Set[T]{}
}

// Add inserts seq and reports whether it was not already present.
// The sequence is stored as given, without copying.
func (s *Set[T]) Add(seq []T) bool {
	if s.Contains(seq) {
		return false
	}
	s.items = append(s.items, seq)

	return true
}

// Contains reports whether an element-wise equal sequence is present.
func (s *Set[T]) Contains(seq []T) bool {
	for _, item := range s.items {
		if slices.Equal(item, seq) {
			return true
		}
	}

	return false
}

// Len returns the number of sequences in the set.
func (s *Set[T]) Len() int { return len(s.items) }

// Items returns the stored sequences in insertion order.
func (s *Set[T]) Items() [][]T { return s.items }

// SubsetOf reports whether every sequence of s is present in other.
func (s *Set[T]) SubsetOf(other *Set[T]) bool {
	for _, item := range s.items {
		if !other.Contains(item) {
			return false
		}
	}

	return true
}

// addAll inserts every sequence of other.
func (s *Set[T]) addAll(other *Set[T]) {
	for _, item := range other.items {
		s.Add(item)
	}
}

// XMCS2 computes the extended set of maximal common subsequences of s1
// and s2 with length at least minLen.
func XMCS2[T comparable](minLen int, s1, s2 []T) *Set[T] {
	// Unreachable budget: empty set (also keeps the oracle band valid).
	if minLen > len(s1) || minLen > len(s2) {
		return New[T]()
	}

	delta := max(len(s1), len(s2)) - minLen
	oracle, err := subseq.New(s1, s2, delta)
	if err != nil {
		panic(err)
	}

	return xmcs2Impl(minLen, s1, s2, oracle)
}

func xmcs2Impl[T comparable](minLen int, s1, s2 []T, oracle *subseq.SubString) *Set[T] {
	res := New[T]()

	// Too many elements removed: no subsequence long enough below here.
	if minLen > len(s1) || minLen > len(s2) || len(s1) == 0 || len(s2) == 0 {
		return res
	}

	// One tail is a subsequence of the other: it is the only maximal
	// common subsequence of the two.
	if oracle.IsSubstringFromEnd(len(s1), len(s2)) {
		shorter := s2
		if len(s1) < len(s2) {
			shorter = s1
		}
		res.Add(slices.Clone(shorter))

		return res
	}

	if s1[0] == s2[0] {
		// Matching heads: prepend the head to every tail result.
		sub := xmcs2Impl(saturatingDec(minLen), s1[1:], s2[1:], oracle)
		for _, tail := range sub.Items() {
			seq := make([]T, 0, len(tail)+1)
			seq = append(seq, s1[0])
			seq = append(seq, tail...)
			res.Add(seq)
		}

		return res
	}

	// Mismatching heads: union over skipping either head.
	res.addAll(xmcs2Impl(minLen, s1[1:], s2, oracle))
	res.addAll(xmcs2Impl(minLen, s1, s2[1:], oracle))

	return res
}

// XMCSK computes the extended set of maximal common subsequences of all
// the given sequences with length at least minLen.
func XMCSK[T comparable](minLen int, sequences [][]T) *Set[T] {
	res := New[T]()

	switch k := len(sequences); {
	case k == 1:
		if len(sequences[0]) >= minLen {
			res.Add(slices.Clone(sequences[0]))
		}
	case k > 1:
		prev := XMCSK(minLen, sequences[:k-1])
		for _, s := range prev.Items() {
			res.addAll(XMCS2(minLen, s, sequences[k-1]))
		}
	}

	return res
}

// saturatingDec decrements without crossing zero.
func saturatingDec(length int) int {
	if length == 0 {
		return 0
	}

	return length - 1
}
