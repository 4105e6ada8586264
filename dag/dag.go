// Package dag stores extended sets of maximal common subsequences as a
// directed acyclic graph over an append-only node arena.
//
// The graph can be read as a non-deterministic automaton with
// ε-transitions (Split nodes) and no loops: every path from the start
// node to an End leaf spells one accepted subsequence.
package dag

import "slices"

// Dag is an immutable set of sequences represented as a graph.
//
// A Dag is produced by Empty, Singleton, XMCS2 or XMCSK and never
// mutated afterwards.  End leaves alias the input sequences: callers
// must keep the inputs alive for as long as the Dag is used.
type Dag[T comparable] struct {
	// nodes is the arena; indices are stable for the Dag's lifetime.
	nodes []Node[T]
	// start is the arena index of the root node.
	start int
	// minLen is the minimum subsequence length ℓ the Dag was built for.
	minLen int
}

// Empty returns a Dag accepting no sequence: a single empty node at
// index 0.
func Empty[T comparable](minLen int) *Dag[T] {
	return &Dag[T]{
		nodes:  []Node[T]{emptyNode[T]()},
		start:  0,
		minLen: minLen,
	}
}

// Singleton returns a Dag accepting exactly seq.
func Singleton[T comparable](minLen int, seq []T) *Dag[T] {
	return &Dag[T]{
		nodes:  []Node[T]{emptyNode[T](), endNode(seq)},
		start:  1,
		minLen: minLen,
	}
}

// NumNodes returns the arena size.
func (d *Dag[T]) NumNodes() int { return len(d.nodes) }

// NodeAt returns the node at arena index i.
func (d *Dag[T]) NodeAt(i int) Node[T] { return d.nodes[i] }

// Start returns the arena index of the root node.
func (d *Dag[T]) Start() int { return d.start }

// MinLen returns the minimum subsequence length the Dag was built for.
func (d *Dag[T]) MinLen() int { return d.minLen }

// ExtractLCS returns one longest sequence accepted by the Dag.
//
// The walk is greedy on MaxLength: at a Split it descends into the child
// with the larger bound, preferring the second child on ties.  Returns
// ok=false when the Dag accepts no sequence of positive length.
func (d *Dag[T]) ExtractLCS() ([]T, bool) {
	start := d.nodes[d.start]
	if start.maxLength == 0 {
		return nil, false
	}

	buf := make([]T, 0, start.maxLength)

	return d.extractLCS(start, buf), true
}

func (d *Dag[T]) extractLCS(current Node[T], buf []T) []T {
	switch current.kind {
	case KindEmpty:
		// Nothing to emit.
	case KindEnd:
		buf = append(buf, current.suffix...)
	case KindElement:
		buf = append(buf, current.value)
		buf = d.extractLCS(d.nodes[current.child1], buf)
	case KindSplit:
		node1 := d.nodes[current.child1]
		node2 := d.nodes[current.child2]
		if node1.maxLength > node2.maxLength {
			buf = d.extractLCS(node1, buf)
		} else {
			buf = d.extractLCS(node2, buf)
		}
	}

	return buf
}

// ToSet materializes every accepted sequence by enumerating all paths
// from the start node to an End leaf.  The result is deduplicated:
// distinct paths may spell the same sequence.
//
// The output size can be exponential in the input divergence; this is an
// extraction helper for small graphs and cross-checking, not part of the
// construction path.
func (d *Dag[T]) ToSet() [][]T {
	var res [][]T

	var walk func(index int, prefix []T)
	walk = func(index int, prefix []T) {
		current := d.nodes[index]
		switch current.kind {
		case KindEmpty:
			// Dead branch.
		case KindEnd:
			seq := make([]T, 0, len(prefix)+len(current.suffix))
			seq = append(seq, prefix...)
			seq = append(seq, current.suffix...)
			if !containsSeq(res, seq) {
				res = append(res, seq)
			}
		case KindElement:
			// Copy the prefix: sibling branches must not share backing.
			next := make([]T, len(prefix)+1)
			copy(next, prefix)
			next[len(prefix)] = current.value
			walk(current.child1, next)
		case KindSplit:
			walk(current.child1, prefix)
			walk(current.child2, prefix)
		}
	}

	walk(d.start, nil)

	return res
}

// containsSeq reports whether seqs already holds an element-wise equal
// sequence.
func containsSeq[T comparable](seqs [][]T, seq []T) bool {
	for _, s := range seqs {
		if slices.Equal(s, seq) {
			return true
		}
	}

	return false
}
