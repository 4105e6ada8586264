// k-ary xMCS construction: fold additional sequences into an existing
// DAG by recursive descent, delegating to the pairwise builder at
// sequence-bearing leaves.
package dag

import "github.com/katalvlaran/xmcs/logger"

// foldBuilder computes the xMCS of an existing graph and one new
// sequence.  It reads the finished graph (base) and emits into its own
// fresh arena.
type foldBuilder[T comparable] struct {
	builderCore[T]
	base []Node[T]
}

// XMCSK builds a Dag accepting the maximal common subsequences of
// length at least minLen of all the given sequences.
//
// The sequences are folded right to left: the last one is added to the
// xMCS Dag of the others.  Fold order does not change the accepted
// language, only intermediate arena sizes.
func XMCSK[T comparable](minLen int, sequences [][]T) *Dag[T] {
	switch k := len(sequences); k {
	case 0:
		return Empty[T](minLen)
	case 1:
		return Singleton(minLen, sequences[0])
	default:
		graph := XMCSK(minLen, sequences[:k-1])

		return AddSequence(graph, sequences[k-1])
	}
}

// AddSequence builds a Dag accepting the maximal common subsequences of
// length at least xmcs.MinLen() between seq and every sequence accepted
// by xmcs.
func AddSequence[T comparable](xmcs *Dag[T], seq []T) *Dag[T] {
	b := &foldBuilder[T]{
		builderCore: builderCore[T]{memo: make(map[position]int)},
		base:        xmcs.nodes,
	}

	start := b.compute(xmcs.minLen, xmcs.start, seq)
	if start == noNode {
		b.nodes = append(b.nodes, emptyNode[T]())
		start = 0
	}

	log := logger.Logger()
	log.Debug().
		Int("min_len", xmcs.minLen).
		Int("base_nodes", len(xmcs.nodes)).
		Int("len_seq", len(seq)).
		Int("nodes", len(b.nodes)).
		Int("memo_entries", len(b.memo)).
		Msg("sequence folded into xmcs")

	return &Dag[T]{nodes: b.nodes, start: start, minLen: xmcs.minLen}
}

// compute resolves the position (length, current, |seq|) by dispatching
// on the current base-graph node.
//
// The position keys the base node by arena index, not by its max-length
// bound: two distinct nodes can share a bound while accepting different
// languages, and conflating them would splice one node's subsequences
// into the other's paths.
//
// The memo lookup runs before the impossibility check; positions where
// length exceeds a bound are memoized too, so both orders are correct
// and the map stays the single source of truth.
func (b *foldBuilder[T]) compute(length, current int, seq []T) int {
	node := b.base[current]
	l1 := node.maxLength
	l2 := len(seq)
	pos := position{len: length, l1: current, l2: l2}

	// 1) Position already resolved.
	if index, ok := b.memo[pos]; ok {
		return index
	}

	// 2) The remaining budget exceeds what either side can still offer.
	if length > l1 || length > l2 {
		return b.insertEmptyAt(pos)
	}

	// 3) Dispatch on the base node variant.
	switch node.kind {
	case KindEmpty:
		return b.insertEmptyAt(pos)

	case KindEnd:
		// A sequence-bearing leaf: the problem degenerates to a pairwise
		// build between the stored suffix and the new sequence.
		sub, start := xmcs2Raw(length, node.suffix, seq)

		return b.insertSubgraphAt(pos, sub, start)

	case KindSplit:
		index1 := b.compute(length, node.child1, seq)
		index2 := b.compute(length, node.child2, seq)

		return b.splitNodeMerged(index1, index2, pos)

	default: // KindElement
		switch {
		case l2 == 0 && length == 0:
			// The new sequence is exhausted with the budget met: accept
			// the empty tail here.
			return b.insertNodeAt(pos, endNode(seq))

		case l2 == 0:
			// Exhausted with budget left: empty set.
			return b.insertEmptyAt(pos)

		case node.value == seq[0]:
			// Matching heads: consume the graph edge and the sequence head.
			child := b.compute(saturatingDec(length), node.child1, seq[1:])

			return b.elementNode(node.value, child, pos)

		default:
			// Mismatch: skip the sequence head, or advance in the graph.
			index1 := b.compute(length, current, seq[1:])
			index2 := b.compute(length, node.child1, seq)

			return b.splitNodeMerged(index1, index2, pos)
		}
	}
}

// insertSubgraphAt splices a pairwise-built arena into this builder:
// the nodes are appended and every child index inside them is shifted
// by the pre-splice arena size.  The position is memoized to the shifted
// root, which is sound because positions key base nodes by identity.
func (b *foldBuilder[T]) insertSubgraphAt(pos position, other []Node[T], start int) int {
	if start == noNode {
		return b.insertEmptyAt(pos)
	}

	shift := len(b.nodes)
	for _, node := range other {
		b.nodes = append(b.nodes, node.withBaseIndex(shift))
	}

	return b.pointsToNode(pos, start+shift)
}
