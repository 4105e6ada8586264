package dag

// noNode marks a memoized position whose language is empty.  The empty
// set is never materialized as a child node; parents short-circuit on it.
const noNode = -1

// position is the memoization key of both builders: the remaining length
// budget and the two recursion coordinates (both suffix lengths for the
// pairwise builder; base-node arena index and suffix length for the
// k-ary builder).
type position struct {
	len int
	l1  int
	l2  int
}

// builderCore is the shared fabric of the two builders: the in-progress
// node arena and the position memo table.  Both are discarded when the
// build completes (the arena moves into the resulting Dag).
type builderCore[T comparable] struct {
	nodes []Node[T]
	memo  map[position]int
}

// insertNodeAt appends node to the arena, memoizes the position and
// returns the new index.
func (b *builderCore[T]) insertNodeAt(pos position, node Node[T]) int {
	index := len(b.nodes)
	b.nodes = append(b.nodes, node)
	b.memo[pos] = index

	return index
}

// pointsToNode memoizes that a position resolves to an existing node,
// without creating a new one.
func (b *builderCore[T]) pointsToNode(pos position, index int) int {
	b.memo[pos] = index

	return index
}

// insertEmptyAt memoizes that a position holds the empty set.
func (b *builderCore[T]) insertEmptyAt(pos position) int {
	b.memo[pos] = noNode

	return noNode
}

// elementNode wraps a child in an Element node carrying value, with both
// length bounds incremented.  An empty child makes the position empty.
func (b *builderCore[T]) elementNode(value T, child int, pos position) int {
	if child == noNode {
		return b.insertEmptyAt(pos)
	}

	c := b.nodes[child]

	return b.insertNodeAt(pos, Node[T]{
		maxLength: c.maxLength + 1,
		minLength: c.minLength + 1,
		kind:      KindElement,
		value:     value,
		child1:    child,
	})
}

// splitNode unions two child positions: both empty → empty, one empty →
// alias the other, otherwise a fresh Split with bounds over the children.
func (b *builderCore[T]) splitNode(index1, index2 int, pos position) int {
	switch {
	case index1 == noNode && index2 == noNode:
		return b.insertEmptyAt(pos)
	case index1 == noNode:
		return b.pointsToNode(pos, index2)
	case index2 == noNode:
		return b.pointsToNode(pos, index1)
	}

	return b.insertSplit(index1, index2, pos)
}

// splitNodeMerged is splitNode plus the structural collapses applied by
// the k-ary builder: identical children alias directly, and a proposed
// Split whose pair is already covered by one of its children reuses that
// child (prefix-sharing collapse).
func (b *builderCore[T]) splitNodeMerged(index1, index2 int, pos position) int {
	switch {
	case index1 == noNode && index2 == noNode:
		return b.insertEmptyAt(pos)
	case index1 == noNode:
		return b.pointsToNode(pos, index2)
	case index2 == noNode:
		return b.pointsToNode(pos, index1)
	case index1 == index2:
		return b.pointsToNode(pos, index1)
	}

	// If one child is already a Split containing the other, the fresh
	// Split would accept exactly that child's language: reuse it.
	if b.nodes[index1].isSplitWithChild(index2) {
		return b.pointsToNode(pos, index1)
	}
	if b.nodes[index2].isSplitWithChild(index1) {
		return b.pointsToNode(pos, index2)
	}

	return b.insertSplit(index1, index2, pos)
}

// insertSplit emits the Split node for two non-empty children.
func (b *builderCore[T]) insertSplit(index1, index2 int, pos position) int {
	n1 := b.nodes[index1]
	n2 := b.nodes[index2]

	return b.insertNodeAt(pos, Node[T]{
		maxLength: max(n1.maxLength, n2.maxLength),
		minLength: min(n1.minLength, n2.minLength),
		kind:      KindSplit,
		child1:    index1,
		child2:    index2,
	})
}

// saturatingDec decrements without crossing zero.  Once the remaining
// length budget hits zero it no longer constrains the recursion.
func saturatingDec(length int) int {
	if length == 0 {
		return 0
	}

	return length - 1
}
