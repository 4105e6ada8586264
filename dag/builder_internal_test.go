package dag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSplitNodeMerged covers every arm of the split-combine rule,
// including the structural collapses that only the k-ary builder uses.
func TestSplitNodeMerged(t *testing.T) {
	b := &builderCore[byte]{memo: make(map[position]int)}

	end1 := b.insertNodeAt(position{len: 1, l1: 1, l2: 0}, endNode([]byte("AB")))
	end2 := b.insertNodeAt(position{len: 1, l1: 2, l2: 0}, endNode([]byte("BA")))
	split := b.insertSplit(end1, end2, position{len: 1, l1: 3, l2: 0})

	// Both children empty: the position is empty.
	assert.Equal(t, noNode, b.splitNodeMerged(noNode, noNode, position{len: 2, l1: 0, l2: 0}))

	// One empty child: alias the other, no new node.
	assert.Equal(t, end2, b.splitNodeMerged(noNode, end2, position{len: 2, l1: 1, l2: 0}))
	assert.Equal(t, end1, b.splitNodeMerged(end1, noNode, position{len: 2, l1: 2, l2: 0}))

	// Identical children: alias, no new node.
	assert.Equal(t, end1, b.splitNodeMerged(end1, end1, position{len: 2, l1: 3, l2: 0}))

	// Prefix-sharing collapse, both directions: the existing Split
	// already covers the proposed pair.
	before := len(b.nodes)
	assert.Equal(t, split, b.splitNodeMerged(split, end2, position{len: 2, l1: 4, l2: 0}))
	assert.Equal(t, split, b.splitNodeMerged(end1, split, position{len: 2, l1: 5, l2: 0}))
	assert.Equal(t, before, len(b.nodes), "collapses must not grow the arena")

	// A genuinely new pair emits a Split with bounds over the children.
	end3 := b.insertNodeAt(position{len: 1, l1: 6, l2: 0}, endNode([]byte("XYZ")))
	fresh := b.splitNodeMerged(end1, end3, position{len: 2, l1: 7, l2: 0})
	require.NotEqual(t, noNode, fresh)
	n := b.nodes[fresh]
	assert.Equal(t, KindSplit, n.kind)
	assert.Equal(t, 3, n.maxLength)
	assert.Equal(t, 2, n.minLength)
}

// TestSplitNode covers the pairwise combine, which applies no
// structural collapse beyond the empty-child short-circuits.
func TestSplitNode(t *testing.T) {
	b := &builderCore[byte]{memo: make(map[position]int)}

	end1 := b.insertNodeAt(position{len: 1, l1: 1, l2: 0}, endNode([]byte("A")))
	end2 := b.insertNodeAt(position{len: 1, l1: 2, l2: 0}, endNode([]byte("BC")))

	assert.Equal(t, noNode, b.splitNode(noNode, noNode, position{len: 2, l1: 0, l2: 1}))
	assert.Equal(t, end1, b.splitNode(end1, noNode, position{len: 2, l1: 1, l2: 1}))
	assert.Equal(t, end2, b.splitNode(noNode, end2, position{len: 2, l1: 2, l2: 1}))

	idx := b.splitNode(end1, end2, position{len: 2, l1: 3, l2: 1})
	n := b.nodes[idx]
	assert.Equal(t, KindSplit, n.kind)
	assert.Equal(t, 2, n.maxLength)
	assert.Equal(t, 1, n.minLength)
}

// TestElementNode covers the element wrap and its empty-child
// short-circuit.
func TestElementNode(t *testing.T) {
	b := &builderCore[byte]{memo: make(map[position]int)}

	assert.Equal(t, noNode, b.elementNode('A', noNode, position{len: 1, l1: 0, l2: 0}),
		"empty child makes the position empty")

	end := b.insertNodeAt(position{len: 1, l1: 1, l2: 0}, endNode([]byte("BC")))
	idx := b.elementNode('A', end, position{len: 1, l1: 2, l2: 0})
	n := b.nodes[idx]
	assert.Equal(t, KindElement, n.kind)
	assert.Equal(t, byte('A'), n.value)
	assert.Equal(t, end, n.child1)
	assert.Equal(t, 3, n.maxLength)
	assert.Equal(t, 3, n.minLength)
}

// TestWithBaseIndex verifies the splice shift on every variant.
func TestWithBaseIndex(t *testing.T) {
	elem := Node[byte]{kind: KindElement, value: 'A', child1: 2, maxLength: 3, minLength: 3}
	shifted := elem.withBaseIndex(10)
	assert.Equal(t, 12, shifted.child1)
	assert.Equal(t, 3, shifted.maxLength)

	split := Node[byte]{kind: KindSplit, child1: 0, child2: 1}
	shifted = split.withBaseIndex(5)
	assert.Equal(t, 5, shifted.child1)
	assert.Equal(t, 6, shifted.child2)

	end := endNode([]byte("AB"))
	assert.Equal(t, end, end.withBaseIndex(7), "leaves carry no indices to shift")
}
