package seqset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/xmcs/seqset"
)

// bseqs converts string literals to byte sequences for test fixtures.
func bseqs(ss ...string) [][]byte {
	res := make([][]byte, len(ss))
	for i, s := range ss {
		res[i] = []byte(s)
	}

	return res
}

// TestSet_Basics exercises Add/Contains/Len deduplication.
func TestSet_Basics(t *testing.T) {
	s := seqset.New[byte]()

	assert.True(t, s.Add([]byte("AB")), "first insert")
	assert.False(t, s.Add([]byte("AB")), "duplicate insert")
	assert.True(t, s.Add([]byte("BA")), "distinct insert")

	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains([]byte("AB")))
	assert.False(t, s.Contains([]byte("ABC")))
}

// TestSet_SubsetOf verifies subset comparison both ways.
func TestSet_SubsetOf(t *testing.T) {
	small := seqset.New[byte]()
	small.Add([]byte("A"))

	big := seqset.New[byte]()
	big.Add([]byte("A"))
	big.Add([]byte("B"))

	assert.True(t, small.SubsetOf(big))
	assert.False(t, big.SubsetOf(small))
}

// TestXMCS2_Seeds checks the documented pairwise scenarios: the
// expected maximal common subsequences are all produced.
func TestXMCS2_Seeds(t *testing.T) {
	res := seqset.XMCS2(3, []byte("ABCD"), []byte("ACBD"))
	for _, want := range bseqs("ACD", "ABD") {
		assert.True(t, res.Contains(want), "missing %q", want)
	}

	res = seqset.XMCS2(5, []byte("AEBCDABCD"), []byte("BADECABCD"))
	for _, want := range bseqs("AECABCD", "ADABCD", "BCABCD", "BDABCD") {
		assert.True(t, res.Contains(want), "missing %q", want)
	}
}

// TestXMCS2_MinLenPruning verifies that every produced sequence meets
// the minimum length.
func TestXMCS2_MinLenPruning(t *testing.T) {
	res := seqset.XMCS2(3, []byte("ABCD"), []byte("ACBD"))
	for _, seq := range res.Items() {
		assert.GreaterOrEqual(t, len(seq), 3, "sequence %q shorter than minimum", seq)
	}
}

// TestXMCS2_Boundaries covers unreachable budgets and trivial inputs.
func TestXMCS2_Boundaries(t *testing.T) {
	assert.Equal(t, 0, seqset.XMCS2(5, []byte("ABC"), []byte("ABCDEF")).Len(),
		"minLen above the shorter input yields the empty set")

	assert.Equal(t, 0, seqset.XMCS2(1, []byte(""), []byte("ABC")).Len(),
		"empty input yields the empty set")

	res := seqset.XMCS2(3, []byte("ABC"), []byte("ABC"))
	assert.True(t, res.Contains([]byte("ABC")), "identical inputs contain themselves")
}

// TestXMCSK_Seed checks the documented 4-sequence scenario.
func TestXMCSK_Seed(t *testing.T) {
	res := seqset.XMCSK(4, bseqs("ADBCBAD", "ADCBACD", "ABDCABDA", "BADBCBADC"))
	for _, want := range bseqs("ADCAD", "ABCD", "ACBD") {
		assert.True(t, res.Contains(want), "missing %q", want)
	}
}

// TestXMCSK_Degenerate covers the k ≤ 1 cases.
func TestXMCSK_Degenerate(t *testing.T) {
	assert.Equal(t, 0, seqset.XMCSK[byte](3, nil).Len(), "no sequences, no result")

	res := seqset.XMCSK(2, bseqs("ABC"))
	assert.Equal(t, 1, res.Len())
	assert.True(t, res.Contains([]byte("ABC")))

	assert.Equal(t, 0, seqset.XMCSK(4, bseqs("ABC")).Len(),
		"single sequence shorter than minLen")
}
