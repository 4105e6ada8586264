// Package subseq implements the banded tail-subsequence oracle used to
// prune the xMCS DAG construction.
//
// The oracle is a dynamic program over the ±delta diagonal band of the
// (i, j) index plane, filled in reverse so that every cell only consults
// cells strictly below or to the right of it.
package subseq

// SubString holds the precomputed answers for one pair of sequences.
//
// Construct with New; the zero value is not usable.  The element type is
// consumed at construction only — queries are pure index arithmetic, so
// the struct itself is not generic.
type SubString struct {
	d1    int    // length of the first sequence
	d2    int    // length of the second sequence
	delta int    // half-width of the materialized diagonal band
	table []bool // d1×(2·delta+1) band cells, row-major
}

// New precomputes the oracle for s1 and s2 with divergence bound delta.
//
// The band must cover the length difference: ||s1|−|s2|| ≤ delta,
// otherwise ErrBandExceeded is returned.  A negative delta returns
// ErrNegativeDelta.
//
// Runs in O(|s1|·delta) time and memory.
func New[T comparable](s1, s2 []T, delta int) (*SubString, error) {
	// 1) Validate the band precondition up front.
	if delta < 0 {
		return nil, ErrNegativeDelta
	}
	d1, d2 := len(s1), len(s2)
	if distance(d1, d2) > delta {
		return nil, ErrBandExceeded
	}

	// 2) Allocate the band: row i holds columns [i−delta, i+delta].
	table := make([]bool, d1*(2*delta+1))

	// 3) Fill in reverse row-major order, decreasing i then decreasing j,
	//    so every recurrence input is already computed.
	var i, j, start, endI, endJ int
	var ok bool
	for i = d1 - 1; i >= 0; i-- {
		// 3.1) Clamp the column walk to the sequence and to the band.
		start = min(i+delta+1, d2)
		for j = start - 1; j >= 0; j-- {
			// 3.2) Left band edge: everything further is out of band.
			if distance(i, j) > delta {
				break
			}

			// 3.3) Residual lengths past the current elements.
			endI = d1 - i - 1
			endJ = d2 - j - 1

			// 3.4) Compare residuals and apply the recurrence.  Lookups at
			//      (i+1, j+1), (i, j+1) and (i+1, j) stay inside the band
			//      because the construction precondition bounds |d1−d2|.
			switch {
			case endI == endJ && endI == 0:
				// Single element left on both sides: equality decides.
				ok = s1[i] == s2[j]
			case endI == endJ:
				// Equal residuals: tails are equal iff heads match and the
				// remaining tails are equal.
				ok = table[indexWith(i+1, j+1, delta)] && s1[i] == s2[j]
			case endI < endJ && endI == 0:
				// Last element of s1: it appears somewhere in s2[j:].
				ok = table[indexWith(i, j+1, delta)] || s1[i] == s2[j]
			case endI < endJ:
				// s1 tail shorter: skip s2[j], or consume both heads.
				ok = table[indexWith(i, j+1, delta)] ||
					(table[indexWith(i+1, j+1, delta)] && s1[i] == s2[j])
			case endJ == 0:
				// Symmetric to the endI == 0 case with roles swapped.
				ok = table[indexWith(i+1, j, delta)] || s1[i] == s2[j]
			default:
				// s2 tail shorter: skip s1[i], or consume both heads.
				ok = table[indexWith(i+1, j, delta)] ||
					(table[indexWith(i+1, j+1, delta)] && s1[i] == s2[j])
			}

			table[indexWith(i, j, delta)] = ok
		}
	}

	return &SubString{d1: d1, d2: d2, delta: delta, table: table}, nil
}

// IsSubstringAt reports whether the shorter of s1[i:], s2[j:] is a
// subsequence of the longer.  If the tails have equal length it reports
// whether they are equal.
//
// Runs in constant time.  Panics with ErrIndexOutOfRange when i or j
// exceeds its sequence length, and with ErrBandExceeded when |i−j| is
// larger than the delta given at construction.
func (ss *SubString) IsSubstringAt(i, j int) bool {
	if i < 0 || i > ss.d1 || j < 0 || j > ss.d2 {
		panic(ErrIndexOutOfRange)
	}
	if distance(i, j) > ss.delta {
		panic(ErrBandExceeded)
	}

	// An empty tail is vacuously a subsequence of anything.
	if i == ss.d1 || j == ss.d2 {
		return true
	}

	return ss.table[indexWith(i, j, ss.delta)]
}

// IsSubstringFromEnd answers the same question as IsSubstringAt with the
// arguments given as residual lengths counted from the sequence ends:
// endI elements of s1 remain, endJ elements of s2 remain.
//
// Panics exactly as IsSubstringAt does.
func (ss *SubString) IsSubstringFromEnd(endI, endJ int) bool {
	if endI < 0 || endI > ss.d1 || endJ < 0 || endJ > ss.d2 {
		panic(ErrIndexOutOfRange)
	}

	return ss.IsSubstringAt(ss.d1-endI, ss.d2-endJ)
}

// Delta returns the divergence bound the oracle was built with.
func (ss *SubString) Delta() int { return ss.delta }

// indexWith flattens the band cell (i, j) into the table.
// Valid only for |i−j| ≤ delta.
func indexWith(i, j, delta int) int {
	return j + delta + i*2*delta
}

// distance returns |a−b| for non-negative operands.
func distance(a, b int) int {
	if a > b {
		return a - b
	}

	return b - a
}
