// Package subseq defines the sentinel errors reported by the
// tail-subsequence oracle.
package subseq

import "errors" // we need sentinel error creation

// Sentinel errors for oracle construction and queries.
var (
	// ErrBandExceeded indicates a length difference or index pair outside
	// the ±delta diagonal band the oracle was built for.
	ErrBandExceeded = errors.New("subseq: distance exceeds delta band")

	// ErrIndexOutOfRange indicates a query index past the end of its sequence.
	ErrIndexOutOfRange = errors.New("subseq: index out of range")

	// ErrNegativeDelta indicates a negative divergence bound.
	ErrNegativeDelta = errors.New("subseq: delta must be non-negative")
)
