package subseq_test

import (
	"testing"

	"github.com/katalvlaran/xmcs/subseq"
)

// benchmarkNew builds the oracle for two synthetic sequences of length n
// over a 4-letter alphabet with the given band width.
func benchmarkNew(b *testing.B, n, delta int) {
	s1 := make([]byte, n)
	s2 := make([]byte, n)
	for i := 0; i < n; i++ {
		s1[i] = byte('A' + i%4)       // periodic pattern
		s2[i] = byte('A' + (i*3+1)%4) // shifted periodic pattern
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := subseq.New(s1, s2, delta); err != nil {
			b.Fatalf("New failed: %v", err)
		}
	}
}

// BenchmarkNew_NarrowBand benchmarks precomputation with a tight band.
func BenchmarkNew_NarrowBand(b *testing.B) {
	benchmarkNew(b, 1000, 8)
}

// BenchmarkNew_WideBand benchmarks precomputation with a generous band.
func BenchmarkNew_WideBand(b *testing.B) {
	benchmarkNew(b, 1000, 128)
}

// BenchmarkIsSubstringAt benchmarks the constant-time query path.
func BenchmarkIsSubstringAt(b *testing.B) {
	s1 := make([]byte, 512)
	s2 := make([]byte, 512)
	for i := range s1 {
		s1[i] = byte('A' + i%4)
		s2[i] = byte('A' + (i*5+2)%4)
	}
	ss, err := subseq.New(s1, s2, 16)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ss.IsSubstringAt(i%500, i%500)
	}
}
