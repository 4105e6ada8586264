// Package dag builds and queries extended sets of Maximal Common
// Subsequences (xMCS), stored compactly as a directed acyclic graph.
//
// 🚀 What is an xMCS DAG?
//
//	The set of maximal common subsequences of diverging inputs grows
//	exponentially, but its members share long prefixes and suffixes.
//	This package represents the whole set as a DAG — an acyclic
//	automaton with ε-branches — where shared fragments are stored once:
//
//	  Element(v, c)  accepts v followed by c's language
//	  Split(c1, c2)  accepts the union of two languages
//	  End(suffix)    accepts one literal tail
//	  Empty          accepts nothing
//
// ✨ Key features:
//   - XMCS2: pairwise construction with constant-time subsequence pruning
//   - XMCSK / AddSequence: fold any number of sequences incrementally
//   - ExtractLCS: read off one longest common subsequence
//   - ToSet: enumerate every accepted sequence (small graphs)
//   - FormatGraph: Graphviz DOT rendering
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/xmcs/dag"
//
//	seqs := [][]byte{
//	    []byte("ADBCBAD"),
//	    []byte("ADCBACD"),
//	    []byte("ABDCABDA"),
//	    []byte("BADBCBADC"),
//	}
//	d := dag.XMCSK(4, seqs)
//
//	lcs, ok := d.ExtractLCS() // one longest common subsequence
//	_ = d.FormatGraph(os.Stdout)
//
// Nodes live in an append-only arena addressed by stable integer
// indices; children always precede parents, so the graph is acyclic by
// construction and splicing one graph into another is an offset shift.
// A finished Dag is immutable and safe for concurrent reads; building
// is single-threaded and synchronous.
//
// End leaves borrow the input sequences — keep the inputs alive while
// the Dag is in use.
//
// Performance:
//
//   - Construction is output-sensitive: polynomial in the arena size,
//     which stays sub-exponential when the inputs share structure.
//   - ToSet is exponential in the worst case; it exists for extraction
//     and cross-checking, not for the construction path.
package dag
