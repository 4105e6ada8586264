// Graphviz rendering of subsequence DAGs.
//
// The renderer is a read-only consumer of the graph: it walks the arena
// through the public accessors and emits DOT text for the dot tool
// (https://graphviz.org/).  Layout niceties (End leaves ranked together,
// nodes grouped by remaining length) follow the automaton reading of the
// graph rather than the arena order.
package dag

import (
	"container/heap"
	"fmt"
	"io"
	"strings"
)

// RenderOptions configures the DOT output of FormatGraphWith.
//
// Fields:
//
//	RankDir  - graph direction: "LR", "RL", "TB" or "BT".
//	Pad      - outer padding in points, non-negative.
//	ShowInfo - emit the info cluster (minimum length, state count).
type RenderOptions struct {
	RankDir  string
	Pad      int
	ShowInfo bool
}

// DefaultRenderOptions returns the options used by FormatGraph.
//
//	RankDir:  "LR"   // left-to-right, sequences read naturally
//	Pad:      1
//	ShowInfo: true
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		RankDir:  "LR",
		Pad:      1,
		ShowInfo: true,
	}
}

// Validate checks that the options hold a valid combination.
// It returns ErrBadRenderOptions on an unknown RankDir or negative Pad.
func (o *RenderOptions) Validate() error {
	switch o.RankDir {
	case "LR", "RL", "TB", "BT":
	default:
		return ErrBadRenderOptions
	}
	if o.Pad < 0 {
		return ErrBadRenderOptions
	}

	return nil
}

// FormatGraph writes a DOT rendering of the Dag to w using the default
// options.  Write errors are returned unchanged.
func (d *Dag[T]) FormatGraph(w io.Writer) error {
	opts := DefaultRenderOptions()

	return d.FormatGraphWith(w, &opts)
}

// FormatGraphWith writes a DOT rendering of the Dag to w.
func (d *Dag[T]) FormatGraphWith(w io.Writer, opts *RenderOptions) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	// The document is assembled in memory first; only the final write can
	// fail, and its error is forwarded untouched.
	var sb strings.Builder

	sb.WriteString("digraph xMCS {\n")
	fmt.Fprintf(&sb, "\trankdir = %s;\n", opts.RankDir)
	fmt.Fprintf(&sb, "\tpad = %d;\n", opts.Pad)
	sb.WriteString("\tnewrank = yes;\n")

	sb.WriteString("\tstart [shape = none, height = 0, width = 0];\n")

	if opts.ShowInfo {
		sb.WriteString("\tsubgraph cluster_info {\n")
		sb.WriteString("\t\trank = same;\n")
		sb.WriteString("\t\tnode [shape = box];\n")
		fmt.Fprintf(&sb, "\t\tmin_len [label = \"Minimum subsequence length: %d\"];\n", d.minLen)
		fmt.Fprintf(&sb, "\t\tstates [label = \"%d states\"];\n", len(d.nodes))
		sb.WriteString("\t\topt [label = \"Merge optimisations enabled\"];\n")
		sb.WriteString("\t}\n")
	}

	d.writeClusters(&sb)
	d.writeEdges(&sb)

	sb.WriteString("}\n")

	_, err := io.WriteString(w, sb.String())

	return err
}

// writeClusters declares the nodes, grouped by remaining length so that
// dot ranks equal-depth nodes together.  End leaves form their own group
// and are labeled with their suffix.
func (d *Dag[T]) writeClusters(sb *strings.Builder) {
	depths := d.computeDepths()

	for depth, nodes := range depths {
		sb.WriteString("\tnode [shape = point, label = \"\"];\n")

		if depth == 0 {
			sb.WriteString("\t{\n")
			sb.WriteString("\t\trank = same;\n")
			sb.WriteString("\t\tnode [shape = none, fontcolor = green];\n")
			for _, index := range nodes {
				node := d.nodes[index]
				if node.kind != KindEnd {
					continue
				}
				name := d.nodeName(index)
				fmt.Fprintf(sb, "\t\t%s [label = \"%s\"];\n", name, seqText(node.suffix))
			}
			sb.WriteString("\t}\n")

			continue
		}

		sb.WriteString("\t{\n")
		sb.WriteString("\t\trank = same;\n")
		for _, index := range nodes {
			fmt.Fprintf(sb, "\t\tnode_%d;\n", index)
		}
		sb.WriteString("\t}\n")
	}
}

// writeEdges declares the start marker edge and one edge per
// Element/Split transition.
func (d *Dag[T]) writeEdges(sb *strings.Builder) {
	fmt.Fprintf(sb,
		"\tstart -> %s [dir = back, arrowhead = none, arrowtail = crow, arrowsize = 2, color = green];\n",
		d.nodeName(d.start))

	for i, node := range d.nodes {
		switch node.kind {
		case KindElement:
			fmt.Fprintf(sb, "\tnode_%d -> %s [", i, d.nodeName(node.child1))
			if d.nodes[node.child1].kind == KindEnd {
				sb.WriteString("arrowhead = dot, ")
			}
			fmt.Fprintf(sb, "label = %s, weight = 2, color = blue, fontcolor = red];\n",
				formatElem(node.value))

		case KindSplit:
			d.writeSplitEdge(sb, i, node.child1)
			d.writeSplitEdge(sb, i, node.child2)
		}
	}
}

func (d *Dag[T]) writeSplitEdge(sb *strings.Builder, parent, child int) {
	fmt.Fprintf(sb, "\tnode_%d -> %s", parent, d.nodeName(child))
	if d.nodes[child].kind == KindEnd {
		sb.WriteString(" [arrowhead = dot]")
	}
	sb.WriteString(";\n")
}

// nodeName returns the DOT identifier of a node.  End leaves are named
// after their suffix text so that dot displays the accepted sequences
// directly; everything else is node_<index>.
func (d *Dag[T]) nodeName(index int) string {
	node := d.nodes[index]
	if node.kind == KindEnd && len(node.suffix) > 0 {
		return fmt.Sprintf("%q", seqText(node.suffix))
	}

	return fmt.Sprintf("node_%d", index)
}

// computeDepths buckets the reachable nodes by remaining length: bucket
// 0 holds End leaves, bucket depth+1 the inner nodes still owing `depth`
// elements.  A max-priority queue keeps each node at the largest depth
// from which it is reachable.
func (d *Dag[T]) computeDepths() [][]int {
	res := make([][]int, d.minLen+2)
	visited := make([]bool, len(d.nodes))
	best := make([]int, len(d.nodes))
	for i := range best {
		best[i] = -1
	}

	q := &depthQueue{}
	push := func(index, depth int) {
		// Only ever raise a node's depth, mirroring a push-or-increase
		// priority queue; stale queue entries are skipped on pop.
		if !visited[index] && depth > best[index] {
			best[index] = depth
			heap.Push(q, depthItem{index: index, depth: depth})
		}
	}

	push(d.start, d.minLen)

	for q.Len() > 0 {
		it := heap.Pop(q).(depthItem)
		if visited[it.index] || it.depth != best[it.index] {
			continue
		}
		visited[it.index] = true

		node := d.nodes[it.index]
		if node.kind == KindEnd {
			res[0] = append(res[0], it.index)
		} else {
			res[it.depth+1] = append(res[it.depth+1], it.index)
		}

		switch node.kind {
		case KindSplit:
			push(node.child1, it.depth)
			push(node.child2, it.depth)
		case KindElement:
			push(node.child1, saturatingDec(it.depth))
		}
	}

	return res
}

// depthItem is one pending queue entry of computeDepths.
type depthItem struct {
	index int
	depth int
}

// depthQueue is a max-heap over depth.
type depthQueue []depthItem

func (q depthQueue) Len() int            { return len(q) }
func (q depthQueue) Less(i, j int) bool  { return q[i].depth > q[j].depth }
func (q depthQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *depthQueue) Push(x interface{}) { *q = append(*q, x.(depthItem)) }
func (q *depthQueue) Pop() interface{} {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]

	return it
}

// seqText concatenates the elements of a sequence for display.
func seqText[T comparable](seq []T) string {
	var sb strings.Builder
	for _, e := range seq {
		sb.WriteString(formatElem(e))
	}

	return sb.String()
}

// formatElem renders one alphabet element.  Byte and rune alphabets are
// shown as characters, everything else through fmt.
func formatElem[T comparable](e T) string {
	switch v := any(e).(type) {
	case byte:
		return string(v)
	case rune:
		return string(v)
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
