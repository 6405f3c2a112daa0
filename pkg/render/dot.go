package render

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/eulertour/pkg/euler"
	"github.com/matzehuels/eulertour/pkg/graph"
)

// Options configures DOT generation.
type Options struct {
	// Circuit, when non-empty, labels each edge with the step at which the
	// circuit traverses it and marks the start vertex.
	Circuit euler.Circuit

	// HighlightOdd fills odd-degree vertices, which explain why no circuit exists.
	HighlightOdd bool

	// Title is drawn above the diagram when set.
	Title string
}

// ToDOT converts g to an undirected Graphviz DOT document.
//
// Vertices are emitted in label order and edges in insertion order, so the
// output is deterministic. Parallel edges and self loops are drawn
// individually.
func ToDOT(g *graph.Graph, opts Options) string {
	steps := stepLabels(g, opts.Circuit)
	odd := map[int]bool{}
	if opts.HighlightOdd {
		for _, v := range euler.OddVertices(g) {
			odd[v] = true
		}
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14];\n")
	buf.WriteString("  edge [fontsize=10, fontcolor=\"#555555\"];\n")
	if opts.Title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n  labelloc=t;\n", opts.Title)
	}
	buf.WriteString("\n")

	start := opts.Circuit.Start()
	for v := range g.Order() {
		attrs := vertexAttrs(v, v == start, odd[v])
		fmt.Fprintf(&buf, "  %d [%s];\n", v, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for i, e := range g.Edges() {
		if s, ok := steps[i]; ok {
			fmt.Fprintf(&buf, "  %d -- %d [label=\"%d\"];\n", e.U, e.V, s)
			continue
		}
		fmt.Fprintf(&buf, "  %d -- %d;\n", e.U, e.V)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func vertexAttrs(v int, start, odd bool) []string {
	attrs := []string{"label=" + strconv.Quote(strconv.Itoa(v))}
	if start {
		attrs = append(attrs, "shape=doublecircle", "penwidth=2")
	}
	if odd {
		attrs = append(attrs, "fillcolor=\"#f4cccc\"", "color=\"#cc0000\"")
	}
	return attrs
}

// stepLabels maps edge index (insertion order) to the 1-based circuit step
// that traverses it. Parallel edges are matched to steps in insertion order.
// Steps that match no remaining edge are skipped.
func stepLabels(g *graph.Graph, c euler.Circuit) map[int]int {
	if len(c) < 2 {
		return nil
	}

	pending := make(map[[2]int][]int)
	for i, e := range g.Edges() {
		k := pair(e.U, e.V)
		pending[k] = append(pending[k], i)
	}

	labels := make(map[int]int, len(c)-1)
	for step := 1; step < len(c); step++ {
		k := pair(c[step-1], c[step])
		ids := pending[k]
		if len(ids) == 0 {
			continue
		}
		labels[ids[0]] = step
		pending[k] = ids[1:]
	}
	return labels
}

func pair(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}
	return [2]int{u, v}
}
