package wordgraph

import (
	"bytes"
	"context"
	"fmt"
)

// ToDOT converts a co-occurrence graph to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG] or [RenderPNG].
//
// Node font size scales with keyword frequency and edge width with
// co-occurrence weight, so the dominant vocabulary stands out.
func ToDOT(g Graph) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=ellipse, style=filled, fillcolor=white, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes {
		fmt.Fprintf(&buf, "  %q [label=%q, fontsize=%d];\n",
			n.Word, fmt.Sprintf("%s (%d)", n.Word, n.Count), fontSize(n.Count))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges {
		fmt.Fprintf(&buf, "  %q -- %q [penwidth=%d];\n", e.From, e.To, e.Weight)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// fontSize maps a keyword count to a label size, capped so one dominant
// word cannot dwarf the rest of the graph.
func fontSize(count int) int {
	size := 14 + 4*count
	if size > 42 {
		size = 42
	}
	return size
}

// Renderer turns DOT text into image bytes. The production
// implementation is [GraphvizRenderer]; tests substitute their own.
type Renderer interface {
	RenderSVG(ctx context.Context, dot string) ([]byte, error)
	RenderPNG(ctx context.Context, dot string) ([]byte, error)
}
