package diagram

import (
	"fmt"
	"strings"

	"github.com/codefix-ai/flowviz/pkg/schema"
)

// RenderDOT renders a Graph in GraphViz DOT syntax. Same contract as
// RenderMermaid: deterministic, input-ordered, total over the Graph domain.
// Labels land inside quoted attribute values unescaped; embedded quotes are
// a known fragility mirroring the Mermaid renderer's.
func RenderDOT(g *schema.Graph) string {
	var b strings.Builder

	b.WriteString("digraph Workflow {\n")
	b.WriteString("    rankdir=LR;\n")
	b.WriteString("    node [shape=box, style=rounded];\n")
	b.WriteString("\n")

	// Node attribute statements, fill color chosen by type.
	for _, node := range g.Nodes {
		b.WriteString(fmt.Sprintf("    %s [label=\"%s\", fillcolor=%s, style=\"filled,rounded\"];\n",
			node.ID, node.Name, styleFor(node.Type).FillColor))
	}

	b.WriteString("\n")

	// Edge statements.
	for _, edge := range g.Edges {
		if edge.Label != "" {
			b.WriteString(fmt.Sprintf("    %s -> %s [label=\"%s\"];\n", edge.From, edge.To, edge.Label))
		} else {
			b.WriteString(fmt.Sprintf("    %s -> %s;\n", edge.From, edge.To))
		}
	}

	b.WriteString("}\n")
	return b.String()
}
