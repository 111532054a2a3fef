package diagram

import (
	"fmt"
	"strings"

	"github.com/codefix-ai/flowviz/pkg/schema"
)

// RenderMermaid renders a Graph as a Mermaid flowchart string. Rendering is a
// pure function of the graph: node and edge lines follow input order, so equal
// graphs produce byte-identical output.
//
// IDs and labels are interpolated verbatim. An id or label containing Mermaid
// metacharacters (pipes, quotes) will corrupt the diagram syntax; that is the
// renderer's concern, not checked here.
func RenderMermaid(g *schema.Graph) string {
	var b strings.Builder

	b.WriteString("graph TD\n")

	// Node declarations, icon chosen by type.
	for _, node := range g.Nodes {
		b.WriteString(fmt.Sprintf("    %s[\"%s %s\"]\n", node.ID, styleFor(node.Type).Icon, node.Name))
	}

	// Connectors. An empty label is indistinguishable from no label.
	for _, edge := range g.Edges {
		if edge.Label != "" {
			b.WriteString(fmt.Sprintf("    %s -->|%s| %s\n", edge.From, edge.Label, edge.To))
		} else {
			b.WriteString(fmt.Sprintf("    %s --> %s\n", edge.From, edge.To))
		}
	}

	// Class definitions for the five styled types. Nodes of the catch-all
	// type keep the dialect's default appearance.
	b.WriteString("\n")
	b.WriteString("    %% Styling\n")
	for _, t := range styledTypes {
		s := styles[t]
		b.WriteString(fmt.Sprintf("    classDef %s %s\n", s.Class, s.ClassDef))
	}

	// Class assignments.
	for _, node := range g.Nodes {
		if cls := styleFor(node.Type).Class; cls != "" {
			b.WriteString(fmt.Sprintf("    class %s %s\n", node.ID, cls))
		}
	}

	return b.String()
}

// MermaidFence wraps a rendered Mermaid diagram in a fenced Markdown block
// for embedding in documentation.
func MermaidFence(diagram string) string {
	return "```mermaid\n" + strings.TrimRight(diagram, "\n") + "\n```\n"
}
