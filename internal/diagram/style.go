package diagram

import "github.com/codefix-ai/flowviz/pkg/schema"

// NodeStyle is the visual treatment for one node type, shared by both
// renderers: the Mermaid renderer uses Icon, Class, and ClassDef; the DOT
// renderer uses FillColor.
type NodeStyle struct {
	Icon      string
	Class     string // Mermaid class name; empty means unstyled
	ClassDef  string // Mermaid classDef attribute list
	FillColor string // graphviz fillcolor
}

// styles is a total mapping over the node type enum. NodeTypeOther is the
// catch-all: default icon and color, no Mermaid class.
var styles = map[schema.NodeType]NodeStyle{
	schema.NodeTypeStart: {
		Icon:      "🚀",
		Class:     "startNode",
		ClassDef:  "fill:#90EE90,stroke:#333,stroke-width:2px",
		FillColor: "lightgreen",
	},
	schema.NodeTypeEnd: {
		Icon:      "🏁",
		Class:     "endNode",
		ClassDef:  "fill:#FFB6C1,stroke:#333,stroke-width:2px",
		FillColor: "lightcoral",
	},
	schema.NodeTypeAgent: {
		Icon:      "🤖",
		Class:     "agentNode",
		ClassDef:  "fill:#87CEEB,stroke:#333,stroke-width:2px",
		FillColor: "lightblue",
	},
	schema.NodeTypeFunction: {
		Icon:      "⚙️",
		Class:     "functionNode",
		ClassDef:  "fill:#FFE4B5,stroke:#333,stroke-width:2px",
		FillColor: "lightyellow",
	},
	schema.NodeTypeCondition: {
		Icon:      "🔀",
		Class:     "conditionNode",
		ClassDef:  "fill:#DDA0DD,stroke:#333,stroke-width:2px",
		FillColor: "plum",
	},
	schema.NodeTypeOther: {
		Icon:      "📦",
		FillColor: "lightgray",
	},
}

// styledTypes fixes the emission order of the Mermaid classDef block.
var styledTypes = []schema.NodeType{
	schema.NodeTypeStart,
	schema.NodeTypeEnd,
	schema.NodeTypeAgent,
	schema.NodeTypeFunction,
	schema.NodeTypeCondition,
}

// styleFor returns the NodeStyle for a node type, falling back to the
// catch-all style for anything outside the enum.
func styleFor(t schema.NodeType) NodeStyle {
	if s, ok := styles[t]; ok {
		return s
	}
	return styles[schema.NodeTypeOther]
}
