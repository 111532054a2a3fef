package schema

// Graph is the in-memory workflow model consumed by the diagram renderers.
// Node and edge order is preserved from the input and determines emission order.
type Graph struct {
	Name  string `json:"name,omitempty"`
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Node is a single workflow step.
type Node struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Type NodeType `json:"type,omitempty"`
}

// Edge is a directed connection between two nodes, referencing them by ID.
// Dangling references are passed through verbatim; resolution is a renderer
// concern.
type Edge struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Label string `json:"label,omitempty"`
}

// NodeType enumerates the kinds of nodes in a workflow.
type NodeType string

const (
	NodeTypeStart     NodeType = "start"
	NodeTypeEnd       NodeType = "end"
	NodeTypeAgent     NodeType = "agent"
	NodeTypeFunction  NodeType = "function"
	NodeTypeCondition NodeType = "condition"
	NodeTypeOther     NodeType = "other"
)

// ParseNodeType maps a raw type string to a NodeType. Anything outside the
// five styled types (including the legacy "executor" default) collapses into
// NodeTypeOther.
func ParseNodeType(s string) NodeType {
	switch NodeType(s) {
	case NodeTypeStart, NodeTypeEnd, NodeTypeAgent, NodeTypeFunction, NodeTypeCondition:
		return NodeType(s)
	default:
		return NodeTypeOther
	}
}
