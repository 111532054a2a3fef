package schema

// Default literals substituted for missing or malformed fields. A visualizer
// should render best-effort output rather than refuse partial input, so
// Decode never fails.
const (
	DefaultNodeID   = "unknown"
	DefaultNodeName = "Unknown"
	DefaultNodeType = "executor"
)

// Decode maps a loosely-typed workflow record onto a Graph, applying per-field
// defaults. It is a total function: missing keys, wrong value types, and
// non-object entries all degrade to defaulted values. No uniqueness or
// referential-integrity checks are performed.
func Decode(record map[string]any) *Graph {
	g := &Graph{
		Name:  stringField(record, "name", ""),
		Nodes: []Node{},
		Edges: []Edge{},
	}

	for _, entry := range listField(record, "nodes") {
		m, _ := entry.(map[string]any)
		g.Nodes = append(g.Nodes, Node{
			ID:   stringField(m, "id", DefaultNodeID),
			Name: stringField(m, "name", DefaultNodeName),
			Type: ParseNodeType(stringField(m, "type", DefaultNodeType)),
		})
	}

	for _, entry := range listField(record, "edges") {
		m, _ := entry.(map[string]any)
		g.Edges = append(g.Edges, Edge{
			From:  stringField(m, "from", DefaultNodeID),
			To:    stringField(m, "to", DefaultNodeID),
			Label: stringField(m, "label", ""),
		})
	}

	return g
}

// stringField reads a string value from m, falling back to def when the key
// is absent or the value is not a string. A nil map yields def.
func stringField(m map[string]any, key, def string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return def
}

// listField reads a list value from m, treating absent or non-list values as
// an empty sequence.
func listField(m map[string]any, key string) []any {
	v, _ := m[key].([]any)
	return v
}
