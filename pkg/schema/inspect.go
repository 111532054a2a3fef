package schema

// Report summarizes the structure of a graph without enforcing anything.
// Duplicate IDs and dangling edge references are legal input — they pass
// through to the rendered diagram verbatim — but agents and users often want
// to know about them before a renderer silently produces a broken picture.
type Report struct {
	Name         string           `json:"name,omitempty"`
	NodeCount    int              `json:"node_count"`
	EdgeCount    int              `json:"edge_count"`
	TypeCounts   map[NodeType]int `json:"type_counts"`
	DuplicateIDs []string         `json:"duplicate_ids,omitempty"`
	DanglingRefs []string         `json:"dangling_refs,omitempty"`
}

// Inspect walks a graph and returns its structural Report.
func Inspect(g *Graph) *Report {
	r := &Report{
		Name:       g.Name,
		NodeCount:  len(g.Nodes),
		EdgeCount:  len(g.Edges),
		TypeCounts: make(map[NodeType]int),
	}

	seen := make(map[string]int, len(g.Nodes))
	for _, n := range g.Nodes {
		r.TypeCounts[n.Type]++
		seen[n.ID]++
	}
	for _, n := range g.Nodes {
		if seen[n.ID] > 1 {
			r.DuplicateIDs = appendUnique(r.DuplicateIDs, n.ID)
		}
	}

	for _, e := range g.Edges {
		if seen[e.From] == 0 {
			r.DanglingRefs = appendUnique(r.DanglingRefs, e.From)
		}
		if seen[e.To] == 0 {
			r.DanglingRefs = appendUnique(r.DanglingRefs, e.To)
		}
	}

	return r
}

func appendUnique(list []string, s string) []string {
	for _, v := range list {
		if v == s {
			return list
		}
	}
	return append(list, s)
}
