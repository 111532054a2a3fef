package schema

// sampleRecord returns the built-in demonstration workflow as a raw record,
// the same shape a JSON input file would decode into. Note the
// review → analysis back-edge producing a revision cycle.
func sampleRecord() map[string]any {
	return map[string]any{
		"name": "Research and Analysis Workflow",
		"nodes": []any{
			map[string]any{"id": "start", "name": "Start", "type": "start"},
			map[string]any{"id": "research", "name": "Research Agent", "type": "agent"},
			map[string]any{"id": "analysis", "name": "Analysis Agent", "type": "agent"},
			map[string]any{"id": "report", "name": "Report Generator", "type": "function"},
			map[string]any{"id": "review", "name": "Review Process", "type": "condition"},
			map[string]any{"id": "end", "name": "End", "type": "end"},
		},
		"edges": []any{
			map[string]any{"from": "start", "to": "research", "label": "Begin Research"},
			map[string]any{"from": "research", "to": "analysis", "label": "Research Complete"},
			map[string]any{"from": "analysis", "to": "report", "label": "Analysis Complete"},
			map[string]any{"from": "report", "to": "review", "label": "Generate Report"},
			map[string]any{"from": "review", "to": "end", "label": "Approved"},
			map[string]any{"from": "review", "to": "analysis", "label": "Needs Revision"},
		},
	}
}

// Sample returns the built-in demonstration graph, used when no input file is
// supplied.
func Sample() *Graph {
	return Decode(sampleRecord())
}

// SampleRecord returns the raw record backing Sample, for callers that want
// to show users the expected input shape.
func SampleRecord() map[string]any {
	return sampleRecord()
}
