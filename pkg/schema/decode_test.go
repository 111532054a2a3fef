package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeFull(t *testing.T) {
	record := map[string]any{
		"name": "Demo",
		"nodes": []any{
			map[string]any{"id": "a", "name": "A", "type": "start"},
			map[string]any{"id": "b", "name": "B", "type": "agent"},
		},
		"edges": []any{
			map[string]any{"from": "a", "to": "b", "label": "go"},
		},
	}

	g := Decode(record)
	require.Len(t, g.Nodes, 2)
	require.Len(t, g.Edges, 1)

	assert.Equal(t, "Demo", g.Name)
	assert.Equal(t, Node{ID: "a", Name: "A", Type: NodeTypeStart}, g.Nodes[0])
	assert.Equal(t, Node{ID: "b", Name: "B", Type: NodeTypeAgent}, g.Nodes[1])
	assert.Equal(t, Edge{From: "a", To: "b", Label: "go"}, g.Edges[0])
}

func TestDecodeEmptyRecord(t *testing.T) {
	g := Decode(map[string]any{})
	assert.Empty(t, g.Name)
	assert.Empty(t, g.Nodes)
	assert.Empty(t, g.Edges)
}

func TestDecodeNilRecord(t *testing.T) {
	g := Decode(nil)
	assert.Empty(t, g.Nodes)
	assert.Empty(t, g.Edges)
}

func TestDecodeNodeDefaults(t *testing.T) {
	g := Decode(map[string]any{
		"nodes": []any{map[string]any{}},
	})

	require.Len(t, g.Nodes, 1)
	assert.Equal(t, "unknown", g.Nodes[0].ID)
	assert.Equal(t, "Unknown", g.Nodes[0].Name)
	assert.Equal(t, NodeTypeOther, g.Nodes[0].Type)
}

func TestDecodeEdgeDefaults(t *testing.T) {
	g := Decode(map[string]any{
		"edges": []any{map[string]any{}},
	})

	require.Len(t, g.Edges, 1)
	assert.Equal(t, "unknown", g.Edges[0].From)
	assert.Equal(t, "unknown", g.Edges[0].To)
	assert.Empty(t, g.Edges[0].Label)
}

func TestDecodeNonMapEntries(t *testing.T) {
	// Entries that are not objects degrade to fully defaulted values.
	g := Decode(map[string]any{
		"nodes": []any{"garbage", 42.0},
		"edges": []any{true},
	})

	require.Len(t, g.Nodes, 2)
	require.Len(t, g.Edges, 1)
	assert.Equal(t, "unknown", g.Nodes[0].ID)
	assert.Equal(t, NodeTypeOther, g.Nodes[1].Type)
	assert.Equal(t, "unknown", g.Edges[0].From)
}

func TestDecodeWrongValueTypes(t *testing.T) {
	// Non-string field values fall back to the defaults.
	g := Decode(map[string]any{
		"name":  12.0,
		"nodes": []any{map[string]any{"id": 1.0, "name": nil, "type": []any{}}},
		"edges": "not a list",
	})

	require.Len(t, g.Nodes, 1)
	assert.Empty(t, g.Name)
	assert.Equal(t, "unknown", g.Nodes[0].ID)
	assert.Equal(t, "Unknown", g.Nodes[0].Name)
	assert.Equal(t, NodeTypeOther, g.Nodes[0].Type)
	assert.Empty(t, g.Edges)
}

func TestDecodePreservesOrder(t *testing.T) {
	record := map[string]any{
		"nodes": []any{
			map[string]any{"id": "z"},
			map[string]any{"id": "a"},
			map[string]any{"id": "m"},
		},
	}

	g := Decode(record)
	require.Len(t, g.Nodes, 3)
	assert.Equal(t, "z", g.Nodes[0].ID)
	assert.Equal(t, "a", g.Nodes[1].ID)
	assert.Equal(t, "m", g.Nodes[2].ID)
}

func TestParseNodeType(t *testing.T) {
	tests := []struct {
		in   string
		want NodeType
	}{
		{"start", NodeTypeStart},
		{"end", NodeTypeEnd},
		{"agent", NodeTypeAgent},
		{"function", NodeTypeFunction},
		{"condition", NodeTypeCondition},
		{"other", NodeTypeOther},
		{"executor", NodeTypeOther},
		{"", NodeTypeOther},
		{"Start", NodeTypeOther},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseNodeType(tc.in))
		})
	}
}
