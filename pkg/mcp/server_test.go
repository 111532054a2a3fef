package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFlowvizServer(t *testing.T) {
	s := NewFlowvizServer(FlowvizServerDeps{})
	require.NotNil(t, s)
	assert.NotNil(t, s.mcpServer)
	assert.NotNil(t, s.logger)
	assert.NotNil(t, s.filter)
}

func TestToolRegistration(t *testing.T) {
	s := NewFlowvizServer(FlowvizServerDeps{})

	tools := s.mcpServer.ListTools()
	require.Len(t, tools, 3)

	expectedTools := []string{
		"flowviz.render",
		"flowviz.sample",
		"flowviz.inspect",
	}
	for _, name := range expectedTools {
		tool := s.mcpServer.GetTool(name)
		assert.NotNil(t, tool, "tool %s should be registered", name)
	}
}

func TestToolDefinitions(t *testing.T) {
	tests := []struct {
		name        string
		toolName    string
		description string
	}{
		{"render", "flowviz.render", "Render a workflow definition as a text diagram. Returns Mermaid flowchart syntax or GraphViz DOT"},
		{"sample", "flowviz.sample", "Render the built-in demonstration workflow"},
		{"inspect", "flowviz.inspect", "Summarize a workflow definition's structure: node/edge counts, type histogram, duplicate node IDs, and dangling edge references. Diagnostics only, nothing is rejected"},
	}

	s := NewFlowvizServer(FlowvizServerDeps{})

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tool := s.mcpServer.GetTool(tc.toolName)
			require.NotNil(t, tool)
			assert.Equal(t, tc.description, tool.Tool.Description)
		})
	}
}
