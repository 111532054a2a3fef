package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/codefix-ai/flowviz/internal/diagram"
	"github.com/codefix-ai/flowviz/internal/logging"
	"github.com/codefix-ai/flowviz/pkg/schema"
)

// handleRender renders a workflow definition in the requested format.
func (s *FlowvizServer) handleRender(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	format, err := req.RequireString("format")
	if err != nil {
		return mcp.NewToolResultError("format is required"), nil
	}

	record := mcp.ParseStringMap(req, "definition", nil)
	if record == nil {
		return mcp.NewToolResultError("definition is required"), nil
	}

	ctx = logging.WithRenderID(ctx, uuid.New().String())
	ctx = logging.WithFormat(ctx, format)
	ctx = logging.WithInput(ctx, "inline")

	if expr := req.GetString("filter", ""); expr != "" {
		filtered, filterErr := s.filter.Apply(ctx, expr, record)
		if filterErr != nil {
			return mcp.NewToolResultError(fmt.Sprintf("filter failed: %v", filterErr)), nil
		}
		record = filtered
	}

	g := schema.Decode(record)
	text, renderErr := diagram.Render(format, g)
	if renderErr != nil {
		return mcp.NewToolResultError(fmt.Sprintf("render failed: %v", renderErr)), nil
	}

	s.logger.InfoContext(ctx, "rendered diagram",
		"nodes", len(g.Nodes), "edges", len(g.Edges))
	return mcp.NewToolResultText(text), nil
}

// handleSample renders the built-in demonstration workflow.
func (s *FlowvizServer) handleSample(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	format, err := req.RequireString("format")
	if err != nil {
		return mcp.NewToolResultError("format is required"), nil
	}

	ctx = logging.WithRenderID(ctx, uuid.New().String())
	ctx = logging.WithFormat(ctx, format)
	ctx = logging.WithInput(ctx, "sample")

	text, renderErr := diagram.Render(format, schema.Sample())
	if renderErr != nil {
		return mcp.NewToolResultError(fmt.Sprintf("render failed: %v", renderErr)), nil
	}

	s.logger.InfoContext(ctx, "rendered sample diagram")
	return mcp.NewToolResultText(text), nil
}

// handleInspect summarizes a workflow definition without rendering it.
func (s *FlowvizServer) handleInspect(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	record := mcp.ParseStringMap(req, "definition", nil)
	if record == nil {
		return mcp.NewToolResultError("definition is required"), nil
	}

	report := schema.Inspect(schema.Decode(record))
	s.logger.InfoContext(ctx, "inspected definition",
		"nodes", report.NodeCount, "edges", report.EdgeCount)
	return marshalResult(report)
}

// marshalResult converts a value to a JSON text tool result.
func marshalResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}
	return mcp.NewToolResultJSON(json.RawMessage(data))
}
