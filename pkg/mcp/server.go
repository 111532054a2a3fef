package mcp

import (
	"context"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/codefix-ai/flowviz/internal/expressions"
)

// FlowvizServerDeps holds the dependencies for creating a FlowvizServer.
type FlowvizServerDeps struct {
	Filter *expressions.Filter
	Logger *slog.Logger
}

// FlowvizServer wraps an MCP server with flowviz-specific tool handlers,
// letting agents render and inspect workflow diagrams without shelling out.
type FlowvizServer struct {
	filter    *expressions.Filter
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewFlowvizServer creates a new FlowvizServer with all 3 tools registered.
func NewFlowvizServer(deps FlowvizServerDeps) *FlowvizServer {
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	filter := deps.Filter
	if filter == nil {
		filter = expressions.NewFilter()
	}

	s := &FlowvizServer{
		filter: filter,
		logger: logger,
	}

	mcpSrv := server.NewMCPServer(
		"flowviz",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithRecovery(),
		server.WithInstructions("Flowviz renders workflow graphs as text diagrams. Use flowviz.render to turn a workflow definition into Mermaid or DOT syntax, flowviz.sample to render the built-in demonstration workflow, and flowviz.inspect to summarize a definition's structure."),
	)

	mcpSrv.AddTools(s.tools()...)
	s.mcpServer = mcpSrv
	return s
}

// Serve starts the stdio transport and blocks until ctx is cancelled or stdin closes.
func (s *FlowvizServer) Serve(ctx context.Context) error {
	stdio := server.NewStdioServer(s.mcpServer)
	return stdio.Listen(ctx, os.Stdin, os.Stdout)
}

// MCPServer returns the underlying MCPServer for testing or custom transports.
func (s *FlowvizServer) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// tools returns the 3 registered MCP tools as ServerTool entries.
func (s *FlowvizServer) tools() []server.ServerTool {
	return []server.ServerTool{
		{Tool: renderTool(), Handler: s.handleRender},
		{Tool: sampleTool(), Handler: s.handleSample},
		{Tool: inspectTool(), Handler: s.handleInspect},
	}
}

// --- Tool definitions ---

func renderTool() mcp.Tool {
	return mcp.NewTool("flowviz.render",
		mcp.WithDescription("Render a workflow definition as a text diagram. Returns Mermaid flowchart syntax or GraphViz DOT"),
		mcp.WithObject("definition", mcp.Required(), mcp.Description("Workflow definition object with nodes and edges")),
		mcp.WithString("format", mcp.Required(),
			mcp.Enum("mermaid", "dot"),
			mcp.Description("Output format: mermaid (flowchart syntax) or dot (GraphViz)"),
		),
		mcp.WithString("filter", mcp.Description("Optional jq expression applied to the definition before rendering")),
	)
}

func sampleTool() mcp.Tool {
	return mcp.NewTool("flowviz.sample",
		mcp.WithDescription("Render the built-in demonstration workflow"),
		mcp.WithString("format", mcp.Required(),
			mcp.Enum("mermaid", "dot"),
			mcp.Description("Output format: mermaid (flowchart syntax) or dot (GraphViz)"),
		),
	)
}

func inspectTool() mcp.Tool {
	return mcp.NewTool("flowviz.inspect",
		mcp.WithDescription("Summarize a workflow definition's structure: node/edge counts, type histogram, duplicate node IDs, and dangling edge references. Diagnostics only, nothing is rejected"),
		mcp.WithObject("definition", mcp.Required(), mcp.Description("Workflow definition object with nodes and edges")),
	)
}
