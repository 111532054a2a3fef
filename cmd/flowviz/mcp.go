package main

import (
	"github.com/spf13/cobra"

	"github.com/codefix-ai/flowviz/internal/expressions"
	"github.com/codefix-ai/flowviz/pkg/mcp"
)

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve flowviz tools over MCP stdio",
		Long: `MCP starts a Model Context Protocol server on stdin/stdout, exposing
flowviz.render, flowviz.sample, and flowviz.inspect as tools for agents.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := mcp.NewFlowvizServer(mcp.FlowvizServerDeps{
				Filter: expressions.NewFilter(),
				Logger: logger,
			})
			return srv.Serve(cmd.Context())
		},
	}
}
