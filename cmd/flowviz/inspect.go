package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codefix-ai/flowviz/internal/loader"
	"github.com/codefix-ai/flowviz/pkg/schema"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [workflow.json]",
		Short: "Summarize a workflow's structure without rendering it",
		Long: `Inspect prints node and edge counts, a node type histogram, duplicate
node IDs, and dangling edge references as JSON. Nothing is rejected: duplicate
IDs and dangling references pass through to rendered diagrams verbatim, this
command just makes them visible first.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			record := schema.SampleRecord()
			if len(args) == 1 {
				loaded, err := loader.Load(args[0])
				if err != nil {
					return err
				}
				record = loaded
			}

			report := schema.Inspect(schema.Decode(record))
			data, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}
