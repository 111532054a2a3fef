package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/codefix-ai/flowviz/internal/logging"
)

// logger is configured once in PersistentPreRun and shared by all commands.
var logger *slog.Logger

func newRootCmd() *cobra.Command {
	var verbose bool
	cfg := loadConfig()

	root := &cobra.Command{
		Use:          "flowviz",
		Short:        "Render workflow graphs as Mermaid or DOT diagrams",
		Long: `Flowviz converts declarative workflow descriptions (JSON nodes and edges)
into text diagrams: Mermaid flowchart syntax or GraphViz DOT. Node types
drive icon and color styling; the layout itself is left to the downstream
renderer.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := cfg.slogLevel()
			if verbose {
				level = slog.LevelDebug
			}
			logger = newLogger(level)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd(cfg))
	root.AddCommand(newInspectCmd())
	root.AddCommand(newSampleCmd())
	root.AddCommand(newMCPCmd())

	return root
}

// newLogger builds the process logger: text output on stderr wrapped with
// render correlation attributes.
func newLogger(level slog.Level) *slog.Logger {
	inner := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(logging.NewCorrelationHandler(inner))
}
