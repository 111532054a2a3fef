package main

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()
	assert.Equal(t, "mermaid", cfg.DefaultFormat)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("FLOWVIZ_FORMAT", "dot")
	t.Setenv("FLOWVIZ_LOG_LEVEL", "debug")

	cfg := loadConfig()
	assert.Equal(t, "dot", cfg.DefaultFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}

	for _, tc := range tests {
		t.Run(tc.level, func(t *testing.T) {
			cfg := Config{LogLevel: tc.level}
			assert.Equal(t, tc.want, cfg.slogLevel())
		})
	}
}

func TestRenderCommandSample(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"render", "-f", "mermaid"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "graph TD")
	assert.Contains(t, out.String(), "review -->|Needs Revision| analysis")
}

func TestRenderCommandUnknownFormat(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"render", "-f", "png"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "png")
}

func TestSampleCommand(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"sample"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "Research and Analysis Workflow")
	assert.Contains(t, out.String(), `"review"`)
}

func TestInspectCommandSample(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"inspect"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), `"node_count": 6`)
	assert.Contains(t, out.String(), `"edge_count": 6`)
}
