package main

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/codefix-ai/flowviz/internal/diagram"
)

// Config holds flowviz defaults.
// Priority: env vars > settings.json > defaults.
type Config struct {
	DefaultFormat string `json:"default_format"`
	LogLevel      string `json:"log_level"`
}

func defaultConfig() Config {
	return Config{
		DefaultFormat: diagram.FormatMermaid,
		LogLevel:      "info",
	}
}

func flowvizDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".flowviz"
	}
	return filepath.Join(home, ".flowviz")
}

func settingsPath() string {
	return filepath.Join(flowvizDir(), "settings.json")
}

func loadConfig() Config {
	cfg := defaultConfig()

	// Layer 2: settings.json (ignore if missing).
	if data, err := os.ReadFile(settingsPath()); err == nil {
		_ = json.Unmarshal(data, &cfg)
	}

	// Layer 3: env vars override.
	if v := os.Getenv("FLOWVIZ_FORMAT"); v != "" {
		cfg.DefaultFormat = v
	}
	if v := os.Getenv("FLOWVIZ_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	return cfg
}

// slogLevel maps the configured log level string to an slog.Level.
func (c Config) slogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
