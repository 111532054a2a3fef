package logging

import (
	"context"
	"log/slog"
)

type ctxKey int

const (
	renderIDKey ctxKey = iota
	formatKey
	inputKey
)

// WithRenderID returns a context with the render correlation ID set.
func WithRenderID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, renderIDKey, id)
}

// WithFormat returns a context with the output format set.
func WithFormat(ctx context.Context, format string) context.Context {
	return context.WithValue(ctx, formatKey, format)
}

// WithInput returns a context with the input source set ("sample" or a path).
func WithInput(ctx context.Context, input string) context.Context {
	return context.WithValue(ctx, inputKey, input)
}

// RenderID extracts the render ID from the context, or "" if absent.
func RenderID(ctx context.Context) string {
	v, _ := ctx.Value(renderIDKey).(string)
	return v
}

// Format extracts the output format from the context, or "" if absent.
func Format(ctx context.Context) string {
	v, _ := ctx.Value(formatKey).(string)
	return v
}

// Input extracts the input source from the context, or "" if absent.
func Input(ctx context.Context) string {
	v, _ := ctx.Value(inputKey).(string)
	return v
}

// CorrelationHandler wraps an slog.Handler, automatically injecting render
// correlation attributes from the context into every log record. Use with
// slog.New(NewCorrelationHandler(inner)) so callers can use
// logger.InfoContext(ctx, ...) and the attributes appear automatically.
type CorrelationHandler struct {
	inner slog.Handler
}

// NewCorrelationHandler wraps the given handler with automatic correlation
// attribute injection.
func NewCorrelationHandler(inner slog.Handler) *CorrelationHandler {
	return &CorrelationHandler{inner: inner}
}

func (h *CorrelationHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *CorrelationHandler) Handle(ctx context.Context, r slog.Record) error {
	if v := RenderID(ctx); v != "" {
		r.AddAttrs(slog.String("render_id", v))
	}
	if v := Format(ctx); v != "" {
		r.AddAttrs(slog.String("format", v))
	}
	if v := Input(ctx); v != "" {
		r.AddAttrs(slog.String("input", v))
	}
	return h.inner.Handle(ctx, r)
}

func (h *CorrelationHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &CorrelationHandler{inner: h.inner.WithAttrs(attrs)}
}

func (h *CorrelationHandler) WithGroup(name string) slog.Handler {
	return &CorrelationHandler{inner: h.inner.WithGroup(name)}
}
