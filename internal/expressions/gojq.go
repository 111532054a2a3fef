package expressions

import (
	"context"
	"sync"

	"github.com/itchyny/gojq"

	"github.com/codefix-ai/flowviz/pkg/schema"
)

// Filter evaluates jq expressions against workflow records, letting callers
// project or prune a large workflow document down to the part they want
// rendered. Thread-safe: compiled *gojq.Code objects are cached and reused
// across goroutines.
type Filter struct {
	mu    sync.RWMutex
	cache map[string]*gojq.Code
}

// NewFilter creates a new jq filter engine.
func NewFilter() *Filter {
	return &Filter{
		cache: make(map[string]*gojq.Code),
	}
}

// Apply compiles (or retrieves from cache) a jq expression and evaluates it
// against the record. The expression must yield exactly one JSON object,
// which becomes the new record. Anything else — parse errors, runtime errors,
// zero or multiple outputs, non-object output — is a FILTER_ERROR.
func (f *Filter) Apply(ctx context.Context, expression string, record map[string]any) (map[string]any, error) {
	if expression == "" {
		return nil, schema.NewError(schema.ErrCodeFilter, "empty jq expression")
	}

	code, err := f.getOrCompile(expression)
	if err != nil {
		return nil, err
	}

	iter := code.RunWithContext(ctx, record)

	var results []any
	for {
		val, ok := iter.Next()
		if !ok {
			break
		}
		if err, isErr := val.(error); isErr {
			return nil, schema.NewErrorf(schema.ErrCodeFilter,
				"jq evaluation failed for %q: %s", expression, err.Error()).
				WithCause(err).
				WithDetails(map[string]any{"expression": expression})
		}
		results = append(results, val)
	}

	if len(results) != 1 {
		return nil, schema.NewErrorf(schema.ErrCodeFilter,
			"jq expression %q produced %d results, want exactly one object", expression, len(results))
	}
	out, ok := results[0].(map[string]any)
	if !ok {
		return nil, schema.NewErrorf(schema.ErrCodeFilter,
			"jq expression %q produced a non-object result", expression)
	}
	return out, nil
}

// getOrCompile returns a cached compiled code or compiles and caches a new one.
func (f *Filter) getOrCompile(expression string) (*gojq.Code, error) {
	f.mu.RLock()
	if code, ok := f.cache[expression]; ok {
		f.mu.RUnlock()
		return code, nil
	}
	f.mu.RUnlock()

	f.mu.Lock()
	defer f.mu.Unlock()

	// Double-check after acquiring write lock.
	if code, ok := f.cache[expression]; ok {
		return code, nil
	}

	query, err := gojq.Parse(expression)
	if err != nil {
		return nil, schema.NewErrorf(schema.ErrCodeFilter,
			"jq parse error in %q: %s", expression, err.Error()).
			WithCause(err).
			WithDetails(map[string]any{"expression": expression})
	}

	code, err := gojq.Compile(query,
		// Sandbox: return empty env to block $ENV and env access.
		gojq.WithEnvironLoader(func() []string { return nil }),
	)
	if err != nil {
		return nil, schema.NewErrorf(schema.ErrCodeFilter,
			"jq compile error in %q: %s", expression, err.Error()).
			WithCause(err).
			WithDetails(map[string]any{"expression": expression})
	}

	f.cache[expression] = code
	return code, nil
}
