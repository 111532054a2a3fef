// Package loader acquires workflow records from the outside world. It is the
// one place input can fail; past here the pipeline is total.
package loader

import (
	"encoding/json"
	"os"

	"github.com/codefix-ai/flowviz/pkg/schema"
)

// Load reads a JSON workflow file and parses it into a loosely-typed record
// ready for schema.Decode. Unreadable files surface as INPUT_NOT_FOUND and
// unparsable content as INPUT_INVALID; both are user-facing, one-shot errors.
func Load(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, schema.NewErrorf(schema.ErrCodeInputNotFound,
			"cannot read workflow file: %s", err.Error()).
			WithInput(path).
			WithCause(err)
	}

	var record map[string]any
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, schema.NewErrorf(schema.ErrCodeInputInvalid,
			"invalid JSON in workflow file: %s", err.Error()).
			WithInput(path).
			WithCause(err)
	}

	return record, nil
}
