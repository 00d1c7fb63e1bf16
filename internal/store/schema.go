package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// eventDocumentSchema describes the on-disk shape of the event log: a
// JSON array of typed, user-scoped, timestamped records. A file that is
// valid JSON but not a valid event document (say, a JSON object) is as
// useless as a truncated one, so both are treated as "no data" on load.
var eventDocumentSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type":     "object",
		"required": []any{"type", "user_id", "timestamp", "data"},
		"properties": map[string]any{
			"type":      map[string]any{"type": "string"},
			"user_id":   map[string]any{"type": "string"},
			"timestamp": map[string]any{"type": "string"},
			"data":      map[string]any{"type": "object"},
		},
	},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateDocument checks raw bytes against the event document schema.
func validateDocument(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := documentSchema()
	if err != nil {
		return fmt.Errorf("compile event schema: %w", err)
	}

	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// documentSchema compiles the event document schema once per process.
func documentSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, not raw
		// bytes. Round-trip the definition to get a clean representation.
		defBytes, err := json.Marshal(eventDocumentSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://events.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}
