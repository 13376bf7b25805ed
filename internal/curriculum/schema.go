package curriculum

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// trackSchema defines the JSON schema every embedded track file must satisfy.
var trackSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":      map[string]any{"type": "string", "minLength": 1},
		"name":    map[string]any{"type": "string", "minLength": 1},
		"tagline": map[string]any{"type": "string"},
		"phases": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":              map[string]any{"type": "integer", "minimum": 0},
					"title":           map[string]any{"type": "string", "minLength": 1},
					"description":     map[string]any{"type": "string"},
					"sketchChallenge": map[string]any{"type": "string"},
					"lingo": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"term": map[string]any{"type": "string", "minLength": 1},
								"def":  map[string]any{"type": "string", "minLength": 1},
							},
							"required":             []any{"term", "def"},
							"additionalProperties": false,
						},
					},
					"tasks": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"id":     map[string]any{"type": "string", "minLength": 1},
								"text":   map[string]any{"type": "string", "minLength": 1},
								"link":   map[string]any{"type": "string"},
								"tool":   map[string]any{"type": "string"},
								"detail": map[string]any{"type": "string"},
							},
							"required":             []any{"id", "text"},
							"additionalProperties": false,
						},
					},
					"quiz": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"question":     map[string]any{"type": "string", "minLength": 1},
							"options":      map[string]any{"type": "array", "minItems": 2, "items": map[string]any{"type": "string"}},
							"correctIndex": map[string]any{"type": "integer", "minimum": 0},
						},
						"required":             []any{"question", "options", "correctIndex"},
						"additionalProperties": false,
					},
					"exam": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"question":     map[string]any{"type": "string", "minLength": 1},
								"options":      map[string]any{"type": "array", "minItems": 2, "items": map[string]any{"type": "string"}},
								"correctIndex": map[string]any{"type": "integer", "minimum": 0},
							},
							"required":             []any{"question", "options", "correctIndex"},
							"additionalProperties": false,
						},
					},
				},
				"required":             []any{"id", "title", "description", "tasks"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"id", "name", "phases"},
	"additionalProperties": false,
}

var (
	compiledOnce sync.Once
	compiled     *jsonschema.Schema
	compileErr   error
)

// validateRaw checks raw track JSON against trackSchema.
func validateRaw(name string, raw []byte) error {
	compiledOnce.Do(func() {
		compiled, compileErr = compileTrackSchema()
	})
	if compileErr != nil {
		return fmt.Errorf("compile track schema: %w", compileErr)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("validate %s: %w", name, err)
	}
	return nil
}

func compileTrackSchema() (*jsonschema.Schema, error) {
	// The jsonschema library expects a parsed JSON value (any), not raw bytes.
	defBytes, err := json.Marshal(trackSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	const schemaURL = "schema://curriculum-track.json"
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(schemaURL)
}
