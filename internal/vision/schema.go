package vision

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildResponseSchema returns the JSON-Schema the vision reply must satisfy,
// as a generic map. Only the envelope shape is constrained; field attributes
// stay loose because types and categories are recomputed locally anyway.
func BuildResponseSchema() map[string]any {
	fieldProps := map[string]any{
		"label":       map[string]any{"type": "string"},
		"name":        map[string]any{"type": "string"},
		"type":        map[string]any{"type": "string"},
		"category":    map[string]any{"type": "string"},
		"required":    map[string]any{"type": "boolean"},
		"value":       map[string]any{"type": "string"},
		"description": map[string]any{"type": "string"},
	}
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"success": map[string]any{"type": "boolean"},
			"fields": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":       "object",
					"properties": fieldProps,
				},
			},
		},
		"required": []any{"fields"},
	}
}

// ValidateResponseShape validates a raw vision reply against the envelope
// schema.
func ValidateResponseShape(data []byte) error {
	return validateJSONAgainstSchema(BuildResponseSchema(), data)
}

// validateJSONAgainstSchema validates "data" against "schemaMap".
func validateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
