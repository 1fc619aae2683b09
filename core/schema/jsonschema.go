package schema

import (
	"encoding/json"
	"fmt"
)

// JSONSchema returns the standard JSON Schema representation of the schema,
// suitable for constraining model output via a provider's structured-output
// parameter. Unrecognized properties are declared disallowed on the wire even
// though validation merely drops them, so the model is steered away from
// inventing fields.
func (s *Schema) JSONSchema() map[string]any {
	properties := make(map[string]any, len(s.fields))
	required := make([]string, 0, len(s.fields))
	for _, field := range s.fields {
		property := map[string]any{"type": field.Type}
		if len(field.Enum) > 0 {
			property["enum"] = field.Enum
		}
		if field.Description != "" {
			property["description"] = field.Description
		}
		properties[field.Name] = property
		if field.Required {
			required = append(required, field.Name)
		}
	}

	wire := map[string]any{
		"type":                 "object",
		"properties":           properties,
		"additionalProperties": false,
	}
	if len(required) > 0 {
		wire["required"] = required
	}
	return wire
}

// JSONString converts the schema's JSON Schema form to a string.
// indent: optional bool parameter. If true, formats with indentation.
func (s *Schema) JSONString(indent ...bool) (string, error) {
	shouldIndent := false
	if len(indent) > 0 {
		shouldIndent = indent[0]
	}

	var encoded []byte
	var err error
	if shouldIndent {
		encoded, err = json.MarshalIndent(s.JSONSchema(), "", "  ")
	} else {
		encoded, err = json.Marshal(s.JSONSchema())
	}
	if err != nil {
		return "", fmt.Errorf("failed to marshal schema to JSON: %w", err)
	}
	return string(encoded), nil
}

// String returns the compact JSON Schema representation, or an error message
// if marshalling fails.
func (s *Schema) String() string {
	str, err := s.JSONString()
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return str
}
