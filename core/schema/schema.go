package schema

import (
	"fmt"
	"strings"
)

// ViolationKind classifies a single schema violation.
type ViolationKind string

const (
	// KindWrongShape means the whole input was not an object.
	KindWrongShape ViolationKind = "wrong_shape"
	// KindMissing means a required field was absent.
	KindMissing ViolationKind = "missing_field"
	// KindWrongType means a field held the wrong primitive type.
	KindWrongType ViolationKind = "wrong_type"
	// KindOutOfDomain means a field value was outside its enum.
	KindOutOfDomain ViolationKind = "out_of_domain"
)

// Violation is one reported mismatch between the input and a declared field.
type Violation struct {
	// Path is the offending field name, empty for whole-input violations.
	Path    string
	Kind    ViolationKind
	Message string
}

// AggregateError carries every violation found in one validation pass, in
// field declaration order, so a caller can display all problems at once.
type AggregateError struct {
	Violations []Violation
}

func (e *AggregateError) Error() string {
	messages := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		messages[i] = v.Message
	}
	return "validation failed: " + strings.Join(messages, "; ")
}

// Field declares one recognized field of an object schema.
type Field struct {
	Name string
	// Type is the expected JSON primitive type: "string", "number",
	// "integer" or "boolean". Empty means "string".
	Type string
	// Enum is the closed set of allowed values. Empty means any value of
	// the declared type. Enums are only supported for string fields.
	Enum []string
	// Required fields are reported as violations when absent.
	Required bool
	// Description is carried into the JSON Schema wire form only.
	Description string
}

// Schema is a declarative object schema: the full set of recognized fields,
// their value domains, and their required-ness. A Schema is immutable after
// New and safe for concurrent reuse; construct it once at startup.
type Schema struct {
	fields []Field
}

// New builds a Schema from its field declarations. Declaration order is
// preserved and determines the order violations are reported in.
func New(fields ...Field) *Schema {
	owned := make([]Field, len(fields))
	copy(owned, fields)
	for i := range owned {
		if owned[i].Type == "" {
			owned[i].Type = "string"
		}
	}
	return &Schema{fields: owned}
}

// Fields returns the declared fields in declaration order.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Validate checks a structural input against the schema and returns the
// mapping of recognized fields. Unlike an imperative validator it does not
// stop at the first problem: every violation found in the pass is collected
// into a single [*AggregateError]. Unrecognized input fields are tolerated
// and dropped from the validated output.
func (s *Schema) Validate(input any) (map[string]any, error) {
	result := s.Check(input)
	if !result.Valid {
		return nil, result.Err
	}
	return result.Fields, nil
}

// Result is the non-raising validation outcome: either Valid with the
// validated field mapping, or invalid with the aggregate error as data.
type Result struct {
	Valid  bool
	Fields map[string]any
	Err    *AggregateError
}

// Check runs the same validation as [Schema.Validate] but returns violations
// as data instead of an error. Note that Check operates on structural input
// only; decoding malformed JSON text is the caller's precondition (see
// core/deserialize).
func (s *Schema) Check(input any) Result {
	fields, ok := input.(map[string]any)
	if !ok {
		return Result{Err: &AggregateError{Violations: []Violation{{
			Kind:    KindWrongShape,
			Message: "Input must be an object",
		}}}}
	}

	var violations []Violation
	validated := make(map[string]any, len(s.fields))
	for _, field := range s.fields {
		value, present := fields[field.Name]
		if !present {
			if field.Required {
				violations = append(violations, Violation{
					Path:    field.Name,
					Kind:    KindMissing,
					Message: fmt.Sprintf("%s is required", field.Name),
				})
			}
			continue
		}
		if v, ok := s.checkValue(field, value); ok {
			validated[field.Name] = value
		} else {
			violations = append(violations, v)
		}
	}

	if len(violations) > 0 {
		return Result{Err: &AggregateError{Violations: violations}}
	}
	return Result{Valid: true, Fields: validated}
}

// checkValue validates one present field value: primitive type first, then
// domain membership.
func (s *Schema) checkValue(field Field, value any) (Violation, bool) {
	switch field.Type {
	case "string":
		str, ok := value.(string)
		if !ok {
			return Violation{
				Path:    field.Name,
				Kind:    KindWrongType,
				Message: fmt.Sprintf("%s must be a string", field.Name),
			}, false
		}
		if len(field.Enum) > 0 && !contains(field.Enum, str) {
			return Violation{
				Path:    field.Name,
				Kind:    KindOutOfDomain,
				Message: fmt.Sprintf("%s must be one of: %s", field.Name, strings.Join(field.Enum, ", ")),
			}, false
		}
	case "number":
		if _, ok := value.(float64); !ok {
			return Violation{
				Path:    field.Name,
				Kind:    KindWrongType,
				Message: fmt.Sprintf("%s must be a number", field.Name),
			}, false
		}
	case "integer":
		num, ok := value.(float64)
		if !ok || num != float64(int64(num)) {
			return Violation{
				Path:    field.Name,
				Kind:    KindWrongType,
				Message: fmt.Sprintf("%s must be an integer", field.Name),
			}, false
		}
	case "boolean":
		if _, ok := value.(bool); !ok {
			return Violation{
				Path:    field.Name,
				Kind:    KindWrongType,
				Message: fmt.Sprintf("%s must be a boolean", field.Name),
			}, false
		}
	}
	return Violation{}, true
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
