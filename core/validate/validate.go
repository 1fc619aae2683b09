package validate

import (
	"fmt"
	"strings"
)

// Validator checks a structural input and returns the validated field mapping
// on success. Implementations decide their own failure policy: the
// hand-written validators in providers/validator stop at the first violation,
// while [core/schema] aggregates every violation into one error.
//
// The returned mapping contains only the fields the validator recognizes;
// unrecognized input fields are dropped. Implementations must be stateless
// after construction so a single value can be reused across goroutines.
type Validator interface {
	Validate(input any) (map[string]any, error)
}

// Error is a single validation violation, raised by imperative validators
// that stop at the first problem they find.
type Error struct {
	// Field is the offending field name, or empty when the whole input is
	// the wrong shape.
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// ErrNotObject reports that the input to validate was not a mapping at all
// (including null). Field checks never run in that case.
func ErrNotObject() *Error {
	return &Error{Message: "Input must be an object"}
}

// AsObject returns input as a field mapping, or ErrNotObject when it is
// anything else.
func AsObject(input any) (map[string]any, *Error) {
	fields, ok := input.(map[string]any)
	if !ok {
		return nil, ErrNotObject()
	}
	return fields, nil
}

// StringField checks that field is present in fields and holds a string.
func StringField(fields map[string]any, field string) (string, *Error) {
	value, ok := fields[field]
	if !ok {
		return "", &Error{Field: field, Message: fmt.Sprintf("%s is required", field)}
	}
	s, ok := value.(string)
	if !ok {
		return "", &Error{Field: field, Message: fmt.Sprintf("%s must be a string", field)}
	}
	return s, nil
}

// EnumField checks that field is a string belonging to the allowed set. The
// error message names the full domain so callers can surface it directly.
func EnumField(fields map[string]any, field string, allowed []string) (string, *Error) {
	s, verr := StringField(fields, field)
	if verr != nil {
		return "", verr
	}
	for _, candidate := range allowed {
		if s == candidate {
			return s, nil
		}
	}
	return "", &Error{
		Field:   field,
		Message: fmt.Sprintf("%s must be one of: %s", field, strings.Join(allowed, ", ")),
	}
}
