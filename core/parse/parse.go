package parse

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kaptinlin/jsonrepair"
)

// ErrNotArray is returned by [NormalizeSlice] when the input decodes to
// something other than a JSON array. The message is stable and callers may
// match it with [errors.Is].
var ErrNotArray = errors.New("Input must be an array")

// Error reports that textual input was not well-formed JSON. It wraps the
// underlying syntax error so callers can inspect the cause with [errors.As].
type Error struct {
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("Failed to parse JSON: %v", e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Normalize converts an input that is either a textual JSON encoding or an
// already-parsed structural value into a single structural value: a
// map[string]any, a []any, or a scalar.
//
// Textual inputs (string, []byte, json.RawMessage) are decoded strictly;
// malformed text yields a [*Error]. Any other value is assumed to be
// structural already and is passed through unchanged.
func Normalize(input any) (any, error) {
	var text []byte
	switch v := input.(type) {
	case string:
		text = []byte(v)
	case []byte:
		text = v
	case json.RawMessage:
		text = v
	default:
		return input, nil
	}

	var value any
	if err := json.Unmarshal(text, &value); err != nil {
		return nil, &Error{Err: err}
	}
	return value, nil
}

// NormalizeSlice normalizes input like [Normalize] and additionally requires
// the result to be a sequence. Non-array inputs fail with [ErrNotArray]
// before any element is looked at.
func NormalizeSlice(input any) ([]any, error) {
	value, err := Normalize(input)
	if err != nil {
		return nil, err
	}
	elements, ok := value.([]any)
	if !ok {
		return nil, ErrNotArray
	}
	return elements, nil
}

// Repair attempts to fix almost-JSON content as produced by language models:
// markdown code fences, single quotes, trailing commas, unquoted keys. It
// returns the repaired text, or the input unchanged when it is already valid
// JSON or cannot be repaired.
//
// Repair is a boundary helper for provider output. The strict deserialization
// paths never call it: malformed input there is a hard error.
func Repair(content string) string {
	if json.Valid([]byte(content)) {
		return content
	}
	repaired, err := jsonrepair.JSONRepair(content)
	if err != nil {
		return content
	}
	return repaired
}
