package deserialize

import (
	"encoding/json"
	"fmt"
)

// FromFields produces an instance of T carrying exactly the mapping's
// key/value pairs, bypassing any construction logic T may have. Required-field
// rules are the validator's job, not this function's: for mappings produced by
// this package's own parsing and validation, FromFields does not fail.
//
// Keys with no matching field on a struct T are dropped; map targets keep
// them. Absent keys leave their fields at the zero value.
func FromFields[T any](fields map[string]any) (T, error) {
	return fromValue[T](fields)
}

// fromValue instantiates T from any structural value via a JSON round trip.
func fromValue[T any](value any) (T, error) {
	var result T
	encoded, err := json.Marshal(value)
	if err != nil {
		return result, fmt.Errorf("failed to encode fields: %w", err)
	}
	if err := json.Unmarshal(encoded, &result); err != nil {
		return result, fmt.Errorf("failed to instantiate %T: %w", result, err)
	}
	return result, nil
}
