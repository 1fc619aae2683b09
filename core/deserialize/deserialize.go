package deserialize

import (
	"github.com/mfalcone/typed/core/parse"
	"github.com/mfalcone/typed/core/schema"
	"github.com/mfalcone/typed/core/validate"
)

// JSON deserializes input into a T without any validation: parse, then
// instantiate directly. Input is either JSON text or an already-parsed
// structural value.
//
// Example:
//
//	fb, err := deserialize.JSON[Feedback](`{"sentiment":"positive","urgency":"high"}`)
func JSON[T any](input any) (T, error) {
	var zero T
	value, err := parse.Normalize(input)
	if err != nil {
		return zero, err
	}
	return fromValue[T](value)
}

// JSONSlice deserializes a JSON array into a []T, applying [JSON] semantics
// to every element in input order. Non-array input fails with
// [parse.ErrNotArray] before any element is processed.
func JSONSlice[T any](input any) ([]T, error) {
	elements, err := parse.NormalizeSlice(input)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(elements))
	for _, element := range elements {
		item, err := fromValue[T](element)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

// JSONChecked deserializes input into a T after running it through v. The
// instance is built from the validated mapping only, so fields the validator
// does not recognize never reach it. Validation failures surface unchanged;
// instantiation happens strictly after validation succeeds.
func JSONChecked[T any](v validate.Validator, input any) (T, error) {
	var zero T
	value, err := parse.Normalize(input)
	if err != nil {
		return zero, err
	}
	fields, err := v.Validate(value)
	if err != nil {
		return zero, err
	}
	return FromFields[T](fields)
}

// JSONCheckedSlice applies [JSONChecked] to every element of a JSON array in
// input order. The first failing element aborts the whole call with that
// element's error; non-array input fails with [parse.ErrNotArray].
func JSONCheckedSlice[T any](v validate.Validator, input any) ([]T, error) {
	elements, err := parse.NormalizeSlice(input)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(elements))
	for _, element := range elements {
		item, err := JSONChecked[T](v, element)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

// JSONWithSchema deserializes input into a T after validating it against s.
// Unlike the imperative validator path, a failure carries every violation
// found in the pass as a [*schema.AggregateError].
func JSONWithSchema[T any](s *schema.Schema, input any) (T, error) {
	var zero T
	value, err := parse.Normalize(input)
	if err != nil {
		return zero, err
	}
	fields, err := s.Validate(value)
	if err != nil {
		return zero, err
	}
	return FromFields[T](fields)
}

// JSONWithSchemaSlice applies [JSONWithSchema] to every element of a JSON
// array in input order, aborting on the first element whose aggregate
// validation fails.
func JSONWithSchemaSlice[T any](s *schema.Schema, input any) ([]T, error) {
	elements, err := parse.NormalizeSlice(input)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(elements))
	for _, element := range elements {
		item, err := JSONWithSchema[T](s, element)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

// Outcome is the non-raising deserialization result: either Valid with the
// typed instance, or invalid with the aggregate error as data.
type Outcome[T any] struct {
	Valid bool
	Value T
	Err   *schema.AggregateError
}

// SafeJSONWithSchema is the non-raising form of [JSONWithSchema]: schema
// violations are returned inside the [Outcome] instead of as an error.
//
// Malformed JSON text is not a validation failure but a precondition failure,
// and is still returned as an error (a [*parse.Error] with a "Failed to parse
// JSON" prefix), never downgraded into the outcome.
func SafeJSONWithSchema[T any](s *schema.Schema, input any) (Outcome[T], error) {
	value, err := parse.Normalize(input)
	if err != nil {
		return Outcome[T]{}, err
	}
	result := s.Check(value)
	if !result.Valid {
		return Outcome[T]{Err: result.Err}, nil
	}
	instance, err := FromFields[T](result.Fields)
	if err != nil {
		return Outcome[T]{}, err
	}
	return Outcome[T]{Valid: true, Value: instance}, nil
}
