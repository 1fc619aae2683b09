package schema

import (
	"fmt"
	"reflect"
	"strings"
)

// FromStruct derives a [*Schema] from a struct type's tags, so a target type
// can declare its own schema next to its fields instead of repeating it at
// every call site.
//
// Field names come from the `json` tag (falling back to the Go field name;
// `json:"-"` skips the field). The `jsonschema` tag customizes the schema:
//
//	type Feedback struct {
//	    Sentiment string `json:"sentiment" jsonschema:"required,enum=positive,enum=negative,enum=neutral"`
//	    Urgency   string `json:"urgency" jsonschema:"required,enum=low,enum=medium,enum=high,description=How urgent the issue is"`
//	}
//
// Supported tag items: "required", "enum=<value>" (repeatable, string fields
// only), "description=<text>". Non-pointer fields without omitempty are
// required even without the tag.
func FromStruct[T any]() (*Schema, error) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("schema: %s is not a struct type", t)
	}

	var fields []Field
	for i := 0; i < t.NumField(); i++ {
		structField := t.Field(i)
		if !structField.IsExported() {
			continue
		}

		name, omitEmpty, skip := jsonName(structField)
		if skip {
			continue
		}

		fieldType, err := primitiveType(structField.Type)
		if err != nil {
			return nil, fmt.Errorf("schema: field %s: %w", name, err)
		}

		field := Field{
			Name: name,
			Type: fieldType,
			// Non-pointer without omitempty is required by default.
			Required: structField.Type.Kind() != reflect.Ptr && !omitEmpty,
		}
		if err := applyTag(structField, &field); err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}

	return New(fields...), nil
}

// MustFromStruct is like [FromStruct] but panics on error. Intended for
// package-level schema variables built from types the package itself owns.
func MustFromStruct[T any]() *Schema {
	s, err := FromStruct[T]()
	if err != nil {
		panic(err)
	}
	return s
}

// jsonName resolves a struct field's JSON name and omitempty flag.
func jsonName(field reflect.StructField) (name string, omitEmpty, skip bool) {
	name = field.Name
	tag := field.Tag.Get("json")
	if tag == "-" {
		return "", false, true
	}
	if tag != "" {
		if commaIdx := strings.Index(tag, ","); commaIdx != -1 {
			if tag[:commaIdx] != "" {
				name = tag[:commaIdx]
			}
			omitEmpty = strings.Contains(tag[commaIdx:], "omitempty")
		} else {
			name = tag
		}
	}
	return name, omitEmpty, false
}

// primitiveType maps a Go field type to its JSON primitive type name.
func primitiveType(t reflect.Type) (string, error) {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string", nil
	case reflect.Bool:
		return "boolean", nil
	case reflect.Float32, reflect.Float64:
		return "number", nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer", nil
	default:
		return "", fmt.Errorf("unsupported field kind %s", t.Kind())
	}
}

// applyTag parses the jsonschema struct tag into the field declaration.
func applyTag(structField reflect.StructField, field *Field) error {
	tag := structField.Tag.Get("jsonschema")
	if tag == "" {
		return nil
	}

	for _, item := range strings.Split(tag, ",") {
		key, value, hasValue := strings.Cut(item, "=")
		switch {
		case key == "required" && !hasValue:
			field.Required = true
		case key == "description" && hasValue:
			field.Description = value
		case key == "enum" && hasValue:
			if field.Type != "string" {
				return fmt.Errorf("schema: field %s: enum tag is only supported for string fields", field.Name)
			}
			field.Enum = append(field.Enum, value)
		}
	}
	return nil
}
